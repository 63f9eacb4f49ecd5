// Package jsonl records decoded packets as JSON lines.
package jsonl

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"

	"github.com/gadams999/f123telem/log"
	"github.com/gadams999/f123telem/pkg/pipeline"
)

type Writer struct {
	w    io.Writer
	opts ojg.Options
	log  *log.Logger
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:    w,
		opts: ojg.Options{Sort: true, HTMLUnsafe: true},
		log:  log.Default().Named("sink.jsonl"),
	}
}

// Write appends one line for d.
func (j *Writer) Write(d pipeline.Decoded) error {
	hdr := d.Packet.Header
	rec := map[string]any{
		"ts":          d.Received.UTC().Format(time.RFC3339Nano),
		"kind":        d.Packet.Kind(),
		"packet_id":   int64(d.Packet.ID),
		"session_uid": fmt.Sprintf("%016x", hdr.SessionUID),
		"frame":       int64(hdr.FrameIdentifier),
		"payload_hex": hex.EncodeToString(d.Raw),
		"data":        d.Packet.Canonical().Plain(),
	}
	if _, err := io.WriteString(j.w, oj.JSON(rec, &j.opts)+"\n"); err != nil {
		return fmt.Errorf("jsonl: write: %w", err)
	}
	return nil
}

// Consume writes every packet from in until ctx is done or in is closed.
func (j *Writer) Consume(ctx context.Context, in <-chan pipeline.Decoded) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-in:
			if !ok {
				return
			}
			if err := j.Write(d); err != nil {
				j.log.Error("failed to record packet", log.ErrorField(err))
			}
		}
	}
}
