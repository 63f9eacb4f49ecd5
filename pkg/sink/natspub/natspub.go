// Package natspub publishes decoded packets to NATS subjects.
package natspub

import (
	"context"
	"fmt"
	"strconv"

	"github.com/nats-io/nats.go"

	"github.com/gadams999/f123telem/log"
	"github.com/gadams999/f123telem/packet"
	"github.com/gadams999/f123telem/pkg/pipeline"
)

const (
	HeaderRunID    = "F1-Run-Id"
	HeaderPacketID = "F1-Packet-Id"
	HeaderFrame    = "F1-Frame"
)

// Publisher is satisfied by *nats.Conn.
type Publisher interface {
	PublishMsg(m *nats.Msg) error
}

type Sink struct {
	pub    Publisher
	prefix string
	runID  string
	log    *log.Logger
}

func New(pub Publisher, prefix, runID string) *Sink {
	return &Sink{
		pub:    pub,
		prefix: prefix,
		runID:  runID,
		log:    log.Default().Named("sink.nats"),
	}
}

// Subject returns <prefix>.<session uid as hex>.<kind>.
func Subject(prefix string, hdr packet.Header, kind string) string {
	return fmt.Sprintf("%s.%016x.%s", prefix, hdr.SessionUID, kind)
}

// Message builds the NATS message carrying d as compact canonical JSON.
func (s *Sink) Message(d pipeline.Decoded) *nats.Msg {
	hdr := d.Packet.Header
	msg := nats.NewMsg(Subject(s.prefix, hdr, d.Packet.Kind()))
	msg.Header.Set(HeaderRunID, s.runID)
	msg.Header.Set(HeaderPacketID, strconv.Itoa(int(d.Packet.ID)))
	msg.Header.Set(HeaderFrame, strconv.FormatUint(uint64(hdr.FrameIdentifier), 10))
	msg.Data = []byte(packet.CompactJSON(d.Packet.Record))
	return msg
}

func (s *Sink) Publish(d pipeline.Decoded) error {
	msg := s.Message(d)
	if err := s.pub.PublishMsg(msg); err != nil {
		return fmt.Errorf("natspub: publish %s: %w", msg.Subject, err)
	}
	return nil
}

// Consume publishes every packet from in until ctx is done or in is closed.
// Failed publishes are logged and skipped.
func (s *Sink) Consume(ctx context.Context, in <-chan pipeline.Decoded) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-in:
			if !ok {
				return
			}
			if err := s.Publish(d); err != nil {
				s.log.Warn("failed to publish packet", log.ErrorField(err))
			}
		}
	}
}

// Connect dials url with the options used by the listen command.
func Connect(url, name string) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn("nats disconnected", log.ErrorField(err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info("nats reconnected", log.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("natspub: connect %s: %w", url, err)
	}
	return nc, nil
}
