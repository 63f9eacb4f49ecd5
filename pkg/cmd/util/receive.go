package util

import (
	"context"

	"github.com/gadams999/f123telem/log"
	"github.com/gadams999/f123telem/pkg/config"
	"github.com/gadams999/f123telem/pkg/listener"
	"github.com/gadams999/f123telem/pkg/pipeline"
)

// Receive binds the UDP listener from config and runs the decode pipeline,
// handing every decoded packet to publish. It blocks until ctx is done.
func Receive(ctx context.Context, publish func(pipeline.Decoded)) error {
	p, err := pipeline.New(publish)
	if err != nil {
		return err
	}
	raw := make(chan []byte, 256)
	l, err := listener.Listen(ctx, config.Addr, raw,
		listener.WithBufferSize(config.BufferSize),
		listener.WithErrorHandler(func(err error) {
			log.Warn("udp read failed", log.ErrorField(err))
		}))
	if err != nil {
		return err
	}
	defer l.Close()
	log.Info("listening for telemetry", log.String("addr", l.Addr().String()))
	p.Run(ctx, raw)
	return nil
}
