// Package pipeline turns raw datagrams into decoded packets.
package pipeline

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/gadams999/f123telem/log"
	"github.com/gadams999/f123telem/packet"
	"github.com/gadams999/f123telem/pkg/metrics"
)

// Decoded is a datagram together with its decoded packet.
type Decoded struct {
	Received time.Time
	Raw      []byte
	Packet   *packet.Packet
}

type Pipeline struct {
	publish       func(Decoded)
	log           *log.Logger
	now           func() time.Time
	meterProvider metric.MeterProvider
	decoded       metric.Int64Counter
	failed        metric.Int64Counter
}

type Option func(*Pipeline)

func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(p *Pipeline) {
		if mp != nil {
			p.meterProvider = mp
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		if now != nil {
			p.now = now
		}
	}
}

// New returns a pipeline handing every decoded packet to publish. A nil
// publish only counts.
func New(publish func(Decoded), opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		publish: publish,
		log:     log.Default().Named("pipeline"),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.publish == nil {
		p.publish = func(Decoded) {}
	}
	if p.meterProvider == nil {
		p.meterProvider = otel.GetMeterProvider()
	}
	meter := p.meterProvider.Meter(metrics.ScopeName)
	var err error
	if p.decoded, err = meter.Int64Counter("f123telem.packets.decoded",
		metric.WithDescription("Number of decoded packets"),
		metric.WithUnit("{packet}")); err != nil {
		return nil, err
	}
	if p.failed, err = meter.Int64Counter("f123telem.packets.failed",
		metric.WithDescription("Number of datagrams that failed to decode"),
		metric.WithUnit("{packet}")); err != nil {
		return nil, err
	}
	return p, nil
}

// Handle decodes raw, counts the outcome and publishes a success. Failed
// datagrams are logged and dropped; the error is returned for callers that
// care.
func (p *Pipeline) Handle(ctx context.Context, raw []byte) (Decoded, error) {
	d := Decoded{Received: p.now(), Raw: raw}
	pkt, err := packet.DecodePacket(raw)
	if err != nil {
		reason := packet.Reason(err)
		p.failed.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
		if errors.Is(err, packet.ErrUnsupportedPacket) {
			// other game years share the port
			p.log.Debug("dropping datagram", log.String("reason", reason), log.ErrorField(err))
		} else {
			p.log.Warn("dropping datagram",
				log.String("reason", reason),
				log.Int("size", len(raw)),
				log.ErrorField(err))
		}
		return d, err
	}
	d.Packet = pkt
	p.decoded.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", pkt.Kind())))
	p.publish(d)
	return d, nil
}

// Run handles datagrams from in until ctx is done or in is closed.
func (p *Pipeline) Run(ctx context.Context, in <-chan []byte) {
	for {
		select {
		case <-ctx.Done():
			return
		case raw, ok := <-in:
			if !ok {
				return
			}
			_, _ = p.Handle(ctx, raw)
		}
	}
}
