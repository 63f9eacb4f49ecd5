// Package hub fans one stream of values out to many subscribers. A slow
// subscriber loses values instead of stalling the stream.
package hub

import (
	"context"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/gadams999/f123telem/log"
	"github.com/gadams999/f123telem/pkg/metrics"
)

type Hub[T any] struct {
	name       string
	broadcast  chan T
	register   chan chan T
	unregister chan chan T
	clients    map[chan T]struct{}
	clientBuf  int
	done       chan struct{}

	numRcv      atomic.Int64
	numSnd      atomic.Int64
	numSkip     atomic.Int64
	numListener atomic.Int64

	meterProvider metric.MeterProvider
	log           *log.Logger
}

type Option[T any] func(*Hub[T])

func WithBroadcastBuffer[T any](size int) Option[T] {
	return func(h *Hub[T]) {
		if size > 0 {
			h.broadcast = make(chan T, size)
		}
	}
}

func WithClientBuffer[T any](size int) Option[T] {
	return func(h *Hub[T]) {
		if size > 0 {
			h.clientBuf = size
		}
	}
}

// WithMeterProvider overrides the global provider, mostly for tests.
func WithMeterProvider[T any](mp metric.MeterProvider) Option[T] {
	return func(h *Hub[T]) {
		if mp != nil {
			h.meterProvider = mp
		}
	}
}

func New[T any](name string, opts ...Option[T]) *Hub[T] {
	h := &Hub[T]{
		name:       name,
		broadcast:  make(chan T, 256),
		register:   make(chan chan T),
		unregister: make(chan chan T),
		clients:    make(map[chan T]struct{}),
		clientBuf:  100,
		done:       make(chan struct{}),
		log:        log.Default().Named("hub." + name),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.meterProvider == nil {
		h.meterProvider = otel.GetMeterProvider()
	}
	h.setupMetrics()
	return h
}

func (h *Hub[T]) setupMetrics() {
	meter := h.meterProvider.Meter(metrics.ScopeName)
	attrs := metric.WithAttributes(attribute.String("hub", h.name))
	for _, d := range []struct {
		name  string
		desc  string
		value *atomic.Int64
	}{
		{"f123telem.hub.rcv", "Number of received messages", &h.numRcv},
		{"f123telem.hub.snd", "Number of sent messages", &h.numSnd},
		{"f123telem.hub.skip", "Number of skipped messages", &h.numSkip},
		{"f123telem.hub.listener", "Number of listeners", &h.numListener},
	} {
		value := d.value
		if _, err := meter.Int64ObservableGauge(
			d.name,
			metric.WithDescription(d.desc),
			metric.WithUnit("{count}"),
			metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
				o.Observe(value.Load(), attrs)
				return nil
			})); err != nil {
			h.log.Error("failed to register metric",
				log.String("metric", d.name),
				log.ErrorField(err))
		}
	}
}

// Run delivers published values until ctx is done, then closes every
// subscriber channel.
func (h *Hub[T]) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for ch := range h.clients {
				close(ch)
			}
			h.log.Info("hub closed",
				log.Int64("rcv", h.numRcv.Load()),
				log.Int64("snd", h.numSnd.Load()),
				log.Int64("skip", h.numSkip.Load()))
			return
		case ch := <-h.register:
			h.clients[ch] = struct{}{}
			h.numListener.Store(int64(len(h.clients)))
		case ch := <-h.unregister:
			if _, ok := h.clients[ch]; ok {
				delete(h.clients, ch)
				close(ch)
			}
			h.numListener.Store(int64(len(h.clients)))
		case v := <-h.broadcast:
			h.numRcv.Add(1)
			for ch := range h.clients {
				select {
				case ch <- v:
					h.numSnd.Add(1)
				default:
					h.numSkip.Add(1)
				}
			}
		}
	}
}

func (h *Hub[T]) Subscribe() chan T {
	return h.SubscribeWithBuffer(h.clientBuf)
}

// SubscribeWithBuffer registers a new subscriber. It returns a closed channel
// once the hub has stopped.
func (h *Hub[T]) SubscribeWithBuffer(size int) chan T {
	if size <= 0 {
		size = h.clientBuf
	}
	ch := make(chan T, size)
	select {
	case h.register <- ch:
	case <-h.done:
		close(ch)
	}
	return ch
}

func (h *Hub[T]) Unsubscribe(ch chan T) {
	select {
	case h.unregister <- ch:
	case <-h.done:
	}
}

// Publish queues v for delivery. It blocks only while the broadcast buffer is
// full and returns immediately once the hub has stopped.
func (h *Hub[T]) Publish(v T) {
	select {
	case h.broadcast <- v:
	case <-h.done:
	}
}

// Done is closed after Run returns.
func (h *Hub[T]) Done() <-chan struct{} { return h.done }
