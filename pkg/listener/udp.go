// Package listener receives game telemetry datagrams from a UDP socket.
package listener

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"
)

type Listener struct {
	conn         *net.UDPConn
	out          chan<- []byte
	bufSize      int
	readTimeout  time.Duration
	errorHandler func(error)
	done         chan struct{}
	closeOnce    sync.Once
}

type Option func(*Listener)

// WithBufferSize sets the read buffer. Datagrams longer than n are truncated
// by the kernel and then rejected by the decoder.
func WithBufferSize(n int) Option {
	return func(l *Listener) {
		if n > 0 {
			l.bufSize = n
		}
	}
}

// WithReadTimeout bounds each read so the loop notices cancellation on
// sockets that stay silent.
func WithReadTimeout(d time.Duration) Option {
	return func(l *Listener) {
		if d > 0 {
			l.readTimeout = d
		}
	}
}

func WithErrorHandler(fn func(error)) Option {
	return func(l *Listener) {
		if fn != nil {
			l.errorHandler = fn
		}
	}
}

// Listen binds addr and starts sending a copy of every datagram to out. The
// socket is closed when ctx is done or Close is called; out is never closed.
func Listen(ctx context.Context, addr string, out chan<- []byte, opts ...Option) (*Listener, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("listener: resolve %s: %w", addr, err)
	}
	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return nil, fmt.Errorf("listener: listen %s: %w", addr, err)
	}
	l := &Listener{
		conn:        conn,
		out:         out,
		bufSize:     2048,
		readTimeout: time.Second,
		done:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	go func() {
		select {
		case <-ctx.Done():
			l.Close()
		case <-l.done:
		}
	}()
	go l.run(ctx)
	return l, nil
}

// Addr returns the bound local address, useful after listening on port 0.
func (l *Listener) Addr() net.Addr { return l.conn.LocalAddr() }

// Done is closed once the read loop has stopped.
func (l *Listener) Done() <-chan struct{} { return l.done }

func (l *Listener) Close() error {
	var err error
	l.closeOnce.Do(func() {
		err = l.conn.Close()
	})
	return err
}

func (l *Listener) run(ctx context.Context) {
	defer close(l.done)
	buf := make([]byte, l.bufSize)
	for {
		if ctx.Err() != nil {
			return
		}
		if l.readTimeout > 0 {
			_ = l.conn.SetReadDeadline(time.Now().Add(l.readTimeout))
		}
		n, _, err := l.conn.ReadFromUDP(buf)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			var nerr net.Error
			if errors.As(err, &nerr) && nerr.Timeout() {
				continue
			}
			l.handleError(err)
			continue
		}
		payload := append([]byte(nil), buf[:n]...)
		select {
		case l.out <- payload:
		case <-ctx.Done():
			return
		}
	}
}

func (l *Listener) handleError(err error) {
	if l.errorHandler != nil {
		l.errorHandler(err)
	}
}
