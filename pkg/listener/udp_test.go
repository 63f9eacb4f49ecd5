package listener

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func send(t *testing.T, to net.Addr, payloads ...[]byte) {
	t.Helper()
	conn, err := net.Dial("udp", to.String())
	require.NoError(t, err)
	defer conn.Close()
	for _, p := range payloads {
		_, err := conn.Write(p)
		require.NoError(t, err)
	}
}

func TestListenReceives(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := make(chan []byte, 4)
	l, err := Listen(ctx, "127.0.0.1:0", out, WithReadTimeout(50*time.Millisecond))
	require.NoError(t, err)

	send(t, l.Addr(), []byte{1, 2, 3}, []byte("second"))

	for _, want := range [][]byte{{1, 2, 3}, []byte("second")} {
		select {
		case got := <-out:
			assert.Equal(t, want, got)
		case <-time.After(2 * time.Second):
			t.Fatal("datagram not received")
		}
	}
}

func TestListenTruncatesToBuffer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := make(chan []byte, 1)
	l, err := Listen(ctx, "127.0.0.1:0", out, WithBufferSize(4), WithErrorHandler(func(error) {}))
	require.NoError(t, err)

	send(t, l.Addr(), []byte{1, 2, 3, 4, 5, 6})
	select {
	case got := <-out:
		assert.Len(t, got, 4)
	case <-time.After(2 * time.Second):
		t.Fatal("datagram not received")
	}
}

func TestListenStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan []byte)
	l, err := Listen(ctx, "127.0.0.1:0", out, WithReadTimeout(20*time.Millisecond))
	require.NoError(t, err)

	cancel()
	select {
	case <-l.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not stop")
	}
	assert.NoError(t, l.Close())
}

func TestListenBadAddr(t *testing.T) {
	_, err := Listen(context.Background(), "not an addr", make(chan []byte))
	assert.Error(t, err)
}
