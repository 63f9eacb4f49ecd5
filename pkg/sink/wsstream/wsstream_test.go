package wsstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ohler55/ojg/oj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gadams999/f123telem/packet"
	"github.com/gadams999/f123telem/pkg/pipeline"
)

func decoded(t *testing.T, id packet.PacketID) pipeline.Decoded {
	t.Helper()
	w, err := packet.NewPacketWriter(id, packet.Header{FrameIdentifier: 5})
	require.NoError(t, err)
	p, err := packet.DecodePacket(w.Bytes())
	require.NoError(t, err)
	return pipeline.Decoded{Received: time.Now(), Raw: w.Bytes(), Packet: p}
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/" + query
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	resp.Body.Close()
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readKind(t *testing.T, conn *websocket.Conn) int64 {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	v, err := oj.Parse(data)
	require.NoError(t, err)
	hdr := v.(map[string]any)["header"].(map[string]any)
	return hdr["packet_id"].(int64)
}

func TestStreamFiltersByKind(t *testing.T) {
	s := NewServer(8)
	srv := httptest.NewServer(s)
	defer srv.Close()

	all := dial(t, srv, "")
	events := dial(t, srv, "?kinds=event,lap_data")
	require.Eventually(t, func() bool { return s.ClientCount() == 2 }, 2*time.Second, 10*time.Millisecond)

	in := make(chan pipeline.Decoded, 2)
	in <- decoded(t, packet.PacketCarTelemetry)
	in <- decoded(t, packet.PacketLapData)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Consume(ctx, in)

	assert.Equal(t, int64(packet.PacketCarTelemetry), readKind(t, all))
	assert.Equal(t, int64(packet.PacketLapData), readKind(t, all))
	assert.Equal(t, int64(packet.PacketLapData), readKind(t, events))
}

func TestStreamRejectsUnknownKind(t *testing.T) {
	srv := httptest.NewServer(NewServer(0))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/?kinds=event,bogus")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSlowClientDropsMessages(t *testing.T) {
	s := NewServer(1)
	srv := httptest.NewServer(s)
	defer srv.Close()

	conn := dial(t, srv, "")
	require.Eventually(t, func() bool { return s.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	// nobody reads, Broadcast must still return
	d := decoded(t, packet.PacketSession)
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			s.Broadcast(d)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Broadcast blocked on a slow client")
	}

	conn.Close()
	assert.Eventually(t, func() bool { return s.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestSendAfterClose(t *testing.T) {
	s := NewServer(4)
	srv := httptest.NewServer(s)
	defer srv.Close()

	dial(t, srv, "")
	require.Eventually(t, func() bool { return s.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	c := s.snapshotClients()[0]
	assert.True(t, c.trySend([]byte("{}")))

	c.close()
	c.close()
	assert.False(t, c.trySend([]byte("{}")))
	assert.NotPanics(t, func() { s.Broadcast(decoded(t, packet.PacketSession)) })
}
