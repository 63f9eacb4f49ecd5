// Package wsstream streams decoded packets to websocket clients.
package wsstream

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/samber/lo"

	"github.com/gadams999/f123telem/log"
	"github.com/gadams999/f123telem/packet"
	"github.com/gadams999/f123telem/pkg/pipeline"
)

const writeWait = 5 * time.Second

type Server struct {
	sendBuf  int
	upgrader websocket.Upgrader
	clients  map[*client]struct{}
	mu       sync.RWMutex
	log      *log.Logger
}

type client struct {
	conn  *websocket.Conn
	send  chan []byte
	kinds map[string]struct{} // empty means all

	mu     sync.Mutex // guards send against close
	closed bool
}

// NewServer returns a handler sending up to sendBuf queued messages per
// client; further messages are dropped for that client.
func NewServer(sendBuf int) *Server {
	if sendBuf <= 0 {
		sendBuf = 64
	}
	return &Server{
		sendBuf: sendBuf,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
		log:     log.Default().Named("sink.ws"),
	}
}

// ServeHTTP upgrades the request. The optional kinds query parameter is a
// comma separated list of packet kinds, e.g. ?kinds=event,lap_data.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	kinds, bad := parseKinds(r.URL.Query().Get("kinds"))
	if len(bad) > 0 {
		http.Error(w, "unknown packet kinds: "+strings.Join(bad, ","), http.StatusBadRequest)
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug("upgrade failed", log.ErrorField(err))
		return
	}
	c := &client{
		conn:  conn,
		send:  make(chan []byte, s.sendBuf),
		kinds: kinds,
	}
	s.addClient(c)
	s.log.Debug("client connected",
		log.String("remote", r.RemoteAddr), log.Strings("kinds", lo.Keys(kinds)))

	go c.writeLoop()
	c.readLoop()

	c.close()
	s.removeClient(c)
}

func parseKinds(raw string) (kinds map[string]struct{}, unknown []string) {
	kinds = map[string]struct{}{}
	if raw == "" {
		return kinds, nil
	}
	for _, k := range strings.Split(raw, ",") {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if _, ok := packet.ParsePacketID(k); !ok {
			unknown = append(unknown, k)
			continue
		}
		kinds[k] = struct{}{}
	}
	return kinds, unknown
}

// ClientCount returns the number of connected clients.
func (s *Server) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// Broadcast queues d for every client interested in its kind.
func (s *Server) Broadcast(d pipeline.Decoded) {
	kind := d.Packet.Kind()
	var msg []byte
	for _, c := range s.snapshotClients() {
		if !c.wants(kind) {
			continue
		}
		if msg == nil {
			msg = []byte(packet.CompactJSON(d.Packet.Record))
		}
		c.trySend(msg)
	}
}

// Consume broadcasts every packet from in until ctx is done or in is closed,
// then disconnects all clients.
func (s *Server) Consume(ctx context.Context, in <-chan pipeline.Decoded) {
	defer func() {
		for _, c := range s.snapshotClients() {
			c.close()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-in:
			if !ok {
				return
			}
			s.Broadcast(d)
		}
	}
}

func (s *Server) addClient(c *client) {
	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()
}

func (s *Server) removeClient(c *client) {
	s.mu.Lock()
	delete(s.clients, c)
	s.mu.Unlock()
}

func (s *Server) snapshotClients() []*client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Keys(s.clients)
}

func (c *client) wants(kind string) bool {
	if len(c.kinds) == 0 {
		return true
	}
	_, ok := c.kinds[kind]
	return ok
}

// readLoop discards client messages; it returns once the peer goes away.
func (c *client) readLoop() {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writeLoop() {
	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			c.close()
			return
		}
	}
}

// trySend queues msg without blocking. It reports false when the queue is
// full or the client is closed.
func (c *client) trySend(msg []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (c *client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
}
