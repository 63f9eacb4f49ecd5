package mock

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/gadams999/f123telem/log"
)

// Send ticks g at hz and writes every datagram to the UDP address addr until
// ctx is done. frames limits the number of ticks, 0 means unlimited.
func Send(ctx context.Context, g *Generator, addr string, hz int, frames int) error {
	if hz <= 0 {
		return fmt.Errorf("mock: hz must be positive, got %d", hz)
	}
	conn, err := net.Dial("udp", addr)
	if err != nil {
		return fmt.Errorf("mock: dial %s: %w", addr, err)
	}
	defer conn.Close()

	l := log.Default().Named("mock")
	l.Info("sending synthetic telemetry",
		log.String("addr", addr), log.Int("hz", hz), log.Uint64("session_uid", g.SessionUID))

	interval := time.Second / time.Duration(hz)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for n := 0; frames == 0 || n < frames; n++ {
		datagrams, err := g.Tick(interval.Seconds())
		if err != nil {
			return err
		}
		for _, d := range datagrams {
			if _, err := conn.Write(d); err != nil {
				// nobody listening yet surfaces as a refused write on the next datagram
				l.Debug("write failed", log.ErrorField(err))
			}
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}
