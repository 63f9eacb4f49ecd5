package mock

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gadams999/f123telem/pkg/mock"
)

var (
	addr   string
	hz     int
	frames int
	seed   int64
	player uint8
)

func NewMockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mock",
		Short: "send synthetic telemetry, for trying the other commands without the game",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			g := mock.NewGenerator(seed)
			g.PlayerCarIndex = player
			return mock.Send(ctx, g, addr, hz, frames)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:20777", "UDP address to send to")
	cmd.Flags().IntVar(&hz, "hz", 60, "frames per second")
	cmd.Flags().IntVar(&frames, "frames", 0, "stop after this many frames, 0 runs until interrupted")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().Uint8Var(&player, "player", 0, "player car index")
	return cmd
}
