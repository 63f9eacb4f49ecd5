package dash

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gadams999/f123telem/log"
	"github.com/gadams999/f123telem/pkg/cmd/util"
	"github.com/gadams999/f123telem/pkg/config"
	"github.com/gadams999/f123telem/pkg/dash"
	"github.com/gadams999/f123telem/pkg/pipeline"
)

func NewDashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dash",
		Short: "show a live dashboard of the player's car",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDash(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&config.Addr, "addr", config.DefaultAddr,
		"UDP address to receive telemetry on")
	cmd.Flags().IntVar(&config.BufferSize, "buffer", config.DefaultBufferSize,
		"max datagram size")
	return cmd
}

func runDash(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// the terminal belongs to the dashboard
	if l, err := log.New(log.Config{Level: "error", Format: config.LogFormat}); err == nil {
		log.ResetDefault(l)
	}

	packets := make(chan pipeline.Decoded, 64)
	errCh := make(chan error, 1)
	go func() {
		errCh <- util.Receive(ctx, func(d pipeline.Decoded) {
			select {
			case packets <- d:
			default:
			}
		})
		close(packets)
	}()

	err := dash.Run(ctx, packets)
	stop()
	if rerr := <-errCh; rerr != nil {
		return rerr
	}
	return err
}
