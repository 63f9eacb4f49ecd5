package listen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gadams999/f123telem/log"
	"github.com/gadams999/f123telem/pkg/canbus"
	"github.com/gadams999/f123telem/pkg/cmd/util"
	"github.com/gadams999/f123telem/pkg/config"
	"github.com/gadams999/f123telem/pkg/hub"
	"github.com/gadams999/f123telem/pkg/metrics"
	"github.com/gadams999/f123telem/pkg/pipeline"
	"github.com/gadams999/f123telem/pkg/sink/jsonl"
	"github.com/gadams999/f123telem/pkg/sink/natspub"
	"github.com/gadams999/f123telem/pkg/sink/wsstream"
)

func NewListenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listen",
		Short: "receive telemetry and forward it to the configured sinks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListen(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&config.Addr, "addr", config.DefaultAddr,
		"UDP address to receive telemetry on")
	cmd.Flags().IntVar(&config.BufferSize, "buffer", config.DefaultBufferSize,
		"max datagram size")
	cmd.Flags().StringVar(&config.RecordFile, "record", "",
		"append packets as JSON lines to this file, - for stdout")
	cmd.Flags().StringVar(&config.NatsURL, "nats-url", "",
		"publish packets to this NATS server")
	cmd.Flags().StringVar(&config.NatsPrefix, "nats-prefix", config.DefaultNatsPrefix,
		"subject prefix for NATS")
	cmd.Flags().StringVar(&config.WSAddr, "ws-addr", "",
		"serve a websocket stream of packets on this address")
	cmd.Flags().StringVar(&config.CanIface, "can-iface", "",
		"forward player telemetry to this socketcan interface, e.g. vcan0")
	cmd.Flags().BoolVar(&config.EnableMetrics, "metrics", false,
		"export metrics to stdout")
	cmd.Flags().StringVar(&config.MetricsInterval, "metrics-interval", "10s",
		"metric export interval")
	return cmd
}

type sink interface {
	Consume(ctx context.Context, in <-chan pipeline.Decoded)
}

//nolint:funlen // wiring
func runListen(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	interval, err := time.ParseDuration(config.MetricsInterval)
	if err != nil {
		return fmt.Errorf("invalid metrics interval: %w", err)
	}
	shutdown, err := metrics.Setup(ctx, metrics.Options{
		Enabled:  config.EnableMetrics,
		Interval: interval,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Warn("metrics shutdown", log.ErrorField(err))
		}
	}()

	sinks := map[string]sink{}
	var closers []io.Closer
	defer func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}()

	if config.RecordFile != "" {
		out := io.Writer(os.Stdout)
		if config.RecordFile != "-" {
			f, err := os.OpenFile(config.RecordFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return err
			}
			closers = append(closers, f)
			out = f
		}
		sinks["jsonl"] = jsonl.NewWriter(out)
	}
	if config.NatsURL != "" {
		nc, err := natspub.Connect(config.NatsURL, "f123telem-"+config.RunID)
		if err != nil {
			return err
		}
		defer nc.Drain()
		sinks["nats"] = natspub.New(nc, config.NatsPrefix, config.RunID)
	}
	var ws *wsstream.Server
	if config.WSAddr != "" {
		ws = wsstream.NewServer(0)
		sinks["ws"] = ws
	}
	if config.CanIface != "" {
		tx, conn, err := canbus.Dial(ctx, config.CanIface)
		if err != nil {
			return err
		}
		closers = append(closers, conn)
		sinks["can"] = canbus.NewForwarder(tx)
	}
	if len(sinks) == 0 {
		log.Warn("no sink configured, packets are only counted")
	}

	h := hub.New[pipeline.Decoded]("packets")
	go h.Run(ctx)

	var wg sync.WaitGroup
	for name, s := range sinks {
		sub := h.Subscribe()
		wg.Add(1)
		go func(name string, s sink) {
			defer wg.Done()
			log.Debug("sink started", log.String("sink", name))
			s.Consume(ctx, sub)
		}(name, s)
	}

	if ws != nil {
		srv := &http.Server{Addr: config.WSAddr, Handler: ws, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			log.Info("serving websocket stream", log.String("addr", config.WSAddr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("websocket server failed", log.ErrorField(err))
				stop()
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	err = util.Receive(ctx, h.Publish)
	stop()
	<-h.Done()
	wg.Wait()
	log.Info("listener stopped")
	return err
}
