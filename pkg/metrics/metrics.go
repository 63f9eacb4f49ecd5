// Package metrics installs the global otel MeterProvider.
package metrics

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/gadams999/f123telem/log"
)

const ScopeName = "github.com/gadams999/f123telem"

type Options struct {
	Enabled  bool
	Interval time.Duration // default 10s
	Writer   io.Writer     // default os.Stdout
}

// Setup installs a MeterProvider exporting to opts.Writer every
// opts.Interval. With Enabled false the global no-op provider stays in place
// and the returned shutdown does nothing.
func Setup(ctx context.Context, opts Options) (func(context.Context) error, error) {
	if !opts.Enabled {
		return func(context.Context) error { return nil }, nil
	}
	if opts.Interval <= 0 {
		opts.Interval = 10 * time.Second
	}
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	exp, err := stdoutmetric.New(stdoutmetric.WithWriter(opts.Writer))
	if err != nil {
		return nil, fmt.Errorf("metrics: create exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(opts.Interval))),
	)
	otel.SetMeterProvider(mp)
	log.Info("metrics export enabled", log.Duration("interval", opts.Interval))
	return mp.Shutdown, nil
}
