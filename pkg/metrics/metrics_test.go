package metrics

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetupDisabled(t *testing.T) {
	before := otel.GetMeterProvider()
	shutdown, err := Setup(context.Background(), Options{})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
	assert.Equal(t, before, otel.GetMeterProvider())
}

func TestSetupExportsOnShutdown(t *testing.T) {
	var buf bytes.Buffer
	shutdown, err := Setup(context.Background(), Options{
		Enabled:  true,
		Interval: time.Hour,
		Writer:   &buf,
	})
	require.NoError(t, err)

	counter, err := otel.Meter(ScopeName).Int64Counter("f123telem.test.counter")
	require.NoError(t, err)
	counter.Add(context.Background(), 2)

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), "f123telem.test.counter")
}
