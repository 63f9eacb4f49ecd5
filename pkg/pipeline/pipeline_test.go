package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/gadams999/f123telem/packet"
)

// counts returns metric name -> kind or reason -> sum
func counts(t *testing.T, reader *sdkmetric.ManualReader) map[string]map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	out := map[string]map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			out[m.Name] = map[string]int64{}
			for _, dp := range sum.DataPoints {
				for _, k := range []attribute.Key{"kind", "reason"} {
					if v, ok := dp.Attributes.Value(k); ok {
						out[m.Name][v.AsString()] += dp.Value
					}
				}
			}
		}
	}
	return out
}

func datagram(t *testing.T, id packet.PacketID) []byte {
	t.Helper()
	w, err := packet.NewPacketWriter(id, packet.Header{PlayerCarIndex: 0})
	require.NoError(t, err)
	return w.Bytes()
}

func TestHandle(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	at := time.Date(2023, 7, 9, 14, 0, 0, 0, time.UTC)

	var published []Decoded
	p, err := New(func(d Decoded) { published = append(published, d) },
		WithMeterProvider(mp),
		WithClock(func() time.Time { return at }))
	require.NoError(t, err)

	ctx := context.Background()
	telemetry := datagram(t, packet.PacketCarTelemetry)
	d, err := p.Handle(ctx, telemetry)
	require.NoError(t, err)
	assert.Equal(t, at, d.Received)
	assert.Equal(t, packet.PacketCarTelemetry, d.Packet.ID)

	_, err = p.Handle(ctx, datagram(t, packet.PacketSession))
	require.NoError(t, err)

	_, err = p.Handle(ctx, telemetry[:10])
	assert.ErrorIs(t, err, packet.ErrTooShort)
	_, err = p.Handle(ctx, telemetry[:len(telemetry)-1])
	assert.ErrorIs(t, err, packet.ErrSizeMismatch)

	old := append([]byte(nil), telemetry...)
	old[0], old[1] = 0xe6, 0x07 // 2022
	d, err = p.Handle(ctx, old)
	assert.ErrorIs(t, err, packet.ErrUnsupportedPacket)
	assert.Nil(t, d.Packet)

	require.Len(t, published, 2)
	assert.Equal(t, "car_telemetry", published[0].Packet.Kind())
	assert.Equal(t, "session", published[1].Packet.Kind())

	assert.Equal(t, map[string]map[string]int64{
		"f123telem.packets.decoded": {"car_telemetry": 1, "session": 1},
		"f123telem.packets.failed":  {"too_short": 1, "size_mismatch": 1, "unsupported": 1},
	}, counts(t, reader))
}

func TestRun(t *testing.T) {
	out := make(chan Decoded, 4)
	p, err := New(func(d Decoded) { out <- d })
	require.NoError(t, err)

	in := make(chan []byte, 3)
	in <- []byte{1, 2}
	in <- datagram(t, packet.PacketMotionEx)
	close(in)

	done := make(chan struct{})
	go func() {
		p.Run(context.Background(), in)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after input closed")
	}
	require.Len(t, out, 1)
	assert.Equal(t, packet.PacketMotionEx, (<-out).Packet.ID)
}

func TestRunStopsOnCancel(t *testing.T) {
	p, err := New(nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p.Run(ctx, make(chan []byte))
}
