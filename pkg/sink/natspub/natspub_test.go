package natspub

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/ohler55/ojg/oj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gadams999/f123telem/packet"
	"github.com/gadams999/f123telem/pkg/pipeline"
)

type fakePublisher struct {
	msgs []*nats.Msg
	err  error
}

func (f *fakePublisher) PublishMsg(m *nats.Msg) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, m)
	return nil
}

func decoded(t *testing.T) pipeline.Decoded {
	t.Helper()
	w, err := packet.NewPacketWriter(packet.PacketLapData, packet.Header{
		SessionUID:      0x1122334455667788,
		FrameIdentifier: 1234,
	})
	require.NoError(t, err)
	require.NoError(t, w.SetUint("time_trial_pb_car_idx", 255))
	p, err := packet.DecodePacket(w.Bytes())
	require.NoError(t, err)
	return pipeline.Decoded{Received: time.Now(), Raw: w.Bytes(), Packet: p}
}

func TestMessage(t *testing.T) {
	s := New(&fakePublisher{}, "f123", "run-1")
	msg := s.Message(decoded(t))

	assert.Equal(t, "f123.1122334455667788.lap_data", msg.Subject)
	assert.Equal(t, "run-1", msg.Header.Get(HeaderRunID))
	assert.Equal(t, "2", msg.Header.Get(HeaderPacketID))
	assert.Equal(t, "1234", msg.Header.Get(HeaderFrame))

	v, err := oj.Parse(msg.Data)
	require.NoError(t, err)
	assert.Equal(t, int64(255), v.(map[string]any)["time_trial_pb_car_idx"])
}

func TestConsume(t *testing.T) {
	pub := &fakePublisher{}
	in := make(chan pipeline.Decoded, 2)
	in <- decoded(t)
	in <- decoded(t)
	close(in)

	New(pub, "f123", "run-1").Consume(context.Background(), in)
	assert.Len(t, pub.msgs, 2)
}

func TestPublishError(t *testing.T) {
	s := New(&fakePublisher{err: nats.ErrConnectionClosed}, "f123", "run-1")
	err := s.Publish(decoded(t))
	assert.True(t, errors.Is(err, nats.ErrConnectionClosed))
}
