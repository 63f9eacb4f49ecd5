// Package canbus forwards the player's car telemetry to a CAN bus as OBD2
// style frames, so dashboards and gauges built for road cars can show it.
package canbus

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"net"

	"go.einride.tech/can"
	"go.einride.tech/can/pkg/socketcan"

	"github.com/gadams999/f123telem/log"
	"github.com/gadams999/f123telem/packet"
	"github.com/gadams999/f123telem/pkg/pipeline"
)

// Frame ids, named after the OBD2 PIDs they mirror.
const (
	IDEngineTemp  uint32 = 0x05 // A-40 °C
	IDEngineRPM   uint32 = 0x0c // (256A+B)/4
	IDSpeed       uint32 = 0x0d // km/h, capped at 255
	IDThrottle    uint32 = 0x11 // 100/255 A %
	IDSpeedCustom uint32 = 0xd0 // km/h as uint16
)

// Transmitter is satisfied by *socketcan.Transmitter.
type Transmitter interface {
	TransmitFrame(ctx context.Context, frame can.Frame) error
}

// Dial opens a raw CAN socket on iface, e.g. "vcan0". Close the returned
// connection when done.
func Dial(ctx context.Context, iface string) (*socketcan.Transmitter, net.Conn, error) {
	conn, err := socketcan.DialContext(ctx, "can", iface)
	if err != nil {
		return nil, nil, fmt.Errorf("canbus: dial %s: %w", iface, err)
	}
	return socketcan.NewTransmitter(conn), conn, nil
}

type Forwarder struct {
	tx  Transmitter
	log *log.Logger
}

func NewForwarder(tx Transmitter) *Forwarder {
	return &Forwarder{tx: tx, log: log.Default().Named("canbus")}
}

// Frames converts one car's telemetry into the frames sent on the bus.
func Frames(t packet.CarTelemetry) []can.Frame {
	speed := uint64(t.Speed)
	return []can.Frame{
		frame(IDSpeed, 1, min(speed, math.MaxUint8)),
		frame(IDSpeedCustom, 2, speed),
		frame(IDEngineRPM, 2, min(uint64(t.EngineRPM)*4, math.MaxUint16)),
		frame(IDThrottle, 1, uint64(math.Round(float64(clamp01(t.Throttle))*255))),
		frame(IDEngineTemp, 1, min(uint64(t.EngineTemperature)+40, math.MaxUint8)),
	}
}

func frame(id uint32, length uint8, value uint64) can.Frame {
	f := can.Frame{ID: id, Length: length}
	FrameUnsignedBigEndian(&f, value)
	return f
}

func clamp01(v float32) float32 {
	return max(0, min(v, 1))
}

// FrameUnsignedBigEndian copies value into the frame data in big endian
// order, truncated to frame.Length bytes.
func FrameUnsignedBigEndian(frame *can.Frame, value uint64) {
	buf := make([]byte, frame.Length)
	switch frame.Length {
	case 1:
		buf[0] = uint8(value)
	case 2:
		binary.BigEndian.PutUint16(buf, uint16(value))
	case 4:
		binary.BigEndian.PutUint32(buf, uint32(value))
	case 8:
		binary.BigEndian.PutUint64(buf, value)
	}
	copy(frame.Data[:frame.Length], buf)
}

// Send transmits the frames for t. It stops at the first failed frame.
func (f *Forwarder) Send(ctx context.Context, t packet.CarTelemetry) error {
	for _, fr := range Frames(t) {
		if err := f.tx.TransmitFrame(ctx, fr); err != nil {
			return fmt.Errorf("canbus: transmit 0x%x: %w", fr.ID, err)
		}
	}
	return nil
}

// Consume forwards the player's car of every car telemetry packet from in
// until ctx is done or in is closed. Other packets are ignored.
func (f *Forwarder) Consume(ctx context.Context, in <-chan pipeline.Decoded) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-in:
			if !ok {
				return
			}
			if d.Packet.ID != packet.PacketCarTelemetry {
				continue
			}
			t, err := packet.PlayerTelemetry(d.Packet)
			if errors.Is(err, packet.ErrNoPlayerCar) {
				continue
			}
			if err != nil {
				f.log.Warn("no player telemetry", log.ErrorField(err))
				continue
			}
			if err := f.Send(ctx, t); err != nil {
				f.log.Warn("failed to forward telemetry", log.ErrorField(err))
			}
		}
	}
}
