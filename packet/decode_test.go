package packet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePacketTooShort(t *testing.T) {
	for n := 0; n < HeaderSize; n++ {
		_, err := DecodePacket(make([]byte, n))
		assert.ErrorIs(t, err, ErrTooShort, "len %d", n)
	}
	_, err := DecodePacket(nil)
	assert.ErrorIs(t, err, ErrTooShort)
}

func TestDecodePacketUnsupported(t *testing.T) {
	tests := []struct {
		name    string
		format  int16
		version uint8
		id      uint8
	}{
		{"other year", 2022, 1, 0},
		{"other version", 2023, 2, 0},
		{"unknown id", 2023, 1, 14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// correct total length for a motion packet, only the key is wrong
			buf := newWriter(t, PacketMotion).Bytes()
			buf[0], buf[1] = byte(tt.format), byte(uint16(tt.format)>>8)
			buf[5], buf[6] = tt.version, tt.id

			_, err := DecodePacket(buf)
			require.ErrorIs(t, err, ErrUnsupportedPacket)
			var ue *UnsupportedPacketError
			require.True(t, errors.As(err, &ue))
			assert.Equal(t, tt.format, ue.Format)
			assert.Equal(t, tt.version, ue.Version)
			assert.Equal(t, tt.id, ue.ID)
		})
	}
}

func TestDecodePacketSizeMismatch(t *testing.T) {
	buf := newWriter(t, PacketCarTelemetry).Bytes()
	for _, b := range [][]byte{buf[:len(buf)-1], append(buf, 0)} {
		_, err := DecodePacket(b)
		require.ErrorIs(t, err, ErrSizeMismatch)
		var se *SizeMismatchError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, 1352, se.Expected)
		assert.Equal(t, len(b), se.Actual)
		assert.Equal(t, "car_telemetry", se.Layout)
	}
}

func TestDecodeCarTelemetry(t *testing.T) {
	w := newWriter(t, PacketCarTelemetry)
	require.NoError(t, w.SetUint("car_telemetry_data[3].speed", 312))
	require.NoError(t, w.SetFloat("car_telemetry_data[3].throttle", 0.75))
	require.NoError(t, w.SetInt("car_telemetry_data[3].gear", -1))
	require.NoError(t, w.SetUint("car_telemetry_data[3].engine_rpm", 11500))
	require.NoError(t, w.SetUint("car_telemetry_data[3].brakes_temperature[2]", 850))
	require.NoError(t, w.SetInt("suggested_gear", 7))

	p, err := DecodePacket(w.Bytes())
	require.NoError(t, err)
	assert.Equal(t, PacketCarTelemetry, p.ID)
	assert.Equal(t, "car_telemetry", p.Kind())
	assert.Equal(t, testHeader.SessionUID, p.Header.SessionUID)
	assert.Equal(t, uint8(3), p.Header.PlayerCarIndex)

	cars, ok := p.Record.Records("car_telemetry_data")
	require.True(t, ok)
	require.Len(t, cars, MaxCars)

	speed, ok := cars[3].Uint("speed")
	assert.True(t, ok)
	assert.Equal(t, uint64(312), speed)

	throttle, ok := cars[3].Float("throttle")
	assert.True(t, ok)
	assert.Equal(t, 0.75, throttle)

	gear, ok := cars[3].Int("gear")
	assert.True(t, ok)
	assert.Equal(t, int64(-1), gear)
	_, ok = cars[3].Uint("gear")
	assert.False(t, ok, "negative gear is not unsigned")

	brakes, ok := cars[3].Array("brakes_temperature")
	require.True(t, ok)
	assert.Equal(t, []any{uint16(0), uint16(0), uint16(850), uint16(0)}, brakes)

	sg, ok := p.Record.Int("suggested_gear")
	assert.True(t, ok)
	assert.Equal(t, int64(7), sg)

	v, err := p.Record.Lookup("car_telemetry_data[3].engine_rpm")
	require.NoError(t, err)
	assert.Equal(t, uint16(11500), v)

	v, err = p.Record.Lookup("car_telemetry_data[3].brakes_temperature[2]")
	require.NoError(t, err)
	assert.Equal(t, uint16(850), v)

	_, err = p.Record.Lookup("car_telemetry_data[22]")
	assert.Error(t, err)
	_, ok = p.Record.Get("nope")
	assert.False(t, ok)
}

func TestDecodeText(t *testing.T) {
	w := newWriter(t, PacketParticipants)
	require.NoError(t, w.SetText("participants[0].name", "Max"))
	require.NoError(t, w.SetText("participants[1].name", "Kimi Räikkönen"))
	buf := w.Bytes()

	// bytes after the terminator carry no meaning
	off, _, err := participantsLayout.Locate("participants[0].name")
	require.NoError(t, err)
	copy(buf[off+10:], "garbage")

	p, err := DecodePacket(buf)
	require.NoError(t, err)
	name, err := p.Record.Lookup("participants[0].name")
	require.NoError(t, err)
	assert.Equal(t, "Max", name)
	name, err = p.Record.Lookup("participants[1].name")
	require.NoError(t, err)
	assert.Equal(t, "Kimi Räikkönen", name)
}

func TestDecodeFullWidthText(t *testing.T) {
	full := "ABCDEFGHIJKLMNOPQRSTUVWXYZABCDEFGHIJKLMNOPQRSTUV"
	require.Len(t, full, 48)
	w := newWriter(t, PacketLobbyInfo)
	require.NoError(t, w.SetText("lobby_players[5].name", full))

	p, err := DecodePacket(w.Bytes())
	require.NoError(t, err)
	name, err := p.Record.Lookup("lobby_players[5].name")
	require.NoError(t, err)
	assert.Equal(t, full, name)
}

func TestDecodeInvalidText(t *testing.T) {
	buf := newWriter(t, PacketParticipants).Bytes()
	off, _, err := participantsLayout.Locate("participants[2].name")
	require.NoError(t, err)
	buf[off], buf[off+1] = 0xff, 0xfe

	_, err = DecodePacket(buf)
	require.ErrorIs(t, err, ErrInvalidText)
	var te *InvalidTextError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "participants[2].name", te.Field)
}

func TestDecodeRoundTrip(t *testing.T) {
	for _, key := range SupportedKeys() {
		t.Run(key.ID.String(), func(t *testing.T) {
			buf := patterned(t, key.ID)
			p, err := DecodePacket(buf)
			require.NoError(t, err)

			out, err := Encode(p.Record)
			require.NoError(t, err)
			assert.Len(t, out, p.Record.Layout().Size())
			assert.Equal(t, buf, out)
		})
	}
}

func TestDecodeDoesNotRound(t *testing.T) {
	w := newWriter(t, PacketMotion)
	require.NoError(t, w.SetFloat("car_motion_data[0].yaw", 1.23456789))
	p, err := DecodePacket(w.Bytes())
	require.NoError(t, err)
	yaw, err := p.Record.Lookup("car_motion_data[0].yaw")
	require.NoError(t, err)
	assert.Equal(t, float32(1.23456789), yaw)
}

func TestDecodeConcurrent(t *testing.T) {
	buf := patterned(t, PacketLapData)
	want, err := DecodePacket(buf)
	require.NoError(t, err)

	done := make(chan *Packet, 8)
	for i := 0; i < cap(done); i++ {
		go func() {
			p, _ := DecodePacket(buf)
			done <- p
		}()
	}
	for i := 0; i < cap(done); i++ {
		got := <-done
		require.NotNil(t, got)
		assert.Equal(t, CompactJSON(want.Record), CompactJSON(got.Record))
	}
}
