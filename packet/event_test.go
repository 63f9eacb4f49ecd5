package packet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventBuffer(t *testing.T, code string, set func(w *Writer)) []byte {
	t.Helper()
	w := newWriter(t, PacketEvent)
	require.NoError(t, w.SetText("event_string_code", code))
	if set != nil {
		set(w)
	}
	return w.Bytes()
}

func TestDecodeEventFastestLap(t *testing.T) {
	buf := eventBuffer(t, CodeFastestLap, func(w *Writer) {
		require.NoError(t, w.SetUint("event_details.fastest_lap.vehicle_idx", 7))
		require.NoError(t, w.SetFloat("event_details.fastest_lap.lap_time", 83.25))
	})
	// trailing union bytes belong to no field of the selected member
	for i := HeaderSize + EventCodeSize + 5; i < len(buf); i++ {
		buf[i] = 0xaa
	}

	ev, err := DecodeEvent(buf)
	require.NoError(t, err)
	assert.Equal(t, CodeFastestLap, ev.Code)
	assert.Equal(t, "fastest_lap", ev.Name())
	assert.Equal(t, FastestLap{VehicleIdx: 7, LapTime: 83.25}, ev.Details)

	p, err := DecodePacket(buf)
	require.NoError(t, err)
	vr, ok := p.Record.Variant("event_details")
	require.True(t, ok)
	assert.Equal(t, CodeFastestLap, vr.Code)
	assert.Equal(t, "fastest_lap", vr.Name)
	require.NotNil(t, vr.Fields)
	assert.Equal(t, []string{"vehicle_idx", "lap_time"}, Canonicalize(vr.Fields).Keys())

	details, ok := p.Canonical().Get("event_details")
	require.True(t, ok)
	assert.Equal(t, Map{
		{Key: "vehicle_idx", Value: uint64(7)},
		{Key: "lap_time", Value: 83.25},
	}, details)
}

func TestDecodeEventMarker(t *testing.T) {
	buf := eventBuffer(t, CodeSessionStarted, nil)

	ev, err := DecodeEvent(buf)
	require.NoError(t, err)
	assert.Equal(t, SessionStarted{}, ev.Details)

	p, err := DecodePacket(buf)
	require.NoError(t, err)
	vr, ok := p.Record.Variant("event_details")
	require.True(t, ok)
	assert.Nil(t, vr.Fields)

	details, ok := p.Canonical().Get("event_details")
	require.True(t, ok)
	assert.Empty(t, details)
	code, ok := p.Canonical().Get("event_string_code")
	require.True(t, ok)
	assert.Equal(t, "SSTA", code)
}

func TestDecodeEventAllCodes(t *testing.T) {
	tests := []struct {
		code string
		want EventDetails
	}{
		{CodeSessionStarted, SessionStarted{}},
		{CodeSessionEnded, SessionEnded{}},
		{CodeFastestLap, FastestLap{VehicleIdx: 1}},
		{CodeRetirement, Retirement{VehicleIdx: 1}},
		{CodeDRSEnabled, DRSEnabled{}},
		{CodeDRSDisabled, DRSDisabled{}},
		{CodeTeamMateInPits, TeamMateInPits{VehicleIdx: 1}},
		{CodeChequeredFlag, ChequeredFlag{}},
		{CodeRaceWinner, RaceWinner{VehicleIdx: 1}},
		{CodePenalty, Penalty{PenaltyType: 1}},
		{CodeSpeedTrap, SpeedTrap{VehicleIdx: 1}},
		{CodeStartLights, StartLights{NumLights: 1}},
		{CodeLightsOut, LightsOut{}},
		{CodeDriveThroughServed, DriveThroughServed{VehicleIdx: 1}},
		{CodeStopGoServed, StopGoServed{VehicleIdx: 1}},
		{CodeFlashback, Flashback{FrameIdentifier: 1}},
		{CodeButtons, Buttons{ButtonStatus: 1}},
		{CodeRedFlag, RedFlag{}},
		{CodeOvertake, Overtake{OvertakingVehicleIdx: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			// first payload byte set, the rest zero
			buf := eventBuffer(t, tt.code, func(w *Writer) {
				w.buf[HeaderSize+EventCodeSize] = 1
			})
			ev, err := DecodeEvent(buf)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ev.Details)
			assert.Equal(t, tt.code, ev.Details.Code())

			p, err := DecodePacket(buf)
			require.NoError(t, err)
			vr, _ := p.Record.Variant("event_details")
			assert.Equal(t, ev.Name(), vr.Name)
		})
	}
}

func TestDecodeEventUnknownCode(t *testing.T) {
	buf := eventBuffer(t, "XXXX", nil)

	_, err := DecodeEvent(buf)
	require.ErrorIs(t, err, ErrUnknownEventCode)
	var ue *UnknownEventCodeError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "XXXX", ue.Code)

	_, err = DecodePacket(buf)
	assert.ErrorIs(t, err, ErrUnknownEventCode)
}

func TestDecodeEventRawCodeBytes(t *testing.T) {
	tests := []struct {
		name string
		code []byte
	}{
		{"not utf-8", []byte{0xff, 0xfe, 0xfd, 0xfc}},
		{"embedded nul", []byte{'S', 0x00, 'T', 'A'}},
		{"trailing nul", []byte{'S', 'S', 'T', 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := eventBuffer(t, CodeSessionStarted, nil)
			copy(buf[HeaderSize:], tt.code)

			for _, decode := range []func([]byte) error{
				func(b []byte) error { _, err := DecodeEvent(b); return err },
				func(b []byte) error { _, err := DecodePacket(b); return err },
			} {
				err := decode(buf)
				require.ErrorIs(t, err, ErrUnknownEventCode)
				assert.NotErrorIs(t, err, ErrInvalidText)
				var ue *UnknownEventCodeError
				require.True(t, errors.As(err, &ue))
				assert.Equal(t, string(tt.code), ue.Code)
				assert.Equal(t, "unknown_event", Reason(err))
			}
		})
	}
}

func TestDecodeEventErrors(t *testing.T) {
	_, err := DecodeEvent(make([]byte, 10))
	assert.ErrorIs(t, err, ErrTooShort)

	_, err = DecodeEvent(newWriter(t, PacketSession).Bytes())
	assert.ErrorIs(t, err, ErrNotEvent)

	buf := eventBuffer(t, CodeButtons, nil)
	_, err = DecodeEvent(buf[:44])
	assert.ErrorIs(t, err, ErrSizeMismatch)

	buf[5] = 9
	_, err = DecodeEvent(buf)
	assert.ErrorIs(t, err, ErrUnsupportedPacket)
}
