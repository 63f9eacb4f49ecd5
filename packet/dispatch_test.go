package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSupportedKeys(t *testing.T) {
	keys := SupportedKeys()
	require.Len(t, keys, 14)
	for i, k := range keys {
		assert.Equal(t, PacketID(i), k.ID)
		l, err := Resolve(k.Format, k.Version, uint8(k.ID))
		require.NoError(t, err, k.String())
		want, _ := LayoutFor(k.ID)
		assert.Same(t, want, l)
	}
	assert.Equal(t, "2023/1/car_telemetry", Key{Format: 2023, Version: 1, ID: PacketCarTelemetry}.String())
}

func TestResolveUnsupported(t *testing.T) {
	tests := []struct {
		name    string
		format  int16
		version uint8
		id      uint8
	}{
		{"previous year", 2022, 1, 6},
		{"next version", 2023, 2, 6},
		{"id past table", 2023, 1, 14},
		{"zero key", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Resolve(tt.format, tt.version, tt.id)
			assert.Nil(t, l)
			assert.ErrorIs(t, err, ErrUnsupportedPacket)
			assert.Equal(t, "unsupported", Reason(err))
		})
	}
}

func TestParseHeader(t *testing.T) {
	hdr := testHeader
	hdr.PacketFormat = Format2023
	hdr.PacketVersion = Version1
	hdr.PacketID = uint8(PacketLapData)
	b, err := hdr.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, HeaderSize)

	got, err := ParseHeader(append(b, 1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, hdr, got)
	assert.Equal(t, Key{Format: 2023, Version: 1, ID: PacketLapData}, got.Key())
	assert.False(t, got.HasSecondaryPlayer())

	_, err = ParseHeader(b[:HeaderSize-1])
	assert.ErrorIs(t, err, ErrTooShort)
}

func TestReason(t *testing.T) {
	assert.Equal(t, "", Reason(nil))
	assert.Equal(t, "too_short", Reason(ErrTooShort))
	assert.Equal(t, "size_mismatch", Reason(&SizeMismatchError{}))
	assert.Equal(t, "unknown_event", Reason(&UnknownEventCodeError{Code: "ABCD"}))
	assert.Equal(t, "invalid_text", Reason(&InvalidTextError{Field: "name"}))
	assert.Equal(t, "other", Reason(ErrNotEvent))
}
