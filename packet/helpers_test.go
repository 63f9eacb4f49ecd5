package packet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var testHeader = Header{
	GameYear:                23,
	GameMajorVersion:        1,
	GameMinorVersion:        18,
	SessionUID:              0x1122334455667788,
	SessionTime:             42.5,
	FrameIdentifier:         1000,
	OverallFrameIdentifier:  1001,
	PlayerCarIndex:          3,
	SecondaryPlayerCarIndex: NoCar,
}

func newWriter(t *testing.T, id PacketID) *Writer {
	t.Helper()
	w, err := NewPacketWriter(id, testHeader)
	require.NoError(t, err)
	return w
}

// patterned returns a buffer of kind id whose body is filled with a non-zero
// byte pattern, with valid text in every text field.
func patterned(t *testing.T, id PacketID) []byte {
	t.Helper()
	l, ok := LayoutFor(id)
	require.True(t, ok)
	buf := make([]byte, l.Size())
	for i := range buf {
		buf[i] = byte(i*7 + 3)
	}
	w, err := NewWriterFrom(l, buf)
	require.NoError(t, err)
	hdr := testHeader
	hdr.PacketID = uint8(id)
	require.NoError(t, w.SetHeader(hdr))

	switch id {
	case PacketParticipants:
		for i := 0; i < MaxCars; i++ {
			require.NoError(t, w.SetText(indexPath("participants", i)+".name", "Driver"))
		}
	case PacketLobbyInfo:
		for i := 0; i < MaxCars; i++ {
			require.NoError(t, w.SetText(indexPath("lobby_players", i)+".name", "Player"))
		}
	case PacketEvent:
		require.NoError(t, w.SetText("event_string_code", CodeSpeedTrap))
	}
	return w.Bytes()
}
