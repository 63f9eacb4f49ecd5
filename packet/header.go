package packet

import (
	"bytes"
	"encoding/binary"
)

const (
	// HeaderSize is the width of the header that prefixes every packet.
	HeaderSize = 29

	Format2023 int16 = 2023
	Version1   uint8 = 1

	// NoCar marks an absent car index, such as the secondary player outside splitscreen.
	NoCar uint8 = 255
	// MaxCars is the arity of every per-car array.
	MaxCars = 22
)

// Header is the fixed prefix present in every packet.
type Header struct {
	PacketFormat            int16   // 2023
	GameYear                uint8   // Game year - last two digits e.g. 23
	GameMajorVersion        uint8   // Game major version - "X.00"
	GameMinorVersion        uint8   // Game minor version - "1.XX"
	PacketVersion           uint8   // Version of this packet type, all start from 1
	PacketID                uint8   // Identifier for the packet type
	SessionUID              uint64  // Unique identifier for the session
	SessionTime             float32 // Session timestamp
	FrameIdentifier         uint32  // Identifier for the frame the data was retrieved on
	OverallFrameIdentifier  uint32  // Overall identifier, doesn't go back after flashbacks
	PlayerCarIndex          uint8   // Index of player's car in the array
	SecondaryPlayerCarIndex uint8   // Index of secondary player's car (splitscreen), 255 if none
}

var headerLayout = NewLayout("header",
	Int16("packet_format"),
	Uint8("game_year"),
	Uint8("game_major_version"),
	Uint8("game_minor_version"),
	Uint8("packet_version"),
	Uint8("packet_id"),
	Uint64("session_uid"),
	Float32("session_time"),
	Uint32("frame_identifier"),
	Uint32("overall_frame_identifier"),
	Uint8("player_car_index"),
	Uint8("secondary_player_car_index"),
)

// HeaderLayout returns the layout of the common header.
func HeaderLayout() *Layout { return headerLayout }

// ParseHeader decodes the header from the start of buf.
func ParseHeader(buf []byte) (Header, error) {
	var hdr Header
	if len(buf) < HeaderSize {
		return hdr, ErrTooShort
	}
	if err := binary.Read(bytes.NewReader(buf[:HeaderSize]), binary.LittleEndian, &hdr); err != nil {
		return hdr, err
	}
	return hdr, nil
}

// Key is the dispatch key of the header.
func (h Header) Key() Key {
	return Key{Format: h.PacketFormat, Version: h.PacketVersion, ID: PacketID(h.PacketID)}
}

// HasSecondaryPlayer reports whether a splitscreen player is present.
func (h Header) HasSecondaryPlayer() bool {
	return h.SecondaryPlayerCarIndex != NoCar
}

// MarshalBinary encodes the header in wire order.
func (h Header) MarshalBinary() ([]byte, error) {
	var b bytes.Buffer
	b.Grow(HeaderSize)
	if err := binary.Write(&b, binary.LittleEndian, h); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
