package packet

import (
	"fmt"
	"sort"
)

// Key selects a layout from the header.
type Key struct {
	Format  int16
	Version uint8
	ID      PacketID
}

func (k Key) String() string {
	return fmt.Sprintf("%d/%d/%s", k.Format, k.Version, k.ID)
}

// dispatch is filled once during package initialization and only read afterwards.
var dispatch = func() map[Key]*Layout {
	m := make(map[Key]*Layout, packetCount)
	for id := PacketID(0); id < packetCount; id++ {
		m[Key{Format: Format2023, Version: Version1, ID: id}] = registry[id]
	}
	return m
}()

// Resolve returns the layout registered for the key. There is no fallback.
func Resolve(format int16, version, id uint8) (*Layout, error) {
	l, ok := dispatch[Key{Format: format, Version: version, ID: PacketID(id)}]
	if !ok {
		return nil, &UnsupportedPacketError{Format: format, Version: version, ID: id}
	}
	return l, nil
}

// SupportedKeys lists every registered key ordered by packet id.
func SupportedKeys() []Key {
	keys := make([]Key, 0, len(dispatch))
	for k := range dispatch {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Format != keys[j].Format {
			return keys[i].Format < keys[j].Format
		}
		if keys[i].Version != keys[j].Version {
			return keys[i].Version < keys[j].Version
		}
		return keys[i].ID < keys[j].ID
	})
	return keys
}
