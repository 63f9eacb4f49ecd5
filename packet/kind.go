package packet

import (
	"encoding/binary"
	"math"
)

// Kind is the primitive type of a scalar field or array element.
type Kind uint8

const (
	Uint8Kind Kind = iota + 1
	Int8Kind
	Uint16Kind
	Int16Kind
	Uint32Kind
	Int32Kind
	Uint64Kind
	Int64Kind
	Float32Kind
	Float64Kind
)

var kindNames = map[Kind]string{
	Uint8Kind:   "uint8",
	Int8Kind:    "int8",
	Uint16Kind:  "uint16",
	Int16Kind:   "int16",
	Uint32Kind:  "uint32",
	Int32Kind:   "int32",
	Uint64Kind:  "uint64",
	Int64Kind:   "int64",
	Float32Kind: "float32",
	Float64Kind: "float64",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// Width is the encoded size in bytes.
func (k Kind) Width() int {
	switch k {
	case Uint8Kind, Int8Kind:
		return 1
	case Uint16Kind, Int16Kind:
		return 2
	case Uint32Kind, Int32Kind, Float32Kind:
		return 4
	case Uint64Kind, Int64Kind, Float64Kind:
		return 8
	default:
		return 0
	}
}

func (k Kind) Signed() bool {
	switch k {
	case Int8Kind, Int16Kind, Int32Kind, Int64Kind:
		return true
	default:
		return false
	}
}

func (k Kind) Float() bool {
	return k == Float32Kind || k == Float64Kind
}

// read decodes one little-endian value of kind k from b. The concrete Go type
// of the result matches the kind (uint8 for Uint8Kind, float32 for Float32Kind, ...).
func (k Kind) read(b []byte) any {
	switch k {
	case Uint8Kind:
		return b[0]
	case Int8Kind:
		return int8(b[0])
	case Uint16Kind:
		return binary.LittleEndian.Uint16(b)
	case Int16Kind:
		return int16(binary.LittleEndian.Uint16(b))
	case Uint32Kind:
		return binary.LittleEndian.Uint32(b)
	case Int32Kind:
		return int32(binary.LittleEndian.Uint32(b))
	case Uint64Kind:
		return binary.LittleEndian.Uint64(b)
	case Int64Kind:
		return int64(binary.LittleEndian.Uint64(b))
	case Float32Kind:
		return math.Float32frombits(binary.LittleEndian.Uint32(b))
	case Float64Kind:
		return math.Float64frombits(binary.LittleEndian.Uint64(b))
	default:
		return nil
	}
}

// putBits writes the low Width() bytes of bits in little-endian order.
func (k Kind) putBits(b []byte, bits uint64) {
	switch k.Width() {
	case 1:
		b[0] = uint8(bits)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(bits))
	case 4:
		binary.LittleEndian.PutUint32(b, uint32(bits))
	case 8:
		binary.LittleEndian.PutUint64(b, bits)
	}
}

// bitsOf converts a decoded value of kind k back into its raw bit pattern.
func (k Kind) bitsOf(v any) (uint64, bool) {
	switch x := v.(type) {
	case uint8:
		return uint64(x), k == Uint8Kind
	case int8:
		return uint64(uint8(x)), k == Int8Kind
	case uint16:
		return uint64(x), k == Uint16Kind
	case int16:
		return uint64(uint16(x)), k == Int16Kind
	case uint32:
		return uint64(x), k == Uint32Kind
	case int32:
		return uint64(uint32(x)), k == Int32Kind
	case uint64:
		return x, k == Uint64Kind
	case int64:
		return uint64(x), k == Int64Kind
	case float32:
		return uint64(math.Float32bits(x)), k == Float32Kind
	case float64:
		return math.Float64bits(x), k == Float64Kind
	default:
		return 0, false
	}
}

// asUint64, asInt64 and asFloat64 widen any decoded scalar.
func asUint64(v any) (uint64, bool) {
	switch x := v.(type) {
	case uint8:
		return uint64(x), true
	case uint16:
		return uint64(x), true
	case uint32:
		return uint64(x), true
	case uint64:
		return x, true
	case int8:
		return uint64(x), x >= 0
	case int16:
		return uint64(x), x >= 0
	case int32:
		return uint64(x), x >= 0
	case int64:
		return uint64(x), x >= 0
	default:
		return 0, false
	}
}

func asInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), x <= math.MaxInt64
	default:
		return 0, false
	}
}

func asFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	if i, ok := asInt64(v); ok {
		return float64(i), true
	}
	if u, ok := asUint64(v); ok {
		return float64(u), true
	}
	return 0, false
}
