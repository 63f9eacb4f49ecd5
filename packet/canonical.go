package packet

import (
	"math"
	"strconv"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"
	"github.com/shopspring/decimal"
)

// FloatPlaces is the number of decimals floats keep in canonical form.
const FloatPlaces = 3

// Entry is one key/value pair of a canonical mapping.
type Entry struct {
	Key   string
	Value any
}

// Map is a canonical mapping with keys in field declaration order.
type Map []Entry

func (m Map) Get(key string) (any, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

func (m Map) Keys() []string {
	keys := make([]string, len(m))
	for i, e := range m {
		keys[i] = e.Key
	}
	return keys
}

// Plain converts the mapping and everything below it into map[string]any and
// []any, the generic form JSON encoders and path queries work on.
func (m Map) Plain() map[string]any {
	out := make(map[string]any, len(m))
	for _, e := range m {
		out[e.Key] = plain(e.Value)
	}
	return out
}

func plain(v any) any {
	switch x := v.(type) {
	case Map:
		return x.Plain()
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = plain(e)
		}
		return out
	default:
		return v
	}
}

// Canonicalize flattens a record into primitives: floats rounded to
// FloatPlaces decimals as float64, integers as int64 or uint64, text as
// string, arrays as []any and records as Map. The active union member becomes
// a Map of its fields, empty for marker codes.
func Canonicalize(r *Record) Map {
	m := make(Map, len(r.layout.fields))
	for i, f := range r.layout.fields {
		m[i] = Entry{Key: f.Name, Value: canonicalValue(f, r.values[i])}
	}
	return m
}

func canonicalValue(f Field, v any) any {
	switch f.Shape {
	case ScalarShape:
		return canonicalScalar(v)
	case TextShape:
		return v
	case ArrayShape:
		arr := v.([]any)
		out := make([]any, len(arr))
		for i, e := range arr {
			out[i] = canonicalScalar(e)
		}
		return out
	case RecordShape:
		return Canonicalize(v.(*Record))
	case RecordArrayShape:
		subs := v.([]*Record)
		out := make([]any, len(subs))
		for i, sub := range subs {
			out[i] = Canonicalize(sub)
		}
		return out
	case UnionShape:
		vr := v.(*Variant)
		if vr.Fields == nil {
			return Map{}
		}
		return Canonicalize(vr.Fields)
	default:
		return nil
	}
}

func canonicalScalar(v any) any {
	switch x := v.(type) {
	case float32:
		return RoundFloat(float64(x))
	case float64:
		return RoundFloat(x)
	case uint8, uint16, uint32, uint64:
		u, _ := asUint64(x)
		return u
	default:
		i, _ := asInt64(x)
		return i
	}
}

// RoundFloat rounds the exact binary value to FloatPlaces decimals, ties to
// even, so 100.0625 becomes 100.062 and 1.0005 (stored just below) becomes 1.0.
// Negative zero is dropped. NaN and infinities have no JSON form and become nil.
func RoundFloat(f float64) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	r, _ := decimal.RequireFromString(strconv.FormatFloat(f, 'f', FloatPlaces, 64)).Float64()
	return r
}

// Canonical returns the canonical form of the whole packet.
func (p *Packet) Canonical() Map {
	return Canonicalize(p.Record)
}

var (
	prettyOptions  = ojg.Options{Indent: 2, Sort: true, HTMLUnsafe: true}
	compactOptions = ojg.Options{Sort: true, HTMLUnsafe: true}
)

// JSON renders the canonical form with sorted keys and 2-space indentation.
// Non-ASCII text is written as is.
func JSON(r *Record) string {
	return FormatJSON(Canonicalize(r).Plain(), true)
}

// CompactJSON renders the canonical form on a single line with sorted keys.
func CompactJSON(r *Record) string {
	return FormatJSON(Canonicalize(r).Plain(), false)
}

// FormatJSON renders a plain canonical value, or any part of one, the way
// JSON and CompactJSON do.
func FormatJSON(v any, indent bool) string {
	if indent {
		return oj.JSON(v, &prettyOptions)
	}
	return oj.JSON(v, &compactOptions)
}
