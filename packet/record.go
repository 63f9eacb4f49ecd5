package packet

import (
	"fmt"
	"strings"
)

// Record is a decoded instance of a layout. Values are held in declaration
// order with one Go type per shape:
//
//	scalar        uint8, int8, ..., float32, float64
//	text          string
//	array         []any of the element type
//	record        *Record
//	record array  []*Record
//	union         *Variant
type Record struct {
	layout *Layout
	values []any
}

// Variant is the active member of a union. Fields is nil for marker codes.
type Variant struct {
	Code   string
	Name   string
	Fields *Record
}

func (r *Record) Layout() *Layout { return r.layout }

// Get returns the raw value of a top-level field.
func (r *Record) Get(name string) (any, bool) {
	i, ok := r.layout.index[name]
	if !ok {
		return nil, false
	}
	return r.values[i], true
}

// Uint returns an unsigned integer field widened to uint64. Signed fields
// holding a negative value report false.
func (r *Record) Uint(name string) (uint64, bool) {
	v, ok := r.scalar(name)
	if !ok {
		return 0, false
	}
	return asUint64(v)
}

func (r *Record) Int(name string) (int64, bool) {
	v, ok := r.scalar(name)
	if !ok {
		return 0, false
	}
	return asInt64(v)
}

// Float returns any numeric scalar widened to float64.
func (r *Record) Float(name string) (float64, bool) {
	v, ok := r.scalar(name)
	if !ok {
		return 0, false
	}
	return asFloat64(v)
}

func (r *Record) Text(name string) (string, bool) {
	v, ok := r.Get(name)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (r *Record) Array(name string) ([]any, bool) {
	v, ok := r.Get(name)
	if !ok {
		return nil, false
	}
	a, ok := v.([]any)
	return a, ok
}

func (r *Record) Record(name string) (*Record, bool) {
	v, ok := r.Get(name)
	if !ok {
		return nil, false
	}
	sub, ok := v.(*Record)
	return sub, ok
}

func (r *Record) Records(name string) ([]*Record, bool) {
	v, ok := r.Get(name)
	if !ok {
		return nil, false
	}
	subs, ok := v.([]*Record)
	return subs, ok
}

func (r *Record) Variant(name string) (*Variant, bool) {
	v, ok := r.Get(name)
	if !ok {
		return nil, false
	}
	vr, ok := v.(*Variant)
	return vr, ok
}

func (r *Record) scalar(name string) (any, bool) {
	i, ok := r.layout.index[name]
	if !ok || r.layout.fields[i].Shape != ScalarShape {
		return nil, false
	}
	return r.values[i], true
}

// Lookup resolves a path in the same syntax as Layout.Locate and returns the
// value found there.
func (r *Record) Lookup(path string) (any, error) {
	var cur any = r
	for _, seg := range strings.Split(path, ".") {
		name, idx, indexed, err := parseSegment(seg)
		if err != nil {
			return nil, fmt.Errorf("packet: path %q: %w", path, err)
		}
		switch c := cur.(type) {
		case *Record:
			v, ok := c.Get(name)
			if !ok {
				return nil, fmt.Errorf("packet: path %q: no field %q in %s", path, name, c.layout.name)
			}
			cur = v
		case *Variant:
			if name != c.Name || c.Fields == nil {
				return nil, fmt.Errorf("packet: path %q: active member is %q", path, c.Name)
			}
			cur = c.Fields
			if indexed {
				return nil, fmt.Errorf("packet: path %q: %q is not an array", path, name)
			}
			continue
		default:
			return nil, fmt.Errorf("packet: path %q: %q is not a record", path, name)
		}
		if !indexed {
			continue
		}
		switch c := cur.(type) {
		case []any:
			if idx < 0 || idx >= len(c) {
				return nil, fmt.Errorf("packet: path %q: index %d out of range [0,%d)", path, idx, len(c))
			}
			cur = c[idx]
		case []*Record:
			if idx < 0 || idx >= len(c) {
				return nil, fmt.Errorf("packet: path %q: index %d out of range [0,%d)", path, idx, len(c))
			}
			cur = c[idx]
		default:
			return nil, fmt.Errorf("packet: path %q: %q is not an array", path, name)
		}
	}
	return cur, nil
}
