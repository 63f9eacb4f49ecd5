package packet

import (
	"fmt"
	"strconv"
	"strings"
)

// Shape is the closed set of field forms a layout can hold.
type Shape uint8

const (
	ScalarShape Shape = iota + 1
	TextShape
	ArrayShape
	RecordShape
	RecordArrayShape
	UnionShape
)

func (s Shape) String() string {
	switch s {
	case ScalarShape:
		return "scalar"
	case TextShape:
		return "text"
	case ArrayShape:
		return "array"
	case RecordShape:
		return "record"
	case RecordArrayShape:
		return "record_array"
	case UnionShape:
		return "union"
	default:
		return "invalid"
	}
}

// Field describes one named member of a layout.
type Field struct {
	Name   string
	Shape  Shape
	Kind   Kind    // scalar and array element kind
	Len    int     // text width in bytes, array and record array arity
	Layout *Layout // record and record array element layout
	Union  *Union  // union members

	offset int
}

// Size is the encoded width of the field in bytes.
func (f Field) Size() int {
	switch f.Shape {
	case ScalarShape:
		return f.Kind.Width()
	case TextShape:
		return f.Len
	case ArrayShape:
		return f.Len * f.Kind.Width()
	case RecordShape:
		return f.Layout.Size()
	case RecordArrayShape:
		return f.Len * f.Layout.Size()
	case UnionShape:
		return f.Union.Size()
	default:
		return 0
	}
}

// Offset is the byte offset of the field inside its layout.
func (f Field) Offset() int {
	return f.offset
}

func Scalar(name string, k Kind) Field { return Field{Name: name, Shape: ScalarShape, Kind: k} }
func Uint8(name string) Field          { return Scalar(name, Uint8Kind) }
func Int8(name string) Field           { return Scalar(name, Int8Kind) }
func Uint16(name string) Field         { return Scalar(name, Uint16Kind) }
func Int16(name string) Field          { return Scalar(name, Int16Kind) }
func Uint32(name string) Field         { return Scalar(name, Uint32Kind) }
func Int32(name string) Field          { return Scalar(name, Int32Kind) }
func Uint64(name string) Field         { return Scalar(name, Uint64Kind) }
func Int64(name string) Field          { return Scalar(name, Int64Kind) }
func Float32(name string) Field        { return Scalar(name, Float32Kind) }
func Float64(name string) Field        { return Scalar(name, Float64Kind) }

// Text is a fixed-width, NUL-terminated UTF-8 character buffer.
func Text(name string, width int) Field {
	return Field{Name: name, Shape: TextShape, Len: width}
}

// Array is a fixed-arity array of scalars.
func Array(name string, k Kind, n int) Field {
	return Field{Name: name, Shape: ArrayShape, Kind: k, Len: n}
}

// Nested embeds another layout.
func Nested(name string, l *Layout) Field {
	return Field{Name: name, Shape: RecordShape, Layout: l}
}

// NestedArray embeds n consecutive copies of another layout.
func NestedArray(name string, l *Layout, n int) Field {
	return Field{Name: name, Shape: RecordArrayShape, Layout: l, Len: n}
}

// Tagged embeds a union whose member is chosen by the text field named by u.Tag.
func Tagged(name string, u *Union) Field {
	return Field{Name: name, Shape: UnionShape, Union: u}
}

// Layout is the static, byte-packed schema of one record kind.
type Layout struct {
	name   string
	fields []Field
	index  map[string]int
	tags   map[string]*Union // text field name to the union it selects
	size   int
}

// NewLayout builds a layout and computes field offsets. It panics on schema
// errors since layouts are declared once at package initialization.
func NewLayout(name string, fields ...Field) *Layout {
	l := &Layout{
		name:   name,
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if err := l.validate(f); err != nil {
			panic(fmt.Sprintf("packet: layout %s: %v", name, err))
		}
		f.offset = l.size
		if f.Shape == UnionShape {
			if l.tags == nil {
				l.tags = map[string]*Union{}
			}
			l.tags[f.Union.Tag] = f.Union
		}
		l.index[f.Name] = len(l.fields)
		l.fields = append(l.fields, f)
		l.size += f.Size()
	}
	return l
}

func (l *Layout) validate(f Field) error {
	if f.Name == "" {
		return fmt.Errorf("unnamed field")
	}
	if _, dup := l.index[f.Name]; dup {
		return fmt.Errorf("duplicate field %q", f.Name)
	}
	switch f.Shape {
	case ScalarShape, ArrayShape:
		if f.Kind.Width() == 0 {
			return fmt.Errorf("field %q has invalid kind", f.Name)
		}
		if f.Shape == ArrayShape && f.Len <= 0 {
			return fmt.Errorf("field %q has invalid arity %d", f.Name, f.Len)
		}
	case TextShape:
		if f.Len <= 0 {
			return fmt.Errorf("field %q has invalid width %d", f.Name, f.Len)
		}
	case RecordShape, RecordArrayShape:
		if f.Layout == nil {
			return fmt.Errorf("field %q has no layout", f.Name)
		}
		if f.Shape == RecordArrayShape && f.Len <= 0 {
			return fmt.Errorf("field %q has invalid arity %d", f.Name, f.Len)
		}
	case UnionShape:
		if f.Union == nil {
			return fmt.Errorf("field %q has no union", f.Name)
		}
		i, ok := l.index[f.Union.Tag]
		if !ok || l.fields[i].Shape != TextShape {
			return fmt.Errorf("union %q needs a preceding text tag %q", f.Name, f.Union.Tag)
		}
	default:
		return fmt.Errorf("field %q has invalid shape", f.Name)
	}
	return nil
}

func (l *Layout) Name() string { return l.name }

// Size is the exact encoded width, the sum of all field widths.
func (l *Layout) Size() int { return l.size }

// Fields returns the fields in declaration order.
func (l *Layout) Fields() []Field {
	out := make([]Field, len(l.fields))
	copy(out, l.fields)
	return out
}

func (l *Layout) Field(name string) (Field, bool) {
	i, ok := l.index[name]
	if !ok {
		return Field{}, false
	}
	return l.fields[i], true
}

// Locate resolves a path such as "car_telemetry_data[3].speed" or
// "event_details.fastest_lap.lap_time" to an absolute byte offset and the
// field found there. Array elements resolve to a scalar field, record array
// elements to a record field.
func (l *Layout) Locate(path string) (int, Field, error) {
	segs := strings.Split(path, ".")
	cur := l
	off := 0
	for i := 0; i < len(segs); i++ {
		last := i == len(segs)-1
		name, idx, indexed, err := parseSegment(segs[i])
		if err != nil {
			return 0, Field{}, fmt.Errorf("packet: path %q: %w", path, err)
		}
		f, ok := cur.Field(name)
		if !ok {
			return 0, Field{}, fmt.Errorf("packet: path %q: no field %q in %s", path, name, cur.name)
		}
		off += f.offset

		if indexed {
			if f.Shape != ArrayShape && f.Shape != RecordArrayShape {
				return 0, Field{}, fmt.Errorf("packet: path %q: %q is not an array", path, name)
			}
			if idx < 0 || idx >= f.Len {
				return 0, Field{}, fmt.Errorf("packet: path %q: index %d out of range [0,%d)", path, idx, f.Len)
			}
			elemName := fmt.Sprintf("%s[%d]", f.Name, idx)
			if f.Shape == ArrayShape {
				off += idx * f.Kind.Width()
				if !last {
					return 0, Field{}, fmt.Errorf("packet: path %q: %q is a scalar", path, elemName)
				}
				return off, Field{Name: elemName, Shape: ScalarShape, Kind: f.Kind}, nil
			}
			off += idx * f.Layout.Size()
			if last {
				return off, Field{Name: elemName, Shape: RecordShape, Layout: f.Layout}, nil
			}
			cur = f.Layout
			continue
		}

		if last {
			return off, f, nil
		}
		switch f.Shape {
		case RecordShape:
			cur = f.Layout
		case UnionShape:
			i++
			m, ok := f.Union.memberByName(segs[i])
			if !ok || m.Layout == nil {
				return 0, Field{}, fmt.Errorf("packet: path %q: no payload member %q in %q", path, segs[i], name)
			}
			if i == len(segs)-1 {
				return off, Field{Name: m.Name, Shape: RecordShape, Layout: m.Layout}, nil
			}
			cur = m.Layout
		default:
			return 0, Field{}, fmt.Errorf("packet: path %q: %q is not a record", path, name)
		}
	}
	return 0, Field{}, fmt.Errorf("packet: empty path")
}

func parseSegment(seg string) (string, int, bool, error) {
	open := strings.IndexByte(seg, '[')
	if open < 0 {
		if seg == "" {
			return "", 0, false, fmt.Errorf("empty segment")
		}
		return seg, 0, false, nil
	}
	if !strings.HasSuffix(seg, "]") || open == 0 {
		return "", 0, false, fmt.Errorf("malformed segment %q", seg)
	}
	idx, err := strconv.Atoi(seg[open+1 : len(seg)-1])
	if err != nil {
		return "", 0, false, fmt.Errorf("malformed index in %q", seg)
	}
	return seg[:open], idx, true, nil
}

// UnionMember is one interpretation of a union's storage. Markers have no layout.
type UnionMember struct {
	Code   string
	Name   string
	Layout *Layout
}

// Union is a C-style union selected by a text discriminant. Its storage size
// is the size of the largest member.
type Union struct {
	Tag     string
	members []UnionMember
	byCode  map[string]int
	size    int
}

func NewUnion(tag string, members ...UnionMember) *Union {
	u := &Union{
		Tag:    tag,
		byCode: make(map[string]int, len(members)),
	}
	for _, m := range members {
		if _, dup := u.byCode[m.Code]; dup {
			panic(fmt.Sprintf("packet: union %s: duplicate code %q", tag, m.Code))
		}
		u.byCode[m.Code] = len(u.members)
		u.members = append(u.members, m)
		if m.Layout != nil && m.Layout.Size() > u.size {
			u.size = m.Layout.Size()
		}
	}
	return u
}

func (u *Union) Size() int { return u.size }

func (u *Union) Member(code string) (UnionMember, bool) {
	i, ok := u.byCode[code]
	if !ok {
		return UnionMember{}, false
	}
	return u.members[i], true
}

// Members returns the members in declaration order.
func (u *Union) Members() []UnionMember {
	out := make([]UnionMember, len(u.members))
	copy(out, u.members)
	return out
}

func (u *Union) memberByName(name string) (UnionMember, bool) {
	for _, m := range u.members {
		if m.Name == name {
			return m, true
		}
	}
	return UnionMember{}, false
}
