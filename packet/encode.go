package packet

import (
	"bytes"
	"fmt"
	"math"
)

// Encode writes r back into its wire form. The result is always
// r.Layout().Size() bytes; bytes after a text terminator and the unused tail
// of a union are zero.
func Encode(r *Record) ([]byte, error) {
	buf := make([]byte, r.layout.Size())
	if err := encodeRecord(r, buf, ""); err != nil {
		return nil, err
	}
	return buf, nil
}

func encodeRecord(r *Record, b []byte, path string) error {
	for i, f := range r.layout.fields {
		fb := b[f.offset : f.offset+f.Size()]
		name := joinPath(path, f.Name)
		v := r.values[i]

		switch f.Shape {
		case ScalarShape:
			bits, ok := f.Kind.bitsOf(v)
			if !ok {
				return fmt.Errorf("packet: field %s: %T is not %s", name, v, f.Kind)
			}
			f.Kind.putBits(fb, bits)

		case TextShape:
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("packet: field %s: %T is not text", name, v)
			}
			if err := putText(name, fb, s); err != nil {
				return err
			}

		case ArrayShape:
			arr, ok := v.([]any)
			if !ok || len(arr) != f.Len {
				return fmt.Errorf("packet: field %s: want %d x %s", name, f.Len, f.Kind)
			}
			w := f.Kind.Width()
			for j, e := range arr {
				bits, ok := f.Kind.bitsOf(e)
				if !ok {
					return fmt.Errorf("packet: field %s: %T is not %s", indexPath(name, j), e, f.Kind)
				}
				f.Kind.putBits(fb[j*w:], bits)
			}

		case RecordShape:
			sub, ok := v.(*Record)
			if !ok || sub.layout != f.Layout {
				return fmt.Errorf("packet: field %s: want %s record", name, f.Layout.name)
			}
			if err := encodeRecord(sub, fb, name); err != nil {
				return err
			}

		case RecordArrayShape:
			subs, ok := v.([]*Record)
			if !ok || len(subs) != f.Len {
				return fmt.Errorf("packet: field %s: want %d x %s", name, f.Len, f.Layout.name)
			}
			w := f.Layout.Size()
			for j, sub := range subs {
				if sub.layout != f.Layout {
					return fmt.Errorf("packet: field %s: want %s record", indexPath(name, j), f.Layout.name)
				}
				if err := encodeRecord(sub, fb[j*w:(j+1)*w], indexPath(name, j)); err != nil {
					return err
				}
			}

		case UnionShape:
			vr, ok := v.(*Variant)
			if !ok {
				return fmt.Errorf("packet: field %s: %T is not a union variant", name, v)
			}
			m, ok := f.Union.Member(vr.Code)
			if !ok {
				return &UnknownEventCodeError{Code: vr.Code}
			}
			if m.Layout == nil {
				continue
			}
			if vr.Fields == nil || vr.Fields.layout != m.Layout {
				return fmt.Errorf("packet: field %s: want %s payload", name, m.Name)
			}
			if err := encodeRecord(vr.Fields, fb[:m.Layout.Size()], joinPath(name, m.Name)); err != nil {
				return err
			}
		}
	}
	return nil
}

func putText(field string, b []byte, s string) error {
	if len(s) > len(b) {
		return fmt.Errorf("packet: field %s: %d bytes do not fit in %d", field, len(s), len(b))
	}
	if bytes.IndexByte([]byte(s), 0) >= 0 {
		return fmt.Errorf("packet: field %s: text contains NUL", field)
	}
	n := copy(b, s)
	clear(b[n:])
	return nil
}

// Writer builds a zero-filled buffer for a layout and sets fields by path.
type Writer struct {
	layout *Layout
	buf    []byte
}

func NewWriter(l *Layout) *Writer {
	return &Writer{layout: l, buf: make([]byte, l.Size())}
}

// NewWriterFrom starts from a copy of an existing buffer of layout l.
func NewWriterFrom(l *Layout, buf []byte) (*Writer, error) {
	if len(buf) != l.Size() {
		return nil, &SizeMismatchError{Layout: l.name, Expected: l.Size(), Actual: len(buf)}
	}
	return &Writer{layout: l, buf: bytes.Clone(buf)}, nil
}

// NewPacketWriter returns a writer for a packet kind with the header already
// written. A zero format or version defaults to the supported 2023/1 pair.
func NewPacketWriter(id PacketID, hdr Header) (*Writer, error) {
	l, ok := LayoutFor(id)
	if !ok {
		return nil, fmt.Errorf("packet: no layout for id %d", id)
	}
	w := NewWriter(l)
	hdr.PacketID = uint8(id)
	if err := w.SetHeader(hdr); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Writer) Layout() *Layout { return w.layout }

// SetHeader writes hdr over the first HeaderSize bytes.
func (w *Writer) SetHeader(hdr Header) error {
	if len(w.buf) < HeaderSize {
		return ErrTooShort
	}
	if hdr.PacketFormat == 0 {
		hdr.PacketFormat = Format2023
	}
	if hdr.PacketVersion == 0 {
		hdr.PacketVersion = Version1
	}
	b, err := hdr.MarshalBinary()
	if err != nil {
		return err
	}
	copy(w.buf, b)
	return nil
}

func (w *Writer) SetUint(path string, v uint64) error {
	off, f, err := w.scalar(path)
	if err != nil {
		return err
	}
	if f.Kind.Float() {
		return fmt.Errorf("packet: field %s is %s", path, f.Kind)
	}
	if v > maxUint(f.Kind) {
		return fmt.Errorf("packet: field %s: %d overflows %s", path, v, f.Kind)
	}
	f.Kind.putBits(w.buf[off:], v)
	return nil
}

func (w *Writer) SetInt(path string, v int64) error {
	off, f, err := w.scalar(path)
	if err != nil {
		return err
	}
	if f.Kind.Float() {
		return fmt.Errorf("packet: field %s is %s", path, f.Kind)
	}
	if !f.Kind.Signed() {
		if v < 0 {
			return fmt.Errorf("packet: field %s: %d overflows %s", path, v, f.Kind)
		}
		return w.SetUint(path, uint64(v))
	}
	bits := uint(f.Kind.Width() * 8)
	lo, hi := -(int64(1) << (bits - 1)), int64(1)<<(bits-1)-1
	if bits == 64 {
		lo, hi = math.MinInt64, math.MaxInt64
	}
	if v < lo || v > hi {
		return fmt.Errorf("packet: field %s: %d overflows %s", path, v, f.Kind)
	}
	f.Kind.putBits(w.buf[off:], uint64(v))
	return nil
}

func (w *Writer) SetFloat(path string, v float64) error {
	off, f, err := w.scalar(path)
	if err != nil {
		return err
	}
	switch f.Kind {
	case Float32Kind:
		f.Kind.putBits(w.buf[off:], uint64(math.Float32bits(float32(v))))
	case Float64Kind:
		f.Kind.putBits(w.buf[off:], math.Float64bits(v))
	default:
		return fmt.Errorf("packet: field %s is %s", path, f.Kind)
	}
	return nil
}

func (w *Writer) SetText(path string, s string) error {
	off, f, err := w.layout.Locate(path)
	if err != nil {
		return err
	}
	if f.Shape != TextShape {
		return fmt.Errorf("packet: field %s is %s, not text", path, f.Shape)
	}
	return putText(path, w.buf[off:off+f.Len], s)
}

// Bytes returns a copy of the buffer.
func (w *Writer) Bytes() []byte {
	return bytes.Clone(w.buf)
}

func (w *Writer) scalar(path string) (int, Field, error) {
	off, f, err := w.layout.Locate(path)
	if err != nil {
		return 0, Field{}, err
	}
	if f.Shape != ScalarShape {
		return 0, Field{}, fmt.Errorf("packet: field %s is %s, not scalar", path, f.Shape)
	}
	return off, f, nil
}

func maxUint(k Kind) uint64 {
	if k.Width() == 8 {
		if k.Signed() {
			return math.MaxInt64
		}
		return math.MaxUint64
	}
	bits := uint(k.Width() * 8)
	if k.Signed() {
		return 1<<(bits-1) - 1
	}
	return 1<<bits - 1
}
