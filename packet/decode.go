package packet

import (
	"bytes"
	"strconv"
	"unicode/utf8"
)

// Packet is one decoded datagram.
type Packet struct {
	Header Header
	ID     PacketID
	Record *Record
}

// Kind is the snake_case name of the packet kind, e.g. "car_telemetry".
func (p *Packet) Kind() string { return p.ID.String() }

// DecodePacket reads the header, resolves the layout from its dispatch key and
// decodes the whole buffer. It holds no state and is safe for concurrent use.
func DecodePacket(buf []byte) (*Packet, error) {
	hdr, err := ParseHeader(buf)
	if err != nil {
		return nil, err
	}
	l, err := Resolve(hdr.PacketFormat, hdr.PacketVersion, hdr.PacketID)
	if err != nil {
		return nil, err
	}
	rec, err := Decode(l, buf)
	if err != nil {
		return nil, err
	}
	return &Packet{Header: hdr, ID: PacketID(hdr.PacketID), Record: rec}, nil
}

// Decode decodes buf with layout l. The buffer must be exactly l.Size() bytes.
func Decode(l *Layout, buf []byte) (*Record, error) {
	if len(buf) != l.Size() {
		return nil, &SizeMismatchError{Layout: l.name, Expected: l.Size(), Actual: len(buf)}
	}
	return decodeRecord(l, buf, "")
}

func decodeRecord(l *Layout, b []byte, path string) (*Record, error) {
	r := &Record{layout: l, values: make([]any, len(l.fields))}
	for i, f := range l.fields {
		fb := b[f.offset : f.offset+f.Size()]
		name := joinPath(path, f.Name)

		switch f.Shape {
		case ScalarShape:
			r.values[i] = f.Kind.read(fb)

		case TextShape:
			if u, ok := l.tags[f.Name]; ok {
				// a union tag is raw bytes matched whole, never cut or validated
				code := string(fb)
				if _, ok := u.Member(code); !ok {
					return nil, &UnknownEventCodeError{Code: code}
				}
				r.values[i] = code
				continue
			}
			s, err := decodeText(name, fb)
			if err != nil {
				return nil, err
			}
			r.values[i] = s

		case ArrayShape:
			w := f.Kind.Width()
			arr := make([]any, f.Len)
			for j := range arr {
				arr[j] = f.Kind.read(fb[j*w:])
			}
			r.values[i] = arr

		case RecordShape:
			sub, err := decodeRecord(f.Layout, fb, name)
			if err != nil {
				return nil, err
			}
			r.values[i] = sub

		case RecordArrayShape:
			w := f.Layout.Size()
			subs := make([]*Record, f.Len)
			for j := range subs {
				sub, err := decodeRecord(f.Layout, fb[j*w:(j+1)*w], indexPath(name, j))
				if err != nil {
					return nil, err
				}
				subs[j] = sub
			}
			r.values[i] = subs

		case UnionShape:
			tag, _ := r.values[l.index[f.Union.Tag]].(string)
			m, ok := f.Union.Member(tag)
			if !ok {
				return nil, &UnknownEventCodeError{Code: tag}
			}
			v := &Variant{Code: m.Code, Name: m.Name}
			if m.Layout != nil {
				sub, err := decodeRecord(m.Layout, fb[:m.Layout.Size()], joinPath(name, m.Name))
				if err != nil {
					return nil, err
				}
				v.Fields = sub
			}
			r.values[i] = v
		}
	}
	return r, nil
}

// decodeText cuts b at the first NUL and requires the rest to be UTF-8.
func decodeText(field string, b []byte) (string, error) {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	if !utf8.Valid(b) {
		return "", &InvalidTextError{Field: field}
	}
	return string(b), nil
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

func indexPath(name string, i int) string {
	return name + "[" + strconv.Itoa(i) + "]"
}
