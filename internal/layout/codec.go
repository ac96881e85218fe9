package layout

import (
	"encoding/binary"
	"fmt"
)

// Encoder writes field values into a caller-owned buffer at the fixed
// offsets a [Layout] declares. The buffer is never reallocated or zeroed;
// bytes of a field span beyond the written value keep whatever content the
// buffer held before the call.
type Encoder struct {
	layout Layout
	buf    []byte
}

// NewEncoder returns an [Encoder] over buf, failing when buf is shorter than
// the layout's total width.
func NewEncoder(l Layout, buf []byte) (*Encoder, error) {
	if len(buf) < l.Width() {
		return nil, fmt.Errorf("(layout) %w: need %d bytes, have %d", ErrBufferTooSmall, l.Width(), len(buf))
	}

	return &Encoder{layout: l, buf: buf}, nil
}

// PutBytes writes exactly len(v) bytes at the named field's offset. It fails
// when v is longer than the field's declared capacity; a shorter v leaves the
// remainder of the span untouched.
func (e *Encoder) PutBytes(name string, v []byte) error {
	i, err := e.layout.index(name)
	if err != nil {
		return err
	}

	f := e.layout.fields[i]
	if f.Kind != KindBytes {
		return fmt.Errorf("(layout) %w: %q is not a byte field", ErrWrongKind, name)
	}

	if len(v) > f.Width {
		return fmt.Errorf("(layout) %w: field %q holds %d bytes, capacity is %d", ErrFieldOverflow, name, len(v), f.Width)
	}

	copy(e.buf[e.layout.offsets[i]:], v)

	return nil
}

// PutUint32 writes v little-endian at the named field's offset.
func (e *Encoder) PutUint32(name string, v uint32) error {
	i, err := e.layout.index(name)
	if err != nil {
		return err
	}

	if e.layout.fields[i].Kind != KindUint32 {
		return fmt.Errorf("(layout) %w: %q is not a uint32 field", ErrWrongKind, name)
	}

	binary.LittleEndian.PutUint32(e.buf[e.layout.offsets[i]:], v)

	return nil
}

// Decoder reads field values out of a buffer at the fixed offsets a [Layout]
// declares.
type Decoder struct {
	layout Layout
	buf    []byte
}

// NewDecoder returns a [Decoder] over buf, failing when buf is shorter than
// the layout's total width.
func NewDecoder(l Layout, buf []byte) (*Decoder, error) {
	if len(buf) < l.Width() {
		return nil, fmt.Errorf("(layout) %w: need %d bytes, have %d", ErrBufferTooSmall, l.Width(), len(buf))
	}

	return &Decoder{layout: l, buf: buf}, nil
}

// Bytes returns a copy of the named field's full declared span. Trailing
// zero bytes are not trimmed.
func (d *Decoder) Bytes(name string) ([]byte, error) {
	i, err := d.layout.index(name)
	if err != nil {
		return nil, err
	}

	f := d.layout.fields[i]
	if f.Kind != KindBytes {
		return nil, fmt.Errorf("(layout) %w: %q is not a byte field", ErrWrongKind, name)
	}

	v := make([]byte, f.Width)
	copy(v, d.buf[d.layout.offsets[i]:])

	return v, nil
}

// Uint32 decodes the named field little-endian.
func (d *Decoder) Uint32(name string) (uint32, error) {
	i, err := d.layout.index(name)
	if err != nil {
		return 0, err
	}

	if d.layout.fields[i].Kind != KindUint32 {
		return 0, fmt.Errorf("(layout) %w: %q is not a uint32 field", ErrWrongKind, name)
	}

	return binary.LittleEndian.Uint32(d.buf[d.layout.offsets[i]:]), nil
}
