package layout

import (
	"fmt"
)

// Kind is the primitive interpretation of a field's byte span.
type Kind int

const (
	// KindBytes is a fixed-capacity byte sequence field.
	KindBytes Kind = iota

	// KindUint32 is a 4-byte little-endian unsigned integer field.
	KindUint32
)

// Field describes one named span of a fixed binary record.
type Field struct {
	Name  string
	Width int
	Kind  Kind
}

// Layout is the immutable, ordered description of a fixed-width binary
// record. Offsets and the total width are computed once at construction and
// never depend on any record instance.
type Layout struct {
	fields  []Field
	offsets []int
	width   int
}

// New builds a [Layout] from the given fields, in declaration order.
func New(fields ...Field) Layout {
	l := Layout{
		fields:  make([]Field, len(fields)),
		offsets: make([]int, len(fields)),
	}

	copy(l.fields, fields)

	for i, f := range l.fields {
		l.offsets[i] = l.width
		l.width += f.Width
	}

	return l
}

// Width returns the total record width in bytes.
func (l Layout) Width() int {
	return l.width
}

// Fields returns a copy of the declared fields, in order.
func (l Layout) Fields() []Field {
	fields := make([]Field, len(l.fields))
	copy(fields, l.fields)

	return fields
}

func (l Layout) index(name string) (int, error) {
	for i, f := range l.fields {
		if f.Name == name {
			return i, nil
		}
	}

	return 0, fmt.Errorf("(layout) %w: %q", ErrUnknownField, name)
}
