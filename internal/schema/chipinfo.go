package schema

import (
	"bytes"
	"fmt"

	"github.com/DigitalSmile/ffm-io/internal/layout"
)

// From the /usr/include/linux/gpio.h header file.
const (
	// ChipNameSize is the fixed capacity of a GPIO chip name or label.
	ChipNameSize = 32
)

// chipInfoLayout mirrors struct gpiochip_info: name[32], label[32], lines.
var chipInfoLayout = layout.New(
	layout.Field{Name: "name", Width: ChipNameSize, Kind: layout.KindBytes},
	layout.Field{Name: "label", Width: ChipNameSize, Kind: layout.KindBytes},
	layout.Field{Name: "lines", Width: 4, Kind: layout.KindUint32},
)

// ChipInfo is the identity record a GPIO character device reports: its
// kernel name, hardware label and the number of lines it exposes. Instances
// are immutable once constructed.
type ChipInfo struct {
	Name  []byte
	Label []byte
	Lines uint32
}

// ChipInfoLayout returns the fixed binary layout of a [ChipInfo] record.
func ChipInfoLayout() layout.Layout {
	return chipInfoLayout
}

// MarshalInto serializes the record into buf at the layout's fixed offsets.
// Unused capacity of the name and label spans keeps the buffer's prior
// content; it is not zero-filled.
func (c *ChipInfo) MarshalInto(buf []byte) error {
	enc, err := layout.NewEncoder(chipInfoLayout, buf)
	if err != nil {
		return fmt.Errorf("(schema) failed to encode chip info: %w", err)
	}

	if err := enc.PutBytes("name", c.Name); err != nil {
		return fmt.Errorf("(schema) failed to encode chip info: %w", err)
	}

	if err := enc.PutBytes("label", c.Label); err != nil {
		return fmt.Errorf("(schema) failed to encode chip info: %w", err)
	}

	if err := enc.PutUint32("lines", c.Lines); err != nil {
		return fmt.Errorf("(schema) failed to encode chip info: %w", err)
	}

	return nil
}

// UnmarshalChipInfo deserializes a record from buf. Byte fields carry their
// full declared capacity, untrimmed.
func UnmarshalChipInfo(buf []byte) (*ChipInfo, error) {
	dec, err := layout.NewDecoder(chipInfoLayout, buf)
	if err != nil {
		return nil, fmt.Errorf("(schema) failed to decode chip info: %w", err)
	}

	name, err := dec.Bytes("name")
	if err != nil {
		return nil, fmt.Errorf("(schema) failed to decode chip info: %w", err)
	}

	label, err := dec.Bytes("label")
	if err != nil {
		return nil, fmt.Errorf("(schema) failed to decode chip info: %w", err)
	}

	lines, err := dec.Uint32("lines")
	if err != nil {
		return nil, fmt.Errorf("(schema) failed to decode chip info: %w", err)
	}

	return &ChipInfo{
		Name:  name,
		Label: label,
		Lines: lines,
	}, nil
}

// String renders the record for logs, with NUL padding stripped.
func (c *ChipInfo) String() string {
	return fmt.Sprintf("ChipInfo{name=%s, label=%s, lines=%d}",
		bytes.TrimRight(c.Name, "\x00"),
		bytes.TrimRight(c.Label, "\x00"),
		c.Lines,
	)
}
