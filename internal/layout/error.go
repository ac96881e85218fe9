package layout

import "errors"

var (
	// ErrFieldOverflow is an error that occurs when a field value is longer
	// than the field's declared capacity.
	ErrFieldOverflow = errors.New("field value exceeds declared capacity")

	// ErrBufferTooSmall is an error that occurs when a buffer is shorter than
	// the layout's total width.
	ErrBufferTooSmall = errors.New("buffer smaller than layout width")

	// ErrUnknownField is an error that occurs when a field name is not part
	// of the layout.
	ErrUnknownField = errors.New("field not declared in layout")

	// ErrWrongKind is an error that occurs when a field is accessed as a
	// different kind than it was declared with.
	ErrWrongKind = errors.New("field accessed as wrong kind")
)
