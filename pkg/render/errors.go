package render

import "errors"

var (
	// ErrInvalidIdentifier signals ByID was called without a usable
	// shape identifier (missing, non-numeric, or non-positive).
	ErrInvalidIdentifier = errors.New("render: invalid shape identifier")
	// ErrIdentifierOutOfRange signals an identifier that parsed cleanly
	// but names no catalogue entry.
	ErrIdentifierOutOfRange = errors.New("render: shape identifier out of range")
	// ErrEmptyCatalog signals a renderer built over a catalogue with no
	// templates; random selection is meaningless in that case.
	ErrEmptyCatalog = errors.New("render: catalog has no templates")
)
