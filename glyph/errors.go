package glyph

import "errors"

// Sentinel errors for the glyph package.
var (
	// ErrEmptyGlyph is returned when a zero-sized glyph is used where pixels
	// are required.
	ErrEmptyGlyph = errors.New("glyph: glyph has zero width or height")

	// ErrInvalidData is returned when a pixel buffer does not match the
	// glyph's dimensions and format.
	ErrInvalidData = errors.New("glyph: pixel data does not match dimensions")

	// ErrNilBackend is returned when a Rasterizer has no backend.
	ErrNilBackend = errors.New("glyph: rasterizer backend is nil")
)
