package glyphatlas

import (
	"errors"
	"fmt"

	"github.com/gogpu/glyphatlas/glyph"
)

// Sentinel errors for atlas operations.
var (
	// ErrAtlasFull matches every *AtlasFullError with errors.Is.
	ErrAtlasFull = errors.New("glyphatlas: atlas full")

	// ErrEvictEmpty is returned when an eviction is requested on an empty
	// cache. Insert reports it as an *AtlasFullError.
	ErrEvictEmpty = errors.New("glyphatlas: nothing to evict")

	// ErrEmptyGlyph is returned when Insert is given a zero-sized glyph.
	ErrEmptyGlyph = glyph.ErrEmptyGlyph

	// ErrInvalidGlyphData is returned when a glyph's pixel buffer does not
	// match its dimensions and format.
	ErrInvalidGlyphData = glyph.ErrInvalidData

	// ErrClosed is returned by Insert after Close.
	ErrClosed = errors.New("glyphatlas: atlas closed")
)

// AtlasFullError reports a glyph that could not be placed, either because
// it can never fit the texture or because eviction did not free room.
type AtlasFullError struct {
	Width     int
	Height    int
	AtlasSize int
}

func (e *AtlasFullError) Error() string {
	return fmt.Sprintf("glyphatlas: atlas full: cannot fit %dx%d glyph in %dx%d texture",
		e.Width, e.Height, e.AtlasSize, e.AtlasSize)
}

// Is reports whether target is ErrAtlasFull.
func (e *AtlasFullError) Is(target error) bool {
	return target == ErrAtlasFull
}

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "glyphatlas: invalid config: " + e.Field + ": " + e.Reason
}
