package backend

import (
	"errors"

	"github.com/gogpu/glyphatlas/glyph"
)

// Backend names.
const (
	// BackendGoText rasterizes with go-text/typesetting (outlines, color
	// bitmaps, SVG fallback outlines).
	BackendGoText = "gotext"

	// BackendXImage rasterizes with golang.org/x/image/font/sfnt.
	BackendXImage = "ximage"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not
	// registered.
	ErrBackendNotAvailable = errors.New("backend: not available")
)

// FontBackend is a glyph.Backend that loads fonts from raw font files.
// Fonts are registered under the IDs used as glyph.Key.FontID.
type FontBackend interface {
	glyph.Backend

	// AddFontData parses a font file and registers it under id.
	AddFontData(id uint64, data []byte) error
}

// Options configure a backend created through the registry.
type Options struct {
	// LCD enables LCD subpixel masks for outline glyphs.
	LCD bool

	// Vertical selects vertically stacked subpixels when LCD is set.
	Vertical bool

	// Subpixel is the binning mode the keys were built with.
	// Zero means glyph.SubpixelNone.
	Subpixel glyph.SubpixelMode
}

// OptionsFor returns Options producing the coverage a render mode needs,
// with the default four-bin subpixel positioning.
func OptionsFor(mode glyph.RenderMode) Options {
	return Options{
		LCD:      mode.IsSubpixel(),
		Vertical: mode.IsVertical(),
		Subpixel: glyph.Subpixel4,
	}
}
