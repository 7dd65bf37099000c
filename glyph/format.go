package glyph

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// PixelFormat is the pixel layout of a rasterized glyph.
type PixelFormat uint8

const (
	// FormatAlpha is an 8-bit coverage mask (grayscale antialiasing).
	FormatAlpha PixelFormat = iota

	// FormatSubpixelRGBA is 32-bit RGBA with per-channel LCD coverage in RGB.
	FormatSubpixelRGBA

	// FormatColorRGBA is 32-bit RGBA color (emoji, color bitmaps).
	FormatColorRGBA
)

// String returns the format name.
func (f PixelFormat) String() string {
	switch f {
	case FormatAlpha:
		return "Alpha"
	case FormatSubpixelRGBA:
		return "SubpixelRGBA"
	case FormatColorRGBA:
		return "ColorRGBA"
	default:
		return unknownStr
	}
}

// BytesPerPixel returns the number of bytes per pixel for the format.
func (f PixelFormat) BytesPerPixel() int {
	if f == FormatAlpha {
		return 1
	}
	return 4
}
