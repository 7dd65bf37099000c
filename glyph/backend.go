package glyph

// ContentKind is the kind of coverage a backend produced.
type ContentKind uint8

const (
	// ContentMask is one byte of coverage per pixel.
	ContentMask ContentKind = iota

	// ContentSubpixelMask is four bytes per pixel with per-channel LCD
	// coverage in R, G and B.
	ContentSubpixelMask

	// ContentColor is four bytes of RGBA color per pixel.
	ContentColor
)

// String returns the content kind name.
func (c ContentKind) String() string {
	switch c {
	case ContentMask:
		return "Mask"
	case ContentSubpixelMask:
		return "SubpixelMask"
	case ContentColor:
		return "Color"
	default:
		return unknownStr
	}
}

// bytesPerPixel returns the raw bytes per pixel of a content kind.
func (c ContentKind) bytesPerPixel() int {
	if c == ContentMask {
		return 1
	}
	return 4
}

// Image is raw backend output for one glyph.
type Image struct {
	Content  ContentKind
	Width    int
	Height   int
	BearingX int
	BearingY int
	Data     []byte
}

// Backend rasterizes glyphs. It returns false when the glyph has no visible
// pixels (space, missing glyph). The caller only reads a returned Image's
// Data, so a backend may return a buffer it keeps cached.
type Backend interface {
	RasterizeGlyph(key Key) (Image, bool, error)
}

// BackendFunc adapts a function to the Backend interface.
type BackendFunc func(key Key) (Image, bool, error)

// RasterizeGlyph calls f(key).
func (f BackendFunc) RasterizeGlyph(key Key) (Image, bool, error) {
	return f(key)
}
