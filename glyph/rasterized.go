package glyph

import "fmt"

// RasterizedGlyph is a normalized glyph bitmap ready for upload.
type RasterizedGlyph struct {
	// Data holds Width*Height pixels in Format, rows top to bottom.
	Data []byte

	// Width and Height are the bitmap dimensions in pixels.
	Width  int
	Height int

	// BearingX and BearingY are the offset from the pen origin to the
	// bitmap's top-left corner. Y grows downward.
	BearingX int
	BearingY int

	// Format is the pixel layout of Data.
	Format PixelFormat

	// IsColor marks color glyphs that must not be tinted.
	IsColor bool
}

// IsEmpty reports whether the glyph has no pixels.
func (g *RasterizedGlyph) IsEmpty() bool {
	return g.Width <= 0 || g.Height <= 0
}

// DataSize returns the expected length of Data.
func (g *RasterizedGlyph) DataSize() int {
	if g.IsEmpty() {
		return 0
	}
	return g.Width * g.Height * g.Format.BytesPerPixel()
}

// Validate checks that the glyph has pixels and that Data matches its
// dimensions and format.
func (g *RasterizedGlyph) Validate() error {
	if g.IsEmpty() {
		return fmt.Errorf("%w: %dx%d", ErrEmptyGlyph, g.Width, g.Height)
	}
	if want := g.DataSize(); len(g.Data) != want {
		return fmt.Errorf("%w: %dx%d %s needs %d bytes, got %d",
			ErrInvalidData, g.Width, g.Height, g.Format, want, len(g.Data))
	}
	return nil
}

// ToRGBA returns the glyph as 4 bytes per pixel. Alpha masks expand to
// white with the mask in the alpha channel. Subpixel and color data is
// already RGBA and is returned as a copy.
func (g *RasterizedGlyph) ToRGBA() []byte {
	if g.Format != FormatAlpha {
		out := make([]byte, len(g.Data))
		copy(out, g.Data)
		return out
	}
	out := make([]byte, len(g.Data)*4)
	for i, a := range g.Data {
		o := out[i*4 : i*4+4 : i*4+4]
		o[0] = 255
		o[1] = 255
		o[2] = 255
		o[3] = a
	}
	return out
}
