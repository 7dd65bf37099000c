package glyphatlas

import "github.com/gogpu/glyphatlas/glyph"

// GlyphAllocation locates a cached glyph in the atlas texture. It is a
// plain value and stays valid for drawing until the glyph is evicted.
type GlyphAllocation struct {
	// X and Y are the top-left texel of the glyph.
	X int
	Y int

	// Width and Height are the glyph size in pixels, without padding.
	Width  int
	Height int

	// BearingX and BearingY offset the quad from the pen origin. Y grows
	// downward.
	BearingX int
	BearingY int

	// IsColor marks color glyphs that must not be tinted.
	IsColor bool

	// Format is the glyph's pixel format before RGBA expansion.
	Format glyph.PixelFormat
}

// UVRect returns normalized texture coordinates for an atlas of the given
// size. There is no half-texel inset; the padding column and row keep
// linear filtering inside the glyph.
func (a GlyphAllocation) UVRect(size int) (uMin, vMin, uMax, vMax float32) {
	s := float32(size)
	return float32(a.X) / s,
		float32(a.Y) / s,
		float32(a.X+a.Width) / s,
		float32(a.Y+a.Height) / s
}

// QuadOrigin returns the top-left screen position of the glyph quad for a
// whole-pixel pen position, as returned by glyph.NewKey.
func (a GlyphAllocation) QuadOrigin(penX, penY int) (x, y int) {
	return penX + a.BearingX, penY + a.BearingY
}
