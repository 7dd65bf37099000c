// Package ximage rasterizes glyphs from fonts parsed with
// golang.org/x/image/font/sfnt.
//
// Fonts are registered under caller-chosen IDs that match glyph.Key.FontID:
//
//	b := ximage.New()
//	if err := b.AddFontData(1, goregular.TTF); err != nil { ... }
//	r := glyph.NewRasterizer(b, glyph.Grayscale)
package ximage

import (
	"errors"
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphatlas/glyph"
	"github.com/gogpu/glyphatlas/internal/coverage"
)

// ErrUnknownFont is returned for a key whose FontID was never registered.
var ErrUnknownFont = errors.New("ximage: unknown font id")

// Option configures a Backend.
type Option func(*Backend)

// WithLCD makes the backend produce LCD subpixel masks. vertical selects
// vertically stacked subpixels.
func WithLCD(vertical bool) Option {
	return func(b *Backend) {
		b.lcd = true
		b.vertical = vertical
	}
}

// WithSubpixelMode sets how key bins are turned into pen offsets. It must
// match the glyph.Binner that built the keys. Default: glyph.Subpixel4.
func WithSubpixelMode(m glyph.SubpixelMode) Option {
	return func(b *Backend) {
		b.binning = m
	}
}

// Backend is a glyph.Backend over sfnt fonts. Not safe for concurrent use.
type Backend struct {
	fonts    map[uint64]*sfnt.Font
	buf      sfnt.Buffer
	binning  glyph.SubpixelMode
	lcd      bool
	vertical bool
}

var _ glyph.Backend = (*Backend)(nil)

// New creates a backend with no fonts.
func New(opts ...Option) *Backend {
	b := &Backend{
		fonts:   make(map[uint64]*sfnt.Font),
		binning: glyph.Subpixel4,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddFont registers f under id, replacing any previous font.
func (b *Backend) AddFont(id uint64, f *sfnt.Font) {
	b.fonts[id] = f
}

// AddFontData parses a TrueType or OpenType font and registers it under id.
func (b *Backend) AddFontData(id uint64, data []byte) error {
	f, err := sfnt.Parse(data)
	if err != nil {
		return fmt.Errorf("ximage: parse font %d: %w", id, err)
	}
	b.AddFont(id, f)
	return nil
}

// Font returns the font registered under id.
func (b *Backend) Font(id uint64) (*sfnt.Font, bool) {
	f, ok := b.fonts[id]
	return f, ok
}

// RasterizeGlyph implements glyph.Backend.
func (b *Backend) RasterizeGlyph(key glyph.Key) (glyph.Image, bool, error) {
	f, ok := b.fonts[key.FontID]
	if !ok {
		return glyph.Image{}, false, fmt.Errorf("%w: %d", ErrUnknownFont, key.FontID)
	}

	ppem := fixed.Int26_6(key.Size()*64 + 0.5)
	segs, err := f.LoadGlyph(&b.buf, sfnt.GlyphIndex(key.GlyphID), ppem, nil)
	if err != nil {
		return glyph.Image{}, false, fmt.Errorf("ximage: load glyph %d: %w", key.GlyphID, err)
	}

	path := outline(segs)
	dx, dy := key.SubpixelOffset(b.binning)
	opts := coverage.Options{OffsetX: dx, OffsetY: dy}
	if key.Flags&glyph.FlagFakeItalic != 0 {
		opts.Shear = glyph.FakeItalicShear
	}

	if b.lcd {
		bm, ok := coverage.RenderLCD(path, opts, b.vertical)
		if !ok {
			return glyph.Image{}, false, nil
		}
		return toImage(glyph.ContentSubpixelMask, bm), true, nil
	}
	bm, ok := coverage.Render(path, opts)
	if !ok {
		return glyph.Image{}, false, nil
	}
	return toImage(glyph.ContentMask, bm), true, nil
}

// outline converts 26.6 sfnt segments to a pixel-space path.
func outline(segs sfnt.Segments) coverage.Path {
	path := make(coverage.Path, 0, len(segs))
	for _, s := range segs {
		var seg coverage.Segment
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			seg.Op = coverage.OpMoveTo
		case sfnt.SegmentOpLineTo:
			seg.Op = coverage.OpLineTo
		case sfnt.SegmentOpQuadTo:
			seg.Op = coverage.OpQuadTo
		case sfnt.SegmentOpCubeTo:
			seg.Op = coverage.OpCubeTo
		default:
			continue
		}
		for i, a := range s.Args {
			seg.Args[i] = coverage.Point{X: float32(a.X) / 64, Y: float32(a.Y) / 64}
		}
		path = append(path, seg)
	}
	return path
}

func toImage(content glyph.ContentKind, bm coverage.Bitmap) glyph.Image {
	return glyph.Image{
		Content:  content,
		Width:    bm.Width,
		Height:   bm.Height,
		BearingX: bm.Left,
		BearingY: bm.Top,
		Data:     bm.Pix,
	}
}
