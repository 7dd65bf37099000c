// Package gotext rasterizes glyphs from github.com/go-text/typesetting
// faces. Besides plain outlines it handles embedded bitmap strikes (PNG,
// JPEG and TIFF color bitmaps, 1-bit masks) and renders SVG and COLR glyphs
// through their fallback outline.
package gotext

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/glyphatlas/glyph"
	"github.com/gogpu/glyphatlas/internal/coverage"
)

// ErrUnknownFont is returned for a key whose FontID was never registered.
var ErrUnknownFont = errors.New("gotext: unknown font id")

// Option configures a Backend.
type Option func(*Backend)

// WithLCD makes outline glyphs render as LCD subpixel masks. vertical
// selects vertically stacked subpixels. Bitmap glyphs are unaffected.
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

// Backend is a glyph.Backend over go-text faces.
//
// font.Face is not safe for concurrent use, and neither is Backend.
type Backend struct {
	faces    map[uint64]*font.Face
	binning  glyph.SubpixelMode
	lcd      bool
	vertical bool
}

var _ glyph.Backend = (*Backend)(nil)

// New creates a backend with no fonts.
func New(opts ...Option) *Backend {
	b := &Backend{
		faces:   make(map[uint64]*font.Face),
		binning: glyph.Subpixel4,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddFace registers face under id, replacing any previous face.
func (b *Backend) AddFace(id uint64, face *font.Face) {
	b.faces[id] = face
}

// AddFontData parses a font file and registers its first face under id.
func (b *Backend) AddFontData(id uint64, data []byte) error {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("gotext: parse font %d: %w", id, err)
	}
	b.AddFace(id, face)
	return nil
}

// Face returns the face registered under id.
func (b *Backend) Face(id uint64) (*font.Face, bool) {
	f, ok := b.faces[id]
	return f, ok
}

// RasterizeGlyph implements glyph.Backend.
func (b *Backend) RasterizeGlyph(key glyph.Key) (glyph.Image, bool, error) {
	face, ok := b.faces[key.FontID]
	if !ok {
		return glyph.Image{}, false, fmt.Errorf("%w: %d", ErrUnknownFont, key.FontID)
	}
	upem := face.Upem()
	if upem == 0 {
		return glyph.Image{}, false, fmt.Errorf("gotext: font %d has zero units per em", key.FontID)
	}
	scale := key.Size() / float32(upem)
	gid := font.GID(key.GlyphID)

	switch data := face.GlyphData(gid).(type) {
	case font.GlyphOutline:
		return b.renderOutline(data, scale, key)

	case font.GlyphBitmap:
		img, ok, err := renderBitmap(data, bitmapPlacement(face, gid, scale, key.Size(), data))
		if err == nil {
			return img, ok, nil
		}
		if data.Outline != nil {
			return b.renderOutline(*data.Outline, scale, key)
		}
		return glyph.Image{}, false, fmt.Errorf("gotext: glyph %d: %w", key.GlyphID, err)

	case font.GlyphSVG:
		return b.renderOutline(data.Outline, scale, key)

	case font.GlyphColor:
		// COLR paint graphs are not rendered; use the base glyph outline.
		if key.GlyphID > math.MaxUint16 {
			return glyph.Image{}, false, nil
		}
		if o, ok := face.GlyphDataOutline(uint16(key.GlyphID)); ok {
			return b.renderOutline(o, scale, key)
		}
		return glyph.Image{}, false, nil

	default:
		return glyph.Image{}, false, nil
	}
}

// renderOutline rasterizes an outline given in font units with Y up.
func (b *Backend) renderOutline(o font.GlyphOutline, scale float32, key glyph.Key) (glyph.Image, bool, error) {
	path := make(coverage.Path, 0, len(o.Segments))
	for _, s := range o.Segments {
		var seg coverage.Segment
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			seg.Op = coverage.OpMoveTo
		case opentype.SegmentOpLineTo:
			seg.Op = coverage.OpLineTo
		case opentype.SegmentOpQuadTo:
			seg.Op = coverage.OpQuadTo
		case opentype.SegmentOpCubeTo:
			seg.Op = coverage.OpCubeTo
		default:
			continue
		}
		for i, a := range s.Args {
			seg.Args[i] = coverage.Point{X: a.X * scale, Y: -a.Y * scale}
		}
		path = append(path, seg)
	}

	dx, dy := key.SubpixelOffset(b.binning)
	opts := coverage.Options{OffsetX: dx, OffsetY: dy}
	if key.Flags&glyph.FlagFakeItalic != 0 {
		opts.Shear = glyph.FakeItalicShear
	}

	content := glyph.ContentMask
	var (
		bm coverage.Bitmap
		ok bool
	)
	if b.lcd {
		content = glyph.ContentSubpixelMask
		bm, ok = coverage.RenderLCD(path, opts, b.vertical)
	} else {
		bm, ok = coverage.Render(path, opts)
	}
	if !ok {
		return glyph.Image{}, false, nil
	}
	return glyph.Image{
		Content:  content,
		Width:    bm.Width,
		Height:   bm.Height,
		BearingX: bm.Left,
		BearingY: bm.Top,
		Data:     bm.Pix,
	}, true, nil
}

// placement is the pixel box a bitmap glyph is scaled into.
type placement struct {
	left, top     int
	width, height int
}

// bitmapPlacement computes where a bitmap glyph lands at the key size. It
// uses the glyph extents when the font provides them, and otherwise scales
// the strike so its height matches the em size, sitting on the baseline.
func bitmapPlacement(face *font.Face, gid font.GID, scale, size float32, bm font.GlyphBitmap) placement {
	if ext, ok := face.GlyphExtents(gid); ok {
		p := placement{
			left:   round(ext.XBearing * scale),
			top:    round(-ext.YBearing * scale),
			width:  round(abs(ext.Width) * scale),
			height: round(abs(ext.Height) * scale),
		}
		if p.width > 0 && p.height > 0 {
			return p
		}
	}
	if bm.Height <= 0 {
		return placement{}
	}
	f := size / float32(bm.Height)
	h := round(float32(bm.Height) * f)
	return placement{
		top:    -h,
		width:  round(float32(bm.Width) * f),
		height: h,
	}
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
