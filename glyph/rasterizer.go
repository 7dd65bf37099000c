package glyph

import (
	"bytes"
	"fmt"
)

// RasterizerStats counts rasterization activity.
type RasterizerStats struct {
	// RasterizeCalls is the number of Rasterize and RasterizeWithMode calls.
	RasterizeCalls uint64

	// GlyphsRasterized is the number of calls that produced a bitmap.
	GlyphsRasterized uint64

	// EmptyGlyphs is the number of calls that produced no visible glyph.
	EmptyGlyphs uint64

	// ColorGlyphs is the number of color bitmaps produced.
	ColorGlyphs uint64
}

// Rasterizer adapts a Backend to the atlas: it applies the render mode and
// normalizes backend output into a RasterizedGlyph.
//
// Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	backend Backend
	mode    RenderMode
	stats   RasterizerStats
}

// NewRasterizer creates a rasterizer over backend using mode.
func NewRasterizer(backend Backend, mode RenderMode) *Rasterizer {
	return &Rasterizer{backend: backend, mode: mode}
}

// RenderMode returns the configured mode.
func (r *Rasterizer) RenderMode() RenderMode {
	return r.mode
}

// SetRenderMode changes the mode used by Rasterize.
func (r *Rasterizer) SetRenderMode(mode RenderMode) {
	r.mode = mode
}

// Stats returns a snapshot of the counters.
func (r *Rasterizer) Stats() RasterizerStats {
	return r.stats
}

// ResetStats zeroes the counters.
func (r *Rasterizer) ResetStats() {
	r.stats = RasterizerStats{}
}

// Rasterize renders key with the configured mode. It returns false when the
// glyph has no visible pixels.
func (r *Rasterizer) Rasterize(key Key) (RasterizedGlyph, bool, error) {
	return r.RasterizeWithMode(key, r.mode)
}

// RasterizeWithMode renders key with an explicit mode.
func (r *Rasterizer) RasterizeWithMode(key Key, mode RenderMode) (RasterizedGlyph, bool, error) {
	r.stats.RasterizeCalls++
	if r.backend == nil {
		return RasterizedGlyph{}, false, ErrNilBackend
	}

	img, ok, err := r.backend.RasterizeGlyph(key)
	if err != nil {
		return RasterizedGlyph{}, false, fmt.Errorf("glyph: rasterize font %d glyph %d: %w", key.FontID, key.GlyphID, err)
	}
	if !ok || img.Width <= 0 || img.Height <= 0 {
		r.stats.EmptyGlyphs++
		return RasterizedGlyph{}, false, nil
	}
	if img.Content > ContentColor {
		return RasterizedGlyph{}, false, fmt.Errorf("%w: unknown content kind %d", ErrInvalidData, img.Content)
	}
	if want := img.Width * img.Height * img.Content.bytesPerPixel(); len(img.Data) < want {
		return RasterizedGlyph{}, false, fmt.Errorf("%w: %s %dx%d needs %d bytes, got %d",
			ErrInvalidData, img.Content, img.Width, img.Height, want, len(img.Data))
	}

	g := normalize(img, mode)
	r.stats.GlyphsRasterized++
	if g.IsColor {
		r.stats.ColorGlyphs++
	}
	return g, true, nil
}

// normalize converts backend output into the atlas pixel formats. The
// result never shares memory with img.Data.
func normalize(img Image, mode RenderMode) RasterizedGlyph {
	g := RasterizedGlyph{
		Width:    img.Width,
		Height:   img.Height,
		BearingX: img.BearingX,
		BearingY: img.BearingY,
	}
	n := img.Width * img.Height

	switch img.Content {
	case ContentMask:
		g.Format = FormatAlpha
		g.Data = bytes.Clone(img.Data[:n])

	case ContentSubpixelMask:
		src := img.Data[:n*4]
		if !mode.IsSubpixel() {
			// Average the channels. Source alpha is dropped.
			g.Format = FormatAlpha
			g.Data = make([]byte, n)
			for i := range g.Data {
				p := src[i*4 : i*4+3 : i*4+3]
				g.Data[i] = byte((int(p[0]) + int(p[1]) + int(p[2])) / 3)
			}
			break
		}
		g.Format = FormatSubpixelRGBA
		g.Data = bytes.Clone(src)
		if mode.IsBGR() {
			for i := 0; i < len(g.Data); i += 4 {
				g.Data[i], g.Data[i+2] = src[i+2], src[i]
			}
		}

	case ContentColor:
		g.Format = FormatColorRGBA
		g.IsColor = true
		g.Data = bytes.Clone(img.Data[:n*4])
	}
	return g
}
