package ximage

import (
	"bytes"
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/glyphatlas/glyph"
)

const testFontID = 1

func newTestBackend(t *testing.T, opts ...Option) *Backend {
	t.Helper()
	b := New(opts...)
	if err := b.AddFontData(testFontID, goregular.TTF); err != nil {
		t.Fatalf("AddFontData: %v", err)
	}
	return b
}

func glyphIndex(t *testing.T, b *Backend, r rune) uint32 {
	t.Helper()
	f, _ := b.Font(testFontID)
	var buf sfnt.Buffer
	gid, err := f.GlyphIndex(&buf, r)
	if err != nil || gid == 0 {
		t.Fatalf("GlyphIndex(%q) = %d, %v", r, gid, err)
	}
	return uint32(gid)
}

func TestRasterizeGlyphMask(t *testing.T) {
	b := newTestBackend(t)
	key, _, _ := glyph.NewKey(testFontID, glyphIndex(t, b, 'H'), 24, 0, 0, 0)

	img, ok, err := b.RasterizeGlyph(key)
	if err != nil || !ok {
		t.Fatalf("RasterizeGlyph() = %v, %v", ok, err)
	}
	if img.Content != glyph.ContentMask {
		t.Errorf("Content = %v, want Mask", img.Content)
	}
	if img.Width < 10 || img.Height < 15 {
		t.Errorf("size = %dx%d, too small for 24px 'H'", img.Width, img.Height)
	}
	if img.BearingY >= 0 {
		t.Errorf("BearingY = %d, want above baseline", img.BearingY)
	}
	if len(img.Data) != img.Width*img.Height {
		t.Errorf("len(Data) = %d, want %d", len(img.Data), img.Width*img.Height)
	}
	if bytes.Count(img.Data, []byte{0}) == len(img.Data) {
		t.Error("mask is blank")
	}
}

func TestRasterizeGlyphSpaceIsInvisible(t *testing.T) {
	b := newTestBackend(t)
	key, _, _ := glyph.NewKey(testFontID, glyphIndex(t, b, ' '), 16, 0, 0, 0)
	_, ok, err := b.RasterizeGlyph(key)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("space should have no visible pixels")
	}
}

func TestRasterizeGlyphUnknownFont(t *testing.T) {
	b := New()
	_, _, err := b.RasterizeGlyph(glyph.Key{FontID: 99})
	if !errors.Is(err, ErrUnknownFont) {
		t.Errorf("err = %v, want ErrUnknownFont", err)
	}
}

func TestAddFontDataInvalid(t *testing.T) {
	if err := New().AddFontData(1, []byte("not a font")); err == nil {
		t.Error("expected parse error")
	}
}

func TestRasterizeGlyphSubpixelPhase(t *testing.T) {
	b := newTestBackend(t)
	gid := glyphIndex(t, b, 'l')
	k0, _, _ := glyph.NewKey(testFontID, gid, 16, 0, 0, 0)
	k2, _, _ := glyph.NewKey(testFontID, gid, 16, 0.5, 0, 0)
	if k0.BinX == k2.BinX {
		t.Fatal("keys should differ in BinX")
	}
	a, _, _ := b.RasterizeGlyph(k0)
	c, _, _ := b.RasterizeGlyph(k2)
	if bytes.Equal(a.Data, c.Data) && a.BearingX == c.BearingX && a.Width == c.Width {
		t.Error("half-pixel phase should change the bitmap")
	}
}

func TestRasterizeGlyphFakeItalic(t *testing.T) {
	b := newTestBackend(t)
	gid := glyphIndex(t, b, 'I')
	plain, _, _ := glyph.NewKey(testFontID, gid, 32, 0, 0, 0)
	italic, _, _ := glyph.NewKey(testFontID, gid, 32, 0, 0, glyph.FlagFakeItalic)
	p, _, _ := b.RasterizeGlyph(plain)
	i, _, _ := b.RasterizeGlyph(italic)
	if i.Width <= p.Width {
		t.Errorf("italic width %d should exceed plain width %d", i.Width, p.Width)
	}
}

func TestRasterizeGlyphLCD(t *testing.T) {
	for _, vertical := range []bool{false, true} {
		b := newTestBackend(t, WithLCD(vertical))
		key, _, _ := glyph.NewKey(testFontID, glyphIndex(t, b, 'a'), 18, 0, 0, 0)
		img, ok, err := b.RasterizeGlyph(key)
		if err != nil || !ok {
			t.Fatalf("vertical=%v: RasterizeGlyph() = %v, %v", vertical, ok, err)
		}
		if img.Content != glyph.ContentSubpixelMask {
			t.Errorf("vertical=%v: Content = %v", vertical, img.Content)
		}
		if len(img.Data) != img.Width*img.Height*4 {
			t.Errorf("vertical=%v: len(Data) = %d", vertical, len(img.Data))
		}
	}
}

func TestRasterizerEndToEnd(t *testing.T) {
	b := newTestBackend(t, WithLCD(false))
	key, _, _ := glyph.NewKey(testFontID, glyphIndex(t, b, 'g'), 20, 0, 0, 0)

	gray, ok, err := glyph.NewRasterizer(b, glyph.Grayscale).Rasterize(key)
	if err != nil || !ok {
		t.Fatalf("grayscale: %v, %v", ok, err)
	}
	if gray.Format != glyph.FormatAlpha {
		t.Errorf("grayscale format = %v", gray.Format)
	}
	if err := gray.Validate(); err != nil {
		t.Error(err)
	}

	lcd, ok, err := glyph.NewRasterizer(b, glyph.SubpixelHorizontalRGB).Rasterize(key)
	if err != nil || !ok {
		t.Fatalf("lcd: %v, %v", ok, err)
	}
	if lcd.Format != glyph.FormatSubpixelRGBA {
		t.Errorf("lcd format = %v", lcd.Format)
	}
	if err := lcd.Validate(); err != nil {
		t.Error(err)
	}
}

func BenchmarkRasterizeGlyph(b *testing.B) {
	be := New()
	if err := be.AddFontData(testFontID, goregular.TTF); err != nil {
		b.Fatal(err)
	}
	f, _ := be.Font(testFontID)
	var buf sfnt.Buffer
	gid, _ := f.GlyphIndex(&buf, 'W')
	key, _, _ := glyph.NewKey(testFontID, uint32(gid), 16, 0.25, 0, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = be.RasterizeGlyph(key)
	}
}
