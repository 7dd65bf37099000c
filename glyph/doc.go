// Package glyph defines glyph identity and the rasterization boundary of the
// atlas: cache keys with subpixel binning, render modes, pixel formats and the
// Rasterizer adapter that normalizes backend output.
//
// # Keys
//
// A Key identifies one rasterized glyph instance: font, glyph index, pixel
// size and a quantized subpixel phase. Pen positions that fall into the same
// bin produce the same Key, so nearby positions share one cached bitmap:
//
//	key, dx, dy := glyph.NewKey(fontID, gid, 16, penX, penY, 0)
//	// draw the cached bitmap at (dx + bearingX, dy + bearingY)
//
// # Rasterization
//
// A Backend turns a Key into raw coverage (8-bit mask, per-channel LCD mask
// or color). Rasterizer applies the configured RenderMode:
//
//	r := glyph.NewRasterizer(backend, glyph.DefaultRenderMode(glyph.HostPlatform()))
//	g, ok, err := r.Rasterize(key)
//
// Grayscale, subpixel and color glyphs all convert to RGBA with ToRGBA so
// they can share one texture.
package glyph
