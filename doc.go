// Package glyphatlas is a GPU glyph cache: it rasterizes glyphs on demand,
// packs them into one fixed-size RGBA texture and evicts the least recently
// used ones when the texture fills up.
//
// # Overview
//
// Grayscale masks, LCD subpixel masks and color bitmaps all share one RGBA8
// texture. Glyphs are placed with a shelf allocator (1px padding, best fit
// by vertical waste) and looked up by glyph.Key, which quantizes the pen
// position into subpixel bins so nearby positions share a bitmap.
//
// # Quick Start
//
//	backend := ximage.New()
//	_ = backend.AddFontData(1, goregular.TTF)
//	r := glyph.NewRasterizer(backend, glyph.DefaultRenderMode(glyph.HostPlatform()))
//
//	atlas, err := glyphatlas.NewWithDefaultSize()
//	if err != nil { ... }
//	defer atlas.Close()
//
//	key, px, py := glyph.NewKey(1, gid, 16, penX, penY, 0)
//	alloc, visible, err := atlas.Resolve(key, r)
//	if visible {
//	    u0, v0, u1, v1 := alloc.UVRect(atlas.Size())
//	    x, y := alloc.QuadOrigin(px, py)
//	    // emit a quad at (x, y) sized alloc.Width x alloc.Height
//	}
//
// # Textures
//
// The default texture is a gpu.MemoryTexture. For rendering, pass
// WithTextureFactory(gpu.HALTextureFactory(device, queue, cfg)) to upload
// into a wgpu HAL texture; its bind group matches gpu.AtlasShaderWGSL.
//
// # Eviction
//
// When a glyph does not fit, the oldest quarter of the entries (rounded
// up) is removed and packing restarts from the top of the texture. With
// EvictResetShelves, surviving entries keep their coordinates even though
// new glyphs may overwrite their pixels; callers that cannot tolerate this
// choose EvictInvalidateAll.
//
// # Concurrency
//
// An Atlas must be used from one goroutine. Uploads are enqueued on the GPU
// queue and never awaited.
package glyphatlas
