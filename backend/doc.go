// Package backend is a registry of glyph rasterizer backends.
//
// Backend packages register themselves from init(), so importing them is
// enough to make them selectable by name:
//
//	import (
//	    "github.com/gogpu/glyphatlas/backend"
//	    _ "github.com/gogpu/glyphatlas/backend/gotext"
//	    _ "github.com/gogpu/glyphatlas/backend/ximage"
//	)
//
//	b, err := backend.Get(backend.BackendXImage, backend.OptionsFor(mode))
//	if err != nil { ... }
//	if err := b.AddFontData(1, fontData); err != nil { ... }
//	r := glyph.NewRasterizer(b, mode)
//
// Default picks the best registered backend: gotext, then ximage.
package backend
