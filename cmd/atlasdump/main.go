// Command atlasdump shapes a string, fills a glyph atlas with its glyphs and
// writes the atlas texture to a PNG together with cache statistics.
//
// Usage:
//
//	atlasdump -text "Hello, World" -px 24 -mode rgb -out atlas.png
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/glyphatlas"
	"github.com/gogpu/glyphatlas/backend"
	_ "github.com/gogpu/glyphatlas/backend/gotext"
	_ "github.com/gogpu/glyphatlas/backend/ximage"
	"github.com/gogpu/glyphatlas/glyph"
	"github.com/gogpu/glyphatlas/gpu"
)

const fontID = 1

func main() {
	var (
		text        = flag.String("text", "The quick brown fox jumps over the lazy dog", "text to shape")
		size        = flag.Int("size", glyphatlas.MinAtlasSize, "atlas size in pixels")
		fontArg     = flag.String("font", "", "TrueType/OpenType font file (default: Go Regular)")
		px          = flag.Float64("px", 24, "font size in pixels")
		mode        = flag.String("mode", "", "render mode: gray, rgb, bgr, vrgb, vbgr (default: platform)")
		backendName = flag.String("backend", backend.BackendXImage, "rasterizer backend: ximage or gotext")
		passes      = flag.Int("passes", 2, "times to draw the text (later passes hit the cache)")
		output      = flag.String("out", "atlas.png", "output PNG")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		glyphatlas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	fontData := goregular.TTF
	if *fontArg != "" {
		data, err := os.ReadFile(*fontArg)
		if err != nil {
			log.Fatalf("Failed to read font: %v", err)
		}
		fontData = data
	}

	renderMode := glyph.DefaultRenderMode(glyph.HostPlatform())
	if *mode != "" {
		m, err := glyph.ParseRenderMode(*mode)
		if err != nil {
			log.Fatal(err)
		}
		renderMode = m
	}

	be, err := newBackend(*backendName, fontData, renderMode)
	if err != nil {
		log.Fatal(err)
	}
	r := glyph.NewRasterizer(be, renderMode)

	atlas, err := glyphatlas.New(*size)
	if err != nil {
		log.Fatalf("Failed to create atlas: %v", err)
	}
	defer atlas.Close()

	glyphs, err := shapeText(fontData, norm.NFC.String(*text), float32(*px))
	if err != nil {
		log.Fatalf("Failed to shape text: %v", err)
	}

	var drawn, invisible, failed int
	for range max(*passes, 1) {
		for _, sg := range glyphs {
			key, _, _ := glyph.NewKey(fontID, sg.id, float32(*px), sg.x, sg.y, 0)
			_, visible, err := atlas.Resolve(key, r)
			switch {
			case err != nil:
				failed++
				slog.Warn("glyph not cached", "gid", sg.id, "err", err)
			case !visible:
				invisible++
			default:
				drawn++
			}
		}
	}

	tex, ok := atlas.Texture().(*gpu.MemoryTexture)
	if !ok {
		log.Fatalf("unexpected texture type %T", atlas.Texture())
	}
	if err := imaging.Save(tex.Image(), *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	s := atlas.Stats()
	rs := r.Stats()
	fmt.Printf("mode:       %s (%s backend)\n", renderMode, *backendName)
	fmt.Printf("atlas:      %dx%d, %.2f%% used\n", atlas.Size(), atlas.Size(), atlas.Usage()*100)
	fmt.Printf("glyphs:     %d shaped, %d drawn, %d invisible, %d failed\n", len(glyphs), drawn, invisible, failed)
	fmt.Printf("cache:      %d cached, %d hits, %d misses (%.1f%% hit rate)\n", s.GlyphsCached, s.Hits, s.Misses, s.HitRate()*100)
	fmt.Printf("eviction:   %d cycles, %d entries\n", s.EvictionCycles, s.Evictions)
	fmt.Printf("rasterizer: %d calls, %d bitmaps, %d empty, %d color\n", rs.RasterizeCalls, rs.GlyphsRasterized, rs.EmptyGlyphs, rs.ColorGlyphs)
	fmt.Printf("texture:    %d uploads, %d bytes -> %s\n", tex.Writes(), tex.BytesWritten(), *output)
}

// newBackend creates the named rasterizer backend with the font registered
// under fontID.
func newBackend(name string, fontData []byte, mode glyph.RenderMode) (glyph.Backend, error) {
	b, err := backend.Get(name, backend.OptionsFor(mode))
	if err != nil {
		return nil, err
	}
	if err := b.AddFontData(fontID, fontData); err != nil {
		return nil, err
	}
	return b, nil
}
