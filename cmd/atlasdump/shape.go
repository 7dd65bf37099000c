package main

import (
	"bytes"
	"strings"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// shapedGlyph is a glyph with its pen position in pixels, Y down.
type shapedGlyph struct {
	id   uint32
	x, y float32
}

// shapeText shapes each line of text left to right with HarfBuzz and lays
// the lines out from the top-left corner.
func shapeText(fontData []byte, text string, px float32) ([]shapedGlyph, error) {
	face, err := font.ParseTTF(bytes.NewReader(fontData))
	if err != nil {
		return nil, err
	}

	var (
		shaper shaping.HarfbuzzShaper
		out    []shapedGlyph
	)
	lineHeight := px * 1.25
	baseline := px
	for _, line := range strings.Split(text, "\n") {
		runes := []rune(line)
		if len(runes) == 0 {
			baseline += lineHeight
			continue
		}
		output := shaper.Shape(shaping.Input{
			Text:      runes,
			RunStart:  0,
			RunEnd:    len(runes),
			Direction: di.DirectionLTR,
			Face:      face,
			Size:      fixed.Int26_6(px * 64),
			Script:    detectScript(runes),
			Language:  language.NewLanguage("en"),
		})

		var pen fixed.Int26_6
		for _, g := range output.Glyphs {
			out = append(out, shapedGlyph{
				id: uint32(g.GlyphID),
				x:  float32(pen+g.XOffset) / 64,
				y:  baseline - float32(g.YOffset)/64,
			})
			pen += g.Advance
		}
		baseline += lineHeight
	}
	return out, nil
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
