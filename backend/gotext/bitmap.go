package gotext

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/go-text/typesetting/font"

	"github.com/gogpu/glyphatlas/glyph"
)

var errBitmapFormat = errors.New("unsupported bitmap format")

// renderBitmap scales an embedded bitmap into p. Compressed strikes become
// color glyphs with straight alpha; 1-bit strikes become coverage masks.
func renderBitmap(bm font.GlyphBitmap, p placement) (glyph.Image, bool, error) {
	if p.width <= 0 || p.height <= 0 || bm.Width <= 0 || bm.Height <= 0 {
		return glyph.Image{}, false, nil
	}

	switch bm.Format {
	case font.PNG, font.JPG, font.TIFF:
		src, err := imaging.Decode(bytes.NewReader(bm.Data))
		if err != nil {
			return glyph.Image{}, false, fmt.Errorf("decode %s bitmap: %w", formatName(bm.Format), err)
		}
		dst := imaging.Resize(src, p.width, p.height, imaging.Lanczos)
		return glyph.Image{
			Content:  glyph.ContentColor,
			Width:    p.width,
			Height:   p.height,
			BearingX: p.left,
			BearingY: p.top,
			Data:     dst.Pix,
		}, true, nil

	case font.BlackAndWhite:
		src, err := expandBits(bm.Data, bm.Width, bm.Height)
		if err != nil {
			return glyph.Image{}, false, err
		}
		dst := imaging.Resize(src, p.width, p.height, imaging.Linear)
		mask := make([]byte, p.width*p.height)
		for i := range mask {
			mask[i] = dst.Pix[i*4]
		}
		return glyph.Image{
			Content:  glyph.ContentMask,
			Width:    p.width,
			Height:   p.height,
			BearingX: p.left,
			BearingY: p.top,
			Data:     mask,
		}, true, nil
	}
	return glyph.Image{}, false, fmt.Errorf("%w: %d", errBitmapFormat, bm.Format)
}

// expandBits unpacks a 1-bit bitmap, most significant bit first. Rows may
// be padded to whole bytes or packed back to back.
func expandBits(data []byte, w, h int) (*image.Gray, error) {
	stride := (w + 7) / 8
	padded := len(data) >= stride*h
	if !padded && len(data)*8 < w*h {
		return nil, fmt.Errorf("1-bit bitmap %dx%d needs %d bytes, got %d", w, h, (w*h+7)/8, len(data))
	}

	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			bit := y*w + x
			if padded {
				bit = y*stride*8 + x
			}
			if data[bit/8]&(0x80>>(bit%8)) != 0 {
				img.SetGray(x, y, color.Gray{Y: 0xff})
			}
		}
	}
	return img, nil
}

func formatName(f font.BitmapFormat) string {
	switch f {
	case font.PNG:
		return "PNG"
	case font.JPG:
		return "JPEG"
	case font.TIFF:
		return "TIFF"
	case font.BlackAndWhite:
		return "1-bit"
	default:
		return "unknown"
	}
}
