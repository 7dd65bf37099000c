package coverage

// lcdTaps is the FreeType default LCD filter (sums to 256).
var lcdTaps = [5]int{0x08, 0x4D, 0x56, 0x4D, 0x08}

// lcdOversample is the number of coverage samples per pixel along the
// subpixel axis.
const lcdOversample = 3

// RenderLCD rasterizes p at three samples per pixel along one axis, applies
// the LCD filter and packs the samples as R, G, B with A set to the largest
// of the three. vertical selects vertically stacked subpixels. The mask is
// one pixel larger on both ends of the subpixel axis to hold the filter
// spread.
func RenderLCD(p Path, o Options, vertical bool) (Bitmap, bool) {
	r, ok := p.Bounds(o)
	if !ok {
		return Bitmap{}, false
	}
	sx, sy := lcdOversample, 1
	if vertical {
		r.Min.Y--
		r.Max.Y++
		sx, sy = 1, lcdOversample
	} else {
		r.Min.X--
		r.Max.X++
	}

	w, h := r.Dx(), r.Dy()
	samples := fill(p, o, r, sx, sy)
	filtered := make([]byte, len(samples))
	if vertical {
		for x := range w {
			filterLine(filtered[x:], samples[x:], h*lcdOversample, w)
		}
	} else {
		stride := w * lcdOversample
		for y := range h {
			filterLine(filtered[y*stride:], samples[y*stride:], stride, 1)
		}
	}

	pix := make([]byte, w*h*4)
	for y := range h {
		for x := range w {
			var rv, gv, bv byte
			if vertical {
				base := y*lcdOversample*w + x
				rv, gv, bv = filtered[base], filtered[base+w], filtered[base+2*w]
			} else {
				base := (y*w + x) * lcdOversample
				rv, gv, bv = filtered[base], filtered[base+1], filtered[base+2]
			}
			off := (y*w + x) * 4
			pix[off], pix[off+1], pix[off+2], pix[off+3] = rv, gv, bv, max(rv, gv, bv)
		}
	}
	return Bitmap{Width: w, Height: h, Left: r.Min.X, Top: r.Min.Y, Pix: pix}, true
}

// filterLine applies the LCD filter to n samples of src spaced stride bytes
// apart, writing to the same positions in dst.
func filterLine(dst, src []byte, n, stride int) {
	for i := range n {
		sum := 0
		for k, t := range lcdTaps {
			j := i + k - len(lcdTaps)/2
			if j < 0 || j >= n {
				continue
			}
			sum += t * int(src[j*stride])
		}
		dst[i*stride] = byte(min(sum>>8, 255))
	}
}
