// Package coverage rasterizes glyph outlines into 8-bit coverage masks and
// LCD subpixel masks. Both font backends share it.
//
// Paths are in pixel space with Y growing downward and the pen origin at
// (0, 0). Rendering uses golang.org/x/image/vector's signed-area
// accumulator.
package coverage

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Op is a path segment operation.
type Op uint8

// Path segment operations.
const (
	OpMoveTo Op = iota
	OpLineTo
	OpQuadTo
	OpCubeTo
)

// argCount returns the number of points used by op.
func (op Op) argCount() int {
	switch op {
	case OpQuadTo:
		return 2
	case OpCubeTo:
		return 3
	default:
		return 1
	}
}

// Point is a position in pixel space.
type Point struct {
	X, Y float32
}

// Segment is one path element. Only the first Op.argCount() Args are used.
type Segment struct {
	Op   Op
	Args [3]Point
}

// Path is a sequence of closed contours.
type Path []Segment

// MoveTo starts a new contour.
func (p *Path) MoveTo(x, y float32) {
	*p = append(*p, Segment{Op: OpMoveTo, Args: [3]Point{{x, y}}})
}

// LineTo adds a line.
func (p *Path) LineTo(x, y float32) {
	*p = append(*p, Segment{Op: OpLineTo, Args: [3]Point{{x, y}}})
}

// QuadTo adds a quadratic Bézier.
func (p *Path) QuadTo(cx, cy, x, y float32) {
	*p = append(*p, Segment{Op: OpQuadTo, Args: [3]Point{{cx, cy}, {x, y}}})
}

// CubeTo adds a cubic Bézier.
func (p *Path) CubeTo(c1x, c1y, c2x, c2y, x, y float32) {
	*p = append(*p, Segment{Op: OpCubeTo, Args: [3]Point{{c1x, c1y}, {c2x, c2y}, {x, y}}})
}

// Options transform a path before rasterization.
type Options struct {
	// OffsetX and OffsetY translate the path, typically by the subpixel
	// pen phase.
	OffsetX float32
	OffsetY float32

	// Shear slants the path to the right by Shear pixels per pixel of
	// height above the baseline.
	Shear float32
}

func (o Options) apply(q Point) (float32, float32) {
	return q.X - o.Shear*q.Y + o.OffsetX, q.Y + o.OffsetY
}

// Bitmap is a rendered mask. Left and Top locate the top-left pixel
// relative to the pen origin.
type Bitmap struct {
	Width  int
	Height int
	Left   int
	Top    int

	// Pix holds Width*Height pixels, one byte each for Render and four
	// bytes (R, G, B, A) for RenderLCD.
	Pix []byte
}

// Bounds returns the integer pixel box covering the transformed path.
// Curves are bounded by their control points.
func (p Path) Bounds(o Options) (image.Rectangle, bool) {
	minX, minY := float32(math.Inf(1)), float32(math.Inf(1))
	maxX, maxY := float32(math.Inf(-1)), float32(math.Inf(-1))
	for _, s := range p {
		for _, q := range s.Args[:s.Op.argCount()] {
			x, y := o.apply(q)
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if minX > maxX || minY > maxY {
		return image.Rectangle{}, false
	}
	r := image.Rect(
		int(math.Floor(float64(minX))), int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY))),
	)
	if r.Empty() {
		return image.Rectangle{}, false
	}
	return r, true
}

// Render rasterizes p into a one-byte-per-pixel coverage mask. It returns
// false when the path covers no pixels.
func Render(p Path, o Options) (Bitmap, bool) {
	r, ok := p.Bounds(o)
	if !ok {
		return Bitmap{}, false
	}
	return Bitmap{
		Width:  r.Dx(),
		Height: r.Dy(),
		Left:   r.Min.X,
		Top:    r.Min.Y,
		Pix:    fill(p, o, r, 1, 1),
	}, true
}

// fill rasterizes p into r scaled by (sx, sy) and returns the tightly
// packed coverage.
func fill(p Path, o Options, r image.Rectangle, sx, sy int) []byte {
	w, h := r.Dx()*sx, r.Dy()*sy
	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src

	ox, oy := float32(r.Min.X), float32(r.Min.Y)
	fx, fy := float32(sx), float32(sy)
	pt := func(q Point) (float32, float32) {
		x, y := o.apply(q)
		return (x - ox) * fx, (y - oy) * fy
	}

	open := false
	for _, s := range p {
		switch s.Op {
		case OpMoveTo:
			if open {
				z.ClosePath()
			}
			x, y := pt(s.Args[0])
			z.MoveTo(x, y)
			open = true
		case OpLineTo:
			x, y := pt(s.Args[0])
			z.LineTo(x, y)
		case OpQuadTo:
			cx, cy := pt(s.Args[0])
			x, y := pt(s.Args[1])
			z.QuadTo(cx, cy, x, y)
		case OpCubeTo:
			c1x, c1y := pt(s.Args[0])
			c2x, c2y := pt(s.Args[1])
			x, y := pt(s.Args[2])
			z.CubeTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		z.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst.Pix
}
