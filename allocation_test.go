package glyphatlas

import (
	"math"
	"testing"
)

func TestUVRect(t *testing.T) {
	alloc := GlyphAllocation{X: 11, Y: 0, Width: 8, Height: 12}
	u0, v0, u1, v1 := alloc.UVRect(512)
	if u0 != 11.0/512 || v0 != 0 || u1 != 19.0/512 || v1 != 12.0/512 {
		t.Errorf("UVRect(512) = (%v, %v, %v, %v)", u0, v0, u1, v1)
	}
}

func TestUVRectRoundTrip(t *testing.T) {
	for _, size := range []int{MinAtlasSize, 1000, DefaultAtlasSize, MaxAtlasSize} {
		for _, alloc := range []GlyphAllocation{
			{X: 0, Y: 0, Width: 1, Height: 1},
			{X: 123, Y: 45, Width: 17, Height: 23},
			{X: size - 11, Y: size - 13, Width: 10, Height: 12},
		} {
			u0, v0, u1, v1 := alloc.UVRect(size)
			s := float64(size)
			back := func(v float32) int { return int(math.Round(float64(v) * s)) }
			if back(u0) != alloc.X || back(v0) != alloc.Y ||
				back(u1) != alloc.X+alloc.Width || back(v1) != alloc.Y+alloc.Height {
				t.Errorf("size %d: %+v round-tripped to (%v, %v, %v, %v)", size, alloc, u0, v0, u1, v1)
			}
			if u0 < 0 || v0 < 0 || u1 > 1 || v1 > 1 {
				t.Errorf("size %d: UVs outside [0,1]: (%v, %v, %v, %v)", size, u0, v0, u1, v1)
			}
		}
	}
}

func TestQuadOrigin(t *testing.T) {
	alloc := GlyphAllocation{BearingX: -1, BearingY: -12}
	x, y := alloc.QuadOrigin(100, 50)
	if x != 99 || y != 38 {
		t.Errorf("QuadOrigin(100, 50) = (%d, %d), want (99, 38)", x, y)
	}
}
