package glyph

import (
	"math"
	"testing"
)

func TestBinnerBin(t *testing.T) {
	b := DefaultBinner()
	tests := []struct {
		pos     float32
		wantInt int
		wantBin SubpixelBin
	}{
		{0, 0, 0},
		{10, 10, 0},
		{10.1, 10, 0},
		{10.2, 10, 1},
		{10.25, 10, 1},
		{10.5, 10, 2},
		{10.7, 10, 3},
		{10.9, 11, 0},
		{-0.25, -1, 3},
		{-0.9, -1, 0},
	}
	for _, tt := range tests {
		gotInt, gotBin := b.Bin(tt.pos)
		if gotInt != tt.wantInt || gotBin != tt.wantBin {
			t.Errorf("Bin(%v) = (%d, %d), want (%d, %d)", tt.pos, gotInt, gotBin, tt.wantInt, tt.wantBin)
		}
	}
}

func TestBinnerBinNone(t *testing.T) {
	b := Binner{Mode: SubpixelNone, Horizontal: true, Vertical: true}
	if i, bin := b.Bin(3.6); i != 4 || bin != 0 {
		t.Errorf("Bin(3.6) = (%d, %d), want (4, 0)", i, bin)
	}
	if i, bin := b.Bin(3.4); i != 3 || bin != 0 {
		t.Errorf("Bin(3.4) = (%d, %d), want (3, 0)", i, bin)
	}
}

func TestBinnerBin10(t *testing.T) {
	b := Binner{Mode: Subpixel10, Horizontal: true}
	if i, bin := b.Bin(2.3); i != 2 || bin != 3 {
		t.Errorf("Bin(2.3) = (%d, %d), want (2, 3)", i, bin)
	}
	if i, bin := b.Bin(2.96); i != 3 || bin != 0 {
		t.Errorf("Bin(2.96) = (%d, %d), want (3, 0)", i, bin)
	}
}

func TestNewKeyNearbyPositionsShareKey(t *testing.T) {
	k1, x1, y1 := NewKey(1, 42, 16, 100.24, 50.0, 0)
	k2, x2, y2 := NewKey(1, 42, 16, 100.26, 50.01, 0)
	if k1 != k2 {
		t.Errorf("keys differ: %+v vs %+v", k1, k2)
	}
	if x1 != x2 || y1 != y2 {
		t.Errorf("offsets differ: (%d,%d) vs (%d,%d)", x1, y1, x2, y2)
	}
	if x1 != 100 || y1 != 50 {
		t.Errorf("offset = (%d, %d), want (100, 50)", x1, y1)
	}

	k3, _, _ := NewKey(1, 42, 16, 100.5, 50.0, 0)
	if k3 == k1 {
		t.Error("different bins should produce different keys")
	}
	k4, _, _ := NewKey(1, 42, 17, 100.24, 50.0, 0)
	if k4 == k1 {
		t.Error("different sizes should produce different keys")
	}
	k5, _, _ := NewKey(1, 42, 16, 100.24, 50.0, FlagFakeItalic)
	if k5 == k1 {
		t.Error("different flags should produce different keys")
	}
}

func TestBinnerKeyAxisDisabled(t *testing.T) {
	b := Binner{Mode: Subpixel4, Horizontal: true, Vertical: false}
	k, x, y := b.Key(7, 3, 12, 5.5, 9.6, 0)
	if k.BinX != 2 || x != 5 {
		t.Errorf("x axis = (%d, bin %d), want (5, bin 2)", x, k.BinX)
	}
	if k.BinY != 0 || y != 10 {
		t.Errorf("y axis = (%d, bin %d), want (10, bin 0)", y, k.BinY)
	}
}

func TestKeySizeAndOffset(t *testing.T) {
	k, _, _ := NewKey(1, 1, 13.5, 0.75, 0.25, 0)
	if k.Size() != 13.5 {
		t.Errorf("Size() = %v, want 13.5", k.Size())
	}
	if k.SizeBits != math.Float32bits(13.5) {
		t.Errorf("SizeBits = %#x", k.SizeBits)
	}
	dx, dy := k.SubpixelOffset(Subpixel4)
	if dx != 0.75 || dy != 0.25 {
		t.Errorf("SubpixelOffset = (%v, %v), want (0.75, 0.25)", dx, dy)
	}
	if dx, dy := k.SubpixelOffset(SubpixelNone); dx != 0 || dy != 0 {
		t.Errorf("SubpixelOffset(None) = (%v, %v), want 0", dx, dy)
	}
}

func TestKeyUsableAsMapKey(t *testing.T) {
	m := map[Key]int{}
	k, _, _ := NewKey(9, 1, 16, 0, 0, 0)
	m[k] = 1
	k2, _, _ := NewKey(9, 1, 16, 0.05, 0, 0)
	if m[k2] != 1 {
		t.Error("equal keys should map to the same entry")
	}
}

func BenchmarkNewKey(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _, _ = NewKey(1, uint32(i), 16, float32(i)*0.37, 0, 0)
	}
}
