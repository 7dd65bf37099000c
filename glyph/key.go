package glyph

import "math"

// SubpixelBin is the quantized fractional pen position on one axis.
// Bin 0 is the whole-pixel position; bin i of n is an offset of i/n pixels.
type SubpixelBin uint8

// SubpixelMode is the number of subpixel positions per axis.
type SubpixelMode uint8

const (
	// SubpixelNone snaps every pen position to whole pixels.
	SubpixelNone SubpixelMode = iota

	// Subpixel4 uses four positions per pixel (0, 0.25, 0.5, 0.75).
	Subpixel4

	// Subpixel10 uses ten positions per pixel (0, 0.1, ..., 0.9).
	Subpixel10
)

// Divisions returns the number of bins per pixel, or 1 for SubpixelNone.
func (m SubpixelMode) Divisions() int {
	switch m {
	case Subpixel4:
		return 4
	case Subpixel10:
		return 10
	default:
		return 1
	}
}

// IsEnabled reports whether the mode produces fractional bins.
func (m SubpixelMode) IsEnabled() bool {
	return m == Subpixel4 || m == Subpixel10
}

// String returns the mode name.
func (m SubpixelMode) String() string {
	switch m {
	case SubpixelNone:
		return "None"
	case Subpixel4:
		return "4"
	case Subpixel10:
		return "10"
	default:
		return unknownStr
	}
}

// KeyFlags are rendering variations that change the rasterized bitmap.
type KeyFlags uint8

const (
	// FlagFakeItalic asks the backend to shear the outline by 0.2 for a
	// synthetic oblique.
	FlagFakeItalic KeyFlags = 1 << iota

	// FlagDisableHinting asks for unhinted outlines.
	FlagDisableHinting
)

// FakeItalicShear is the horizontal shear applied for FlagFakeItalic.
const FakeItalicShear = 0.2

// Key identifies one cached glyph bitmap. It is comparable and used directly
// as a map key.
type Key struct {
	// FontID identifies the font face. Callers choose the numbering.
	FontID uint64

	// GlyphID is the glyph index within the font.
	GlyphID uint32

	// SizeBits holds the IEEE-754 bits of the float32 pixel size, so that
	// sizes compare exactly.
	SizeBits uint32

	// BinX and BinY are the quantized subpixel phases.
	BinX SubpixelBin
	BinY SubpixelBin

	// Flags are rendering variations.
	Flags KeyFlags
}

// Size returns the pixel size encoded in the key.
func (k Key) Size() float32 {
	return math.Float32frombits(k.SizeBits)
}

// SubpixelOffset returns the fractional pen offset encoded by the bins,
// interpreted with the given mode.
func (k Key) SubpixelOffset(mode SubpixelMode) (dx, dy float32) {
	if !mode.IsEnabled() {
		return 0, 0
	}
	n := float32(mode.Divisions())
	return float32(k.BinX) / n, float32(k.BinY) / n
}

// Binner quantizes pen positions into keys.
type Binner struct {
	// Mode is the number of subpixel positions.
	Mode SubpixelMode

	// Horizontal enables binning on the X axis.
	Horizontal bool

	// Vertical enables binning on the Y axis.
	Vertical bool
}

// DefaultBinner returns a binner with four positions on both axes.
func DefaultBinner() Binner {
	return Binner{Mode: Subpixel4, Horizontal: true, Vertical: true}
}

// Bin splits pos into an integer pixel and the nearest subpixel bin.
// A fraction that rounds up to a whole pixel yields the next integer and bin 0.
func (b Binner) Bin(pos float32) (int, SubpixelBin) {
	if !b.Mode.IsEnabled() {
		return int(math.Round(float64(pos))), 0
	}
	floor := math.Floor(float64(pos))
	frac := float64(pos) - floor
	n := b.Mode.Divisions()
	bin := int(math.Round(frac * float64(n)))
	if bin >= n {
		return int(floor) + 1, 0
	}
	return int(floor), SubpixelBin(bin)
}

func (b Binner) axis(pos float32, enabled bool) (int, SubpixelBin) {
	if !enabled {
		return Binner{}.Bin(pos)
	}
	return b.Bin(pos)
}

// Key builds the cache key for a glyph drawn with its pen at (x, y).
// The returned integers are the whole-pixel pen position; add them to the
// glyph bearing when placing the quad.
func (b Binner) Key(fontID uint64, glyphID uint32, size, x, y float32, flags KeyFlags) (Key, int, int) {
	ix, bx := b.axis(x, b.Horizontal)
	iy, by := b.axis(y, b.Vertical)
	return Key{
		FontID:   fontID,
		GlyphID:  glyphID,
		SizeBits: math.Float32bits(size),
		BinX:     bx,
		BinY:     by,
		Flags:    flags,
	}, ix, iy
}

// NewKey builds a key with DefaultBinner.
func NewKey(fontID uint64, glyphID uint32, size, x, y float32, flags KeyFlags) (Key, int, int) {
	return DefaultBinner().Key(fontID, glyphID, size, x, y, flags)
}
