package gpu

import (
	"fmt"
	"image"
)

// MemoryTexture is a Texture backed by an *image.RGBA.
type MemoryTexture struct {
	img          *image.RGBA
	writes       int
	bytesWritten int
}

var _ Texture = (*MemoryTexture)(nil)

// NewMemoryTexture creates a transparent size x size texture.
func NewMemoryTexture(size int) (*MemoryTexture, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return &MemoryTexture{img: image.NewRGBA(image.Rect(0, 0, size, size))}, nil
}

// MemoryTextureFactory is a TextureFactory for MemoryTexture.
func MemoryTextureFactory(size int) (Texture, error) {
	t, err := NewMemoryTexture(size)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Size returns the texture side length.
func (t *MemoryTexture) Size() int {
	return t.img.Rect.Dx()
}

// WriteRegion copies rgba into the image. Parts outside the texture are
// dropped.
func (t *MemoryTexture) WriteRegion(x, y, width, height int, rgba []byte) {
	t.writes++
	dst := image.Rect(x, y, x+width, y+height).Intersect(t.img.Rect)
	if dst.Empty() {
		return
	}
	srcStride := width * 4
	n := dst.Dx() * 4
	for row := dst.Min.Y; row < dst.Max.Y; row++ {
		so := (row-y)*srcStride + (dst.Min.X-x)*4
		if so+n > len(rgba) {
			break
		}
		do := t.img.PixOffset(dst.Min.X, row)
		copy(t.img.Pix[do:do+n], rgba[so:so+n])
		t.bytesWritten += n
	}
}

// Image returns the backing image. Callers must not retain it across
// writes if they need a stable snapshot.
func (t *MemoryTexture) Image() *image.RGBA {
	return t.img
}

// Writes returns the number of WriteRegion calls.
func (t *MemoryTexture) Writes() int {
	return t.writes
}

// BytesWritten returns the number of pixel bytes copied.
func (t *MemoryTexture) BytesWritten() int {
	return t.bytesWritten
}
