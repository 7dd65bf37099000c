package gpu

import "errors"

// Sentinel errors for texture creation.
var (
	// ErrInvalidSize is returned when a texture size is not positive.
	ErrInvalidSize = errors.New("gpu: texture size must be positive")

	// ErrNilDevice is returned when a HAL device or queue is missing.
	ErrNilDevice = errors.New("gpu: nil device or queue")

	// ErrNoHAL is returned when a device provider does not expose HAL
	// device and queue.
	ErrNoHAL = errors.New("gpu: provider does not expose HAL device and queue")
)

// Texture is a square RGBA8 texture the atlas writes glyph pixels into.
type Texture interface {
	// Size returns the width and height in pixels.
	Size() int

	// WriteRegion copies a width x height block of tightly packed RGBA8
	// pixels to (x, y). The write is fire-and-forget.
	WriteRegion(x, y, width, height int, rgba []byte)
}

// TextureFactory creates a size x size texture.
type TextureFactory func(size int) (Texture, error)
