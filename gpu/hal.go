package gpu

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glyphatlas/internal/logging"
)

// Bind group layout slots used by HALTexture and AtlasShaderWGSL.
const (
	BindingTexture = 0
	BindingSampler = 1
)

// TextureConfig configures a HALTexture.
type TextureConfig struct {
	// Label prefixes the debug labels of every created resource.
	// Default: "glyph_atlas".
	Label string

	// Format is the texture format. Default: gputypes.TextureFormatRGBA8Unorm.
	// Use gputypes.TextureFormatRGBA8UnormSrgb for sRGB-encoded color glyphs.
	Format gputypes.TextureFormat
}

func (c TextureConfig) withDefaults() TextureConfig {
	if c.Label == "" {
		c.Label = "glyph_atlas"
	}
	if c.Format == gputypes.TextureFormatUndefined {
		c.Format = gputypes.TextureFormatRGBA8Unorm
	}
	return c
}

// HALTexture is a Texture backed by a wgpu HAL texture bundle: the texture,
// a full view, a linear clamp-to-edge sampler and a bind group exposing
// both to the fragment stage.
//
// HALTexture does not own the device or queue.
type HALTexture struct {
	device hal.Device
	queue  hal.Queue
	size   int
	format gputypes.TextureFormat

	texture   hal.Texture
	view      hal.TextureView
	sampler   hal.Sampler
	layout    hal.BindGroupLayout
	bindGroup hal.BindGroup

	writes int
}

var _ Texture = (*HALTexture)(nil)

// NewHALTexture creates a size x size atlas texture on device. Partially
// created resources are released on error.
func NewHALTexture(device hal.Device, queue hal.Queue, size int, cfg TextureConfig) (*HALTexture, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	cfg = cfg.withDefaults()

	t := &HALTexture{device: device, queue: queue, size: size, format: cfg.Format}
	if err := t.create(cfg.Label); err != nil {
		t.Destroy()
		return nil, err
	}
	return t, nil
}

func (t *HALTexture) create(label string) error {
	side := uint32(t.size) //nolint:gosec // size is validated positive and bounded by the atlas
	tex, err := t.device.CreateTexture(&hal.TextureDescriptor{
		Label:         label,
		Size:          hal.Extent3D{Width: side, Height: side, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        t.format,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("gpu: create atlas texture: %w", err)
	}
	t.texture = tex

	view, err := t.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         label + "_view",
		Format:        t.format,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		return fmt.Errorf("gpu: create atlas texture view: %w", err)
	}
	t.view = view

	sampler, err := t.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        label + "_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeLinear,
	})
	if err != nil {
		return fmt.Errorf("gpu: create atlas sampler: %w", err)
	}
	t.sampler = sampler

	layout, err := t.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: label + "_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    BindingTexture,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    BindingSampler,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: create atlas bind group layout: %w", err)
	}
	t.layout = layout

	bindGroup, err := t.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  label + "_bind",
		Layout: layout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: BindingTexture, Resource: gputypes.TextureViewBinding{
				TextureView: view.NativeHandle(),
			}},
			{Binding: BindingSampler, Resource: gputypes.SamplerBinding{
				Sampler: sampler.NativeHandle(),
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: create atlas bind group: %w", err)
	}
	t.bindGroup = bindGroup
	return nil
}

// Size returns the texture side length.
func (t *HALTexture) Size() int {
	return t.size
}

// WriteRegion enqueues an upload of a width x height RGBA8 block at (x, y).
// Writes after Destroy are ignored. Queue errors are logged at warn level.
func (t *HALTexture) WriteRegion(x, y, width, height int, rgba []byte) {
	if t.texture == nil || width <= 0 || height <= 0 {
		return
	}
	t.writes++
	//nolint:gosec // coordinates come from the atlas allocator and fit the texture
	err := t.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  t.texture,
			MipLevel: 0,
			Origin:   hal.Origin3D{X: uint32(x), Y: uint32(y), Z: 0},
			Aspect:   gputypes.TextureAspectAll,
		},
		rgba,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(width * 4),
			RowsPerImage: uint32(height),
		},
		&hal.Extent3D{Width: uint32(width), Height: uint32(height), DepthOrArrayLayers: 1},
	)
	if err != nil {
		logging.Logger().Warn("gpu: atlas upload failed",
			"x", x, "y", y, "width", width, "height", height, "err", err)
	}
}

// Texture returns the HAL texture.
func (t *HALTexture) Texture() hal.Texture { return t.texture }

// View returns the texture view.
func (t *HALTexture) View() hal.TextureView { return t.view }

// Sampler returns the sampler.
func (t *HALTexture) Sampler() hal.Sampler { return t.sampler }

// BindGroupLayout returns the layout describing the texture and sampler
// bindings, for pipeline layout creation.
func (t *HALTexture) BindGroupLayout() hal.BindGroupLayout { return t.layout }

// BindGroup returns the bind group for render passes.
func (t *HALTexture) BindGroup() hal.BindGroup { return t.bindGroup }

// Format returns the texture format.
func (t *HALTexture) Format() gputypes.TextureFormat { return t.format }

// Writes returns the number of uploads enqueued.
func (t *HALTexture) Writes() int { return t.writes }

// Destroy releases the GPU resources in reverse creation order. It is safe
// to call more than once.
func (t *HALTexture) Destroy() {
	if t.bindGroup != nil {
		t.device.DestroyBindGroup(t.bindGroup)
		t.bindGroup = nil
	}
	if t.layout != nil {
		t.device.DestroyBindGroupLayout(t.layout)
		t.layout = nil
	}
	if t.sampler != nil {
		t.device.DestroySampler(t.sampler)
		t.sampler = nil
	}
	if t.view != nil {
		t.device.DestroyTextureView(t.view)
		t.view = nil
	}
	if t.texture != nil {
		t.device.DestroyTexture(t.texture)
		t.texture = nil
	}
}

// HALTextureFactory returns a TextureFactory creating HALTextures on
// device and queue.
func HALTextureFactory(device hal.Device, queue hal.Queue, cfg TextureConfig) TextureFactory {
	return func(size int) (Texture, error) {
		t, err := NewHALTexture(device, queue, size, cfg)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
}

// HALTextureFactoryFromProvider returns a TextureFactory using the HAL
// device and queue of a shared provider. The provider must implement
// HalDevice() any and HalQueue() any returning hal.Device and hal.Queue.
func HALTextureFactoryFromProvider(provider gpucontext.DeviceProvider, cfg TextureConfig) (TextureFactory, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHAL
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHAL)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHAL)
	}
	return HALTextureFactory(device, queue, cfg), nil
}
