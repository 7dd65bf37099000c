package glyphatlas

import "github.com/gogpu/glyphatlas/gpu"

// Option configures an Atlas during creation.
//
// Example:
//
//	// CPU texture, default policy
//	a, err := glyphatlas.New(1024)
//
//	// GPU texture on a shared device
//	a, err := glyphatlas.New(2048,
//	    glyphatlas.WithTextureFactory(gpu.HALTextureFactory(device, queue, gpu.TextureConfig{})))
type Option func(*options)

// options holds optional configuration for Atlas creation.
type options struct {
	factory gpu.TextureFactory
	policy  *EvictionPolicy
}

// defaultOptions returns the default atlas options.
func defaultOptions() options {
	return options{factory: gpu.MemoryTextureFactory}
}

// WithTextureFactory sets how the atlas texture is created.
// Default: gpu.MemoryTextureFactory.
func WithTextureFactory(f gpu.TextureFactory) Option {
	return func(o *options) {
		if f != nil {
			o.factory = f
		}
	}
}

// WithEvictionPolicy overrides the eviction policy.
func WithEvictionPolicy(p EvictionPolicy) Option {
	return func(o *options) {
		o.policy = &p
	}
}
