package glyphatlas

import "fmt"

// Atlas size limits in pixels.
const (
	MinAtlasSize     = 512
	MaxAtlasSize     = 4096
	DefaultAtlasSize = 2048
)

// GlyphPadding is the gap in pixels left after every glyph and below every
// shelf so linear filtering never bleeds between neighbours.
const GlyphPadding = 1

// EvictionPolicy selects what happens to the packing state after the least
// recently used glyphs are dropped.
type EvictionPolicy uint8

const (
	// EvictResetShelves drops every shelf and restarts packing from the
	// top of the texture. Surviving entries keep their coordinates, and
	// new glyphs may be written over them. The texture is not cleared.
	EvictResetShelves EvictionPolicy = iota

	// EvictInvalidateAll also drops every surviving entry, so no cached
	// coordinates can point at overwritten pixels. Glyphs are
	// re-rasterized on next use.
	EvictInvalidateAll
)

// String returns the policy name.
func (p EvictionPolicy) String() string {
	switch p {
	case EvictResetShelves:
		return "ResetShelves"
	case EvictInvalidateAll:
		return "InvalidateAll"
	default:
		return fmt.Sprintf("EvictionPolicy(%d)", uint8(p))
	}
}

// Config holds atlas parameters.
type Config struct {
	// Size is the texture width and height in pixels.
	Size int

	// Policy is the eviction policy.
	Policy EvictionPolicy
}

// DefaultConfig returns a 2048x2048 atlas with EvictResetShelves.
func DefaultConfig() Config {
	return Config{
		Size:   DefaultAtlasSize,
		Policy: EvictResetShelves,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Size < MinAtlasSize || c.Size > MaxAtlasSize {
		return &ConfigError{
			Field:  "Size",
			Reason: fmt.Sprintf("%d outside [%d, %d]", c.Size, MinAtlasSize, MaxAtlasSize),
		}
	}
	if c.Policy > EvictInvalidateAll {
		return &ConfigError{Field: "Policy", Reason: "unknown eviction policy " + c.Policy.String()}
	}
	return nil
}

// clampSize limits size to [MinAtlasSize, MaxAtlasSize].
func clampSize(size int) int {
	return min(max(size, MinAtlasSize), MaxAtlasSize)
}
