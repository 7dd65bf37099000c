package glyphatlas

import (
	"fmt"

	"github.com/gogpu/glyphatlas/glyph"
	"github.com/gogpu/glyphatlas/gpu"
	"github.com/gogpu/glyphatlas/internal/cache"
	"github.com/gogpu/glyphatlas/internal/shelf"
)

// Atlas caches rasterized glyphs in one fixed-size RGBA texture.
//
// Glyphs are packed with a shelf allocator. When the texture is full the
// least recently used quarter of the entries is evicted and packing
// restarts according to the EvictionPolicy.
//
// Atlas is not safe for concurrent use. Get, Insert and Resolve all update
// recency and counters.
type Atlas struct {
	policy  EvictionPolicy
	shelves *shelf.Allocator
	entries *cache.Map[glyph.Key, GlyphAllocation]
	texture gpu.Texture
	stats   AtlasStats
	closed  bool
}

// New creates an atlas of size x size pixels. size is clamped to
// [MinAtlasSize, MaxAtlasSize].
func New(size int, opts ...Option) (*Atlas, error) {
	cfg := DefaultConfig()
	cfg.Size = clampSize(size)
	return NewWithConfig(cfg, opts...)
}

// NewWithDefaultSize creates a DefaultAtlasSize atlas.
func NewWithDefaultSize(opts ...Option) (*Atlas, error) {
	return NewWithConfig(DefaultConfig(), opts...)
}

// NewWithConfig creates an atlas from an explicit configuration. Options
// override the matching Config fields.
func NewWithConfig(cfg Config, opts ...Option) (*Atlas, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.policy != nil {
		cfg.Policy = *o.policy
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tex, err := o.factory(cfg.Size)
	if err != nil {
		return nil, fmt.Errorf("glyphatlas: create texture: %w", err)
	}
	if tex.Size() != cfg.Size {
		return nil, &ConfigError{
			Field:  "Size",
			Reason: fmt.Sprintf("texture factory returned %dx%d, want %dx%d", tex.Size(), tex.Size(), cfg.Size, cfg.Size),
		}
	}

	Logger().Debug("glyphatlas: created",
		"size", cfg.Size,
		"policy", cfg.Policy.String(),
	)
	return &Atlas{
		policy:  cfg.Policy,
		shelves: shelf.New(cfg.Size, GlyphPadding),
		entries: cache.New[glyph.Key, GlyphAllocation](),
		texture: tex,
	}, nil
}

// Get returns the allocation for key and marks it most recently used.
func (a *Atlas) Get(key glyph.Key) (GlyphAllocation, bool) {
	alloc, ok := a.entries.Get(key)
	if !ok {
		a.stats.Misses++
		return GlyphAllocation{}, false
	}
	a.stats.Hits++
	return alloc, true
}

// Contains reports whether key is cached without touching recency or
// counters.
func (a *Atlas) Contains(key glyph.Key) bool {
	return a.entries.Contains(key)
}

// Insert uploads g to the texture and caches its location under key.
//
// If key is already cached the existing allocation is returned unchanged,
// marked most recently used and counted as a hit; g is not inspected.
// Otherwise g must be non-empty with a buffer matching its size and format.
// When there is no room, one eviction runs and allocation is retried once,
// also for glyphs larger than the atlas, which then fail with
// *AtlasFullError.
func (a *Atlas) Insert(key glyph.Key, g *glyph.RasterizedGlyph) (GlyphAllocation, error) {
	if a.closed {
		return GlyphAllocation{}, ErrClosed
	}
	if alloc, ok := a.entries.Get(key); ok {
		a.stats.Hits++
		return alloc, nil
	}
	if g == nil {
		return GlyphAllocation{}, fmt.Errorf("%w: nil glyph", ErrInvalidGlyphData)
	}
	if err := g.Validate(); err != nil {
		return GlyphAllocation{}, err
	}
	shelvesBefore := a.shelves.ShelfCount()
	x, y, ok := a.shelves.TryAllocate(g.Width, g.Height)
	if !ok {
		if err := a.evict(); err != nil {
			Logger().Warn("glyphatlas: eviction impossible",
				"err", err,
				"width", g.Width,
				"height", g.Height,
			)
			return GlyphAllocation{}, a.fullError(g)
		}
		shelvesBefore = a.shelves.ShelfCount()
		x, y, ok = a.shelves.TryAllocate(g.Width, g.Height)
		if !ok {
			Logger().Debug("glyphatlas: no room after eviction",
				"width", g.Width,
				"height", g.Height,
				"oversized", !a.shelves.CanFit(g.Width, g.Height),
			)
			return GlyphAllocation{}, a.fullError(g)
		}
	}
	if a.shelves.ShelfCount() > shelvesBefore {
		Logger().Debug("glyphatlas: new shelf",
			"y", y,
			"height", g.Height+a.shelves.Padding(),
			"next_y", a.shelves.NextY(),
			"shelves", a.shelves.ShelfCount(),
		)
	}

	a.texture.WriteRegion(x, y, g.Width, g.Height, g.ToRGBA())

	alloc := GlyphAllocation{
		X:        x,
		Y:        y,
		Width:    g.Width,
		Height:   g.Height,
		BearingX: g.BearingX,
		BearingY: g.BearingY,
		IsColor:  g.IsColor,
		Format:   g.Format,
	}
	a.entries.Put(key, alloc)
	a.stats.Inserts++
	return alloc, nil
}

// Resolve returns the allocation for key, rasterizing and inserting the
// glyph on a miss. It returns false when the glyph has no visible pixels.
func (a *Atlas) Resolve(key glyph.Key, r *glyph.Rasterizer) (GlyphAllocation, bool, error) {
	if alloc, ok := a.Get(key); ok {
		return alloc, true, nil
	}
	if a.closed {
		return GlyphAllocation{}, false, ErrClosed
	}
	g, ok, err := r.Rasterize(key)
	if err != nil || !ok {
		return GlyphAllocation{}, false, err
	}
	alloc, err := a.Insert(key, &g)
	if err != nil {
		return GlyphAllocation{}, false, err
	}
	return alloc, true, nil
}

func (a *Atlas) fullError(g *glyph.RasterizedGlyph) error {
	return &AtlasFullError{Width: g.Width, Height: g.Height, AtlasSize: a.shelves.Size()}
}

// evict removes the least recently used quarter of the entries (rounded
// up) and applies the eviction policy.
func (a *Atlas) evict() error {
	n := a.entries.Len()
	if n == 0 {
		return ErrEvictEmpty
	}
	removed := len(a.entries.EvictOldest(max((n+3)/4, 1)))
	a.shelves.Reset()
	if a.policy == EvictInvalidateAll {
		removed += a.entries.Len()
		a.entries.Clear()
	}
	a.stats.Evictions += uint64(removed)
	a.stats.EvictionCycles++

	Logger().Debug("glyphatlas: evicted",
		"removed", removed,
		"remaining", a.entries.Len(),
		"policy", a.policy.String(),
	)
	return nil
}

// Clear drops every entry and shelf and zeroes the counters. The texture
// is kept and not cleared.
func (a *Atlas) Clear() {
	a.entries.Clear()
	a.shelves.Reset()
	a.stats = AtlasStats{}
}

// Usage returns the fraction of the texture covered by shelves, in [0, 1].
func (a *Atlas) Usage() float32 {
	return a.shelves.Usage()
}

// Stats returns a snapshot of the counters.
func (a *Atlas) Stats() AtlasStats {
	s := a.stats
	s.GlyphsCached = a.entries.Len()
	return s
}

// Size returns the texture side length in pixels.
func (a *Atlas) Size() int {
	return a.shelves.Size()
}

// Len returns the number of cached glyphs.
func (a *Atlas) Len() int {
	return a.entries.Len()
}

// Policy returns the eviction policy.
func (a *Atlas) Policy() EvictionPolicy {
	return a.policy
}

// Texture returns the atlas texture.
func (a *Atlas) Texture() gpu.Texture {
	return a.texture
}

// Close drops every entry and releases the texture if it has a Destroy
// method. Further inserts fail with ErrClosed. Close is idempotent.
func (a *Atlas) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	a.entries.Clear()
	a.shelves.Reset()
	if d, ok := a.texture.(interface{ Destroy() }); ok {
		d.Destroy()
	}
	return nil
}
