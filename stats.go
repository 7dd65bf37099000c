package glyphatlas

// AtlasStats is a snapshot of atlas counters.
type AtlasStats struct {
	// GlyphsCached is the number of entries, always equal to Len().
	GlyphsCached int

	// Hits counts Get hits and inserts of keys already cached.
	Hits uint64

	// Misses counts Get misses.
	Misses uint64

	// Evictions counts entries removed by eviction.
	Evictions uint64

	// EvictionCycles counts eviction passes.
	EvictionCycles uint64

	// Inserts counts glyphs uploaded to the texture.
	Inserts uint64
}

// HitRate returns Hits / (Hits + Misses), or 0 before any lookup.
func (s AtlasStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
