// Package cache provides the recency-stamped map behind the glyph atlas.
//
// # Map[K, V]
//
// Map stores values together with a logical access stamp taken from a
// monotonically increasing counter. Lookups through Get refresh the stamp;
// Contains does not. Eviction ranks entries by stamp and removes the
// coldest ones first:
//
//	m := cache.New[string, int]()
//	m.Put("a", 1)
//	m.Put("b", 2)
//	m.Get("a")                 // "a" is now the most recently used
//	evicted := m.EvictOldest(1) // []string{"b"}
//
// # Thread Safety
//
// The stamp counter is atomic so stamping never needs a lock, but the map
// itself is not synchronized. A Map must be driven from a single goroutine.
package cache
