package cache

import (
	"cmp"
	"slices"
	"sync/atomic"
)

// Map is a generic map whose entries carry an LRU access stamp.
//
// Map is not safe for concurrent mutation.
type Map[K comparable, V any] struct {
	entries map[K]*entry[V]
	tick    atomic.Uint64 // Monotonic access counter
}

// entry holds a cached value with its access stamp.
type entry[V any] struct {
	value V
	stamp uint64
}

// New creates an empty map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		entries: make(map[K]*entry[V]),
	}
}

// next returns a fresh stamp, strictly greater than every earlier one.
func (m *Map[K, V]) next() uint64 {
	return m.tick.Add(1)
}

// Get retrieves a value and marks it as the most recently used.
// Returns (value, true) if found, (zero, false) otherwise.
func (m *Map[K, V]) Get(key K) (V, bool) {
	e, ok := m.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	e.stamp = m.next()
	return e.value, true
}

// Contains reports whether key is present without touching its stamp.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.entries[key]
	return ok
}

// Put stores a value stamped as the most recently used, replacing any
// previous value for key.
func (m *Map[K, V]) Put(key K, value V) {
	m.entries[key] = &entry[V]{
		value: value,
		stamp: m.next(),
	}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// Clear removes all entries. The stamp counter is not reset.
func (m *Map[K, V]) Clear() {
	clear(m.entries)
}

// Oldest returns up to n keys ordered from least to most recently used.
func (m *Map[K, V]) Oldest(n int) []K {
	if n <= 0 || len(m.entries) == 0 {
		return nil
	}

	type ranked struct {
		key   K
		stamp uint64
	}
	all := make([]ranked, 0, len(m.entries))
	for key, e := range m.entries {
		all = append(all, ranked{key: key, stamp: e.stamp})
	}
	slices.SortFunc(all, func(a, b ranked) int {
		return cmp.Compare(a.stamp, b.stamp)
	})

	n = min(n, len(all))
	keys := make([]K, n)
	for i := range keys {
		keys[i] = all[i].key
	}
	return keys
}

// EvictOldest removes up to n least recently used entries and returns
// their keys, coldest first.
func (m *Map[K, V]) EvictOldest(n int) []K {
	keys := m.Oldest(n)
	for _, key := range keys {
		delete(m.entries, key)
	}
	return keys
}
