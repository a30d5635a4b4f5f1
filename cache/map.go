package cache

import "sync"

// Map is an unbounded cache. Entries live until Purge.
//
// Reads take a shared lock so concurrent lookups of hot patterns do not
// serialize.
type Map[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
	counters
}

// NewMap returns an empty unbounded cache.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{entries: make(map[K]V)}
}

// Get implements Cache.
func (m *Map[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	v, ok := m.entries[key]
	m.mu.RUnlock()

	m.record(ok)
	return v, ok
}

// Add implements Cache.
func (m *Map[K, V]) Add(key K, value V) {
	m.mu.Lock()
	m.entries[key] = value
	m.mu.Unlock()
}

// Len implements Cache.
func (m *Map[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Purge implements Cache.
func (m *Map[K, V]) Purge() {
	m.mu.Lock()
	m.entries = make(map[K]V)
	m.mu.Unlock()
}

// Stats implements Cache.
func (m *Map[K, V]) Stats() Stats {
	return m.snapshot()
}
