package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LRU is a bounded cache that evicts the least recently used entry when a
// new key is added at capacity.
type LRU[K comparable, V any] struct {
	inner *lru.Cache[K, V]
	size  int
	counters
}

// NewLRU returns a cache holding at most size entries.
func NewLRU[K comparable, V any](size int) (*LRU[K, V], error) {
	c := &LRU[K, V]{size: size}

	inner, err := lru.NewWithEvict[K, V](size, func(K, V) {
		c.evictions.Add(1)
	})
	if err != nil {
		return nil, fmt.Errorf("cache: invalid LRU size %d: %w", size, err)
	}
	c.inner = inner

	return c, nil
}

// Get implements Cache. A hit marks the entry as recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	v, ok := c.inner.Get(key)
	c.record(ok)
	return v, ok
}

// Add implements Cache.
func (c *LRU[K, V]) Add(key K, value V) {
	c.inner.Add(key, value)
}

// Len implements Cache.
func (c *LRU[K, V]) Len() int {
	return c.inner.Len()
}

// Size returns the capacity.
func (c *LRU[K, V]) Size() int {
	return c.size
}

// Purge implements Cache. Purged entries do not count as evictions.
func (c *LRU[K, V]) Purge() {
	evictions := c.evictions.Load()
	c.inner.Purge()
	c.evictions.Store(evictions)
}

// Stats implements Cache.
func (c *LRU[K, V]) Stats() Stats {
	return c.snapshot()
}
