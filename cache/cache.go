// Package cache provides the memoization layer of the wildcard matcher.
//
// A Matcher keeps two caches: compiled patterns keyed by pattern text, and
// match results keyed by (pattern, subject). Both sit behind the Cache
// interface so the owner decides lifetime and eviction: Map grows without
// bound, LRU evicts the least recently used entry once full.
//
// All implementations are safe for concurrent use.
package cache

import "sync/atomic"

// Cache is a concurrency-safe key/value store.
type Cache[K comparable, V any] interface {
	// Get returns the value stored for key.
	Get(key K) (V, bool)

	// Add stores value for key, replacing any previous value.
	Add(key K, value V)

	// Len returns the number of stored entries.
	Len() int

	// Purge removes all entries. Statistics are kept.
	Purge()

	// Stats returns lookup statistics.
	Stats() Stats
}

// Stats holds cache lookup counters.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns Hits / (Hits + Misses), or 0 before the first lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// counters is embedded by implementations to track Stats atomically.
type counters struct {
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

func (c *counters) record(ok bool) {
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
}

func (c *counters) snapshot() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
