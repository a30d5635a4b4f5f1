package cache

import (
	"fmt"
	"sync"
	"testing"
)

func newCaches(t *testing.T) map[string]Cache[string, int] {
	t.Helper()

	l, err := NewLRU[string, int](16)
	if err != nil {
		t.Fatalf("NewLRU: %v", err)
	}
	return map[string]Cache[string, int]{
		"map": NewMap[string, int](),
		"lru": l,
	}
}

func TestCacheGetAdd(t *testing.T) {
	for name, c := range newCaches(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok := c.Get("a"); ok {
				t.Fatal("Get on empty cache reported a hit")
			}

			c.Add("a", 1)
			c.Add("b", 2)
			c.Add("a", 3)

			if v, ok := c.Get("a"); !ok || v != 3 {
				t.Errorf("Get(a) = %d, %v, want 3, true", v, ok)
			}
			if v, ok := c.Get("b"); !ok || v != 2 {
				t.Errorf("Get(b) = %d, %v, want 2, true", v, ok)
			}
			if got := c.Len(); got != 2 {
				t.Errorf("Len() = %d, want 2", got)
			}

			st := c.Stats()
			if st.Hits != 2 || st.Misses != 1 {
				t.Errorf("Stats() = %+v, want 2 hits and 1 miss", st)
			}
		})
	}
}

func TestCachePurge(t *testing.T) {
	for name, c := range newCaches(t) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 10; i++ {
				c.Add(fmt.Sprint(i), i)
			}
			c.Get("1")

			c.Purge()

			if got := c.Len(); got != 0 {
				t.Errorf("Len() after Purge = %d, want 0", got)
			}
			if _, ok := c.Get("1"); ok {
				t.Error("Get after Purge reported a hit")
			}
			st := c.Stats()
			if st.Hits != 1 || st.Misses != 1 || st.Evictions != 0 {
				t.Errorf("Stats() = %+v, want 1 hit, 1 miss, 0 evictions", st)
			}
		})
	}
}

func TestLRUEviction(t *testing.T) {
	c, err := NewLRU[string, int](2)
	if err != nil {
		t.Fatal(err)
	}

	c.Add("a", 1)
	c.Add("b", 2)
	c.Get("a") // b is now least recently used
	c.Add("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("a should still be cached")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("c should be cached")
	}
	if got := c.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	if got := c.Size(); got != 2 {
		t.Errorf("Size() = %d, want 2", got)
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestNewLRUInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := NewLRU[string, int](size); err == nil {
			t.Errorf("NewLRU(%d) succeeded, want error", size)
		}
	}
}

func TestStatsHitRate(t *testing.T) {
	tests := []struct {
		stats Stats
		want  float64
	}{
		{Stats{}, 0},
		{Stats{Hits: 3, Misses: 1}, 0.75},
		{Stats{Misses: 5}, 0},
		{Stats{Hits: 2}, 1},
	}

	for _, tt := range tests {
		if got := tt.stats.HitRate(); got != tt.want {
			t.Errorf("%+v.HitRate() = %v, want %v", tt.stats, got, tt.want)
		}
	}
}

func TestCacheConcurrent(t *testing.T) {
	for name, c := range newCaches(t) {
		t.Run(name, func(t *testing.T) {
			var wg sync.WaitGroup
			for g := 0; g < 8; g++ {
				wg.Add(1)
				go func(g int) {
					defer wg.Done()
					for i := 0; i < 200; i++ {
						key := fmt.Sprint(i % 12)
						if v, ok := c.Get(key); ok && v != i%12 {
							t.Errorf("Get(%s) = %d", key, v)
						}
						c.Add(key, i%12)
					}
				}(g)
			}
			wg.Wait()

			st := c.Stats()
			if st.Hits+st.Misses != 8*200 {
				t.Errorf("lookups = %d, want %d", st.Hits+st.Misses, 8*200)
			}
		})
	}
}

func BenchmarkMapGet(b *testing.B) {
	c := NewMap[string, int]()
	c.Add("search*phrase", 1)

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c.Get("search*phrase")
		}
	})
}

func BenchmarkLRUGet(b *testing.B) {
	c, _ := NewLRU[string, int](128)
	c.Add("search*phrase", 1)

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c.Get("search*phrase")
		}
	})
}
