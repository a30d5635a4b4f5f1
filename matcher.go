package wildcard

import (
	"github.com/coregx/wildcard/cache"
	"github.com/coregx/wildcard/engine"
	"github.com/coregx/wildcard/strops"
)

// Matcher compiles and matches patterns through two caches: compiled
// patterns keyed by pattern text, and match results keyed by
// (pattern, subject).
//
// Both caches belong to the Matcher; there is no process-wide state. A
// Matcher is safe for concurrent use when its caches are, which holds for
// every implementation in package cache.
type Matcher struct {
	encoding Encoding
	ops      strops.Ops
	codec    *strops.Codec
	engine   engine.Config

	patterns cache.Cache[string, *Wildcard]
	results  cache.Cache[ResultKey, bool] // nil when disabled
}

// MatcherStats reports cache effectiveness.
type MatcherStats struct {
	Patterns cache.Stats
	Results  cache.Stats
}

// NewMatcher returns a Matcher for config. Nil caches are replaced by
// unbounded ones.
func NewMatcher(config Config) (*Matcher, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	ops, codec, err := config.Encoding.resolve()
	if err != nil {
		return nil, err
	}

	m := &Matcher{
		encoding: config.Encoding,
		ops:      ops,
		codec:    codec,
		engine:   config.engineConfig(),
		patterns: config.PatternCache,
		results:  config.ResultCache,
	}
	if m.patterns == nil {
		m.patterns = cache.NewMap[string, *Wildcard]()
	}
	switch {
	case config.DisableResultCache:
		m.results = nil
	case m.results == nil:
		m.results = cache.NewMap[ResultKey, bool]()
	}

	return m, nil
}

// Encoding returns the encoding the Matcher was configured with.
func (m *Matcher) Encoding() Encoding {
	return m.encoding
}

// Compile returns the compiled pattern, from the cache when the same
// pattern text was compiled before. Invalid patterns are not cached.
func (m *Matcher) Compile(pattern string) (*Wildcard, error) {
	if w, ok := m.patterns.Get(pattern); ok {
		return w, nil
	}

	w, err := compile(pattern, m.ops, m.codec, m.engine)
	if err != nil {
		return nil, err
	}

	m.patterns.Add(pattern, w)
	return w, nil
}

// Match compiles pattern (or fetches it from the cache) and reports
// whether it matches subject. Results are cached per (pattern, subject).
// The error is non-nil only when the pattern is invalid.
func (m *Matcher) Match(subject, pattern string) (bool, error) {
	key := ResultKey{Pattern: pattern, Subject: subject}
	if m.results != nil {
		if ok, hit := m.results.Get(key); hit {
			return ok, nil
		}
	}

	w, err := m.Compile(pattern)
	if err != nil {
		return false, err
	}

	ok := w.Match(subject)
	if m.results != nil {
		m.results.Add(key, ok)
	}
	return ok, nil
}

// CachedPatterns returns the number of compiled patterns held.
func (m *Matcher) CachedPatterns() int {
	return m.patterns.Len()
}

// CachedResults returns the number of match results held.
func (m *Matcher) CachedResults() int {
	if m.results == nil {
		return 0
	}
	return m.results.Len()
}

// Purge empties both caches.
func (m *Matcher) Purge() {
	m.patterns.Purge()
	if m.results != nil {
		m.results.Purge()
	}
}

// Stats returns hit and miss counters of both caches.
func (m *Matcher) Stats() MatcherStats {
	st := MatcherStats{Patterns: m.patterns.Stats()}
	if m.results != nil {
		st.Results = m.results.Stats()
	}
	return st
}
