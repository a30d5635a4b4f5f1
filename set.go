package wildcard

import (
	"sync"

	"github.com/coregx/wildcard/prefilter"
)

// Set matches a subject against many patterns at once.
//
// Each pattern contributes its longest literal to one Aho-Corasick
// automaton. A single scan of the subject finds which literals occur, and
// only patterns whose literal occurred (or that have none) run their
// engine.
//
// A Set is safe for concurrent use.
type Set struct {
	patterns []*Wildcard
	multi    *prefilter.Multi
	seen     sync.Pool
}

// NewSet compiles patterns for byte-wise matching.
func NewSet(patterns ...string) (*Set, error) {
	return NewSetWithConfig(DefaultConfig(), patterns...)
}

// NewSetWithConfig compiles patterns with the encoding and engine settings
// of config.
func NewSetWithConfig(config Config, patterns ...string) (*Set, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	ops, codec, err := config.Encoding.resolve()
	if err != nil {
		return nil, err
	}

	// The set's own scan replaces the per-pattern prefilter.
	ec := config.engineConfig()
	ec.EnablePrefilter = false

	s := &Set{patterns: make([]*Wildcard, len(patterns))}
	literals := make([]string, len(patterns))
	for i, p := range patterns {
		w, err := compile(p, ops, codec, ec)
		if err != nil {
			return nil, err
		}
		s.patterns[i] = w
		literals[i] = w.Program().LongestLiteral()
	}

	s.multi, err = prefilter.NewMulti(literals)
	if err != nil {
		return nil, err
	}

	n := len(patterns)
	s.seen.New = func() any {
		b := make([]bool, n)
		return &b
	}

	return s, nil
}

// Len returns the number of patterns.
func (s *Set) Len() int {
	return len(s.patterns)
}

// Patterns returns the pattern texts in insertion order.
func (s *Set) Patterns() []string {
	out := make([]string, len(s.patterns))
	for i, w := range s.patterns {
		out[i] = w.String()
	}
	return out
}

// Match reports whether any pattern matches subject.
func (s *Set) Match(subject string) bool {
	matched := false
	s.each(subject, func(int) bool {
		matched = true
		return false
	})
	return matched
}

// Matches returns the indices of all patterns matching subject, in
// insertion order.
func (s *Set) Matches(subject string) []int {
	var out []int
	s.each(subject, func(i int) bool {
		out = append(out, i)
		return true
	})
	return out
}

// each calls fn for every matching pattern index in order until fn
// returns false.
func (s *Set) each(subject string, fn func(int) bool) {
	if len(s.patterns) == 0 {
		return
	}
	subject = s.decode(subject)
	if !s.multi.IsMatch(subject) {
		return
	}

	bp := s.seen.Get().(*[]bool)
	seen := *bp
	clear(seen)
	defer s.seen.Put(bp)

	if s.multi.Scan(subject, seen) == 0 {
		return
	}
	for i, w := range s.patterns {
		if seen[i] && w.matchDecoded(subject) {
			if !fn(i) {
				return
			}
		}
	}
}

func (s *Set) decode(subject string) string {
	if codec := s.patterns[0].codec; codec != nil {
		return codec.Decode(subject)
	}
	return subject
}
