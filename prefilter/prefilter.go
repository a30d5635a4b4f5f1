// Package prefilter rejects subjects that cannot match before the
// backtracking engine runs.
//
// Every non-empty literal of a compiled wildcard must occur in any subject
// it matches, so searching for one literal with a substring search is a
// cheap necessary condition. The single-pattern filter picks the longest
// literal; Multi answers the same question for many patterns at once with
// an Aho-Corasick automaton.
//
// Prefilters never produce false negatives: a subject they reject is
// guaranteed not to match.
package prefilter

import "github.com/coregx/wildcard/simd"

// Prefilter is a necessary-condition check on a subject.
type Prefilter interface {
	// Find returns the byte offset of the first candidate at or after
	// start, or -1 if there is none.
	Find(haystack string, start int) int

	// IsMatch reports whether haystack contains a candidate at all.
	IsMatch(haystack string) bool

	// Needle returns the literal searched for.
	Needle() string
}

// New returns a prefilter for the given required literals, or nil when
// none is worth searching for.
//
// All literals must be required: the result looks for the longest one,
// which is usually the rarest.
func New(literals []string) Prefilter {
	longest := ""
	for _, lit := range literals {
		if len(lit) > len(longest) {
			longest = lit
		}
	}

	switch len(longest) {
	case 0:
		return nil
	case 1:
		return &Byte{b: longest[0]}
	default:
		return &Literal{needle: longest}
	}
}

// Byte searches for a single byte.
type Byte struct {
	b byte
}

// Find implements Prefilter.
func (p *Byte) Find(haystack string, start int) int {
	if start < 0 {
		start = 0
	}
	if start >= len(haystack) {
		return -1
	}
	i := simd.Memchr(haystack[start:], p.b)
	if i < 0 {
		return -1
	}
	return start + i
}

// IsMatch implements Prefilter.
func (p *Byte) IsMatch(haystack string) bool {
	return simd.Memchr(haystack, p.b) >= 0
}

// Needle implements Prefilter.
func (p *Byte) Needle() string {
	return string([]byte{p.b})
}

// Literal searches for a substring.
type Literal struct {
	needle string
}

// NewLiteral returns a substring prefilter.
func NewLiteral(needle string) *Literal {
	return &Literal{needle: needle}
}

// Find implements Prefilter.
func (p *Literal) Find(haystack string, start int) int {
	return simd.MemmemFrom(haystack, p.needle, start)
}

// IsMatch implements Prefilter.
func (p *Literal) IsMatch(haystack string) bool {
	return simd.Memmem(haystack, p.needle) >= 0
}

// Needle implements Prefilter.
func (p *Literal) Needle() string {
	return p.needle
}
