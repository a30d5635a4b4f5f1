package prefilter

import (
	"fmt"
	"strings"

	"github.com/coregx/ahocorasick"
)

// Multi finds which of many literals occur in a haystack in one pass.
//
// The automaton reports some match whenever any literal occurs, regardless
// of its match semantics. Every start offset up to the reported one is then
// checked against the literals sharing its first byte, so each occurring
// literal is found exactly.
type Multi struct {
	auto     *ahocorasick.Automaton
	literals []string
	byFirst  [256][]int
}

// NewMulti builds a filter over literals. Empty and duplicate literals are
// allowed; an empty literal is reported as present in every haystack.
func NewMulti(literals []string) (*Multi, error) {
	m := &Multi{literals: append([]string(nil), literals...)}

	builder := ahocorasick.NewBuilder()
	added := 0
	for id, lit := range literals {
		if lit == "" {
			continue
		}
		m.byFirst[lit[0]] = append(m.byFirst[lit[0]], id)
		builder.AddPattern([]byte(lit))
		added++
	}

	if added > 0 {
		auto, err := builder.Build()
		if err != nil {
			return nil, fmt.Errorf("prefilter: failed to build automaton over %d literals: %w", added, err)
		}
		m.auto = auto
	}

	return m, nil
}

// Len returns the number of literals.
func (m *Multi) Len() int {
	return len(m.literals)
}

// IsMatch reports whether any literal occurs in haystack.
func (m *Multi) IsMatch(haystack string) bool {
	if m.hasEmpty() {
		return true
	}
	if m.auto == nil {
		return false
	}
	return m.auto.IsMatch([]byte(haystack))
}

// Scan marks seen[id] for every literal id occurring in haystack and
// returns how many distinct literals were newly marked. seen must have
// length Len().
func (m *Multi) Scan(haystack string, seen []bool) int {
	marked := 0
	for id, lit := range m.literals {
		if lit == "" && !seen[id] {
			seen[id] = true
			marked++
		}
	}
	if m.auto == nil {
		return marked
	}

	b := []byte(haystack)
	at := 0
	for at < len(b) {
		match := m.auto.Find(b, at)
		if match == nil {
			break
		}
		for pos := at; pos <= match.Start; pos++ {
			for _, id := range m.byFirst[haystack[pos]] {
				if !seen[id] && strings.HasPrefix(haystack[pos:], m.literals[id]) {
					seen[id] = true
					marked++
				}
			}
		}
		at = match.Start + 1
	}

	return marked
}

func (m *Multi) hasEmpty() bool {
	for _, lit := range m.literals {
		if lit == "" {
			return true
		}
	}
	return false
}
