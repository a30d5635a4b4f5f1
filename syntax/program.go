package syntax

import (
	"fmt"
	"strings"

	"github.com/coregx/wildcard/strops"
)

// Unbounded is the MaxGap of a phrase preceded by '*' or '**': the gap may
// extend to the end of the subject.
const Unbounded = -1

// Phrase is one entry of a compiled pattern: a literal and the number of
// subject characters that may precede it, counted from the end of the
// previous phrase's match.
//
// An empty Literal is a pure length constraint on the rest of the subject.
// It only ever appears as the last phrase.
type Phrase struct {
	Literal string
	MinGap  int
	MaxGap  int // Unbounded for no upper limit
}

// IsUnbounded reports whether the gap has no upper limit.
func (p Phrase) IsUnbounded() bool {
	return p.MaxGap == Unbounded
}

// IsFixed reports whether exactly MinGap characters precede the literal.
func (p Phrase) IsFixed() bool {
	return p.MinGap == p.MaxGap
}

func (p Phrase) String() string {
	return fmt.Sprintf("(%q,%d,%d)", p.Literal, p.MinGap, p.MaxGap)
}

// Program is a compiled wildcard pattern. It is immutable and safe for
// concurrent use.
type Program struct {
	pattern string
	ops     strops.Ops
	phrases []Phrase

	// litLen[i] is the character length of phrases[i].Literal.
	litLen []int

	// minLen[i] is the fewest characters phrases[i:] can match;
	// minLen[len(phrases)] is 0.
	minLen []int
}

func newProgram(pattern string, phrases []Phrase, ops strops.Ops) *Program {
	p := &Program{
		pattern: pattern,
		ops:     ops,
		phrases: phrases,
		litLen:  make([]int, len(phrases)),
		minLen:  make([]int, len(phrases)+1),
	}

	for i := len(phrases) - 1; i >= 0; i-- {
		p.litLen[i] = ops.Len(phrases[i].Literal)
		p.minLen[i] = p.minLen[i+1] + phrases[i].MinGap + p.litLen[i]
	}

	return p
}

// Pattern returns the source text the program was compiled from.
func (p *Program) Pattern() string {
	return p.pattern
}

// Ops returns the string strategy the program was compiled with.
func (p *Program) Ops() strops.Ops {
	return p.ops
}

// Len returns the number of phrases.
func (p *Program) Len() int {
	return len(p.phrases)
}

// Phrase returns the i-th phrase.
func (p *Program) Phrase(i int) Phrase {
	return p.phrases[i]
}

// Phrases returns a copy of the phrase table.
func (p *Program) Phrases() []Phrase {
	out := make([]Phrase, len(p.phrases))
	copy(out, p.phrases)
	return out
}

// LiteralLen returns the character length of the i-th phrase's literal.
func (p *Program) LiteralLen(i int) int {
	return p.litLen[i]
}

// MinLen returns the length of the shortest subject the program can match.
func (p *Program) MinLen() int {
	return p.minLen[0]
}

// MinLenFrom returns the fewest characters phrases[i:] can match.
func (p *Program) MinLenFrom(i int) int {
	return p.minLen[i]
}

// Literals returns the non-empty literals in phrase order.
func (p *Program) Literals() []string {
	var out []string
	for _, ph := range p.phrases {
		if ph.Literal != "" {
			out = append(out, ph.Literal)
		}
	}
	return out
}

// LongestLiteral returns the longest literal in bytes, the first one on
// ties, or "" when the pattern has none.
func (p *Program) LongestLiteral() string {
	longest := ""
	for _, ph := range p.phrases {
		if len(ph.Literal) > len(longest) {
			longest = ph.Literal
		}
	}
	return longest
}

// IsExact reports whether the pattern contains no wildcards, so it matches
// only its own decoded text.
func (p *Program) IsExact() bool {
	return len(p.phrases) == 0 || (len(p.phrases) == 1 && p.phrases[0].MaxGap == 0)
}

// Equal reports whether p and other have the same phrase table.
func (p *Program) Equal(other *Program) bool {
	if other == nil || len(p.phrases) != len(other.phrases) {
		return false
	}
	for i := range p.phrases {
		if p.phrases[i] != other.phrases[i] {
			return false
		}
	}
	return true
}

// String renders the phrase table, e.g. [("search",0,0) ("",0,1)].
func (p *Program) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, ph := range p.phrases {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(ph.String())
	}
	b.WriteByte(']')
	return b.String()
}
