package syntax

import "github.com/coregx/wildcard/strops"

// state records the previous token, which is all the adjacency rules need.
type state uint8

const (
	// stateStart: start of pattern or after a literal.
	stateStart state = iota
	stateAfterOne
	stateAfterZeroOrMany
	stateAfterOneOrMany
	stateAfterZeroOrOne
)

// accepts reports whether a token of kind k may follow the current state.
//
//	*   then ?, ?*            ("*?")
//	**  then *, **            ("***")
//	?*  then ?, ?*, *, **     ("?*?", "?**")
func (s state) accepts(k Kind) bool {
	if k == Literal {
		return true
	}

	switch s {
	case stateAfterZeroOrMany:
		return false
	case stateAfterOneOrMany:
		return k == One || k == ZeroOrOne
	case stateAfterZeroOrOne:
		return false
	default:
		return true
	}
}

func after(k Kind) state {
	switch k {
	case One:
		return stateAfterOne
	case ZeroOrMany:
		return stateAfterZeroOrMany
	case OneOrMany:
		return stateAfterOneOrMany
	case ZeroOrOne:
		return stateAfterZeroOrOne
	default:
		return stateStart
	}
}

// gap is the pending length constraint built from a run of wildcards.
type gap struct {
	min, max int
}

func (g gap) isZero() bool {
	return g.min == 0 && g.max == 0
}

func (g gap) add(k Kind) gap {
	switch k {
	case One:
		g.min++
		if g.max != Unbounded {
			g.max++
		}
	case ZeroOrOne:
		if g.max != Unbounded {
			g.max++
		}
	case ZeroOrMany:
		g.max = Unbounded
	case OneOrMany:
		g.min++
		g.max = Unbounded
	}
	return g
}

// parserState is the complete state of the compiler between two tokens.
// It is a value: step returns the successor instead of mutating.
type parserState struct {
	state   state
	literal string
	gap     gap
	pattern string
}

// step consumes one token. When the token closes a phrase, the phrase is
// returned with emit set.
func (ps parserState) step(tok Token) (next parserState, phrase Phrase, emit bool, err error) {
	if !ps.state.accepts(tok.Kind) {
		return ps, Phrase{}, false, &Error{
			Code:    ErrInvalidPatternSyntax,
			Pattern: ps.pattern,
			Pos:     tok.Pos,
			Near:    tok.Text,
		}
	}

	next = ps
	next.state = after(tok.Kind)

	if tok.Kind == Literal {
		next.literal += tok.Text
		return next, Phrase{}, false, nil
	}

	if ps.literal != "" {
		phrase = Phrase{Literal: ps.literal, MinGap: ps.gap.min, MaxGap: ps.gap.max}
		emit = true
		next.literal = ""
		next.gap = gap{}
	}
	next.gap = next.gap.add(tok.Kind)

	return next, phrase, emit, nil
}

// finish flushes whatever the last tokens left pending.
func (ps parserState) finish() (Phrase, bool) {
	if ps.literal == "" && ps.gap.isZero() {
		return Phrase{}, false
	}
	return Phrase{Literal: ps.literal, MinGap: ps.gap.min, MaxGap: ps.gap.max}, true
}

// Compile parses pattern and returns its phrase table.
//
// The returned error is a *Error with code ErrInvalidEscapeSequence or
// ErrInvalidPatternSyntax. Compile is deterministic: equal patterns compiled
// with the same Ops yield equal Programs.
func Compile(pattern string, ops strops.Ops) (*Program, error) {
	tokens, err := Tokenize(pattern, ops)
	if err != nil {
		return nil, err
	}

	ps := parserState{pattern: pattern}
	var phrases []Phrase

	for _, tok := range tokens {
		var (
			phrase Phrase
			emit   bool
		)
		ps, phrase, emit, err = ps.step(tok)
		if err != nil {
			return nil, err
		}
		if emit {
			phrases = append(phrases, phrase)
		}
	}

	if phrase, ok := ps.finish(); ok {
		phrases = append(phrases, phrase)
	}

	return newProgram(pattern, phrases, ops), nil
}
