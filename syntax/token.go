// Package syntax compiles wildcard patterns into phrase tables.
//
// A pattern is a sequence of literal text and wildcard tokens:
//
//	?    exactly one character
//	*    zero or more characters
//	**   one or more characters
//	?*   zero or one character
//	\?   literal '?'  (likewise \* and \\)
//
// Compile folds every run of wildcards between two literals into a single
// gap constraint, producing a Program: an ordered list of Phrase entries,
// each a literal plus the number of characters that may precede it.
//
// What counts as one character is decided by the strops.Ops the pattern is
// compiled with, and error positions are reported in the same unit.
package syntax

import (
	"strings"

	"github.com/coregx/wildcard/strops"
)

// Kind is the type of a pattern token.
type Kind uint8

const (
	// Literal is a run of text matched exactly, escapes already decoded.
	Literal Kind = iota

	// One is '?': exactly one character.
	One

	// ZeroOrMany is '*': any number of characters, including none.
	ZeroOrMany

	// OneOrMany is '**': at least one character.
	OneOrMany

	// ZeroOrOne is '?*': at most one character.
	ZeroOrOne
)

var kindNames = [...]string{
	Literal:    "Literal",
	One:        "One",
	ZeroOrMany: "ZeroOrMany",
	OneOrMany:  "OneOrMany",
	ZeroOrOne:  "ZeroOrOne",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// IsWildcard reports whether k is one of the wildcard kinds.
func (k Kind) IsWildcard() bool {
	return k != Literal
}

// Special characters of the pattern language.
const (
	charOne    = "?"
	charMany   = "*"
	charEscape = `\`
)

// Token is one lexical element of a pattern.
type Token struct {
	Kind Kind

	// Text is the decoded literal for Literal tokens and the source text
	// ("?", "*", "**", "?*") for wildcards.
	Text string

	// Pos is the character offset of the token's first character.
	Pos int
}

// Tokenize splits pattern into tokens, combining "**" and "?*" and decoding
// escapes. Adjacent literal characters, escaped or not, form one Literal
// token. Adjacency rules between wildcards are not checked here; see Compile.
func Tokenize(pattern string, ops strops.Ops) ([]Token, error) {
	var (
		tokens []Token
		lit    strings.Builder
		litPos = -1
	)

	flush := func() {
		if litPos >= 0 {
			tokens = append(tokens, Token{Kind: Literal, Text: lit.String(), Pos: litPos})
			lit.Reset()
			litPos = -1
		}
	}

	rest := pattern
	for pos := 0; rest != ""; {
		ch := ops.Slice(rest, 0, 1)
		next := ops.Slice(rest, 1, 1)
		width := 1

		switch ch {
		case charEscape:
			if next != charOne && next != charMany && next != charEscape {
				return nil, &Error{
					Code:    ErrInvalidEscapeSequence,
					Pattern: pattern,
					Pos:     pos,
					Near:    ch + next,
				}
			}
			if litPos < 0 {
				litPos = pos
			}
			lit.WriteString(next)
			width = 2

		case charOne:
			flush()
			if next == charMany {
				tokens = append(tokens, Token{Kind: ZeroOrOne, Text: ch + next, Pos: pos})
				width = 2
			} else {
				tokens = append(tokens, Token{Kind: One, Text: ch, Pos: pos})
			}

		case charMany:
			flush()
			if next == charMany {
				tokens = append(tokens, Token{Kind: OneOrMany, Text: ch + next, Pos: pos})
				width = 2
			} else {
				tokens = append(tokens, Token{Kind: ZeroOrMany, Text: ch, Pos: pos})
			}

		default:
			if litPos < 0 {
				litPos = pos
			}
			lit.WriteString(ch)
		}

		rest = ops.Slice(rest, width, -1)
		pos += width
	}
	flush()

	return tokens, nil
}
