package wildcard

import (
	"regexp"
	"strings"

	"github.com/coregx/wildcard/strops"
	"github.com/coregx/wildcard/syntax"
)

// ToRegexp converts a pattern into an equivalent anchored regular
// expression in Go syntax. The result matches the same UTF-8 subjects as
// the pattern compiled with MultiByte("UTF-8"), since '.' matches one
// codepoint.
//
// Example:
//
//	wildcard.ToRegexp(`report-??.*`) // `(?s)^report-..\..*$`
func ToRegexp(pattern string) (string, error) {
	ops := strops.Runes{}

	// Compile first so adjacency errors are reported.
	if _, err := syntax.Compile(pattern, ops); err != nil {
		return "", err
	}
	tokens, err := syntax.Tokenize(pattern, ops)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("(?s)^")
	for _, tok := range tokens {
		switch tok.Kind {
		case syntax.Literal:
			b.WriteString(regexp.QuoteMeta(tok.Text))
		case syntax.One:
			b.WriteString(".")
		case syntax.ZeroOrMany:
			b.WriteString(".*")
		case syntax.OneOrMany:
			b.WriteString(".+")
		case syntax.ZeroOrOne:
			b.WriteString(".?")
		}
	}
	b.WriteString("$")

	return b.String(), nil
}

// MustToRegexp is like ToRegexp but compiles the result and panics on an
// invalid pattern.
func MustToRegexp(pattern string) *regexp.Regexp {
	expr, err := ToRegexp(pattern)
	if err != nil {
		panic("wildcard: ToRegexp(`" + pattern + "`): " + err.Error())
	}
	return regexp.MustCompile(expr)
}
