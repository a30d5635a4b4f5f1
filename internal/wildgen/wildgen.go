// Package wildgen generates random subjects together with wildcard
// patterns that are guaranteed to match them. It drives the property tests
// of the wildcard packages.
//
// A pattern is built by walking the subject from left to right and
// replacing runs of characters either with the literal text (escaped) or
// with a wildcard that can consume the run. A literal always follows a
// wildcard, so generated patterns never contain illegal wildcard runs.
package wildgen

import (
	"math/rand/v2"
	"strings"
)

// Alphanumeric is the default alphabet.
const Alphanumeric = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Pair is a subject and a pattern that matches it.
type Pair struct {
	Subject string
	Pattern string
}

// New returns a deterministic source for seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomString returns n characters drawn uniformly from alphabet.
func RandomString(r *rand.Rand, n int, alphabet string) string {
	chars := []rune(alphabet)
	if len(chars) == 0 || n <= 0 {
		return ""
	}

	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteRune(chars[r.IntN(len(chars))])
	}
	return b.String()
}

// RandomPattern returns a pattern matching subject, counting characters as
// codepoints. For ASCII subjects it matches byte-wise as well.
func RandomPattern(r *rand.Rand, subject string) string {
	rest := []rune(subject)

	var (
		b          strings.Builder
		needPhrase bool
		start      = true
	)
	for len(rest) > 0 {
		lo := 1
		if start {
			lo = 0
		}
		token := lo + r.IntN(33-lo)

		var cut int
		if token == 0 || needPhrase {
			needPhrase = false
			cut = 1 + r.IntN(max(1, len(rest)/2))
			b.WriteString(escape(string(rest[:cut])))
		} else {
			needPhrase = true
			switch token % 4 {
			case 1:
				cut = appendQueriesAsterisk(r, &b, len(rest))
			case 2:
				cut = 1 + r.IntN(len(rest))
				b.WriteString("**")
			case 3:
				cut = 1 + r.IntN(min(len(rest), 5))
				b.WriteString(strings.Repeat("?", cut))
			default:
				cut = appendAsterisk(r, &b, len(rest))
			}
		}

		rest = rest[cut:]
		start = false
	}

	return b.String()
}

func appendAsterisk(r *rand.Rand, b *strings.Builder, n int) int {
	b.WriteString("*")
	if r.IntN(2) == r.IntN(2) {
		return 0
	}
	return 1 + r.IntN(n)
}

func appendQueriesAsterisk(r *rand.Rand, b *strings.Builder, n int) int {
	if r.IntN(2) == r.IntN(2) {
		b.WriteString("?*")
		return 0
	}
	cut := 1 + r.IntN(min(n, 5))
	b.WriteString(strings.Repeat("?", cut))
	b.WriteString("*")
	return cut
}

// Pairs returns count subject/pattern pairs with subjects of 1 to maxLen
// characters from alphabet.
func Pairs(r *rand.Rand, count, maxLen int, alphabet string) []Pair {
	out := make([]Pair, count)
	for i := range out {
		subject := RandomString(r, 1+r.IntN(maxLen), alphabet)
		out[i] = Pair{Subject: subject, Pattern: RandomPattern(r, subject)}
	}
	return out
}

func escape(s string) string {
	if !strings.ContainsAny(s, `\?*`) {
		return s
	}

	var b strings.Builder
	for _, c := range s {
		if c == '\\' || c == '?' || c == '*' {
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}
