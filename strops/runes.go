package strops

import (
	"unicode/utf8"

	"github.com/coregx/wildcard/simd"
)

// Runes measures UTF-8 strings in codepoints. It is the MultiByte strategy.
//
// Converting a codepoint offset to a byte offset is linear in the offset, so
// the ASCII prefix of a string is skipped with a single SWAR scan before any
// decoding starts.
type Runes struct{}

// Name implements Ops.
func (Runes) Name() string { return "runes" }

// Len implements Ops.
func (Runes) Len(s string) int { return utf8.RuneCountInString(s) }

// Index implements Ops.
func (Runes) Index(s, sub string, from int) int {
	if from < 0 {
		from = 0
	}
	start := byteOffset(s, from)
	if start < 0 {
		return -1
	}

	pos := simd.MemmemFrom(s, sub, start)
	if pos < 0 {
		return -1
	}
	return from + utf8.RuneCountInString(s[start:pos])
}

// Slice implements Ops.
func (Runes) Slice(s string, from, n int) string {
	if from < 0 {
		from = 0
	}
	start := byteOffset(s, from)
	if start < 0 {
		return ""
	}

	rest := s[start:]
	if n < 0 {
		return rest
	}

	end := byteOffset(rest, n)
	if end < 0 {
		return rest
	}
	return rest[:end]
}

// At implements Ops.
func (Runes) At(s string, i int) rune {
	if i < 0 {
		return NoChar
	}
	start := byteOffset(s, i)
	if start < 0 || start >= len(s) {
		return NoChar
	}
	r, _ := utf8.DecodeRuneInString(s[start:])
	return r
}

// byteOffset returns the byte offset of the n-th codepoint of s, len(s) when
// n equals the codepoint count, and -1 when n is larger.
func byteOffset(s string, n int) int {
	ascii := simd.FirstNonASCII(s)
	if ascii < 0 {
		if n > len(s) {
			return -1
		}
		return n
	}
	if n <= ascii {
		return n
	}

	i := ascii
	n -= ascii
	for n > 0 {
		if i >= len(s) {
			return -1
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		n--
	}
	return i
}
