package strops

import "github.com/coregx/wildcard/simd"

// Bytes measures strings in bytes. It is the SingleByte strategy.
type Bytes struct{}

// Name implements Ops.
func (Bytes) Name() string { return "bytes" }

// Len implements Ops.
func (Bytes) Len(s string) int { return len(s) }

// Index implements Ops.
func (Bytes) Index(s, sub string, from int) int {
	return simd.MemmemFrom(s, sub, from)
}

// Slice implements Ops.
func (Bytes) Slice(s string, from, n int) string {
	if from < 0 {
		from = 0
	}
	if from >= len(s) {
		return ""
	}
	if n < 0 || from+n > len(s) {
		return s[from:]
	}
	return s[from : from+n]
}

// At implements Ops. The byte is returned as a rune without decoding.
func (Bytes) At(s string, i int) rune {
	if i < 0 || i >= len(s) {
		return NoChar
	}
	return rune(s[i])
}
