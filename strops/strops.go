// Package strops defines the string primitives the wildcard compiler and
// engine are built on, with one implementation that counts bytes and one that
// counts Unicode codepoints.
//
// Every offset and length crossing the Ops interface is measured in
// characters of the implementation: bytes for Bytes, codepoints for Runes.
// Strings themselves are always plain Go strings; Runes expects UTF-8 and
// treats each invalid byte as one character, the way utf8.DecodeRuneInString
// does.
package strops

// NoChar is returned by At when the index is out of range.
const NoChar rune = -1

// Ops is the set of string operations the wildcard core consumes.
type Ops interface {
	// Name identifies the implementation ("bytes" or "runes").
	Name() string

	// Len returns the number of characters in s.
	Len(s string) int

	// Index returns the character offset of the first occurrence of sub in s
	// at or after character offset from, or -1 if there is none.
	Index(s, sub string, from int) int

	// Slice returns n characters of s starting at character offset from.
	// A negative n, or one that runs past the end, returns the rest of s.
	// An offset past the end returns "".
	Slice(s string, from, n int) string

	// At returns the character at offset i, or NoChar when i is out of range.
	At(s string, i int) rune
}

// For returns the byte implementation when multiByte is false and the
// codepoint implementation otherwise.
func For(multiByte bool) Ops {
	if multiByte {
		return Runes{}
	}
	return Bytes{}
}
