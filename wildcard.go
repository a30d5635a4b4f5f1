// Package wildcard provides compile-once glob matching for Go.
//
// A pattern is plain text with four wildcard forms:
//
//	?    exactly one character
//	*    zero or more characters
//	**   one or more characters
//	?*   zero or one character
//
// The backslash escapes the three special characters: \?, \* and \\.
// Any other escape is a syntax error, and so are ambiguous wildcard runs
// such as "***", "?**", "*?" or "?*?".
//
// A pattern always matches the whole subject. Characters are bytes by
// default; a Matcher configured with MultiByte counts Unicode codepoints
// instead.
//
// Basic usage:
//
//	w, err := wildcard.Compile("search*phrase")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w.Match("search a phrase") // true
//
// Matching many subjects against many patterns:
//
//	m, _ := wildcard.NewMatcher(wildcard.DefaultConfig())
//	ok, err := m.Match("search phrase", "s*s*e") // compiled once, then cached
//
// Compiled patterns are turned into a table of (literal, gap) phrases and
// matched by a memoized backtracking engine, so matching is polynomial in
// the subject length for every pattern.
package wildcard

import (
	"strings"

	"github.com/coregx/wildcard/engine"
	"github.com/coregx/wildcard/strops"
	"github.com/coregx/wildcard/syntax"
)

// Wildcard is a compiled wildcard pattern.
//
// A Wildcard is safe to use concurrently from multiple goroutines.
//
// Example:
//
//	w := wildcard.MustCompile("*.go")
//	if w.Match("main.go") {
//	    println("matched!")
//	}
type Wildcard struct {
	pattern string
	engine  *engine.Engine
	codec   *strops.Codec // nil unless subjects need decoding
}

// Compile compiles a pattern for byte-wise matching.
//
// Example:
//
//	w, err := wildcard.Compile("report-????.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Wildcard, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics if the pattern is invalid.
//
// Example:
//
//	var logFiles = wildcard.MustCompile("*.log")
func MustCompile(pattern string) *Wildcard {
	w, err := Compile(pattern)
	if err != nil {
		panic("wildcard: Compile(`" + pattern + "`): " + err.Error())
	}
	return w
}

// CompileWithConfig compiles a pattern with the encoding and engine
// settings of config. The caches in config are not used.
//
// Example:
//
//	config := wildcard.DefaultConfig()
//	config.Encoding = wildcard.MultiByte("UTF-8")
//	w, err := wildcard.CompileWithConfig("Stra?e", config)
func CompileWithConfig(pattern string, config Config) (*Wildcard, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	ops, codec, err := config.Encoding.resolve()
	if err != nil {
		return nil, err
	}
	return compile(pattern, ops, codec, config.engineConfig())
}

// compile builds a Wildcard. codec is nil unless the pattern and subjects
// must be decoded to UTF-8 first; syntax errors then refer to the decoded
// pattern.
func compile(pattern string, ops strops.Ops, codec *strops.Codec, config engine.Config) (*Wildcard, error) {
	source := pattern
	if codec != nil {
		source = codec.Decode(pattern)
	}

	prog, err := syntax.Compile(source, ops)
	if err != nil {
		return nil, err
	}

	eng, err := engine.NewWithConfig(prog, config)
	if err != nil {
		return nil, err
	}

	return &Wildcard{pattern: pattern, engine: eng, codec: codec}, nil
}

// Match compiles pattern for byte-wise matching and reports whether it
// matches subject. Nothing is cached between calls; use a Matcher or a
// compiled Wildcard to match repeatedly.
//
// Example:
//
//	ok, err := wildcard.Match("search phrase", "search?phrase") // true, nil
func Match(subject, pattern string) (bool, error) {
	w, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return w.Match(subject), nil
}

// Match reports whether the whole subject matches the pattern.
//
// Example:
//
//	w := wildcard.MustCompile("s*s*s")
//	w.Match("search phrase results") // true
func (w *Wildcard) Match(subject string) bool {
	if w.codec != nil {
		subject = w.codec.Decode(subject)
	}
	return w.engine.Match(subject)
}

// matchDecoded matches a subject that is already UTF-8.
func (w *Wildcard) matchDecoded(subject string) bool {
	return w.engine.Match(subject)
}

// String returns the source text used to compile the pattern.
func (w *Wildcard) String() string {
	return w.pattern
}

// Program returns the compiled phrase table.
func (w *Wildcard) Program() *syntax.Program {
	return w.engine.Program()
}

// Stats returns the engine's execution counters.
func (w *Wildcard) Stats() engine.Stats {
	return w.engine.Stats()
}

// ResetStats resets the engine's execution counters.
func (w *Wildcard) ResetStats() {
	w.engine.ResetStats()
}

// MinLen returns the length of the shortest subject the pattern matches.
func (w *Wildcard) MinLen() int {
	return w.engine.Program().MinLen()
}

// QuoteMeta returns a pattern that matches the literal text s by escaping
// '?', '*' and '\'.
//
// Example:
//
//	wildcard.QuoteMeta("what?*") // `what\?\*`
func QuoteMeta(s string) string {
	const special = `\?*`

	n := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(special, s[i]) >= 0 {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+n)
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(special, s[i]) >= 0 {
			buf = append(buf, '\\')
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}
