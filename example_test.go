package wildcard_test

import (
	"errors"
	"fmt"

	"github.com/coregx/wildcard"
	"github.com/coregx/wildcard/cache"
)

func ExampleCompile() {
	w, err := wildcard.Compile("search*phrase")
	if err != nil {
		panic(err)
	}

	fmt.Println(w.Match("search phrase"))
	fmt.Println(w.Match("searchphrase"))
	fmt.Println(w.Match("search phrases"))
	// Output:
	// true
	// true
	// false
}

func ExampleMatch() {
	ok, err := wildcard.Match("search phrase results", "s*s*s")
	fmt.Println(ok, err)

	_, err = wildcard.Match("a", `\a`)
	fmt.Println(errors.Is(err, wildcard.ErrInvalidEscapeSequence))
	// Output:
	// true <nil>
	// true
}

func ExampleWildcard_Program() {
	w := wildcard.MustCompile("search??phrase?*")
	fmt.Println(w.Program())
	fmt.Println(w.MinLen())
	// Output:
	// [("search",0,0) ("phrase",2,2) ("",0,1)]
	// 14
}

func ExampleNewMatcher() {
	patterns, _ := cache.NewLRU[string, *wildcard.Wildcard](128)

	config := wildcard.DefaultConfig()
	config.Encoding = wildcard.MultiByte("UTF-8")
	config.PatternCache = patterns

	m, err := wildcard.NewMatcher(config)
	if err != nil {
		panic(err)
	}

	ok, _ := m.Match("Straße", "Stra?e")
	fmt.Println(ok)
	fmt.Println(m.CachedPatterns(), m.CachedResults())
	// Output:
	// true
	// 1 1
}

func ExampleNewSet() {
	s := must(wildcard.NewSet("*.go", "*_test.go", "Makefile"))

	fmt.Println(s.Matches("matcher_test.go"))
	fmt.Println(s.Match("README.md"))
	// Output:
	// [0 1]
	// false
}

func ExampleQuoteMeta() {
	fmt.Println(wildcard.QuoteMeta("why?*"))
	// Output: why\?\*
}

func ExampleToRegexp() {
	expr, _ := wildcard.ToRegexp("img-??.*")
	fmt.Println(expr)
	// Output: (?s)^img-..\..*$
}

func ExampleError() {
	_, err := wildcard.Compile("search phrase?*?")

	var werr *wildcard.Error
	if errors.As(err, &werr) {
		fmt.Println(werr.Code, werr.Pos)
	}
	fmt.Println(err)
	// Output:
	// invalid pattern syntax 15
	// wildcard: invalid pattern syntax at position 15 in "search phrase?*?": "?"
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
