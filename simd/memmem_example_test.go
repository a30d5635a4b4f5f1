package simd_test

import (
	"fmt"

	"github.com/coregx/wildcard/simd"
)

func ExampleMemmem() {
	pos := simd.Memmem("hello world", "world")
	fmt.Println(pos)
	// Output: 6
}

func ExampleMemmem_notFound() {
	fmt.Println(simd.Memmem("hello world", "xyz"))
	// Output: -1
}

func ExampleMemchr() {
	fmt.Println(simd.Memchr("search phrase", ' '))
	// Output: 6
}
