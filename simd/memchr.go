package simd

import (
	"math/bits"
	"strings"
)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Large haystacks on CPUs with vector units go through the runtime's
// vectorized IndexByte. Small haystacks and other CPUs use memchrSWAR.
//
// Example:
//
//	pos := simd.Memchr("hello world", 'o')
//	// pos == 4
func Memchr(haystack string, needle byte) int {
	if len(haystack) == 0 {
		return -1
	}

	if HasVector() && len(haystack) >= vectorThreshold {
		return strings.IndexByte(haystack, needle)
	}

	return memchrSWAR(haystack, needle)
}

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// load64 reads 8 bytes of s starting at i as a little-endian word.
func load64(s string, i int) uint64 {
	_ = s[i+7]
	return uint64(s[i]) | uint64(s[i+1])<<8 | uint64(s[i+2])<<16 | uint64(s[i+3])<<24 |
		uint64(s[i+4])<<32 | uint64(s[i+5])<<40 | uint64(s[i+6])<<48 | uint64(s[i+7])<<56
}

// memchrSWAR searches 8 bytes at a time using uint64 arithmetic.
//
// Algorithm:
//  1. Broadcast needle into every byte of a uint64 mask
//  2. XOR each 8-byte chunk with the mask (matching bytes become 0x00)
//  3. Detect a zero byte with (v - lo8) & ^v & hi8
//  4. The trailing zero count locates the first match
func memchrSWAR(haystack string, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := uint64(needle) * lo8

	i := 0
	for ; i+8 <= n; i += 8 {
		xor := load64(haystack, i) ^ mask
		if found := (xor - lo8) & ^xor & hi8; found != 0 {
			return i + bits.TrailingZeros64(found)/8
		}
	}

	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}

	return -1
}
