// Package simd provides accelerated byte search primitives over strings.
//
// The wildcard engine spends most of its time locating literal phrases inside
// the subject. On CPUs with wide vector units (AVX2 on x86-64, ASIMD on arm64)
// the runtime's assembly kernels behind strings.IndexByte are the fastest way
// to scan, so the package dispatches to them. Everywhere else a SWAR (SIMD
// Within A Register) implementation processes 8 bytes per iteration.
package simd

import "golang.org/x/sys/cpu"

// CPU feature detection flags set at package initialization.
var (
	// hasAVX2 reports 256-bit vector support on x86-64.
	hasAVX2 = cpu.X86.HasAVX2

	// hasASIMD reports Advanced SIMD support on arm64.
	hasASIMD = cpu.ARM64.HasASIMD
)

// vectorThreshold is the minimum haystack length for which the vector kernel
// is used. Below it the setup cost outweighs the gain.
const vectorThreshold = 32

// HasVector reports whether a hardware vector kernel is available.
func HasVector() bool {
	return hasAVX2 || hasASIMD
}
