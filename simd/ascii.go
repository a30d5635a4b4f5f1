package simd

// IsASCII reports whether every byte of s is below 0x80.
//
// The check reads 8 bytes per iteration and tests all high bits at once.
// A string that passes can be indexed by byte and by codepoint alike, which
// lets codepoint-aware callers skip UTF-8 decoding.
func IsASCII(s string) bool {
	n := len(s)

	i := 0
	for ; i+8 <= n; i += 8 {
		if load64(s, i)&hi8 != 0 {
			return false
		}
	}

	for ; i < n; i++ {
		if s[i] >= 0x80 {
			return false
		}
	}

	return true
}

// FirstNonASCII returns the index of the first byte >= 0x80, or -1 if s is
// entirely ASCII.
func FirstNonASCII(s string) int {
	n := len(s)

	i := 0
	for ; i+8 <= n; i += 8 {
		if load64(s, i)&hi8 != 0 {
			break
		}
	}

	for ; i < n; i++ {
		if s[i] >= 0x80 {
			return i
		}
	}

	return -1
}
