package simd

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// The search anchors on a single byte of the needle with Memchr and verifies
// each candidate in place. The anchor is the needle byte with the lowest
// ByteRank.
//
// Example:
//
//	pos := simd.Memmem("aaaaaabaaaa", "aab")
//	// pos == 4
func Memmem(haystack, needle string) int {
	needleLen := len(needle)
	haystackLen := len(haystack)

	// Empty needle matches at start, like strings.Index.
	if needleLen == 0 {
		return 0
	}

	if haystackLen == 0 || needleLen > haystackLen {
		return -1
	}

	if needleLen == 1 {
		return Memchr(haystack, needle[0])
	}

	rareIdx := rareIndex(needle)
	rareByte := needle[rareIdx]

	// The anchor byte can only appear in [rareIdx, searchEnd).
	searchStart := rareIdx
	searchEnd := haystackLen - needleLen + rareIdx + 1
	for searchStart < searchEnd {
		pos := Memchr(haystack[searchStart:searchEnd], rareByte)
		if pos == -1 {
			return -1
		}
		pos += searchStart

		start := pos - rareIdx
		if haystack[start:start+needleLen] == needle {
			return start
		}

		searchStart = pos + 1
	}

	return -1
}

// MemmemFrom is Memmem starting the search at byte offset from.
// The returned index is relative to the start of haystack.
func MemmemFrom(haystack, needle string, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(haystack) {
		return -1
	}

	pos := Memmem(haystack[from:], needle)
	if pos == -1 {
		return -1
	}
	return from + pos
}
