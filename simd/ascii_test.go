package simd

import (
	"strings"
	"testing"
)

func TestIsASCII(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
		first int
	}{
		{"empty", "", true, -1},
		{"short_ascii", "abc", true, -1},
		{"short_non_ascii", "aé", false, 1},
		{"chunk_ascii", "abcdefgh", true, -1},
		{"chunk_high_last", "abcdefg\x80", false, 7},
		{"tail_high", "abcdefghij\xff", false, 10},
		{"del_is_ascii", "\x7f\x7f\x7f", true, -1},
		{"long_ascii", strings.Repeat("x", 1000), true, -1},
		{"long_mixed", strings.Repeat("x", 999) + "ü", false, 999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsASCII(tt.input); got != tt.want {
				t.Errorf("IsASCII(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got := FirstNonASCII(tt.input); got != tt.first {
				t.Errorf("FirstNonASCII(%q) = %d, want %d", tt.input, got, tt.first)
			}
		})
	}
}
