package prefilter

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		literals []string
		want     string // needle, "" for nil
	}{
		{"none", nil, ""},
		{"only empty", []string{"", ""}, ""},
		{"single byte", []string{"a"}, "a"},
		{"longest wins", []string{"ab", "search", "phr"}, "search"},
		{"first of equal length", []string{"abc", "xyz"}, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := New(tt.literals)
			if tt.want == "" {
				if pf != nil {
					t.Fatalf("New(%q) = %T, want nil", tt.literals, pf)
				}
				return
			}
			if pf == nil {
				t.Fatalf("New(%q) = nil", tt.literals)
			}
			if got := pf.Needle(); got != tt.want {
				t.Errorf("Needle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewSelectsStrategy(t *testing.T) {
	if _, ok := New([]string{"x"}).(*Byte); !ok {
		t.Error("single byte literal should use Byte")
	}
	if _, ok := New([]string{"xy"}).(*Literal); !ok {
		t.Error("multi byte literal should use Literal")
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		needle   string
		haystack string
		start    int
		want     int
	}{
		{"p", "search phrase", 0, 7},
		{"p", "search phrase", 8, -1},
		{"p", "search phrase", -3, 7},
		{"p", "search phrase", 100, -1},
		{"ph", "search phrase phrase", 0, 7},
		{"ph", "search phrase phrase", 8, 14},
		{"ph", "search", 0, -1},
		{"ase", "phrase", 0, 3},
	}

	for _, tt := range tests {
		pf := New([]string{tt.needle})
		if got := pf.Find(tt.haystack, tt.start); got != tt.want {
			t.Errorf("Find(%q in %q, %d) = %d, want %d", tt.needle, tt.haystack, tt.start, got, tt.want)
		}
	}
}

func TestIsMatch(t *testing.T) {
	tests := []struct {
		needle   string
		haystack string
		want     bool
	}{
		{"e", "phrase", true},
		{"q", "phrase", false},
		{"rase", "phrase", true},
		{"rasp", "phrase", false},
		{"phrase", "phr", false},
		{"Ärger", "großer Ärger", true},
	}

	for _, tt := range tests {
		pf := New([]string{tt.needle})
		if got := pf.IsMatch(tt.haystack); got != tt.want {
			t.Errorf("IsMatch(%q in %q) = %v, want %v", tt.needle, tt.haystack, got, tt.want)
		}
	}
}
