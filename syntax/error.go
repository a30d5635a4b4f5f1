package syntax

import "fmt"

// ErrorCode describes a failure to compile a wildcard pattern.
//
// An ErrorCode is also an error, so callers can test a compile error with
// errors.Is(err, syntax.ErrInvalidPatternSyntax).
type ErrorCode string

const (
	// ErrInvalidPatternSyntax reports an illegal token adjacency such as
	// "***", "?**", "?*?" or "*?".
	ErrInvalidPatternSyntax ErrorCode = "invalid pattern syntax"

	// ErrInvalidEscapeSequence reports a backslash that is not followed by
	// '?', '*' or '\'.
	ErrInvalidEscapeSequence ErrorCode = "invalid escape sequence"
)

func (e ErrorCode) String() string {
	return string(e)
}

func (e ErrorCode) Error() string {
	return string(e)
}

// Error describes a compile failure and where in the pattern it happened.
type Error struct {
	Code    ErrorCode
	Pattern string // the whole pattern
	Pos     int    // character offset of the offending token
	Near    string // the offending text
}

func (e *Error) Error() string {
	return fmt.Sprintf("wildcard: %s at position %d in %q: %q", e.Code, e.Pos, e.Pattern, e.Near)
}

// Is reports whether target is the ErrorCode of e.
func (e *Error) Is(target error) bool {
	code, ok := target.(ErrorCode)
	return ok && code == e.Code
}
