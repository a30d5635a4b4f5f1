package wildcard

import (
	"errors"
	"fmt"

	"github.com/coregx/wildcard/cache"
	"github.com/coregx/wildcard/engine"
	"github.com/coregx/wildcard/strops"
	"github.com/coregx/wildcard/syntax"
)

// Error is a pattern compile error. It carries the error code, the pattern
// and the character position of the offending token.
type Error = syntax.Error

// Compile error codes, usable with errors.Is.
const (
	ErrInvalidPatternSyntax  = syntax.ErrInvalidPatternSyntax
	ErrInvalidEscapeSequence = syntax.ErrInvalidEscapeSequence
)

// Encoding selects how characters are counted. The zero value is
// SingleByte.
type Encoding struct {
	multiByte bool
	name      string
}

// SingleByte counts one byte as one character.
func SingleByte() Encoding {
	return Encoding{}
}

// MultiByte counts one codepoint of the named encoding as one character.
// An empty name means UTF-8. Patterns and subjects in other encodings are
// decoded to UTF-8 before matching.
func MultiByte(name string) Encoding {
	if name == "" {
		name = strops.DefaultEncoding
	}
	return Encoding{multiByte: true, name: name}
}

// IsMultiByte reports whether characters are codepoints.
func (e Encoding) IsMultiByte() bool {
	return e.multiByte
}

// Name returns the encoding name, or "" for SingleByte.
func (e Encoding) Name() string {
	return e.name
}

func (e Encoding) String() string {
	if !e.multiByte {
		return "single-byte"
	}
	return "multi-byte(" + e.name + ")"
}

// resolve returns the string strategy for e and, when the encoding is not
// UTF-8, the codec that converts input to UTF-8.
func (e Encoding) resolve() (strops.Ops, *strops.Codec, error) {
	if !e.multiByte {
		return strops.Bytes{}, nil, nil
	}

	codec, err := strops.Lookup(e.name)
	if err != nil {
		return nil, nil, err
	}
	if codec.IsUTF8() {
		return strops.Runes{}, nil, nil
	}
	return strops.Runes{}, codec, nil
}

// ResultKey identifies a cached match result.
type ResultKey struct {
	Pattern string
	Subject string
}

// Config configures a Matcher.
//
// Example:
//
//	patterns, _ := cache.NewLRU[string, *wildcard.Wildcard](1024)
//	config := wildcard.DefaultConfig()
//	config.Encoding = wildcard.MultiByte("UTF-8")
//	config.PatternCache = patterns
//	m, err := wildcard.NewMatcher(config)
type Config struct {
	// Encoding selects byte or codepoint matching.
	// Default: SingleByte()
	Encoding Encoding

	// PatternCache holds compiled patterns keyed by pattern text.
	// Default: an unbounded cache.NewMap
	PatternCache cache.Cache[string, *Wildcard]

	// ResultCache holds match results keyed by (pattern, subject).
	// Default: an unbounded cache.NewMap
	ResultCache cache.Cache[ResultKey, bool]

	// DisableResultCache skips the result cache entirely. Useful when
	// subjects rarely repeat.
	DisableResultCache bool

	// MaxMemoBits caps the engine's failure memo, in bits.
	// Default: 256 * 1024 * 8
	MaxMemoBits int

	// EnablePrefilter rejects subjects missing a pattern's longest literal
	// before backtracking.
	// Default: true
	EnablePrefilter bool
}

// DefaultConfig returns the default configuration: byte matching,
// unbounded caches and the default engine limits.
func DefaultConfig() Config {
	ec := engine.DefaultConfig()
	return Config{
		Encoding:        SingleByte(),
		MaxMemoBits:     ec.MaxMemoBits,
		EnablePrefilter: ec.EnablePrefilter,
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Encoding.multiByte {
		if _, err := strops.Lookup(c.Encoding.name); err != nil {
			return &ConfigError{
				Field:   "Encoding",
				Message: fmt.Sprintf("unknown encoding %q", c.Encoding.name),
				Err:     err,
			}
		}
	}
	if err := c.engineConfig().Validate(); err != nil {
		var cerr *engine.ConfigError
		if errors.As(err, &cerr) {
			return &ConfigError{Field: cerr.Field, Message: cerr.Message, Err: err}
		}
		return err
	}
	return nil
}

func (c Config) engineConfig() engine.Config {
	return engine.Config{
		MaxMemoBits:     c.MaxMemoBits,
		EnablePrefilter: c.EnablePrefilter,
	}
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "wildcard: invalid config: " + e.Field + ": " + e.Message
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}
