package strops

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// DefaultEncoding is the encoding assumed by MultiByte matching when no name
// is given.
const DefaultEncoding = "UTF-8"

// ErrUnknownEncoding is returned by Lookup for names that do not resolve to a
// supported character encoding.
var ErrUnknownEncoding = errors.New("strops: unknown encoding")

// Codec converts text from a named character encoding to UTF-8 so the Runes
// strategy can count its codepoints.
//
// A Codec is immutable and safe for concurrent use.
type Codec struct {
	name string
	enc  encoding.Encoding // nil for UTF-8
}

// Lookup resolves an IANA encoding name such as "UTF-8", "ISO-8859-1" or
// "Shift_JIS". The empty name resolves to DefaultEncoding.
func Lookup(name string) (*Codec, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultEncoding
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnknownEncoding, name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("%w: %q is not supported", ErrUnknownEncoding, name)
	}

	canonical, err := ianaindex.IANA.Name(enc)
	if err != nil {
		canonical = name
	}
	if strings.EqualFold(canonical, DefaultEncoding) {
		return &Codec{name: DefaultEncoding}, nil
	}

	return &Codec{name: canonical, enc: enc}, nil
}

// Name returns the canonical IANA name of the encoding.
func (c *Codec) Name() string {
	return c.name
}

// IsUTF8 reports whether the codec passes text through unchanged.
func (c *Codec) IsUTF8() bool {
	return c.enc == nil
}

// Decode converts s to UTF-8. Bytes that cannot be decoded become U+FFFD;
// if the decoder fails outright, s is returned unchanged.
func (c *Codec) Decode(s string) string {
	if c.enc == nil {
		return s
	}

	out, err := c.enc.NewDecoder().String(s)
	if err != nil {
		return s
	}
	return out
}
