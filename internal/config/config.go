// Package config loads wildmatch settings from the environment and from
// YAML pattern files.
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/coregx/wildcard"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
)

type Config struct {
	LogLevel    string   `env:"WILDMATCH_LOG_LEVEL" envDefault:"error"`
	Encoding    string   `env:"WILDMATCH_ENCODING"`
	Patterns    []string `env:"WILDMATCH_PATTERNS" envSeparator:","`
	PatternFile string   `env:"WILDMATCH_PATTERN_FILE"`
	MaxMemoBits int      `env:"WILDMATCH_MAX_MEMO_BITS" envDefault:"2097152"`
}

func (c *Config) Init(_ context.Context) error {
	err := env.Parse(c)
	if err != nil {
		return fmt.Errorf("%w: failed to parse config: %w", ErrInvalidConfig, err)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("%w: log level %q: %w", ErrInvalidConfig, c.LogLevel, err)
	}
	return level, nil
}

// Wildcard returns the matcher configuration. An empty encoding selects
// byte matching; any other value names a multi-byte encoding.
func (c *Config) Wildcard() (wildcard.Config, error) {
	wc := wildcard.DefaultConfig()
	if c.Encoding != "" {
		wc.Encoding = wildcard.MultiByte(c.Encoding)
	}
	wc.MaxMemoBits = c.MaxMemoBits

	if err := wc.Validate(); err != nil {
		return wildcard.Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return wc, nil
}
