package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/samber/lo"
	"go.yaml.in/yaml/v3"

	"github.com/coregx/wildcard"
)

const (
	PatternFileVersion = 1
)

var (
	ErrInvalidPatternFile = errors.New("invalid pattern file")
)

type NamedPattern struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
}

type PatternFile struct {
	Version  int            `yaml:"version"`
	Encoding string         `yaml:"encoding,omitempty"`
	Patterns []NamedPattern `yaml:"patterns"`
}

func ParsePatternFile(data []byte) (*PatternFile, error) {
	var f PatternFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPatternFile, err)
	}

	if f.Version == 0 {
		f.Version = PatternFileVersion
	}
	if f.Version != PatternFileVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidPatternFile, f.Version)
	}

	for i := range f.Patterns {
		if f.Patterns[i].Name == "" {
			f.Patterns[i].Name = "pattern-" + strconv.Itoa(i+1)
		}
	}

	if dups := lo.FindDuplicatesBy(f.Patterns, func(p NamedPattern) string { return p.Name }); len(dups) > 0 {
		return nil, fmt.Errorf("%w: duplicate pattern name %q", ErrInvalidPatternFile, dups[0].Name)
	}

	return &f, nil
}

func LoadPatternFile(filename string) (*PatternFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	f, err := ParsePatternFile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return f, nil
}

func (f *PatternFile) Marshal() ([]byte, error) {
	return yaml.Marshal(f)
}

// Validate compiles every pattern with config and reports the first
// failure by name.
func (f *PatternFile) Validate(config wildcard.Config) error {
	for _, p := range f.Patterns {
		if _, err := wildcard.CompileWithConfig(p.Pattern, config); err != nil {
			return fmt.Errorf("%w: pattern %q: %w", ErrInvalidPatternFile, p.Name, err)
		}
	}
	return nil
}

// Merge combines ad-hoc patterns with the file's named ones. Ad-hoc
// patterns are named by their text and come first; repeated pattern texts
// are kept once.
func Merge(adHoc []string, file *PatternFile) []NamedPattern {
	all := lo.Map(adHoc, func(p string, _ int) NamedPattern {
		return NamedPattern{Name: p, Pattern: p}
	})
	if file != nil {
		all = append(all, file.Patterns...)
	}

	return lo.UniqBy(all, func(p NamedPattern) string { return p.Pattern })
}
