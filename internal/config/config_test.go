package config_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"

	"github.com/coregx/wildcard"
	"github.com/coregx/wildcard/internal/config"
)

var _ = Describe("Config", func() {
	Describe("Init", func() {
		It("applies defaults", func(ctx context.Context) {
			cfg := &config.Config{}
			Expect(cfg.Init(ctx)).To(Succeed())

			Expect(cfg.LogLevel).To(Equal("error"))
			Expect(cfg.Encoding).To(BeEmpty())
			Expect(cfg.MaxMemoBits).To(Equal(256 * 1024 * 8))
			Expect(lo.Must(cfg.Level())).To(Equal(slog.LevelError))
		})

		It("reads the environment", func(ctx context.Context) {
			GinkgoT().Setenv("WILDMATCH_LOG_LEVEL", "debug")
			GinkgoT().Setenv("WILDMATCH_ENCODING", "UTF-8")
			GinkgoT().Setenv("WILDMATCH_PATTERNS", "*.go,*_test.go")

			cfg := &config.Config{}
			Expect(cfg.Init(ctx)).To(Succeed())

			Expect(cfg.Patterns).To(Equal([]string{"*.go", "*_test.go"}))
			Expect(lo.Must(cfg.Level())).To(Equal(slog.LevelDebug))
		})

		It("rejects an unknown log level", func(ctx context.Context) {
			GinkgoT().Setenv("WILDMATCH_LOG_LEVEL", "chatty")

			cfg := &config.Config{}
			Expect(cfg.Init(ctx)).To(MatchError(config.ErrInvalidConfig))
		})

		It("rejects a malformed number", func(ctx context.Context) {
			GinkgoT().Setenv("WILDMATCH_MAX_MEMO_BITS", "lots")

			cfg := &config.Config{}
			Expect(cfg.Init(ctx)).To(MatchError(config.ErrInvalidConfig))
		})
	})

	Describe("Wildcard", func() {
		It("selects byte matching by default", func() {
			cfg := &config.Config{MaxMemoBits: 1024}
			wc := lo.Must(cfg.Wildcard())

			Expect(wc.Encoding.IsMultiByte()).To(BeFalse())
			Expect(wc.MaxMemoBits).To(Equal(1024))
		})

		It("selects multi-byte matching for a named encoding", func() {
			cfg := &config.Config{Encoding: "ISO-8859-1"}
			wc := lo.Must(cfg.Wildcard())

			Expect(wc.Encoding).To(Equal(wildcard.MultiByte("ISO-8859-1")))
		})

		It("rejects unknown encodings", func() {
			cfg := &config.Config{Encoding: "klingon"}
			_, err := cfg.Wildcard()

			Expect(err).To(MatchError(config.ErrInvalidConfig))
			Expect(err).To(MatchError(ContainSubstring("Encoding")))
		})
	})
})

var _ = Describe("PatternFile", func() {
	const source = `
version: 1
patterns:
  - name: go
    pattern: "*.go"
  - name: tests
    pattern: "*_test.go"
  - pattern: "Makefile"
`

	It("parses named patterns", func() {
		f := lo.Must(config.ParsePatternFile([]byte(source)))

		Expect(f.Version).To(Equal(config.PatternFileVersion))
		Expect(f.Patterns).To(Equal([]config.NamedPattern{
			{Name: "go", Pattern: "*.go"},
			{Name: "tests", Pattern: "*_test.go"},
			{Name: "pattern-3", Pattern: "Makefile"},
		}))
	})

	It("round trips through Marshal", func() {
		f := lo.Must(config.ParsePatternFile([]byte(source)))
		again := lo.Must(config.ParsePatternFile(lo.Must(f.Marshal())))

		Expect(again).To(Equal(f))
	})

	It("loads from disk", func() {
		filename := filepath.Join(GinkgoT().TempDir(), "patterns.yaml")
		lo.Must0(os.WriteFile(filename, []byte(source), 0600))

		f := lo.Must(config.LoadPatternFile(filename))
		Expect(f.Patterns).To(HaveLen(3))
	})

	It("fails on a missing file", func() {
		_, err := config.LoadPatternFile(filepath.Join(GinkgoT().TempDir(), "missing.yaml"))
		Expect(err).To(MatchError(os.ErrNotExist))
	})

	DescribeTable("rejects invalid files",
		func(data string) {
			_, err := config.ParsePatternFile([]byte(data))
			Expect(err).To(MatchError(config.ErrInvalidPatternFile))
		},
		Entry("malformed yaml", "patterns: [name: go"),
		Entry("unknown version", "version: 7\npatterns: []"),
		Entry("duplicate names", "patterns:\n  - {name: a, pattern: x}\n  - {name: a, pattern: y}"),
	)

	DescribeTable("Validate",
		func(pattern string, code error) {
			f := &config.PatternFile{Patterns: []config.NamedPattern{{Name: "p", Pattern: pattern}}}
			err := f.Validate(wildcard.DefaultConfig())

			if code == nil {
				Expect(err).NotTo(HaveOccurred())
				return
			}
			Expect(err).To(MatchError(config.ErrInvalidPatternFile))
			Expect(err).To(MatchError(code))
		},
		Entry("valid", "search*phrase", nil),
		Entry("bad adjacency", "*?", wildcard.ErrInvalidPatternSyntax),
		Entry("bad escape", `\a`, wildcard.ErrInvalidEscapeSequence),
	)

	It("merges ad-hoc patterns first and drops repeats", func() {
		f := lo.Must(config.ParsePatternFile([]byte(source)))
		merged := config.Merge([]string{"*.md", "*.go"}, f)

		Expect(merged).To(Equal([]config.NamedPattern{
			{Name: "*.md", Pattern: "*.md"},
			{Name: "*.go", Pattern: "*.go"},
			{Name: "tests", Pattern: "*_test.go"},
			{Name: "pattern-3", Pattern: "Makefile"},
		}))
	})

	It("merges without a file", func() {
		Expect(config.Merge(nil, nil)).To(BeEmpty())
		Expect(config.Merge([]string{"a"}, nil)).To(HaveLen(1))
	})
})
