package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"

	"github.com/coregx/wildcard"
	"github.com/coregx/wildcard/internal/config"
)

const input = `main.go
run.go
run_test.go
Makefile
README.md
Ärger.txt
`

var _ = Describe("wildmatch", func() {
	var (
		cfg *config.Config
		out *bytes.Buffer
	)

	BeforeEach(func(ctx context.Context) {
		cfg = &config.Config{}
		Expect(cfg.Init(ctx)).To(Succeed())
		cfg.Patterns = nil
		cfg.Encoding = ""
		cfg.PatternFile = ""
		out = &bytes.Buffer{}
	})

	execute := func(ctx context.Context, args ...string) error {
		return newCommand(cfg, strings.NewReader(input), out).Run(ctx, append([]string{"wildmatch"}, args...))
	}

	DescribeTable("filtering stdin",
		func(ctx context.Context, args []string, want string) {
			Expect(execute(ctx, args...)).To(Succeed())
			Expect(out.String()).To(Equal(want))
		},
		Entry("one pattern", []string{"-p", "*.go"}, "main.go\nrun.go\nrun_test.go\n"),
		Entry("several patterns", []string{"-p", "*_test.go", "-p", "Makefile"}, "run_test.go\nMakefile\n"),
		Entry("inverted", []string{"--invert", "-p", "*.go"}, "Makefile\nREADME.md\nÄrger.txt\n"),
		Entry("count", []string{"--count", "-p", "*.go"}, "3\n"),
		Entry("bytes by default", []string{"-p", "??rger.txt"}, "Ärger.txt\n"),
		Entry("multi-byte", []string{"--multibyte", "-p", "?rger.txt"}, "Ärger.txt\n"),
	)

	It("returns ErrNoMatch when nothing is selected", func(ctx context.Context) {
		err := execute(ctx, "-p", "*.rs")

		Expect(err).To(MatchError(ErrNoMatch))
		Expect(exitCode(err)).To(Equal(1))
		Expect(out.String()).To(BeEmpty())
	})

	It("fails without patterns", func(ctx context.Context) {
		err := execute(ctx)

		Expect(err).To(MatchError(ErrNoPatterns))
		Expect(exitCode(err)).To(Equal(2))
	})

	It("reports invalid patterns", func(ctx context.Context) {
		Expect(execute(ctx, "-p", "*?")).To(MatchError(wildcard.ErrInvalidPatternSyntax))
	})

	It("uses patterns from the environment config", func(ctx context.Context) {
		cfg.Patterns = []string{"README.*"}

		Expect(execute(ctx)).To(Succeed())
		Expect(out.String()).To(Equal("README.md\n"))
	})

	It("reads files and patterns files", func(ctx context.Context) {
		dir := GinkgoT().TempDir()

		inputFile := filepath.Join(dir, "files.txt")
		lo.Must0(os.WriteFile(inputFile, []byte(input), 0600))

		patternsFile := filepath.Join(dir, "patterns.yaml")
		lo.Must0(os.WriteFile(patternsFile, []byte("patterns:\n  - name: docs\n    pattern: \"*.md\"\n"), 0600))

		Expect(execute(ctx, "-f", patternsFile, inputFile)).To(Succeed())
		Expect(out.String()).To(Equal("README.md\n"))
	})

	It("fails on a missing input file", func(ctx context.Context) {
		err := execute(ctx, "-p", "*", filepath.Join(GinkgoT().TempDir(), "missing"))
		Expect(err).To(MatchError(os.ErrNotExist))
	})

	It("explains patterns", func(ctx context.Context) {
		Expect(execute(ctx, "--explain", "-p", "report-??.*")).To(Succeed())

		Expect(out.String()).To(Equal(strings.Join([]string{
			"report-??.*\treport-??.*",
			`  phrases: [("report-",0,0) (".",2,2) ("",0,-1)]`,
			"  min length: 10",
			`  regexp: (?s)^report-..\..*$`,
			"",
		}, "\n")))
	})

	It("rejects an unknown encoding", func(ctx context.Context) {
		Expect(execute(ctx, "--encoding", "klingon", "-p", "*")).To(MatchError(config.ErrInvalidConfig))
	})

	It("stops when the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		opts := &options{
			patterns: []config.NamedPattern{{Name: "all", Pattern: "*"}},
			wildcard: wildcard.DefaultConfig(),
		}
		_, err := run(ctx, opts, strings.NewReader(input), out)
		Expect(err).To(MatchError(context.Canceled))
	})
})
