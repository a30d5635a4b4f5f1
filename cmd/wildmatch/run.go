package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/coregx/wildcard"
	"github.com/coregx/wildcard/internal/config"
)

var (
	ErrNoPatterns = errors.New("no patterns given")
	ErrNoMatch    = errors.New("no lines matched")
)

// options is the resolved command line.
type options struct {
	patterns []config.NamedPattern
	wildcard wildcard.Config
	invert   bool
	count    bool
	explain  bool
	files    []string
}

func newCommand(cfg *config.Config, in io.Reader, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "wildmatch",
		Usage:     "print lines matching wildcard patterns",
		ArgsUsage: "[FILE...]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "pattern",
				Aliases: []string{"p"},
				Usage:   "wildcard `PATTERN` to match; repeatable",
			},
			&cli.StringFlag{
				Name:    "patterns-file",
				Aliases: []string{"f"},
				Usage:   "YAML `FILE` of named patterns",
				Value:   cfg.PatternFile,
			},
			&cli.BoolFlag{
				Name:    "invert",
				Aliases: []string{"v"},
				Usage:   "print lines matching none of the patterns",
			},
			&cli.BoolFlag{
				Name:    "count",
				Aliases: []string{"c"},
				Usage:   "print only the number of selected lines",
			},
			&cli.BoolFlag{
				Name:    "multibyte",
				Aliases: []string{"m"},
				Usage:   "count codepoints instead of bytes",
			},
			&cli.StringFlag{
				Name:    "encoding",
				Aliases: []string{"e"},
				Usage:   "input `ENCODING` for --multibyte, e.g. ISO-8859-1",
				Value:   cfg.Encoding,
			},
			&cli.BoolFlag{
				Name:  "explain",
				Usage: "print each pattern's phrase table and regexp instead of matching",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := resolve(cfg, cmd)
			if err != nil {
				return err
			}

			if opts.explain {
				return explain(opts, out)
			}

			selected, err := run(ctx, opts, in, out)
			if err != nil {
				return err
			}
			if selected == 0 {
				return ErrNoMatch
			}
			return nil
		},
	}
}

func resolve(cfg *config.Config, cmd *cli.Command) (*options, error) {
	var file *config.PatternFile
	if name := cmd.String("patterns-file"); name != "" {
		f, err := config.LoadPatternFile(name)
		if err != nil {
			return nil, err
		}
		file = f
	}

	encoding := cmd.String("encoding")
	if encoding == "" && file != nil {
		encoding = file.Encoding
	}

	c := *cfg
	c.Encoding = ""
	if cmd.Bool("multibyte") || encoding != "" {
		c.Encoding = lo.Ternary(encoding == "", "UTF-8", encoding)
	}

	wc, err := c.Wildcard()
	if err != nil {
		return nil, err
	}

	adHoc := append(append([]string(nil), cfg.Patterns...), cmd.StringSlice("pattern")...)
	patterns := config.Merge(adHoc, file)
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}

	return &options{
		patterns: patterns,
		wildcard: wc,
		invert:   cmd.Bool("invert"),
		count:    cmd.Bool("count"),
		explain:  cmd.Bool("explain"),
		files:    cmd.Args().Slice(),
	}, nil
}

// run filters the inputs and returns the number of selected lines.
func run(ctx context.Context, opts *options, stdin io.Reader, out io.Writer) (int, error) {
	texts := lo.Map(opts.patterns, func(p config.NamedPattern, _ int) string { return p.Pattern })
	set, err := wildcard.NewSetWithConfig(opts.wildcard, texts...)
	if err != nil {
		return 0, err
	}

	slog.Debug("patterns compiled",
		"patterns", lo.Map(opts.patterns, func(p config.NamedPattern, _ int) string { return p.Name }),
		"encoding", opts.wildcard.Encoding)

	w := bufio.NewWriter(out)
	defer w.Flush()

	selected := 0
	filter := func(name string, r io.Reader) error {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

		lines := 0
		for scanner.Scan() {
			if err := ctx.Err(); err != nil {
				return err
			}
			lines++

			line := scanner.Text()
			if set.Match(line) == opts.invert {
				continue
			}
			selected++
			if !opts.count {
				fmt.Fprintln(w, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		slog.Debug("input scanned", "input", name, "lines", lines)
		return nil
	}

	if len(opts.files) == 0 {
		if err := filter("-", stdin); err != nil {
			return selected, err
		}
	}
	for _, name := range opts.files {
		if err := filterFile(name, stdin, filter); err != nil {
			return selected, err
		}
	}

	if opts.count {
		fmt.Fprintln(w, selected)
	}
	return selected, nil
}

func filterFile(name string, stdin io.Reader, filter func(string, io.Reader) error) error {
	if name == "-" {
		return filter(name, stdin)
	}

	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	return filter(name, f)
}

// explain prints one block per pattern: its name, phrase table, minimum
// length and equivalent regexp.
func explain(opts *options, out io.Writer) error {
	for _, p := range opts.patterns {
		w, err := wildcard.CompileWithConfig(p.Pattern, opts.wildcard)
		if err != nil {
			return fmt.Errorf("pattern %q: %w", p.Name, err)
		}
		expr, err := wildcard.ToRegexp(p.Pattern)
		if err != nil {
			return fmt.Errorf("pattern %q: %w", p.Name, err)
		}

		fmt.Fprintf(out, "%s\t%s\n", p.Name, p.Pattern)
		fmt.Fprintf(out, "  phrases: %s\n", w.Program())
		fmt.Fprintf(out, "  min length: %d\n", w.MinLen())
		fmt.Fprintf(out, "  regexp: %s\n", expr)
	}
	return nil
}

// exitCode maps errors to grep-style exit codes: 0 on success, 1 when
// nothing matched, 2 on failure.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrNoMatch):
		return 1
	default:
		return 2
	}
}
