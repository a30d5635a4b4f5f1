// Command wildmatch prints the input lines that match any of a set of
// wildcard patterns.
//
// Usage:
//
//	wildmatch -p '*.go' -p 'Makefile' files.txt
//	find . | wildmatch --invert -p '*_test.go'
//	wildmatch --patterns-file patterns.yaml --count access.log
//	wildmatch --explain -p 'report-??.*'
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang-cz/devslog"
	"github.com/mattn/go-isatty"

	"github.com/coregx/wildcard/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := &config.Config{}
	if err := cfg.Init(ctx); err != nil {
		slog.Error("failed to initialize config", "error", err)
		os.Exit(2)
	}

	level, _ := cfg.Level()
	setupLogging(level)

	if err := newCommand(cfg, os.Stdin, os.Stdout).Run(ctx, os.Args); err != nil {
		code := exitCode(err)
		if code > 1 {
			slog.Error("wildmatch failed", "error", err)
		}
		os.Exit(code)
	}
}

func setupLogging(level slog.Level) {
	opts := &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{
			Level: level,
		},

		MaxSlicePrintSize: 8,
		SortKeys:          true,
		TimeFormat:        "[04:05]",
		StringerFormatter: true,
		NoColor:           !isatty.IsTerminal(os.Stderr.Fd()),
	}

	h := devslog.NewHandler(os.Stderr, opts)
	slog.SetDefault(slog.New(h))
}
