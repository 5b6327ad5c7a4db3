package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/profile"

	"github.com/weirdgiraffe/brcsummary/internal/config"
	"github.com/weirdgiraffe/brcsummary/internal/mapped"
	"github.com/weirdgiraffe/brcsummary/internal/measure"
)

var ErrMissingPath = errors.New("missing input file path")

func options(cfg config.Config) measure.Options {
	opts := measure.Options{
		Workers:  cfg.Workers,
		Segments: cfg.Segments,
		Chunk:    cfg.Chunk,
		Parse:    measure.ParseValue,
	}
	if cfg.Parser == config.ParserTable {
		opts.Parse = measure.NewValueTable(measure.MaxTenths).Parse
	}
	return opts
}

func newLogger(cfg config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Solve summarizes filename and writes the result to out in a single
// write. Nothing is written when any line fails to parse.
func Solve(filename string, cfg config.Config, out io.Writer, log *slog.Logger) error {
	input, err := mapped.Open(filename)
	if err != nil {
		return err
	}
	defer input.Close()

	summary, err := measure.Summarize(context.Background(), input.Data, options(cfg), log)
	if err != nil {
		return err
	}

	if _, err := out.Write(summary); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func run(args []string) error {
	if len(args) < 2 {
		return ErrMissingPath
	}
	cfg, err := config.FromEnv(os.LookupEnv)
	if err != nil {
		return err
	}

	switch cfg.Profile {
	case config.ProfileCPU:
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.ProfilePath), profile.Quiet).Stop()
	case config.ProfileMem:
		defer profile.Start(profile.MemProfile, profile.ProfilePath(cfg.ProfilePath), profile.Quiet).Stop()
	}

	return Solve(args[1], cfg, os.Stdout, newLogger(cfg))
}

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "failed to solve: %v\n", err)
		os.Exit(1)
	}
	// skip the remaining teardown, the OS reclaims everything
	os.Exit(0)
}
