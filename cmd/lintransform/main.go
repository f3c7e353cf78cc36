// Command lintransform reads an integer matrix (and optionally a constraint
// system and points) as YAML, computes a unimodular transform T that brings
// the matrix to column echelon form, and writes T, M·T, T⁻¹, the transformed
// system and the mapped points as YAML.
//
// Usage:
//
//	lintransform -input req.yaml -output resp.yaml -pivot smallest -log-level debug
package main

import (
	"flag"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Stderr.WriteString("lintransform: " + err.Error() + "\n")
		os.Exit(2)
	}

	logger, err := newLogger(cfg, os.Stderr)
	if err != nil {
		os.Stderr.WriteString("lintransform: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	if err = execute(cfg, logger); err != nil {
		logger.Error("lintransform failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// execute opens the configured streams and hands them to run.
func execute(cfg config, logger *zap.Logger) error {
	var in io.Reader = os.Stdin
	if cfg.input != "-" {
		f, err := os.Open(cfg.input)
		if err != nil {
			return errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
	}

	if cfg.output == "-" {
		return run(cfg, in, os.Stdout, logger)
	}
	f, err := os.Create(cfg.output)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	if err = run(cfg, in, f, logger); err != nil {
		_ = f.Close()
		return err
	}

	return errors.Wrap(f.Close(), "closing output")
}
