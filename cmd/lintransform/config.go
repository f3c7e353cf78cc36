package main

import (
	"flag"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/presburger/transform"
)

// config holds the parsed command line.
type config struct {
	input     string // path or "-" for stdin
	output    string // path or "-" for stdout
	pivot     string
	logLevel  string
	logFormat string
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("lintransform", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.input, "input", "-", "YAML input document (- for stdin)")
	fs.StringVar(&c.output, "output", "-", "YAML output document (- for stdout)")
	fs.StringVar(&c.pivot, "pivot", transform.DefaultPivotPolicy.String(), "pivot policy: leftmost or smallest")
	fs.StringVar(&c.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	fs.StringVar(&c.logFormat, "log-format", "console", "log encoding: console or json")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, errors.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	return c, c.validate()
}

func (c config) validate() error {
	if c.input == "" {
		return errors.New("input path is empty")
	}
	if c.output == "" {
		return errors.New("output path is empty")
	}
	if _, err := transform.ParsePivotPolicy(c.pivot); err != nil {
		return errors.Wrap(err, "parsing -pivot")
	}
	if _, err := zapcore.ParseLevel(c.logLevel); err != nil {
		return errors.Wrap(err, "parsing -log-level")
	}
	switch c.logFormat {
	case "console", "json":
	default:
		return errors.Errorf("unknown log format %q", c.logFormat)
	}

	return nil
}

// pivotPolicy returns the parsed policy; c must have passed validate.
func (c config) pivotPolicy() transform.PivotPolicy {
	p, _ := transform.ParsePivotPolicy(c.pivot)
	return p
}

// newLogger builds a logger writing to w at the configured level and encoding.
func newLogger(c config, w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.logLevel)
	if err != nil {
		return nil, errors.Wrap(err, "parsing log level")
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	switch c.logFormat {
	case "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	case "console":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, errors.Errorf("unknown log format %q", c.logFormat)
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level)), nil
}
