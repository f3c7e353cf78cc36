package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/presburger/matrix"
	"github.com/katalvlaran/presburger/transform"
)

const request = `
matrix:
  - [4, 6]
polyhedron:
  vars: 2
  equalities:
    - [4, 6, -8]
  inequalities:
    - [1, 0, 0]
points:
  - [1, 0]
  - [3, 2]
`

func defaultConfig(t *testing.T) config {
	t.Helper()
	cfg, err := parseFlags(nil, io.Discard)
	require.NoError(t, err)

	return cfg
}

func decodeOutput(t *testing.T, b []byte) outputDoc {
	t.Helper()
	var res outputDoc
	require.NoError(t, yaml.Unmarshal(b, &res))

	return res
}

func TestRun_EndToEnd(t *testing.T) {
	var out bytes.Buffer
	err := run(defaultConfig(t), strings.NewReader(request), &out, zaptest.NewLogger(t))
	require.NoError(t, err)

	res := decodeOutput(t, out.Bytes())
	assert.Equal(t, 1, res.Rank)
	assert.Equal(t, [][]int64{{-1, 3}, {1, -2}}, res.Transform)
	assert.Equal(t, [][]int64{{2, 0}}, res.Reduced)
	assert.Equal(t, [][]int64{{2, 3}, {1, 1}}, res.Inverse)
	require.NotNil(t, res.Polyhedron)
	assert.Equal(t, 2, res.Polyhedron.Vars)
	assert.Equal(t, [][]int64{{2, 0, -8}}, res.Polyhedron.Equalities)
	assert.Equal(t, [][]int64{{-1, 3, 0}}, res.Polyhedron.Inequalities)
	assert.Equal(t, [][]int64{{-1, 1}, {3, -1}}, res.Points)
}

// TestRun_ConsistentWithLibrary checks the CLI against direct library calls
// for the smallest-magnitude policy.
func TestRun_ConsistentWithLibrary(t *testing.T) {
	cfg, err := parseFlags([]string{"-pivot", "smallest"}, io.Discard)
	require.NoError(t, err)
	in := "matrix:\n  - [6, 1, 4]\n  - [2, 0, 3]\n"

	var out bytes.Buffer
	require.NoError(t, run(cfg, strings.NewReader(in), &out, nil))
	res := decodeOutput(t, out.Bytes())

	m, err := matrix.NewFromRows([][]int64{{6, 1, 4}, {2, 0, 3}})
	require.NoError(t, err)
	e, err := transform.ColumnEchelon(m, transform.WithPivotPolicy(transform.PivotSmallestMagnitude))
	require.NoError(t, err)
	assert.Equal(t, e.Rank, res.Rank)
	assert.Equal(t, e.Transform.Matrix().ToRows(), res.Transform)
	assert.Equal(t, e.Reduced.ToRows(), res.Reduced)
	assert.Nil(t, res.Polyhedron)
	assert.Empty(t, res.Points)
}

func TestRun_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown field":     "matrix: [[1]]\nextra: 1\n",
		"ragged matrix":     "matrix:\n  - [1, 2]\n  - [3]\n",
		"vars mismatch":     "matrix: [[1, 2]]\npolyhedron:\n  vars: 3\n",
		"short row":         "matrix: [[1, 2]]\npolyhedron:\n  vars: 2\n  equalities:\n    - [1, 2]\n",
		"point length":      "matrix: [[1, 2]]\npoints:\n  - [1]\n",
		"empty input":       "",
		"not an int64":      "matrix: [[1.5]]\n",
		"overflowing pivot": "matrix: [[-9223372036854775808]]\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			err := run(defaultConfig(t), strings.NewReader(in), io.Discard, nil)
			assert.Error(t, err)
		})
	}
}

func TestRun_OverflowIsMatchable(t *testing.T) {
	err := run(defaultConfig(t), strings.NewReader("matrix: [[-9223372036854775808]]\n"), io.Discard, nil)
	assert.ErrorIs(t, err, transform.ErrOverflow)
}

func TestParseFlags(t *testing.T) {
	cfg := defaultConfig(t)
	assert.Equal(t, "-", cfg.input)
	assert.Equal(t, "-", cfg.output)
	assert.Equal(t, transform.PivotLeftmost, cfg.pivotPolicy())

	for _, args := range [][]string{
		{"-pivot", "largest"},
		{"-log-level", "loud"},
		{"-log-format", "xml"},
		{"-input", ""},
		{"-output", ""},
		{"stray"},
		{"-nope"},
	} {
		_, err := parseFlags(args, io.Discard)
		assert.Error(t, err, "%v", args)
	}
}

func TestNewLogger_JSON(t *testing.T) {
	cfg, err := parseFlags([]string{"-log-format", "json", "-log-level", "info"}, io.Discard)
	require.NoError(t, err)
	var logs bytes.Buffer
	logger, err := newLogger(cfg, &logs)
	require.NoError(t, err)

	require.NoError(t, run(cfg, strings.NewReader(request), io.Discard, logger))
	require.NoError(t, logger.Sync())
	assert.Contains(t, logs.String(), `"msg":"computed column echelon transform"`)
	assert.Contains(t, logs.String(), `"rank":1`)
	assert.NotContains(t, logs.String(), "read matrix", "debug entries are filtered at info level")
}

func TestExecute_Files(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "req.yaml")
	outPath := filepath.Join(dir, "resp.yaml")
	require.NoError(t, os.WriteFile(inPath, []byte(request), 0o600))

	cfg, err := parseFlags([]string{"-input", inPath, "-output", outPath}, io.Discard)
	require.NoError(t, err)
	require.NoError(t, execute(cfg, zaptest.NewLogger(t)))

	b, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, 1, decodeOutput(t, b).Rank)

	cfg.input = filepath.Join(dir, "missing.yaml")
	assert.Error(t, execute(cfg, nil))
}

// TestRun_InverseFailureKeepsOtherFields: only the inverse field is lost.
func TestRun_InverseFailureKeepsOtherFields(t *testing.T) {
	saved := invert
	t.Cleanup(func() { invert = saved })
	invert = func(*transform.LinearTransform) (*transform.LinearTransform, error) {
		return nil, transform.ErrOverflow
	}

	var out bytes.Buffer
	require.NoError(t, run(defaultConfig(t), strings.NewReader(request), &out, zaptest.NewLogger(t)))
	res := decodeOutput(t, out.Bytes())
	assert.Equal(t, 1, res.Rank)
	assert.Equal(t, [][]int64{{-1, 3}, {1, -2}}, res.Transform)
	assert.Nil(t, res.Inverse)
	assert.Contains(t, res.InverseError, "overflow")
	require.NotNil(t, res.Polyhedron)
	assert.Equal(t, [][]int64{{-1, 1}, {3, -1}}, res.Points)
}
