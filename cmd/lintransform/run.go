package main

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/presburger/matrix"
	"github.com/katalvlaran/presburger/transform"
)

// invert computes T⁻¹ for the response; tests swap it to exercise failures.
var invert = (*transform.LinearTransform).Inverse

// run decodes one request from in, computes the column echelon transform and
// everything derived from it, and encodes the response to out.
func run(cfg config, in io.Reader, out io.Writer, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	var doc inputDoc
	dec := yaml.NewDecoder(in)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return errors.Wrap(err, "decoding input")
	}

	m, err := matrix.NewFromRows(doc.Matrix)
	if err != nil {
		return errors.Wrap(err, "reading matrix")
	}
	rows, cols := m.Shape()
	logger.Debug("read matrix", zap.Int("rows", rows), zap.Int("cols", cols))

	policy := cfg.pivotPolicy()
	e, err := transform.ColumnEchelon(m, transform.WithPivotPolicy(policy))
	if err != nil {
		return errors.Wrap(err, "computing column echelon transform")
	}
	logger.Info("computed column echelon transform",
		zap.Int("rank", e.Rank),
		zap.Int("size", e.Transform.Size()),
		zap.Stringer("pivot", policy),
	)

	res := outputDoc{
		Rank:      e.Rank,
		Transform: e.Transform.Matrix().ToRows(),
		Reduced:   e.Reduced.ToRows(),
	}

	// A failed inverse costs only its own field; T is still valid.
	if inv, err := invert(e.Transform); err != nil {
		logger.Warn("cannot invert transform", zap.Error(err))
		res.InverseError = err.Error()
	} else {
		res.Inverse = inv.Matrix().ToRows()
	}

	if doc.Polyhedron != nil {
		p, err := doc.Polyhedron.build()
		if err != nil {
			return errors.Wrap(err, "reading polyhedron")
		}
		q, err := e.Transform.ApplyTo(p)
		if err != nil {
			return errors.Wrap(err, "applying transform to polyhedron")
		}
		logger.Debug("applied transform",
			zap.Int("equalities", q.NumEqualities()),
			zap.Int("inequalities", q.NumInequalities()),
		)
		res.Polyhedron = polyhedronDocOf(q)
	}

	for i, y := range doc.Points {
		x, err := e.Transform.PostMultiplyWithColumn(y)
		if err != nil {
			return errors.Wrapf(err, "mapping point %d", i)
		}
		res.Points = append(res.Points, x)
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err = enc.Encode(&res); err != nil {
		return errors.Wrap(err, "encoding output")
	}

	return errors.Wrap(enc.Close(), "flushing output")
}
