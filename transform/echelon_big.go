// SPDX-License-Identifier: MIT

// Package transform - arbitrary-precision workspace for the echelon factory.
//
// Purpose:
//   - Run the same elimination as the int64 path on big.Int entries, so that
//     intermediate coefficient growth never fails a call.
//   - Convert the final (M·T, T) back to *matrix.Dense, reporting ErrOverflow
//     only when a result entry does not fit in int64.

package transform

import (
	"math/big"

	"github.com/katalvlaran/presburger/matrix"
)

// bigWorkspace stores M·T (rows×cols) and T (cols×cols) row-major.
type bigWorkspace struct {
	rows, cols int
	m, t       []*big.Int
	q, tmp     big.Int // scratch
}

func newBigWorkspace(m *matrix.Dense) *bigWorkspace {
	rows, cols := m.Shape()
	t := make([]*big.Int, cols*cols)
	for k := range t {
		t[k] = new(big.Int)
		if k/cols == k%cols {
			t[k].SetInt64(1)
		}
	}

	return &bigWorkspace{rows: rows, cols: cols, m: matrix.BigEntries(m), t: t}
}

func (w *bigWorkspace) sign(i, j int) int { return w.m[i*w.cols+j].Sign() }

func (w *bigWorkspace) cmpAbs(i, a, b int) int {
	return w.m[i*w.cols+a].CmpAbs(w.m[i*w.cols+b])
}

func (w *bigWorkspace) swap(a, b int) error {
	swapBigColumns(w.m, w.rows, w.cols, a, b)
	swapBigColumns(w.t, w.cols, w.cols, a, b)

	return nil
}

func (w *bigWorkspace) negate(j int) error {
	for i := 0; i < w.rows; i++ {
		w.m[i*w.cols+j].Neg(w.m[i*w.cols+j])
	}
	for i := 0; i < w.cols; i++ {
		w.t[i*w.cols+j].Neg(w.t[i*w.cols+j])
	}

	return nil
}

func (w *bigWorkspace) subtractMultiple(r, src, dst int) error {
	pivot := w.m[r*w.cols+src]
	if pivot.Sign() == 0 {
		return matrix.ErrDivideByZero
	}
	matrix.FloorDivBig(&w.q, w.m[r*w.cols+dst], pivot)
	if w.q.Sign() == 0 {
		return nil
	}
	w.subScaled(w.m, w.rows, src, dst)
	w.subScaled(w.t, w.cols, src, dst)

	return nil
}

// subScaled does col_dst -= q·col_src on a row-major slice with n rows.
func (w *bigWorkspace) subScaled(vals []*big.Int, n, src, dst int) {
	for i := 0; i < n; i++ {
		s := vals[i*w.cols+src]
		if s.Sign() == 0 {
			continue
		}
		d := vals[i*w.cols+dst]
		d.Sub(d, w.tmp.Mul(&w.q, s))
	}
}

// result converts the workspace to (M·T, T).
func (w *bigWorkspace) result() (*matrix.Dense, *matrix.Dense, error) {
	reduced, err := matrix.DenseFromBig(w.rows, w.cols, w.m)
	if err != nil {
		return nil, nil, err
	}
	t, err := matrix.DenseFromBig(w.cols, w.cols, w.t)
	if err != nil {
		return nil, nil, err
	}

	return reduced, t, nil
}

func swapBigColumns(vals []*big.Int, rows, cols, a, b int) {
	for i := 0; i < rows; i++ {
		vals[i*cols+a], vals[i*cols+b] = vals[i*cols+b], vals[i*cols+a]
	}
}
