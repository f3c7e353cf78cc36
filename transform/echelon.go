// SPDX-License-Identifier: MIT

// Package transform - column echelon factory.
//
// Purpose:
//   - Reduce M to column echelon form using only unimodular column operations,
//     recording every operation on an accumulator that starts at the identity.
//
// Algorithm (column-oriented integer Gaussian elimination):
//  1. Walk pivot rows top to bottom; `fixed` counts columns already placed.
//  2. At row r choose a pivot among the columns [fixed, cols) that are non-zero
//     at r (PivotPolicy). When there is none, move on without using a slot.
//  3. Swap the pivot into position `fixed`.
//  4. For every later column j non-zero at r run the Euclidean algorithm on
//     the pair (fixed, j): col_j -= ⌊a_j/a_p⌋·col_fixed, then swap the two
//     columns while the remainder is non-zero. The pivot entry ends up as
//     ±gcd of the row-r entries and every later entry at row r is zero.
//  5. Negate the pivot column when its pivot entry is negative.
//  6. Reduce every earlier column k < fixed at row r into [0, pivot):
//     col_k -= ⌊a_k/p⌋·col_fixed. Earlier pivots are untouched because
//     col_fixed is zero above row r. This bounds entry growth.
//  7. fixed++. After the last row, columns [fixed, cols) are all zero.
//
// Arithmetic:
//   - The elimination first runs on int64 with checked operations. When any
//     step overflows it restarts on big.Int, so intermediate growth never
//     fails a call. Only the results T and M·T must fit in int64.
//   - For a full-rank n×n input with |a| <= A, Hadamard's bound limits the
//     results: 0 <= (M·T)[i][j] <= |det M| <= (√n·A)^n and
//     |T[i][j]| <= n·(√(n-1)·A)^(n-1). Every input under 2^63 in both bounds
//     succeeds (for example n=10, A=10 or n=8, A=30).
//
// Determinism:
//   - Fixed loop orders and a deterministic pivot rule; identical inputs
//     produce bit-identical (rank, T). Both arithmetic paths run the same
//     operation sequence, so they agree whenever int64 suffices.

package transform

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/presburger/matrix"
)

// Echelon is the full result of the column-echelon factory.
type Echelon struct {
	// Rank is the number of non-zero columns of Reduced; it equals the rank of
	// the input over the rationals.
	Rank int
	// Transform is the unimodular T with Reduced = M·T.
	Transform *LinearTransform
	// Reduced is M·T in column echelon form, with positive pivots and every
	// entry left of a pivot in [0, pivot).
	Reduced *matrix.Dense
}

// MakeTransformToColumnEchelon returns (rank, T) such that M·T is M in column
// echelon form and rank is the number of non-zero columns of M·T.
// M is not modified. A matrix with no rows, no columns, or only zeros yields
// rank 0 and the identity of size Cols().
//
// Errors:
//   - ErrNilMatrix, ErrOverflow (an entry of T or M·T does not fit in int64).
func MakeTransformToColumnEchelon(m *matrix.Dense, opts ...Option) (int, *LinearTransform, error) {
	e, err := ColumnEchelon(m, opts...)
	if err != nil {
		return 0, nil, err
	}

	return e.Rank, e.Transform, nil
}

// ColumnEchelon is MakeTransformToColumnEchelon that also returns the reduced
// matrix M·T.
// MAIN DESCRIPTION:
//   - The canonical factory; see the file header for the algorithm.
//
// Implementation:
//   - Stage 1: run on an int64 workspace (clone of M, identity accumulator).
//   - Stage 2: on ErrOverflow, rerun on a big.Int workspace and convert back.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrOverflow (a result entry beyond int64).
//
// Complexity:
//   - O(rows·cols) column operations per pivot row, each O(rows + cols), times
//     the Euclidean round count (logarithmic in entry magnitude).
func ColumnEchelon(m *matrix.Dense, opts ...Option) (*Echelon, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, transformErrorf(opColumnEchelon, err)
	}
	o := gatherOptions(opts...)

	acc, err := matrix.NewIdentity(m.Cols())
	if err != nil {
		return nil, transformErrorf(opColumnEchelon, err)
	}
	dw := &denseWorkspace{m: m.CloneDense(), t: acc}
	rank, err := reduceToEchelon(dw, m.Rows(), m.Cols(), o.pivot)
	if err == nil {
		return &Echelon{Rank: rank, Transform: newOwned(dw.t), Reduced: dw.m}, nil
	}
	if !errors.Is(err, matrix.ErrOverflow) {
		return nil, transformErrorf(opColumnEchelon, err)
	}

	bw := newBigWorkspace(m)
	if rank, err = reduceToEchelon(bw, m.Rows(), m.Cols(), o.pivot); err != nil {
		return nil, transformErrorf(opColumnEchelon, err)
	}
	reduced, t, err := bw.result()
	if err != nil {
		return nil, transformErrorf(opColumnEchelon, err)
	}

	return &Echelon{Rank: rank, Transform: newOwned(t), Reduced: reduced}, nil
}

// workspace is the working matrix M·T together with the accumulator T.
// Every column operation is applied to both, so the product relation holds
// after each call.
type workspace interface {
	// sign returns -1, 0 or 1 for entry (i, j) of the working matrix.
	sign(i, j int) int
	// cmpAbs compares |a_ia| with |a_ib|.
	cmpAbs(i, a, b int) int
	swap(a, b int) error
	negate(j int) error
	// subtractMultiple does col_dst -= ⌊a_r,dst / a_r,src⌋·col_src.
	// a_r,src must be non-zero.
	subtractMultiple(r, src, dst int) error
}

// reduceToEchelon runs the elimination on w and returns the rank.
func reduceToEchelon(w workspace, rows, cols int, policy PivotPolicy) (int, error) {
	var err error
	fixed := 0
	for r := 0; r < rows && fixed < cols; r++ {
		p, ok := choosePivot(w, r, fixed, cols, policy)
		if !ok {
			continue // row r has no candidate; no column slot is consumed
		}
		if p != fixed {
			if err = w.swap(p, fixed); err != nil {
				return 0, err
			}
		}
		for j := fixed + 1; j < cols; j++ {
			if err = eliminate(w, r, fixed, j); err != nil {
				return 0, fmt.Errorf("row %d, column %d: %w", r, j, err)
			}
		}
		if w.sign(r, fixed) < 0 {
			if err = w.negate(fixed); err != nil {
				return 0, err
			}
		}
		for k := 0; k < fixed; k++ {
			if err = w.subtractMultiple(r, fixed, k); err != nil {
				return 0, fmt.Errorf("row %d, reducing column %d: %w", r, k, err)
			}
		}
		fixed++
	}

	return fixed, nil
}

// choosePivot returns the pivot column for row r among [from, cols).
func choosePivot(w workspace, r, from, cols int, policy PivotPolicy) (int, bool) {
	best := -1
	for j := from; j < cols; j++ {
		if w.sign(r, j) == 0 {
			continue
		}
		if policy == PivotLeftmost {
			return j, true
		}
		if best < 0 || w.cmpAbs(r, j, best) < 0 {
			best = j
		}
	}

	return best, best >= 0
}

// eliminate zeroes entry (r, j) against the pivot column p by the Euclidean
// algorithm on columns. The pivot entry strictly decreases in magnitude on
// every swap, so the loop terminates.
func eliminate(w workspace, r, p, j int) error {
	for w.sign(r, j) != 0 {
		if err := w.subtractMultiple(r, p, j); err != nil {
			return err
		}
		if w.sign(r, j) == 0 {
			return nil
		}
		// Remainder is smaller than the pivot: it becomes the new pivot.
		if err := w.swap(p, j); err != nil {
			return err
		}
	}

	return nil
}

// denseWorkspace is the int64 fast path over matrix column operations.
type denseWorkspace struct {
	m *matrix.Dense // working copy of M
	t *matrix.Dense // accumulated unimodular transform
}

// at reads an entry whose indices are valid by construction.
func (w *denseWorkspace) at(i, j int) int64 {
	v, _ := w.m.At(i, j)
	return v
}

func (w *denseWorkspace) sign(i, j int) int {
	switch v := w.at(i, j); {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func (w *denseWorkspace) cmpAbs(i, a, b int) int {
	ma, mb := magnitude(w.at(i, a)), magnitude(w.at(i, b))
	switch {
	case ma < mb:
		return -1
	case ma > mb:
		return 1
	default:
		return 0
	}
}

func (w *denseWorkspace) swap(a, b int) error {
	if err := w.m.SwapColumns(a, b); err != nil {
		return err
	}

	return w.t.SwapColumns(a, b)
}

func (w *denseWorkspace) negate(j int) error {
	if err := w.m.NegateColumn(j); err != nil {
		return err
	}

	return w.t.NegateColumn(j)
}

func (w *denseWorkspace) subtractMultiple(r, src, dst int) error {
	q, err := matrix.FloorDiv(w.at(r, dst), w.at(r, src))
	if err != nil {
		return err
	}
	if q == 0 {
		return nil
	}
	negQ, err := matrix.CheckedNeg(q)
	if err != nil {
		return err
	}
	if err = w.m.AddScaledColumn(src, dst, negQ); err != nil {
		return err
	}

	return w.t.AddScaledColumn(src, dst, negQ)
}

// magnitude returns |v| without overflowing on math.MinInt64.
func magnitude(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}

	return uint64(v)
}
