// SPDX-License-Identifier: MIT
// Package matrix provides exact linear-algebra kernels over int64 matrices:
// matrix product, transpose, matrix–vector products in both orientations,
// a fraction-free determinant and rank. All kernels perform strict fail-fast
// validation and report overflow instead of wrapping.
//
// Purpose:
//   - Declare canonical kernels used across the module.
//   - Define operation tags for determinism and error reporting.
//
// Notes:
//   - All kernels use central validators and wrap errors via matrixErrorf.
//   - Inputs are never mutated; results are freshly allocated.

package matrix

import (
	"errors"
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul                    = "Mul"
	opTranspose              = "Transpose"
	opPreMultiplyWithRow     = "PreMultiplyWithRow"
	opPostMultiplyWithColumn = "PostMultiplyWithColumn"
	opDeterminant            = "Determinant"
	opRank                   = "Rank"
	opDot                    = "Dot"
	opIdentityLike           = "IdentityLike"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs matrix multiplication C = A × B with checked accumulation.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Materialize both operands as *Dense (no copy for *Dense).
//   - Stage 3: i→k→j loop over row-major strides; skip zero A[i,k].
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch),
//     ErrOverflow (unrepresentable entry or partial sum).
//
// Determinism:
//   - Fixed i→k→j order; the same inputs always produce the same result.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	da, err := denseOf(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	r, n, c := da.r, da.c, db.c
	res := &Dense{r: r, c: c, data: make([]int64, r*c)}
	var (
		i, k, j  int
		aik      int64
		rowA     int
		rowB     int
		rowC     int
		acc, bkj int64
	)
	for i = 0; i < r; i++ {
		rowA = i * n
		rowC = i * c
		for k = 0; k < n; k++ {
			aik = da.data[rowA+k]
			if aik == 0 {
				continue // sparse-friendly skip
			}
			rowB = k * c
			for j = 0; j < c; j++ {
				bkj = db.data[rowB+j]
				if bkj == 0 {
					continue
				}
				if acc, err = CheckedMulAdd(res.data[rowC+j], aik, bkj); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("C(%d,%d): %w", i, j, err))
				}
				res.data[rowC+j] = acc
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a new *Dense.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res := &Dense{r: d.c, c: d.r, data: make([]int64, len(d.data))}
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			res.data[j*res.c+i] = d.data[i*d.c+j]
		}
	}

	return res, nil
}

// PostMultiplyWithColumn returns M·c, interpreting c as a (Cols × 1) column vector.
// The result has length Rows().
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(c) != Cols), ErrOverflow.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func PostMultiplyWithColumn(m Matrix, c []int64) ([]int64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPostMultiplyWithColumn, err)
	}
	if err := ValidateVecLen(c, m.Cols()); err != nil {
		return nil, matrixErrorf(opPostMultiplyWithColumn, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opPostMultiplyWithColumn, err)
	}
	out := make([]int64, d.r)
	for i := 0; i < d.r; i++ {
		// Row i of M is contiguous; reuse the checked dot product.
		if out[i], err = Dot(d.data[i*d.c:(i+1)*d.c], c); err != nil {
			return nil, matrixErrorf(opPostMultiplyWithColumn, fmt.Errorf("row %d: %w", i, err))
		}
	}

	return out, nil
}

// MatVec is an alias for PostMultiplyWithColumn: y = M·x.
// Complexity: O(r*c).
func MatVec(m Matrix, x []int64) ([]int64, error) { return PostMultiplyWithColumn(m, x) }

// PreMultiplyWithRow returns v·M, interpreting v as a (1 × Rows) row vector.
// The result has length Cols().
//
// Implementation:
//   - Stage 1: validate len(v) == Rows().
//   - Stage 2: accumulate out[j] += v[i]*M[i,j] in i→j order, skipping v[i] == 0.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(v) != Rows), ErrOverflow.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func PreMultiplyWithRow(m Matrix, v []int64) ([]int64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPreMultiplyWithRow, err)
	}
	if err := ValidateVecLen(v, m.Rows()); err != nil {
		return nil, matrixErrorf(opPreMultiplyWithRow, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opPreMultiplyWithRow, err)
	}
	out := make([]int64, d.c)
	var (
		i, j, base int
		vi, mij    int64
	)
	for i = 0; i < d.r; i++ {
		vi = v[i]
		if vi == 0 {
			continue
		}
		base = i * d.c
		for j = 0; j < d.c; j++ {
			mij = d.data[base+j]
			if mij == 0 {
				continue
			}
			if out[j], err = CheckedMulAdd(out[j], vi, mij); err != nil {
				return nil, matrixErrorf(opPreMultiplyWithRow, fmt.Errorf("col %d: %w", j, err))
			}
		}
	}

	return out, nil
}

// bareissStep computes (a*d - b*c) / p exactly, the fraction-free update.
// Bareiss guarantees divisibility; the division is exact.
func bareissStep(a, d, b, c, p int64) (int64, error) {
	ad, err := CheckedMul(a, d)
	if err != nil {
		return 0, err
	}
	bc, err := CheckedMul(b, c)
	if err != nil {
		return 0, err
	}
	num, err := CheckedSub(ad, bc)
	if err != nil {
		return 0, err
	}
	if p == 1 {
		return num, nil
	}
	// The exact quotient 2^63 is the only one that does not fit.
	if p == -1 && num == math.MinInt64 {
		return 0, ErrOverflow
	}

	return num / p, nil
}

// Determinant returns det(M) computed exactly by fraction-free (Bareiss) elimination.
// MAIN DESCRIPTION:
//   - Exact integer determinant without rational arithmetic.
//
// Implementation:
//   - Stage 1: validate square; det of the 0×0 matrix is 1.
//   - Stage 2: Bareiss in int64 (determinant64).
//   - Stage 3: when an intermediate minor overflows, redo the elimination in
//     big.Int; only the final determinant has to fit in int64.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOverflow (|det| does not fit in int64).
//
// Determinism:
//   - Fixed pivot choice: the first non-zero entry at or below the diagonal.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the working copy.
func Determinant(m Matrix) (int64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	det, err := determinant64(d)
	if errors.Is(err, ErrOverflow) {
		b := determinantBig(d)
		if !b.IsInt64() {
			return 0, matrixErrorf(opDeterminant, fmt.Errorf("det = %s: %w", b, ErrOverflow))
		}

		return b.Int64(), nil
	}
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return det, nil
}

// determinant64 is the int64 Bareiss loop:
// a[i][j] = (a[i][j]*a[k][k] - a[i][k]*a[k][j]) / prev for i,j > k,
// a row swap flips the sign, det = sign * a[n-1][n-1].
func determinant64(d *Dense) (int64, error) {
	n := d.r
	if n == 0 {
		return 1, nil
	}
	a := d.CloneDense().data // working copy; input is never mutated
	var (
		i, j, k, p int
		sign       int64 = 1
		prev       int64 = 1
		pivot      int64
		err        error
	)
	for k = 0; k < n-1; k++ {
		if a[k*n+k] == 0 {
			for p = k + 1; p < n && a[p*n+k] == 0; p++ {
			}
			if p == n {
				return 0, nil
			}
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			sign = -sign
		}
		pivot = a[k*n+k]
		for i = k + 1; i < n; i++ {
			for j = k + 1; j < n; j++ {
				if a[i*n+j], err = bareissStep(a[i*n+j], pivot, a[i*n+k], a[k*n+j], prev); err != nil {
					return 0, err
				}
			}
		}
		prev = pivot
	}

	return CheckedMul(sign, a[n*n-1])
}

// Rank returns the rank of M over the rationals, computed exactly by
// fraction-free row elimination.
//
// Implementation:
//   - Stage 1: copy M; rank starts at 0.
//   - Stage 2: for each column, look for a non-zero entry in rows [rank, r);
//     swap it into row rank and apply the Bareiss update to the rows below.
//   - Stage 3: on int64 overflow, repeat Stage 2 in big.Int. The rank itself
//     always fits, so overflow is never reported.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func Rank(m Matrix) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	rank, err := rank64(d)
	if errors.Is(err, ErrOverflow) {
		return rankBig(d), nil
	}
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return rank, nil
}

func rank64(d *Dense) (int, error) {
	r, c := d.r, d.c
	a := d.CloneDense().data
	var (
		rank, col, p, i, j int
		prev               int64 = 1
		pivot              int64
		err                error
	)
	for col = 0; col < c && rank < r; col++ {
		for p = rank; p < r && a[p*c+col] == 0; p++ {
		}
		if p == r {
			continue // no pivot in this column
		}
		if p != rank {
			for j = 0; j < c; j++ {
				a[rank*c+j], a[p*c+j] = a[p*c+j], a[rank*c+j]
			}
		}
		pivot = a[rank*c+col]
		for i = rank + 1; i < r; i++ {
			for j = col + 1; j < c; j++ {
				if a[i*c+j], err = bareissStep(a[i*c+j], pivot, a[i*c+col], a[rank*c+j], prev); err != nil {
					return 0, err
				}
			}
			a[i*c+col] = 0
		}
		prev = pivot
		rank++
	}

	return rank, nil
}
