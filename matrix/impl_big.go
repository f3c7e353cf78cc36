// SPDX-License-Identifier: MIT

// Package matrix - arbitrary-precision fallbacks.
//
// Purpose:
//   - Finish Determinant and Rank exactly when an int64 Bareiss intermediate
//     overflows. Only the final value has to fit; minors in between may not.
//   - Provide the big.Int helpers shared with elimination code in other
//     packages (FloorDivBig, BigEntries, DenseFromBig).
//
// Determinism:
//   - Same loop orders and pivot rules as the int64 kernels, so both paths
//     agree bit for bit whenever the int64 path succeeds.

package matrix

import (
	"fmt"
	"math/big"
)

const (
	opDeterminantBig = "DeterminantBig"
	opDenseFromBig   = "DenseFromBig"
)

var bigOne = big.NewInt(1)

// FloorDivBig sets q = ⌊a/b⌋ (rounding toward negative infinity) and returns q.
// q must not alias b. b must be non-zero; the caller checks.
// Complexity: O(size of a).
func FloorDivBig(q, a, b *big.Int) *big.Int {
	var r big.Int
	q.QuoRem(a, b, &r)
	// QuoRem truncates; step down when the remainder and divisor disagree in sign.
	if r.Sign() != 0 && (r.Sign() < 0) != (b.Sign() < 0) {
		q.Sub(q, bigOne)
	}

	return q
}

// BigEntries returns the entries of m as freshly allocated big.Int values in
// row-major order.
// Complexity: O(r*c).
func BigEntries(m *Dense) []*big.Int {
	out := make([]*big.Int, len(m.data))
	for k, v := range m.data {
		out[k] = big.NewInt(v)
	}

	return out
}

// DenseFromBig converts a row-major slice of rows*cols big integers back to
// *Dense.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape (length mismatch),
//     ErrOverflow (an entry outside int64).
//
// Complexity: O(r*c).
func DenseFromBig(rows, cols int, vals []*big.Int) (*Dense, error) {
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opDenseFromBig, err)
	}
	if len(vals) != rows*cols {
		return nil, matrixErrorf(opDenseFromBig, ErrBadShape)
	}
	for k, v := range vals {
		if !v.IsInt64() {
			return nil, matrixErrorf(opDenseFromBig,
				fmt.Errorf("entry (%d,%d) = %s: %w", k/max(cols, 1), k%max(cols, 1), v, ErrOverflow))
		}
		d.data[k] = v.Int64()
	}

	return d, nil
}

// DeterminantBig returns det(M) as an arbitrary-precision integer.
// Never overflows; otherwise identical to Determinant.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - O(n^3) big-integer operations.
func DeterminantBig(m Matrix) (*big.Int, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opDeterminantBig, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opDeterminantBig, err)
	}

	return determinantBig(d), nil
}

// determinantBig is the Bareiss loop of Determinant over big.Int.
func determinantBig(d *Dense) *big.Int {
	n := d.r
	if n == 0 {
		return big.NewInt(1)
	}
	a := BigEntries(d)
	var (
		i, j, k, p int
		neg        bool
		prev       = big.NewInt(1)
		t1, t2     big.Int
	)
	for k = 0; k < n-1; k++ {
		if a[k*n+k].Sign() == 0 {
			for p = k + 1; p < n && a[p*n+k].Sign() == 0; p++ {
			}
			if p == n {
				return new(big.Int)
			}
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			neg = !neg
		}
		pivot := a[k*n+k]
		for i = k + 1; i < n; i++ {
			for j = k + 1; j < n; j++ {
				t1.Mul(a[i*n+j], pivot)
				t2.Mul(a[i*n+k], a[k*n+j])
				a[i*n+j].Quo(t1.Sub(&t1, &t2), prev)
			}
		}
		prev = pivot
	}

	det := new(big.Int).Set(a[n*n-1])
	if neg {
		det.Neg(det)
	}

	return det
}

// rankBig is the fraction-free row elimination of Rank over big.Int.
func rankBig(d *Dense) int {
	r, c := d.r, d.c
	a := BigEntries(d)
	var (
		rank, col, p, i, j int
		prev               = big.NewInt(1)
		t1, t2             big.Int
	)
	for col = 0; col < c && rank < r; col++ {
		for p = rank; p < r && a[p*c+col].Sign() == 0; p++ {
		}
		if p == r {
			continue
		}
		if p != rank {
			for j = 0; j < c; j++ {
				a[rank*c+j], a[p*c+j] = a[p*c+j], a[rank*c+j]
			}
		}
		pivot := a[rank*c+col]
		for i = rank + 1; i < r; i++ {
			for j = col + 1; j < c; j++ {
				t1.Mul(a[i*c+j], pivot)
				t2.Mul(a[i*c+col], a[rank*c+j])
				a[i*c+j].Quo(t1.Sub(&t1, &t2), prev)
			}
			a[i*c+col].SetInt64(0)
		}
		prev = pivot
		rank++
	}

	return rank
}
