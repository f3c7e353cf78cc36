// SPDX-License-Identifier: MIT
// Package transform_test contains test helpers
//
// Purpose:
//   • Deterministic fixtures (fixed seeds) for property checks.
//   • Structural assertions shared by the echelon, inverse and apply tests.

package transform_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/presburger/matrix"
	"github.com/katalvlaran/presburger/polyhedron"
	"github.com/katalvlaran/presburger/transform"
	"github.com/stretchr/testify/require"
)

// MustFromRows builds a *Dense from literal rows or fails the test.
func MustFromRows(t testing.TB, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// RandomDense returns an r×c matrix with entries in [-bound, bound].
// With zeroEvery > 0, roughly one entry in zeroEvery is forced to zero so that
// rank-deficient and sparse shapes show up.
func RandomDense(t testing.TB, seed int64, r, c int, bound int64, zeroEvery int) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := rng.Int63n(2*bound+1) - bound
			if zeroEvery > 0 && rng.Intn(zeroEvery) == 0 {
				v = 0
			}
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// RequireColumnEchelon asserts the column echelon layout of m with exactly
// rank leading non-zero columns.
func RequireColumnEchelon(t testing.TB, m *matrix.Dense, rank int) {
	t.Helper()
	prev := -1
	for j := 0; j < m.Cols(); j++ {
		col, err := m.Col(j)
		require.NoError(t, err)
		pivot := -1
		for i, v := range col {
			if v != 0 {
				pivot = i
				break
			}
		}
		if j >= rank {
			require.Equal(t, -1, pivot, "column %d must be zero (rank %d)\n%s", j, rank, m)
			continue
		}
		require.NotEqual(t, -1, pivot, "column %d must be non-zero (rank %d)\n%s", j, rank, m)
		require.Greater(t, pivot, prev, "pivot rows must strictly increase at column %d\n%s", j, m)
		require.Positive(t, col[pivot], "pivot of column %d must be positive\n%s", j, m)
		for k := 0; k < j; k++ {
			v, err := m.At(pivot, k)
			require.NoError(t, err)
			require.True(t, v >= 0 && v < col[pivot],
				"entry (%d,%d) = %d must lie in [0, %d)\n%s", pivot, k, v, col[pivot], m)
		}
		prev = pivot
	}
}

// RequireBigProduct asserts a·b == want using exact big.Int arithmetic, so the
// check itself cannot overflow.
func RequireBigProduct(t testing.TB, a, b, want *matrix.Dense) {
	t.Helper()
	require.Equal(t, a.Cols(), b.Rows())
	require.Equal(t, a.Rows(), want.Rows())
	require.Equal(t, b.Cols(), want.Cols())
	av, bv, wv := matrix.BigEntries(a), matrix.BigEntries(b), matrix.BigEntries(want)
	var acc, prod big.Int
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			acc.SetInt64(0)
			for k := 0; k < a.Cols(); k++ {
				acc.Add(&acc, prod.Mul(av[i*a.Cols()+k], bv[k*b.Cols()+j]))
			}
			require.Zero(t, acc.Cmp(wv[i*want.Cols()+j]), "entry (%d,%d): %s != %s", i, j, &acc, wv[i*want.Cols()+j])
		}
	}
}

// RequireUnimodular asserts det(T) = ±1 and T·T⁻¹ = T⁻¹·T = I.
func RequireUnimodular(t testing.TB, lt *transform.LinearTransform) {
	t.Helper()
	det, err := lt.Determinant()
	require.NoError(t, err)
	require.Contains(t, []int64{-1, 1}, det)

	inv, err := lt.Inverse()
	require.NoError(t, err)
	I, err := matrix.NewIdentity(lt.Size())
	require.NoError(t, err)
	left, err := matrix.Mul(lt.Matrix(), inv.Matrix())
	require.NoError(t, err)
	require.True(t, left.Equal(I), "T·T⁻¹ != I:\n%s", left)
	right, err := matrix.Mul(inv.Matrix(), lt.Matrix())
	require.NoError(t, err)
	require.True(t, right.Equal(I), "T⁻¹·T != I:\n%s", right)
}

// RandomPolyhedron returns a system over n vars with a few equalities and
// inequalities, coefficients in [-3, 3] and constants in [-6, 6].
func RandomPolyhedron(t testing.TB, seed int64, n, eqs, ineqs int) *polyhedron.Polyhedron {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	p, err := polyhedron.New(n)
	require.NoError(t, err)
	row := func() []int64 {
		r := make([]int64, n+1)
		for k := 0; k < n; k++ {
			r[k] = rng.Int63n(7) - 3
		}
		r[n] = rng.Int63n(13) - 6

		return r
	}
	for i := 0; i < eqs; i++ {
		require.NoError(t, p.AddEquality(row()))
	}
	for i := 0; i < ineqs; i++ {
		require.NoError(t, p.AddInequality(row()))
	}

	return p
}

// BoxPoints enumerates every integer point of [-b, b]^n in lexicographic order.
func BoxPoints(n int, b int64) [][]int64 {
	pts := [][]int64{{}}
	for d := 0; d < n; d++ {
		var next [][]int64
		for _, p := range pts {
			for v := -b; v <= b; v++ {
				q := make([]int64, len(p), len(p)+1)
				copy(q, p)
				next = append(next, append(q, v))
			}
		}
		pts = next
	}

	return pts
}
