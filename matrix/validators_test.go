// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators and the
// thin API facades.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/presburger/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) matrix.Matrix {
		m, err := matrix.NewZeros(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"same shape", zeros(2, 3), zeros(2, 3), nil},
		{"rows differ", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"cols differ", zeros(2, 3), zeros(2, 2), matrix.ErrDimensionMismatch},
		{"both empty", zeros(0, 0), zeros(0, 0), nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidateSquare(t *testing.T) {
	t.Parallel()

	assert.NoError(t, matrix.ValidateSquare(MustIdentity(t, 3)))
	assert.ErrorIs(t, matrix.ValidateSquare(MustFromRows(t, [][]int64{{1, 2}})), matrix.ErrNonSquare)

	var typedNil *matrix.Dense
	assert.ErrorIs(t, matrix.ValidateSquareNonNil(typedNil), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateSquareNonNil(MustFromRows(t, [][]int64{{1}, {2}})), matrix.ErrNonSquare)
	assert.NoError(t, matrix.ValidateSquareNonNil(MustIdentity(t, 0)))
}

func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	assert.NoError(t, matrix.ValidateVecLen([]int64{1, 2}, 2))
	assert.NoError(t, matrix.ValidateVecLen(nil, 0))
	assert.ErrorIs(t, matrix.ValidateVecLen(nil, 1), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, matrix.ValidateVecLen([]int64{1, 2, 3}, 2), matrix.ErrDimensionMismatch)
}

// TestFacades checks that the aliases delegate to their canonical kernels.
func TestFacades(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]int64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]int64{{0, 1}, {1, 0}})

	p, err := matrix.Product(a, b)
	require.NoError(t, err)
	m, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.True(t, p.Equal(m))

	tr, err := matrix.T(a)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{1, 3}, {2, 4}}, tr.ToRows())

	c := matrix.CloneMatrix(a)
	require.NoError(t, c.Set(0, 0, 9))
	assert.Equal(t, int64(1), MustAt(t, a, 0, 0), "clone must be independent")
}
