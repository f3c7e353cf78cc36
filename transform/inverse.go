// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"github.com/katalvlaran/presburger/matrix"
)

// Inverse returns T⁻¹, which is again an integer unimodular transform.
// MAIN DESCRIPTION:
//   - Reuses the column-echelon factory on T itself.
//
// Implementation:
//   - Stage 1: H = T·U from ColumnEchelon(T). T has full rank, so H is lower
//     triangular with positive pivots; det(H) = ±1 forces a unit diagonal, and
//     the reduction of entries left of each pivot into [0, 1) clears the rest.
//   - Stage 2: H = I means U = T⁻¹.
//
// Errors:
//   - ErrOverflow when an entry of T⁻¹ exceeds int64.
//
// Complexity:
//   - That of ColumnEchelon on an n×n input.
func (t *LinearTransform) Inverse() (*LinearTransform, error) {
	e, err := ColumnEchelon(t.m)
	if err != nil {
		return nil, transformErrorf(opInverse, err)
	}
	n := t.Size()
	if e.Rank != n {
		return nil, transformErrorf(opInverse, ErrNotUnimodular)
	}
	I, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, transformErrorf(opInverse, err)
	}
	if !e.Reduced.Equal(I) {
		return nil, transformErrorf(opInverse,
			fmt.Errorf("echelon form is not the identity: %w", ErrNotUnimodular))
	}

	return e.Transform, nil
}

// Compose returns the transform T·S. Applying the result to a polyhedron
// equals applying T and then S: (v·T)·S = v·(T·S).
//
// Errors:
//   - ErrNilMatrix (nil s), ErrDimensionMismatch (sizes differ), ErrOverflow.
func (t *LinearTransform) Compose(s *LinearTransform) (*LinearTransform, error) {
	if s == nil {
		return nil, transformErrorf(opCompose, ErrNilMatrix)
	}
	if s.Size() != t.Size() {
		return nil, transformErrorf(opCompose,
			fmt.Errorf("sizes %d and %d: %w", t.Size(), s.Size(), ErrDimensionMismatch))
	}
	ts, err := matrix.Mul(t.m, s.m)
	if err != nil {
		return nil, transformErrorf(opCompose, err)
	}

	return newOwned(ts), nil
}
