// SPDX-License-Identifier: MIT

// Package transform - LinearTransform construction, accessors and application.
//
// Purpose:
//   - Own exactly one square unimodular matrix; expose no mutation API.
//   - Remap constraint rows (v ↦ v·T) and points (c ↦ T·c).
//
// Determinism:
//   - Every method is a pure function of the receiver and its arguments.

package transform

import (
	"fmt"

	"github.com/katalvlaran/presburger/matrix"
	"github.com/katalvlaran/presburger/polyhedron"
)

// Operation name constants for unified error wrapping.
const (
	opNew                    = "New"
	opNewFromCopy            = "NewFromCopy"
	opApplyTo                = "ApplyTo"
	opPreMultiplyWithRow     = "PreMultiplyWithRow"
	opPostMultiplyWithColumn = "PostMultiplyWithColumn"
	opColumnEchelon          = "ColumnEchelon"
	opInverse                = "Inverse"
	opCompose                = "Compose"
)

// transformErrorf wraps err with an operation tag, preserving it for errors.Is.
func transformErrorf(tag string, err error) error {
	return fmt.Errorf("transform.%s: %w", tag, err)
}

// LinearTransform is an immutable n×n unimodular integer matrix T.
// The zero value is not usable; build one with New, NewFromCopy, Identity or
// MakeTransformToColumnEchelon.
type LinearTransform struct {
	m *matrix.Dense // owned exclusively; never handed out
}

// New takes ownership of m and wraps it as a transform.
// MAIN DESCRIPTION:
//   - Transfer-of-ownership constructor: no copy is made. The caller must not
//     read or write m after a successful call.
//
// Implementation:
//   - Stage 1: validate m is non-nil and square.
//   - Stage 2: compute det(m) exactly; demand ±1.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNotUnimodular,
//     ErrOverflow (determinant intermediates exceed int64).
//
// Complexity:
//   - Time O(n^3) for the determinant, Space O(n^2) scratch.
func New(m *matrix.Dense) (*LinearTransform, error) {
	if err := validateUnimodular(m); err != nil {
		return nil, transformErrorf(opNew, err)
	}

	return newOwned(m), nil
}

// NewFromCopy wraps an independent copy of m; the caller keeps m.
// Errors and complexity are those of New plus an O(n^2) copy.
func NewFromCopy(m *matrix.Dense) (*LinearTransform, error) {
	if err := validateUnimodular(m); err != nil {
		return nil, transformErrorf(opNewFromCopy, err)
	}

	return newOwned(m.CloneDense()), nil
}

// Identity returns the n×n identity transform. n must be >= 0.
func Identity(n int) (*LinearTransform, error) {
	I, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, transformErrorf(opNew, err)
	}

	return newOwned(I), nil
}

// newOwned wraps a matrix already known to be square and unimodular.
// Callers inside the package guarantee the invariant by construction.
func newOwned(m *matrix.Dense) *LinearTransform { return &LinearTransform{m: m} }

// validateUnimodular runs NotNil → Square → det ∈ {-1, 1}.
func validateUnimodular(m *matrix.Dense) error {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return err
	}
	det, err := matrix.Determinant(m)
	if err != nil {
		return err
	}
	if det != 1 && det != -1 {
		return fmt.Errorf("det = %d: %w", det, ErrNotUnimodular)
	}

	return nil
}

// Size returns n, the number of variables the transform acts on.
func (t *LinearTransform) Size() int { return t.m.Rows() }

// Matrix returns a copy of T.
func (t *LinearTransform) Matrix() *matrix.Dense { return t.m.CloneDense() }

// Determinant returns det(T), which is always 1 or -1.
func (t *LinearTransform) Determinant() (int64, error) { return matrix.Determinant(t.m) }

// Equal reports whether both transforms hold identical matrices.
func (t *LinearTransform) Equal(o *LinearTransform) bool {
	return o != nil && t.m.Equal(o.m)
}

// String renders T row by row.
func (t *LinearTransform) String() string { return t.m.String() }

// PreMultiplyWithRow interprets v as a row vector and returns v·T.
// Used to remap one constraint's coefficients.
//
// Errors:
//   - ErrDimensionMismatch when len(v) != Size(); ErrOverflow.
func (t *LinearTransform) PreMultiplyWithRow(v []int64) ([]int64, error) {
	out, err := matrix.PreMultiplyWithRow(t.m, v)
	if err != nil {
		return nil, transformErrorf(opPreMultiplyWithRow, err)
	}

	return out, nil
}

// PostMultiplyWithColumn interprets c as a column vector and returns T·c.
// It maps a point of T.ApplyTo(P) to the corresponding point of P.
//
// Errors:
//   - ErrDimensionMismatch when len(c) != Size(); ErrOverflow.
func (t *LinearTransform) PostMultiplyWithColumn(c []int64) ([]int64, error) {
	out, err := matrix.PostMultiplyWithColumn(t.m, c)
	if err != nil {
		return nil, transformErrorf(opPostMultiplyWithColumn, err)
	}

	return out, nil
}

// ApplyTo returns a new polyhedron with the row v·T for every row v of p.
// MAIN DESCRIPTION:
//   - Change of variable basis x = T·y over the whole constraint system.
//
// Implementation:
//   - Stage 1: validate p is non-nil and p.NumVars() == Size().
//   - Stage 2: for each row in order: coefficients ↦ coefficients·T, constant
//     carried unchanged, Kind preserved.
//
// Behavior highlights:
//   - p is never mutated; the result has the same row count, order and kinds.
//   - Because T is unimodular the result has exactly the same integer
//     solutions as p, expressed in y.
//
// Errors:
//   - ErrNilPolyhedron, ErrDimensionMismatch, ErrOverflow.
//
// Complexity:
//   - Time O(rows·n^2), Space O(rows·n).
func (t *LinearTransform) ApplyTo(p *polyhedron.Polyhedron) (*polyhedron.Polyhedron, error) {
	if p == nil {
		return nil, transformErrorf(opApplyTo, ErrNilPolyhedron)
	}
	n := t.Size()
	if p.NumVars() != n {
		return nil, transformErrorf(opApplyTo,
			fmt.Errorf("polyhedron has %d vars, transform size %d: %w", p.NumVars(), n, ErrDimensionMismatch))
	}
	out, err := polyhedron.New(n)
	if err != nil {
		return nil, transformErrorf(opApplyTo, err)
	}
	for i, c := range p.Constraints() {
		coeffs, err := matrix.PreMultiplyWithRow(t.m, c.Coeffs[:n])
		if err != nil {
			return nil, transformErrorf(opApplyTo, fmt.Errorf("row %d: %w", i, err))
		}
		coeffs = append(coeffs, c.Constant())
		if err = out.AddConstraint(polyhedron.Constraint{Kind: c.Kind, Coeffs: coeffs}); err != nil {
			return nil, transformErrorf(opApplyTo, fmt.Errorf("row %d: %w", i, err))
		}
	}

	return out, nil
}
