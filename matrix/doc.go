// SPDX-License-Identifier: MIT

// Package matrix provides an exact, dense integer matrix for lattice and
// polyhedral computations.
//
// The matrix package provides:
//
//   - Dense: a row-major int64 matrix with bounds-checked accessors.
//   - Elementary column operations (swap, negate, add a scaled column), the
//     building blocks of unimodular transforms.
//   - Products (Mul, MatVec, PreMultiplyWithRow, PostMultiplyWithColumn),
//     Transpose and an exact fraction-free Determinant.
//   - Checked int64 arithmetic (CheckedAdd, CheckedMul, ...) plus FloorDiv
//     and GCD helpers shared by the other packages of this module.
//
// Numeric policy:
//
//	Every arithmetic step that can grow a value is checked. An operation whose
//	exact result does not fit in int64 fails with ErrOverflow; values never
//	wrap silently. In-place operations that fail leave the matrix unchanged.
//
// Shapes:
//
//	Zero-sized shapes (0×n, n×0, 0×0) are legal. They arise naturally as
//	degenerate inputs of elimination algorithms.
//
// See the examples in this package and in transform for usage patterns.
package matrix
