// SPDX-License-Identifier: MIT
// Package transform: sentinel error set.
// Sentinels shared with package matrix are aliases, so callers may match
// either name with errors.Is.

package transform

import (
	"errors"

	"github.com/katalvlaran/presburger/matrix"
)

var (
	// ErrNilMatrix indicates a nil matrix was passed to a constructor or factory.
	ErrNilMatrix = matrix.ErrNilMatrix

	// ErrNonSquare signals a non-square matrix given to a constructor.
	ErrNonSquare = matrix.ErrNonSquare

	// ErrDimensionMismatch signals a vector, polyhedron or transform whose size
	// differs from the receiver's size.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrOverflow signals an intermediate value that does not fit in int64.
	ErrOverflow = matrix.ErrOverflow

	// ErrNotUnimodular signals a square matrix whose determinant is not ±1.
	ErrNotUnimodular = errors.New("transform: matrix is not unimodular")

	// ErrNilPolyhedron indicates a nil polyhedron was passed to ApplyTo.
	ErrNilPolyhedron = errors.New("transform: nil polyhedron")
)
