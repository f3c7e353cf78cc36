// SPDX-License-Identifier: MIT
// Package polyhedron: sentinel error set.

package polyhedron

import "errors"

var (
	// ErrDimensionMismatch indicates a row whose length is not NumVars()+1, or a
	// point whose length is not NumVars().
	ErrDimensionMismatch = errors.New("polyhedron: dimension mismatch")

	// ErrUnknownKind indicates a constraint kind other than Equality or Inequality.
	ErrUnknownKind = errors.New("polyhedron: unknown constraint kind")

	// ErrOutOfRange indicates a constraint index outside [0, NumConstraints()).
	ErrOutOfRange = errors.New("polyhedron: index out of range")

	// ErrInvalidDimensions indicates a negative variable count.
	ErrInvalidDimensions = errors.New("polyhedron: variable count must be >= 0")
)
