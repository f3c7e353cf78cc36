// SPDX-License-Identifier: MIT

// Package polyhedron models a system of linear integer constraints over n
// variables: an ordered list of rows, each an equality (= 0) or an
// inequality (>= 0).
//
// A row holds n+1 integers: n variable coefficients followed by the constant
// term, so the row [a0, ..., a(n-1), c] reads a0*x0 + ... + a(n-1)*x(n-1) + c.
//
// Polyhedron values are plain data. Every accessor returns copies, and
// operations that derive a new system (Clone, or transform.ApplyTo) never
// touch the receiver.
package polyhedron
