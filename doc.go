// Package presburger is a small toolkit for integer linear constraint systems:
// exact int64 matrices, constraint systems of equalities and inequalities, and
// unimodular changes of variable basis that preserve the set of integer points.
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/     dense int64 matrices, checked arithmetic, column operations,
//	              products, exact determinant and rank
//	polyhedron/ constraint systems (coeffs·x + c == 0 / >= 0) and point tests
//	transform/  LinearTransform: column echelon factory, ApplyTo, inverse
//
// and one command:
//
//	cmd/lintransform YAML in, YAML out front end with structured logging
//
// Quick example:
//
//	m, _ := matrix.NewFromRows([][]int64{{4, 6}})
//	rank, t, _ := transform.MakeTransformToColumnEchelon(m)
//	// rank == 1, m·t == [[2, 0]]
//
// See examples/ for eliminating an equality from a constraint system.
//
//	go get github.com/katalvlaran/presburger
package presburger
