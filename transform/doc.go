// SPDX-License-Identifier: MIT

// Package transform implements unimodular linear transforms over the integers
// and their application to constraint systems.
//
// What & Why:
//
//	A LinearTransform wraps a square integer matrix T with det(T) = ±1. Because
//	T⁻¹ is again an integer matrix, the change of variables x = T·y is a
//	bijection of the integer lattice: rewriting every constraint row v of a
//	polyhedron as v·T keeps exactly the same integer (and rational) solutions,
//	re-expressed in the new basis.
//
// Factory:
//
//	MakeTransformToColumnEchelon(M) returns (rank, T) such that M·T is in column
//	echelon form: the topmost non-zero row of each non-zero column lies strictly
//	below that of the previous column, all-zero columns trail, and rank counts
//	the non-zero columns. T is built only from elementary column operations
//	(swap, negate, add an integer multiple), so it is unimodular by construction.
//
// Point duality:
//
//	If y satisfies T.ApplyTo(P) then T.PostMultiplyWithColumn(y) satisfies P,
//	and vice versa through the inverse.
//
// Concurrency:
//
//	LinearTransform values are immutable after construction. Distinct goroutines
//	may call every method on a shared value without synchronization.
//
// Numeric policy:
//
//	Arithmetic is exact. ColumnEchelon runs on checked int64 and retries on
//	big.Int when an intermediate overflows, so only results must fit in
//	int64; a result entry beyond int64 fails with ErrOverflow. Full-rank n×n
//	inputs with |a| <= A are safe while (√n·A)^n and n·(√(n-1)·A)^(n-1) stay
//	below 2^63, which covers n=10 with A=10 and n=8 with A=30.
package transform
