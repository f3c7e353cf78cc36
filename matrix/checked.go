// SPDX-License-Identifier: MIT

// Package matrix - checked int64 arithmetic.
//
// Purpose:
//   - Provide the single source of truth for overflow-detecting integer arithmetic.
//   - Every kernel that can grow a value (products, column operations, determinants)
//     goes through these helpers so that a result is either exact or ErrOverflow.
//
// Determinism:
//   - Pure functions; no allocation; no global state.
//
// AI-Hints:
//   - Use CheckedMulAdd for dot-product accumulation: acc + a*b with one call.
//   - FloorDiv rounds toward -Inf, so a - FloorDiv(a,b)*b always has the sign of b.

package matrix

import "math"

// CheckedAdd returns a+b or ErrOverflow when the sum does not fit in int64.
// Complexity: O(1).
func CheckedAdd(a, b int64) (int64, error) {
	s := a + b
	// Overflow iff both operands share a sign that the wrapped sum lost.
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, ErrOverflow
	}

	return s, nil
}

// CheckedSub returns a-b or ErrOverflow when the difference does not fit in int64.
// Complexity: O(1).
func CheckedSub(a, b int64) (int64, error) {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		return 0, ErrOverflow
	}

	return d, nil
}

// CheckedMul returns a*b or ErrOverflow when the product does not fit in int64.
// Complexity: O(1).
func CheckedMul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	// MinInt64 * -1 wraps to MinInt64 and survives the division test below.
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, ErrOverflow
	}
	p := a * b
	if p/b != a {
		return 0, ErrOverflow
	}

	return p, nil
}

// CheckedNeg returns -a or ErrOverflow for math.MinInt64.
// Complexity: O(1).
func CheckedNeg(a int64) (int64, error) {
	if a == math.MinInt64 {
		return 0, ErrOverflow
	}

	return -a, nil
}

// CheckedMulAdd returns acc + a*b, checking both the product and the sum.
// Complexity: O(1).
func CheckedMulAdd(acc, a, b int64) (int64, error) {
	p, err := CheckedMul(a, b)
	if err != nil {
		return 0, err
	}

	return CheckedAdd(acc, p)
}

// FloorDiv returns ⌊a/b⌋ (rounding toward negative infinity).
//
// Errors:
//   - ErrDivideByZero when b == 0.
//   - ErrOverflow for math.MinInt64 / -1.
//
// Complexity: O(1).
func FloorDiv(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	if a == math.MinInt64 && b == -1 {
		return 0, ErrOverflow
	}
	q := a / b
	// Go truncates toward zero; step down when the signs differ and a remainder exists.
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q, nil
}

// GCD returns the non-negative greatest common divisor of a and b.
// GCD(0, 0) is 0.
//
// Errors:
//   - ErrOverflow when the result would be 2^63 (both inputs in {0, MinInt64}).
//
// Complexity: O(log min(|a|,|b|)).
func GCD(a, b int64) (int64, error) {
	// Work on the remainders directly; the sign is fixed at the end.
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return CheckedNeg(a)
	}

	return a, nil
}

// Dot returns Σ a[k]*b[k] with checked accumulation.
//
// Errors:
//   - ErrDimensionMismatch when len(a) != len(b).
//   - ErrOverflow on any unrepresentable partial sum or product.
//
// Complexity: O(n).
func Dot(a, b []int64) (int64, error) {
	if len(a) != len(b) {
		return 0, matrixErrorf(opDot, ErrDimensionMismatch)
	}
	var (
		acc int64
		err error
	)
	for k := range a {
		if a[k] == 0 || b[k] == 0 {
			continue
		}
		if acc, err = CheckedMulAdd(acc, a[k], b[k]); err != nil {
			return 0, matrixErrorf(opDot, err)
		}
	}

	return acc, nil
}
