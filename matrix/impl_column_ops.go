// SPDX-License-Identifier: MIT

// Package matrix - elementary column operations.
//
// Purpose:
//   - Provide the three elementary unimodular column operations used by
//     integer elimination: swap, negate, and add an integer multiple of one
//     column to another.
//   - Each operation on M equals right-multiplication M·E by an elementary
//     matrix E with det(E) = ±1.
//
// Behavior & Determinism:
//   - In-place on the receiver; fixed top-to-bottom row order.
//   - All-or-nothing: when a checked step overflows, the receiver is left unchanged.

package matrix

import "fmt"

const (
	opSwapColumns     = "SwapColumns"
	opNegateColumn    = "NegateColumn"
	opAddScaledColumn = "AddScaledColumn"
)

// checkCol validates a column index for the elementary operations.
func (m *Dense) checkCol(op string, j int) error {
	if j < 0 || j >= m.c {
		return fmt.Errorf("Dense.%s: column %d: %w", op, j, ErrOutOfRange)
	}

	return nil
}

// SwapColumns exchanges columns i and j in place. Swapping a column with
// itself is a no-op.
//
// Errors:
//   - ErrOutOfRange for an invalid column index.
//
// Complexity:
//   - Time O(r), Space O(1).
func (m *Dense) SwapColumns(i, j int) error {
	if err := m.checkCol(opSwapColumns, i); err != nil {
		return err
	}
	if err := m.checkCol(opSwapColumns, j); err != nil {
		return err
	}
	if i == j {
		return nil
	}
	var base int
	for row := 0; row < m.r; row++ {
		base = row * m.c
		m.data[base+i], m.data[base+j] = m.data[base+j], m.data[base+i]
	}

	return nil
}

// NegateColumn replaces column j with its negation in place.
//
// Errors:
//   - ErrOutOfRange for an invalid column index.
//   - ErrOverflow when the column holds math.MinInt64 (receiver unchanged).
//
// Complexity:
//   - Time O(r), Space O(1).
func (m *Dense) NegateColumn(j int) error {
	if err := m.checkCol(opNegateColumn, j); err != nil {
		return err
	}
	// Validation pass first so that a failure leaves the column untouched.
	var (
		row int
		err error
	)
	for row = 0; row < m.r; row++ {
		if _, err = CheckedNeg(m.data[row*m.c+j]); err != nil {
			return fmt.Errorf("Dense.%s(%d): row %d: %w", opNegateColumn, j, row, err)
		}
	}
	for row = 0; row < m.r; row++ {
		m.data[row*m.c+j] = -m.data[row*m.c+j]
	}

	return nil
}

// AddScaledColumn performs col[dst] += scale * col[src] in place.
// MAIN DESCRIPTION:
//   - The integer-multiple column addition of Euclidean elimination.
//
// Implementation:
//   - Stage 1: validate indices; src == dst is rejected (not unimodular in general).
//   - Stage 2: compute every new entry with checked arithmetic into a scratch column.
//   - Stage 3: commit the scratch column only when every entry succeeded.
//
// Errors:
//   - ErrOutOfRange for an invalid column index.
//   - ErrBadShape when src == dst.
//   - ErrOverflow when any new entry does not fit in int64 (receiver unchanged).
//
// Complexity:
//   - Time O(r), Space O(r).
func (m *Dense) AddScaledColumn(src, dst int, scale int64) error {
	if err := m.checkCol(opAddScaledColumn, src); err != nil {
		return err
	}
	if err := m.checkCol(opAddScaledColumn, dst); err != nil {
		return err
	}
	if src == dst {
		return fmt.Errorf("Dense.%s(%d,%d): %w", opAddScaledColumn, src, dst, ErrBadShape)
	}
	if scale == 0 || m.r == 0 {
		return nil
	}
	scratch := make([]int64, m.r)
	var (
		row, base int
		err       error
	)
	for row = 0; row < m.r; row++ {
		base = row * m.c
		if scratch[row], err = CheckedMulAdd(m.data[base+dst], scale, m.data[base+src]); err != nil {
			return fmt.Errorf("Dense.%s(%d,%d,%d): row %d: %w", opAddScaledColumn, src, dst, scale, row, err)
		}
	}
	for row = 0; row < m.r; row++ {
		m.data[row*m.c+dst] = scratch[row]
	}

	return nil
}
