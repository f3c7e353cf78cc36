// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/presburger/matrix"
)

// ExampleDense_AddScaledColumn shows one Euclidean elimination step on columns.
func ExampleDense_AddScaledColumn() {
	m, _ := matrix.NewFromRows([][]int64{
		{4, 6},
		{1, 0},
	})
	// col1 -= 1*col0 leaves the remainder 6 mod 4 in the first row.
	_ = m.AddScaledColumn(0, 1, -1)
	fmt.Print(m)
	// Output:
	// [4, 2]
	// [1, -1]
}

// ExampleDeterminant prints the exact determinant of a unimodular matrix.
func ExampleDeterminant() {
	m, _ := matrix.NewFromRows([][]int64{
		{2, 3},
		{1, 2},
	})
	det, _ := matrix.Determinant(m)
	fmt.Println(det)
	// Output:
	// 1
}

// ExampleCheckedMul shows that overflow is reported, never wrapped.
func ExampleCheckedMul() {
	_, err := matrix.CheckedMul(math.MaxInt64, 2)
	fmt.Println(errors.Is(err, matrix.ErrOverflow))
	// Output:
	// true
}
