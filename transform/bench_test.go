// SPDX-License-Identifier: MIT
package transform_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/presburger/transform"
)

func BenchmarkColumnEchelon(b *testing.B) {
	for _, n := range []int{4, 8, 12} {
		M := RandomDense(b, 1, n, n, 3, 3)
		for _, policy := range []transform.PivotPolicy{transform.PivotLeftmost, transform.PivotSmallestMagnitude} {
			b.Run(fmt.Sprintf("%dx%d/%v", n, n, policy), func(b *testing.B) {
				opt := transform.WithPivotPolicy(policy)
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := transform.ColumnEchelon(M, opt); err != nil {
						b.Skip(err)
					}
				}
			})
		}
	}
}

func BenchmarkApplyTo(b *testing.B) {
	e, err := transform.ColumnEchelon(RandomDense(b, 2, 4, 6, 3, 3))
	if err != nil {
		b.Fatal(err)
	}
	p := RandomPolyhedron(b, 2, 6, 4, 16)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Transform.ApplyTo(p); err != nil {
			b.Fatal(err)
		}
	}
}
