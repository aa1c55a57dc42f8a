// SPDX-License-Identifier: MIT

package solver_test

import (
	"testing"

	"github.com/katalvlaran/sketchsolve/geom"
	"github.com/katalvlaran/sketchsolve/solver"
)

func BenchmarkSquareAroundCircle(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := geom.NewStore()
		cs := squareAroundCircle(s)
		if _, err := solver.Solve(s, 1e-4, cs...); err != nil {
			b.Fatal(err)
		}
	}
}
