// SPDX-License-Identifier: MIT

package solver_test

import (
	"fmt"

	"github.com/katalvlaran/sketchsolve/constraint"
	"github.com/katalvlaran/sketchsolve/geom"
	"github.com/katalvlaran/sketchsolve/solver"
)

// ExampleSolve levels a line whose right end may only move vertically.
func ExampleSolve() {
	s := geom.NewStore()
	l := geom.NewLine(s.FixedPoint(0, 1), s.Point(2, 3, false, true))

	e, err := solver.Solve(s, 1e-6, constraint.Horizontal(l))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("solved: %t\n", e <= 1e-6)
	fmt.Printf("P2 = (%.3f, %.3f)\n", s.Value(l.P2.X), s.Value(l.P2.Y))
	// Output:
	// solved: true
	// P2 = (2.000, 1.000)
}
