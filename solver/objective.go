// SPDX-License-Identifier: MIT

package solver

import (
	"math"

	"github.com/katalvlaran/sketchsolve/constraint"
	"github.com/katalvlaran/sketchsolve/geom"
)

// Objective returns f(x): write x[i] into free[i], then sum the residuals of
// cs. A NaN or infinite sum is reported as +Inf so minimizers treat it as a
// rejected point.
//
// free must come from FreeParams over the same Store (or otherwise hold only
// valid handles); len(x) must equal len(free). An unknown handle panics.
func Objective(s *geom.Store, cs []constraint.Constraint, free []geom.ParamID) func(x []float64) float64 {
	return func(x []float64) float64 {
		for i, id := range free {
			s.Assign(id, x[i])
		}

		return finiteOrInf(constraint.Total(s, cs))
	}
}

func finiteOrInf(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return math.Inf(1)
	}

	return v
}
