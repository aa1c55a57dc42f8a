// SPDX-License-Identifier: MIT

package optimize

import "math"

// GradientDescent is steepest descent with a backtracking line search whose
// initial step grows after every accepted step. It is slow on the narrow
// valleys sketches produce and serves as a baseline.
type GradientDescent struct {
	Settings
}

// Minimize implements Minimizer.
// Complexity: O(n) per iteration plus the gradient cost.
func (m GradientDescent) Minimize(p Problem, x0 []float64) (Result, error) {
	if err := p.validate(x0); err != nil {
		return Result{}, err
	}
	set := m.Settings.withDefaults()
	c := newCounted(p)

	var (
		n    = p.Dim
		x    = clone(x0)
		g    = make([]float64, n)
		d    = make([]float64, n)
		xNew = make([]float64, n)
		fx   = c.value(x)
	)
	if !isFinite(fx) {
		return c.result(x, fx, StatusNonFinite, 0), nil
	}
	if n == 0 {
		return c.result(x, fx, StatusConverged, 0), nil
	}

	var (
		iter  int
		i     int
		alpha float64
		fNew  float64
		ok    bool
		prevF float64
	)
	c.grad(x, g)
	alpha = math.Min(1, 1/maxAbs(g))
	for iter = 0; iter < set.MaxIterations; iter++ {
		if !allFinite(g) {
			return c.result(x, fx, StatusNonFinite, iter), nil
		}
		if fx <= set.Target || maxAbs(g) <= set.GradTol {
			return c.result(x, fx, StatusConverged, iter), nil
		}
		for i = range g {
			d[i] = -g[i]
		}
		alpha, fNew, ok = backtrack(c, x, fx, -dot(g, g), d, alpha, xNew)
		if !ok {
			return c.result(x, fx, StatusLineSearchFailed, iter), nil
		}
		prevF = fx
		copy(x, xNew)
		fx = fNew
		if prevF-fx <= set.FuncTol*(math.Abs(prevF)+set.FuncTol) {
			return c.result(x, fx, StatusConverged, iter+1), nil
		}
		c.grad(x, g)
		alpha *= 2
	}

	return c.result(x, fx, StatusMaxIterations, iter), nil
}
