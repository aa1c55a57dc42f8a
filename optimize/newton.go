// SPDX-License-Identifier: MIT

package optimize

import (
	"errors"
	"math"

	"github.com/katalvlaran/sketchsolve/matrix"
)

// Newton is a damped Newton method on a finite-difference Hessian
// (Levenberg–Marquardt style): each iteration solves (H + λI)·d = −g and
// accepts the step only if f decreases, shrinking λ on success and growing
// it on failure.
type Newton struct {
	Settings

	// Damping is the initial λ. Zero selects 1e-3.
	Damping float64
}

const (
	maxDamping   = 1e12
	dampingRatio = 10
)

// Minimize implements Minimizer.
// Complexity: n+1 gradient evaluations and one O(n³) solve per iteration.
func (m Newton) Minimize(p Problem, x0 []float64) (Result, error) {
	if err := p.validate(x0); err != nil {
		return Result{}, err
	}
	set := m.Settings.withDefaults()
	c := newCounted(p)

	var (
		n      = p.Dim
		x      = clone(x0)
		g      = make([]float64, n)
		xNew   = make([]float64, n)
		fx     = c.value(x)
		lambda = m.Damping
	)
	if lambda <= 0 {
		lambda = 1e-3
	}
	if !isFinite(fx) {
		return c.result(x, fx, StatusNonFinite, 0), nil
	}
	if n == 0 {
		return c.result(x, fx, StatusConverged, 0), nil
	}

	var (
		iter     int
		i        int
		hess     *matrix.Dense
		d        []float64
		fNew     float64
		prevF    float64
		accepted bool
		err      error
	)
	for iter = 0; iter < set.MaxIterations; iter++ {
		c.grad(x, g)
		if !allFinite(g) {
			return c.result(x, fx, StatusNonFinite, iter), nil
		}
		if fx <= set.Target || maxAbs(g) <= set.GradTol {
			return c.result(x, fx, StatusConverged, iter), nil
		}
		if hess, err = hessian(c, x, g); err != nil {
			return Result{}, err
		}

		accepted = false
		for lambda <= maxDamping {
			d, err = dampedStep(hess, g, lambda)
			if err == nil {
				for i = range x {
					xNew[i] = x[i] + d[i]
				}
				fNew = c.value(xNew)
				if isFinite(fNew) && fNew < fx {
					accepted = true
					break
				}
			} else if !errors.Is(err, matrix.ErrSingular) {
				return Result{}, err
			}
			lambda *= dampingRatio
		}
		if !accepted {
			return c.result(x, fx, StatusLineSearchFailed, iter), nil
		}
		lambda = math.Max(lambda/dampingRatio, 1e-12)

		prevF = fx
		copy(x, xNew)
		fx = fNew
		if prevF-fx <= set.FuncTol*(math.Abs(prevF)+set.FuncTol) {
			return c.result(x, fx, StatusConverged, iter+1), nil
		}
	}

	return c.result(x, fx, StatusMaxIterations, iter), nil
}

// hessian approximates ∇²f at x by forward differences of the gradient and
// symmetrizes the result. g is ∇f(x).
func hessian(c *counted, x, g []float64) (*matrix.Dense, error) {
	n := len(x)
	h, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		gp   = make([]float64, n)
		i, j int
		xj   float64
		step float64
	)
	for j = 0; j < n; j++ {
		xj = x[j]
		step = math.Sqrt(DefaultForwardStep) * math.Max(1, math.Abs(xj))
		x[j] = xj + step
		c.grad(x, gp)
		x[j] = xj
		for i = 0; i < n; i++ {
			_ = h.Set(i, j, (gp[i]-g[i])/step)
		}
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			a, _ := h.At(i, j)
			b, _ := h.At(j, i)
			_ = h.Set(i, j, (a+b)/2)
			_ = h.Set(j, i, (a+b)/2)
		}
	}

	return h, nil
}

// dampedStep solves (H + λI)·d = −g.
func dampedStep(h *matrix.Dense, g []float64, lambda float64) ([]float64, error) {
	a := h.Clone()
	if err := a.AddDiagonal(lambda); err != nil {
		return nil, err
	}
	rhs := make([]float64, len(g))
	for i := range g {
		rhs[i] = -g[i]
	}

	return matrix.Solve(a, rhs)
}
