// SPDX-License-Identifier: MIT

package optimize

import (
	"math"

	"github.com/katalvlaran/sketchsolve/matrix"
)

// BFGS is a quasi-Newton method keeping a dense inverse-Hessian estimate.
// The zero value is ready to use with DefaultSettings.
type BFGS struct {
	Settings
}

// curvatureTol rejects updates whose sᵀy is not safely positive.
const curvatureTol = 1e-12

// Minimize implements Minimizer.
//
// Stage 1 (Validate): check the problem and evaluate f, ∇f at x0.
// Stage 2 (Iterate): d = −H·g, backtrack along d, update H with the BFGS
// formula when sᵀy > 0. A failed search or an uphill direction resets H to
// the identity once before giving up.
// Stage 3 (Finalize): return the best point and why the loop stopped.
//
// Complexity: O(n²) per iteration plus the gradient cost.
func (m BFGS) Minimize(p Problem, x0 []float64) (Result, error) {
	if err := p.validate(x0); err != nil {
		return Result{}, err
	}
	set := m.Settings.withDefaults()
	c := newCounted(p)

	var (
		n    = p.Dim
		x    = clone(x0)
		g    = make([]float64, n)
		gNew = make([]float64, n)
		xNew = make([]float64, n)
		s    = make([]float64, n)
		y    = make([]float64, n)
		fx   = c.value(x)
	)
	if !isFinite(fx) {
		return c.result(x, fx, StatusNonFinite, 0), nil
	}
	if n == 0 {
		return c.result(x, fx, StatusConverged, 0), nil
	}
	c.grad(x, g)

	h, err := matrix.Identity(n)
	if err != nil {
		return Result{}, err
	}

	var (
		iter    int
		d       []float64
		slope   float64
		alpha   float64
		fNew    float64
		ok      bool
		fresh   bool // H is the identity
		scaled  bool
		sy, yHy float64
		hy      []float64
		i       int
		prevF   float64
	)
	fresh = true
	for iter = 0; iter < set.MaxIterations; iter++ {
		if !allFinite(g) {
			return c.result(x, fx, StatusNonFinite, iter), nil
		}
		if fx <= set.Target || maxAbs(g) <= set.GradTol {
			return c.result(x, fx, StatusConverged, iter), nil
		}

		d, _ = h.MatVec(g)
		for i = range d {
			d[i] = -d[i]
		}
		slope = dot(g, d)
		if !(slope < 0) && !fresh {
			_ = resetIdentity(h)
			fresh = true
			for i = range d {
				d[i] = -g[i]
			}
			slope = dot(g, d)
		}

		alpha = 1
		if fresh && !scaled {
			// first steepest-descent step: move at most one unit
			alpha = math.Min(1, 1/maxAbs(g))
		}
		alpha, fNew, ok = backtrack(c, x, fx, slope, d, alpha, xNew)
		if !ok {
			if fresh {
				return c.result(x, fx, StatusLineSearchFailed, iter), nil
			}
			_ = resetIdentity(h)
			fresh = true
			continue
		}

		c.grad(xNew, gNew)
		for i = range s {
			s[i] = xNew[i] - x[i]
			y[i] = gNew[i] - g[i]
		}
		prevF = fx
		copy(x, xNew)
		copy(g, gNew)
		fx = fNew

		if prevF-fx <= set.FuncTol*(math.Abs(prevF)+set.FuncTol) {
			return c.result(x, fx, StatusConverged, iter+1), nil
		}

		sy = dot(s, y)
		if sy <= curvatureTol*math.Sqrt(dot(s, s)*dot(y, y)) {
			continue
		}
		if !scaled {
			// Shanno–Phua initial scaling H₀ = (sᵀy / yᵀy)·I
			_ = resetIdentity(h)
			for i = 0; i < n; i++ {
				_ = h.Set(i, i, sy/dot(y, y))
			}
			scaled = true
		}
		hy, _ = h.MatVec(y)
		yHy = dot(y, hy)
		// H += (sᵀy + yᵀHy)/(sᵀy)²·ssᵀ − (Hy·sᵀ + s·(Hy)ᵀ)/sᵀy
		_ = h.AddOuter((sy+yHy)/(sy*sy), s, s)
		_ = h.AddOuter(-1/sy, hy, s)
		_ = h.AddOuter(-1/sy, s, hy)
		fresh = false
	}

	return c.result(x, fx, StatusMaxIterations, iter), nil
}

// resetIdentity overwrites a square matrix with the identity.
func resetIdentity(h *matrix.Dense) error {
	n := h.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := 0.0
			if i == j {
				v = 1
			}
			if err := h.Set(i, j, v); err != nil {
				return err
			}
		}
	}

	return nil
}
