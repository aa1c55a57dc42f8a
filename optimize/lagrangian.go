// SPDX-License-Identifier: MIT

package optimize

import "math"

// AugmentedLagrangian enforces the box bounds of a Problem by turning each
// finite bound into an inequality constraint cᵢ(x) ≤ 0 and minimizing the
// Powell–Hestenes–Rockafellar augmented Lagrangian
//
//	L(x) = f(x) + 1/(2ρ)·Σ [max(0, μᵢ + ρ·cᵢ(x))² − μᵢ²]
//
// with the Inner method, updating μᵢ ← max(0, μᵢ + ρ·cᵢ) and growing ρ while
// the violation does not shrink fast enough.
//
// Without finite bounds it is exactly one call to Inner.
type AugmentedLagrangian struct {
	// Inner minimizes each subproblem. Nil selects BFGS.
	Inner Minimizer

	// Settings are passed to the default inner BFGS. MaxIterations also
	// bounds the number of outer iterations when OuterIterations is zero.
	Settings

	// OuterIterations bounds multiplier updates. Zero selects 20.
	OuterIterations int

	// FeasTol is the accepted max bound violation. Zero selects 1e-9.
	FeasTol float64

	// Penalty is the initial ρ. Zero selects 10.
	Penalty float64
}

const (
	penaltyGrowth   = 10
	violationShrink = 0.25
)

// bound is one inequality: sign·(x[i] − v) ≤ 0.
type bound struct {
	i    int
	v    float64
	sign float64
}

func (b bound) eval(x []float64) float64 { return b.sign * (x[b.i] - b.v) }

// Minimize implements Minimizer.
//
// Stage 1 (Validate): check the problem, collect finite bounds.
// Stage 2 (Outer loop): minimize L from the current x, update μ and ρ.
// Stage 3 (Finalize): report f (not L) at the last inner solution; the
// status is MaxIterations if bounds are still violated.
func (m AugmentedLagrangian) Minimize(p Problem, x0 []float64) (Result, error) {
	if err := p.validate(x0); err != nil {
		return Result{}, err
	}
	inner := m.Inner
	if inner == nil {
		inner = BFGS{Settings: m.Settings}
	}
	if !p.bounded() {
		return inner.Minimize(Problem{Dim: p.Dim, Func: p.Func, Grad: p.Grad}, x0)
	}

	var (
		outer   = m.OuterIterations
		feasTol = m.FeasTol
		rho     = m.Penalty
	)
	if outer <= 0 {
		outer = 20
	}
	if feasTol <= 0 {
		feasTol = 1e-9
	}
	if rho <= 0 {
		rho = 10
	}

	bounds := collectBounds(p)
	var (
		mu      = make([]float64, len(bounds))
		x       = clone(x0)
		fGrad   = p.Grad
		total   Result
		res     Result
		err     error
		k       int
		viol    float64
		prevVio = math.Inf(1)
	)
	if fGrad == nil {
		fGrad = NumericGradient(p.Func, Central, 0)
	}

	for k = 0; k < outer; k++ {
		sub := m.subproblem(p, fGrad, bounds, mu, rho)
		if res, err = inner.Minimize(sub, x); err != nil {
			return Result{}, err
		}
		total.Iterations += res.Iterations
		total.FuncEvals += res.FuncEvals
		total.GradEvals += res.GradEvals
		x = res.X

		viol = 0
		for j, b := range bounds {
			cj := b.eval(x)
			viol = math.Max(viol, cj)
			mu[j] = math.Max(0, mu[j]+rho*cj)
		}
		if res.Status == StatusNonFinite {
			break
		}
		if viol <= feasTol {
			break
		}
		if viol > violationShrink*prevVio {
			rho *= penaltyGrowth
		}
		prevVio = viol
	}

	total.X = x
	total.F = p.Func(x)
	total.FuncEvals++
	total.Status = res.Status
	if viol > feasTol && total.Status != StatusNonFinite {
		total.Status = StatusMaxIterations
	}

	return total, nil
}

func collectBounds(p Problem) []bound {
	var out []bound
	for i := 0; i < p.Dim; i++ {
		if p.Lower != nil && !math.IsInf(p.Lower[i], -1) {
			out = append(out, bound{i: i, v: p.Lower[i], sign: -1})
		}
		if p.Upper != nil && !math.IsInf(p.Upper[i], 1) {
			out = append(out, bound{i: i, v: p.Upper[i], sign: 1})
		}
	}

	return out
}

// subproblem builds the unconstrained augmented Lagrangian for fixed μ, ρ.
func (m AugmentedLagrangian) subproblem(p Problem, fGrad func(x, g []float64), bounds []bound, mu []float64, rho float64) Problem {
	lagr := func(x []float64) float64 {
		v := p.Func(x)
		for j, b := range bounds {
			t := math.Max(0, mu[j]+rho*b.eval(x))
			v += (t*t - mu[j]*mu[j]) / (2 * rho)
		}

		return v
	}
	grad := func(x, g []float64) {
		fGrad(x, g)
		for j, b := range bounds {
			t := math.Max(0, mu[j]+rho*b.eval(x))
			g[b.i] += t * b.sign
		}
	}

	return Problem{Dim: p.Dim, Func: lagr, Grad: grad}
}
