// SPDX-License-Identifier: MIT

package optimize

import (
	"fmt"
	"math"
)

// Problem describes an objective to minimize.
type Problem struct {
	// Dim is the number of variables.
	Dim int

	// Func evaluates the objective. Required.
	Func func(x []float64) float64

	// Grad writes ∇Func(x) into grad. Optional; when nil a central
	// finite-difference gradient of Func is used.
	Grad func(x, grad []float64)

	// Lower and Upper are optional box bounds (nil means unbounded).
	// Only AugmentedLagrangian enforces them.
	Lower, Upper []float64
}

// Minimizer is a local minimization method.
type Minimizer interface {
	Minimize(p Problem, x0 []float64) (Result, error)
}

// Status reports why a minimization stopped.
type Status int

const (
	// StatusConverged: gradient, objective change or target test passed.
	StatusConverged Status = iota
	// StatusMaxIterations: the iteration budget ran out.
	StatusMaxIterations
	// StatusNonFinite: the objective or gradient was NaN or ±Inf at the current point.
	StatusNonFinite
	// StatusLineSearchFailed: no step along the search direction decreased the objective.
	StatusLineSearchFailed
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "Converged"
	case StatusMaxIterations:
		return "MaxIterations"
	case StatusNonFinite:
		return "NonFinite"
	case StatusLineSearchFailed:
		return "LineSearchFailed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of one Minimize call.
type Result struct {
	X          []float64 // best point found
	F          float64   // objective at X
	Status     Status
	Iterations int
	FuncEvals  int
	GradEvals  int
}

// Settings are the stopping rules shared by every method.
// Zero fields take the DefaultSettings value.
type Settings struct {
	// MaxIterations bounds the number of outer iterations.
	MaxIterations int

	// GradTol stops when max|∂f/∂xᵢ| ≤ GradTol.
	GradTol float64

	// FuncTol stops when an accepted step decreases f by at most
	// FuncTol·(|f|+FuncTol).
	FuncTol float64

	// Target stops as soon as f ≤ Target. Zero disables the test except
	// for an exact zero objective.
	Target float64
}

// DefaultSettings returns the stopping rules used for zero Settings fields.
func DefaultSettings() Settings {
	return Settings{
		MaxIterations: 1000,
		GradTol:       1e-10,
		FuncTol:       1e-15,
	}
}

func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.MaxIterations <= 0 {
		s.MaxIterations = d.MaxIterations
	}
	if s.GradTol <= 0 {
		s.GradTol = d.GradTol
	}
	if s.FuncTol <= 0 {
		s.FuncTol = d.FuncTol
	}

	return s
}

// validate checks p against x0.
func (p Problem) validate(x0 []float64) error {
	if p.Func == nil {
		return ErrNilFunc
	}
	if p.Dim < 0 || len(x0) != p.Dim {
		return fmt.Errorf("x0 has %d values for Dim %d: %w", len(x0), p.Dim, ErrDimensionMismatch)
	}
	if p.Lower != nil && len(p.Lower) != p.Dim {
		return fmt.Errorf("Lower has %d values: %w", len(p.Lower), ErrDimensionMismatch)
	}
	if p.Upper != nil && len(p.Upper) != p.Dim {
		return fmt.Errorf("Upper has %d values: %w", len(p.Upper), ErrDimensionMismatch)
	}

	var lo, hi float64
	for i := 0; i < p.Dim; i++ {
		lo, hi = math.Inf(-1), math.Inf(1)
		if p.Lower != nil {
			lo = p.Lower[i]
		}
		if p.Upper != nil {
			hi = p.Upper[i]
		}
		if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
			return fmt.Errorf("bound %d [%g, %g]: %w", i, lo, hi, ErrBadBounds)
		}
	}

	return nil
}

// bounded reports whether any bound is finite.
func (p Problem) bounded() bool {
	for _, v := range p.Lower {
		if !math.IsInf(v, -1) {
			return true
		}
	}
	for _, v := range p.Upper {
		if !math.IsInf(v, 1) {
			return true
		}
	}

	return false
}

// counted wraps the objective and gradient of a Problem with evaluation
// counters, filling in a numeric gradient when none is given.
type counted struct {
	f      func([]float64) float64
	g      func(x, grad []float64)
	fEvals int
	gEvals int
}

func newCounted(p Problem) *counted {
	c := &counted{f: p.Func, g: p.Grad}
	if c.g == nil {
		c.g = NumericGradient(p.Func, Central, 0)
	}

	return c
}

func (c *counted) value(x []float64) float64 {
	c.fEvals++
	return c.f(x)
}

func (c *counted) grad(x, g []float64) {
	c.gEvals++
	c.g(x, g)
}

func (c *counted) result(x []float64, f float64, st Status, iter int) Result {
	return Result{
		X:          x,
		F:          f,
		Status:     st,
		Iterations: iter,
		FuncEvals:  c.fEvals,
		GradEvals:  c.gEvals,
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func allFinite(xs []float64) bool {
	for _, v := range xs {
		if !isFinite(v) {
			return false
		}
	}

	return true
}

func maxAbs(xs []float64) float64 {
	var m float64
	for _, v := range xs {
		if a := math.Abs(v); a > m {
			m = a
		}
	}

	return m
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

func clone(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)

	return out
}
