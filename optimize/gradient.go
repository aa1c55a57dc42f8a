// SPDX-License-Identifier: MIT

package optimize

import "math"

// DifferenceMode selects the finite-difference stencil.
type DifferenceMode int

const (
	// Central uses (f(x+h) − f(x−h)) / 2h: O(h²) error, 2n evaluations.
	Central DifferenceMode = iota
	// Forward uses (f(x+h) − f(x)) / h: O(h) error, n+1 evaluations.
	// It sees the slope of one-sided kinks that central differences cancel.
	Forward
)

// String implements fmt.Stringer.
func (m DifferenceMode) String() string {
	if m == Forward {
		return "forward"
	}

	return "central"
}

// Default relative steps, near the cube and square roots of machine epsilon.
const (
	DefaultCentralStep = 6e-6
	DefaultForwardStep = 1.5e-8
)

// NumericGradient returns a gradient function for f by finite differences.
// The step for coordinate i is step·max(1, |xᵢ|); step ≤ 0 selects the
// default for mode. x is perturbed in place and restored exactly.
//
// Complexity: 2n (central) or n+1 (forward) evaluations of f per call.
func NumericGradient(f func([]float64) float64, mode DifferenceMode, step float64) func(x, grad []float64) {
	if step <= 0 {
		step = DefaultCentralStep
		if mode == Forward {
			step = DefaultForwardStep
		}
	}

	return func(x, grad []float64) {
		var (
			i      int
			xi, h  float64
			fp, fm float64
			f0     float64
		)
		if mode == Forward {
			f0 = f(x)
		}
		for i = range x {
			xi = x[i]
			h = step * math.Max(1, math.Abs(xi))

			x[i] = xi + h
			fp = f(x)
			if mode == Forward {
				grad[i] = (fp - f0) / h
				x[i] = xi
				continue
			}
			x[i] = xi - h
			fm = f(x)
			x[i] = xi
			grad[i] = (fp - fm) / (2 * h)
		}
		// leave any state f writes (for example a parameter store) at x
		f(x)
	}
}
