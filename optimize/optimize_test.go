// SPDX-License-Identifier: MIT

package optimize_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sketchsolve/optimize"
)

// bowl is (x−3)² + 10(y+1)², minimum 0 at (3, −1).
func bowl() optimize.Problem {
	return optimize.Problem{
		Dim: 2,
		Func: func(x []float64) float64 {
			return (x[0]-3)*(x[0]-3) + 10*(x[1]+1)*(x[1]+1)
		},
	}
}

func rosenbrock() optimize.Problem {
	return optimize.Problem{
		Dim: 2,
		Func: func(x []float64) float64 {
			a := 1 - x[0]
			b := x[1] - x[0]*x[0]
			return a*a + 100*b*b
		},
		Grad: func(x, g []float64) {
			b := x[1] - x[0]*x[0]
			g[0] = -2*(1-x[0]) - 400*x[0]*b
			g[1] = 200 * b
		},
	}
}

func TestMinimizersOnBowl(t *testing.T) {
	methods := map[string]optimize.Minimizer{
		"bfgs":       optimize.BFGS{},
		"descent":    optimize.GradientDescent{},
		"newton":     optimize.Newton{},
		"lagrangian": optimize.AugmentedLagrangian{},
	}
	for name, m := range methods {
		t.Run(name, func(t *testing.T) {
			res, err := m.Minimize(bowl(), []float64{0, 0})
			require.NoError(t, err)
			assert.InDelta(t, 3.0, res.X[0], 1e-5)
			assert.InDelta(t, -1.0, res.X[1], 1e-5)
			assert.Less(t, res.F, 1e-9)
			assert.NotEqual(t, optimize.StatusNonFinite, res.Status)
			assert.Positive(t, res.FuncEvals)
		})
	}
}

func TestBFGSRosenbrock(t *testing.T) {
	res, err := optimize.BFGS{}.Minimize(rosenbrock(), []float64{-1.2, 1})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.X[0], 1e-4)
	assert.InDelta(t, 1.0, res.X[1], 1e-4)
	assert.Positive(t, res.GradEvals)
}

func TestMinimizeDoesNotModifyStart(t *testing.T) {
	x0 := []float64{0, 0}
	_, err := optimize.BFGS{}.Minimize(bowl(), x0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, x0)
}

func TestTargetStopsEarly(t *testing.T) {
	m := optimize.BFGS{Settings: optimize.Settings{Target: 1}}
	res, err := m.Minimize(bowl(), []float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, optimize.StatusConverged, res.Status)
	assert.LessOrEqual(t, res.F, 1.0)
}

func TestNonFiniteStart(t *testing.T) {
	p := optimize.Problem{Dim: 1, Func: func(x []float64) float64 { return math.Log(x[0]) }}
	res, err := optimize.BFGS{}.Minimize(p, []float64{-1})
	require.NoError(t, err)
	assert.Equal(t, optimize.StatusNonFinite, res.Status)
	assert.Equal(t, []float64{-1}, res.X)
}

func TestLineSearchRejectsNaN(t *testing.T) {
	// f is NaN left of 0.5; the minimum of the finite part sits at its edge
	p := optimize.Problem{Dim: 1, Func: func(x []float64) float64 {
		if x[0] < 0.5 {
			return math.NaN()
		}
		return x[0] * x[0]
	}}
	res, err := optimize.GradientDescent{}.Minimize(p, []float64{2})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.X[0], 0.5)
	assert.False(t, math.IsNaN(res.F))
	assert.Less(t, res.F, 4.0)
}

func TestValidation(t *testing.T) {
	_, err := optimize.BFGS{}.Minimize(optimize.Problem{Dim: 1}, []float64{0})
	assert.ErrorIs(t, err, optimize.ErrNilFunc)

	_, err = optimize.BFGS{}.Minimize(bowl(), []float64{0})
	assert.ErrorIs(t, err, optimize.ErrDimensionMismatch)

	p := bowl()
	p.Lower = []float64{0}
	_, err = optimize.AugmentedLagrangian{}.Minimize(p, []float64{0, 0})
	assert.ErrorIs(t, err, optimize.ErrDimensionMismatch)

	p = bowl()
	p.Lower = []float64{1, 0}
	p.Upper = []float64{0, 1}
	_, err = optimize.AugmentedLagrangian{}.Minimize(p, []float64{0, 0})
	assert.ErrorIs(t, err, optimize.ErrBadBounds)

	p.Lower = []float64{math.NaN(), 0}
	_, err = optimize.Newton{}.Minimize(p, []float64{0, 0})
	assert.ErrorIs(t, err, optimize.ErrBadBounds)
}

func TestZeroDimensions(t *testing.T) {
	p := optimize.Problem{Func: func([]float64) float64 { return 2 }}
	res, err := optimize.BFGS{}.Minimize(p, nil)
	require.NoError(t, err)
	assert.Equal(t, optimize.StatusConverged, res.Status)
	assert.Equal(t, 2.0, res.F)
}

func TestAugmentedLagrangianEnforcesBounds(t *testing.T) {
	p := optimize.Problem{
		Dim:   1,
		Func:  func(x []float64) float64 { return (x[0] - 3) * (x[0] - 3) },
		Grad:  func(x, g []float64) { g[0] = 2 * (x[0] - 3) },
		Lower: []float64{math.Inf(-1)},
		Upper: []float64{1},
	}
	res, err := optimize.AugmentedLagrangian{}.Minimize(p, []float64{0})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.X[0], 1e-6)
	assert.InDelta(t, 4.0, res.F, 1e-5)
}

func TestAugmentedLagrangianWithoutBoundsIsInner(t *testing.T) {
	p := rosenbrock()
	p.Lower = []float64{math.Inf(-1), math.Inf(-1)}

	al, err := optimize.AugmentedLagrangian{}.Minimize(p, []float64{-1.2, 1})
	require.NoError(t, err)
	in, err := optimize.BFGS{}.Minimize(rosenbrock(), []float64{-1.2, 1})
	require.NoError(t, err)
	assert.Equal(t, in.X, al.X)
	assert.Equal(t, in.Iterations, al.Iterations)
}

func TestNumericGradient(t *testing.T) {
	f := func(x []float64) float64 { return x[0]*x[0] + 3*x[1] }
	x := []float64{1, 2}
	g := make([]float64, 2)

	for _, mode := range []optimize.DifferenceMode{optimize.Central, optimize.Forward} {
		optimize.NumericGradient(f, mode, 0)(x, g)
		assert.InDelta(t, 2.0, g[0], 1e-6, mode.String())
		assert.InDelta(t, 3.0, g[1], 1e-6, mode.String())
		assert.Equal(t, []float64{1, 2}, x, "x restored")
	}
}

func TestNumericGradientAtKink(t *testing.T) {
	f := func(x []float64) float64 { return math.Abs(x[0]) }
	x := []float64{0}
	g := make([]float64, 1)

	optimize.NumericGradient(f, optimize.Central, 0)(x, g)
	assert.Zero(t, g[0])

	optimize.NumericGradient(f, optimize.Forward, 0)(x, g)
	assert.InDelta(t, 1.0, g[0], 1e-9)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "Converged", optimize.StatusConverged.String())
	assert.Equal(t, "LineSearchFailed", optimize.StatusLineSearchFailed.String())
	assert.Equal(t, "Status(9)", optimize.Status(9).String())
}
