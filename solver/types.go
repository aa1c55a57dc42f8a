// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/sketchsolve/geom"
	"github.com/katalvlaran/sketchsolve/optimize"
)

// ErrBadOptions is returned for a negative or non-finite tolerance, a
// negative retry count or a negative perturbation.
var ErrBadOptions = errors.New("solver: invalid options")

// State is the retry state machine's position.
type State int

const (
	Minimizing State = iota
	Converged
	Exhausted
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Minimizing:
		return "Minimizing"
	case Converged:
		return "Converged"
	case Exhausted:
		return "Exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Options configures SolveWithOptions. Start from DefaultOptions.
type Options struct {
	// Tolerance is the accepted total residual.
	Tolerance float64

	// MaxIterations is the number of perturbed retries after the first
	// attempt; a solve runs at most MaxIterations+1 minimizations.
	MaxIterations int

	// Perturbation is ε in v·(1 + k·sign·ε).
	Perturbation float64

	// Seed drives the perturbation signs. 0 selects a fixed default seed.
	Seed int64

	// Minimizer runs each attempt. Nil selects an AugmentedLagrangian over BFGS.
	Minimizer optimize.Minimizer

	// Difference selects the finite-difference stencil of the gradient.
	Difference optimize.DifferenceMode

	// Step is the relative finite-difference step; 0 selects the mode default.
	Step float64

	// EnforceBounds passes each parameter's [Min, Max] to the minimizer.
	// Off by default: the Store's default ±1000 bounds are metadata unless
	// a caller opts in.
	EnforceBounds bool

	// Logger receives one debug record per attempt and a warning on
	// exhaustion. Nil discards.
	Logger *slog.Logger
}

// DefaultOptions returns the options used by Solve.
func DefaultOptions() Options {
	return Options{
		Tolerance:     1e-6,
		MaxIterations: 10,
		Perturbation:  0.001,
		Difference:    optimize.Central,
	}
}

// Result describes a finished solve.
type Result struct {
	// Error is the total residual of the configuration left in the Store.
	Error float64

	// State is Converged or Exhausted.
	State State

	// Attempts counts minimizer runs (0 when nothing was free).
	Attempts int

	// FreeParams are the handles that were optimized, in vector order.
	FreeParams []geom.ParamID

	// Evaluations counts objective calls, gradient stencils included.
	Evaluations int

	// Status is the minimizer status of the last attempt.
	Status optimize.Status
}
