// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/sketchsolve/constraint"
	"github.com/katalvlaran/sketchsolve/geom"
	"github.com/katalvlaran/sketchsolve/optimize"
)

// Solve minimizes the total residual of cs with DefaultOptions and the given
// tolerance. It returns the total residual left in s.
//
// Failing to reach tolerance is not an error: compare the returned value
// against tolerance. Errors report invalid input only.
func Solve(s *geom.Store, tolerance float64, cs ...constraint.Constraint) (float64, error) {
	opts := DefaultOptions()
	opts.Tolerance = tolerance

	res, err := SolveWithOptions(s, cs, opts)
	if err != nil {
		return 0, err
	}

	return res.Error, nil
}

// SolveWithOptions runs the retry state machine.
//
// Stage 1 (Validate): options, then every constraint (unknown handles,
// quadrant indices).
// Stage 2 (Prepare): free parameters, objective, gradient, optional bounds.
// Stage 3 (Minimize/Retry): run the minimizer from the current values; keep
// the best point; stop when its error ≤ Tolerance, otherwise perturb the
// latest point and retry, up to MaxIterations times.
// Stage 4 (Finalize): write the best point into s.
//
// Errors: ErrBadOptions, constraint.ErrUnknownParam,
// constraint.ErrInvalidQuadrant, and minimizer input errors.
func SolveWithOptions(s *geom.Store, cs []constraint.Constraint, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if err := constraint.Validate(s, cs...); err != nil {
		return Result{}, fmt.Errorf("solver: %w", err)
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var (
		free  = FreeParams(s, cs)
		n     = len(free)
		evals int
	)
	base := Objective(s, cs, free)
	f := func(x []float64) float64 {
		evals++
		return base(x)
	}
	if len(cs) == 0 {
		return Result{State: Converged, FreeParams: free}, nil
	}

	x, err := s.Values(free)
	if err != nil {
		return Result{}, fmt.Errorf("solver: %w", err)
	}
	if n == 0 {
		e := finiteOrInf(constraint.Total(s, cs))
		return Result{Error: e, State: settle(e, opts.Tolerance), FreeParams: free}, nil
	}

	prob := optimize.Problem{
		Dim:  n,
		Func: f,
		Grad: optimize.NumericGradient(f, opts.Difference, opts.Step),
	}
	if opts.EnforceBounds {
		if prob.Lower, prob.Upper, err = s.Bounds(free); err != nil {
			return Result{}, fmt.Errorf("solver: %w", err)
		}
	}
	minimizer := opts.Minimizer
	if minimizer == nil {
		minimizer = optimize.AugmentedLagrangian{
			Settings: optimize.Settings{Target: opts.Tolerance * 1e-3},
		}
	}

	var (
		rng      = rngFromSeed(opts.Seed)
		best     = append([]float64(nil), x...)
		bestF    = f(x)
		state    = Minimizing
		k        int
		attempts int
		res      optimize.Result
	)
	for state == Minimizing {
		attempts++
		if res, err = minimizer.Minimize(prob, x); err != nil {
			return Result{}, fmt.Errorf("solver: attempt %d: %w", attempts, err)
		}
		copy(x, res.X)
		fx := finiteOrInf(res.F)
		if fx < bestF {
			bestF = fx
			copy(best, x)
		}
		log.Debug("solve attempt",
			slog.Int("attempt", attempts),
			slog.Int("free", n),
			slog.Float64("error", fx),
			slog.Float64("best", bestF),
			slog.String("status", res.Status.String()))

		switch {
		case bestF <= opts.Tolerance:
			state = Converged
		case k < opts.MaxIterations:
			k++
			perturb(x, k, opts.Perturbation, rng)
		default:
			state = Exhausted
		}
	}

	// leave the Store at the best point and report its exact error
	bestF = f(best)
	if state == Exhausted {
		log.Warn("solve exhausted retries",
			slog.Int("attempts", attempts),
			slog.Float64("error", bestF),
			slog.Float64("tolerance", opts.Tolerance))
	}

	return Result{
		Error:       bestF,
		State:       state,
		Attempts:    attempts,
		FreeParams:  free,
		Evaluations: evals,
		Status:      res.Status,
	}, nil
}

// settle maps an error to the terminal state it earns.
func settle(e, tol float64) State {
	if e <= tol {
		return Converged
	}

	return Exhausted
}

func validateOptions(o Options) error {
	switch {
	case math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) || o.Tolerance < 0:
		return fmt.Errorf("tolerance %g: %w", o.Tolerance, ErrBadOptions)
	case o.MaxIterations < 0:
		return fmt.Errorf("max iterations %d: %w", o.MaxIterations, ErrBadOptions)
	case math.IsNaN(o.Perturbation) || o.Perturbation < 0:
		return fmt.Errorf("perturbation %g: %w", o.Perturbation, ErrBadOptions)
	case o.Step < 0 || math.IsNaN(o.Step):
		return fmt.Errorf("step %g: %w", o.Step, ErrBadOptions)
	}

	return nil
}
