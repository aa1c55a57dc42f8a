// SPDX-License-Identifier: MIT

// Package optimize implements local minimizers for smooth objectives of a
// few dozen variables, the size of a sketch's free-parameter vector.
//
// What:
//
//   - Problem: objective, optional gradient, optional box bounds.
//   - Minimizer: one method behind one interface. Implementations are
//     BFGS, GradientDescent, Newton and AugmentedLagrangian.
//   - NumericGradient: central or forward finite differences, used whenever
//     a Problem carries no analytic gradient.
//
// Contract:
//
//   - Minimize never panics on bad input; it returns a sentinel error
//     (ErrNilFunc, ErrDimensionMismatch, ErrBadBounds).
//   - A non-finite objective value is treated as infinitely bad: line
//     searches shrink past it, and a non-finite starting point ends the run
//     with StatusNonFinite.
//   - Result.X is always the best point evaluated, never a rejected trial.
//
// Determinism: all methods are deterministic for a deterministic objective.
package optimize
