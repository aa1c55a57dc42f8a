// SPDX-License-Identifier: MIT

// Package solver drives a set of constraints to a configuration where the
// sum of their residuals is within tolerance.
//
// A solve:
//  1. collects the distinct free parameters referenced by the constraints,
//     in first-occurrence order (FreeParams);
//  2. builds an objective that writes a candidate vector into the Store and
//     sums the residuals, mapping a non-finite sum to +Inf (Objective);
//  3. runs a minimizer from the current layout, retrying from a perturbed
//     point until the error is within tolerance or the retries run out.
//
// The retry loop is a small state machine:
//
//	Minimizing ──error ≤ tol──▶ Converged
//	    │
//	    └──k = MaxIterations──▶ Exhausted
//
// Before retry k every free value v becomes v·(1 + k·sign·ε), where sign is
// drawn from a *rand.Rand seeded by Options.Seed, so retries are reproducible.
//
// Parameter bounds are ignored unless Options.EnforceBounds is set, in which
// case the default minimizer keeps every free value inside its [Min, Max].
//
// Side effects: the Store is mutated in place. On return it holds the best
// configuration found, and Result.Error is the total residual there.
//
// Concurrency: a solve owns its Store for its whole duration. Disjoint Stores
// can be solved in parallel.
package solver
