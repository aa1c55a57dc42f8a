// SPDX-License-Identifier: MIT

// Package constraint defines the geometric relations a sketch can impose and
// the residual each one contributes to the solver's objective.
//
// Every relation is a small struct holding geom handles and implementing
// Constraint:
//
//	Kind()   the relation kind, for logging and dispatch by callers.
//	Error(s) a non-negative residual, zero when the relation holds.
//	Params() every parameter handle the residual reads.
//
// Residuals are pure functions of the Store's current values: nothing is
// cached between calls. Some are weighted (P2LDistance /10, LineLength ×100)
// and the weights shape which local minimum a solve lands in.
//
// Relations are built either with the package-level constructors, which take
// parameter handles so one value can be shared (a single fixed right angle
// for a whole rectangle), or through Builder,
// which allocates fixed parameters for literal distances, radii and angles:
//
//	b := constraint.NewBuilder(s)
//	b.Horizontal(l0)
//	b.TangentToCircle(l1, c)
//	b.LineLength(l1, 20)
//	total, err := solver.Solve(s, 1e-6, b.Constraints()...)
//
// Degenerate geometry (zero-length lines in slope or projection residuals)
// produces NaN or ±Inf rather than a panic; the solver treats a non-finite
// objective as a rejected step.
package constraint
