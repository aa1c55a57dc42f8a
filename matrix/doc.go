// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra kernel used by the
// minimizers in package optimize.
//
// What:
//
//   - Dense: row-major float64 matrix over a flat slice.
//   - Identity, MatVec, Clone, rank-one updates (AddOuter).
//   - LU factorization with partial pivoting and linear solves.
//
// Why:
//
//   - Quasi-Newton methods keep an n×n inverse-Hessian estimate and Newton
//     steps solve one n×n system per iteration; n is the number of free
//     sketch parameters, usually tens.
//
// Errors:
//
//   - Every failure is a sentinel from errors.go, wrapped with the operation
//     name ("LU: matrix: singular matrix"); match with errors.Is.
//   - Public indexers return ErrOutOfRange instead of panicking.
//
// Determinism:
//
//   - Loops run in fixed row/column order; pivot ties pick the lowest row.
package matrix
