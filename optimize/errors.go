// SPDX-License-Identifier: MIT

package optimize

import "errors"

var (
	// ErrNilFunc is returned when a Problem has no objective.
	ErrNilFunc = errors.New("optimize: nil objective")

	// ErrDimensionMismatch indicates that x0 or the bounds disagree with Problem.Dim.
	ErrDimensionMismatch = errors.New("optimize: dimension mismatch")

	// ErrBadBounds indicates a NaN bound or a lower bound above its upper bound.
	ErrBadBounds = errors.New("optimize: invalid bounds")
)
