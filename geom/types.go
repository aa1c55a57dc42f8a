// SPDX-License-Identifier: MIT

package geom

import "errors"

// Default parameter bounds. Every parameter created without explicit bounds
// records [DefaultMin, DefaultMax]; nothing clamps to them unless a solve
// asks for bound enforcement.
const (
	DefaultMin = -1000.0
	DefaultMax = 1000.0
)

var (
	// ErrUnknownParam is returned when a ParamID does not address a slot of the Store.
	ErrUnknownParam = errors.New("geom: unknown parameter")

	// ErrBadBounds is returned when a parameter's bounds are inverted, non-finite,
	// or do not contain its initial value.
	ErrBadBounds = errors.New("geom: invalid parameter bounds")

	// ErrLengthMismatch is returned by bulk accessors when the handle and value
	// slices differ in length.
	ErrLengthMismatch = errors.New("geom: handle/value length mismatch")
)

// ParamID is a stable handle into a Store. Two handles are the same parameter
// iff they are equal; values play no part in identity.
type ParamID int

// Param is a bounded scalar optimization variable.
//   - Value is mutable; the solver writes it only when Free is true.
//   - Min/Max are static bounds.
type Param struct {
	Value float64
	Min   float64
	Max   float64
	Free  bool
}

// Contains reports whether v lies inside the parameter's bounds.
func (p Param) Contains(v float64) bool {
	return v >= p.Min && v <= p.Max
}
