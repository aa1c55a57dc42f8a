// SPDX-License-Identifier: MIT

// Package geom - parameter arena.
//
// Store owns every scalar of a sketch. Entities and constraints hold ParamID
// handles; the Store is the single place where values are read and written.
//
// Design principles:
//   - Handles are dense indices: O(1) access, trivially hashable, stable for
//     the lifetime of the Store (slots are never removed).
//   - Checked accessors (Lookup, SetValue, SetValues) return sentinel errors.
//   - Value and Assign are the unchecked hot-path read and write used by
//     residuals and objectives; they panic on an unknown handle, which
//     constraint validation rules out.
package geom

import (
	"fmt"
	"math"
)

// Store is an arena of parameters addressed by ParamID.
// The zero value is an empty, ready-to-use Store.
type Store struct {
	params []Param
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Len returns the number of parameters in the Store.
// Complexity: O(1).
func (s *Store) Len() int {
	return len(s.params)
}

// Param appends a parameter with default bounds and returns its handle.
// Complexity: amortized O(1).
func (s *Store) Param(value float64, free bool) ParamID {
	s.params = append(s.params, Param{
		Value: value,
		Min:   DefaultMin,
		Max:   DefaultMax,
		Free:  free,
	})

	return ParamID(len(s.params) - 1)
}

// BoundedParam appends a parameter with explicit bounds.
//
// Contract:
//   - min, max and value are finite, min ≤ value ≤ max.
//
// Errors: ErrBadBounds.
//
// Complexity: amortized O(1).
func (s *Store) BoundedParam(value, min, max float64, free bool) (ParamID, error) {
	if !isFinite(value) || !isFinite(min) || !isFinite(max) {
		return 0, fmt.Errorf("BoundedParam(%g, [%g, %g]): %w", value, min, max, ErrBadBounds)
	}
	if min > max || value < min || value > max {
		return 0, fmt.Errorf("BoundedParam(%g, [%g, %g]): %w", value, min, max, ErrBadBounds)
	}
	s.params = append(s.params, Param{Value: value, Min: min, Max: max, Free: free})

	return ParamID(len(s.params) - 1), nil
}

// Valid reports whether id addresses a parameter of this Store.
func (s *Store) Valid(id ParamID) bool {
	return id >= 0 && int(id) < len(s.params)
}

// Lookup returns a copy of the parameter behind id.
// Errors: ErrUnknownParam.
func (s *Store) Lookup(id ParamID) (Param, error) {
	if !s.Valid(id) {
		return Param{}, fmt.Errorf("Lookup(%d): %w", id, ErrUnknownParam)
	}

	return s.params[id], nil
}

// Value returns the current value of id.
// It panics if id is unknown; callers that accept untrusted handles must
// check Valid or go through Lookup.
// Complexity: O(1).
func (s *Store) Value(id ParamID) float64 {
	return s.params[id].Value
}

// Assign is the unchecked counterpart of SetValue, used on the solver's hot
// path. Like Value it panics if id is unknown.
// Complexity: O(1).
func (s *Store) Assign(id ParamID, v float64) {
	s.params[id].Value = v
}

// SetValue overwrites the value of id regardless of its Free flag.
// Errors: ErrUnknownParam.
func (s *Store) SetValue(id ParamID, v float64) error {
	if !s.Valid(id) {
		return fmt.Errorf("SetValue(%d): %w", id, ErrUnknownParam)
	}
	s.params[id].Value = v

	return nil
}

// Values reads the values of ids into a new slice, in order.
// Errors: ErrUnknownParam.
// Complexity: O(len(ids)).
func (s *Store) Values(ids []ParamID) ([]float64, error) {
	out := make([]float64, len(ids))

	var (
		i  int
		id ParamID
	)
	for i, id = range ids {
		if !s.Valid(id) {
			return nil, fmt.Errorf("Values[%d]=%d: %w", i, id, ErrUnknownParam)
		}
		out[i] = s.params[id].Value
	}

	return out, nil
}

// SetValues writes xs[i] into ids[i] for every i.
// All handles are checked before anything is written.
// Errors: ErrLengthMismatch, ErrUnknownParam.
// Complexity: O(len(ids)).
func (s *Store) SetValues(ids []ParamID, xs []float64) error {
	if len(ids) != len(xs) {
		return fmt.Errorf("SetValues(%d ids, %d values): %w", len(ids), len(xs), ErrLengthMismatch)
	}

	var (
		i  int
		id ParamID
	)
	for i, id = range ids {
		if !s.Valid(id) {
			return fmt.Errorf("SetValues[%d]=%d: %w", i, id, ErrUnknownParam)
		}
	}
	for i, id = range ids {
		s.params[id].Value = xs[i]
	}

	return nil
}

// Bounds returns the lower and upper bounds of ids, in order.
// Errors: ErrUnknownParam.
func (s *Store) Bounds(ids []ParamID) (lower, upper []float64, err error) {
	lower = make([]float64, len(ids))
	upper = make([]float64, len(ids))

	var (
		i  int
		id ParamID
	)
	for i, id = range ids {
		if !s.Valid(id) {
			return nil, nil, fmt.Errorf("Bounds[%d]=%d: %w", i, id, ErrUnknownParam)
		}
		lower[i] = s.params[id].Min
		upper[i] = s.params[id].Max
	}

	return lower, upper, nil
}

// Snapshot copies every value of the Store. Restore writes a snapshot back.
// Useful to re-run a solve from the same layout.
func (s *Store) Snapshot() []float64 {
	out := make([]float64, len(s.params))
	for i := range s.params {
		out[i] = s.params[i].Value
	}

	return out
}

// Restore writes values taken by Snapshot back into the Store.
// Errors: ErrLengthMismatch when the snapshot belongs to a differently sized Store.
func (s *Store) Restore(values []float64) error {
	if len(values) != len(s.params) {
		return fmt.Errorf("Restore(%d values into %d params): %w", len(values), len(s.params), ErrLengthMismatch)
	}
	for i := range s.params {
		s.params[i].Value = values[i]
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
