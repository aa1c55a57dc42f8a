// SPDX-License-Identifier: MIT
// Package: sketchsolve/shapes
//
// errors.go - sentinel errors for the shapes package.
// Callers branch with errors.Is; constructors add context with %w.

package shapes

import "errors"

// ErrTooFewSides indicates a polygon with fewer than three sides.
var ErrTooFewSides = errors.New("shapes: too few sides")

// ErrBadSize indicates a non-positive or non-finite radius, width or height.
var ErrBadSize = errors.New("shapes: invalid size")

// ErrNameClash indicates that a constructor would reuse an existing name;
// compose shapes with distinct WithPrefix values.
var ErrNameClash = errors.New("shapes: name already defined")

// ErrConstructFailed indicates a nil constructor.
var ErrConstructFailed = errors.New("shapes: construction failed")
