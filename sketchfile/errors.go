// SPDX-License-Identifier: MIT

package sketchfile

import "errors"

var (
	// ErrUnknownRef is returned when a name does not resolve to an entity
	// of the expected type.
	ErrUnknownRef = errors.New("sketchfile: unknown reference")

	// ErrUnknownKind is returned for a constraint kind that is not supported.
	ErrUnknownKind = errors.New("sketchfile: unknown constraint kind")

	// ErrMalformed is returned for documents that decode but do not describe
	// a sketch: wrong operand counts, missing scalars, bad bounds.
	ErrMalformed = errors.New("sketchfile: malformed document")
)
