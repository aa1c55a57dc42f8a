// SPDX-License-Identifier: MIT

package constraint

import (
	"fmt"

	"github.com/katalvlaran/sketchsolve/geom"
)

// Validate checks a constraint set against a Store before solving:
//  1. every handle returned by Params is known to s;
//  2. constraints implementing Validator accept their inputs.
//
// The first failure is returned, wrapped with the constraint's position and kind.
//
// Complexity: O(total handles).
func Validate(s *geom.Store, cs ...Constraint) error {
	var (
		i   int
		c   Constraint
		id  geom.ParamID
		err error
	)
	for i, c = range cs {
		if c == nil {
			return fmt.Errorf("constraint[%d]: nil constraint: %w", i, ErrUnknownParam)
		}
		for _, id = range c.Params() {
			if !s.Valid(id) {
				return fmt.Errorf("constraint[%d] %s: handle %d: %w", i, c.Kind(), id, ErrUnknownParam)
			}
		}
		if v, ok := c.(Validator); ok {
			if err = v.Validate(s); err != nil {
				return fmt.Errorf("constraint[%d] %s: %w", i, c.Kind(), err)
			}
		}
	}

	return nil
}

// Total returns the sum of the residuals of cs.
func Total(s *geom.Store, cs []Constraint) float64 {
	var sum float64
	for _, c := range cs {
		sum += c.Error(s)
	}

	return sum
}
