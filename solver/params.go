// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/katalvlaran/sketchsolve/constraint"
	"github.com/katalvlaran/sketchsolve/geom"
)

// FreeParams returns the distinct free handles referenced by cs, in order of
// first occurrence across cs and each constraint's Params. Unknown handles
// are skipped; constraint.Validate reports them.
//
// Complexity: O(total handles).
func FreeParams(s *geom.Store, cs []constraint.Constraint) []geom.ParamID {
	var (
		seen = make(map[geom.ParamID]struct{})
		out  []geom.ParamID
		p    geom.Param
		err  error
	)
	for _, c := range cs {
		for _, id := range c.Params() {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			if p, err = s.Lookup(id); err != nil || !p.Free {
				continue
			}
			out = append(out, id)
		}
	}

	return out
}
