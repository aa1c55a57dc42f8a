// SPDX-License-Identifier: MIT
// Package: sketchsolve/shapes
//
// impl_rectangle.go - axis-aligned w×h rectangle anchored at its
// bottom-left corner.
//
// Contract:
//   - w and h finite and > 0 (else ErrBadSize).
//   - Emits: fixed corner p0 at the configured center, free corners p1..p3
//     counter-clockwise, lines l0..l3 (l0 bottom, l1 right, l2 top, l3 left).
//   - Constraints: horizontal l0 and l2, vertical l1 and l3,
//     lineLength(l0, w), lineLength(l1, h).

package shapes

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sketchsolve/sketchfile"
)

const methodRectangle = "Rectangle"

// Rectangle returns a Constructor for a w×h rectangle.
func Rectangle(w, h float64) Constructor {
	return func(doc *sketchfile.Document, cfg shapeConfig) error {
		for _, v := range []float64{w, h} {
			if !(v > 0) || math.IsInf(v, 0) {
				return fmt.Errorf("%s: %g×%g: %w", methodRectangle, w, h, ErrBadSize)
			}
		}
		var names []string
		for i := 0; i < 4; i++ {
			names = append(names, cfg.name("p", i), cfg.name("l", i))
		}
		if err := claim(doc, names...); err != nil {
			return fmt.Errorf("%s: %w", methodRectangle, err)
		}

		var (
			size    = math.Max(w, h)
			corners = [4][2]float64{{0, 0}, {w, 0}, {w, h}, {0, h}}
		)
		for i, c := range corners {
			p := sketchfile.PointDoc{X: cfg.cx + c[0], Y: cfg.cy + c[1]}
			if i > 0 {
				p.X = cfg.shake(p.X, size)
				p.Y = cfg.shake(p.Y, size)
				p.Free = sketchfile.FreeFlags{true, true}
			}
			doc.Points[cfg.name("p", i)] = p
			doc.Lines[cfg.name("l", i)] = []string{cfg.name("p", i), cfg.name("p", (i+1)%4)}
		}

		width, height := w, h
		doc.Constraints = append(doc.Constraints,
			sketchfile.ConstraintDoc{Kind: "horizontal", Line: cfg.name("l", 0)},
			sketchfile.ConstraintDoc{Kind: "vertical", Line: cfg.name("l", 1)},
			sketchfile.ConstraintDoc{Kind: "horizontal", Line: cfg.name("l", 2)},
			sketchfile.ConstraintDoc{Kind: "vertical", Line: cfg.name("l", 3)},
			sketchfile.ConstraintDoc{Kind: "lineLength", Line: cfg.name("l", 0), Value: &width},
			sketchfile.ConstraintDoc{Kind: "lineLength", Line: cfg.name("l", 1), Value: &height},
		)

		return nil
	}
}
