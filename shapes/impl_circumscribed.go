// SPDX-License-Identifier: MIT
// Package: sketchsolve/shapes
//
// impl_circumscribed.go - regular n-gon tangent to a fixed circle.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewSides), radius finite and > 0 (else ErrBadSize).
//   - Emits: fixed center "o", fixed circle "c", fixed param "turn" = 2π/n,
//     free points p0..p(n-1) counter-clockwise, lines li = [pi, p(i+1 mod n)].
//   - Constraints, in order: tangent(li, c) for every i,
//     internalAngle(li, l(i+1 mod n), turn) for every i, horizontal(l0).
//
// Determinism: points in index order, two RNG draws per point.

package shapes

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sketchsolve/sketchfile"
)

const (
	methodCircumscribed = "Circumscribed"
	minSides            = 3
)

// Circumscribed returns a Constructor for a regular n-gon whose sides touch
// a circle of the given radius around the configured center. Side l0 is
// the bottom edge.
func Circumscribed(n int, radius float64) Constructor {
	return func(doc *sketchfile.Document, cfg shapeConfig) error {
		if n < minSides {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCircumscribed, n, minSides, ErrTooFewSides)
		}
		if !(radius > 0) || math.IsInf(radius, 0) {
			return fmt.Errorf("%s: radius=%g: %w", methodCircumscribed, radius, ErrBadSize)
		}

		var (
			center = cfg.name("o", -1)
			circle = cfg.name("c", -1)
			turn   = cfg.name("turn", -1)
			names  = []string{center, circle, turn}
		)
		for i := 0; i < n; i++ {
			names = append(names, cfg.name("p", i), cfg.name("l", i))
		}
		if err := claim(doc, names...); err != nil {
			return fmt.Errorf("%s: %w", methodCircumscribed, err)
		}

		doc.Points[center] = sketchfile.PointDoc{X: cfg.cx, Y: cfg.cy}
		doc.Circles[circle] = sketchfile.CircleDoc{Center: center, Radius: radius}
		doc.Params[turn] = sketchfile.ParamDoc{Value: 2 * math.Pi / float64(n)}

		var (
			step  = 2 * math.Pi / float64(n)
			outer = radius / math.Cos(math.Pi/float64(n))
			theta float64
		)
		for i := 0; i < n; i++ {
			theta = -math.Pi/2 - math.Pi/float64(n) + float64(i)*step
			doc.Points[cfg.name("p", i)] = sketchfile.PointDoc{
				X:    cfg.shake(cfg.cx+outer*math.Cos(theta), radius),
				Y:    cfg.shake(cfg.cy+outer*math.Sin(theta), radius),
				Free: sketchfile.FreeFlags{true, true},
			}
			doc.Lines[cfg.name("l", i)] = []string{cfg.name("p", i), cfg.name("p", (i+1)%n)}
		}

		for i := 0; i < n; i++ {
			doc.Constraints = append(doc.Constraints, sketchfile.ConstraintDoc{
				Kind: "tangent", Line: cfg.name("l", i), Circle: circle,
			})
		}
		for i := 0; i < n; i++ {
			doc.Constraints = append(doc.Constraints, sketchfile.ConstraintDoc{
				Kind:  "internalAngle",
				Lines: []string{cfg.name("l", i), cfg.name("l", (i+1)%n)},
				Param: turn,
			})
		}
		doc.Constraints = append(doc.Constraints, sketchfile.ConstraintDoc{
			Kind: "horizontal", Line: cfg.name("l", 0),
		})

		return nil
	}
}
