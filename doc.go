// SPDX-License-Identifier: MIT

// Package sketchsolve is a 2D geometric constraint solver for CAD-style
// sketches.
//
// A sketch is a set of scalar parameters (coordinates, radii, angles), some
// free and some fixed, together with entities built from them (points,
// lines, circles, arcs) and constraints relating the entities: tangency,
// perpendicularity, distances, symmetry and so on. Every constraint
// measures its violation as a non-negative residual; solving moves the free
// parameters until the sum of residuals drops below a tolerance.
//
// Packages:
//
//	geom/       parameter Store, handles, entities and vector algebra
//	constraint/ the closed set of relations, validation, Builder
//	optimize/   BFGS, Newton, gradient descent, augmented Lagrangian
//	matrix/     dense matrices and LU solves used by the minimizers
//	solver/     free-parameter discovery and the retry state machine
//	sketchfile/ YAML sketch documents
//	render/     PNG snapshots
//	shapes/     generated sketches (regular polygons, rectangles)
//	cmd/sketchsolve command-line front end
//
// Quick start:
//
//	s := geom.NewStore()
//	c := s.Circle(s.FixedPoint(0, 0), 1, false)
//	l := geom.NewLine(s.FixedPoint(0, -math.Sqrt2), s.Point(35, 0, true, false))
//	e, err := solver.Solve(s, 1e-6, constraint.TangentToCircle(l, c))
package sketchsolve
