// SPDX-License-Identifier: MIT

// Package geom is the parametric data model of a 2D sketch.
//
// A sketch is a set of scalar parameters owned by a Store and addressed by
// stable handles (ParamID). Entities (Point, Line, Circle, Arc) are small
// value types holding handles, never numbers, so the same parameter can be
// shared by any number of entities and constraints without aliasing bugs:
// two lines joined at a corner simply hold the same Point.
//
// The numeric side is kept separate. Vector, Position and Segment are plain
// float64 values produced by resolving entities against a Store (Pos, Vector,
// Segment, CenterTo, ArcStart, ArcEnd). They are cheap, immutable and carry
// no identity.
//
//	s := geom.NewStore()
//	a := s.FixedPoint(0, 1)
//	b := s.Point(2, 3, false, true) // only y is free
//	l := geom.NewLine(a, b)
//	fmt.Println(s.Vector(l).Length())
//
// Parameter identity is the handle. Deduplication of parameters across a
// constraint set is therefore a set of ints, and a Store can be solved,
// inspected or snapshotted without walking pointer graphs.
//
// Concurrency: a Store is not safe for concurrent mutation. Stores with
// disjoint parameter sets may be used from different goroutines.
package geom
