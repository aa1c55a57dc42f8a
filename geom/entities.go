// SPDX-License-Identifier: MIT

// Package geom - entities built from parameter handles.
//
// Entities never own their parameters: a Point shared by two Lines is the
// same pair of handles in both. Params() enumerates the handles in a fixed
// order so that free-variable discovery is deterministic.
package geom

import "math"

// Point is a pair of coordinate parameters.
type Point struct {
	X, Y ParamID
}

// Line is a segment between two points. Its direction is P2 − P1.
type Line struct {
	P1, P2 Point
}

// Circle is a center point and a radius parameter.
type Circle struct {
	Center Point
	Rad    ParamID
}

// Arc is a circle portion. Start and end points are derived, never stored:
// center + rad·(cos θ, sin θ).
type Arc struct {
	Center Point
	Rad    ParamID
	Start  ParamID // start angle, radians
	End    ParamID // end angle, radians
}

// NewLine joins two points.
func NewLine(p1, p2 Point) Line {
	return Line{P1: p1, P2: p2}
}

// Params returns x, y.
func (p Point) Params() []ParamID {
	return []ParamID{p.X, p.Y}
}

// Params returns p1.x, p1.y, p2.x, p2.y.
func (l Line) Params() []ParamID {
	return []ParamID{l.P1.X, l.P1.Y, l.P2.X, l.P2.Y}
}

// Params returns center.x, center.y, rad.
func (c Circle) Params() []ParamID {
	return []ParamID{c.Center.X, c.Center.Y, c.Rad}
}

// Params returns center.x, center.y, rad, start, end.
func (a Arc) Params() []ParamID {
	return []ParamID{a.Center.X, a.Center.Y, a.Rad, a.Start, a.End}
}

// ---------- constructors on the Store ----------

// Point creates a point with independently free coordinates.
func (s *Store) Point(x, y float64, freeX, freeY bool) Point {
	return Point{X: s.Param(x, freeX), Y: s.Param(y, freeY)}
}

// FreePoint creates a point whose coordinates are both free.
func (s *Store) FreePoint(x, y float64) Point {
	return s.Point(x, y, true, true)
}

// FixedPoint creates a point whose coordinates are both fixed.
func (s *Store) FixedPoint(x, y float64) Point {
	return s.Point(x, y, false, false)
}

// Circle creates a circle around center with a new radius parameter.
func (s *Store) Circle(center Point, rad float64, free bool) Circle {
	return Circle{Center: center, Rad: s.Param(rad, free)}
}

// Arc creates an arc around center with new radius and angle parameters,
// all sharing the same free flag.
func (s *Store) Arc(center Point, rad, start, end float64, free bool) Arc {
	return Arc{
		Center: center,
		Rad:    s.Param(rad, free),
		Start:  s.Param(start, free),
		End:    s.Param(end, free),
	}
}

// ---------- resolution ----------

// Pos resolves a point to its current position.
func (s *Store) Pos(p Point) Position {
	return Position{X: s.Value(p.X), Y: s.Value(p.Y)}
}

// Vector returns the direction of l, P2 − P1.
func (s *Store) Vector(l Line) Vector {
	return s.Pos(l.P2).Sub(s.Pos(l.P1))
}

// Segment resolves l to its current endpoints.
func (s *Store) Segment(l Line) Segment {
	return Segment{From: s.Pos(l.P1), To: s.Pos(l.P2)}
}

// ArcStart returns center + rad·(cos start, sin start).
func (s *Store) ArcStart(a Arc) Position {
	return s.arcPoint(a, s.Value(a.Start))
}

// ArcEnd returns center + rad·(cos end, sin end).
func (s *Store) ArcEnd(a Arc) Position {
	return s.arcPoint(a, s.Value(a.End))
}

func (s *Store) arcPoint(a Arc, theta float64) Position {
	var (
		c = s.Pos(a.Center)
		r = s.Value(a.Rad)
	)

	return Position{X: c.X + r*math.Cos(theta), Y: c.Y + r*math.Sin(theta)}
}

// CenterTo returns the segment from the circle's center to the orthogonal
// projection of that center onto the infinite line through l:
//
//	foot = p1 + ((center − p1)·û)·û,  û = unit(p2 − p1)
//
// Its length is the perpendicular distance from the center to the line, the
// quantity tangency drives toward the radius. A zero-length l yields NaN.
func (s *Store) CenterTo(c Circle, l Line) Segment {
	var (
		center = s.Pos(c.Center)
		p1     = s.Pos(l.P1)
		dir    = s.Vector(l)
	)
	foot := p1.Add(center.Sub(p1).ProjectOnto(dir))

	return Segment{From: center, To: foot}
}
