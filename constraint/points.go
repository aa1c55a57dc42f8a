// SPDX-License-Identifier: MIT

package constraint

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sketchsolve/geom"
)

// Quadrant indices accepted by PointOnCircleQuad.
const (
	QuadEast  = 0
	QuadNorth = 1
	QuadWest  = 2
	QuadSouth = 3
)

type pointOnPoint struct{ p1, p2 geom.Point }

// Coincident makes p1 and p2 the same location.
func Coincident(p1, p2 geom.Point) Constraint { return pointOnPoint{p1, p2} }

func (pointOnPoint) Kind() Kind { return KindPointOnPoint }

func (c pointOnPoint) Params() []geom.ParamID { return join(c.p1.Params(), c.p2.Params()) }

func (c pointOnPoint) Error(s *geom.Store) float64 {
	return s.Pos(c.p1).Sub(s.Pos(c.p2)).LengthSquared()
}

type pointOnLine struct {
	p geom.Point
	l geom.Line
}

// PointOnLine places p on the infinite line through l.
//
// The residual is measured along y for shallow lines (|slope| ≤ 1) and
// along x otherwise, which keeps it finite for vertical lines.
func PointOnLine(p geom.Point, l geom.Line) Constraint { return pointOnLine{p, l} }

func (pointOnLine) Kind() Kind { return KindPointOnLine }

func (c pointOnLine) Params() []geom.ParamID { return join(c.p.Params(), c.l.Params()) }

func (c pointOnLine) Error(s *geom.Store) float64 {
	var (
		a = s.Pos(c.l.P1)
		d = s.Vector(c.l)
		p = s.Pos(c.p)
	)

	return offLine(a, d, p, true)
}

// offLine returns the squared axis-aligned offset of p from the line a + t·d.
// inclusive selects whether slope −1 belongs to the shallow branch.
func offLine(a geom.Position, d geom.Vector, p geom.Position, inclusive bool) float64 {
	m := d.DY / d.DX
	shallow := m <= 1 && m > -1
	if inclusive {
		shallow = m <= 1 && m >= -1
	}
	if shallow {
		return sq(m*(p.X-a.X) + a.Y - p.Y)
	}
	m = d.DX / d.DY

	return sq(m*(p.Y-a.Y) + a.X - p.X)
}

type pointOnLineMidpoint struct {
	p geom.Point
	l geom.Line
}

// PointOnLineMidpoint places p at the midpoint of l.
func PointOnLineMidpoint(p geom.Point, l geom.Line) Constraint {
	return pointOnLineMidpoint{p, l}
}

func (pointOnLineMidpoint) Kind() Kind { return KindPointOnLineMidpoint }

func (c pointOnLineMidpoint) Params() []geom.ParamID { return join(c.p.Params(), c.l.Params()) }

func (c pointOnLineMidpoint) Error(s *geom.Store) float64 {
	seg := s.Segment(c.l)
	mid := seg.From.Add(seg.Vector().Scale(0.5))

	return mid.Sub(s.Pos(c.p)).LengthSquared()
}

type pointOnCircle struct {
	p geom.Point
	c geom.Circle
}

// PointOnCircle places p on the circumference of c.
func PointOnCircle(p geom.Point, c geom.Circle) Constraint { return pointOnCircle{p, c} }

func (pointOnCircle) Kind() Kind { return KindPointOnCircle }

func (c pointOnCircle) Params() []geom.ParamID { return join(c.p.Params(), c.c.Params()) }

func (c pointOnCircle) Error(s *geom.Store) float64 {
	return sq(s.Pos(c.c.Center).DistanceTo(s.Pos(c.p)) - s.Value(c.c.Rad))
}

type pointOnArc struct {
	p geom.Point
	a geom.Arc
}

// PointOnArc places p on the circle carrying a. The arc radius is measured
// from the center to the start point.
func PointOnArc(p geom.Point, a geom.Arc) Constraint { return pointOnArc{p, a} }

func (pointOnArc) Kind() Kind { return KindPointOnArc }

func (c pointOnArc) Params() []geom.ParamID { return join(c.p.Params(), c.a.Params()) }

func (c pointOnArc) Error(s *geom.Store) float64 {
	center := s.Pos(c.a.Center)

	return sq(center.DistanceTo(s.Pos(c.p)) - center.DistanceTo(s.ArcStart(c.a)))
}

type pointOnArcMidpoint struct {
	p geom.Point
	a geom.Arc
}

// PointOnArcMidpoint places p at the angular midpoint of a.
func PointOnArcMidpoint(p geom.Point, a geom.Arc) Constraint { return pointOnArcMidpoint{p, a} }

func (pointOnArcMidpoint) Kind() Kind { return KindPointOnArcMidpoint }

func (c pointOnArcMidpoint) Params() []geom.ParamID { return join(c.p.Params(), c.a.Params()) }

func (c pointOnArcMidpoint) Error(s *geom.Store) float64 {
	var (
		center = s.Pos(c.a.Center)
		start  = s.ArcStart(c.a).Sub(center)
		end    = s.ArcEnd(c.a).Sub(center)
		rad    = start.Length()
		theta  = (math.Atan2(end.DY, end.DX) + math.Atan2(start.DY, start.DX)) / 2
	)
	mid := center.Add(geom.Vector{DX: rad * math.Cos(theta), DY: rad * math.Sin(theta)})

	return mid.Sub(s.Pos(c.p)).LengthSquared()
}

type pointOnCircleQuad struct {
	p    geom.Point
	c    geom.Circle
	quad geom.ParamID
}

// PointOnCircleQuad places p on the cardinal point of c selected by the
// value of quad: QuadEast, QuadNorth, QuadWest or QuadSouth. quad must be a
// fixed parameter holding one of those integers; Validate enforces it.
func PointOnCircleQuad(p geom.Point, c geom.Circle, quad geom.ParamID) Constraint {
	return pointOnCircleQuad{p, c, quad}
}

func (pointOnCircleQuad) Kind() Kind { return KindPointOnCircleQuad }

func (c pointOnCircleQuad) Params() []geom.ParamID {
	return join(c.p.Params(), c.c.Params(), []geom.ParamID{c.quad})
}

// Validate rejects free, fractional or out-of-range quadrant indices.
func (c pointOnCircleQuad) Validate(s *geom.Store) error {
	q, err := s.Lookup(c.quad)
	if err != nil {
		return fmt.Errorf("quadrant: %w", ErrUnknownParam)
	}
	if q.Free || q.Value != math.Trunc(q.Value) || q.Value < QuadEast || q.Value > QuadSouth {
		return fmt.Errorf("quadrant %g (free=%t): %w", q.Value, q.Free, ErrInvalidQuadrant)
	}

	return nil
}

func (c pointOnCircleQuad) Error(s *geom.Store) float64 {
	var (
		target = s.Pos(c.c.Center)
		r      = s.Value(c.c.Rad)
		q      = s.Value(c.quad)
	)
	switch int(q) {
	case QuadEast:
		target.X += r
	case QuadNorth:
		target.Y += r
	case QuadWest:
		target.X -= r
	case QuadSouth:
		target.Y -= r
	default:
		panic(fmt.Sprintf("constraint: quadrant index %g out of range", q))
	}

	return target.Sub(s.Pos(c.p)).LengthSquared()
}
