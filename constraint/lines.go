// SPDX-License-Identifier: MIT

package constraint

import (
	"math"

	"github.com/katalvlaran/sketchsolve/geom"
)

type horizontal struct{ l geom.Line }

// Horizontal makes l parallel to the x axis.
func Horizontal(l geom.Line) Constraint { return horizontal{l} }

func (horizontal) Kind() Kind { return KindHorizontal }

func (c horizontal) Params() []geom.ParamID { return c.l.Params() }

func (c horizontal) Error(s *geom.Store) float64 { return sq(s.Vector(c.l).DY) }

type vertical struct{ l geom.Line }

// Vertical makes l parallel to the y axis.
func Vertical(l geom.Line) Constraint { return vertical{l} }

func (vertical) Kind() Kind { return KindVertical }

func (c vertical) Params() []geom.ParamID { return c.l.Params() }

func (c vertical) Error(s *geom.Store) float64 { return sq(s.Vector(c.l).DX) }

type perpendicular struct{ l1, l2 geom.Line }

// Perpendicular makes l1 and l2 meet at a right angle.
// The residual is the squared dot product of the unnormalized directions,
// so it also vanishes when either line collapses.
func Perpendicular(l1, l2 geom.Line) Constraint { return perpendicular{l1, l2} }

func (perpendicular) Kind() Kind { return KindPerpendicular }

func (c perpendicular) Params() []geom.ParamID { return join(c.l1.Params(), c.l2.Params()) }

func (c perpendicular) Error(s *geom.Store) float64 {
	return sq(s.Vector(c.l1).Dot(s.Vector(c.l2)))
}

type parallel struct{ l1, l2 geom.Line }

// Parallel makes l1 and l2 point along the same or opposite directions.
func Parallel(l1, l2 geom.Line) Constraint { return parallel{l1, l2} }

func (parallel) Kind() Kind { return KindParallel }

func (c parallel) Params() []geom.ParamID { return join(c.l1.Params(), c.l2.Params()) }

func (c parallel) Error(s *geom.Store) float64 {
	u1 := s.Vector(c.l1).Unit()
	u2 := s.Vector(c.l2).Unit()

	return sq(u1.DY*u2.DX - u1.DX*u2.DY)
}

type collinear struct{ l1, l2 geom.Line }

// Collinear puts both endpoints of l2 on the infinite line through l1.
func Collinear(l1, l2 geom.Line) Constraint { return collinear{l1, l2} }

func (collinear) Kind() Kind { return KindCollinear }

func (c collinear) Params() []geom.ParamID { return join(c.l1.Params(), c.l2.Params()) }

func (c collinear) Error(s *geom.Store) float64 {
	var (
		a = s.Pos(c.l1.P1)
		d = s.Vector(c.l1)
	)

	return offLine(a, d, s.Pos(c.l2.P1), false) + offLine(a, d, s.Pos(c.l2.P2), false)
}

type equalLength struct{ l1, l2 geom.Line }

// EqualLength makes l1 and l2 the same length.
func EqualLength(l1, l2 geom.Line) Constraint { return equalLength{l1, l2} }

func (equalLength) Kind() Kind { return KindEqualLength }

func (c equalLength) Params() []geom.ParamID { return join(c.l1.Params(), c.l2.Params()) }

func (c equalLength) Error(s *geom.Store) float64 {
	return sq(s.Vector(c.l1).Length() - s.Vector(c.l2).Length())
}

// lineLengthWeight scales the LineLength residual against the other terms.
const lineLengthWeight = 100

type lineLength struct {
	l      geom.Line
	length geom.ParamID
}

// LineLength fixes the length of l to the value of length.
func LineLength(l geom.Line, length geom.ParamID) Constraint { return lineLength{l, length} }

func (lineLength) Kind() Kind { return KindLineLength }

func (c lineLength) Params() []geom.ParamID {
	return join(c.l.Params(), []geom.ParamID{c.length})
}

func (c lineLength) Error(s *geom.Store) float64 {
	return sq(s.Vector(c.l).Length()-s.Value(c.length)) * lineLengthWeight
}

type lineAngle struct {
	kind   Kind
	l1, l2 geom.Line
	theta  geom.ParamID
}

// InternalAngle sets the angle between the directions of l1 and l2 to theta
// radians. Only the cosine is matched, so the sense of rotation is free.
func InternalAngle(l1, l2 geom.Line, theta geom.ParamID) Constraint {
	return lineAngle{KindInternalAngle, l1, l2, theta}
}

// ExternalAngle sets the supplement of the angle between l1 and l2 to theta.
func ExternalAngle(l1, l2 geom.Line, theta geom.ParamID) Constraint {
	return lineAngle{KindExternalAngle, l1, l2, theta}
}

func (c lineAngle) Kind() Kind { return c.kind }

func (c lineAngle) Params() []geom.ParamID {
	return join(c.l1.Params(), c.l2.Params(), []geom.ParamID{c.theta})
}

func (c lineAngle) Error(s *geom.Store) float64 {
	theta := s.Value(c.theta)
	if c.kind == KindExternalAngle {
		theta = math.Pi - theta
	}

	return sq(s.Vector(c.l1).Cosine(s.Vector(c.l2)) - math.Cos(theta))
}
