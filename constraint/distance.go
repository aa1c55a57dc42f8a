// SPDX-License-Identifier: MIT

package constraint

import (
	"math"

	"github.com/katalvlaran/sketchsolve/geom"
)

// p2lWeight damps the point-to-line distance residuals.
const p2lWeight = 10

type p2pDistance struct {
	kind   Kind
	p1, p2 geom.Point
	dist   geom.ParamID
}

// Distance fixes the Euclidean distance between p1 and p2.
func Distance(p1, p2 geom.Point, dist geom.ParamID) Constraint {
	return p2pDistance{KindP2PDistance, p1, p2, dist}
}

// DistanceHorizontal fixes |p1.x − p2.x|.
func DistanceHorizontal(p1, p2 geom.Point, dist geom.ParamID) Constraint {
	return p2pDistance{KindP2PDistanceHoriz, p1, p2, dist}
}

// DistanceVertical fixes |p1.y − p2.y|.
func DistanceVertical(p1, p2 geom.Point, dist geom.ParamID) Constraint {
	return p2pDistance{KindP2PDistanceVert, p1, p2, dist}
}

func (c p2pDistance) Kind() Kind { return c.kind }

func (c p2pDistance) Params() []geom.ParamID {
	return join(c.p1.Params(), c.p2.Params(), []geom.ParamID{c.dist})
}

func (c p2pDistance) Error(s *geom.Store) float64 {
	var (
		v = s.Pos(c.p1).Sub(s.Pos(c.p2))
		d float64
	)
	switch c.kind {
	case KindP2PDistanceHoriz:
		d = math.Abs(v.DX)
	case KindP2PDistanceVert:
		d = math.Abs(v.DY)
	default:
		d = v.Length()
	}

	return sq(d - s.Value(c.dist))
}

type p2lDistance struct {
	kind Kind
	p    geom.Point
	l    geom.Line
	dist geom.ParamID
}

// DistanceToLine fixes the perpendicular distance from p to the infinite line through l.
func DistanceToLine(p geom.Point, l geom.Line, dist geom.ParamID) Constraint {
	return p2lDistance{KindP2LDistance, p, l, dist}
}

// DistanceToLineHorizontal fixes the distance from p to the line through l
// measured along the x axis at p's height. Undefined for horizontal lines.
func DistanceToLineHorizontal(p geom.Point, l geom.Line, dist geom.ParamID) Constraint {
	return p2lDistance{KindP2LDistanceHoriz, p, l, dist}
}

// DistanceToLineVertical fixes the distance from p to the line through l
// measured along the y axis at p's abscissa. Undefined for vertical lines.
func DistanceToLineVertical(p geom.Point, l geom.Line, dist geom.ParamID) Constraint {
	return p2lDistance{KindP2LDistanceVert, p, l, dist}
}

func (c p2lDistance) Kind() Kind { return c.kind }

func (c p2lDistance) Params() []geom.ParamID {
	return join(c.p.Params(), c.l.Params(), []geom.ParamID{c.dist})
}

func (c p2lDistance) Error(s *geom.Store) float64 {
	var (
		a    = s.Pos(c.l.P1)
		d    = s.Vector(c.l)
		p    = s.Pos(c.p)
		want = s.Value(c.dist)
	)
	switch c.kind {
	case KindP2LDistanceHoriz:
		x := a.X + d.DX*(p.Y-a.Y)/d.DY
		return sq(math.Abs(p.X-x)-want) / p2lWeight
	case KindP2LDistanceVert:
		y := a.Y + d.DY*(p.X-a.X)/d.DX
		return sq(math.Abs(p.Y-y) - want)
	default:
		foot := a.Add(p.Sub(a).ProjectOnto(d))
		return sq(p.DistanceTo(foot)-want) / p2lWeight
	}
}
