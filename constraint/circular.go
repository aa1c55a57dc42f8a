// SPDX-License-Identifier: MIT

package constraint

import "github.com/katalvlaran/sketchsolve/geom"

// arcRadius is the distance from the center of a to its start point.
func arcRadius(s *geom.Store, a geom.Arc) float64 {
	return s.Pos(a.Center).DistanceTo(s.ArcStart(a))
}

type tangentToCircle struct {
	l geom.Line
	c geom.Circle
}

// TangentToCircle makes the infinite line through l touch c.
func TangentToCircle(l geom.Line, c geom.Circle) Constraint { return tangentToCircle{l, c} }

func (tangentToCircle) Kind() Kind { return KindTangentToCircle }

func (c tangentToCircle) Params() []geom.ParamID { return join(c.l.Params(), c.c.Params()) }

func (c tangentToCircle) Error(s *geom.Store) float64 {
	return sq(s.CenterTo(c.c, c.l).Length() - s.Value(c.c.Rad))
}

type tangentToArc struct {
	l geom.Line
	a geom.Arc
}

// TangentToArc makes the infinite line through l touch the circle carrying a.
// Distances are compared squared.
func TangentToArc(l geom.Line, a geom.Arc) Constraint { return tangentToArc{l, a} }

func (tangentToArc) Kind() Kind { return KindTangentToArc }

func (c tangentToArc) Params() []geom.ParamID { return join(c.l.Params(), c.a.Params()) }

func (c tangentToArc) Error(s *geom.Store) float64 {
	var (
		center = s.Pos(c.a.Center)
		foot   = s.CenterTo(geom.Circle{Center: c.a.Center, Rad: c.a.Rad}, c.l)
		radSq  = s.ArcStart(c.a).Sub(center).LengthSquared()
	)

	return sq(foot.Vector().LengthSquared() - radSq)
}

// ---------- concentric ----------

type concentric struct {
	kind   Kind
	c1, c2 geom.Point
	params []geom.ParamID
}

func (c concentric) Kind() Kind { return c.kind }

func (c concentric) Params() []geom.ParamID { return c.params }

func (c concentric) Error(s *geom.Store) float64 {
	return s.Pos(c.c1).Sub(s.Pos(c.c2)).LengthSquared()
}

// ConcentricCircles gives c1 and c2 the same center.
func ConcentricCircles(c1, c2 geom.Circle) Constraint {
	return concentric{KindConcentricCircles, c1.Center, c2.Center, join(c1.Params(), c2.Params())}
}

// ConcentricArcs gives a1 and a2 the same center.
func ConcentricArcs(a1, a2 geom.Arc) Constraint {
	return concentric{KindConcentricArcs, a1.Center, a2.Center, join(a1.Params(), a2.Params())}
}

// ConcentricCircleArc gives c and a the same center.
func ConcentricCircleArc(c geom.Circle, a geom.Arc) Constraint {
	return concentric{KindConcentricCircArc, c.Center, a.Center, join(c.Params(), a.Params())}
}

// ---------- radii ----------

type equalRadiusCircles struct{ c1, c2 geom.Circle }

// EqualRadiusCircles gives c1 and c2 the same radius.
func EqualRadiusCircles(c1, c2 geom.Circle) Constraint { return equalRadiusCircles{c1, c2} }

func (equalRadiusCircles) Kind() Kind { return KindEqualRadiusCircles }

func (c equalRadiusCircles) Params() []geom.ParamID { return join(c.c1.Params(), c.c2.Params()) }

func (c equalRadiusCircles) Error(s *geom.Store) float64 {
	return sq(s.Value(c.c1.Rad) - s.Value(c.c2.Rad))
}

type equalRadiusArcs struct{ a1, a2 geom.Arc }

// EqualRadiusArcs gives a1 and a2 the same center-to-start radius.
func EqualRadiusArcs(a1, a2 geom.Arc) Constraint { return equalRadiusArcs{a1, a2} }

func (equalRadiusArcs) Kind() Kind { return KindEqualRadiusArcs }

func (c equalRadiusArcs) Params() []geom.ParamID { return join(c.a1.Params(), c.a2.Params()) }

func (c equalRadiusArcs) Error(s *geom.Store) float64 {
	return sq(arcRadius(s, c.a1) - arcRadius(s, c.a2))
}

type equalRadiusCircleArc struct {
	c geom.Circle
	a geom.Arc
}

// EqualRadiusCircleArc gives c and a the same radius.
func EqualRadiusCircleArc(c geom.Circle, a geom.Arc) Constraint {
	return equalRadiusCircleArc{c, a}
}

func (equalRadiusCircleArc) Kind() Kind { return KindEqualRadiusCircArc }

func (c equalRadiusCircleArc) Params() []geom.ParamID { return join(c.a.Params(), c.c.Params()) }

func (c equalRadiusCircleArc) Error(s *geom.Store) float64 {
	return sq(arcRadius(s, c.a) - s.Value(c.c.Rad))
}

type circleRadius struct {
	c   geom.Circle
	rad geom.ParamID
}

// CircleRadius fixes the radius of c to the value of rad.
func CircleRadius(c geom.Circle, rad geom.ParamID) Constraint { return circleRadius{c, rad} }

func (circleRadius) Kind() Kind { return KindCircleRadius }

func (c circleRadius) Params() []geom.ParamID {
	return join(c.c.Params(), []geom.ParamID{c.rad})
}

func (c circleRadius) Error(s *geom.Store) float64 {
	return sq(s.Value(c.c.Rad) - s.Value(c.rad))
}

type arcRadiusValue struct {
	a   geom.Arc
	rad geom.ParamID
}

// ArcRadius fixes the center-to-start radius of a to the value of rad.
func ArcRadius(a geom.Arc, rad geom.ParamID) Constraint { return arcRadiusValue{a, rad} }

func (arcRadiusValue) Kind() Kind { return KindArcRadius }

func (c arcRadiusValue) Params() []geom.ParamID {
	return join(c.a.Params(), []geom.ParamID{c.rad})
}

func (c arcRadiusValue) Error(s *geom.Store) float64 {
	return sq(arcRadius(s, c.a) - s.Value(c.rad))
}

type arcRules struct{ a geom.Arc }

// ArcRules keeps the start and end points of a equidistant from its center.
// With derived endpoints the term only moves through rounding, but it keeps
// the arc's parameters in the free set of a sketch that references nothing
// else about it.
func ArcRules(a geom.Arc) Constraint { return arcRules{a} }

func (arcRules) Kind() Kind { return KindArcRules }

func (c arcRules) Params() []geom.ParamID { return c.a.Params() }

func (c arcRules) Error(s *geom.Store) float64 {
	var (
		ctr = s.Pos(c.a.Center)
		st  = s.ArcStart(c.a)
		end = s.ArcEnd(c.a)
	)
	// |end − ctr|² − |start − ctr|², expanded.
	num := -2*ctr.X*end.X + end.X*end.X - 2*ctr.Y*end.Y + end.Y*end.Y +
		2*ctr.X*st.X - st.X*st.X + 2*ctr.Y*st.Y - st.Y*st.Y
	den := 4*end.X*end.X + end.Y*end.Y - 2*end.X*st.X + st.X*st.X - 2*end.Y*st.Y + st.Y*st.Y

	return num * num / den
}
