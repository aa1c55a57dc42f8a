// SPDX-License-Identifier: MIT

package constraint

import "github.com/katalvlaran/sketchsolve/geom"

// Builder accumulates constraints over one Store. Methods taking a float64
// allocate a fixed parameter for it; use the package-level constructors with
// an explicit handle when several constraints must share one value.
//
// Every method appends the constraint it builds and returns it.
// A Builder is not safe for concurrent use.
type Builder struct {
	s  *geom.Store
	cs []Constraint
}

// NewBuilder returns an empty Builder over s.
func NewBuilder(s *geom.Store) *Builder {
	return &Builder{s: s}
}

// Store returns the Store the Builder allocates into.
func (b *Builder) Store() *geom.Store { return b.s }

// Add appends already built constraints.
func (b *Builder) Add(cs ...Constraint) *Builder {
	b.cs = append(b.cs, cs...)
	return b
}

// Len returns the number of accumulated constraints.
func (b *Builder) Len() int { return len(b.cs) }

// Constraints returns a copy of the accumulated constraints, in insertion order.
func (b *Builder) Constraints() []Constraint {
	out := make([]Constraint, len(b.cs))
	copy(out, b.cs)

	return out
}

// Fixed allocates a fixed parameter holding v.
func (b *Builder) Fixed(v float64) geom.ParamID {
	return b.s.Param(v, false)
}

func (b *Builder) push(c Constraint) Constraint {
	b.cs = append(b.cs, c)
	return c
}

// Horizontal appends Horizontal(l).
func (b *Builder) Horizontal(l geom.Line) Constraint { return b.push(Horizontal(l)) }

// Vertical appends Vertical(l).
func (b *Builder) Vertical(l geom.Line) Constraint { return b.push(Vertical(l)) }

// Coincident appends Coincident(p1, p2).
func (b *Builder) Coincident(p1, p2 geom.Point) Constraint { return b.push(Coincident(p1, p2)) }

// PointOnLine appends PointOnLine(p, l).
func (b *Builder) PointOnLine(p geom.Point, l geom.Line) Constraint {
	return b.push(PointOnLine(p, l))
}

// PointOnLineMidpoint appends PointOnLineMidpoint(p, l).
func (b *Builder) PointOnLineMidpoint(p geom.Point, l geom.Line) Constraint {
	return b.push(PointOnLineMidpoint(p, l))
}

// PointOnCircle appends PointOnCircle(p, c).
func (b *Builder) PointOnCircle(p geom.Point, c geom.Circle) Constraint {
	return b.push(PointOnCircle(p, c))
}

// PointOnArc appends PointOnArc(p, a).
func (b *Builder) PointOnArc(p geom.Point, a geom.Arc) Constraint {
	return b.push(PointOnArc(p, a))
}

// PointOnArcMidpoint appends PointOnArcMidpoint(p, a).
func (b *Builder) PointOnArcMidpoint(p geom.Point, a geom.Arc) Constraint {
	return b.push(PointOnArcMidpoint(p, a))
}

// PointOnCircleQuad pins p to the cardinal point quad (QuadEast..QuadSouth) of c.
func (b *Builder) PointOnCircleQuad(p geom.Point, c geom.Circle, quad int) Constraint {
	return b.push(PointOnCircleQuad(p, c, b.Fixed(float64(quad))))
}

// Perpendicular appends Perpendicular(l1, l2).
func (b *Builder) Perpendicular(l1, l2 geom.Line) Constraint { return b.push(Perpendicular(l1, l2)) }

// Parallel appends Parallel(l1, l2).
func (b *Builder) Parallel(l1, l2 geom.Line) Constraint { return b.push(Parallel(l1, l2)) }

// Collinear appends Collinear(l1, l2).
func (b *Builder) Collinear(l1, l2 geom.Line) Constraint { return b.push(Collinear(l1, l2)) }

// EqualLength appends EqualLength(l1, l2).
func (b *Builder) EqualLength(l1, l2 geom.Line) Constraint { return b.push(EqualLength(l1, l2)) }

// LineLength fixes the length of l to length.
func (b *Builder) LineLength(l geom.Line, length float64) Constraint {
	return b.push(LineLength(l, b.Fixed(length)))
}

// InternalAngle fixes the angle between l1 and l2 to theta radians.
func (b *Builder) InternalAngle(l1, l2 geom.Line, theta float64) Constraint {
	return b.push(InternalAngle(l1, l2, b.Fixed(theta)))
}

// ExternalAngle fixes the supplement of the angle between l1 and l2 to theta radians.
func (b *Builder) ExternalAngle(l1, l2 geom.Line, theta float64) Constraint {
	return b.push(ExternalAngle(l1, l2, b.Fixed(theta)))
}

// TangentToCircle appends TangentToCircle(l, c).
func (b *Builder) TangentToCircle(l geom.Line, c geom.Circle) Constraint {
	return b.push(TangentToCircle(l, c))
}

// TangentToArc appends TangentToArc(l, a).
func (b *Builder) TangentToArc(l geom.Line, a geom.Arc) Constraint {
	return b.push(TangentToArc(l, a))
}

// ConcentricCircles appends ConcentricCircles(c1, c2).
func (b *Builder) ConcentricCircles(c1, c2 geom.Circle) Constraint {
	return b.push(ConcentricCircles(c1, c2))
}

// ConcentricArcs appends ConcentricArcs(a1, a2).
func (b *Builder) ConcentricArcs(a1, a2 geom.Arc) Constraint {
	return b.push(ConcentricArcs(a1, a2))
}

// ConcentricCircleArc appends ConcentricCircleArc(c, a).
func (b *Builder) ConcentricCircleArc(c geom.Circle, a geom.Arc) Constraint {
	return b.push(ConcentricCircleArc(c, a))
}

// EqualRadiusCircles appends EqualRadiusCircles(c1, c2).
func (b *Builder) EqualRadiusCircles(c1, c2 geom.Circle) Constraint {
	return b.push(EqualRadiusCircles(c1, c2))
}

// EqualRadiusArcs appends EqualRadiusArcs(a1, a2).
func (b *Builder) EqualRadiusArcs(a1, a2 geom.Arc) Constraint {
	return b.push(EqualRadiusArcs(a1, a2))
}

// EqualRadiusCircleArc appends EqualRadiusCircleArc(c, a).
func (b *Builder) EqualRadiusCircleArc(c geom.Circle, a geom.Arc) Constraint {
	return b.push(EqualRadiusCircleArc(c, a))
}

// CircleRadius fixes the radius of c to rad.
func (b *Builder) CircleRadius(c geom.Circle, rad float64) Constraint {
	return b.push(CircleRadius(c, b.Fixed(rad)))
}

// ArcRadius fixes the center-to-start radius of a to rad.
func (b *Builder) ArcRadius(a geom.Arc, rad float64) Constraint {
	return b.push(ArcRadius(a, b.Fixed(rad)))
}

// ArcRules appends ArcRules(a).
func (b *Builder) ArcRules(a geom.Arc) Constraint { return b.push(ArcRules(a)) }

// SymmetricPoints mirrors p1 onto p2 across axis.
func (b *Builder) SymmetricPoints(p1, p2 geom.Point, axis geom.Line) Constraint {
	return b.push(SymmetricPoints(p1, p2, axis))
}

// SymmetricLines mirrors l1 onto l2 across axis.
func (b *Builder) SymmetricLines(l1, l2, axis geom.Line) Constraint {
	return b.push(SymmetricLines(l1, l2, axis))
}

// SymmetricCircles mirrors c1 onto c2 across axis.
func (b *Builder) SymmetricCircles(c1, c2 geom.Circle, axis geom.Line) Constraint {
	return b.push(SymmetricCircles(c1, c2, axis))
}

// SymmetricArcs mirrors a1 onto a2 across axis.
func (b *Builder) SymmetricArcs(a1, a2 geom.Arc, axis geom.Line) Constraint {
	return b.push(SymmetricArcs(a1, a2, axis))
}

// Distance fixes the distance between p1 and p2 to d.
func (b *Builder) Distance(p1, p2 geom.Point, d float64) Constraint {
	return b.push(Distance(p1, p2, b.Fixed(d)))
}

// DistanceHorizontal fixes |p1.x − p2.x| to d.
func (b *Builder) DistanceHorizontal(p1, p2 geom.Point, d float64) Constraint {
	return b.push(DistanceHorizontal(p1, p2, b.Fixed(d)))
}

// DistanceVertical fixes |p1.y − p2.y| to d.
func (b *Builder) DistanceVertical(p1, p2 geom.Point, d float64) Constraint {
	return b.push(DistanceVertical(p1, p2, b.Fixed(d)))
}

// DistanceToLine fixes the perpendicular distance from p to l at d.
func (b *Builder) DistanceToLine(p geom.Point, l geom.Line, d float64) Constraint {
	return b.push(DistanceToLine(p, l, b.Fixed(d)))
}

// DistanceToLineHorizontal appends DistanceToLineHorizontal(p, l, d).
func (b *Builder) DistanceToLineHorizontal(p geom.Point, l geom.Line, d float64) Constraint {
	return b.push(DistanceToLineHorizontal(p, l, b.Fixed(d)))
}

// DistanceToLineVertical appends DistanceToLineVertical(p, l, d).
func (b *Builder) DistanceToLineVertical(p geom.Point, l geom.Line, d float64) Constraint {
	return b.push(DistanceToLineVertical(p, l, b.Fixed(d)))
}
