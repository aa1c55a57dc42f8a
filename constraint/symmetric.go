// SPDX-License-Identifier: MIT

package constraint

import "github.com/katalvlaran/sketchsolve/geom"

// mirror reflects positions across the infinite line through a symmetry line.
type mirror struct {
	a geom.Position
	d geom.Vector
}

func newMirror(s *geom.Store, l geom.Line) mirror {
	return mirror{a: s.Pos(l.P1), d: s.Vector(l)}
}

// reflect returns the mirror image of p. A zero-length axis yields NaN.
func (m mirror) reflect(p geom.Position) geom.Position {
	t := -(m.d.DY*p.X - m.d.DX*p.Y - m.d.DY*m.a.X + m.d.DX*m.a.Y) / m.d.LengthSquared()

	return geom.Position{X: p.X + m.d.DY*t*2, Y: p.Y - m.d.DX*t*2}
}

// gap is the squared distance between the image of p and q.
func (m mirror) gap(p, q geom.Position) float64 {
	return m.reflect(p).Sub(q).LengthSquared()
}

type symmetricPoints struct {
	p1, p2 geom.Point
	axis   geom.Line
}

// SymmetricPoints makes p2 the mirror image of p1 across axis.
func SymmetricPoints(p1, p2 geom.Point, axis geom.Line) Constraint {
	return symmetricPoints{p1, p2, axis}
}

func (symmetricPoints) Kind() Kind { return KindSymmetricPoints }

func (c symmetricPoints) Params() []geom.ParamID {
	return join(c.p1.Params(), c.p2.Params(), c.axis.Params())
}

func (c symmetricPoints) Error(s *geom.Store) float64 {
	return newMirror(s, c.axis).gap(s.Pos(c.p1), s.Pos(c.p2))
}

type symmetricLines struct {
	l1, l2 geom.Line
	axis   geom.Line
}

// SymmetricLines makes l2 the mirror image of l1 across axis, endpoint by endpoint.
func SymmetricLines(l1, l2, axis geom.Line) Constraint { return symmetricLines{l1, l2, axis} }

func (symmetricLines) Kind() Kind { return KindSymmetricLines }

func (c symmetricLines) Params() []geom.ParamID {
	return join(c.l1.Params(), c.l2.Params(), c.axis.Params())
}

func (c symmetricLines) Error(s *geom.Store) float64 {
	m := newMirror(s, c.axis)

	return m.gap(s.Pos(c.l1.P1), s.Pos(c.l2.P1)) + m.gap(s.Pos(c.l1.P2), s.Pos(c.l2.P2))
}

type symmetricCircles struct {
	c1, c2 geom.Circle
	axis   geom.Line
}

// SymmetricCircles mirrors the center of c1 onto c2 across axis and equalizes radii.
func SymmetricCircles(c1, c2 geom.Circle, axis geom.Line) Constraint {
	return symmetricCircles{c1, c2, axis}
}

func (symmetricCircles) Kind() Kind { return KindSymmetricCircles }

func (c symmetricCircles) Params() []geom.ParamID {
	return join(c.c1.Params(), c.c2.Params(), c.axis.Params())
}

func (c symmetricCircles) Error(s *geom.Store) float64 {
	m := newMirror(s, c.axis)

	return m.gap(s.Pos(c.c1.Center), s.Pos(c.c2.Center)) + sq(s.Value(c.c1.Rad)-s.Value(c.c2.Rad))
}

type symmetricArcs struct {
	a1, a2 geom.Arc
	axis   geom.Line
}

// SymmetricArcs mirrors the start, end and center of a1 onto those of a2.
func SymmetricArcs(a1, a2 geom.Arc, axis geom.Line) Constraint {
	return symmetricArcs{a1, a2, axis}
}

func (symmetricArcs) Kind() Kind { return KindSymmetricArcs }

func (c symmetricArcs) Params() []geom.ParamID {
	return join(c.axis.Params(), c.a1.Params(), c.a2.Params())
}

func (c symmetricArcs) Error(s *geom.Store) float64 {
	m := newMirror(s, c.axis)

	return m.gap(s.ArcStart(c.a1), s.ArcStart(c.a2)) +
		m.gap(s.ArcEnd(c.a1), s.ArcEnd(c.a2)) +
		m.gap(s.Pos(c.a1.Center), s.Pos(c.a2.Center))
}
