// SPDX-License-Identifier: MIT

package sketchfile

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sketchsolve/constraint"
	"github.com/katalvlaran/sketchsolve/geom"
)

// aliasTangent is resolved to TangentToArc or TangentToCircle by operand.
const aliasTangent = "tangent"

var kindByName = func() map[string]constraint.Kind {
	m := map[string]constraint.Kind{
		"coincident": constraint.KindPointOnPoint,
		"distance":   constraint.KindP2PDistance,
	}
	for _, k := range constraint.Kinds() {
		m[strings.ToLower(k.String())] = k
	}

	return m
}()

var quadrants = map[string]int{
	"east":  constraint.QuadEast,
	"north": constraint.QuadNorth,
	"west":  constraint.QuadWest,
	"south": constraint.QuadSouth,
}

// KindOf returns the constraint kind a document name selects.
func KindOf(name string) (constraint.Kind, bool) {
	k, ok := kindByName[strings.ToLower(name)]
	return k, ok
}

type resolver struct {
	sk *Sketch
}

func (r resolver) constraint(d ConstraintDoc) (constraint.Constraint, error) {
	name := strings.ToLower(d.Kind)
	if name == aliasTangent {
		if d.Arc != "" || len(d.Arcs) > 0 {
			name = strings.ToLower(constraint.KindTangentToArc.String())
		} else {
			name = strings.ToLower(constraint.KindTangentToCircle.String())
		}
	}
	k, ok := kindByName[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", d.Kind, ErrUnknownKind)
	}

	switch k {
	case constraint.KindPointOnPoint:
		ps, err := r.points(d, 2)
		if err != nil {
			return nil, err
		}
		return constraint.Coincident(ps[0], ps[1]), nil

	case constraint.KindHorizontal, constraint.KindVertical, constraint.KindLineLength:
		ls, err := r.lines(d, 1)
		if err != nil {
			return nil, err
		}
		switch k {
		case constraint.KindHorizontal:
			return constraint.Horizontal(ls[0]), nil
		case constraint.KindVertical:
			return constraint.Vertical(ls[0]), nil
		}
		v, err := r.scalar(d)
		if err != nil {
			return nil, err
		}
		return constraint.LineLength(ls[0], v), nil

	case constraint.KindParallel, constraint.KindPerpendicular, constraint.KindCollinear,
		constraint.KindEqualLength, constraint.KindInternalAngle, constraint.KindExternalAngle:
		ls, err := r.lines(d, 2)
		if err != nil {
			return nil, err
		}
		return r.linePair(k, ls[0], ls[1], d)

	case constraint.KindPointOnLine, constraint.KindPointOnLineMidpoint,
		constraint.KindP2LDistance, constraint.KindP2LDistanceHoriz, constraint.KindP2LDistanceVert:
		ps, err := r.points(d, 1)
		if err != nil {
			return nil, err
		}
		ls, err := r.lines(d, 1)
		if err != nil {
			return nil, err
		}
		return r.pointLine(k, ps[0], ls[0], d)

	case constraint.KindP2PDistance, constraint.KindP2PDistanceHoriz, constraint.KindP2PDistanceVert:
		ps, err := r.points(d, 2)
		if err != nil {
			return nil, err
		}
		v, err := r.scalar(d)
		if err != nil {
			return nil, err
		}
		switch k {
		case constraint.KindP2PDistanceHoriz:
			return constraint.DistanceHorizontal(ps[0], ps[1], v), nil
		case constraint.KindP2PDistanceVert:
			return constraint.DistanceVertical(ps[0], ps[1], v), nil
		}
		return constraint.Distance(ps[0], ps[1], v), nil

	case constraint.KindTangentToCircle:
		ls, err := r.lines(d, 1)
		if err != nil {
			return nil, err
		}
		cs, err := r.circles(d, 1)
		if err != nil {
			return nil, err
		}
		return constraint.TangentToCircle(ls[0], cs[0]), nil

	case constraint.KindTangentToArc:
		ls, err := r.lines(d, 1)
		if err != nil {
			return nil, err
		}
		as, err := r.arcs(d, 1)
		if err != nil {
			return nil, err
		}
		return constraint.TangentToArc(ls[0], as[0]), nil

	case constraint.KindPointOnCircle, constraint.KindPointOnCircleQuad:
		ps, err := r.points(d, 1)
		if err != nil {
			return nil, err
		}
		cs, err := r.circles(d, 1)
		if err != nil {
			return nil, err
		}
		if k == constraint.KindPointOnCircle {
			return constraint.PointOnCircle(ps[0], cs[0]), nil
		}
		q, ok := quadrants[strings.ToLower(d.Quadrant)]
		if !ok {
			return nil, fmt.Errorf("quadrant %q: %w", d.Quadrant, constraint.ErrInvalidQuadrant)
		}
		return constraint.PointOnCircleQuad(ps[0], cs[0], r.sk.Store.Param(float64(q), false)), nil

	case constraint.KindPointOnArc, constraint.KindPointOnArcMidpoint:
		ps, err := r.points(d, 1)
		if err != nil {
			return nil, err
		}
		as, err := r.arcs(d, 1)
		if err != nil {
			return nil, err
		}
		if k == constraint.KindPointOnArc {
			return constraint.PointOnArc(ps[0], as[0]), nil
		}
		return constraint.PointOnArcMidpoint(ps[0], as[0]), nil

	case constraint.KindCircleRadius, constraint.KindEqualRadiusCircles,
		constraint.KindConcentricCircles, constraint.KindSymmetricCircles:
		return r.circular(k, d)

	case constraint.KindArcRules, constraint.KindArcRadius, constraint.KindEqualRadiusArcs,
		constraint.KindConcentricArcs, constraint.KindSymmetricArcs:
		return r.arcular(k, d)

	case constraint.KindEqualRadiusCircArc, constraint.KindConcentricCircArc:
		cs, err := r.circles(d, 1)
		if err != nil {
			return nil, err
		}
		as, err := r.arcs(d, 1)
		if err != nil {
			return nil, err
		}
		if k == constraint.KindConcentricCircArc {
			return constraint.ConcentricCircleArc(cs[0], as[0]), nil
		}
		return constraint.EqualRadiusCircleArc(cs[0], as[0]), nil

	case constraint.KindSymmetricPoints:
		ps, err := r.points(d, 2)
		if err != nil {
			return nil, err
		}
		axis, err := r.axis(d)
		if err != nil {
			return nil, err
		}
		return constraint.SymmetricPoints(ps[0], ps[1], axis), nil

	case constraint.KindSymmetricLines:
		ls, err := r.lines(d, 2)
		if err != nil {
			return nil, err
		}
		axis, err := r.axis(d)
		if err != nil {
			return nil, err
		}
		return constraint.SymmetricLines(ls[0], ls[1], axis), nil
	}

	return nil, fmt.Errorf("%q: %w", d.Kind, ErrUnknownKind)
}

func (r resolver) linePair(k constraint.Kind, l1, l2 geom.Line, d ConstraintDoc) (constraint.Constraint, error) {
	switch k {
	case constraint.KindParallel:
		return constraint.Parallel(l1, l2), nil
	case constraint.KindPerpendicular:
		return constraint.Perpendicular(l1, l2), nil
	case constraint.KindCollinear:
		return constraint.Collinear(l1, l2), nil
	case constraint.KindEqualLength:
		return constraint.EqualLength(l1, l2), nil
	}
	theta, err := r.scalar(d)
	if err != nil {
		return nil, err
	}
	if k == constraint.KindExternalAngle {
		return constraint.ExternalAngle(l1, l2, theta), nil
	}

	return constraint.InternalAngle(l1, l2, theta), nil
}

func (r resolver) pointLine(k constraint.Kind, p geom.Point, l geom.Line, d ConstraintDoc) (constraint.Constraint, error) {
	switch k {
	case constraint.KindPointOnLine:
		return constraint.PointOnLine(p, l), nil
	case constraint.KindPointOnLineMidpoint:
		return constraint.PointOnLineMidpoint(p, l), nil
	}
	v, err := r.scalar(d)
	if err != nil {
		return nil, err
	}
	switch k {
	case constraint.KindP2LDistanceHoriz:
		return constraint.DistanceToLineHorizontal(p, l, v), nil
	case constraint.KindP2LDistanceVert:
		return constraint.DistanceToLineVertical(p, l, v), nil
	}

	return constraint.DistanceToLine(p, l, v), nil
}

func (r resolver) circular(k constraint.Kind, d ConstraintDoc) (constraint.Constraint, error) {
	n := 2
	if k == constraint.KindCircleRadius {
		n = 1
	}
	cs, err := r.circles(d, n)
	if err != nil {
		return nil, err
	}
	switch k {
	case constraint.KindCircleRadius:
		v, err := r.scalar(d)
		if err != nil {
			return nil, err
		}
		return constraint.CircleRadius(cs[0], v), nil
	case constraint.KindEqualRadiusCircles:
		return constraint.EqualRadiusCircles(cs[0], cs[1]), nil
	case constraint.KindConcentricCircles:
		return constraint.ConcentricCircles(cs[0], cs[1]), nil
	}
	axis, err := r.axis(d)
	if err != nil {
		return nil, err
	}

	return constraint.SymmetricCircles(cs[0], cs[1], axis), nil
}

func (r resolver) arcular(k constraint.Kind, d ConstraintDoc) (constraint.Constraint, error) {
	n := 2
	if k == constraint.KindArcRules || k == constraint.KindArcRadius {
		n = 1
	}
	as, err := r.arcs(d, n)
	if err != nil {
		return nil, err
	}
	switch k {
	case constraint.KindArcRules:
		return constraint.ArcRules(as[0]), nil
	case constraint.KindArcRadius:
		v, err := r.scalar(d)
		if err != nil {
			return nil, err
		}
		return constraint.ArcRadius(as[0], v), nil
	case constraint.KindEqualRadiusArcs:
		return constraint.EqualRadiusArcs(as[0], as[1]), nil
	case constraint.KindConcentricArcs:
		return constraint.ConcentricArcs(as[0], as[1]), nil
	}
	axis, err := r.axis(d)
	if err != nil {
		return nil, err
	}

	return constraint.SymmetricArcs(as[0], as[1], axis), nil
}

func (r resolver) points(d ConstraintDoc, n int) ([]geom.Point, error) {
	return pick(r.sk.Points, "point", refs(d.Point, d.Points), n)
}

func (r resolver) lines(d ConstraintDoc, n int) ([]geom.Line, error) {
	return pick(r.sk.Lines, "line", refs(d.Line, d.Lines), n)
}

func (r resolver) circles(d ConstraintDoc, n int) ([]geom.Circle, error) {
	return pick(r.sk.Circles, "circle", refs(d.Circle, d.Circles), n)
}

func (r resolver) arcs(d ConstraintDoc, n int) ([]geom.Arc, error) {
	return pick(r.sk.Arcs, "arc", refs(d.Arc, d.Arcs), n)
}

func (r resolver) axis(d ConstraintDoc) (geom.Line, error) {
	if d.Axis == "" {
		return geom.Line{}, fmt.Errorf("missing axis: %w", ErrMalformed)
	}
	l, ok := r.sk.Lines[d.Axis]
	if !ok {
		return geom.Line{}, fmt.Errorf("axis %q: %w", d.Axis, ErrUnknownRef)
	}

	return l, nil
}

// scalar returns the named param, or a new fixed param holding the literal.
func (r resolver) scalar(d ConstraintDoc) (geom.ParamID, error) {
	switch {
	case d.Param != "" && d.Value != nil:
		return 0, fmt.Errorf("both param and value: %w", ErrMalformed)
	case d.Param != "":
		id, ok := r.sk.Params[d.Param]
		if !ok {
			return 0, fmt.Errorf("param %q: %w", d.Param, ErrUnknownRef)
		}
		return id, nil
	case d.Value != nil:
		return r.sk.Store.Param(*d.Value, false), nil
	}

	return 0, fmt.Errorf("missing param or value: %w", ErrMalformed)
}

func refs(one string, many []string) []string {
	if one == "" {
		return many
	}

	return append([]string{one}, many...)
}

func pick[T any](table map[string]T, what string, names []string, n int) ([]T, error) {
	if len(names) != n {
		return nil, fmt.Errorf("want %d %s operand(s), got %d: %w", n, what, len(names), ErrMalformed)
	}
	out := make([]T, n)
	for i, name := range names {
		v, ok := table[name]
		if !ok {
			return nil, fmt.Errorf("%s %q: %w", what, name, ErrUnknownRef)
		}
		out[i] = v
	}

	return out, nil
}
