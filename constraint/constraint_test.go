// SPDX-License-Identifier: MIT

package constraint_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sketchsolve/constraint"
	"github.com/katalvlaran/sketchsolve/geom"
)

const eps = 1e-9

func line(s *geom.Store, x1, y1, x2, y2 float64) geom.Line {
	return geom.NewLine(s.FixedPoint(x1, y1), s.FixedPoint(x2, y2))
}

func circle(s *geom.Store, x, y, r float64) geom.Circle {
	return s.Circle(s.FixedPoint(x, y), r, false)
}

// TestResiduals checks every kind on a satisfied and, where meaningful,
// a violated configuration with a hand-computed residual.
func TestResiduals(t *testing.T) {
	cases := []struct {
		name  string
		kind  constraint.Kind
		build func(b *constraint.Builder, s *geom.Store) constraint.Constraint
		want  float64
	}{
		{"horizontal/ok", constraint.KindHorizontal, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.Horizontal(line(s, 0, 0, 10, 0))
		}, 0},
		{"horizontal/off", constraint.KindHorizontal, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.Horizontal(line(s, 0, 0, 10, 2))
		}, 4},
		{"vertical/off", constraint.KindVertical, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.Vertical(line(s, 3, 0, 0, 5))
		}, 9},
		{"coincident/off", constraint.KindPointOnPoint, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.Coincident(s.FixedPoint(1, 2), s.FixedPoint(4, 6))
		}, 25},
		{"pointOnLine/shallow", constraint.KindPointOnLine, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.PointOnLine(s.FixedPoint(5, 6), line(s, 0, 0, 10, 10))
		}, 1},
		{"pointOnLine/steep", constraint.KindPointOnLine, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.PointOnLine(s.FixedPoint(0.5, 5), line(s, 0, 0, 1, 10))
		}, 0},
		{"pointOnLine/vertical", constraint.KindPointOnLine, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.PointOnLine(s.FixedPoint(3, 7), line(s, 1, 0, 1, 10))
		}, 4},
		{"lineMidpoint/off", constraint.KindPointOnLineMidpoint, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.PointOnLineMidpoint(s.FixedPoint(5, 6), line(s, 0, 0, 10, 10))
		}, 1},
		{"pointOnCircle/ok", constraint.KindPointOnCircle, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.PointOnCircle(s.FixedPoint(3, 4), circle(s, 0, 0, 5))
		}, 0},
		{"pointOnCircle/off", constraint.KindPointOnCircle, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.PointOnCircle(s.FixedPoint(6, 8), circle(s, 0, 0, 5))
		}, 25},
		{"pointOnArc/ok", constraint.KindPointOnArc, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.PointOnArc(s.FixedPoint(0, 5), s.Arc(s.FixedPoint(0, 0), 5, 0, math.Pi/2, false))
		}, 0},
		{"arcMidpoint/ok", constraint.KindPointOnArcMidpoint, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.PointOnArcMidpoint(s.FixedPoint(math.Sqrt2, math.Sqrt2), s.Arc(s.FixedPoint(0, 0), 2, 0, math.Pi/2, false))
		}, 0},
		{"quad/north", constraint.KindPointOnCircleQuad, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.PointOnCircleQuad(s.FixedPoint(1, 3), circle(s, 1, 1, 2), constraint.QuadNorth)
		}, 0},
		{"quad/west", constraint.KindPointOnCircleQuad, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.PointOnCircleQuad(s.FixedPoint(1, 3), circle(s, 1, 1, 2), constraint.QuadWest)
		}, 8},
		{"perpendicular/ok", constraint.KindPerpendicular, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.Perpendicular(line(s, 0, 0, 1, 0), line(s, 0, 0, 0, 1))
		}, 0},
		{"perpendicular/off", constraint.KindPerpendicular, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.Perpendicular(line(s, 0, 0, 1, 0), line(s, 0, 0, 1, 1))
		}, 1},
		{"parallel/opposite", constraint.KindParallel, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.Parallel(line(s, 0, 0, 2, 0), line(s, 0, 1, -3, 1))
		}, 0},
		{"parallel/off", constraint.KindParallel, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.Parallel(line(s, 0, 0, 2, 0), line(s, 0, 0, 0, 4))
		}, 1},
		{"collinear/ok", constraint.KindCollinear, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.Collinear(line(s, 0, 0, 1, 1), line(s, 2, 2, 3, 3))
		}, 0},
		{"collinear/off", constraint.KindCollinear, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.Collinear(line(s, 0, 0, 1, 1), line(s, 2, 3, 3, 3))
		}, 1},
		{"collinear/vertical", constraint.KindCollinear, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.Collinear(line(s, 1, 0, 1, 10), line(s, 3, 2, 1, 5))
		}, 4},
		{"collinear/steep", constraint.KindCollinear, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.Collinear(line(s, 0, 0, 1, 10), line(s, 0.5, 5, 2, 10))
		}, 1},
		{"collinear/slopeMinusOne", constraint.KindCollinear, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.Collinear(line(s, 0, 0, 1, -1), line(s, 2, -1, 3, -3))
		}, 1},
		{"pointOnLine/slopeMinusOne", constraint.KindPointOnLine, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.PointOnLine(s.FixedPoint(2, -1), line(s, 0, 0, 1, -1))
		}, 1},
		{"equalLength/ok", constraint.KindEqualLength, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.EqualLength(line(s, 0, 0, 3, 4), line(s, 0, 0, 5, 0))
		}, 0},
		{"lineLength/off", constraint.KindLineLength, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.LineLength(line(s, 0, 0, 3, 4), 4)
		}, 100},
		{"internalAngle/right", constraint.KindInternalAngle, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.InternalAngle(line(s, 0, 0, 1, 0), line(s, 0, 0, 0, 1), math.Pi/2)
		}, 0},
		{"internalAngle/off", constraint.KindInternalAngle, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.InternalAngle(line(s, 0, 0, 1, 0), line(s, 0, 0, 2, 0), math.Pi/2)
		}, 1},
		{"externalAngle/flat", constraint.KindExternalAngle, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.ExternalAngle(line(s, 0, 0, 1, 0), line(s, 0, 0, 2, 0), math.Pi)
		}, 0},
		{"tangentCircle/ok", constraint.KindTangentToCircle, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.TangentToCircle(line(s, -10, -5, -10, 5), circle(s, 0, 0, 10))
		}, 0},
		{"tangentCircle/off", constraint.KindTangentToCircle, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.TangentToCircle(line(s, -8, -5, -8, 5), circle(s, 0, 0, 10))
		}, 4},
		{"tangentArc/ok", constraint.KindTangentToArc, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.TangentToArc(line(s, -10, -5, -10, 5), s.Arc(s.FixedPoint(0, 0), 10, 0, 1, false))
		}, 0},
		{"concentricCircles/off", constraint.KindConcentricCircles, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.ConcentricCircles(circle(s, 0, 0, 1), circle(s, 3, 4, 2))
		}, 25},
		{"concentricArcs/ok", constraint.KindConcentricArcs, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			o := s.FixedPoint(1, 1)
			return b.ConcentricArcs(s.Arc(o, 1, 0, 1, false), s.Arc(o, 2, 0, 1, false))
		}, 0},
		{"concentricCircArc/off", constraint.KindConcentricCircArc, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.ConcentricCircleArc(circle(s, 0, 0, 1), s.Arc(s.FixedPoint(0, 2), 1, 0, 1, false))
		}, 4},
		{"equalRadiusCircles/off", constraint.KindEqualRadiusCircles, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.EqualRadiusCircles(circle(s, 0, 0, 1), circle(s, 5, 5, 3))
		}, 4},
		{"equalRadiusArcs/ok", constraint.KindEqualRadiusArcs, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.EqualRadiusArcs(s.Arc(s.FixedPoint(0, 0), 3, 0.3, 1, false), s.Arc(s.FixedPoint(9, 9), 3, 2, 3, false))
		}, 0},
		{"equalRadiusCircArc/off", constraint.KindEqualRadiusCircArc, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.EqualRadiusCircleArc(circle(s, 0, 0, 1), s.Arc(s.FixedPoint(4, 4), 3, 0, 1, false))
		}, 4},
		{"circleRadius/off", constraint.KindCircleRadius, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.CircleRadius(circle(s, 0, 0, 4), 1)
		}, 9},
		{"arcRadius/off", constraint.KindArcRadius, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.ArcRadius(s.Arc(s.FixedPoint(0, 0), 4, 0, 1, false), 2)
		}, 4},
		{"arcRules/ok", constraint.KindArcRules, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.ArcRules(s.Arc(s.FixedPoint(1, 2), 4, 0.5, 2, false))
		}, 0},
		{"symmetricPoints/ok", constraint.KindSymmetricPoints, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.SymmetricPoints(s.FixedPoint(2, 3), s.FixedPoint(2, -3), line(s, 0, 0, 1, 0))
		}, 0},
		{"symmetricPoints/off", constraint.KindSymmetricPoints, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.SymmetricPoints(s.FixedPoint(2, 3), s.FixedPoint(2, 3), line(s, 0, 0, 1, 0))
		}, 36},
		{"symmetricLines/diagonal", constraint.KindSymmetricLines, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.SymmetricLines(line(s, 1, 0, 2, 0), line(s, 0, 1, 0, 2), line(s, 0, 0, 1, 1))
		}, 0},
		{"symmetricCircles/radius", constraint.KindSymmetricCircles, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.SymmetricCircles(circle(s, 2, 3, 1), circle(s, 2, -3, 2), line(s, 0, 0, 1, 0))
		}, 1},
		{"symmetricArcs/ok", constraint.KindSymmetricArcs, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			a1 := s.Arc(s.FixedPoint(2, 3), 1, 0, math.Pi/2, false)
			a2 := s.Arc(s.FixedPoint(2, -3), 1, 0, -math.Pi/2, false)
			return b.SymmetricArcs(a1, a2, line(s, 0, 0, 1, 0))
		}, 0},
		{"distance/ok", constraint.KindP2PDistance, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.Distance(s.FixedPoint(0, 0), s.FixedPoint(3, 4), 5)
		}, 0},
		{"distance/off", constraint.KindP2PDistance, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.Distance(s.FixedPoint(0, 0), s.FixedPoint(3, 4), 2)
		}, 9},
		{"distanceHoriz/ok", constraint.KindP2PDistanceHoriz, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.DistanceHorizontal(s.FixedPoint(0, 0), s.FixedPoint(-3, 4), 3)
		}, 0},
		{"distanceVert/off", constraint.KindP2PDistanceVert, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.DistanceVertical(s.FixedPoint(0, 0), s.FixedPoint(3, 4), 1)
		}, 9},
		{"p2l/ok", constraint.KindP2LDistance, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.DistanceToLine(s.FixedPoint(0, 5), line(s, -1, 0, 1, 0), 5)
		}, 0},
		{"p2l/weighted", constraint.KindP2LDistance, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.DistanceToLine(s.FixedPoint(0, 5), line(s, -1, 0, 1, 0), 3)
		}, 0.4},
		{"p2lHoriz/ok", constraint.KindP2LDistanceHoriz, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.DistanceToLineHorizontal(s.FixedPoint(5, 2), line(s, 0, 0, 1, 1), 3)
		}, 0},
		{"p2lVert/off", constraint.KindP2LDistanceVert, func(b *constraint.Builder, s *geom.Store) constraint.Constraint {
			return b.DistanceToLineVertical(s.FixedPoint(2, 5), line(s, 0, 0, 1, 1), 1)
		}, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := geom.NewStore()
			b := constraint.NewBuilder(s)
			c := tc.build(b, s)

			require.NoError(t, constraint.Validate(s, c))
			assert.Equal(t, tc.kind, c.Kind())
			assert.InDelta(t, tc.want, c.Error(s), eps)
			assert.GreaterOrEqual(t, c.Error(s), 0.0)
		})
	}
}

func TestKindsCoverEveryRelation(t *testing.T) {
	kinds := constraint.Kinds()
	assert.Len(t, kinds, 37)

	seen := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		name := k.String()
		assert.NotEqual(t, "Unknown", name)
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
	}
	assert.Equal(t, "Unknown", constraint.Kind(-1).String())
	assert.Equal(t, "TangentToCircle", constraint.KindTangentToCircle.String())
}

func TestParamsOrder(t *testing.T) {
	s := geom.NewStore()
	p := s.FreePoint(1, 2)
	q := s.FreePoint(3, 4)
	l := geom.NewLine(p, q)

	assert.Equal(t, []geom.ParamID{p.X, p.Y, q.X, q.Y}, constraint.Coincident(p, q).Params())

	// a point on its own line lists its handles twice
	got := constraint.PointOnLine(p, l).Params()
	assert.Equal(t, []geom.ParamID{p.X, p.Y, p.X, p.Y, q.X, q.Y}, got)

	d := s.Param(5, false)
	assert.Equal(t, []geom.ParamID{p.X, p.Y, q.X, q.Y, d}, constraint.Distance(p, q, d).Params())
}

func TestErrorReadsCurrentValues(t *testing.T) {
	s := geom.NewStore()
	l := geom.NewLine(s.FixedPoint(0, 0), s.FreePoint(10, 3))
	c := constraint.Horizontal(l)

	assert.InDelta(t, 9.0, c.Error(s), eps)
	require.NoError(t, s.SetValue(l.P2.Y, 0))
	assert.InDelta(t, 0.0, c.Error(s), eps)
}

func TestDegenerateGeometryIsNonFinite(t *testing.T) {
	s := geom.NewStore()
	p := s.FixedPoint(1, 1)
	dot := geom.NewLine(p, p)

	assert.True(t, math.IsNaN(constraint.Parallel(dot, line(s, 0, 0, 1, 0)).Error(s)))
	assert.True(t, math.IsNaN(constraint.TangentToCircle(dot, circle(s, 0, 0, 1)).Error(s)))
}

func TestValidateUnknownHandle(t *testing.T) {
	other := geom.NewStore()
	other.FixedPoint(0, 0)
	far := other.FixedPoint(1, 1) // handles 2, 3

	s := geom.NewStore()
	near := s.FixedPoint(0, 0) // handles 0, 1

	err := constraint.Validate(s, constraint.Coincident(near, near), constraint.Coincident(near, far))
	require.ErrorIs(t, err, constraint.ErrUnknownParam)
	assert.Contains(t, err.Error(), "constraint[1] PointOnPoint")

	require.ErrorIs(t, constraint.Validate(s, nil), constraint.ErrUnknownParam)
}

func TestValidateQuadrant(t *testing.T) {
	cases := []struct {
		name  string
		value float64
		free  bool
		ok    bool
	}{
		{"east", 0, false, true},
		{"south", 3, false, true},
		{"fraction", 1.5, false, false},
		{"negative", -1, false, false},
		{"tooLarge", 4, false, false},
		{"free", 2, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := geom.NewStore()
			q := s.Param(tc.value, tc.free)
			c := constraint.PointOnCircleQuad(s.FreePoint(0, 0), circle(s, 0, 0, 1), q)

			err := constraint.Validate(s, c)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, constraint.ErrInvalidQuadrant)
		})
	}
}

func TestQuadrantOutOfRangePanics(t *testing.T) {
	s := geom.NewStore()
	c := constraint.PointOnCircleQuad(s.FreePoint(0, 0), circle(s, 0, 0, 1), s.Param(7, false))

	assert.Panics(t, func() { c.Error(s) })
}

func TestBuilderAccumulates(t *testing.T) {
	s := geom.NewStore()
	b := constraint.NewBuilder(s)
	l := geom.NewLine(s.FreePoint(0, 0), s.FreePoint(1, 1))

	h := b.Horizontal(l)
	b.LineLength(l, 10)
	b.Add(constraint.Vertical(l))

	require.Equal(t, 3, b.Len())
	cs := b.Constraints()
	assert.Equal(t, h, cs[0])
	assert.Equal(t, constraint.KindLineLength, cs[1].Kind())

	// the length literal lives in a new fixed parameter
	ids := cs[1].Params()
	lengthID := ids[len(ids)-1]
	p, err := s.Lookup(lengthID)
	require.NoError(t, err)
	assert.False(t, p.Free)
	assert.Equal(t, 10.0, p.Value)

	// the returned slice is a copy
	cs[0] = nil
	assert.NotNil(t, b.Constraints()[0])
	assert.Same(t, s, b.Store())
}

func TestTotal(t *testing.T) {
	s := geom.NewStore()
	l := line(s, 0, 0, 3, 4)
	cs := []constraint.Constraint{constraint.Horizontal(l), constraint.Vertical(l)}

	assert.InDelta(t, 25.0, constraint.Total(s, cs), eps)
	assert.Zero(t, constraint.Total(s, nil))
}
