// SPDX-License-Identifier: MIT

package constraint

import (
	"errors"

	"github.com/katalvlaran/sketchsolve/geom"
)

var (
	// ErrUnknownParam is returned when a constraint references a handle the Store does not hold.
	ErrUnknownParam = errors.New("constraint: unknown parameter")

	// ErrInvalidQuadrant is returned when a PointOnCircleQuad index is not a fixed integer in 0..3.
	ErrInvalidQuadrant = errors.New("constraint: invalid quadrant index")
)

// Constraint is one additive term of the solver's sum-of-squares objective.
type Constraint interface {
	// Kind identifies the relation.
	Kind() Kind

	// Error returns the residual for the current parameter values.
	// It is ≥ 0 for finite geometry and zero iff the relation holds.
	Error(s *geom.Store) float64

	// Params returns every handle read by Error. Duplicates are allowed.
	Params() []geom.ParamID
}

// Validator is implemented by constraints with an input contract beyond
// "every handle exists".
type Validator interface {
	Validate(s *geom.Store) error
}

// Kind enumerates the supported relations.
type Kind int

const (
	KindPointOnPoint Kind = iota
	KindPointOnLine
	KindHorizontal
	KindVertical
	KindInternalAngle
	KindExternalAngle
	KindTangentToArc
	KindTangentToCircle
	KindArcRules
	KindP2PDistance
	KindP2PDistanceVert
	KindP2PDistanceHoriz
	KindP2LDistance
	KindP2LDistanceVert
	KindP2LDistanceHoriz
	KindLineLength
	KindEqualLength
	KindArcRadius
	KindEqualRadiusArcs
	KindEqualRadiusCircles
	KindEqualRadiusCircArc
	KindConcentricArcs
	KindConcentricCircles
	KindConcentricCircArc
	KindCircleRadius
	KindParallel
	KindPerpendicular
	KindCollinear
	KindPointOnCircle
	KindPointOnArc
	KindPointOnLineMidpoint
	KindPointOnArcMidpoint
	KindPointOnCircleQuad
	KindSymmetricPoints
	KindSymmetricLines
	KindSymmetricCircles
	KindSymmetricArcs
)

var kindNames = [...]string{
	KindPointOnPoint:        "PointOnPoint",
	KindPointOnLine:         "PointOnLine",
	KindHorizontal:          "Horizontal",
	KindVertical:            "Vertical",
	KindInternalAngle:       "InternalAngle",
	KindExternalAngle:       "ExternalAngle",
	KindTangentToArc:        "TangentToArc",
	KindTangentToCircle:     "TangentToCircle",
	KindArcRules:            "ArcRules",
	KindP2PDistance:         "P2PDistance",
	KindP2PDistanceVert:     "P2PDistanceVert",
	KindP2PDistanceHoriz:    "P2PDistanceHoriz",
	KindP2LDistance:         "P2LDistance",
	KindP2LDistanceVert:     "P2LDistanceVert",
	KindP2LDistanceHoriz:    "P2LDistanceHoriz",
	KindLineLength:          "LineLength",
	KindEqualLength:         "EqualLength",
	KindArcRadius:           "ArcRadius",
	KindEqualRadiusArcs:     "EqualRadiusArcs",
	KindEqualRadiusCircles:  "EqualRadiusCircles",
	KindEqualRadiusCircArc:  "EqualRadiusCircArc",
	KindConcentricArcs:      "ConcentricArcs",
	KindConcentricCircles:   "ConcentricCircles",
	KindConcentricCircArc:   "ConcentricCircArc",
	KindCircleRadius:        "CircleRadius",
	KindParallel:            "Parallel",
	KindPerpendicular:       "Perpendicular",
	KindCollinear:           "Collinear",
	KindPointOnCircle:       "PointOnCircle",
	KindPointOnArc:          "PointOnArc",
	KindPointOnLineMidpoint: "PointOnLineMidpoint",
	KindPointOnArcMidpoint:  "PointOnArcMidpoint",
	KindPointOnCircleQuad:   "PointOnCircleQuad",
	KindSymmetricPoints:     "SymmetricPoints",
	KindSymmetricLines:      "SymmetricLines",
	KindSymmetricCircles:    "SymmetricCircles",
	KindSymmetricArcs:       "SymmetricArcs",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}

	return kindNames[k]
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}

	return out
}

// join concatenates handle lists in order.
func join(groups ...[]geom.ParamID) []geom.ParamID {
	var n int
	for _, g := range groups {
		n += len(g)
	}
	out := make([]geom.ParamID, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}

	return out
}

func sq(v float64) float64 { return v * v }
