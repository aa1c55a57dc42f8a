// SPDX-License-Identifier: MIT

package sketchfile

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a sketch.
type Document struct {
	Params      map[string]ParamDoc  `yaml:"params,omitempty"`
	Points      map[string]PointDoc  `yaml:"points,omitempty"`
	Lines       map[string][]string  `yaml:"lines,omitempty"`
	Circles     map[string]CircleDoc `yaml:"circles,omitempty"`
	Arcs        map[string]ArcDoc    `yaml:"arcs,omitempty"`
	Constraints []ConstraintDoc      `yaml:"constraints,omitempty"`
}

// ParamDoc is a named scalar. Min and Max default to the Store bounds.
type ParamDoc struct {
	Value float64  `yaml:"value"`
	Free  bool     `yaml:"free,omitempty"`
	Min   *float64 `yaml:"min,omitempty"`
	Max   *float64 `yaml:"max,omitempty"`
}

// PointDoc is a point. Free is either one flag for both coordinates or a
// pair [x, y].
type PointDoc struct {
	X    float64   `yaml:"x"`
	Y    float64   `yaml:"y"`
	Free FreeFlags `yaml:"free,omitempty"`
}

// CircleDoc is a circle around a named point.
type CircleDoc struct {
	Center     string  `yaml:"center"`
	Radius     float64 `yaml:"radius"`
	FreeRadius bool    `yaml:"freeRadius,omitempty"`
}

// ArcDoc is an arc around a named point; angles are in radians.
type ArcDoc struct {
	Center string  `yaml:"center"`
	Radius float64 `yaml:"radius"`
	Start  float64 `yaml:"start"`
	End    float64 `yaml:"end"`
	Free   bool    `yaml:"free,omitempty"`
}

// ConstraintDoc names a relation and its operands. Singular and plural
// fields of the same entity type are concatenated, singular first.
type ConstraintDoc struct {
	Kind     string   `yaml:"kind"`
	Point    string   `yaml:"point,omitempty"`
	Points   []string `yaml:"points,omitempty"`
	Line     string   `yaml:"line,omitempty"`
	Lines    []string `yaml:"lines,omitempty"`
	Circle   string   `yaml:"circle,omitempty"`
	Circles  []string `yaml:"circles,omitempty"`
	Arc      string   `yaml:"arc,omitempty"`
	Arcs     []string `yaml:"arcs,omitempty"`
	Axis     string   `yaml:"axis,omitempty"`
	Param    string   `yaml:"param,omitempty"`
	Value    *float64 `yaml:"value,omitempty"`
	Quadrant string   `yaml:"quadrant,omitempty"`
}

// FreeFlags marks the x and y coordinates of a point as free.
type FreeFlags [2]bool

// UnmarshalYAML accepts a single bool or a two-element sequence.
func (f *FreeFlags) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var b bool
		if err := n.Decode(&b); err != nil {
			return err
		}
		*f = FreeFlags{b, b}
	case yaml.SequenceNode:
		var bs []bool
		if err := n.Decode(&bs); err != nil {
			return err
		}
		if len(bs) != 2 {
			return fmt.Errorf("line %d: free needs 2 flags, got %d: %w", n.Line, len(bs), ErrMalformed)
		}
		*f = FreeFlags{bs[0], bs[1]}
	default:
		return fmt.Errorf("line %d: free must be a bool or [bool, bool]: %w", n.Line, ErrMalformed)
	}

	return nil
}

// MarshalYAML writes a single bool when both flags agree.
func (f FreeFlags) MarshalYAML() (interface{}, error) {
	if f[0] == f[1] {
		return f[0], nil
	}

	return []bool{f[0], f[1]}, nil
}

// IsZero reports whether both coordinates are fixed; omitempty uses it.
func (f FreeFlags) IsZero() bool {
	return !f[0] && !f[1]
}
