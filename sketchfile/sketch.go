// SPDX-License-Identifier: MIT

package sketchfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sketchsolve/constraint"
	"github.com/katalvlaran/sketchsolve/geom"
)

// Sketch is a decoded document: a populated Store, its named entities and
// the constraints over them.
type Sketch struct {
	Store       *geom.Store
	Params      map[string]geom.ParamID
	Points      map[string]geom.Point
	Lines       map[string]geom.Line
	Circles     map[string]geom.Circle
	Arcs        map[string]geom.Arc
	Constraints []constraint.Constraint

	doc Document
}

// Load decodes a YAML document from r and builds it. Unknown fields are
// rejected.
//
// Errors: ErrMalformed, ErrUnknownRef, ErrUnknownKind, geom.ErrBadBounds and
// YAML syntax errors.
func Load(r io.Reader) (*Sketch, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document: %w", ErrMalformed)
		}
		return nil, fmt.Errorf("sketchfile: decode: %w", err)
	}

	return Build(doc)
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Sketch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

// Build allocates every parameter of doc in a fresh Store and resolves its
// constraints.
//
// Stage 1: params, points, circles, arcs in sorted name order.
// Stage 2: lines, which only join existing points.
// Stage 3: constraints, in document order.
func Build(doc Document) (*Sketch, error) {
	sk := &Sketch{
		Store:   geom.NewStore(),
		Params:  make(map[string]geom.ParamID, len(doc.Params)),
		Points:  make(map[string]geom.Point, len(doc.Points)),
		Lines:   make(map[string]geom.Line, len(doc.Lines)),
		Circles: make(map[string]geom.Circle, len(doc.Circles)),
		Arcs:    make(map[string]geom.Arc, len(doc.Arcs)),
		doc:     doc,
	}
	s := sk.Store

	for _, name := range sortedKeys(doc.Params) {
		p := doc.Params[name]
		if p.Min == nil && p.Max == nil {
			sk.Params[name] = s.Param(p.Value, p.Free)
			continue
		}
		lo, hi := geom.DefaultMin, geom.DefaultMax
		if p.Min != nil {
			lo = *p.Min
		}
		if p.Max != nil {
			hi = *p.Max
		}
		id, err := s.BoundedParam(p.Value, lo, hi, p.Free)
		if err != nil {
			return nil, fmt.Errorf("sketchfile: param %q: %w", name, err)
		}
		sk.Params[name] = id
	}
	for _, name := range sortedKeys(doc.Points) {
		p := doc.Points[name]
		sk.Points[name] = s.Point(p.X, p.Y, p.Free[0], p.Free[1])
	}
	for _, name := range sortedKeys(doc.Circles) {
		c := doc.Circles[name]
		center, ok := sk.Points[c.Center]
		if !ok {
			return nil, fmt.Errorf("sketchfile: circle %q: center %q: %w", name, c.Center, ErrUnknownRef)
		}
		sk.Circles[name] = s.Circle(center, c.Radius, c.FreeRadius)
	}
	for _, name := range sortedKeys(doc.Arcs) {
		a := doc.Arcs[name]
		center, ok := sk.Points[a.Center]
		if !ok {
			return nil, fmt.Errorf("sketchfile: arc %q: center %q: %w", name, a.Center, ErrUnknownRef)
		}
		sk.Arcs[name] = s.Arc(center, a.Radius, a.Start, a.End, a.Free)
	}

	for _, name := range sortedKeys(doc.Lines) {
		ends := doc.Lines[name]
		if len(ends) != 2 {
			return nil, fmt.Errorf("sketchfile: line %q: %d endpoints: %w", name, len(ends), ErrMalformed)
		}
		ps, err := pick(sk.Points, "point", ends, 2)
		if err != nil {
			return nil, fmt.Errorf("sketchfile: line %q: %w", name, err)
		}
		sk.Lines[name] = geom.NewLine(ps[0], ps[1])
	}

	r := resolver{sk: sk}
	for i, cd := range doc.Constraints {
		c, err := r.constraint(cd)
		if err != nil {
			return nil, fmt.Errorf("sketchfile: constraints[%d] %s: %w", i, cd.Kind, err)
		}
		sk.Constraints = append(sk.Constraints, c)
	}

	return sk, nil
}

// Document returns the sketch as a document carrying the current Store
// values, ready to be written with Encode.
func (sk *Sketch) Document() Document {
	out := Document{
		Params:      make(map[string]ParamDoc, len(sk.Params)),
		Points:      make(map[string]PointDoc, len(sk.Points)),
		Lines:       sk.doc.Lines,
		Circles:     make(map[string]CircleDoc, len(sk.Circles)),
		Arcs:        make(map[string]ArcDoc, len(sk.Arcs)),
		Constraints: sk.doc.Constraints,
	}
	s := sk.Store
	for name, id := range sk.Params {
		p := sk.doc.Params[name]
		p.Value = s.Value(id)
		out.Params[name] = p
	}
	for name, pt := range sk.Points {
		p := sk.doc.Points[name]
		p.X, p.Y = s.Value(pt.X), s.Value(pt.Y)
		out.Points[name] = p
	}
	for name, c := range sk.Circles {
		d := sk.doc.Circles[name]
		d.Radius = s.Value(c.Rad)
		out.Circles[name] = d
	}
	for name, a := range sk.Arcs {
		d := sk.doc.Arcs[name]
		d.Radius, d.Start, d.End = s.Value(a.Rad), s.Value(a.Start), s.Value(a.End)
		out.Arcs[name] = d
	}

	return out
}

// Encode writes doc as YAML with two-space indentation.
func Encode(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("sketchfile: encode: %w", err)
	}

	return enc.Close()
}

// PointNames returns the point names in sorted order.
func (sk *Sketch) PointNames() []string {
	return sortedKeys(sk.Points)
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
