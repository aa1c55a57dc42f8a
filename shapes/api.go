// SPDX-License-Identifier: MIT
// Package: sketchsolve/shapes
//
// api.go - entry points. One orchestrator, BuildDocument, resolves options
// and runs constructors in order; BuildSketch decodes the result.

package shapes

import (
	"fmt"

	"github.com/katalvlaran/sketchsolve/sketchfile"
)

// Constructor appends entities and constraints to doc.
// Implementations validate their arguments first and never panic.
type Constructor func(doc *sketchfile.Document, cfg shapeConfig) error

// BuildDocument resolves opts and applies cons in order to an empty
// document.
//
// Errors: ErrConstructFailed for a nil constructor, otherwise whatever a
// constructor returns, wrapped once.
//
// Complexity: O(len(opts)) plus the constructors.
func BuildDocument(opts []Option, cons ...Constructor) (sketchfile.Document, error) {
	doc := sketchfile.Document{
		Params:  map[string]sketchfile.ParamDoc{},
		Points:  map[string]sketchfile.PointDoc{},
		Lines:   map[string][]string{},
		Circles: map[string]sketchfile.CircleDoc{},
	}
	cfg := newShapeConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return sketchfile.Document{}, fmt.Errorf("BuildDocument: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&doc, cfg); err != nil {
			return sketchfile.Document{}, fmt.Errorf("BuildDocument: %w", err)
		}
	}

	return doc, nil
}

// BuildSketch is BuildDocument followed by sketchfile.Build.
func BuildSketch(opts []Option, cons ...Constructor) (*sketchfile.Sketch, error) {
	doc, err := BuildDocument(opts, cons...)
	if err != nil {
		return nil, err
	}

	return sketchfile.Build(doc)
}

// claim fails if any of names is already used in doc.
func claim(doc *sketchfile.Document, names ...string) error {
	for _, n := range names {
		_, p := doc.Params[n]
		_, pt := doc.Points[n]
		_, l := doc.Lines[n]
		_, c := doc.Circles[n]
		if p || pt || l || c {
			return fmt.Errorf("%q: %w", n, ErrNameClash)
		}
	}

	return nil
}
