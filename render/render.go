// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/sketchsolve/geom"
	"github.com/katalvlaran/sketchsolve/sketchfile"
)

var (
	// ErrEmptySketch is returned for a nil sketch or one without points.
	ErrEmptySketch = errors.New("render: empty sketch")

	// ErrBadOptions is returned when the padding leaves no drawing area or
	// a width is negative.
	ErrBadOptions = errors.New("render: invalid options")

	// ErrNonFinite is returned when a coordinate or radius is NaN or ±Inf.
	ErrNonFinite = errors.New("render: non-finite geometry")
)

// Options controls the output image.
type Options struct {
	Size        int     // pixels along the longer side
	Padding     float64 // pixels around the bounding box
	LineWidth   float64 // stroke width in pixels
	PointRadius float64 // point marker radius in pixels

	Background color.Color
	Ink        color.Color
	Free       color.Color
	Fixed      color.Color
}

// DefaultOptions returns a 512 px white canvas with dark strokes.
func DefaultOptions() Options {
	return Options{
		Size:        512,
		Padding:     16,
		LineWidth:   2,
		PointRadius: 3,
		Background:  color.White,
		Ink:         color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff},
		Free:        color.RGBA{R: 0xd0, G: 0x30, B: 0x30, A: 0xff},
		Fixed:       color.RGBA{R: 0x30, G: 0x50, B: 0xd0, A: 0xff},
	}
}

// PNG draws sk and writes it to w as PNG.
func PNG(w io.Writer, sk *sketchfile.Sketch, opts Options) error {
	dc, err := draw(sk, opts)
	if err != nil {
		return err
	}

	return dc.EncodePNG(w)
}

// Image draws sk and returns the raster.
func Image(sk *sketchfile.Sketch, opts Options) (image.Image, error) {
	dc, err := draw(sk, opts)
	if err != nil {
		return nil, err
	}

	return dc.Image(), nil
}

type box struct {
	minX, minY, maxX, maxY float64
}

func emptyBox() box {
	return box{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
}

func (b *box) add(x, y, r float64) {
	b.minX = math.Min(b.minX, x-r)
	b.minY = math.Min(b.minY, y-r)
	b.maxX = math.Max(b.maxX, x+r)
	b.maxY = math.Max(b.maxY, y+r)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// bounds returns the bounding box of everything drawn.
func bounds(sk *sketchfile.Sketch) (box, error) {
	var (
		s = sk.Store
		b = emptyBox()
	)
	for name, p := range sk.Points {
		pos := s.Pos(p)
		if !finite(pos.X, pos.Y) {
			return b, fmt.Errorf("point %q: %w", name, ErrNonFinite)
		}
		b.add(pos.X, pos.Y, 0)
	}
	for name, c := range sk.Circles {
		pos, r := s.Pos(c.Center), math.Abs(s.Value(c.Rad))
		if !finite(r) {
			return b, fmt.Errorf("circle %q: %w", name, ErrNonFinite)
		}
		b.add(pos.X, pos.Y, r)
	}
	for name, a := range sk.Arcs {
		pos, r := s.Pos(a.Center), math.Abs(s.Value(a.Rad))
		if !finite(r, s.Value(a.Start), s.Value(a.End)) {
			return b, fmt.Errorf("arc %q: %w", name, ErrNonFinite)
		}
		b.add(pos.X, pos.Y, r)
	}

	return b, nil
}

// draw lays out the canvas and strokes every entity.
//
// Stage 1: validate and measure.
// Stage 2: flip y, pad, scale, translate the box minimum to the origin.
// Stage 3: lines, circles and arcs, then point markers on top.
func draw(sk *sketchfile.Sketch, opts Options) (*gg.Context, error) {
	if sk == nil || sk.Store == nil || len(sk.Points) == 0 {
		return nil, ErrEmptySketch
	}
	if opts.Size <= 0 || opts.Padding < 0 || float64(opts.Size) <= 2*opts.Padding ||
		opts.LineWidth < 0 || opts.PointRadius < 0 {
		return nil, fmt.Errorf("size %d, padding %g: %w", opts.Size, opts.Padding, ErrBadOptions)
	}
	b, err := bounds(sk)
	if err != nil {
		return nil, err
	}

	var (
		spanX = b.maxX - b.minX
		spanY = b.maxY - b.minY
		span  = math.Max(spanX, spanY)
	)
	if span == 0 {
		span = 1
	}
	scale := (float64(opts.Size) - 2*opts.Padding) / span
	width := int(math.Ceil(scale*spanX + 2*opts.Padding))
	height := int(math.Ceil(scale*spanY + 2*opts.Padding))

	dc := gg.NewContext(width, height)
	dc.SetColor(opts.Background)
	dc.Clear()

	dc.Translate(0, float64(height))
	dc.Scale(1, -1)
	dc.Translate(opts.Padding, opts.Padding)
	dc.Scale(scale, scale)
	dc.Translate(-b.minX, -b.minY)

	s := sk.Store
	dc.SetColor(opts.Ink)
	dc.SetLineWidth(opts.LineWidth)
	for _, l := range sk.Lines {
		seg := s.Segment(l)
		dc.DrawLine(seg.From.X, seg.From.Y, seg.To.X, seg.To.Y)
		dc.Stroke()
	}
	for _, c := range sk.Circles {
		pos := s.Pos(c.Center)
		dc.DrawCircle(pos.X, pos.Y, math.Abs(s.Value(c.Rad)))
		dc.Stroke()
	}
	for _, a := range sk.Arcs {
		pos := s.Pos(a.Center)
		start, end := s.Value(a.Start), s.Value(a.End)
		for end < start {
			end += 2 * math.Pi
		}
		dc.NewSubPath()
		dc.DrawArc(pos.X, pos.Y, math.Abs(s.Value(a.Rad)), start, end)
		dc.Stroke()
	}

	for _, name := range sk.PointNames() {
		p := sk.Points[name]
		dc.SetColor(opts.Fixed)
		if isFree(s, p) {
			dc.SetColor(opts.Free)
		}
		pos := s.Pos(p)
		dc.DrawPoint(pos.X, pos.Y, opts.PointRadius)
		dc.Fill()
	}

	return dc, nil
}

func isFree(s *geom.Store, p geom.Point) bool {
	for _, id := range p.Params() {
		if q, err := s.Lookup(id); err == nil && q.Free {
			return true
		}
	}

	return false
}
