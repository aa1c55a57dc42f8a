// SPDX-License-Identifier: MIT

package render_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sketchsolve/render"
	"github.com/katalvlaran/sketchsolve/sketchfile"
)

const triangle = `
points:
  a: {x: 0, y: 0}
  b: {x: 10, y: 0}
  c: {x: 10, y: 5, free: true}
lines:
  ab: [a, b]
  bc: [b, c]
`

func load(t *testing.T, doc string) *sketchfile.Sketch {
	t.Helper()
	sk, err := sketchfile.Load(strings.NewReader(doc))
	require.NoError(t, err)
	return sk
}

func near(t *testing.T, want color.Color, got color.Color, msg string) {
	t.Helper()
	wr, wg, wb, _ := want.RGBA()
	gr, gg, gb, _ := got.RGBA()
	const slack = 0x0404
	d := func(a, b uint32) bool { return math.Abs(float64(a)-float64(b)) <= slack }
	assert.True(t, d(wr, gr) && d(wg, gg) && d(wb, gb), "%s: want %v, got %v", msg, want, got)
}

func TestImageLayout(t *testing.T) {
	opts := render.DefaultOptions()
	img, err := render.Image(load(t, triangle), opts)
	require.NoError(t, err)

	// 10×5 box, 480 px for the long side plus 16 px padding on each edge
	assert.Equal(t, image.Rect(0, 0, 512, 272), img.Bounds())

	near(t, opts.Background, img.At(0, 0), "corner")
	near(t, opts.Fixed, img.At(16, 256), "fixed point a")
	near(t, opts.Free, img.At(496, 16), "free point c")
	near(t, opts.Ink, img.At(256, 255), "line ab")
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.PNG(&buf, load(t, triangle), render.DefaultOptions()))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 512, img.Bounds().Dx())
	assert.Equal(t, 272, img.Bounds().Dy())
}

func TestCirclesAndArcsWiden(t *testing.T) {
	sk := load(t, `
points:
  o: {x: 0, y: 0}
  p: {x: 1, y: 0}
circles:
  c: {center: o, radius: 4}
arcs:
  r: {center: p, radius: 2, start: 3, end: 1}
`)
	img, err := render.Image(sk, render.DefaultOptions())
	require.NoError(t, err)
	// x spans [-4, 4], y spans [-4, 4]
	assert.Equal(t, img.Bounds().Dx(), img.Bounds().Dy())
}

func TestErrors(t *testing.T) {
	_, err := render.Image(nil, render.DefaultOptions())
	assert.ErrorIs(t, err, render.ErrEmptySketch)

	_, err = render.Image(load(t, "lines: {}\n"), render.DefaultOptions())
	assert.ErrorIs(t, err, render.ErrEmptySketch)

	opts := render.DefaultOptions()
	opts.Padding = 300
	_, err = render.Image(load(t, triangle), opts)
	assert.ErrorIs(t, err, render.ErrBadOptions)

	sk := load(t, triangle)
	require.NoError(t, sk.Store.SetValue(sk.Points["c"].X, math.NaN()))
	_, err = render.Image(sk, render.DefaultOptions())
	assert.ErrorIs(t, err, render.ErrNonFinite)
}
