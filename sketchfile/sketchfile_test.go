// SPDX-License-Identifier: MIT

package sketchfile_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sketchsolve/constraint"
	"github.com/katalvlaran/sketchsolve/geom"
	"github.com/katalvlaran/sketchsolve/sketchfile"
	"github.com/katalvlaran/sketchsolve/solver"
)

func TestLoadSquareAndSolve(t *testing.T) {
	sk, err := sketchfile.LoadFile("testdata/square.yaml")
	require.NoError(t, err)
	require.Len(t, sk.Constraints, 13)
	assert.Len(t, sk.Points, 9)
	assert.Len(t, sk.Lines, 4)
	assert.Len(t, sk.Circles, 1)

	o := sk.Points["o"]
	p, err := sk.Store.Lookup(o.X)
	require.NoError(t, err)
	assert.False(t, p.Free)

	e, err := solver.Solve(sk.Store, 1e-4, sk.Constraints...)
	require.NoError(t, err)
	assert.LessOrEqual(t, e, 1e-4)
}

func TestRoundTripAfterSolve(t *testing.T) {
	sk, err := sketchfile.LoadFile("testdata/square.yaml")
	require.NoError(t, err)
	_, err = solver.Solve(sk.Store, 1e-4, sk.Constraints...)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, sketchfile.Encode(&buf, sk.Document()))

	again, err := sketchfile.Load(&buf)
	require.NoError(t, err)
	assert.LessOrEqual(t, constraint.Total(again.Store, again.Constraints), 1e-4)
	for _, name := range sk.PointNames() {
		assert.Equal(t, sk.Store.Pos(sk.Points[name]), again.Store.Pos(again.Points[name]), name)
	}
}

func TestAllocationIsDeterministic(t *testing.T) {
	a, err := sketchfile.LoadFile("testdata/allkinds.yaml")
	require.NoError(t, err)
	b, err := sketchfile.LoadFile("testdata/allkinds.yaml")
	require.NoError(t, err)

	assert.Equal(t, a.Store.Snapshot(), b.Store.Snapshot())
	assert.Equal(t, a.Points, b.Points)
}

func TestEveryKindDecodes(t *testing.T) {
	sk, err := sketchfile.LoadFile("testdata/allkinds.yaml")
	require.NoError(t, err)

	kinds := make([]constraint.Kind, len(sk.Constraints))
	for i, c := range sk.Constraints {
		kinds[i] = c.Kind()
	}
	assert.Equal(t, constraint.Kinds(), kinds)
	assert.NoError(t, constraint.Validate(sk.Store, sk.Constraints...))
}

func TestFreeFlags(t *testing.T) {
	sk, err := sketchfile.Load(strings.NewReader(`
points:
  a: {x: 1, y: 2, free: true}
  b: {x: 1, y: 2, free: [false, true]}
  c: {x: 1, y: 2}
`))
	require.NoError(t, err)

	free := func(id geom.ParamID) bool {
		p, err := sk.Store.Lookup(id)
		require.NoError(t, err)
		return p.Free
	}
	assert.True(t, free(sk.Points["a"].X))
	assert.True(t, free(sk.Points["a"].Y))
	assert.False(t, free(sk.Points["b"].X))
	assert.True(t, free(sk.Points["b"].Y))
	assert.False(t, free(sk.Points["c"].Y))

	out, err := yaml.Marshal(sketchfile.PointDoc{X: 1, Y: 2, Free: sketchfile.FreeFlags{false, true}})
	require.NoError(t, err)
	assert.Contains(t, string(out), "free:")
	assert.Contains(t, string(out), "- true")

	out, err = yaml.Marshal(sketchfile.PointDoc{X: 1, Y: 2})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "free")
}

func TestBoundedParam(t *testing.T) {
	sk, err := sketchfile.Load(strings.NewReader(`
params:
  w: {value: 2, free: true, min: 0, max: 5}
`))
	require.NoError(t, err)

	p, err := sk.Store.Lookup(sk.Params["w"])
	require.NoError(t, err)
	assert.Equal(t, geom.Param{Value: 2, Min: 0, Max: 5, Free: true}, p)
}

func TestKindOf(t *testing.T) {
	for _, k := range constraint.Kinds() {
		got, ok := sketchfile.KindOf(k.String())
		assert.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}
	k, ok := sketchfile.KindOf("Coincident")
	assert.True(t, ok)
	assert.Equal(t, constraint.KindPointOnPoint, k)

	_, ok = sketchfile.KindOf("glue")
	assert.False(t, ok)
}

func TestLoadErrors(t *testing.T) {
	const base = `
points:
  a: {x: 0, y: 0, free: true}
  b: {x: 1, y: 1}
lines:
  l: [a, b]
circles:
  c: {center: a, radius: 1}
`
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown kind", base + "constraints:\n  - {kind: glue, line: l}\n", sketchfile.ErrUnknownKind},
		{"unknown point", base + "constraints:\n  - {kind: coincident, points: [a, z]}\n", sketchfile.ErrUnknownRef},
		{"unknown line", base + "constraints:\n  - {kind: horizontal, line: m}\n", sketchfile.ErrUnknownRef},
		{"operand count", base + "constraints:\n  - {kind: coincident, points: [a]}\n", sketchfile.ErrMalformed},
		{"missing scalar", base + "constraints:\n  - {kind: lineLength, line: l}\n", sketchfile.ErrMalformed},
		{"unknown param", base + "constraints:\n  - {kind: lineLength, line: l, param: len}\n", sketchfile.ErrUnknownRef},
		{"param and value", base + "params:\n  len: {value: 1}\nconstraints:\n  - {kind: lineLength, line: l, param: len, value: 2}\n", sketchfile.ErrMalformed},
		{"missing axis", base + "constraints:\n  - {kind: symmetricPoints, points: [a, b]}\n", sketchfile.ErrMalformed},
		{"bad quadrant", base + "constraints:\n  - {kind: pointOnCircleQuad, point: b, circle: c, quadrant: up}\n", constraint.ErrInvalidQuadrant},
		{"circle center", "points:\n  a: {x: 0, y: 0}\ncircles:\n  c: {center: z, radius: 1}\n", sketchfile.ErrUnknownRef},
		{"line endpoints", "points:\n  a: {x: 0, y: 0}\nlines:\n  l: [a]\n", sketchfile.ErrMalformed},
		{"free flags", "points:\n  a: {x: 0, y: 0, free: [true, true, true]}\n", sketchfile.ErrMalformed},
		{"bounds", "params:\n  w: {value: 9, min: 0, max: 5}\n", geom.ErrBadBounds},
		{"empty", "", sketchfile.ErrMalformed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sketchfile.Load(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestUnknownFieldIsRejected(t *testing.T) {
	_, err := sketchfile.Load(strings.NewReader("points:\n  a: {x: 0, y: 0, z: 1}\n"))
	assert.Error(t, err)
}
