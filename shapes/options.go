// SPDX-License-Identifier: MIT
// Package: sketchsolve/shapes
//
// options.go - functional options and the resolved shapeConfig.
// Option constructors validate and panic on meaningless input; generators
// themselves only return errors.

package shapes

import (
	"fmt"
	"math"
	"math/rand"
)

// defaultJitter is the displacement bound relative to the shape size.
const defaultJitter = 0.1

// Option customizes generators by mutating a shapeConfig.
type Option func(*shapeConfig)

// shapeConfig is passed by value to constructors.
type shapeConfig struct {
	prefix string
	rng    *rand.Rand // nil: ideal positions
	jitter float64
	cx, cy float64
}

func newShapeConfig(opts ...Option) shapeConfig {
	cfg := shapeConfig{jitter: defaultJitter}
	for _, o := range opts {
		o(&cfg)
	}

	return cfg
}

// WithPrefix prepends prefix to every generated name.
func WithPrefix(prefix string) Option {
	return func(c *shapeConfig) { c.prefix = prefix }
}

// WithRand sets the RNG that displaces free coordinates. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("shapes: WithRand(nil)")
	}
	return func(c *shapeConfig) { c.rng = r }
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return func(c *shapeConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithJitter sets the displacement bound relative to the shape size.
// Panics on a negative or non-finite value.
func WithJitter(j float64) Option {
	if j < 0 || math.IsNaN(j) || math.IsInf(j, 0) {
		panic(fmt.Sprintf("shapes: WithJitter(%g)", j))
	}
	return func(c *shapeConfig) { c.jitter = j }
}

// WithCenter moves the shape's reference point to (x, y).
func WithCenter(x, y float64) Option {
	return func(c *shapeConfig) { c.cx, c.cy = x, y }
}

// name returns prefix+kind+idx, or prefix+kind for idx < 0.
func (c shapeConfig) name(kind string, idx int) string {
	if idx < 0 {
		return c.prefix + kind
	}

	return fmt.Sprintf("%s%s%d", c.prefix, kind, idx)
}

// shake returns v displaced by at most jitter·size, or v without an RNG.
func (c shapeConfig) shake(v, size float64) float64 {
	if c.rng == nil {
		return v
	}

	return v + c.jitter*size*(2*c.rng.Float64()-1)
}
