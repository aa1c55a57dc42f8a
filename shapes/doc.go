// SPDX-License-Identifier: MIT
// Package: sketchsolve/shapes
//
// Package shapes generates canonical constrained sketches: regular polygons
// circumscribed about a circle, axis-aligned rectangles. Each generator is a
// Constructor that appends named entities and constraints to a
// sketchfile.Document; BuildDocument composes them.
//
// Contract:
//   - Ideal positions satisfy every emitted constraint exactly.
//   - With a seeded RNG (WithSeed/WithRand) free coordinates start displaced
//     by up to Jitter·size, which gives the solver something to do.
//   - Same options, seed and constructor order ⇒ identical documents.
//   - Constructors return sentinel errors and never panic; option
//     constructors panic on meaningless input.
package shapes
