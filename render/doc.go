// SPDX-License-Identifier: MIT

// Package render draws a sketch as a static PNG.
//
// The sketch bounding box (points, full circles and the full circles of
// arcs) is fitted into Options.Size pixels along its longer side, with the y
// axis pointing up. Free points are drawn in Options.Free, fixed points in
// Options.Fixed.
package render
