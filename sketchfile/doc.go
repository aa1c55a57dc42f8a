// SPDX-License-Identifier: MIT

// Package sketchfile reads and writes sketches as YAML documents.
//
// A document names its entities and refers to them by name:
//
//	params:
//	  right: {value: 1.5707963, free: false}
//	points:
//	  o: {x: 0, y: 0, free: false}
//	  a: {x: -21, y: 0, free: true}
//	  b: {x: 0, y: 23, free: [false, true]}
//	lines:
//	  l0: [a, b]
//	circles:
//	  c: {center: o, radius: 10}
//	constraints:
//	  - {kind: tangent, line: l0, circle: c}
//	  - {kind: vertical, line: l0}
//	  - {kind: lineLength, line: l0, value: 20}
//
// Constraint kinds are the constraint.Kind names matched case-insensitively,
// plus the aliases coincident, tangent and distance. Scalar operands come
// either from a named param or from a literal value, which becomes a fixed
// parameter.
//
// Parameters are allocated in sorted name order (params, points, circles,
// arcs), so loading the same document twice yields identical Stores.
package sketchfile
