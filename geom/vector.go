// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"
)

// Vector is a directionless displacement (dx, dy).
// Arithmetic is exact float64; nothing guards zero length, so Unit,
// UnitNormal and Cosine of a zero vector yield NaN. Residuals that divide by
// a length document it, and the solver rejects non-finite objectives.
type Vector struct {
	DX, DY float64
}

// Position is a resolved point in the plane.
type Position struct {
	X, Y float64
}

// Segment is a resolved, directed line segment. Synthetic lines such as the
// one returned by Store.CenterTo are Segments: they have no parameters.
type Segment struct {
	From, To Position
}

// LengthSquared returns dx²+dy².
func (v Vector) LengthSquared() float64 {
	return v.DX*v.DX + v.DY*v.DY
}

// Length returns sqrt(dx²+dy²).
func (v Vector) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Dot returns the scalar product v·w.
func (v Vector) Dot(w Vector) float64 {
	return v.DX*w.DX + v.DY*w.DY
}

// Cross returns the z component of v×w (dx·w.dy − dy·w.dx).
func (v Vector) Cross(w Vector) float64 {
	return v.DX*w.DY - v.DY*w.DX
}

// Cosine returns the cosine of the angle between v and w:
// Dot(w) / (|v|·|w|). Callers must guard zero-length operands.
func (v Vector) Cosine(w Vector) float64 {
	return v.Dot(w) / v.Length() / w.Length()
}

// Scale returns k·v.
func (v Vector) Scale(k float64) Vector {
	return Vector{DX: v.DX * k, DY: v.DY * k}
}

// Add returns v+w.
func (v Vector) Add(w Vector) Vector {
	return Vector{DX: v.DX + w.DX, DY: v.DY + w.DY}
}

// Unit returns v/|v|.
func (v Vector) Unit() Vector {
	l := v.Length()
	return Vector{DX: v.DX / l, DY: v.DY / l}
}

// UnitNormal returns the unit vector perpendicular to v, (−dy, dx)/|v|.
func (v Vector) UnitNormal() Vector {
	l := v.Length()
	return Vector{DX: -v.DY / l, DY: v.DX / l}
}

// ProjectOnto returns the projection of v onto the direction of w.
func (v Vector) ProjectOnto(w Vector) Vector {
	u := w.Unit()
	return u.Scale(v.Dot(u))
}

// String implements fmt.Stringer.
func (v Vector) String() string {
	return fmt.Sprintf("-> %g;%g", v.DX, v.DY)
}

// Sub returns the displacement p − q.
func (p Position) Sub(q Position) Vector {
	return Vector{DX: p.X - q.X, DY: p.Y - q.Y}
}

// Add returns p translated by v.
func (p Position) Add(v Vector) Position {
	return Position{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Minus returns p translated by −v.
func (p Position) Minus(v Vector) Position {
	return Position{X: p.X - v.DX, Y: p.Y - v.DY}
}

// DistanceTo returns |p − q|.
func (p Position) DistanceTo(q Position) float64 {
	return p.Sub(q).Length()
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return fmt.Sprintf("%g;%g", p.X, p.Y)
}

// Vector returns To − From.
func (s Segment) Vector() Vector {
	return s.To.Sub(s.From)
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return s.Vector().Length()
}
