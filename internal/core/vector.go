package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultEpsilon is the tolerance used for approximate comparisons when the
// caller has no better value.
const DefaultEpsilon = 1e-9

// Vector is a 2D point or direction in world units.
// World space has its origin at the centre of the screen and y pointing up.
type Vector struct {
	X, Y float64
}

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// FromAngle returns the vector of the given length pointing along angle.
func FromAngle(angle, length float64) Vector {
	return Vector{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

func (v Vector) r2() r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

func fromR2(p r2.Vec) Vector {
	return Vector{X: p.X, Y: p.Y}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return fromR2(r2.Add(v.r2(), o.r2()))
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return fromR2(r2.Sub(v.r2(), o.r2()))
}

// Scale multiplies both components by s.
func (v Vector) Scale(s float64) Vector {
	return fromR2(r2.Scale(s, v.r2()))
}

// Mul multiplies componentwise.
func (v Vector) Mul(o Vector) Vector {
	return Vector{X: v.X * o.X, Y: v.Y * o.Y}
}

// Dot returns the dot product.
func (v Vector) Dot(o Vector) float64 {
	return r2.Dot(v.r2(), o.r2())
}

// Cross returns the scalar 2D cross product v.X*o.Y - v.Y*o.X.
func (v Vector) Cross(o Vector) float64 {
	return r2.Cross(v.r2(), o.r2())
}

// Rotate turns v about the origin by theta radians.
//
// The matrix [[cos, sin], [-sin, cos]] read as a column-vector product would
// turn v clockwise. It is applied to v as a row vector instead, which turns it
// counter-clockwise, because only that reading takes the ship nose (0, -1) to
// the thrust direction (sin theta, -cos theta).
func (v Vector) Rotate(theta float64) Vector {
	return fromR2(r2.Rotate(v.r2(), theta, r2.Vec{}))
}

// Len returns the Euclidean length.
func (v Vector) Len() float64 {
	return r2.Norm(v.r2())
}

// Dist returns the Euclidean distance between v and o.
func (v Vector) Dist(o Vector) float64 {
	return r2.Norm(r2.Sub(v.r2(), o.r2()))
}

// Equals reports whether both components differ by at most eps.
func (v Vector) Equals(o Vector, eps float64) bool {
	return scalar.EqualWithinAbs(v.X, o.X, eps) && scalar.EqualWithinAbs(v.Y, o.Y, eps)
}

// String implements fmt.Stringer.
func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
