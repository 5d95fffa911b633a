package core

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

var (
	// ErrDegenerateOutline is returned for outlines with fewer than two points.
	ErrDegenerateOutline = errors.New("core: outline needs at least 2 points")

	// ErrInvalidPolygon is returned for regular polygons that cannot be built.
	ErrInvalidPolygon = errors.New("core: invalid regular polygon")
)

// Outline is the boundary of a shape in its local frame (unrotated, untranslated).
// A closed outline repeats its first point at the end, so consecutive pairs
// cover every edge without a wrap-around case.
type Outline struct {
	points []Vector
}

// NewOutline copies points into a new outline.
func NewOutline(points ...Vector) (Outline, error) {
	if len(points) < 2 {
		return Outline{}, fmt.Errorf("%w: got %d", ErrDegenerateOutline, len(points))
	}
	pts := make([]Vector, len(points))
	copy(pts, points)
	return Outline{points: pts}, nil
}

// MustOutline is like NewOutline but panics on error.
// Intended for fixed shapes declared in code.
func MustOutline(points ...Vector) Outline {
	o, err := NewOutline(points...)
	if err != nil {
		panic(err)
	}
	return o
}

// RegularPolygon returns a closed outline with sides points evenly spaced on a
// circle of the given radius, starting at angle 0.
func RegularPolygon(sides int, radius float64) (Outline, error) {
	if sides < 3 {
		return Outline{}, fmt.Errorf("%w: %d sides", ErrInvalidPolygon, sides)
	}
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return Outline{}, fmt.Errorf("%w: radius %g", ErrInvalidPolygon, radius)
	}

	step := 2 * math.Pi / float64(sides)
	pts := make([]Vector, 0, sides+1)
	for i := range sides {
		pts = append(pts, FromAngle(step*float64(i), radius))
	}

	o := Outline{points: pts}
	o.Close(true)
	return o, nil
}

// Len returns the number of stored points, including a closing duplicate.
func (o Outline) Len() int {
	return len(o.points)
}

// At returns the i-th point.
func (o Outline) At(i int) Vector {
	return o.points[i]
}

// Points returns a copy of the points.
func (o Outline) Points() []Vector {
	pts := make([]Vector, len(o.points))
	copy(pts, o.points)
	return pts
}

// Closed reports whether the first and last points coincide.
func (o Outline) Closed() bool {
	if len(o.points) < 2 {
		return false
	}
	return o.points[0].Equals(o.points[len(o.points)-1], DefaultEpsilon)
}

// Close makes the first and last points equal. With extend the first point is
// appended; otherwise the last point is overwritten. Already closed outlines
// are left alone.
func (o *Outline) Close(extend bool) {
	if len(o.points) == 0 || o.Closed() {
		return
	}
	first := o.points[0]
	if extend {
		o.points = append(o.points, first)
		return
	}
	o.points[len(o.points)-1] = first
}

// Edges yields each segment (p[i], p[i+1]) in order.
func (o Outline) Edges() iter.Seq2[Vector, Vector] {
	return func(yield func(Vector, Vector) bool) {
		for i := 0; i+1 < len(o.points); i++ {
			if !yield(o.points[i], o.points[i+1]) {
				return
			}
		}
	}
}

// Scale multiplies every point by f in place.
func (o Outline) Scale(f float64) {
	for i, p := range o.points {
		o.points[i] = p.Scale(f)
	}
}

// Extent returns the largest distance of any point from the local origin.
func (o Outline) Extent() float64 {
	var r float64
	for _, p := range o.points {
		r = math.Max(r, p.Len())
	}
	return r
}

// Transform rotates every point by rot and then translates it by pos.
// The result is written into dst, which is grown as needed and returned.
func (o Outline) Transform(dst []Vector, pos Vector, rot float64) []Vector {
	dst = dst[:0]
	for _, p := range o.points {
		dst = append(dst, p.Rotate(rot).Add(pos))
	}
	return dst
}
