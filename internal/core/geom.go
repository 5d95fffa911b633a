// Package core provides the geometry, input and drawing primitives shared by
// the engine, the games and the platform backends. It has no dependency on
// any terminal or window library so game logic stays pure and testable.
package core

// Bounds is the visible playfield in world units, centred on the origin.
type Bounds struct {
	W, H float64
}

// NewBounds creates bounds of the given size.
func NewBounds(w, h float64) Bounds {
	return Bounds{W: w, H: h}
}

// HalfW returns half the width.
func (b Bounds) HalfW() float64 {
	return b.W / 2
}

// HalfH returns half the height.
func (b Bounds) HalfH() float64 {
	return b.H / 2
}

// Wrap applies toroidal wrapping to p for a shape of the given half-extent.
// The wrapped span on each axis is the screen size plus twice the extent, so a
// shape is fully off screen before it reappears on the opposite edge.
func (b Bounds) Wrap(p Vector, extent float64) Vector {
	p.X = wrapAxis(p.X, b.W+2*extent)
	p.Y = wrapAxis(p.Y, b.H+2*extent)
	return p
}

func wrapAxis(v, span float64) float64 {
	limit := span / 2
	switch {
	case v > limit:
		return v - span
	case v < -limit:
		return v + span
	default:
		return v
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
