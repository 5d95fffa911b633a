package core

import "math"

// Stroke describes how a polyline is drawn.
type Stroke struct {
	Color Color
	Width float64 // in pixels; ignored by character backends
}

// Canvas is the drawing surface a frame is rendered onto.
// Points are in world space; the implementation maps them to its device.
type Canvas interface {
	Polyline(points []Vector, stroke Stroke)
}

// LineGlyph is the rune used to plot outlines on a Screen.
const LineGlyph = '•'

// Raster projects world space onto a Screen so it can be used as a Canvas.
// The world origin maps to the screen centre and world y grows upwards.
type Raster struct {
	screen *Screen
	world  Bounds
}

// NewRaster creates a raster that fits world onto screen.
func NewRaster(screen *Screen, world Bounds) *Raster {
	return &Raster{screen: screen, world: world}
}

// Project maps a world point to a cell coordinate.
func (r *Raster) Project(p Vector) (int, int) {
	sx := float64(r.screen.Width()) / r.world.W
	sy := float64(r.screen.Height()) / r.world.H
	x := (p.X + r.world.HalfW()) * sx
	y := (r.world.HalfH() - p.Y) * sy
	return int(math.Floor(x)), int(math.Floor(y))
}

// Polyline draws consecutive segments between points.
func (r *Raster) Polyline(points []Vector, stroke Stroke) {
	if len(points) == 0 {
		return
	}
	x0, y0 := r.Project(points[0])
	if len(points) == 1 {
		r.screen.Set(x0, y0, LineGlyph, stroke.Color)
		return
	}
	for _, p := range points[1:] {
		x1, y1 := r.Project(p)
		r.screen.DrawLine(x0, y0, x1, y1, LineGlyph, stroke.Color)
		x0, y0 = x1, y1
	}
}
