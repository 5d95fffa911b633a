// Package engine is the entity world and frame loop shared by vector games.
//
// Entities live in an ark ECS world. Every drawable entity has a Transform and
// a Body; moving entities add Motion. Games attach their own kind components
// and run their systems through World.Update.
package engine

import "github.com/vovakirdan/vecroids/internal/core"

// Transform places an entity in world space.
type Transform struct {
	Pos core.Vector
	Rot float64 // radians
}

// Body is the visible and collidable shape of an entity.
type Body struct {
	Outline core.Outline
	Extent  float64 // half-extent: largest distance of the outline from its origin
	Stroke  core.Stroke
}

// NewBody creates a body and caches the outline extent.
func NewBody(outline core.Outline, stroke core.Stroke) Body {
	return Body{
		Outline: outline,
		Extent:  outline.Extent(),
		Stroke:  stroke,
	}
}

// Motion is the kinematic state integrated by MotionSystem.
type Motion struct {
	Vel  core.Vector // world units per second
	Spin float64     // radians per second
}
