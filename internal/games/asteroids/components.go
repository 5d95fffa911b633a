package asteroids

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/vovakirdan/vecroids/internal/engine"
)

// Asteroid marks a rock. Level indexes the configured radii; level 0 rocks
// do not split.
type Asteroid struct {
	Level int
}

// Ship marks the player's ship and holds its control state.
type Ship struct {
	Spin     float64 // current turn rate, rad/s
	Thrust   bool    // thrust held this frame
	Cooldown float64 // seconds until the next shot is allowed
}

// Bullet marks a shot. Life is the remaining lifetime in simulated seconds.
type Bullet struct {
	Life float64
}

// kinds holds the mappers and filters for one world.
type kinds struct {
	newAsteroid *ecs.Map4[engine.Transform, engine.Body, engine.Motion, Asteroid]
	newShip     *ecs.Map4[engine.Transform, engine.Body, engine.Motion, Ship]
	newBullet   *ecs.Map4[engine.Transform, engine.Body, engine.Motion, Bullet]

	asteroid *ecs.Map[Asteroid]
	ship     *ecs.Map[Ship]

	asteroids *ecs.Filter3[engine.Transform, engine.Body, Asteroid]
	ships     *ecs.Filter3[engine.Transform, engine.Motion, Ship]
	bullets   *ecs.Filter2[engine.Transform, Bullet]
}

func newKinds(w *ecs.World) *kinds {
	return &kinds{
		newAsteroid: ecs.NewMap4[engine.Transform, engine.Body, engine.Motion, Asteroid](w),
		newShip:     ecs.NewMap4[engine.Transform, engine.Body, engine.Motion, Ship](w),
		newBullet:   ecs.NewMap4[engine.Transform, engine.Body, engine.Motion, Bullet](w),

		asteroid: ecs.NewMap[Asteroid](w),
		ship:     ecs.NewMap[Ship](w),

		asteroids: ecs.NewFilter3[engine.Transform, engine.Body, Asteroid](w),
		ships:     ecs.NewFilter3[engine.Transform, engine.Motion, Ship](w),
		bullets:   ecs.NewFilter2[engine.Transform, Bullet](w),
	}
}
