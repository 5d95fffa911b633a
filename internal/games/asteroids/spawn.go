package asteroids

import (
	"fmt"
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/vovakirdan/vecroids/internal/core"
	"github.com/vovakirdan/vecroids/internal/engine"
)

// AsteroidParams is a fully rolled asteroid that has not been inserted yet.
type AsteroidParams struct {
	Level   int
	Outline core.Outline
	Pos     core.Vector
	Vel     core.Vector
	Spin    float64
}

// ShipParams places the ship.
type ShipParams struct {
	Pos core.Vector
	Rot float64
}

// BulletParams fires a bullet from Pos along Dir (radians).
type BulletParams struct {
	Pos core.Vector
	Dir float64
}

// shipOutline is the fixed arrowhead; its nose is (0, -2) before scaling.
func shipOutline(scale float64) core.Outline {
	o := core.MustOutline(core.Vec(0, -2), core.Vec(1, 1.5), core.Vec(-1, 1.5))
	o.Close(true)
	o.Scale(scale)
	return o
}

// bulletOutline is a short open stroke along +x.
func bulletOutline(scale float64) core.Outline {
	o := core.MustOutline(core.Vec(0, 0), core.Vec(1, 0))
	o.Scale(scale)
	return o
}

func strokeOf(name string, width float64) core.Stroke {
	c, ok := core.ParseColor(name)
	if !ok {
		c = core.ColorWhite
	}
	if width <= 0 {
		width = 1
	}
	return core.Stroke{Color: c, Width: width}
}

// radius returns the nominal radius for a level, clamped to the configured range.
func (g *Game) radius(level int) float64 {
	radii := g.cfg.Asteroid.Radii
	return radii[core.Clamp(level, 0, len(radii)-1)]
}

// jagged builds a regular polygon of the level's radius with every vertex
// pulled in or pushed out by a random factor.
func (g *Game) jagged(level int) (core.Outline, error) {
	ac := g.cfg.Asteroid
	base, err := core.RegularPolygon(ac.Sides, g.radius(level))
	if err != nil {
		return core.Outline{}, err
	}

	pts := make([]core.Vector, ac.Sides)
	for i := range pts {
		pts[i] = base.At(i).Scale(g.dice.Uniform(ac.JitterMin, ac.JitterMax))
	}
	o, err := core.NewOutline(pts...)
	if err != nil {
		return core.Outline{}, err
	}
	o.Close(true)
	return o, nil
}

// rollAsteroid draws every random property of a new asteroid. With at == nil
// it is placed on the edge of the screen grown by the asteroid's diameter.
func (g *Game) rollAsteroid(level int, at *core.Vector) AsteroidParams {
	outline, err := g.jagged(level)
	if err != nil {
		// The config is validated in Reset.
		panic(fmt.Sprintf("asteroids: %v", err))
	}

	ac := g.cfg.Asteroid
	params := AsteroidParams{
		Level:   level,
		Outline: outline,
	}

	if at != nil {
		params.Pos = *at
	} else {
		params.Pos = g.edgePosition(2 * outline.Extent())
	}

	heading := g.dice.Uniform(0, 2*math.Pi)
	speed := g.dice.Uniform(ac.SpeedMin, ac.SpeedMax) * g.difficulty.Speed(1, g.wave, g.ticks)
	params.Vel = core.FromAngle(heading, speed)
	params.Spin = g.dice.Uniform(-ac.SpinMax, ac.SpinMax)
	return params
}

// edgePosition picks a point on the screen rectangle grown by diameter.
func (g *Game) edgePosition(diameter float64) core.Vector {
	bounds := g.world.Bounds()
	halfW := (bounds.W + diameter) / 2
	halfH := (bounds.H + diameter) / 2

	if g.dice.Flip() {
		y := halfH
		if g.dice.Flip() {
			y = -y
		}
		return core.Vec(g.dice.Uniform(-halfW, halfW), y)
	}
	x := halfW
	if g.dice.Flip() {
		x = -x
	}
	return core.Vec(x, g.dice.Uniform(-halfH, halfH))
}

func (g *Game) spawnAsteroid(params AsteroidParams) engine.Spawner {
	return func(w *engine.World) ecs.Entity {
		body := engine.NewBody(params.Outline, g.strokes.asteroid)
		return g.kinds.newAsteroid.NewEntity(
			&engine.Transform{Pos: params.Pos},
			&body,
			&engine.Motion{Vel: params.Vel, Spin: params.Spin},
			&Asteroid{Level: params.Level},
		)
	}
}

func (g *Game) spawnShip(params ShipParams) engine.Spawner {
	return func(w *engine.World) ecs.Entity {
		body := engine.NewBody(g.shipShape, g.strokes.ship)
		return g.kinds.newShip.NewEntity(
			&engine.Transform{Pos: params.Pos, Rot: params.Rot},
			&body,
			&engine.Motion{},
			&Ship{},
		)
	}
}

func (g *Game) spawnBullet(params BulletParams) engine.Spawner {
	return func(w *engine.World) ecs.Entity {
		body := engine.NewBody(g.bulletShape, g.strokes.bullet)
		return g.kinds.newBullet.NewEntity(
			&engine.Transform{Pos: params.Pos, Rot: params.Dir},
			&body,
			&engine.Motion{Vel: core.FromAngle(params.Dir, g.cfg.Bullet.Speed)},
			&Bullet{Life: g.cfg.Bullet.Lifetime},
		)
	}
}
