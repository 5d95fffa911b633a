package asteroids

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/vovakirdan/vecroids/internal/core"
	"github.com/vovakirdan/vecroids/internal/engine"
)

// rock is a per-frame view of one asteroid.
type rock struct {
	e      ecs.Entity
	pos    core.Vector
	extent float64
	hit    bool
}

// collectRocks snapshots the live asteroids.
func (g *Game) collectRocks() []rock {
	g.rocks = g.rocks[:0]
	q := g.kinds.asteroids.Query()
	for q.Next() {
		t, b, _ := q.Get()
		g.rocks = append(g.rocks, rock{e: q.Entity(), pos: t.Pos, extent: b.Extent})
	}
	return g.rocks
}

// steer applies the held controls to every ship and queues shots.
// Left and right together cancel out.
func (g *Game) steer(w *engine.World, dt float64) {
	sc := g.cfg.Ship

	q := g.kinds.ships.Query()
	for q.Next() {
		t, m, s := q.Get()

		s.Spin = 0
		if g.input.Holding(core.ActionLeft) {
			s.Spin += sc.TurnRate
		}
		if g.input.Holding(core.ActionRight) {
			s.Spin -= sc.TurnRate
		}
		m.Spin = s.Spin

		s.Thrust = g.input.Holding(core.ActionThrust)
		if s.Thrust {
			heading := t.Rot + m.Spin*dt
			nose := core.Vec(math.Sin(heading), -math.Cos(heading))
			m.Vel = m.Vel.Add(nose.Scale(sc.Thrust * dt))
		}

		s.Cooldown = math.Max(0, s.Cooldown-dt)
		if g.input.Has(core.ActionFire) && s.Cooldown <= 0 {
			w.QueueSpawn(g.spawnBullet(BulletParams{Pos: t.Pos, Dir: t.Rot - math.Pi/2}))
			s.Cooldown = sc.FireCooldown
		}
	}
}

// crash destroys every ship whose outline crosses an asteroid's.
func (g *Game) crash(w *engine.World, dt float64) {
	rocks := g.collectRocks()

	g.ships = g.ships[:0]
	q := g.kinds.ships.Query()
	for q.Next() {
		g.ships = append(g.ships, q.Entity())
	}

	for _, ship := range g.ships {
		t, b := w.Transform(ship), w.Body(ship)
		for _, r := range rocks {
			// Outlines cannot touch unless their bounding circles do.
			if t.Pos.Dist(r.pos) > b.Extent+r.extent {
				continue
			}
			if w.CollidesWith(ship, r.e) {
				w.QueueDestroy(ship)
				break
			}
		}
	}
}

// shoot ages bullets and resolves hits with the cheap radius test.
// Each asteroid absorbs at most one bullet per frame.
func (g *Game) shoot(w *engine.World, dt float64) {
	rocks := g.collectRocks()

	q := g.kinds.bullets.Query()
	for q.Next() {
		t, b := q.Get()
		e := q.Entity()

		b.Life -= dt

		hit := -1
		for i := range rocks {
			if !rocks[i].hit && t.Pos.Dist(rocks[i].pos) < rocks[i].extent {
				hit = i
				break
			}
		}

		switch {
		case hit >= 0:
			rocks[hit].hit = true
			w.QueueDestroy(rocks[hit].e)
			w.QueueDestroy(e)
		case b.Life <= 0:
			w.QueueDestroy(e)
		}
	}
}

// onDestroy splits asteroids into two smaller ones at the parent's position.
func (g *Game) onDestroy(w *engine.World, e ecs.Entity) {
	switch {
	case g.kinds.asteroid.Has(e):
		level := g.kinds.asteroid.Get(e).Level
		if level == 0 {
			return
		}
		pos := w.Transform(e).Pos
		for range 2 {
			w.QueueSpawn(g.spawnAsteroid(g.rollAsteroid(level-1, &pos)))
		}
		g.logger.Debug("asteroid split", "level", level, "x", pos.X, "y", pos.Y)

	case g.kinds.ship.Has(e):
		g.logger.Info("ship destroyed", "wave", g.wave, "ticks", g.ticks)
	}
}

// asteroidCount returns the number of live asteroids.
func (g *Game) asteroidCount() int {
	n := 0
	q := g.kinds.asteroids.Query()
	for q.Next() {
		n++
	}
	return n
}

// nextWave starts a new wave once the field is clear and the ship survives.
func (g *Game) nextWave() {
	if !g.world.Alive(g.ship) || g.asteroidCount() > 0 {
		return
	}

	g.wave++
	n := g.difficulty.WaveSize(g.cfg.Asteroid.StartCount, g.wave, g.ticks)
	for range n {
		g.world.Insert(g.spawnAsteroid(g.rollAsteroid(g.cfg.Asteroid.StartLevel, nil)))
	}
	g.logger.Info("wave spawned", "wave", g.wave, "asteroids", n)
}
