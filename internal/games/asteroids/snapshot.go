package asteroids

import "math"

// Snapshot contains the simulation state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick     uint64
	Wave     int
	GameOver bool

	// Ship state: X, Y, Rot, VX, VY (empty once destroyed)
	ShipData []float64

	// Asteroid state (each asteroid is 4 values: Level, X, Y, Rot)
	AsteroidCount int
	AsteroidData  []float64

	// Bullet state (each bullet is 3 values: X, Y, Life)
	BulletCount int
	BulletData  []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     uint64(g.ticks), //#nosec G115 -- tick count is always positive
		Wave:     g.wave,
		GameOver: g.State().GameOver,
	}
	if g.world == nil {
		return snap
	}

	if t, m := g.world.Transform(g.ship), g.world.Motion(g.ship); t != nil && m != nil {
		snap.ShipData = []float64{t.Pos.X, t.Pos.Y, t.Rot, m.Vel.X, m.Vel.Y}
	}

	aq := g.kinds.asteroids.Query()
	for aq.Next() {
		t, _, a := aq.Get()
		snap.AsteroidData = append(snap.AsteroidData, float64(a.Level), t.Pos.X, t.Pos.Y, t.Rot)
		snap.AsteroidCount++
	}

	bq := g.kinds.bullets.Query()
	for bq.Next() {
		t, b := bq.Get()
		snap.BulletData = append(snap.BulletData, t.Pos.X, t.Pos.Y, b.Life)
		snap.BulletCount++
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Wave) //#nosec G115 -- hash computation
	if snap.GameOver {
		h = h*31 + 1
	}
	for _, v := range snap.ShipData {
		h = h*31 + math.Float64bits(v)
	}
	h = h*31 + uint64(snap.AsteroidCount) //#nosec G115 -- hash computation
	for _, v := range snap.AsteroidData {
		h = h*31 + math.Float64bits(v)
	}
	h = h*31 + uint64(snap.BulletCount) //#nosec G115 -- hash computation
	for _, v := range snap.BulletData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
