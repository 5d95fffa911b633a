package engine

// MotionSystem integrates every drawable entity and wraps it around the
// playfield. Entities without Motion just turn at one radian per second.
type MotionSystem struct{}

// Update advances all transforms by dt seconds.
func (MotionSystem) Update(w *World, dt float64) {
	query := w.drawables.Query()
	for query.Next() {
		t, b := query.Get()
		e := query.Entity()

		if w.motions.Has(e) {
			m := w.motions.Get(e)
			t.Pos = t.Pos.Add(m.Vel.Scale(dt))
			t.Rot += m.Spin * dt
		} else {
			t.Rot += dt
		}
		w.Wrap(t, b)
	}
}
