package engine

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/vovakirdan/vecroids/internal/core"
)

// Transform returns the transform of e, or nil if e has none.
func (w *World) Transform(e ecs.Entity) *Transform {
	if !w.ecs.Alive(e) || !w.transforms.Has(e) {
		return nil
	}
	return w.transforms.Get(e)
}

// Body returns the body of e, or nil if e has none.
func (w *World) Body(e ecs.Entity) *Body {
	if !w.ecs.Alive(e) || !w.bodies.Has(e) {
		return nil
	}
	return w.bodies.Get(e)
}

// Motion returns the motion of e, or nil if e has none.
func (w *World) Motion(e ecs.Entity) *Motion {
	if !w.ecs.Alive(e) || !w.motions.Has(e) {
		return nil
	}
	return w.motions.Get(e)
}

// Outline appends the world-space outline of e to dst.
// It returns dst unchanged if e is not drawable.
func (w *World) Outline(dst []core.Vector, e ecs.Entity) []core.Vector {
	t, b := w.Transform(e), w.Body(e)
	if t == nil || b == nil {
		return dst
	}
	return b.Outline.Transform(dst, t.Pos, t.Rot)
}

// CollidesWith reports whether any edge of a crosses any edge of b.
func (w *World) CollidesWith(a, b ecs.Entity) bool {
	w.scratchA = w.Outline(w.scratchA[:0], a)
	w.scratchB = w.Outline(w.scratchB[:0], b)
	return core.OutlinesIntersect(w.scratchA, w.scratchB, w.collision)
}

// Wrap moves t to the opposite edge once it has left the playfield,
// allowing for the body's extent.
func (w *World) Wrap(t *Transform, b *Body) {
	t.Pos = w.bounds.Wrap(t.Pos, b.Extent)
}

// Draw renders every drawable entity onto dst.
func (w *World) Draw(dst core.Canvas) {
	query := w.drawables.Query()
	for query.Next() {
		t, b := query.Get()
		w.scratchA = b.Outline.Transform(w.scratchA[:0], t.Pos, t.Rot)
		dst.Polyline(w.scratchA, b.Stroke)
	}
}
