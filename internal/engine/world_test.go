package engine

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/vovakirdan/vecroids/internal/core"
)

type recorder struct {
	lines [][]core.Vector
}

func (r *recorder) Polyline(points []core.Vector, stroke core.Stroke) {
	r.lines = append(r.lines, append([]core.Vector(nil), points...))
}

func square(t *testing.T, half float64) core.Outline {
	t.Helper()
	o, err := core.NewOutline(
		core.Vec(-half, -half),
		core.Vec(half, -half),
		core.Vec(half, half),
		core.Vec(-half, half),
	)
	if err != nil {
		t.Fatalf("NewOutline: %v", err)
	}
	o.Close(true)
	return o
}

func still(pos core.Vector, outline core.Outline) Spawner {
	return func(w *World) ecs.Entity {
		m := ecs.NewMap2[Transform, Body](w.ECS())
		return m.NewEntity(&Transform{Pos: pos}, &Body{Outline: outline, Extent: outline.Extent()})
	}
}

func moving(pos core.Vector, outline core.Outline, motion Motion) Spawner {
	return func(w *World) ecs.Entity {
		m := ecs.NewMap3[Transform, Body, Motion](w.ECS())
		b := NewBody(outline, core.Stroke{Color: core.ColorWhite, Width: 1})
		return m.NewEntity(&Transform{Pos: pos}, &b, &motion)
	}
}

func TestWorldInsertAndDraw(t *testing.T) {
	w := NewWorld(core.NewBounds(800, 600))
	w.Insert(still(core.Vec(10, 20), square(t, 1)))

	if got := w.Count(); got != 1 {
		t.Fatalf("Count() = %d, want 1", got)
	}

	var rec recorder
	w.Draw(&rec)
	if len(rec.lines) != 1 {
		t.Fatalf("drew %d polylines, want 1", len(rec.lines))
	}
	line := rec.lines[0]
	if len(line) != 5 {
		t.Fatalf("polyline has %d points, want 5", len(line))
	}
	if !line[0].Equals(core.Vec(9, 19), 1e-9) {
		t.Errorf("first point = %v, want (9, 19)", line[0])
	}
	if !line[0].Equals(line[4], 1e-9) {
		t.Errorf("outline not closed: %v != %v", line[0], line[4])
	}
}

func TestMotionSystem(t *testing.T) {
	w := NewWorld(core.NewBounds(800, 600))
	w.AddSystem(MotionSystem{})

	mover := w.Insert(moving(core.Vec(0, 0), square(t, 1), Motion{Vel: core.Vec(10, -4), Spin: 2}))
	spinner := w.Insert(still(core.Vec(5, 5), square(t, 1)))

	w.Update(0.5)

	mt := w.Transform(mover)
	if !mt.Pos.Equals(core.Vec(5, -2), 1e-9) {
		t.Errorf("mover position = %v, want (5, -2)", mt.Pos)
	}
	if math.Abs(mt.Rot-1) > 1e-9 {
		t.Errorf("mover rotation = %v, want 1", mt.Rot)
	}

	st := w.Transform(spinner)
	if !st.Pos.Equals(core.Vec(5, 5), 1e-9) {
		t.Errorf("spinner moved to %v", st.Pos)
	}
	if math.Abs(st.Rot-0.5) > 1e-9 {
		t.Errorf("spinner rotation = %v, want 0.5", st.Rot)
	}
}

func TestMotionSystemWraps(t *testing.T) {
	const r = 10.0
	w := NewWorld(core.NewBounds(800, 600))
	w.AddSystem(MotionSystem{})

	outline, err := core.RegularPolygon(8, r)
	if err != nil {
		t.Fatal(err)
	}
	e := w.Insert(moving(core.Vec(400+r+1, 0), outline, Motion{}))
	w.Update(0)

	got := w.Transform(e).Pos
	if got.X >= 0 {
		t.Fatalf("x = %v, want wrapped to the negative side", got.X)
	}
	if math.Abs(got.X) > 400+r {
		t.Errorf("|x| = %v exceeds W/2 + r", math.Abs(got.X))
	}
}

func TestDestroyTwice(t *testing.T) {
	w := NewWorld(core.NewBounds(100, 100))
	e := w.Insert(still(core.Vec(0, 0), square(t, 1)))

	if err := w.Destroy(e); err != nil {
		t.Fatalf("first Destroy: %v", err)
	}
	if w.Alive(e) {
		t.Fatal("entity still alive after Destroy")
	}
	if err := w.Destroy(e); !errors.Is(err, ErrNotAlive) {
		t.Fatalf("second Destroy error = %v, want ErrNotAlive", err)
	}
}

func TestQueuedDestroyRunsHookOnce(t *testing.T) {
	w := NewWorld(core.NewBounds(100, 100))
	e := w.Insert(still(core.Vec(0, 0), square(t, 1)))

	calls := 0
	w.OnDestroy(func(w *World, got ecs.Entity) {
		if got == e {
			calls++
		}
	})

	w.QueueDestroy(e)
	w.QueueDestroy(e)
	stats := w.Commit()

	if calls != 1 {
		t.Errorf("hook ran %d times, want 1", calls)
	}
	if stats.Destroyed != 1 {
		t.Errorf("Destroyed = %d, want 1", stats.Destroyed)
	}
	if w.Count() != 0 {
		t.Errorf("Count() = %d, want 0", w.Count())
	}
}

func TestHookSpawnsAreCommitted(t *testing.T) {
	w := NewWorld(core.NewBounds(100, 100))
	parent := w.Insert(still(core.Vec(3, 4), square(t, 2)))

	w.OnDestroy(func(w *World, e ecs.Entity) {
		pos := w.Transform(e).Pos
		for i := 0; i < 2; i++ {
			w.QueueSpawn(still(pos, square(t, 1)))
		}
	})

	if err := w.Destroy(parent); err != nil {
		t.Fatal(err)
	}
	if got := w.Count(); got != 2 {
		t.Fatalf("Count() = %d, want 2", got)
	}

	var rec recorder
	w.Draw(&rec)
	for _, line := range rec.lines {
		if !line[0].Equals(core.Vec(2, 3), 1e-9) {
			t.Errorf("child drawn at %v, want it centred on the parent", line[0])
		}
	}
}

func TestCollidesWith(t *testing.T) {
	tests := []struct {
		name string
		b    core.Vector
		want bool
	}{
		{"overlapping", core.Vec(1, 1), true},
		{"apart", core.Vec(10, 0), false},
		{"nested", core.Vec(0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld(core.NewBounds(100, 100))
			a := w.Insert(still(core.Vec(0, 0), square(t, 2)))
			half := 2.0
			if tt.name == "nested" {
				half = 1
			}
			b := w.Insert(still(tt.b, square(t, half)))

			if got := w.CollidesWith(a, b); got != tt.want {
				t.Errorf("CollidesWith = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAccessorsOnDeadEntity(t *testing.T) {
	w := NewWorld(core.NewBounds(100, 100))
	e := w.Insert(still(core.Vec(0, 0), square(t, 1)))
	if err := w.Destroy(e); err != nil {
		t.Fatal(err)
	}

	if w.Transform(e) != nil || w.Body(e) != nil || w.Motion(e) != nil {
		t.Error("accessors should return nil for a dead entity")
	}
	if got := w.Outline(nil, e); len(got) != 0 {
		t.Errorf("Outline of dead entity = %v, want empty", got)
	}
}

func TestLoop(t *testing.T) {
	base := time.Unix(1000, 0)
	l := NewLoop(100 * time.Millisecond)

	if _, ok := l.Tick(base); ok {
		t.Fatal("first tick should only set the baseline")
	}

	dt, ok := l.Tick(base.Add(16 * time.Millisecond))
	if !ok || math.Abs(dt-0.016) > 1e-9 {
		t.Errorf("Tick = (%v, %v), want (0.016, true)", dt, ok)
	}

	dt, _ = l.Tick(base.Add(5 * time.Second))
	if math.Abs(dt-0.1) > 1e-9 {
		t.Errorf("clamped dt = %v, want 0.1", dt)
	}

	l.Rebase()
	if _, ok := l.Tick(base.Add(time.Minute)); ok {
		t.Error("tick after Rebase should be a baseline")
	}
	if l.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", l.Frames())
	}
}
