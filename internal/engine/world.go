package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/mlange-42/ark/ecs"

	"github.com/vovakirdan/vecroids/internal/core"
)

// ErrNotAlive is returned when destroying an entity that is not in the world.
var ErrNotAlive = errors.New("engine: entity is not alive")

// Spawner inserts one entity into a world and returns its handle.
// Games build spawners as plain values first and insert them explicitly,
// so constructing an entity description has no side effects.
type Spawner func(w *World) ecs.Entity

// DestroyHook runs just before an entity is removed. Hooks may queue spawns
// and destroys; they are applied within the same commit.
type DestroyHook func(w *World, e ecs.Entity)

// System is one step of the per-frame update.
// Systems must not add or remove entities directly; they queue intents.
type System interface {
	Update(w *World, dt float64)
}

// SystemFunc adapts a function to the System interface.
type SystemFunc func(w *World, dt float64)

// Update calls f(w, dt).
func (f SystemFunc) Update(w *World, dt float64) {
	f(w, dt)
}

// CommitStats summarizes the intents applied by one commit.
type CommitStats struct {
	Spawned   int
	Destroyed int
}

// World owns the live entity set of one simulation.
type World struct {
	ecs       *ecs.World
	bounds    core.Bounds
	collision core.IntersectOptions
	logger    *log.Logger

	transforms *ecs.Map[Transform]
	bodies     *ecs.Map[Body]
	motions    *ecs.Map[Motion]
	drawables  *ecs.Filter2[Transform, Body]

	systems  []System
	hooks    []DestroyHook
	spawns   []Spawner
	destroys []ecs.Entity

	scratchA, scratchB []core.Vector
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		w.logger = l
	}
}

// WithCollision sets the segment test options used by CollidesWith.
func WithCollision(opts core.IntersectOptions) Option {
	return func(w *World) {
		w.collision = opts
	}
}

// NewWorld creates an empty world with the given visible bounds.
func NewWorld(bounds core.Bounds, opts ...Option) *World {
	world := ecs.NewWorld()

	w := &World{
		ecs:        world,
		bounds:     bounds,
		logger:     log.New(io.Discard),
		transforms: ecs.NewMap[Transform](world),
		bodies:     ecs.NewMap[Body](world),
		motions:    ecs.NewMap[Motion](world),
		drawables:  ecs.NewFilter2[Transform, Body](world),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// ECS exposes the underlying ark world so games can build their own mappers
// and filters for kind components.
func (w *World) ECS() *ecs.World {
	return w.ecs
}

// Bounds returns the visible playfield.
func (w *World) Bounds() core.Bounds {
	return w.bounds
}

// Logger returns the world's logger.
func (w *World) Logger() *log.Logger {
	return w.logger
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
}

// OnDestroy registers a hook that runs before any entity is removed.
func (w *World) OnDestroy(h DestroyHook) {
	w.hooks = append(w.hooks, h)
}

// Alive reports whether e is still in the world.
func (w *World) Alive(e ecs.Entity) bool {
	return w.ecs.Alive(e)
}

// Insert adds an entity right away. It must not be called from a system.
func (w *World) Insert(s Spawner) ecs.Entity {
	return s(w)
}

// QueueSpawn defers an insertion to the next commit.
func (w *World) QueueSpawn(s Spawner) {
	w.spawns = append(w.spawns, s)
}

// QueueDestroy defers a removal to the next commit.
// Queuing the same entity twice destroys it once.
func (w *World) QueueDestroy(e ecs.Entity) {
	w.destroys = append(w.destroys, e)
}

// Destroy removes e right away, running destroy hooks and applying whatever
// they spawn. It must not be called from a system.
func (w *World) Destroy(e ecs.Entity) error {
	if !w.ecs.Alive(e) {
		return fmt.Errorf("%w: %v", ErrNotAlive, e)
	}
	w.QueueDestroy(e)
	w.Commit()
	return nil
}

// Commit applies queued destroys (with hooks) and then queued spawns.
func (w *World) Commit() CommitStats {
	var stats CommitStats

	for i := 0; i < len(w.destroys); i++ {
		e := w.destroys[i]
		if !w.ecs.Alive(e) {
			continue
		}
		for _, h := range w.hooks {
			h(w, e)
		}
		w.ecs.RemoveEntity(e)
		stats.Destroyed++
	}
	w.destroys = w.destroys[:0]

	for i := 0; i < len(w.spawns); i++ {
		w.spawns[i](w)
		stats.Spawned++
	}
	w.spawns = w.spawns[:0]

	if stats.Spawned > 0 || stats.Destroyed > 0 {
		w.logger.Debug("commit", "spawned", stats.Spawned, "destroyed", stats.Destroyed)
	}
	return stats
}

// Update runs every system once and then commits their intents.
func (w *World) Update(dt float64) CommitStats {
	for _, s := range w.systems {
		s.Update(w, dt)
	}
	return w.Commit()
}

// Count returns the number of drawable entities.
func (w *World) Count() int {
	n := 0
	query := w.drawables.Query()
	for query.Next() {
		n++
	}
	return n
}
