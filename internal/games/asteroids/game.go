// Package asteroids implements an Asteroids-style vector game.
// The player steers a ship through drifting rocks that split when shot.
package asteroids

import (
	"github.com/charmbracelet/log"
	"github.com/mlange-42/ark/ecs"

	"github.com/vovakirdan/vecroids/internal/config"
	"github.com/vovakirdan/vecroids/internal/core"
	"github.com/vovakirdan/vecroids/internal/engine"
	"github.com/vovakirdan/vecroids/internal/registry"
)

// Game implements the Asteroids game logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.AsteroidsConfig
	pinned     bool // cfg was supplied by the caller; Reset must not reload it
	difficulty *config.DifficultyManager
	baseLogger *log.Logger // nil means log.Default() at Reset
	logger     *log.Logger

	world *engine.World
	kinds *kinds
	loop  *engine.Loop
	dice  *dice

	ship        ecs.Entity
	shipShape   core.Outline
	bulletShape core.Outline
	strokes     struct{ ship, asteroid, bullet core.Stroke }

	input  core.InputFrame // input of the frame being simulated
	wave   int
	ticks  int // simulated frames since reset
	paused bool

	rocks []rock
	ships []ecs.Entity
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown names leave the config's own difficulty in place.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger the game and its world report to.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.baseLogger = l
	}
}

// New creates a new Asteroids game that loads its config on Reset.
func New(opts ...Option) *Game {
	g := &Game{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.AsteroidsConfig, opts ...Option) *Game {
	g := New(opts...)
	g.cfg = cfg
	g.pinned = true
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "asteroids"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroids"
}

// Config returns the configuration in use since the last Reset.
func (g *Game) Config() config.AsteroidsConfig {
	return g.cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	base := g.baseLogger
	if base == nil {
		base = log.Default()
	}
	g.logger = base.WithPrefix(g.ID())

	if !g.pinned {
		cfg, err := config.LoadAsteroids(configPath)
		if err != nil {
			g.logger.Warn("using default config", "error", err)
		}
		config.ApplyAsteroidsPreset(&cfg, difficultyPreset)
		g.cfg = cfg
	}
	if err := g.cfg.Validate(); err != nil {
		g.logger.Error("invalid config, using defaults", "error", err)
		g.cfg = config.DefaultAsteroidsConfig()
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.dice = newDice(runtime.Seed)
	g.loop = engine.NewLoop(g.cfg.Engine.MaxFrameDelta)

	g.world = engine.NewWorld(
		core.NewBounds(g.cfg.World.Width, g.cfg.World.Height),
		engine.WithLogger(g.logger),
		engine.WithCollision(core.IntersectOptions{
			Epsilon:            g.cfg.Collision.Epsilon,
			OverlapAsIntersect: g.cfg.Collision.OverlapAsIntersect,
		}),
	)
	g.kinds = newKinds(g.world.ECS())
	g.world.AddSystem(engine.SystemFunc(g.steer))
	g.world.AddSystem(engine.MotionSystem{})
	g.world.AddSystem(engine.SystemFunc(g.crash))
	g.world.AddSystem(engine.SystemFunc(g.shoot))
	g.world.OnDestroy(g.onDestroy)

	g.shipShape = shipOutline(g.cfg.Ship.Scale)
	g.bulletShape = bulletOutline(g.cfg.Bullet.Scale)
	g.strokes.ship = strokeOf(g.cfg.Ship.Color, g.cfg.Ship.LineWidth)
	g.strokes.asteroid = strokeOf(g.cfg.Asteroid.Color, g.cfg.Asteroid.LineWidth)
	g.strokes.bullet = strokeOf(g.cfg.Bullet.Color, g.cfg.Bullet.LineWidth)

	g.input = core.InputFrame{}
	g.wave = 0
	g.ticks = 0
	g.paused = false
	g.ship = g.world.Insert(g.spawnShip(ShipParams{}))

	g.logger.Info("game reset", "seed", runtime.Seed, "width", g.cfg.World.Width, "height", g.cfg.World.Height)
}

// Step advances the game by one frame of wall-clock time.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		return core.StepResult{}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && g.world.Alive(g.ship) {
		g.paused = !g.paused
		if !g.paused {
			// Do not simulate the time spent paused.
			g.loop.Rebase()
		}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.nextWave()

	dt, ok := g.loop.Tick(g.runtime.Now())
	if !ok {
		return core.StepResult{State: g.State()}
	}

	g.input = in
	g.ticks++
	g.world.Update(dt)
	g.input = core.InputFrame{}

	return core.StepResult{State: g.State(), DT: dt}
}

// Render draws every live entity onto the canvas.
func (g *Game) Render(dst core.Canvas) {
	if g.world == nil {
		return
	}
	g.world.Draw(dst)
}

// World returns the playfield.
func (g *Game) World() core.Bounds {
	if g.world == nil {
		return core.NewBounds(g.cfg.World.Width, g.cfg.World.Height)
	}
	return g.world.Bounds()
}

// Display returns the window title, background and key hold window.
func (g *Game) Display() core.Display {
	bg, ok := core.ParseColor(g.cfg.World.Background)
	if !ok {
		bg = core.ColorBlack
	}
	return core.Display{
		Title:      g.cfg.World.Title,
		Background: bg,
		HoldWindow: g.cfg.Input.HoldWindow,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		GameOver: !g.world.Alive(g.ship),
		Paused:   g.paused,
		Wave:     g.wave,
	}
}

func init() {
	registry.Register("asteroids", func() registry.Game {
		return New()
	})
}
