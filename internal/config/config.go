// Package config provides YAML-based game configuration loading and
// difficulty management for vecroids.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// AsteroidsConfig contains all configuration for the Asteroids game.
type AsteroidsConfig struct {
	World      WorldConfig      `yaml:"world"`
	Ship       ShipConfig       `yaml:"ship"`
	Asteroid   AsteroidConfig   `yaml:"asteroid"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Collision  CollisionConfig  `yaml:"collision"`
	Engine     EngineConfig     `yaml:"engine"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the playfield and window.
type WorldConfig struct {
	Width      float64 `yaml:"width"`  // world units; the window backend maps one unit to one pixel
	Height     float64 `yaml:"height"` // world units
	Background string  `yaml:"background"`
	Title      string  `yaml:"title"`
}

// ShipConfig defines the player's ship.
type ShipConfig struct {
	Scale        float64 `yaml:"scale"`
	TurnRate     float64 `yaml:"turn_rate"`     // rad/s
	Thrust       float64 `yaml:"thrust"`        // units/s²
	FireCooldown float64 `yaml:"fire_cooldown"` // simulated seconds between shots
	Color        string  `yaml:"color"`
	LineWidth    float64 `yaml:"line_width"`
}

// AsteroidConfig defines asteroid generation.
type AsteroidConfig struct {
	Sides      int       `yaml:"sides"`
	Radii      []float64 `yaml:"radii"` // indexed by level
	JitterMin  float64   `yaml:"jitter_min"`
	JitterMax  float64   `yaml:"jitter_max"`
	SpeedMin   float64   `yaml:"speed_min"`
	SpeedMax   float64   `yaml:"speed_max"`
	SpinMax    float64   `yaml:"spin_max"` // rad/s, spin is uniform in [-spin_max, spin_max]
	StartCount int       `yaml:"start_count"`
	StartLevel int       `yaml:"start_level"`
	Color      string    `yaml:"color"`
	LineWidth  float64   `yaml:"line_width"`
}

// MaxLevel returns the largest asteroid level.
func (a AsteroidConfig) MaxLevel() int {
	return len(a.Radii) - 1
}

// BulletConfig defines bullets.
type BulletConfig struct {
	Scale     float64 `yaml:"scale"`
	Speed     float64 `yaml:"speed"`
	Lifetime  float64 `yaml:"lifetime"` // simulated seconds
	Color     string  `yaml:"color"`
	LineWidth float64 `yaml:"line_width"`
}

// CollisionConfig tunes the segment intersection test.
type CollisionConfig struct {
	Epsilon            float64 `yaml:"epsilon"`
	OverlapAsIntersect bool    `yaml:"overlap_as_intersect"`
}

// EngineConfig tunes the frame loop.
type EngineConfig struct {
	MaxFrameDelta time.Duration `yaml:"max_frame_delta"`
}

// InputConfig tunes input handling for backends without key-release events.
type InputConfig struct {
	HoldWindow time.Duration `yaml:"hold_window"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "wave", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Wave/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to asteroid speed at max difficulty
	ExtraAsteroids  int     `yaml:"extra_asteroids"`  // Asteroids added to each wave at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset maps a CLI value to a preset.
// The empty string means "use the config as is".
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks the values the simulation relies on.
func (c AsteroidsConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size %gx%g", c.World.Width, c.World.Height)
	check(c.Ship.Scale > 0, "ship.scale %g", c.Ship.Scale)
	check(c.Ship.FireCooldown >= 0, "ship.fire_cooldown %g", c.Ship.FireCooldown)
	check(c.Asteroid.Sides >= 3, "asteroid.sides %d", c.Asteroid.Sides)
	check(len(c.Asteroid.Radii) > 0, "asteroid.radii is empty")
	for i, r := range c.Asteroid.Radii {
		check(r > 0, "asteroid.radii[%d] = %g", i, r)
	}
	check(c.Asteroid.JitterMin > 0 && c.Asteroid.JitterMin < c.Asteroid.JitterMax,
		"asteroid jitter [%g, %g)", c.Asteroid.JitterMin, c.Asteroid.JitterMax)
	check(c.Asteroid.SpeedMin >= 0 && c.Asteroid.SpeedMin <= c.Asteroid.SpeedMax,
		"asteroid speed [%g, %g]", c.Asteroid.SpeedMin, c.Asteroid.SpeedMax)
	check(c.Asteroid.SpinMax >= 0, "asteroid.spin_max %g", c.Asteroid.SpinMax)
	check(c.Asteroid.StartCount >= 0, "asteroid.start_count %d", c.Asteroid.StartCount)
	check(c.Asteroid.StartLevel >= 0 && c.Asteroid.StartLevel <= c.Asteroid.MaxLevel(),
		"asteroid.start_level %d", c.Asteroid.StartLevel)
	check(c.Bullet.Scale > 0, "bullet.scale %g", c.Bullet.Scale)
	check(c.Bullet.Lifetime > 0, "bullet.lifetime %g", c.Bullet.Lifetime)
	check(c.Collision.Epsilon >= 0, "collision.epsilon %g", c.Collision.Epsilon)
	check(c.Engine.MaxFrameDelta >= 0, "engine.max_frame_delta %s", c.Engine.MaxFrameDelta)
	check(c.Input.HoldWindow >= 0, "input.hold_window %s", c.Input.HoldWindow)

	switch c.Difficulty.Progression.Type {
	case "", "none", "wave", "time":
	default:
		check(false, "difficulty.progression.type %q", c.Difficulty.Progression.Type)
	}

	return errors.Join(errs...)
}
