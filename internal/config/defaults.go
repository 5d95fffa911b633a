package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the built-in Asteroids configuration.
// It mirrors defaults/asteroids.yaml and is used when that cannot be parsed.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		World: WorldConfig{
			Width:      800,
			Height:     800,
			Background: "black",
			Title:      "Vecroids",
		},
		Ship: ShipConfig{
			Scale:        10,
			TurnRate:     4.0,
			Thrust:       200,
			FireCooldown: 0.15,
			Color:        "bright_white",
			LineWidth:    2,
		},
		Asteroid: AsteroidConfig{
			Sides:      12,
			Radii:      []float64{25, 35, 50, 75, 100},
			JitterMin:  0.5,
			JitterMax:  1.1,
			SpeedMin:   50,
			SpeedMax:   150,
			SpinMax:    2,
			StartCount: 3,
			StartLevel: 3,
			Color:      "white",
			LineWidth:  2,
		},
		Bullet: BulletConfig{
			Scale:     5,
			Speed:     400,
			Lifetime:  1.0,
			Color:     "bright_yellow",
			LineWidth: 2,
		},
		Collision: CollisionConfig{
			Epsilon: 1e-9,
		},
		Engine: EngineConfig{
			MaxFrameDelta: 250 * time.Millisecond,
		},
		Input: InputConfig{
			HoldWindow: 300 * time.Millisecond,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "wave",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.0,
				ExtraAsteroids:  3,
			},
		},
	}
}
