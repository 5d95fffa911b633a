package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	var fromYAML AsteroidsConfig
	if err := yaml.Unmarshal(defaultAsteroidsYAML, &fromYAML); err != nil {
		t.Fatalf("embedded YAML: %v", err)
	}
	if want := DefaultAsteroidsConfig(); !reflect.DeepEqual(fromYAML, want) {
		t.Errorf("embedded YAML and DefaultAsteroidsConfig differ:\nyaml: %+v\ncode: %+v", fromYAML, want)
	}
	if err := fromYAML.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "asteroids.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAsteroidsPartialFile(t *testing.T) {
	path := writeConfig(t, `
ship:
  turn_rate: 6
bullet:
  lifetime: 0.5
input:
  hold_window: 80ms
`)

	cfg, err := LoadAsteroids(path)
	if err != nil {
		t.Fatalf("LoadAsteroids: %v", err)
	}
	if cfg.Ship.TurnRate != 6 {
		t.Errorf("turn_rate = %v, want 6", cfg.Ship.TurnRate)
	}
	if cfg.Bullet.Lifetime != 0.5 {
		t.Errorf("lifetime = %v, want 0.5", cfg.Bullet.Lifetime)
	}
	if cfg.Input.HoldWindow != 80*time.Millisecond {
		t.Errorf("hold_window = %v, want 80ms", cfg.Input.HoldWindow)
	}
	if cfg.Ship.Thrust != DefaultAsteroidsConfig().Ship.Thrust {
		t.Errorf("unset key lost its default: thrust = %v", cfg.Ship.Thrust)
	}
}

func TestLoadAsteroidsErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadAsteroids(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected an error for a missing explicit path")
		}
	})

	t.Run("bad yaml", func(t *testing.T) {
		if _, err := LoadAsteroids(writeConfig(t, "ship: [1, 2")); err == nil {
			t.Error("expected a parse error")
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := LoadAsteroids(writeConfig(t, "asteroid:\n  sides: 2\n  radii: []\n"))
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("err = %v, want ErrInvalidConfig", err)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AsteroidsConfig)
	}{
		{"zero width", func(c *AsteroidsConfig) { c.World.Width = 0 }},
		{"start level too high", func(c *AsteroidsConfig) { c.Asteroid.StartLevel = 5 }},
		{"jitter inverted", func(c *AsteroidsConfig) { c.Asteroid.JitterMin = 2 }},
		{"no lifetime", func(c *AsteroidsConfig) { c.Bullet.Lifetime = 0 }},
		{"negative radius", func(c *AsteroidsConfig) { c.Asteroid.Radii[1] = -1 }},
		{"unknown progression", func(c *AsteroidsConfig) { c.Difficulty.Progression.Type = "score" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultAsteroidsConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyAsteroidsPreset(t *testing.T) {
	cfg := DefaultAsteroidsConfig()
	ApplyAsteroidsPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset difficulty = %+v", cfg.Difficulty)
	}
	if cfg.Difficulty.Scaling.SpeedMultiplier <= 0 {
		t.Error("hard preset should speed asteroids up")
	}
	if cfg.Asteroid.StartCount != 5 {
		t.Errorf("hard preset start_count = %d, want 5", cfg.Asteroid.StartCount)
	}

	cfg = DefaultAsteroidsConfig()
	ApplyAsteroidsPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultAsteroidsConfig()
	ApplyAsteroidsPreset(&cfg, "")
	if !reflect.DeepEqual(cfg, DefaultAsteroidsConfig()) {
		t.Error("empty preset should leave the config alone")
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParseDifficultyPreset(s); err != nil {
			t.Errorf("ParseDifficultyPreset(%q): %v", s, err)
		}
	}
	if _, err := ParseDifficultyPreset("nightmare"); err == nil {
		t.Error("expected an error for an unknown preset")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "wave", MaxAt: 4},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, ExtraAsteroids: 4},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		wave  int
		level float64
	}{
		{1, 0.2},
		{3, 0.6},
		{5, 1.0},
		{50, 1.0},
	}
	for _, tt := range tests {
		if got := d.Level(tt.wave, 0); math.Abs(got-tt.level) > 1e-9 {
			t.Errorf("Level(wave %d) = %v, want %v", tt.wave, got, tt.level)
		}
	}

	if got := d.Speed(100, 5, 0); math.Abs(got-200) > 1e-9 {
		t.Errorf("Speed at max = %v, want 200", got)
	}
	if got := d.WaveSize(3, 1, 0); got != 4 {
		t.Errorf("WaveSize(wave 1) = %d, want 4", got)
	}
	if got := d.WaveSize(3, 5, 0); got != 11 {
		t.Errorf("WaveSize(wave 5) = %d, want 11", got)
	}

	cfg.Enabled = false
	d = NewDifficultyManager(cfg)
	if d.IsEnabled() {
		t.Error("IsEnabled with progression disabled")
	}
	if got := d.Level(5, 0); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("disabled Level = %v, want the initial level", got)
	}
}

func TestDifficultyManagerTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
	})
	if got := d.Level(1, 50); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level(ticks 50) = %v, want 0.5", got)
	}
}
