package config

import (
	"math"

	"github.com/vovakirdan/vecroids/internal/core"
)

// DifficultyManager calculates dynamic game parameters based on wave/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.ClampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
// wave counts from 1; ticks is the number of simulated frames.
func (d *DifficultyManager) Level(wave int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "wave":
		progress = float64(wave-1) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = core.ClampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales an asteroid speed by the current difficulty.
// Speed increases from base to base * (1 + speedMultiplier).
func (d *DifficultyManager) Speed(base float64, wave int, ticks int) float64 {
	level := d.Level(wave, ticks)
	return base * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// WaveSize returns how many asteroids a wave starts with.
func (d *DifficultyManager) WaveSize(startCount int, wave int, ticks int) int {
	level := d.Level(wave, ticks)
	extra := int(math.Round(level * float64(d.cfg.Scaling.ExtraAsteroids)))
	n := startCount + wave - 1 + extra
	if n < 1 {
		n = 1
	}
	return n
}
