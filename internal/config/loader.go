package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// LoadAsteroids loads Asteroids configuration.
// Search order: customPath -> ~/.vecroids/configs/asteroids.yaml -> ./configs/asteroids.yaml -> embedded default
//
// Files are applied on top of the defaults, so a file only needs the keys it
// changes. An explicit customPath must exist and be valid; the other locations
// are skipped with a warning when they cannot be used.
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	if customPath != "" {
		cfg, err := parseAsteroids(customPath)
		if err != nil {
			return DefaultAsteroidsConfig(), err
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("asteroids.yaml"), filepath.Join("configs", "asteroids.yaml")} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := parseAsteroids(path)
		if err != nil {
			log.Warn("ignoring config file", "path", path, "error", err)
			continue
		}
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultAsteroidsConfig()
	if err := yaml.Unmarshal(defaultAsteroidsYAML, &cfg); err != nil {
		return DefaultAsteroidsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseAsteroids(path string) (AsteroidsConfig, error) {
	cfg := DefaultAsteroidsConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vecroids", "configs", filename)
}

// ApplyAsteroidsPreset modifies the config based on a difficulty preset.
func ApplyAsteroidsPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Asteroid.StartCount = 2
		cfg.Ship.FireCooldown = 0.1
	case DifficultyHard:
		cfg.Asteroid.StartCount = 5
		cfg.Ship.FireCooldown = 0.25
		cfg.Difficulty.Scaling.SpeedMultiplier = 0.5
	}
}
