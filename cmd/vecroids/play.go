package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/vecroids/internal/config"
	"github.com/vovakirdan/vecroids/internal/core"
	"github.com/vovakirdan/vecroids/internal/games/asteroids"
	"github.com/vovakirdan/vecroids/internal/platform/tui"
	"github.com/vovakirdan/vecroids/internal/platform/window"
	"github.com/vovakirdan/vecroids/internal/registry"
)

const (
	backendTUI    = "tui"
	backendWindow = "window"
)

var (
	flagConfig     string
	flagDifficulty string
	flagBackend    string
	flagProfile    string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (asteroids when omitted).

Controls:
  Left/A, Right/D  - Turn
  Up/W             - Thrust
  Space            - Fire
  P                - Pause
  R                - Restart (after game over)
  Q/Esc/Ctrl+C     - Quit

Difficulty options:
  easy   - Fewer asteroids, faster fire, slow progression start
  normal - Start at 30% difficulty, progresses to max
  hard   - More asteroids, slower fire, starts at 70% difficulty
  fixed  - No progression, stays at config's initial level

Examples:
  vecroids play
  vecroids play asteroids --difficulty easy
  vecroids play --backend window
  vecroids play --config ./my-asteroids.yaml
  vecroids play --profile ./prof`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagBackend, "backend", backendTUI, "Display backend: tui or window")
	playCmd.Flags().StringVar(&flagProfile, "profile", "", "Write a CPU profile to this directory")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "asteroids"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'vecroids list' to see available games", gameID)
	}
	if flagBackend != backendTUI && flagBackend != backendWindow {
		return fmt.Errorf("unknown backend %q, want %s or %s", flagBackend, backendTUI, backendWindow)
	}
	if _, err := config.ParseDifficultyPreset(flagDifficulty); err != nil {
		return err
	}

	// The terminal belongs to the game in TUI mode.
	var fallback io.Writer = os.Stderr
	if flagBackend == backendTUI {
		fallback = io.Discard
	}
	closeLog, err := setupLogging(fallback)
	if err != nil {
		return err
	}
	defer closeLog()

	if gameID == "asteroids" {
		// Fail early on a broken --config instead of silently using defaults.
		if _, err := config.LoadAsteroids(flagConfig); err != nil {
			return err
		}
		asteroids.SetConfigPath(flagConfig)
		asteroids.SetDifficultyPreset(flagDifficulty)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if flagProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(flagProfile), profile.NoShutdownHook, profile.Quiet).Stop()
	}

	cfg := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	log.Info("starting", "game", gameID, "backend", flagBackend, "fps", flagFPS, "seed", flagSeed)

	switch flagBackend {
	case backendWindow:
		err = window.Run(game, cfg)
	default:
		cfg.ScreenW, cfg.ScreenH = 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			cfg.ScreenW, cfg.ScreenH = w, h
		}
		err = tui.Run(game, cfg)
	}
	if err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}
