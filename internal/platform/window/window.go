// Package window runs games in a native window through raylib.
package window

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/vecroids/internal/core"
	"github.com/vovakirdan/vecroids/internal/registry"
)

// ErrNoWindow is returned when raylib cannot open a window.
var ErrNoWindow = errors.New("window: could not open window")

// Run opens a window and drives game until the window is closed or Q is pressed.
// The window is cfg.ScreenW x cfg.ScreenH pixels; zero means the world size.
func Run(game registry.Game, cfg core.RuntimeConfig) error {
	logger := log.Default().WithPrefix("window")

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	game.Reset(cfg)
	display := displayOf(game)
	world := game.World()
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = int(world.W), int(world.H)
	}

	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.ScreenW), int32(cfg.ScreenH), display.Title) //#nosec G115 -- window sizes fit in int32
	if !rl.IsWindowReady() {
		return fmt.Errorf("%w (%dx%d)", ErrNoWindow, cfg.ScreenW, cfg.ScreenH)
	}
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.TickRate)) //#nosec G115 -- fps fits in int32

	logger.Info("window opened", "title", display.Title, "width", cfg.ScreenW, "height", cfg.ScreenH)

	canvas := NewCanvas(world, cfg.ScreenW, cfg.ScreenH)
	keys := core.NewKeyState()
	background := colorOf(display.Background)
	state := game.State()

	for !rl.WindowShouldClose() {
		poll(keys, time.Now())
		frame := core.NewInputFrame()
		keys.Frame(&frame)

		if frame.Has(core.ActionQuit) {
			break
		}

		var restarted bool
		state, restarted = step(game, &cfg, frame, state)
		if restarted {
			logger.Info("restarting", "seed", cfg.Seed)
			keys.Reset()
		}

		canvas.Resize(int(rl.GetScreenWidth()), int(rl.GetScreenHeight()))

		rl.BeginDrawing()
		rl.ClearBackground(background)
		game.Render(canvas)
		drawStatus(state)
		rl.EndDrawing()
	}

	logger.Info("window closed")
	return nil
}

// step advances game by one frame. R after game over restarts it with a
// new seed instead; the restart frame is not simulated.
func step(game registry.Game, cfg *core.RuntimeConfig, frame core.InputFrame, state core.GameState) (core.GameState, bool) {
	if frame.Has(core.ActionRestart) && state.GameOver {
		cfg.Seed = time.Now().UnixNano()
		game.Reset(*cfg)
		return game.State(), true
	}
	return game.Step(frame).State, false
}

// displayOf returns the game's presentation settings, or a black window
// titled after the game.
func displayOf(game registry.Game) core.Display {
	if d, ok := game.(registry.Displayer); ok {
		display := d.Display()
		if display.Title == "" {
			display.Title = game.Title()
		}
		return display
	}
	return core.Display{Title: game.Title(), Background: core.ColorBlack}
}

func drawStatus(state core.GameState) {
	rl.DrawText(fmt.Sprintf("Wave %d", state.Wave), 10, 10, 20, rl.Gray)

	switch {
	case state.GameOver:
		rl.DrawText("GAME OVER - press R to restart", 10, 35, 20, rl.Yellow)
	case state.Paused:
		rl.DrawText("PAUSED", 10, 35, 20, rl.Yellow)
	}
}
