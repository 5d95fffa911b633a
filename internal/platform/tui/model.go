package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vecroids/internal/core"
	"github.com/vovakirdan/vecroids/internal/registry"
)

// DefaultHoldWindow is used when the game does not set one.
const DefaultHoldWindow = 300 * time.Millisecond

// Model is the Bubble Tea model for running a vector game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	raster   *core.Raster
	styles   map[core.Color]lipgloss.Style
	keys     KeyMap
	keyState *core.KeyState
	help     help.Model
	logger   *log.Logger

	config    core.RuntimeConfig
	display   core.Display
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig) *Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	screen := core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH))
	m := &Model{
		game:     game,
		screen:   screen,
		keys:     DefaultKeyMap(),
		keyState: core.NewKeyState(),
		help:     help.New(),
		logger:   log.Default().WithPrefix("tui"),
		config:   cfg,
	}
	m.reset()
	return m
}

// playfieldHeight leaves the bottom row for the status line.
func playfieldHeight(h int) int {
	return max(h-1, 1)
}

// reset (re)starts the game and picks up its presentation settings.
func (m *Model) reset() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.keyState.Reset()

	m.display = core.Display{Title: m.game.Title(), HoldWindow: DefaultHoldWindow}
	if d, ok := m.game.(registry.Displayer); ok {
		m.display = d.Display()
		if m.display.HoldWindow <= 0 {
			m.display.HoldWindow = DefaultHoldWindow
		}
	}
	m.styles = Styles(m.display.Background)
	m.raster = core.NewRaster(m.screen, m.game.World())
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(m.display.Title), tickCmd(m.config.TickRate))
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records a key press. Terminals repeat presses while a key is
// down, so every event refreshes the hold.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}

	m.keyState.Press(action, time.Now())
	return m, nil
}

// handleResize fits the raster to the new terminal size.
// The world keeps its size, so the game is not reset.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame.
func (m *Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.keyState.Expire(now, m.display.HoldWindow)

	frame := core.NewInputFrame()
	m.keyState.Frame(&frame)

	if frame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.logger.Info("restarting", "seed", m.config.Seed)
		m.reset()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.raster)

	return RenderScreen(m.screen, m.styles) + "\n" + statusLine(m.gameState, m.help.View(m.keys))
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(NewModel(game, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
