package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/vecroids/internal/core"
)

// KeyMap holds the key bindings of the terminal backend.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Thrust  key.Binding
	Fire    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "turn left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "turn right"),
		),
		Thrust: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "thrust"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (km KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.Left):
		return core.ActionLeft
	case key.Matches(msg, km.Right):
		return core.ActionRight
	case key.Matches(msg, km.Thrust):
		return core.ActionThrust
	case key.Matches(msg, km.Fire):
		return core.ActionFire
	case key.Matches(msg, km.Pause):
		return core.ActionPause
	case key.Matches(msg, km.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// ShortHelp lists the bindings shown in the status line.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Left, km.Right, km.Thrust, km.Fire, km.Pause, km.Quit}
}

// FullHelp lists every binding.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Thrust, km.Fire},
		{km.Pause, km.Restart, km.Quit},
	}
}
