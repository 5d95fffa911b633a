package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - turn counter-clockwise
	ActionRight          // Right arrow, D - turn clockwise
	ActionThrust         // Up arrow, W - accelerate along the nose
	ActionFire           // Space - shoot
	ActionPause          // P - pause/unpause game
	ActionRestart        // R - restart game after game over
	ActionQuit           // Q, Esc, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionThrust:
		return "Thrust"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one simulation frame.
//
// Pressed holds edge-triggered actions (a key went down since the previous
// frame). Held holds level-triggered actions (the key is down right now).
type InputFrame struct {
	Pressed map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed this frame.
func (f *InputFrame) Set(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed[a]
}

// Hold marks an action as currently held.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Holding returns true if the action is held down.
func (f InputFrame) Holding(a Action) bool {
	return f.Held[a]
}

// KeyState turns press/release events into held actions.
//
// Backends with real release events call Press and Release. Terminals only
// report presses (repeated while a key is held), so they call Press on every
// event and Expire once per frame: an action counts as released when no press
// arrived within the hold window.
type KeyState struct {
	down    map[Action]time.Time
	pressed map[Action]bool
}

// NewKeyState creates an empty key state.
func NewKeyState() *KeyState {
	return &KeyState{
		down:    make(map[Action]time.Time),
		pressed: make(map[Action]bool),
	}
}

// Press records a key-down event at time now.
func (k *KeyState) Press(a Action, now time.Time) {
	if _, held := k.down[a]; !held {
		k.pressed[a] = true
	}
	k.down[a] = now
}

// Release records a key-up event.
func (k *KeyState) Release(a Action) {
	delete(k.down, a)
}

// Expire releases every action whose last press is older than window.
func (k *KeyState) Expire(now time.Time, window time.Duration) {
	for a, at := range k.down {
		if now.Sub(at) > window {
			delete(k.down, a)
		}
	}
}

// Frame fills f with the held actions and the actions pressed since the last
// call, then forgets the presses.
func (k *KeyState) Frame(f *InputFrame) {
	for a := range k.down {
		f.Hold(a)
	}
	for a := range k.pressed {
		f.Set(a)
		delete(k.pressed, a)
	}
}

// Reset forgets all keys.
func (k *KeyState) Reset() {
	clear(k.down)
	clear(k.pressed)
}
