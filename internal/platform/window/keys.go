package window

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/vecroids/internal/core"
)

// bindings lists the raylib keys for each action.
// Escape is left to raylib, which reports it through WindowShouldClose.
var bindings = []struct {
	action core.Action
	keys   []int32
}{
	{core.ActionLeft, []int32{rl.KeyLeft, rl.KeyA}},
	{core.ActionRight, []int32{rl.KeyRight, rl.KeyD}},
	{core.ActionThrust, []int32{rl.KeyUp, rl.KeyW}},
	{core.ActionFire, []int32{rl.KeySpace}},
	{core.ActionPause, []int32{rl.KeyP}},
	{core.ActionRestart, []int32{rl.KeyR}},
	{core.ActionQuit, []int32{rl.KeyQ}},
}

// anyDown reports whether one of keys is held.
func anyDown(keys []int32) bool {
	for _, k := range keys {
		if rl.IsKeyDown(k) {
			return true
		}
	}
	return false
}

// poll feeds the real key up/down state into ks.
func poll(ks *core.KeyState, now time.Time) {
	for _, b := range bindings {
		if anyDown(b.keys) {
			ks.Press(b.action, now)
		} else {
			ks.Release(b.action)
		}
	}
}
