package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/vecroids/internal/core"
)

// colors maps core.Color to raylib colours.
var colors = map[core.Color]rl.Color{
	core.ColorDefault:       rl.RayWhite,
	core.ColorRed:           rl.Maroon,
	core.ColorGreen:         rl.DarkGreen,
	core.ColorYellow:        rl.Gold,
	core.ColorBlue:          rl.DarkBlue,
	core.ColorMagenta:       rl.Purple,
	core.ColorCyan:          rl.NewColor(0, 160, 160, 255),
	core.ColorWhite:         rl.LightGray,
	core.ColorBrightRed:     rl.Red,
	core.ColorBrightGreen:   rl.Lime,
	core.ColorBrightYellow:  rl.Yellow,
	core.ColorBrightBlue:    rl.SkyBlue,
	core.ColorBrightMagenta: rl.Magenta,
	core.ColorBrightCyan:    rl.NewColor(0, 255, 255, 255),
	core.ColorBrightWhite:   rl.White,
	core.ColorOrange:        rl.Orange,
	core.ColorGray:          rl.Gray,
	core.ColorBlack:         rl.Black,
}

// colorOf returns the raylib colour for c, white when unknown.
func colorOf(c core.Color) rl.Color {
	if rc, ok := colors[c]; ok {
		return rc
	}
	return rl.White
}

// Canvas draws world-space polylines into the current raylib frame.
// The world origin is the window centre and world y grows upwards.
type Canvas struct {
	world         core.Bounds
	width, height float32
}

// NewCanvas creates a canvas that fits world into a width x height window.
func NewCanvas(world core.Bounds, width, height int) *Canvas {
	c := &Canvas{world: world}
	c.Resize(width, height)
	return c
}

// Resize updates the window size the world is fitted to.
func (c *Canvas) Resize(width, height int) {
	c.width, c.height = float32(width), float32(height)
}

// Project maps a world point to window pixels.
func (c *Canvas) Project(p core.Vector) rl.Vector2 {
	sx := c.width / float32(c.world.W)
	sy := c.height / float32(c.world.H)
	return rl.Vector2{
		X: (float32(p.X) + float32(c.world.HalfW())) * sx,
		Y: (float32(c.world.HalfH()) - float32(p.Y)) * sy,
	}
}

// Polyline draws consecutive segments with the stroke's width and colour.
func (c *Canvas) Polyline(points []core.Vector, stroke core.Stroke) {
	if len(points) == 0 {
		return
	}

	color := colorOf(stroke.Color)
	width := float32(stroke.Width)
	if width <= 0 {
		width = 1
	}

	from := c.Project(points[0])
	if len(points) == 1 {
		rl.DrawCircleV(from, width/2, color)
		return
	}
	for _, p := range points[1:] {
		to := c.Project(p)
		rl.DrawLineEx(from, to, width, color)
		from = to
	}
}
