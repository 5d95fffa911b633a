package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/vecroids/internal/core"
)

// palette maps core.Color to ANSI colour codes.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorBlack:         "0",
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(palette[core.ColorGray])
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(palette[core.ColorBrightYellow])
)

// Styles builds a style per colour on the given background.
// ColorDefault keeps the terminal's own foreground.
func Styles(background core.Color) map[core.Color]lipgloss.Style {
	base := lipgloss.NewStyle()
	if bg, ok := palette[background]; ok && background != core.ColorBlack {
		// Black is left to the terminal.
		base = base.Background(bg)
	}

	styles := make(map[core.Color]lipgloss.Style, len(palette)+1)
	styles[core.ColorDefault] = base
	for c, fg := range palette {
		styles[c] = base.Foreground(fg)
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles map[core.Color]lipgloss.Style) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[color]
			if !ok {
				style = styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// statusLine summarizes the game state below the playfield.
func statusLine(state core.GameState, help string) string {
	var banner string
	switch {
	case state.GameOver:
		banner = "GAME OVER  r to restart"
	case state.Paused:
		banner = "PAUSED"
	}

	line := statusStyle.Render(fmt.Sprintf("wave %d  %s", state.Wave, help))
	if banner != "" {
		line = bannerStyle.Render(banner) + "  " + line
	}
	return line
}
