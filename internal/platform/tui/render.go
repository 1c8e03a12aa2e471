package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/robot-arena/internal/arena"
	"github.com/vovakirdan/robot-arena/internal/core"
	"github.com/vovakirdan/robot-arena/internal/match"
)

// cellWidth is the number of screen columns per board cell.
const cellWidth = 2

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBrightBlue:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
}

// playerColors holds the healthy and wounded colour of each player.
var playerColors = [2][2]core.Color{
	arena.PlayerOne: {core.ColorBrightRed, core.ColorRed},
	arena.PlayerTwo: {core.ColorBrightBlue, core.ColorBlue},
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// BoardScreen draws the board and robots of snap. Robots show their health
// and dim once they drop to half of fullHP or below.
func BoardScreen(snap match.Snapshot, fullHP int) *core.Screen {
	size := snap.Board.Size()
	s := core.NewScreen(size*cellWidth, size)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := core.C(x, y)
			switch {
			case snap.Board.IsObstacle(c):
				s.DrawText(x*cellWidth, y, "██", core.ColorGray)
			case snap.Board.IsSpawn(c):
				s.DrawText(x*cellWidth, y, " :", core.ColorGreen)
			default:
				s.DrawText(x*cellWidth, y, " .", core.ColorGray)
			}
		}
	}

	for _, r := range snap.Robots {
		color := playerColors[r.Player][0]
		if r.HP*2 <= fullHP {
			color = playerColors[r.Player][1]
		}
		s.DrawText(r.Location.X*cellWidth, r.Location.Y, hpLabel(r.HP), color)
	}
	return s
}

// hpLabel fits a health value into one cell.
func hpLabel(hp int) string {
	if hp > 99 {
		return "++"
	}
	return fmt.Sprintf("%2d", max(hp, 0))
}
