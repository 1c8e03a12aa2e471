package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/robot-arena/internal/arena"
	"github.com/vovakirdan/robot-arena/internal/match"
)

// newScoreTable creates the per-player score table shown beside the board.
func newScoreTable() table.Model {
	columns := []table.Column{
		{Title: "Player", Width: 9},
		{Title: "Bot", Width: 10},
		{Title: "Robots", Width: 6},
		{Title: "HP", Width: 5},
		{Title: "Lost", Width: 5},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(len(arena.Players)+1),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// scoreRows builds one row per player.
func scoreRows(snap match.Snapshot, bots [2]string, lost [2]int) []table.Row {
	hp := snap.HP()
	rows := make([]table.Row, 0, len(arena.Players))
	for _, p := range arena.Players {
		rows = append(rows, table.Row{
			p.String(),
			bots[p],
			strconv.Itoa(snap.Scores[p]),
			strconv.Itoa(hp[p]),
			strconv.Itoa(lost[p]),
		})
	}
	return rows
}
