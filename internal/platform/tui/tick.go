// Package tui provides the Bubble Tea spectator for the arena.
// It handles the terminal UI loop, key bindings, board rendering and the
// SSH server that lets remote users watch matches.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger the next turn of the viewer with the given ID.
type TickMsg struct {
	ID   int64
	Time time.Time
}

// viewerIDs hands out viewer IDs so a tick never reaches a viewer that did
// not schedule it.
var viewerIDs atomic.Int64

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(id int64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
