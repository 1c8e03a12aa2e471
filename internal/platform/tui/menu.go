package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/robot-arena/internal/arena"
	"github.com/vovakirdan/robot-arena/internal/registry"
)

var cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)

// MenuModel is the Bubble Tea model for picking the bot of each player.
type MenuModel struct {
	items    []registry.BotInfo
	cursor   int
	picking  arena.Player
	picked   [2]string
	width    int
	keys     MenuKeyMap
	help     help.Model
	quitting bool
	done     bool
}

// NewMenuModel creates a new bot picker.
func NewMenuModel(width int) MenuModel {
	return MenuModel{
		items: registry.List(),
		width: width,
		keys:  DefaultMenuKeyMap(),
		help:  help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Back):
		if m.picking == arena.PlayerTwo {
			m.picking = arena.PlayerOne
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) == 0 {
			return m, nil
		}
		m.picked[m.picking] = m.items[m.cursor].ID
		if m.picking == arena.PlayerOne {
			m.picking = arena.PlayerTwo
			return m, nil
		}
		m.done = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("R O B O T   A R E N A"), m.width))
	b.WriteString("\n\n")

	subtitle := fmt.Sprintf("Pick the bot for %v", m.picking)
	if m.picking == arena.PlayerTwo {
		subtitle += fmt.Sprintf(" (%v plays %s)", arena.PlayerOne, m.picked[arena.PlayerOne])
	}
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText("No bots registered.", m.width))
		b.WriteString("\n")
	}
	for i, item := range m.items {
		line := fmt.Sprintf("  %-10s %s", item.ID, item.Title)
		if i == m.cursor {
			line = cursorStyle.Render(fmt.Sprintf("> %-10s %s", item.ID, item.Title))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen bots once both players have one.
func (m MenuModel) Selected() ([2]string, bool) {
	return m.picked, m.done
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
