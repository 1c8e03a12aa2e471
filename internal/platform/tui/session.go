package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/robot-arena/internal/match"
)

// SessionModel manages the full viewer flow: bot picker -> match -> picker.
// It is the top-level model for local and SSH sessions.
type SessionModel struct {
	config   WatchConfig
	menu     MenuModel
	watch    *WatchModel
	width    int
	height   int
	result   *match.Result
	err      error
	quitting bool
}

// NewSessionModel creates a session. When both bots are set in cfg the
// match starts straight away, otherwise the picker is shown first.
func NewSessionModel(cfg WatchConfig, width, height int) SessionModel {
	m := SessionModel{
		config: cfg,
		menu:   NewMenuModel(width),
		width:  width,
		height: height,
	}
	if cfg.Bots[0] != "" && cfg.Bots[1] != "" {
		m.startMatch(cfg.Bots)
	}
	return m
}

func (m *SessionModel) startMatch(bots [2]string) {
	cfg := m.config
	cfg.Bots = bots
	w, err := NewWatchModel(cfg)
	if err != nil {
		m.err = err
		m.menu = NewMenuModel(m.width)
		return
	}
	m.err = nil
	w.width, w.height = m.width, m.height
	w.help.Width = m.width
	m.watch = &w
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.watch != nil {
		return m.watch.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	if m.watch != nil {
		return m.updateWatch(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates while picking bots.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if bots, ok := m.menu.Selected(); ok {
		m.startMatch(bots)
		if m.watch != nil {
			return m, m.watch.Init()
		}
	}

	return m, cmd
}

// updateWatch handles updates while a match is on screen.
func (m SessionModel) updateWatch(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.watch.Update(msg)
	if watchModel, ok := newModel.(WatchModel); ok {
		m.watch = &watchModel
	}
	if res := m.watch.Result(); res != nil {
		m.result = res
	}

	if m.watch.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.watch.BackToMenu() {
		m.watch = nil
		m.menu = NewMenuModel(m.width)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.watch != nil {
		return m.watch.View()
	}
	if m.err != nil {
		return errorStyle.Render(m.err.Error()) + "\n" + m.menu.View()
	}
	return m.menu.View()
}

// Result returns the result of the last finished match, if any.
func (m SessionModel) Result() *match.Result {
	return m.result
}

// Run starts a local Bubble Tea session and returns the result of the last
// finished match.
func Run(cfg WatchConfig, width, height int) (*match.Result, error) {
	p := tea.NewProgram(NewSessionModel(cfg, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if sm, ok := final.(SessionModel); ok {
		return sm.Result(), nil
	}
	return nil, nil
}
