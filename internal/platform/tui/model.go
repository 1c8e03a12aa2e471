package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/robot-arena/internal/arena"
	"github.com/vovakirdan/robot-arena/internal/match"
)

// Pacing limits for the viewer.
const (
	minInterval = 10 * time.Millisecond
	maxInterval = 2 * time.Second
)

// GameFactory builds a fresh game between two registered bots.
type GameFactory func(bots [2]string, seed int64) (*arena.Game, error)

// WatchConfig describes the match a viewer plays.
type WatchConfig struct {
	Bots     [2]string
	Seed     int64
	Interval time.Duration
	NewGame  GameFactory
	Logger   *log.Logger
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// WatchModel is the Bubble Tea model that plays and displays a match.
type WatchModel struct {
	id       int64
	config   WatchConfig
	runner   *match.Runner
	fullHP   int
	snap     match.Snapshot
	last     arena.TurnReport
	result   *match.Result
	err      error
	interval time.Duration
	paused   bool
	ticking  bool // a tick is in flight

	keys  WatchKeyMap
	help  help.Model
	table table.Model

	width      int
	height     int
	quitting   bool
	backToMenu bool
}

// NewWatchModel creates a viewer and sets up its first game.
func NewWatchModel(cfg WatchConfig) (WatchModel, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 100 * time.Millisecond
	}

	m := WatchModel{
		id:       viewerIDs.Add(1),
		config:   cfg,
		interval: cfg.Interval,
		ticking:  true, // Init schedules the first tick
		keys:     DefaultWatchKeyMap(),
		help:     help.New(),
		table:    newScoreTable(),
	}
	if err := m.newMatch(); err != nil {
		return WatchModel{}, err
	}
	return m, nil
}

func (m *WatchModel) newMatch() error {
	g, err := m.config.NewGame(m.config.Bots, m.config.Seed)
	if err != nil {
		return fmt.Errorf("tui: new match: %w", err)
	}
	m.runner = match.NewRunner(g, match.WithLogger(m.config.Logger))
	m.fullHP = g.Settings().RobotHP
	m.snap = m.runner.Snapshot()
	m.last = arena.TurnReport{}
	m.result = nil
	m.err = nil
	m.refreshTable()
	return nil
}

// Init starts the turn loop.
func (m WatchModel) Init() tea.Cmd {
	return tickCmd(m.id, m.interval)
}

// Update handles messages and updates the model state.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.ID != m.id {
			return m, nil
		}
		m.ticking = false
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m WatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		return m, m.resume()

	case key.Matches(msg, m.keys.Step):
		if m.paused {
			m.step()
		}

	case key.Matches(msg, m.keys.Faster):
		m.interval = max(m.interval/2, minInterval)

	case key.Matches(msg, m.keys.Slower):
		m.interval = min(m.interval*2, maxInterval)

	case key.Matches(msg, m.keys.Restart):
		m.config.Seed++
		if err := m.newMatch(); err != nil {
			m.err = err
			return m, nil
		}
		return m, m.resume()
	}

	return m, nil
}

// resume schedules a tick unless one is already pending or the viewer is idle.
func (m *WatchModel) resume() tea.Cmd {
	if m.ticking || m.paused || m.result != nil {
		return nil
	}
	m.ticking = true
	return tickCmd(m.id, m.interval)
}

// handleTick plays the next turn.
func (m WatchModel) handleTick() (tea.Model, tea.Cmd) {
	if m.paused || m.result != nil {
		return m, nil
	}
	m.step()
	return m, m.resume()
}

func (m *WatchModel) step() {
	if m.result != nil {
		return
	}
	ev, err := m.runner.Step(context.Background())
	if err != nil {
		res := m.runner.Result(match.EndReasonCompleted)
		m.result = &res
		return
	}
	m.snap = ev.Snapshot
	m.last = ev.Report
	m.refreshTable()
	if m.runner.Done() {
		res := m.runner.Result(match.EndReasonCompleted)
		m.result = &res
	}
}

func (m *WatchModel) refreshTable() {
	m.table.SetRows(scoreRows(m.snap, m.config.Bots, m.runner.Lost()))
}

// View renders the current state to a string for display.
func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("ROBOT ARENA  turn %d/%d", m.snap.Turn, m.snap.MaxTurns)
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	board := RenderScreen(BoardScreen(m.snap, m.fullHP))
	side := lipgloss.JoinVertical(lipgloss.Left,
		m.table.View(),
		"",
		statusStyle.Render(m.turnSummary()),
		"",
		m.statusLine(),
	)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, board, "   ", side))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m WatchModel) turnSummary() string {
	r := m.last
	return fmt.Sprintf("moved %d  killed %d/%d  spawned %d/%d  faults %d\ninterval %v",
		r.Moved, r.Killed[0], r.Killed[1], r.Spawned[0], r.Spawned[1], len(r.Faults), m.interval)
}

func (m WatchModel) statusLine() string {
	switch {
	case m.err != nil:
		return errorStyle.Render(m.err.Error())
	case m.result != nil:
		return bannerStyle.Render(m.result.String())
	case m.paused:
		return bannerStyle.Render("PAUSED")
	default:
		return ""
	}
}

// Result returns the final result, or nil while the match is running.
func (m WatchModel) Result() *match.Result {
	return m.result
}

// IsQuitting returns true if the user requested to quit entirely.
func (m WatchModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the bot picker.
func (m WatchModel) BackToMenu() bool {
	return m.backToMenu
}
