package arena

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/robot-arena/internal/config"
	"github.com/vovakirdan/robot-arena/internal/core"
)

// ErrGameOver is returned by RunTurn once the turn limit has been reached.
var ErrGameOver = errors.New("arena: game over")

// Phase is the orchestrator state.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseCollecting
	PhaseExecuting
	PhasePostProcessing
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCollecting:
		return "collecting-decisions"
	case PhaseExecuting:
		return "executing"
	case PhasePostProcessing:
		return "post-processing"
	case PhaseTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// Fault is a provider failure recovered during decision collection.
type Fault struct {
	AgentID  int
	Player   Player
	Location core.Coord
	Err      error
}

// TurnReport summarises what happened during one turn.
type TurnReport struct {
	Turn    int
	Faults  []Fault
	Moved   int
	Damage  [2]int // damage taken, by player
	Killed  [2]int
	Cleared [2]int // removed from spawn cells by the respawn cycle
	Spawned [2]int
	Scores  [2]int
}

// Game drives turns over a World. It owns every agent; nothing else mutates
// board state.
type Game struct {
	settings  config.Settings
	world     *World
	providers [2]Provider
	rng       *rand.Rand
	logger    *log.Logger

	turn    int
	phase   Phase
	record  bool
	history History
}

// Option configures a Game.
type Option func(*Game)

// WithRand sets the random source for damage rolls and spawn sampling.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// WithSeed seeds a fresh random source.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.rng = rand.New(rand.NewSource(seed)) }
}

// WithLogger sets the logger provider faults are reported to.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithHistory enables the per-turn history.
func WithHistory() Option {
	return func(g *Game) { g.record = true }
}

// NewGame creates a game on board between two providers.
func NewGame(settings config.Settings, board *core.Board, providers [2]Provider, opts ...Option) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("arena: %w", err)
	}
	if board == nil {
		return nil, errors.New("arena: nil board")
	}
	for i, p := range providers {
		if p == nil {
			return nil, fmt.Errorf("arena: no provider for %v", Players[i])
		}
	}

	g := &Game{
		settings:  settings,
		world:     NewWorld(board),
		providers: providers,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// World exposes the game state for tests and setup. Callers must not mutate
// it while a turn is running.
func (g *Game) World() *World { return g.world }

// Settings returns the game's parameters.
func (g *Game) Settings() config.Settings { return g.settings }

// Board returns the static board.
func (g *Game) Board() *core.Board { return g.world.board }

// Turn returns the number of turns played so far.
func (g *Game) Turn() int { return g.turn }

// Phase returns the orchestrator state.
func (g *Game) Phase() Phase { return g.phase }

// Done reports whether the turn limit has been reached.
func (g *Game) Done() bool { return g.turn >= g.settings.MaxTurns }

// Scores returns the number of living robots of each player.
func (g *Game) Scores() [2]int { return g.world.Count() }

// AgentAt returns the exposed attributes of the robot on c.
func (g *Game) AgentAt(c core.Coord) (AgentInfo, bool) {
	a := g.world.AgentAt(c)
	if a == nil {
		return AgentInfo{}, false
	}
	return a.Info(), true
}

// Agents returns the exposed attributes of every robot in creation order.
func (g *Game) Agents() []AgentInfo {
	agents := g.world.agents
	out := make([]AgentInfo, len(agents))
	for i, a := range agents {
		out[i] = a.Info()
	}
	return out
}

// History returns the recorded turns, or nil when recording is disabled.
func (g *Game) History() History { return g.history }

// View builds the snapshot handed to providers.
func (g *Game) View() TurnView {
	agents := make(map[core.Coord]AgentInfo, len(g.world.agents))
	for _, a := range g.world.agents {
		agents[a.Location] = a.Info()
	}
	return TurnView{Turn: g.turn, Agents: agents, Board: g.world.board}
}

// RunTurn plays one turn: decisions are collected against a snapshot of the
// board, executed simultaneously, the dead are removed and, every
// spawn_every turns, the spawn cells are cleared and restocked.
func (g *Game) RunTurn(ctx context.Context) (TurnReport, error) {
	if g.phase == PhaseTerminated || g.Done() {
		g.phase = PhaseTerminated
		return TurnReport{Turn: g.turn}, ErrGameOver
	}
	report := TurnReport{Turn: g.turn}

	g.phase = PhaseCollecting
	for i, p := range g.providers {
		if err := notify(p, g.turn); err != nil {
			g.logger.Warn("new turn hook failed", "turn", g.turn, "player", Players[i], "error", err)
		}
	}
	table := g.collect(ctx, &report)

	g.phase = PhaseExecuting
	order := g.world.Agents()
	exec := newExecution(g.world, table, g.settings, g.rng)
	for _, a := range order {
		exec.act(a)
	}
	report.Damage = exec.damage

	g.phase = PhasePostProcessing
	for _, a := range g.world.RemoveDead() {
		report.Killed[a.Player]++
	}
	report.Moved = g.world.commit(exec.moves)

	if g.turn%g.settings.SpawnEvery == 0 {
		report.Cleared = g.clearSpawnCells()
		report.Spawned = g.spawnBatch()
	}

	if g.record {
		g.history = append(g.history, recordTurn(g.turn, g.world.agents))
	}

	g.turn++
	report.Scores = g.world.Count()
	g.phase = PhaseIdle
	if g.Done() {
		g.phase = PhaseTerminated
	}
	return report, nil
}

// collect asks every robot's provider for a decision and freezes them.
func (g *Game) collect(ctx context.Context, report *TurnReport) ActionTable {
	view := g.View()
	timeout := g.settings.DecisionTimeout()
	table := make(ActionTable, len(g.world.agents))

	for _, a := range g.world.agents {
		d, err := decide(ctx, g.providers[a.Player], view.clone(), a.Info(), timeout)
		if err != nil {
			report.Faults = append(report.Faults, Fault{AgentID: a.ID, Player: a.Player, Location: a.Location, Err: err})
			g.logger.Warn("robot forced to guard",
				"turn", g.turn,
				"agent", a.ID,
				"player", a.Player,
				"location", a.Location,
				"error", err,
			)
		}
		table[a] = d
	}
	return table
}

// clearSpawnCells removes every robot standing on a spawn cell.
func (g *Game) clearSpawnCells() [2]int {
	var cleared [2]int
	for _, c := range g.world.board.SpawnCells() {
		if a := g.world.AgentAt(c); a != nil {
			g.world.Remove(a)
			cleared[a.Player]++
		}
	}
	return cleared
}

// spawnBatch places spawn_per_player new robots for each player on distinct
// random spawn cells.
func (g *Game) spawnBatch() [2]int {
	var spawned [2]int
	cells := g.world.board.SpawnCells()
	perm := g.rng.Perm(len(cells))
	per := g.settings.SpawnPerPlayer

	for i, p := range Players {
		for j := 0; j < per; j++ {
			k := i*per + j
			if k >= len(perm) {
				break
			}
			c := cells[perm[k]]
			if _, err := g.world.Spawn(p, c, g.settings.RobotHP); err != nil {
				g.logger.Debug("spawn skipped", "turn", g.turn, "player", p, "error", err)
				continue
			}
			spawned[p]++
		}
	}
	return spawned
}
