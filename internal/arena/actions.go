package arena

import (
	"math/rand"

	"github.com/vovakirdan/robot-arena/internal/config"
	"github.com/vovakirdan/robot-arena/internal/core"
)

// pendingMove is a move that passed its legality check during the execution
// pass and waits to be committed.
type pendingMove struct {
	agent *Agent
	to    core.Coord
}

// execution carries the state of one execution pass. Legality checks see
// turn-start positions; damage lands as each agent acts; relocations are
// collected and committed after the pass.
type execution struct {
	world    *World
	table    ActionTable
	settings config.Settings
	rng      *rand.Rand

	moves  []pendingMove
	damage [2]int // damage taken, by player
}

func newExecution(w *World, table ActionTable, s config.Settings, rng *rand.Rand) *execution {
	return &execution{world: w, table: table, settings: s, rng: rng}
}

// act dispatches a's frozen decision.
func (e *execution) act(a *Agent) {
	d := e.table.Of(a)
	switch d.Command {
	case CommandMove:
		e.move(a, d.Target)
	case CommandAttack:
		e.attack(a, d.Target, e.rollDamage())
	case CommandSuicide:
		e.suicide(a)
	case CommandGuard:
	default:
		// malformed decisions are replaced by guard before the table is frozen
	}
}

func (e *execution) hit(a *Agent, amount int) {
	a.HP -= amount
	e.damage[a.Player] += amount
}

func (e *execution) move(a *Agent, target core.Coord) {
	v := e.world.CanAct(a, target, e.table)
	dmg := e.settings.CollisionDamage

	switch v.Kind {
	case VerdictOK:
		e.moves = append(e.moves, pendingMove{agent: a, to: target})
	case VerdictGuardCollision:
		if a.hostile(v.Others[0]) {
			e.hit(a, dmg)
		}
	case VerdictMoveCollision:
		for _, other := range v.Others {
			if a.hostile(other) {
				e.hit(other, dmg)
			}
		}
	case VerdictBlockCollision:
		if blocker := v.Others[0]; a.hostile(blocker) {
			e.hit(a, dmg)
			e.hit(blocker, dmg)
		}
	case VerdictIllegal:
	}
}

func (e *execution) attack(a *Agent, target core.Coord, dmg int) {
	v := e.world.CanAct(a, target, e.table)

	switch v.Kind {
	case VerdictGuardCollision:
		if guard := v.Others[0]; a.hostile(guard) {
			e.hit(guard, dmg/2)
		}
	case VerdictMoveCollision:
		for _, other := range v.Others {
			if a.hostile(other) {
				e.hit(other, dmg)
			}
		}
	case VerdictBlockCollision:
		if blocker := v.Others[0]; a.hostile(blocker) {
			e.hit(blocker, dmg)
		}
	case VerdictOK, VerdictIllegal:
		// striking empty ground or a cell out of reach does nothing
	}
}

// suicide zeroes a's health, then strikes its own cell and every legal
// neighbour with the fixed suicide damage. The strike on its own cell never
// lands because a cell is not its own neighbour.
func (e *execution) suicide(a *Agent) {
	a.HP = 0
	dmg := e.settings.SuicideDamage
	e.attack(a, a.Location, dmg)
	for _, c := range e.world.board.Neighbors(a.Location, core.Blocked) {
		e.attack(a, c, dmg)
	}
}

func (e *execution) rollDamage() int {
	lo, hi := e.settings.AttackRange[0], e.settings.AttackRange[1]
	if hi <= lo {
		return lo
	}
	return lo + e.rng.Intn(hi-lo+1)
}

// commit relocates every pending move whose agent is still on the board.
// A move is dropped if another pending move claims the same cell or the
// destination stays occupied by an agent that is not leaving; dropping one
// move can invalidate others, so the filter runs until nothing changes.
// It returns the number of agents moved.
func (w *World) commit(moves []pendingMove) int {
	kept := make([]pendingMove, 0, len(moves))
	leaving := make(map[*Agent]bool, len(moves))
	for _, m := range moves {
		if m.agent.world == w && !leaving[m.agent] {
			kept = append(kept, m)
			leaving[m.agent] = true
		}
	}

	for changed := true; changed; {
		changed = false
		claims := make(map[core.Coord]int, len(kept))
		for _, m := range kept {
			claims[m.to]++
		}
		next := kept[:0]
		for _, m := range kept {
			occ := w.grid.At(m.to)
			if claims[m.to] > 1 || (occ != nil && !leaving[occ]) {
				delete(leaving, m.agent)
				changed = true
				continue
			}
			next = append(next, m)
		}
		kept = next
	}

	for _, m := range kept {
		if w.grid.At(m.agent.Location) == m.agent {
			w.grid.set(m.agent.Location, nil)
		}
	}
	for _, m := range kept {
		m.agent.Location = m.to
		w.grid.set(m.to, m.agent)
	}
	return len(kept)
}
