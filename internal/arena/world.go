package arena

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/robot-arena/internal/core"
)

// ErrCellOccupied is returned when spawning onto a cell that holds an agent.
var ErrCellOccupied = errors.New("arena: cell occupied")

// Grid maps each board cell to the agent standing on it, if any.
// Cells are stored in row-major order: index = y*size + x.
// The grid does not own agents; the World's agent list does.
type Grid struct {
	size  int
	cells []*Agent
}

// NewGrid creates an empty size x size grid.
func NewGrid(size int) *Grid {
	return &Grid{size: size, cells: make([]*Agent, size*size)}
}

func (g *Grid) index(c core.Coord) (int, bool) {
	if c.X < 0 || c.X >= g.size || c.Y < 0 || c.Y >= g.size {
		return 0, false
	}
	return c.Y*g.size + c.X, true
}

// At returns the agent on c, or nil for empty or off-board cells.
func (g *Grid) At(c core.Coord) *Agent {
	i, ok := g.index(c)
	if !ok {
		return nil
	}
	return g.cells[i]
}

func (g *Grid) set(c core.Coord, a *Agent) {
	if i, ok := g.index(c); ok {
		g.cells[i] = a
	}
}

// World is the mutable state of a match: the agent set in creation order and
// the grid indexing it by position.
type World struct {
	board  *core.Board
	grid   *Grid
	agents []*Agent
	nextID int
}

// NewWorld creates an empty world over the given board.
func NewWorld(board *core.Board) *World {
	return &World{board: board, grid: NewGrid(board.Size())}
}

// Board returns the static board.
func (w *World) Board() *core.Board {
	return w.board
}

// Agents returns the live agent set in creation order. The slice is a copy;
// the agents are not.
func (w *World) Agents() []*Agent {
	out := make([]*Agent, len(w.agents))
	copy(out, w.agents)
	return out
}

// AgentAt returns the agent standing on c, or nil.
func (w *World) AgentAt(c core.Coord) *Agent {
	return w.grid.At(c)
}

// Spawn creates an agent with the given health at c and inserts it into the grid.
func (w *World) Spawn(player Player, c core.Coord, hp int) (*Agent, error) {
	if !w.board.InBounds(c) {
		return nil, fmt.Errorf("arena: spawn at %v: off the board", c)
	}
	if w.grid.At(c) != nil {
		return nil, fmt.Errorf("arena: spawn at %v: %w", c, ErrCellOccupied)
	}

	w.nextID++
	a := &Agent{ID: w.nextID, Location: c, HP: hp, Player: player, world: w}
	w.agents = append(w.agents, a)
	w.grid.set(c, a)
	return a, nil
}

// Remove detaches the agent from the grid and the agent set.
// Removing an agent twice is a no-op.
func (w *World) Remove(a *Agent) {
	if a == nil || a.world != w {
		return
	}
	for i, other := range w.agents {
		if other == a {
			w.agents = append(w.agents[:i], w.agents[i+1:]...)
			break
		}
	}
	if w.grid.At(a.Location) == a {
		w.grid.set(a.Location, nil)
	}
	a.world = nil
}

// Relocate moves the agent to c. It performs no legality checks; callers
// only relocate after the resolution engine has cleared the move.
func (w *World) Relocate(a *Agent, c core.Coord) {
	if w.grid.At(a.Location) == a {
		w.grid.set(a.Location, nil)
	}
	a.Location = c
	w.grid.set(c, a)
}

// RemoveDead removes every agent with no health left and returns them.
func (w *World) RemoveDead() []*Agent {
	var dead []*Agent
	for _, a := range w.agents {
		if !a.Alive() {
			dead = append(dead, a)
		}
	}
	for _, a := range dead {
		w.Remove(a)
	}
	return dead
}

// Count returns the number of agents each player has on the board.
func (w *World) Count() [2]int {
	var n [2]int
	for _, a := range w.agents {
		n[a.Player]++
	}
	return n
}
