// Package match drives an arena game from its first turn to the turn limit,
// pacing turns for spectators and deciding the outcome.
package match

import (
	"fmt"

	"github.com/vovakirdan/robot-arena/internal/arena"
	"github.com/vovakirdan/robot-arena/internal/core"
)

// EndReason describes why a match ended.
type EndReason int

const (
	EndReasonCompleted EndReason = iota // Turn limit reached
	EndReasonCancelled                  // Context cancelled before the limit
)

func (r EndReason) String() string {
	switch r {
	case EndReasonCompleted:
		return "Match completed"
	case EndReasonCancelled:
		return "Match cancelled"
	default:
		return "Unknown"
	}
}

// Result contains the outcome of a match.
type Result struct {
	Reason EndReason
	Winner arena.Player // meaningless when Draw is set
	Draw   bool
	Scores [2]int // living robots per player after the last turn
	Lost   [2]int // robots destroyed per player over the match
	Turns  int
}

// String renders the result for the CLI.
func (r Result) String() string {
	if r.Draw {
		return fmt.Sprintf("Draw %d-%d after %d turns", r.Scores[0], r.Scores[1], r.Turns)
	}
	return fmt.Sprintf("%v wins %d-%d after %d turns", r.Winner, r.Scores[0], r.Scores[1], r.Turns)
}

// decide fills in the winner from the scores.
func (r *Result) decide() {
	switch {
	case r.Scores[0] > r.Scores[1]:
		r.Winner = arena.PlayerOne
	case r.Scores[1] > r.Scores[0]:
		r.Winner = arena.PlayerTwo
	default:
		r.Draw = true
	}
}

// Snapshot is the spectator's view of the board after a turn.
type Snapshot struct {
	Turn     int
	MaxTurns int
	Board    *core.Board
	Robots   []arena.AgentInfo
	Scores   [2]int
}

// TakeSnapshot copies the visible state of g.
func TakeSnapshot(g *arena.Game) Snapshot {
	return Snapshot{
		Turn:     g.Turn(),
		MaxTurns: g.Settings().MaxTurns,
		Board:    g.Board(),
		Robots:   g.Agents(),
		Scores:   g.Scores(),
	}
}

// HP returns the total health of each player's robots.
func (s Snapshot) HP() [2]int {
	var hp [2]int
	for _, r := range s.Robots {
		hp[r.Player] += r.HP
	}
	return hp
}
