package bots

import (
	"context"
	"math/rand"

	"github.com/vovakirdan/robot-arena/internal/arena"
	"github.com/vovakirdan/robot-arena/internal/core"
	"github.com/vovakirdan/robot-arena/internal/registry"
)

func init() {
	registry.Register("random", func(seed int64) registry.Bot { return NewRandom(seed) })
}

// Random picks a random command aimed at a random legal neighbour.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random bot drawing from seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) ID() string    { return "random" }
func (r *Random) Title() string { return "Moves and attacks at random" }

func (r *Random) Act(_ context.Context, view arena.TurnView, self arena.AgentInfo) (arena.Decision, error) {
	cells := view.Board.Neighbors(self.Location, core.Blocked)
	if len(cells) == 0 {
		return arena.Guard(), nil
	}
	target := cells[r.rng.Intn(len(cells))]

	switch n := r.rng.Intn(20); {
	case n == 0:
		return arena.Suicide(), nil
	case n < 5:
		return arena.Guard(), nil
	case n < 10:
		return arena.Attack(target), nil
	default:
		return arena.Move(target), nil
	}
}
