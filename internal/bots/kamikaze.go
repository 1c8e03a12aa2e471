package bots

import (
	"context"

	"github.com/vovakirdan/robot-arena/internal/arena"
	"github.com/vovakirdan/robot-arena/internal/registry"
)

func init() {
	registry.Register("kamikaze", func(int64) registry.Bot { return NewKamikaze() })
}

// Kamikaze rushes like Rush but blows itself up when surrounded or when it
// is about to die next to an enemy anyway.
type Kamikaze struct {
	// Crowd is the number of adjacent enemies that triggers a suicide.
	Crowd int
	// LowHP is the health at or below which any adjacent enemy triggers it.
	LowHP int
}

// NewKamikaze returns a Kamikaze with the stock thresholds.
func NewKamikaze() Kamikaze {
	return Kamikaze{Crowd: 2, LowHP: 10}
}

func (Kamikaze) ID() string    { return "kamikaze" }
func (Kamikaze) Title() string { return "Rushes in and self-destructs in a crowd" }

func (k Kamikaze) Act(_ context.Context, view arena.TurnView, self arena.AgentInfo) (arena.Decision, error) {
	enemies := adjacentEnemies(view, self)
	if len(enemies) >= k.Crowd || (len(enemies) > 0 && self.HP <= k.LowHP) {
		return arena.Suicide(), nil
	}
	return chase(view, self), nil
}
