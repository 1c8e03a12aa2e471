package bots

import (
	"context"

	"github.com/vovakirdan/robot-arena/internal/arena"
	"github.com/vovakirdan/robot-arena/internal/registry"
)

func init() {
	registry.Register("guard", func(int64) registry.Bot { return Guard{} })
}

// Guard never leaves its cell.
type Guard struct{}

func (Guard) ID() string    { return "guard" }
func (Guard) Title() string { return "Holds position every turn" }

func (Guard) Act(context.Context, arena.TurnView, arena.AgentInfo) (arena.Decision, error) {
	return arena.Guard(), nil
}
