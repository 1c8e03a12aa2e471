package bots

import (
	"context"

	"github.com/vovakirdan/robot-arena/internal/arena"
	"github.com/vovakirdan/robot-arena/internal/registry"
)

func init() {
	registry.Register("rush", func(int64) registry.Bot { return Rush{} })
}

// Rush attacks adjacent enemies and otherwise closes in on the nearest one.
type Rush struct{}

func (Rush) ID() string    { return "rush" }
func (Rush) Title() string { return "Charges the nearest enemy" }

func (Rush) Act(_ context.Context, view arena.TurnView, self arena.AgentInfo) (arena.Decision, error) {
	return chase(view, self), nil
}
