package arena

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/vovakirdan/robot-arena/internal/core"
)

// ErrProviderTimeout is returned when a provider does not decide in time.
var ErrProviderTimeout = errors.New("arena: provider timed out")

// ProviderPanicError wraps a value recovered from a panicking provider.
type ProviderPanicError struct {
	Value any
}

func (e *ProviderPanicError) Error() string {
	return fmt.Sprintf("arena: provider panicked: %v", e.Value)
}

// Provider is a player's robot logic. Act is called once per robot per turn
// with a snapshot taken before anyone acts. It must return one of the four
// commands; anything else, an error or a panic makes the robot guard.
type Provider interface {
	Act(ctx context.Context, view TurnView, self AgentInfo) (Decision, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, view TurnView, self AgentInfo) (Decision, error)

// Act calls f.
func (f ProviderFunc) Act(ctx context.Context, view TurnView, self AgentInfo) (Decision, error) {
	return f(ctx, view, self)
}

// TurnNotifier is implemented by providers that want to hear about each new
// turn before any decision is requested.
type TurnNotifier interface {
	OnNewTurn(turn int)
}

// TurnView is the read-only game snapshot handed to providers.
type TurnView struct {
	Turn   int
	Agents map[core.Coord]AgentInfo
	Board  *core.Board
}

// At returns the robot standing on c.
func (v TurnView) At(c core.Coord) (AgentInfo, bool) {
	info, ok := v.Agents[c]
	return info, ok
}

// Allies returns every robot belonging to p in row-major order.
func (v TurnView) Allies(p Player) []AgentInfo {
	var out []AgentInfo
	for _, info := range v.Agents {
		if info.Player == p {
			out = append(out, info)
		}
	}
	slices.SortFunc(out, func(a, b AgentInfo) int {
		if a.Location.Y != b.Location.Y {
			return a.Location.Y - b.Location.Y
		}
		return a.Location.X - b.Location.X
	})
	return out
}

// Enemies returns every robot not belonging to p.
func (v TurnView) Enemies(p Player) []AgentInfo {
	return v.Allies(p.Opponent())
}

func (v TurnView) clone() TurnView {
	v.Agents = maps.Clone(v.Agents)
	return v
}

// decide asks p for a decision, bounded by timeout when it is positive.
// Whatever goes wrong, the returned decision is usable: on error it is guard.
func decide(ctx context.Context, p Provider, view TurnView, self AgentInfo, timeout time.Duration) (Decision, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	type result struct {
		d   Decision
		err error
	}
	ch := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- result{err: &ProviderPanicError{Value: r}}
			}
		}()
		d, err := p.Act(ctx, view, self)
		ch <- result{d: d, err: err}
	}()

	var r result
	select {
	case r = <-ch:
	case <-ctx.Done():
	}
	// a decision that lands after the deadline is as late as no decision
	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Guard(), ErrProviderTimeout
		}
		return Guard(), err
	}
	if r.err != nil {
		return Guard(), r.err
	}
	if err := r.d.Validate(); err != nil {
		return Guard(), err
	}
	return r.d, nil
}

// notify delivers the new-turn hook, converting a panic into an error.
func notify(p Provider, turn int) (err error) {
	n, ok := p.(TurnNotifier)
	if !ok {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = &ProviderPanicError{Value: r}
		}
	}()
	n.OnNewTurn(turn)
	return nil
}
