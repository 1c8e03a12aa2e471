package match

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/robot-arena/internal/arena"
)

// Runner plays a game to its turn limit.
type Runner struct {
	game     *arena.Game
	interval time.Duration
	logger   *log.Logger
	events   chan Event
	lost     [2]int
}

// Option configures a Runner.
type Option func(*Runner)

// WithInterval waits d between turns. Zero runs turns back to back.
func WithInterval(d time.Duration) Option {
	return func(r *Runner) { r.interval = d }
}

// WithLogger sets the logger turn summaries are written to.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithEvents makes the runner publish events on a channel with the given
// buffer. The channel is closed when Run returns.
func WithEvents(buffer int) Option {
	return func(r *Runner) { r.events = make(chan Event, buffer) }
}

// NewRunner creates a runner for g.
func NewRunner(g *arena.Game, opts ...Option) *Runner {
	r := &Runner{game: g, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Events returns the event channel, or nil unless WithEvents was given.
func (r *Runner) Events() <-chan Event {
	return r.events
}

// Step plays one turn and returns its event. It returns arena.ErrGameOver
// once the turn limit has been reached.
func (r *Runner) Step(ctx context.Context) (TurnEvent, error) {
	report, err := r.game.RunTurn(ctx)
	if err != nil {
		return TurnEvent{}, err
	}
	for i, n := range report.Killed {
		r.lost[i] += n
	}

	r.logger.Debug("turn",
		"turn", report.Turn,
		"scores", report.Scores,
		"moved", report.Moved,
		"killed", report.Killed,
		"spawned", report.Spawned,
		"faults", len(report.Faults),
	)
	return TurnEvent{Report: report, Snapshot: TakeSnapshot(r.game)}, nil
}

// Done reports whether the turn limit has been reached.
func (r *Runner) Done() bool {
	return r.game.Done()
}

// Lost returns the robots destroyed so far, per player.
func (r *Runner) Lost() [2]int {
	return r.lost
}

// Snapshot returns the current visible state.
func (r *Runner) Snapshot() Snapshot {
	return TakeSnapshot(r.game)
}

// Result scores the match as it stands.
func (r *Runner) Result(reason EndReason) Result {
	res := Result{
		Reason: reason,
		Scores: r.game.Scores(),
		Lost:   r.lost,
		Turns:  r.game.Turn(),
	}
	res.decide()
	return res
}

// Run plays turns until the game is done or ctx is cancelled. A cancelled
// match still returns the result so far along with ctx's error.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	if r.events != nil {
		defer close(r.events)
	}

	var tick <-chan time.Time
	if r.interval > 0 {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for !r.game.Done() {
		if tick != nil {
			select {
			case <-ctx.Done():
			case <-tick:
			}
		}
		if err := ctx.Err(); err != nil {
			return r.finish(ctx, EndReasonCancelled), err
		}

		ev, err := r.Step(ctx)
		if errors.Is(err, arena.ErrGameOver) {
			break
		}
		if err != nil {
			return r.finish(ctx, EndReasonCancelled), err
		}
		r.emit(ctx, ev)
	}

	res := r.finish(ctx, EndReasonCompleted)
	r.logger.Info("match over", "result", res.String())
	return res, nil
}

func (r *Runner) finish(ctx context.Context, reason EndReason) Result {
	res := r.Result(reason)
	if r.events == nil {
		return res
	}
	if reason == EndReasonCompleted {
		r.emit(ctx, EndedEvent{Result: res})
		return res
	}
	// nobody may be listening after a cancel; the channel close still signals the end
	select {
	case r.events <- EndedEvent{Result: res}:
	default:
	}
	return res
}

func (r *Runner) emit(ctx context.Context, ev Event) {
	if r.events == nil {
		return
	}
	select {
	case r.events <- ev:
	case <-ctx.Done():
	}
}
