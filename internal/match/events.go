package match

import "github.com/vovakirdan/robot-arena/internal/arena"

// Event is sent by a running match to its spectator.
type Event interface {
	matchEvent()
}

// TurnEvent is sent after every turn.
type TurnEvent struct {
	Report   arena.TurnReport
	Snapshot Snapshot
}

func (TurnEvent) matchEvent() {}

// EndedEvent is the last event of a match.
type EndedEvent struct {
	Result Result
}

func (EndedEvent) matchEvent() {}
