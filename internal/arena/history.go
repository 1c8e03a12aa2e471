package arena

import (
	"github.com/vovakirdan/robot-arena/internal/core"
)

// RobotRecord is one surviving robot in a history entry. The owner is
// implied by the list it appears in.
type RobotRecord struct {
	Location core.Coord `yaml:"location"`
	HP       int        `yaml:"hp"`
}

// TurnRecord is the state of the board at the end of one turn.
type TurnRecord struct {
	Turn    int              `yaml:"turn"`
	Players [2][]RobotRecord `yaml:"players"`
}

// History is the append-only list of turn records of a game.
type History []TurnRecord

// Scores returns the robot count of each player at the end of every turn.
func (h History) Scores() [][2]int {
	out := make([][2]int, len(h))
	for i, rec := range h {
		out[i] = [2]int{len(rec.Players[PlayerOne]), len(rec.Players[PlayerTwo])}
	}
	return out
}

func recordTurn(turn int, agents []*Agent) TurnRecord {
	rec := TurnRecord{Turn: turn}
	for _, a := range agents {
		rec.Players[a.Player] = append(rec.Players[a.Player], RobotRecord{Location: a.Location, HP: a.HP})
	}
	return rec
}
