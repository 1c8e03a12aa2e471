// Package arena implements the turn resolution engine: agents on a grid, the
// simultaneous action resolution with its collision rules, and the turn
// orchestration that drives decisions, damage, deaths and respawns.
package arena

import (
	"fmt"

	"github.com/vovakirdan/robot-arena/internal/core"
)

// Player identifies one of the two sides of a match.
type Player uint8

const (
	PlayerOne Player = iota
	PlayerTwo
)

// Players lists both sides in index order.
var Players = [2]Player{PlayerOne, PlayerTwo}

// String returns a human-readable name for the player.
func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "Player 1"
	case PlayerTwo:
		return "Player 2"
	default:
		return fmt.Sprintf("Player(%d)", uint8(p))
	}
}

// Opponent returns the other side.
func (p Player) Opponent() Player {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// Agent is one robot on the board. Its Location always matches its slot in
// the world grid; only World methods move it.
type Agent struct {
	ID       int
	Location core.Coord
	HP       int
	Player   Player

	world *World
}

// Alive reports whether the agent still has health left.
func (a *Agent) Alive() bool {
	return a.HP > 0
}

// Info returns the attributes exposed to robot logic and viewers.
func (a *Agent) Info() AgentInfo {
	return AgentInfo{Location: a.Location, HP: a.HP, Player: a.Player}
}

// hostile reports whether other belongs to the opposing player.
func (a *Agent) hostile(other *Agent) bool {
	return a.Player != other.Player
}

// String is used in fault logs.
func (a *Agent) String() string {
	return fmt.Sprintf("#%d%v", a.ID, a.Location)
}

// AgentInfo is the read-only view of an agent.
type AgentInfo struct {
	Location core.Coord `yaml:"location"`
	HP       int        `yaml:"hp"`
	Player   Player     `yaml:"player"`
}
