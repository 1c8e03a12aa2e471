package arena

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/robot-arena/internal/core"
)

// ErrInvalidDecision marks a decision outside the four known commands.
var ErrInvalidDecision = errors.New("arena: invalid decision")

// Command is the closed set of actions a robot may take in a turn.
// The zero value is not a command, so an empty Decision is malformed.
type Command uint8

const (
	commandNone Command = iota
	CommandMove
	CommandAttack
	CommandGuard
	CommandSuicide
)

// String returns the wire name of the command.
func (c Command) String() string {
	switch c {
	case CommandMove:
		return "move"
	case CommandAttack:
		return "attack"
	case CommandGuard:
		return "guard"
	case CommandSuicide:
		return "suicide"
	default:
		return fmt.Sprintf("command(%d)", uint8(c))
	}
}

// ParseCommand converts a command name to a Command.
func ParseCommand(s string) (Command, error) {
	switch s {
	case "move":
		return CommandMove, nil
	case "attack":
		return CommandAttack, nil
	case "guard":
		return CommandGuard, nil
	case "suicide":
		return CommandSuicide, nil
	default:
		return commandNone, fmt.Errorf("%w: unknown command %q", ErrInvalidDecision, s)
	}
}

// Decision is one robot's chosen action for a turn. Target is only
// meaningful for move and attack.
type Decision struct {
	Command Command
	Target  core.Coord
}

// Move returns a decision to step onto c.
func Move(c core.Coord) Decision { return Decision{Command: CommandMove, Target: c} }

// Attack returns a decision to strike c.
func Attack(c core.Coord) Decision { return Decision{Command: CommandAttack, Target: c} }

// Guard returns a decision to hold position.
func Guard() Decision { return Decision{Command: CommandGuard} }

// Suicide returns a decision to self-destruct.
func Suicide() Decision { return Decision{Command: CommandSuicide} }

// Validate reports whether the decision carries one of the four commands.
func (d Decision) Validate() error {
	switch d.Command {
	case CommandMove, CommandAttack, CommandGuard, CommandSuicide:
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrInvalidDecision, d.Command)
	}
}

// String renders the decision the way fault logs show it.
func (d Decision) String() string {
	switch d.Command {
	case CommandMove, CommandAttack:
		return fmt.Sprintf("%v %v", d.Command, d.Target)
	default:
		return d.Command.String()
	}
}

// ActionTable is the frozen mapping from agent to decision for one turn.
// It is built once before execution and never written afterwards.
type ActionTable map[*Agent]Decision

// Of returns the agent's decision. Agents without an entry guard.
func (t ActionTable) Of(a *Agent) Decision {
	if d, ok := t[a]; ok {
		return d
	}
	return Guard()
}
