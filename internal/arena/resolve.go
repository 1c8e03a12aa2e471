package arena

import (
	"fmt"

	"github.com/vovakirdan/robot-arena/internal/core"
)

// VerdictKind classifies the outcome of a legality check.
type VerdictKind uint8

const (
	// VerdictOK means the target cell can be entered or struck unobstructed.
	VerdictOK VerdictKind = iota
	// VerdictIllegal means the target is not a legal neighbour. No damage follows.
	VerdictIllegal
	// VerdictGuardCollision means a guarding agent holds the target cell.
	VerdictGuardCollision
	// VerdictMoveCollision means other agents are moving into the target cell.
	VerdictMoveCollision
	// VerdictBlockCollision means the occupant of the target cell attacks or
	// cannot get out of the way.
	VerdictBlockCollision
)

func (k VerdictKind) String() string {
	switch k {
	case VerdictOK:
		return "ok"
	case VerdictIllegal:
		return "illegal"
	case VerdictGuardCollision:
		return "guard collision"
	case VerdictMoveCollision:
		return "move collision"
	case VerdictBlockCollision:
		return "block collision"
	default:
		return fmt.Sprintf("verdict(%d)", uint8(k))
	}
}

// Verdict is the result of CanAct. Others names the implicated agents: the
// guard or blocker for guard and block collisions, every contender for a
// move collision, and nobody otherwise.
type Verdict struct {
	Kind   VerdictKind
	Others []*Agent
}

// OK reports whether the action is unobstructed.
func (v Verdict) OK() bool {
	return v.Kind == VerdictOK
}

func (v Verdict) String() string {
	if len(v.Others) == 0 {
		return v.Kind.String()
	}
	return fmt.Sprintf("%v %v", v.Kind, v.Others)
}

// CanAct decides whether a can move onto or strike target this turn, given
// everyone's frozen decisions. It reads world state but never mutates it, so
// repeated calls between mutations return equal verdicts.
func (w *World) CanAct(a *Agent, target core.Coord, table ActionTable) Verdict {
	return w.canAct(a, target, table, nil)
}

// canAct threads the chain of agents whose moves are being evaluated. A
// query that loops back to the head of the chain is part of a movement
// cycle and succeeds; any other repeat fails.
func (w *World) canAct(a *Agent, target core.Coord, table ActionTable, chain []*Agent) Verdict {
	for _, c := range chain {
		if c == a {
			if chain[0] == a {
				return Verdict{Kind: VerdictOK}
			}
			return Verdict{Kind: VerdictIllegal}
		}
	}

	if !w.board.IsNeighbor(a.Location, target) {
		return Verdict{Kind: VerdictIllegal}
	}

	var contenders []*Agent
	for _, other := range w.implicated(a, target) {
		d := table.Of(other)
		atTarget := other.Location == target

		switch d.Command {
		case CommandSuicide:
			// a self-destructing occupant vacates by dying
		case CommandGuard:
			if atTarget {
				return Verdict{Kind: VerdictGuardCollision, Others: []*Agent{other}}
			}
		case CommandAttack:
			if atTarget {
				return Verdict{Kind: VerdictBlockCollision, Others: []*Agent{other}}
			}
		case CommandMove:
			if d.Target == target {
				contenders = append(contenders, other)
			} else if atTarget {
				next := append(chain[:len(chain):len(chain)], a)
				if !w.canAct(other, d.Target, table, next).OK() {
					return Verdict{Kind: VerdictBlockCollision, Others: []*Agent{other}}
				}
			}
		}
	}

	if len(contenders) > 0 {
		return Verdict{Kind: VerdictMoveCollision, Others: contenders}
	}
	return Verdict{Kind: VerdictOK}
}

// implicated returns every agent other than a on target's legal neighbours,
// followed by the agent on target itself.
func (w *World) implicated(a *Agent, target core.Coord) []*Agent {
	var out []*Agent
	for _, c := range w.board.Neighbors(target, core.Blocked) {
		if other := w.grid.At(c); other != nil && other != a {
			out = append(out, other)
		}
	}
	if other := w.grid.At(target); other != nil && other != a {
		out = append(out, other)
	}
	return out
}
