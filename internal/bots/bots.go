// Package bots holds the built-in robot logic. Each bot registers itself
// with the registry in init(), so importing the package makes them all
// available by ID.
package bots

import (
	"slices"

	"github.com/vovakirdan/robot-arena/internal/arena"
	"github.com/vovakirdan/robot-arena/internal/core"
)

// adjacentEnemies returns the enemies standing on self's legal neighbours,
// weakest first.
func adjacentEnemies(view arena.TurnView, self arena.AgentInfo) []arena.AgentInfo {
	var out []arena.AgentInfo
	for _, c := range view.Board.Neighbors(self.Location, core.Blocked) {
		if info, ok := view.At(c); ok && info.Player != self.Player {
			out = append(out, info)
		}
	}
	slices.SortStableFunc(out, func(a, b arena.AgentInfo) int { return a.HP - b.HP })
	return out
}

// nearest returns the robot closest to from by walking distance. Ties go to
// the first in the list.
func nearest(from core.Coord, robots []arena.AgentInfo) (arena.AgentInfo, bool) {
	var best arena.AgentInfo
	bestDist := -1
	for _, r := range robots {
		if d := from.WalkDistance(r.Location); bestDist < 0 || d < bestDist {
			best, bestDist = r, d
		}
	}
	return best, bestDist >= 0
}

// stepToward returns a move one step closer to goal, or guard when the step
// is blocked by terrain or a friendly robot.
func stepToward(view arena.TurnView, self arena.AgentInfo, goal core.Coord) arena.Decision {
	next := core.Toward(self.Location, goal)
	if next == self.Location || !view.Board.IsNeighbor(self.Location, next) {
		return arena.Guard()
	}
	if other, ok := view.At(next); ok && other.Player == self.Player {
		return arena.Guard()
	}
	return arena.Move(next)
}

// chase attacks the weakest adjacent enemy, otherwise heads for the nearest
// enemy, otherwise for the centre of the board.
func chase(view arena.TurnView, self arena.AgentInfo) arena.Decision {
	if enemies := adjacentEnemies(view, self); len(enemies) > 0 {
		return arena.Attack(enemies[0].Location)
	}
	if target, ok := nearest(self.Location, view.Enemies(self.Player)); ok {
		return stepToward(view, self, target.Location)
	}
	return stepToward(view, self, view.Board.Center())
}
