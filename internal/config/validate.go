package config

import (
	"fmt"

	"github.com/vovakirdan/robot-arena/internal/core"
)

// ValidationError contains details about a setup failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the settings describe a playable match.
func (s Settings) Validate() error {
	switch {
	case s.BoardSize <= 0:
		return ValidationError{Code: "INVALID_SIZE", Message: fmt.Sprintf("board_size must be positive, got %d", s.BoardSize)}
	case s.RobotHP <= 0:
		return ValidationError{Code: "INVALID_HP", Message: fmt.Sprintf("robot_hp must be positive, got %d", s.RobotHP)}
	case s.AttackRange[0] < 0 || s.AttackRange[0] > s.AttackRange[1]:
		return ValidationError{Code: "INVALID_RANGE", Message: fmt.Sprintf("attack_range %v is not a valid [min, max]", s.AttackRange)}
	case s.CollisionDamage < 0 || s.SuicideDamage < 0:
		return ValidationError{Code: "INVALID_DAMAGE", Message: "damage amounts must not be negative"}
	case s.SpawnEvery <= 0:
		return ValidationError{Code: "INVALID_SPAWN", Message: fmt.Sprintf("spawn_every must be positive, got %d", s.SpawnEvery)}
	case s.SpawnPerPlayer < 0:
		return ValidationError{Code: "INVALID_SPAWN", Message: fmt.Sprintf("spawn_per_player must not be negative, got %d", s.SpawnPerPlayer)}
	case s.MaxTurns <= 0:
		return ValidationError{Code: "INVALID_TURNS", Message: fmt.Sprintf("max_turns must be positive, got %d", s.MaxTurns)}
	case s.TurnIntervalMS < 0 || s.DecisionTimeoutMS < 0:
		return ValidationError{Code: "INVALID_TIMING", Message: "timings must not be negative"}
	}
	return nil
}

// Board builds the static board described by the map. defaultSize is used
// when the map sets neither size nor layout. spawnPerPlayer is checked
// against the number of spawn cells so a respawn cycle can always place
// every robot on a distinct cell.
func (m Map) Board(defaultSize, spawnPerPlayer int) (*core.Board, error) {
	size := m.Size
	if size == 0 {
		size = len(m.Layout)
	}
	if size == 0 {
		size = defaultSize
	}
	if size <= 0 {
		return nil, ValidationError{Code: "INVALID_SIZE", Message: fmt.Sprintf("map %q has no size", m.Name)}
	}

	var spawns, obstacles []core.Coord
	for y, row := range m.Layout {
		x := 0
		for _, r := range row {
			switch r {
			case '#':
				obstacles = append(obstacles, core.C(x, y))
			case 'S':
				spawns = append(spawns, core.C(x, y))
			}
			x++
		}
		if x > size {
			return nil, ValidationError{Code: "OUT_OF_BOUNDS", Message: fmt.Sprintf("map %q row %d is wider than %d", m.Name, y, size)}
		}
	}
	for _, p := range m.Obstacle {
		obstacles = append(obstacles, core.C(p[0], p[1]))
	}
	for _, p := range m.Spawn {
		spawns = append(spawns, core.C(p[0], p[1]))
	}

	board := core.NewBoard(size, spawns, obstacles)
	for _, c := range append(spawns, obstacles...) {
		if !board.InBounds(c) {
			return nil, ValidationError{Code: "OUT_OF_BOUNDS", Message: fmt.Sprintf("map %q cell %v is outside a %dx%d board", m.Name, c, size, size)}
		}
	}
	for _, c := range spawns {
		if board.IsObstacle(c) {
			return nil, ValidationError{Code: "SPAWN_ON_OBSTACLE", Message: fmt.Sprintf("map %q spawn %v is an obstacle", m.Name, c)}
		}
	}
	if need := 2 * spawnPerPlayer; len(board.SpawnCells()) < need {
		return nil, ValidationError{
			Code:    "NOT_ENOUGH_SPAWNS",
			Message: fmt.Sprintf("map %q has %d spawn cells, %d needed", m.Name, len(board.SpawnCells()), need),
		}
	}
	return board, nil
}
