package core

import (
	"fmt"
	"math"
)

// Coord is a cell on the board. X grows to the right, Y grows downward.
type Coord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// WalkDistance returns the Manhattan distance to another coordinate.
func (c Coord) WalkDistance(other Coord) int {
	return abs(c.X-other.X) + abs(c.Y-other.Y)
}

// Distance returns the straight-line distance to another coordinate.
func (c Coord) Distance(other Coord) float64 {
	return math.Hypot(float64(other.X-c.X), float64(other.Y-c.Y))
}

// Toward returns the cell one orthogonal step from `from` in the direction of `to`.
// The larger axis gap is closed first; ties go to the x axis.
// Returns `from` when the two are equal.
func Toward(from, to Coord) Coord {
	if from == to {
		return from
	}

	dx, dy := to.X-from.X, to.Y-from.Y
	if abs(dx) < abs(dy) {
		return from.Add(0, sign(dy))
	}
	return from.Add(sign(dx), 0)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
