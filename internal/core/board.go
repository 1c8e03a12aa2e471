// Package core provides the board geometry and render buffer for the arena.
// It contains no external dependencies (especially no Bubble Tea) so the
// resolution engine and bots can use it without pulling in the UI.
package core

// CellKind classifies a board cell. Kinds are bit flags: a cell may be both
// KindNormal and KindSpawn, while KindInvalid and KindObstacle stand alone.
type CellKind uint8

const (
	KindNormal CellKind = 1 << iota
	KindSpawn
	KindObstacle
	KindInvalid
)

// Blocked is the filter used to get the cells an agent may legally enter.
const Blocked = KindObstacle | KindInvalid

// Has reports whether k shares any flag with other.
func (k CellKind) Has(other CellKind) bool {
	return k&other != 0
}

// String returns a human-readable name for the kind.
func (k CellKind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindNormal | KindSpawn:
		return "spawn"
	case KindObstacle:
		return "obstacle"
	case KindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// neighborOffsets is the order neighbours are reported in.
var neighborOffsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Board is the static square playing field: its size and the spawn and
// obstacle sets. A Board is never mutated after NewBoard returns.
type Board struct {
	size      int
	spawns    []Coord
	spawnSet  map[Coord]struct{}
	obstacles map[Coord]struct{}
}

// NewBoard creates a board of size x size cells.
func NewBoard(size int, spawns, obstacles []Coord) *Board {
	b := &Board{
		size:      size,
		spawns:    make([]Coord, 0, len(spawns)),
		spawnSet:  make(map[Coord]struct{}, len(spawns)),
		obstacles: make(map[Coord]struct{}, len(obstacles)),
	}
	for _, c := range obstacles {
		b.obstacles[c] = struct{}{}
	}
	for _, c := range spawns {
		if _, dup := b.spawnSet[c]; dup {
			continue
		}
		b.spawnSet[c] = struct{}{}
		b.spawns = append(b.spawns, c)
	}
	return b
}

// Size returns the board edge length.
func (b *Board) Size() int {
	return b.size
}

// Center returns the middle cell of the board.
func (b *Board) Center() Coord {
	return C(b.size/2, b.size/2)
}

// InBounds returns true if the coordinate lies on the board.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.size && c.Y >= 0 && c.Y < b.size
}

// Classify returns the kind of the given cell.
func (b *Board) Classify(c Coord) CellKind {
	if !b.InBounds(c) {
		return KindInvalid
	}
	if _, ok := b.obstacles[c]; ok {
		return KindObstacle
	}
	if _, ok := b.spawnSet[c]; ok {
		return KindNormal | KindSpawn
	}
	return KindNormal
}

// Neighbors returns the up to four orthogonal neighbours of c whose kind
// shares no flag with exclude. Pass 0 to get all four.
func (b *Board) Neighbors(c Coord, exclude CellKind) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, o := range neighborOffsets {
		n := c.Add(o[0], o[1])
		if exclude != 0 && b.Classify(n).Has(exclude) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// IsNeighbor reports whether target is an enterable neighbour of c.
func (b *Board) IsNeighbor(c, target Coord) bool {
	if c.WalkDistance(target) != 1 {
		return false
	}
	return !b.Classify(target).Has(Blocked)
}

// SpawnCells returns a copy of the spawn cells in declaration order.
func (b *Board) SpawnCells() []Coord {
	out := make([]Coord, len(b.spawns))
	copy(out, b.spawns)
	return out
}

// IsSpawn reports whether c is a spawn cell.
func (b *Board) IsSpawn(c Coord) bool {
	_, ok := b.spawnSet[c]
	return ok
}

// IsObstacle reports whether c is an obstacle.
func (b *Board) IsObstacle(c Coord) bool {
	_, ok := b.obstacles[c]
	return ok
}
