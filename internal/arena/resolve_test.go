package arena

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/robot-arena/internal/core"
)

// openWorld returns a world on an empty size x size board with the given obstacles.
func openWorld(size int, obstacles ...core.Coord) *World {
	return NewWorld(core.NewBoard(size, nil, obstacles))
}

func mustSpawn(t *testing.T, w *World, p Player, c core.Coord) *Agent {
	t.Helper()
	a, err := w.Spawn(p, c, 50)
	if err != nil {
		t.Fatalf("Spawn(%v, %v) error: %v", p, c, err)
	}
	return a
}

func TestCanActIllegalTargets(t *testing.T) {
	w := openWorld(5, core.C(3, 2))
	a := mustSpawn(t, w, PlayerOne, core.C(2, 2))
	table := ActionTable{}

	tests := []struct {
		name   string
		target core.Coord
	}{
		{"own cell", core.C(2, 2)},
		{"diagonal", core.C(3, 3)},
		{"two away", core.C(2, 4)},
		{"obstacle", core.C(3, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if v := w.CanAct(a, tt.target, table); v.Kind != VerdictIllegal {
				t.Errorf("CanAct(%v) = %v, want illegal", tt.target, v)
			}
		})
	}

	edge := mustSpawn(t, w, PlayerOne, core.C(0, 0))
	if v := w.CanAct(edge, core.C(-1, 0), table); v.Kind != VerdictIllegal {
		t.Errorf("CanAct off the board = %v, want illegal", v)
	}
}

func TestCanActEmptyCell(t *testing.T) {
	w := openWorld(5)
	a := mustSpawn(t, w, PlayerOne, core.C(2, 2))

	if v := w.CanAct(a, core.C(2, 3), ActionTable{}); !v.OK() {
		t.Errorf("CanAct onto empty cell = %v, want ok", v)
	}
}

func TestCanActOccupant(t *testing.T) {
	tests := []struct {
		name     string
		occupant Decision
		want     VerdictKind
	}{
		{"guard", Guard(), VerdictGuardCollision},
		{"attack", Attack(core.C(1, 3)), VerdictBlockCollision},
		{"suicide", Suicide(), VerdictOK},
		{"move away", Move(core.C(2, 4)), VerdictOK},
		{"move into obstacle", Move(core.C(3, 3)), VerdictBlockCollision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := openWorld(5, core.C(3, 3))
			a := mustSpawn(t, w, PlayerOne, core.C(2, 2))
			b := mustSpawn(t, w, PlayerTwo, core.C(2, 3))
			table := ActionTable{a: Move(core.C(2, 3)), b: tt.occupant}

			v := w.CanAct(a, core.C(2, 3), table)
			if v.Kind != tt.want {
				t.Fatalf("CanAct = %v, want %v", v, tt.want)
			}
			if v.Kind == VerdictGuardCollision || v.Kind == VerdictBlockCollision {
				if len(v.Others) != 1 || v.Others[0] != b {
					t.Errorf("Others = %v, want [%v]", v.Others, b)
				}
			}
		})
	}
}

func TestCanActMissingDecisionGuards(t *testing.T) {
	w := openWorld(5)
	a := mustSpawn(t, w, PlayerOne, core.C(2, 2))
	mustSpawn(t, w, PlayerTwo, core.C(2, 3))

	if v := w.CanAct(a, core.C(2, 3), ActionTable{}); v.Kind != VerdictGuardCollision {
		t.Errorf("CanAct = %v, want guard collision", v)
	}
}

func TestCanActMoveCollision(t *testing.T) {
	w := openWorld(5)
	a := mustSpawn(t, w, PlayerOne, core.C(1, 2))
	b := mustSpawn(t, w, PlayerTwo, core.C(3, 2))
	c := mustSpawn(t, w, PlayerTwo, core.C(2, 1))
	target := core.C(2, 2)
	table := ActionTable{a: Move(target), b: Move(target), c: Move(target)}

	v := w.CanAct(a, target, table)
	if v.Kind != VerdictMoveCollision {
		t.Fatalf("CanAct = %v, want move collision", v)
	}
	if len(v.Others) != 2 {
		t.Fatalf("len(Others) = %d, want 2", len(v.Others))
	}
	for _, o := range v.Others {
		if o == a {
			t.Error("querying agent listed as its own contender")
		}
	}
}

func TestCanActChain(t *testing.T) {
	w := openWorld(6)
	a := mustSpawn(t, w, PlayerOne, core.C(1, 1))
	b := mustSpawn(t, w, PlayerOne, core.C(2, 1))
	c := mustSpawn(t, w, PlayerOne, core.C(3, 1))

	table := ActionTable{a: Move(core.C(2, 1)), b: Move(core.C(3, 1)), c: Move(core.C(4, 1))}
	if v := w.CanAct(a, core.C(2, 1), table); !v.OK() {
		t.Errorf("open chain: CanAct = %v, want ok", v)
	}

	table[c] = Guard()
	v := w.CanAct(a, core.C(2, 1), table)
	if v.Kind != VerdictBlockCollision || v.Others[0] != b {
		t.Errorf("stuck chain: CanAct = %v, want block collision by %v", v, b)
	}
}

func TestCanActRingCycle(t *testing.T) {
	w := openWorld(4)
	ring := []core.Coord{core.C(1, 1), core.C(2, 1), core.C(2, 2), core.C(1, 2)}
	agents := make([]*Agent, len(ring))
	table := ActionTable{}
	for i, c := range ring {
		agents[i] = mustSpawn(t, w, Players[i%2], c)
	}
	for i, a := range agents {
		table[a] = Move(ring[(i+1)%len(ring)])
	}

	for i, a := range agents {
		if v := w.CanAct(a, ring[(i+1)%len(ring)], table); !v.OK() {
			t.Errorf("agent %d: CanAct = %v, want ok", i, v)
		}
	}
}

func TestCanActSwap(t *testing.T) {
	w := openWorld(4)
	a := mustSpawn(t, w, PlayerOne, core.C(1, 1))
	b := mustSpawn(t, w, PlayerTwo, core.C(2, 1))
	table := ActionTable{a: Move(b.Location), b: Move(a.Location)}

	if v := w.CanAct(a, b.Location, table); !v.OK() {
		t.Errorf("CanAct(a) = %v, want ok", v)
	}
	if v := w.CanAct(b, a.Location, table); !v.OK() {
		t.Errorf("CanAct(b) = %v, want ok", v)
	}
}

func TestCanActIdempotent(t *testing.T) {
	w := openWorld(5)
	a := mustSpawn(t, w, PlayerOne, core.C(1, 2))
	b := mustSpawn(t, w, PlayerTwo, core.C(3, 2))
	g := mustSpawn(t, w, PlayerTwo, core.C(2, 3))
	table := ActionTable{a: Move(core.C(2, 2)), b: Move(core.C(2, 2)), g: Move(core.C(2, 4))}

	first := w.CanAct(a, core.C(2, 2), table)
	second := w.CanAct(a, core.C(2, 2), table)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("verdicts differ: %v then %v", first, second)
	}
}
