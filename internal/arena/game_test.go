package arena

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/robot-arena/internal/config"
	"github.com/vovakirdan/robot-arena/internal/core"
)

// script answers with a fixed decision per starting cell and guards elsewhere.
type script map[core.Coord]Decision

func (s script) Act(_ context.Context, _ TurnView, self AgentInfo) (Decision, error) {
	if d, ok := s[self.Location]; ok {
		return d, nil
	}
	return Guard(), nil
}

func testSettings() config.Settings {
	s := config.DefaultSettings()
	s.AttackRange = [2]int{15, 15}
	s.SpawnEvery = 1000
	s.DecisionTimeoutMS = 0
	return s
}

func newTestGame(t *testing.T, s config.Settings, board *core.Board, p1, p2 Provider, opts ...Option) *Game {
	t.Helper()
	opts = append([]Option{WithSeed(1)}, opts...)
	g, err := NewGame(s, board, [2]Provider{p1, p2}, opts...)
	if err != nil {
		t.Fatalf("NewGame() error: %v", err)
	}
	return g
}

func runTurn(t *testing.T, g *Game) TurnReport {
	t.Helper()
	report, err := g.RunTurn(context.Background())
	if err != nil {
		t.Fatalf("RunTurn() error: %v", err)
	}
	checkGrid(t, g.World())
	return report
}

// checkGrid verifies every agent sits in its own grid slot and no slot holds
// a stranger.
func checkGrid(t *testing.T, w *World) {
	t.Helper()
	seen := make(map[core.Coord]*Agent)
	for _, a := range w.Agents() {
		if other, dup := seen[a.Location]; dup {
			t.Fatalf("agents %v and %v share %v", other, a, a.Location)
		}
		seen[a.Location] = a
		if got := w.AgentAt(a.Location); got != a {
			t.Fatalf("grid at %v holds %v, want %v", a.Location, got, a)
		}
	}
	size := w.Board().Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := core.C(x, y)
			if a := w.AgentAt(c); a != nil && seen[c] != a {
				t.Fatalf("grid at %v holds stale agent %v", c, a)
			}
		}
	}
}

func TestMoveIntoGuard(t *testing.T) {
	s := testSettings()
	board := core.NewBoard(5, nil, nil)
	p1 := script{core.C(2, 2): Move(core.C(2, 3))}
	g := newTestGame(t, s, board, p1, script{})

	a := mustSpawn(t, g.World(), PlayerOne, core.C(2, 2))
	b := mustSpawn(t, g.World(), PlayerTwo, core.C(2, 3))
	runTurn(t, g)

	if a.Location != core.C(2, 2) {
		t.Errorf("mover at %v, want (2,2)", a.Location)
	}
	if a.HP != 50-s.CollisionDamage {
		t.Errorf("mover HP = %d, want %d", a.HP, 50-s.CollisionDamage)
	}
	if b.HP != 50 {
		t.Errorf("guard HP = %d, want 50", b.HP)
	}
}

func TestMoveIntoFriendlyGuard(t *testing.T) {
	g := newTestGame(t, testSettings(), core.NewBoard(5, nil, nil), script{core.C(2, 2): Move(core.C(2, 3))}, script{})
	a := mustSpawn(t, g.World(), PlayerOne, core.C(2, 2))
	mustSpawn(t, g.World(), PlayerOne, core.C(2, 3))
	runTurn(t, g)

	if a.HP != 50 || a.Location != core.C(2, 2) {
		t.Errorf("mover = %d HP at %v, want 50 HP at (2,2)", a.HP, a.Location)
	}
}

func TestMoveCollisionIsSymmetric(t *testing.T) {
	s := testSettings()
	target := core.C(2, 2)
	p1 := script{core.C(1, 2): Move(target)}
	p2 := script{core.C(3, 2): Move(target)}
	g := newTestGame(t, s, core.NewBoard(5, nil, nil), p1, p2)

	a := mustSpawn(t, g.World(), PlayerOne, core.C(1, 2))
	b := mustSpawn(t, g.World(), PlayerTwo, core.C(3, 2))
	report := runTurn(t, g)

	for _, ag := range []*Agent{a, b} {
		if ag.HP != 50-s.CollisionDamage {
			t.Errorf("%v HP = %d, want %d", ag, ag.HP, 50-s.CollisionDamage)
		}
	}
	if a.Location != core.C(1, 2) || b.Location != core.C(3, 2) {
		t.Errorf("contenders moved: %v, %v", a.Location, b.Location)
	}
	if report.Moved != 0 {
		t.Errorf("Moved = %d, want 0", report.Moved)
	}
}

func TestSwapAndChain(t *testing.T) {
	p1 := script{
		core.C(1, 1): Move(core.C(2, 1)),
		core.C(1, 3): Move(core.C(2, 3)),
		core.C(2, 3): Move(core.C(3, 3)),
	}
	p2 := script{core.C(2, 1): Move(core.C(1, 1))}
	g := newTestGame(t, testSettings(), core.NewBoard(5, nil, nil), p1, p2)
	w := g.World()

	a := mustSpawn(t, w, PlayerOne, core.C(1, 1))
	b := mustSpawn(t, w, PlayerTwo, core.C(2, 1))
	c := mustSpawn(t, w, PlayerOne, core.C(1, 3))
	d := mustSpawn(t, w, PlayerOne, core.C(2, 3))
	report := runTurn(t, g)

	want := map[*Agent]core.Coord{a: core.C(2, 1), b: core.C(1, 1), c: core.C(2, 3), d: core.C(3, 3)}
	for ag, loc := range want {
		if ag.Location != loc {
			t.Errorf("agent #%d at %v, want %v", ag.ID, ag.Location, loc)
		}
		if ag.HP != 50 {
			t.Errorf("agent #%d HP = %d, want 50", ag.ID, ag.HP)
		}
	}
	if report.Moved != 4 {
		t.Errorf("Moved = %d, want 4", report.Moved)
	}
}

func TestAttack(t *testing.T) {
	tests := []struct {
		name   string
		target Decision
		wantHP int
	}{
		{"guard takes half", Guard(), 50 - 7},
		{"attacker takes full", Attack(core.C(2, 4)), 50 - 15},
		{"fleeing target escapes", Move(core.C(3, 3)), 50},
		{"mover into attacker", Move(core.C(2, 2)), 50 - 15 - 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p1 := script{core.C(2, 2): Attack(core.C(2, 3))}
			p2 := script{core.C(2, 3): tt.target}
			g := newTestGame(t, testSettings(), core.NewBoard(5, nil, nil), p1, p2)
			mustSpawn(t, g.World(), PlayerOne, core.C(2, 2))
			b := mustSpawn(t, g.World(), PlayerTwo, core.C(2, 3))
			runTurn(t, g)

			if b.HP != tt.wantHP {
				t.Errorf("target HP = %d, want %d", b.HP, tt.wantHP)
			}
		})
	}
}

func TestAttackContenders(t *testing.T) {
	target := core.C(2, 2)
	p1 := script{core.C(2, 1): Attack(target), core.C(1, 2): Move(target)}
	p2 := script{core.C(3, 2): Move(target)}
	g := newTestGame(t, testSettings(), core.NewBoard(5, nil, nil), p1, p2)
	w := g.World()
	mustSpawn(t, w, PlayerOne, core.C(2, 1))
	friend := mustSpawn(t, w, PlayerOne, core.C(1, 2))
	foe := mustSpawn(t, w, PlayerTwo, core.C(3, 2))
	runTurn(t, g)

	// each mover is charged collision damage by the other; the foe also takes the hit
	if foe.HP != 50-5-15 {
		t.Errorf("foe HP = %d, want %d", foe.HP, 50-5-15)
	}
	if friend.HP != 50-5 {
		t.Errorf("friend HP = %d, want %d", friend.HP, 50-5)
	}
}

func TestAttackEmptyCell(t *testing.T) {
	p1 := script{core.C(2, 2): Attack(core.C(2, 3))}
	g := newTestGame(t, testSettings(), core.NewBoard(5, nil, nil), p1, script{})
	w := g.World()
	a := mustSpawn(t, w, PlayerOne, core.C(2, 2))
	b := mustSpawn(t, w, PlayerTwo, core.C(0, 0))
	report := runTurn(t, g)

	if a.HP != 50 || b.HP != 50 {
		t.Errorf("HP = %d, %d, want 50, 50", a.HP, b.HP)
	}
	if report.Damage != [2]int{} {
		t.Errorf("Damage = %v, want none", report.Damage)
	}
}

func TestSuicide(t *testing.T) {
	s := testSettings()
	center := core.C(2, 2)
	p1 := script{center: Suicide()}
	p2 := script{
		core.C(2, 3): Attack(core.C(2, 4)),
		core.C(3, 2): Attack(core.C(4, 2)),
	}
	g := newTestGame(t, s, core.NewBoard(5, nil, nil), p1, p2)
	w := g.World()

	bomber := mustSpawn(t, w, PlayerOne, center)
	e1 := mustSpawn(t, w, PlayerTwo, core.C(2, 3))
	e2 := mustSpawn(t, w, PlayerTwo, core.C(3, 2))
	guard := mustSpawn(t, w, PlayerTwo, core.C(2, 1))
	friend := mustSpawn(t, w, PlayerOne, core.C(1, 2))
	far := mustSpawn(t, w, PlayerTwo, core.C(4, 4))
	report := runTurn(t, g)

	if bomber.HP != 0 {
		t.Errorf("bomber HP = %d, want 0", bomber.HP)
	}
	if w.AgentAt(center) != nil {
		t.Error("bomber still on the board")
	}
	if report.Killed[PlayerOne] != 1 {
		t.Errorf("Killed = %v, want one for %v", report.Killed, PlayerOne)
	}
	for _, e := range []*Agent{e1, e2} {
		if e.HP != 50-s.SuicideDamage {
			t.Errorf("enemy #%d HP = %d, want %d", e.ID, e.HP, 50-s.SuicideDamage)
		}
	}
	if guard.HP != 50-s.SuicideDamage/2 {
		t.Errorf("guarding enemy HP = %d, want %d", guard.HP, 50-s.SuicideDamage/2)
	}
	if friend.HP != 50 || far.HP != 50 {
		t.Errorf("bystanders HP = %d, %d, want 50, 50", friend.HP, far.HP)
	}
}

func TestMoveIntoSuicideCell(t *testing.T) {
	p1 := script{core.C(2, 2): Move(core.C(2, 3))}
	p2 := script{core.C(2, 3): Suicide()}
	g := newTestGame(t, testSettings(), core.NewBoard(5, nil, nil), p1, p2)
	a := mustSpawn(t, g.World(), PlayerOne, core.C(2, 2))
	mustSpawn(t, g.World(), PlayerTwo, core.C(2, 3))
	runTurn(t, g)

	if a.Location != core.C(2, 3) {
		t.Errorf("mover at %v, want (2,3)", a.Location)
	}
}

func TestRespawnCycle(t *testing.T) {
	s := testSettings()
	s.SpawnEvery = 3
	s.SpawnPerPlayer = 2
	spawns := []core.Coord{core.C(0, 0), core.C(1, 0), core.C(2, 0), core.C(3, 0), core.C(4, 0), core.C(0, 4)}
	board := core.NewBoard(5, spawns, nil)
	g := newTestGame(t, s, board, script{}, script{})

	if _, err := g.World().Spawn(PlayerTwo, core.C(2, 0), s.RobotHP); err != nil {
		t.Fatalf("Spawn() error: %v", err)
	}
	keeper := mustSpawn(t, g.World(), PlayerOne, core.C(2, 2))

	report := runTurn(t, g)
	if report.Cleared != [2]int{0, 1} {
		t.Errorf("Cleared = %v, want [0 1]", report.Cleared)
	}
	if report.Spawned != [2]int{2, 2} {
		t.Errorf("Spawned = %v, want [2 2]", report.Spawned)
	}
	if got := g.Scores(); got != [2]int{3, 2} {
		t.Errorf("Scores() = %v, want [3 2]", got)
	}
	for _, a := range g.World().Agents() {
		if a != keeper && !board.IsSpawn(a.Location) {
			t.Errorf("spawned agent at %v, not a spawn cell", a.Location)
		}
		if a != keeper && a.HP != s.RobotHP {
			t.Errorf("spawned agent HP = %d, want %d", a.HP, s.RobotHP)
		}
	}

	for turn := 1; turn < 3; turn++ {
		if r := runTurn(t, g); r.Spawned != [2]int{} {
			t.Errorf("turn %d: Spawned = %v, want none", turn, r.Spawned)
		}
	}

	report = runTurn(t, g)
	if report.Cleared != [2]int{2, 2} {
		t.Errorf("second cycle: Cleared = %v, want [2 2]", report.Cleared)
	}
	if got := g.Scores(); got != [2]int{3, 2} {
		t.Errorf("second cycle: Scores() = %v, want [3 2]", got)
	}
}

type faultyProvider struct {
	mode string
}

func (f faultyProvider) Act(ctx context.Context, _ TurnView, _ AgentInfo) (Decision, error) {
	switch f.mode {
	case "panic":
		panic("boom")
	case "invalid":
		return Decision{}, nil
	case "error":
		return Decision{}, errors.New("no idea")
	case "slow":
		<-ctx.Done()
		return Move(core.C(0, 1)), nil
	}
	return Guard(), nil
}

func TestProviderFaultsForceGuard(t *testing.T) {
	tests := []struct {
		mode    string
		check   func(error) bool
		timeout int
	}{
		{"panic", func(err error) bool { var pe *ProviderPanicError; return errors.As(err, &pe) }, 0},
		{"invalid", func(err error) bool { return errors.Is(err, ErrInvalidDecision) }, 0},
		{"error", func(err error) bool { return err != nil }, 0},
		{"slow", func(err error) bool { return errors.Is(err, ErrProviderTimeout) }, 10},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			s := testSettings()
			s.DecisionTimeoutMS = tt.timeout
			p2 := script{core.C(0, 1): Move(core.C(0, 0))}
			g := newTestGame(t, s, core.NewBoard(3, nil, nil), faultyProvider{mode: tt.mode}, p2)
			a := mustSpawn(t, g.World(), PlayerOne, core.C(0, 0))
			b := mustSpawn(t, g.World(), PlayerTwo, core.C(0, 1))

			report := runTurn(t, g)
			if len(report.Faults) != 1 {
				t.Fatalf("len(Faults) = %d, want 1", len(report.Faults))
			}
			f := report.Faults[0]
			if f.AgentID != a.ID || !tt.check(f.Err) {
				t.Errorf("fault = %+v", f)
			}
			// the faulty robot guards, so the enemy bumps into it
			if b.HP != 50-5 || a.HP != 50 {
				t.Errorf("HP = %d, %d, want 50, 45", a.HP, b.HP)
			}
		})
	}
}

type countingNotifier struct {
	script
	turns []int
}

func (c *countingNotifier) OnNewTurn(turn int) { c.turns = append(c.turns, turn) }

func TestTurnLifecycle(t *testing.T) {
	s := testSettings()
	s.MaxTurns = 3
	n := &countingNotifier{script: script{}}
	g := newTestGame(t, s, core.NewBoard(3, nil, nil), n, script{}, WithHistory())
	mustSpawn(t, g.World(), PlayerOne, core.C(1, 1))

	for i := 0; i < 3; i++ {
		if g.Done() {
			t.Fatalf("Done() after %d turns", i)
		}
		runTurn(t, g)
	}
	if !g.Done() || g.Phase() != PhaseTerminated {
		t.Errorf("Done() = %v, Phase() = %v after max turns", g.Done(), g.Phase())
	}
	if _, err := g.RunTurn(context.Background()); !errors.Is(err, ErrGameOver) {
		t.Errorf("RunTurn() after end error = %v, want ErrGameOver", err)
	}
	if len(n.turns) != 3 || n.turns[2] != 2 {
		t.Errorf("notified turns = %v, want [0 1 2]", n.turns)
	}

	h := g.History()
	if len(h) != 3 {
		t.Fatalf("len(History()) = %d, want 3", len(h))
	}
	if rec := h[1]; rec.Turn != 1 || len(rec.Players[PlayerOne]) != 1 || len(rec.Players[PlayerTwo]) != 0 {
		t.Errorf("History()[1] = %+v", rec)
	}
	if got := h.Scores()[2]; got != [2]int{1, 0} {
		t.Errorf("History().Scores()[2] = %v, want [1 0]", got)
	}
}

func TestViewIsSnapshot(t *testing.T) {
	var seen []int
	p1 := ProviderFunc(func(_ context.Context, view TurnView, self AgentInfo) (Decision, error) {
		seen = append(seen, len(view.Agents))
		// scribbling on the view must not leak into the next robot's view
		view.Agents[core.C(9, 9)] = self
		return Move(self.Location.Add(1, 0)), nil
	})
	g := newTestGame(t, testSettings(), core.NewBoard(5, nil, nil), p1, script{})
	mustSpawn(t, g.World(), PlayerOne, core.C(0, 0))
	mustSpawn(t, g.World(), PlayerOne, core.C(0, 2))
	mustSpawn(t, g.World(), PlayerTwo, core.C(4, 4))
	runTurn(t, g)

	if len(seen) != 2 || seen[0] != 3 || seen[1] != 3 {
		t.Errorf("view sizes = %v, want [3 3]", seen)
	}
}

// TestRandomPlayKeepsGridConsistent plays random decisions on the default map.
func TestRandomPlayKeepsGridConsistent(t *testing.T) {
	m, err := config.LoadMap(config.DefaultMapName)
	if err != nil {
		t.Fatalf("LoadMap() error: %v", err)
	}
	s := testSettings()
	s.SpawnEvery = 10
	s.AttackRange = [2]int{8, 12}
	board, err := m.Board(s.BoardSize, s.SpawnPerPlayer)
	if err != nil {
		t.Fatalf("Board() error: %v", err)
	}

	rng := rand.New(rand.NewSource(7))
	random := ProviderFunc(func(_ context.Context, view TurnView, self AgentInfo) (Decision, error) {
		cells := view.Board.Neighbors(self.Location, 0)
		target := cells[rng.Intn(len(cells))]
		switch rng.Intn(10) {
		case 0:
			return Suicide(), nil
		case 1, 2:
			return Guard(), nil
		case 3, 4, 5:
			return Attack(target), nil
		default:
			return Move(target), nil
		}
	})

	g := newTestGame(t, s, board, random, random)
	deadline := time.Now().Add(5 * time.Second)
	for !g.Done() && time.Now().Before(deadline) {
		runTurn(t, g)
	}
	if g.Turn() != s.MaxTurns {
		t.Errorf("Turn() = %d, want %d", g.Turn(), s.MaxTurns)
	}
}
