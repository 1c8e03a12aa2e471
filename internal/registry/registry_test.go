package registry

import (
	"context"
	"strings"
	"testing"

	"github.com/vovakirdan/robot-arena/internal/arena"
)

type stubBot struct{ id string }

func (b stubBot) ID() string    { return b.id }
func (b stubBot) Title() string { return "stub " + b.id }
func (b stubBot) Act(context.Context, arena.TurnView, arena.AgentInfo) (arena.Decision, error) {
	return arena.Guard(), nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func(int64) Bot { return stubBot{id: "zz-stub"} })

	if !Exists("zz-stub") {
		t.Fatal("Exists(zz-stub) = false after Register")
	}
	bot, err := Create("zz-stub", 1)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if bot.ID() != "zz-stub" {
		t.Errorf("ID() = %q, want zz-stub", bot.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-stub" {
			found = info.Title == "stub zz-stub"
		}
	}
	if !found {
		t.Errorf("List() = %v, missing zz-stub with its title", List())
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func(int64) Bot { return stubBot{id: "zz-dup"} })

	defer func() {
		r := recover()
		if r == nil || !strings.Contains(r.(string), "already registered") {
			t.Errorf("recover() = %v, want duplicate panic", r)
		}
	}()
	Register("zz-dup", func(int64) Bot { return stubBot{id: "zz-dup"} })
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-bot", 0); err == nil {
		t.Error("Create(no-such-bot) should fail")
	}
}
