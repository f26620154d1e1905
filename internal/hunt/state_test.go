package hunt

import (
	"testing"

	"github.com/appengine-ltd/pokedex/internal/game"
)

func TestEveryOutcomeHasExactlyOneNextState(t *testing.T) {
	combat := map[CombatOutcome]State{
		CombatWin:  Catching,
		CombatLose: Fled,
		CombatQuit: Quit,
	}
	for out, want := range combat {
		if got := NextAfterCombat(out); got != want {
			t.Fatalf("combat %s: expected %s, got %s", out, want, got)
		}
	}

	catch := map[CatchOutcome]State{
		CatchCaught: Stabilizing,
		CatchFled:   Fled,
		CatchQuit:   Quit,
	}
	for out, want := range catch {
		if got := NextAfterCatch(out); got != want {
			t.Fatalf("catch %s: expected %s, got %s", out, want, got)
		}
	}

	stabilize := map[StabilizeOutcome]State{
		StabilizeCaught: Success,
		StabilizeFailed: Fled,
		StabilizeQuit:   Quit,
		StabilizeBack:   RegionSelection,
	}
	for out, want := range stabilize {
		if got := NextAfterStabilize(out); got != want {
			t.Fatalf("stabilize %s: expected %s, got %s", out, want, got)
		}
	}
}

func TestUnknownOutcomesQuit(t *testing.T) {
	if NextAfterCombat(CombatOutcome(99)) != Quit {
		t.Fatalf("expected unknown combat outcome to quit")
	}
	if NextAfterCatch(CatchOutcome(99)) != Quit {
		t.Fatalf("expected unknown catch outcome to quit")
	}
	if NextAfterStabilize(StabilizeOutcome(99)) != Quit {
		t.Fatalf("expected unknown stabilize outcome to quit")
	}
}

func TestStateNames(t *testing.T) {
	if RegionSelection.String() != "region_selection" || ExitToShell.String() != "exit_to_shell" {
		t.Fatalf("unexpected state names")
	}
	if State(42).String() != "unknown" {
		t.Fatalf("expected unknown state name")
	}
}

func TestCombatRegistry(t *testing.T) {
	reg := NewCombatRegistry(&fixedCombat{name: "qte"}, &fixedCombat{name: "dodge"}, &fixedCombat{name: "memory"})

	names := reg.Names()
	if len(names) != 3 || names[0] != "dodge" || names[2] != "qte" {
		t.Fatalf("expected sorted names, got %v", names)
	}

	a, _ := reg.Choose(game.SeededRNG(9))
	b, _ := reg.Choose(game.SeededRNG(9))
	if a.Name() != b.Name() {
		t.Fatalf("expected seeded choice to repeat, got %s and %s", a.Name(), b.Name())
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected duplicate registration to panic")
		}
	}()
	reg.Register(&fixedCombat{name: "qte"})
}

func TestEmptyRegistryChoosesNothing(t *testing.T) {
	if _, ok := NewCombatRegistry().Choose(game.SeededRNG(1)); ok {
		t.Fatalf("expected empty registry to choose nothing")
	}
}

func TestMessageExpiry(t *testing.T) {
	app := &AppState{}
	app.SetMessage("hello", 1000)
	if !app.Message.Active(2999) {
		t.Fatalf("expected message active before expiry")
	}
	if app.Message.Active(3000) {
		t.Fatalf("expected message expired at 2000ms")
	}
}
