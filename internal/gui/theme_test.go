package gui

import (
	"testing"

	"github.com/appengine-ltd/pokedex/internal/catalog"
	"github.com/appengine-ltd/pokedex/internal/hunt"
	"github.com/appengine-ltd/pokedex/internal/i18n"
)

func TestCreatureLabelHidesUnseenNames(t *testing.T) {
	p := i18n.Printer(i18n.Resolve("en"))
	if got := creatureLabel(catalog.Creature{ID: 25, Name: "Pikachu", Seen: true}, p); got != "#025 Pikachu" {
		t.Fatalf("expected seen label, got %q", got)
	}
	if got := creatureLabel(catalog.Creature{ID: 150, Name: "Mewtwo"}, p); got != "#150 ???" {
		t.Fatalf("expected hidden label, got %q", got)
	}
}

func TestCreatureMark(t *testing.T) {
	if creatureMark(catalog.Creature{Caught: true, IsShiny: true}) != "*" {
		t.Fatalf("expected shiny mark")
	}
	if creatureMark(catalog.Creature{Caught: true}) != "+" {
		t.Fatalf("expected caught mark")
	}
	if creatureMark(catalog.Creature{Seen: true}) != "" {
		t.Fatalf("expected no mark for seen only")
	}
}

func TestWrapText(t *testing.T) {
	measure := func(s string) int32 { return int32(len(s)) }
	got := wrapText("the quick brown fox jumps", 10, measure)
	want := []string{"the quick", "brown fox", "jumps"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if wrapText("   ", 10, measure) != nil {
		t.Fatalf("expected no lines for blank text")
	}
}

func TestStatsLineShowsSeenAndBonus(t *testing.T) {
	app := &hunt.AppState{
		Catalog: catalog.View{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}},
		Stats:   hunt.Stats{Seen: 3, Caught: 2, Shiny: 1, RegionsUnlocked: 1},
	}
	fr := i18n.Printer(i18n.Resolve("fr"))
	if got := statsLine(app, 9, fr); got != "Vus 3/4  Capturés 2  Chromatiques 1  Régions 1/9" {
		t.Fatalf("unexpected header %q", got)
	}
	app.Bonus = true
	en := i18n.Printer(i18n.Resolve("en"))
	if got := statsLine(app, 9, en); got != "Seen 3/4  Caught 2  Shiny 1  Regions 1/9  Bonus!" {
		t.Fatalf("unexpected header %q", got)
	}
}
