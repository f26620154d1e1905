package export

import (
	"bytes"
	"testing"

	"github.com/appengine-ltd/pokedex/internal/catalog"
	"github.com/appengine-ltd/pokedex/internal/game"
)

func creatures(from, to int) []catalog.Creature {
	var out []catalog.Creature
	for id := from; id <= to; id++ {
		out = append(out, catalog.Creature{ID: id, Name: "Salamèche", Seen: id%2 == 0, Caught: id%3 == 0, IsShiny: id == 6})
	}
	return out
}

func TestGroupFilesByRegion(t *testing.T) {
	prog := game.DefaultProgression()
	got := Group([]catalog.Creature{{ID: 1}, {ID: 152}, {ID: 151}, {ID: 5000}}, prog.Regions)
	if len(got) != 3 {
		t.Fatalf("expected 3 sections, got %+v", got)
	}
	if got[0].Region != "Kanto" || len(got[0].Creatures) != 2 {
		t.Fatalf("expected two Kanto entries, got %+v", got[0])
	}
	if got[1].Region != "Johto" || got[2].Region != "Other" {
		t.Fatalf("unexpected section order %s %s", got[1].Region, got[2].Region)
	}
}

func TestEntryLabel(t *testing.T) {
	c := catalog.Creature{ID: 4, Name: "Salamèche"}
	if got := EntryLabel(c, false); got != "#004 ???" {
		t.Fatalf("expected hidden name, got %q", got)
	}
	if got := EntryLabel(c, true); got != "#004 Salamèche" {
		t.Fatalf("expected revealed name, got %q", got)
	}
	c.Caught, c.IsShiny = true, true
	if got := EntryLabel(c, false); got != "#004 Salamèche *" {
		t.Fatalf("expected shiny star, got %q", got)
	}
}

func TestChecklistReturnsPDF(t *testing.T) {
	prog := game.DefaultProgression()
	b, err := Checklist(Group(creatures(1, 400), prog.Regions), Options{Title: "Pokédex de Red"})
	if err != nil {
		t.Fatalf("checklist: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if !bytes.Contains(b, []byte("/Count 3")) {
		t.Fatalf("expected 400 entries to span three pages")
	}
}

func TestChecklistEmpty(t *testing.T) {
	b, err := Checklist(nil, Options{})
	if err != nil {
		t.Fatalf("checklist: %v", err)
	}
	if len(b) < 100 {
		t.Fatalf("PDF too short: %d bytes", len(b))
	}
}
