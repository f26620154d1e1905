package main

import (
	"strings"
	"testing"

	"github.com/appengine-ltd/pokedex/internal/game"
)

func TestRegionsDocListsUnlockCounts(t *testing.T) {
	doc := generateRegionsDoc(game.DefaultProgression())
	if !strings.Contains(doc.Content, "| Kanto | 1-151 | 151 | 0 |") {
		t.Fatalf("expected Kanto row, got:\n%s", doc.Content)
	}
	if !strings.Contains(doc.Content, "| Johto | 152-251 | 100 | 75 |") {
		t.Fatalf("expected Johto row, got:\n%s", doc.Content)
	}
}

func TestThresholdsDocHasOneRowPerThreshold(t *testing.T) {
	prog := game.DefaultProgression()
	doc := generateThresholdsDoc(prog)
	rows := strings.Count(doc.Content, "\n| ") - 2
	if rows != len(prog.Thresholds) {
		t.Fatalf("expected %d rows, got %d", len(prog.Thresholds), rows)
	}
}

func TestIndexLinksFiles(t *testing.T) {
	prog := game.DefaultProgression()
	index := generateIndex([]docFile{{Name: "regions.md", Title: "Regions"}}, prog)
	if !strings.Contains(index, "- [Regions](./regions.md)") {
		t.Fatalf("expected link, got:\n%s", index)
	}
	if !strings.Contains(index, "#001, #004, #007") {
		t.Fatalf("expected starter ids, got:\n%s", index)
	}
}

func TestEscapePipes(t *testing.T) {
	if got := escape(" a|b "); got != `a\|b` {
		t.Fatalf("expected escaped pipe, got %q", got)
	}
}
