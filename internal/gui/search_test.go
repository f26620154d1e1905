package gui

import (
	"testing"

	"github.com/appengine-ltd/pokedex/internal/catalog"
	"github.com/appengine-ltd/pokedex/internal/lookup"
)

func TestSearchTypesAndSubmits(t *testing.T) {
	idx := lookup.NewIndex([]catalog.Creature{
		{ID: 25, Name: "Pikachu"},
		{ID: 26, Name: "Raichu"},
	})
	var s searchState
	s.Open()
	for _, r := range "rai" {
		s.Type(r, idx)
	}
	if s.Query != "rai" || len(s.Matches) != 1 || s.Matches[0].ID != 26 {
		t.Fatalf("unexpected search state %+v", s)
	}
	s.Type('\n', idx)
	if s.Query != "rai" {
		t.Fatalf("expected control characters ignored, got %q", s.Query)
	}
	id, ok := s.Submit()
	if !ok || id != 26 {
		t.Fatalf("expected jump to 26, got %d %v", id, ok)
	}
	if s.Active || s.Query != "" {
		t.Fatalf("expected prompt closed after submit")
	}
}

func TestSearchBackspaceAndEmptySubmit(t *testing.T) {
	idx := lookup.NewIndex([]catalog.Creature{{ID: 1, Name: "Bulbizarre"}})
	var s searchState
	s.Open()
	s.Backspace(idx)
	s.Type('x', idx)
	s.Backspace(idx)
	if s.Query != "" || len(s.Matches) != 0 {
		t.Fatalf("expected empty query, got %+v", s)
	}
	if _, ok := s.Submit(); ok {
		t.Fatalf("expected empty search to jump nowhere")
	}
}
