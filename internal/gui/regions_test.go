package gui

import (
	"testing"

	"github.com/appengine-ltd/pokedex/internal/input"
)

func TestGridCursorWraps(t *testing.T) {
	g := gridCursor{Index: 0, Cols: 3, N: 9}
	g.Update(frame([]input.Action{input.Up}))
	if g.Index != 6 {
		t.Fatalf("expected wrap to bottom row, got %d", g.Index)
	}
	g.Update(frame([]input.Action{input.Left}))
	if g.Index != 8 {
		t.Fatalf("expected wrap to last column, got %d", g.Index)
	}
	g.Update(frame([]input.Action{input.Right}))
	if g.Index != 6 {
		t.Fatalf("expected wrap to first column, got %d", g.Index)
	}
	g.Update(frame([]input.Action{input.Down}))
	if g.Index != 0 {
		t.Fatalf("expected wrap to top row, got %d", g.Index)
	}
}

func TestGridCursorPartialLastRow(t *testing.T) {
	g := gridCursor{Index: 2, Cols: 3, N: 7}
	g.Update(frame([]input.Action{input.Down}))
	g.Update(frame([]input.Action{input.Down}))
	if g.Index != 6 {
		t.Fatalf("expected snap to the last region, got %d", g.Index)
	}
	g.Update(frame(nil))
	if g.Index != 6 {
		t.Fatalf("expected no move without input")
	}

	empty := gridCursor{Cols: 3}
	empty.Update(frame([]input.Action{input.Down}))
	if empty.Index != 0 {
		t.Fatalf("expected empty grid to stay put")
	}
}

func TestGridCellLayout(t *testing.T) {
	x0, y0 := gridCell(0, 480)
	if x0 != 95 || y0 != gridTop {
		t.Fatalf("expected first cell at 95,%d, got %v,%v", gridTop, x0, y0)
	}
	x4, y4 := gridCell(4, 480)
	if x4 != 195 || y4 != gridTop+gridIcon+gridPadding {
		t.Fatalf("unexpected center cell %v,%v", x4, y4)
	}
}
