package gui

import (
	"testing"

	"github.com/appengine-ltd/pokedex/internal/input"
)

func frame(pressed []input.Action, held ...input.Action) input.Frame {
	var f input.Frame
	for _, a := range pressed {
		f.Press(a)
	}
	for _, a := range held {
		f.Hold(a)
	}
	return f
}

// holdDown presses DOWN at 0 and keeps it held in 10ms frames until end.
func holdDown(c *listCursor, n int, end int64) {
	c.Update(frame([]input.Action{input.Down}), n, 0)
	for now := int64(10); now <= end; now += 10 {
		c.Update(frame(nil, input.Down), n, now)
	}
}

func TestListCursorRepeatsAfterInitialDelay(t *testing.T) {
	c := &listCursor{Visible: 10}
	holdDown(c, 500, 200)
	if c.Index != 1 {
		t.Fatalf("expected only the press to move within 200ms, got %d", c.Index)
	}

	c = &listCursor{Visible: 10}
	holdDown(c, 500, 1000)
	// Repeats at 210, 420, 630, 840.
	if c.Index != 5 {
		t.Fatalf("expected 5 after holding 1s, got %d", c.Index)
	}
}

func TestListCursorAcceleratesAfterTwoSeconds(t *testing.T) {
	slow := &listCursor{Visible: 10}
	holdDown(slow, 1000, 2000)
	fast := &listCursor{Visible: 10}
	holdDown(fast, 1000, 3000)
	gained := fast.Index - slow.Index
	if gained < 15 {
		t.Fatalf("expected fast repeat after 2s, gained only %d in the last second", gained)
	}
}

func TestListCursorStopsOnRelease(t *testing.T) {
	c := &listCursor{Visible: 10}
	holdDown(c, 500, 1000)
	at := c.Index
	for now := int64(1010); now < 2000; now += 10 {
		c.Update(input.Frame{}, 500, now)
	}
	if c.Index != at {
		t.Fatalf("expected no movement after release, moved from %d to %d", at, c.Index)
	}
}

func TestListCursorPageJumpsClamp(t *testing.T) {
	c := &listCursor{Visible: 10}
	c.Update(frame([]input.Action{input.Right}), 120, 0)
	if c.Index != 50 || c.Offset != 41 {
		t.Fatalf("expected index 50 offset 41, got %d/%d", c.Index, c.Offset)
	}
	c.Update(frame([]input.Action{input.Right}), 120, 10)
	c.Update(frame([]input.Action{input.Right}), 120, 20)
	if c.Index != 119 {
		t.Fatalf("expected clamp at the last row, got %d", c.Index)
	}
	c.Update(frame([]input.Action{input.Left}), 120, 30)
	if c.Index != 69 || c.Offset != 69 {
		t.Fatalf("expected index and offset 69, got %d/%d", c.Index, c.Offset)
	}
	for i := 0; i < 3; i++ {
		c.Update(frame([]input.Action{input.Left}), 120, 40)
	}
	if c.Index != 0 || c.Offset != 0 {
		t.Fatalf("expected clamp at top, got %d/%d", c.Index, c.Offset)
	}
}

func TestListCursorJumpCenters(t *testing.T) {
	c := &listCursor{Visible: 10}
	c.Jump(100, 151)
	if c.Index != 100 || c.Offset != 95 {
		t.Fatalf("expected centered jump, got %d/%d", c.Index, c.Offset)
	}
	c.Jump(98, 151)
	if c.Offset != 95 {
		t.Fatalf("expected no scroll for a visible row, got %d", c.Offset)
	}
	c.Jump(5, 0)
	if c.Index != 0 {
		t.Fatalf("expected empty list to reset, got %d", c.Index)
	}
}
