package gui

import "github.com/appengine-ltd/pokedex/internal/input"

const (
	scrollDelay      = 200
	scrollFastDelay  = 50
	scrollAccelAfter = 2000
	pageJump         = 50
)

// listCursor is the catalog list selection. Holding UP or DOWN repeats after
// scrollDelay, and speeds up to scrollFastDelay once held for
// scrollAccelAfter.
type listCursor struct {
	Index   int
	Offset  int
	Visible int

	heldDir   int
	heldSince int64
	lastStep  int64
}

func (c *listCursor) Update(f input.Frame, n int, now int64) {
	switch {
	case f.Pressed(input.Down):
		c.heldDir, c.heldSince, c.lastStep = 1, now, now
		c.move(1, n)
	case f.Pressed(input.Up):
		c.heldDir, c.heldSince, c.lastStep = -1, now, now
		c.move(-1, n)
	case f.Pressed(input.Left):
		c.move(-pageJump, n)
	case f.Pressed(input.Right):
		c.move(pageJump, n)
	}

	if (c.heldDir == 1 && !f.Held(input.Down)) || (c.heldDir == -1 && !f.Held(input.Up)) {
		c.heldDir = 0
	}
	if c.heldDir == 0 {
		return
	}
	elapsed := now - c.heldSince
	delay := int64(scrollDelay)
	if elapsed >= scrollAccelAfter {
		delay = scrollFastDelay
	}
	if elapsed > scrollDelay && now-c.lastStep > delay {
		c.move(c.heldDir, n)
		c.lastStep = now
	}
}

func (c *listCursor) move(delta, n int) {
	if n == 0 {
		c.Index, c.Offset = 0, 0
		return
	}
	c.Index = min(max(c.Index+delta, 0), n-1)
	c.reveal()
}

// reveal scrolls the minimum needed to keep Index visible.
func (c *listCursor) reveal() {
	if c.Visible <= 0 {
		return
	}
	if c.Index < c.Offset {
		c.Offset = c.Index
	}
	if c.Index >= c.Offset+c.Visible {
		c.Offset = c.Index - c.Visible + 1
	}
}

// Jump selects i and centers it when it was off screen.
func (c *listCursor) Jump(i, n int) {
	if n == 0 {
		c.Index, c.Offset = 0, 0
		return
	}
	c.Index = min(max(i, 0), n-1)
	if c.Index < c.Offset || c.Index >= c.Offset+c.Visible {
		c.Offset = max(0, c.Index-c.Visible/2)
	}
}
