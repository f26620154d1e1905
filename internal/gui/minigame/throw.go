package minigame

import (
	"github.com/appengine-ltd/pokedex/internal/hunt"
	"github.com/appengine-ltd/pokedex/internal/input"
)

const (
	throwAimSpeed  = float32(5)
	throwBallSpeed = float32(10)
	throwBallSize  = float32(24)
)

// Throw sweeps the ball up and down the left edge until CONFIRM launches it
// toward the creature. A launched ball either hits or leaves the screen.
type Throw struct {
	Ball     box
	Target   box
	Launched bool

	width, height float32
	aim           float32
	done          bool
	outcome       hunt.CatchOutcome
}

func NewThrow(width, height, spriteSize float32) *Throw {
	return &Throw{
		Ball:   box{X: 0, Y: height / 2, W: throwBallSize, H: throwBallSize},
		Target: box{X: width/2 - spriteSize/2, Y: height/2 - spriteSize/2, W: spriteSize, H: spriteSize},
		width:  width,
		height: height,
		aim:    throwAimSpeed,
	}
}

func (t *Throw) Done() bool { return t.done }

func (t *Throw) Outcome() hunt.CatchOutcome { return t.outcome }

func (t *Throw) Update(f input.Frame) {
	if t.done {
		return
	}
	if f.Quitting() {
		t.done, t.outcome = true, hunt.CatchQuit
		return
	}
	if f.Pressed(input.Cancel) {
		t.done, t.outcome = true, hunt.CatchFled
		return
	}
	if !t.Launched && (f.Pressed(input.Confirm) || f.Pressed(input.Hunt)) {
		t.Launched = true
	}

	if !t.Launched {
		t.Ball.Y += t.aim
		if t.Ball.Y > t.height-t.Ball.H || t.Ball.Y < 0 {
			t.aim = -t.aim
			t.Ball.Y = clamp(t.Ball.Y, 0, t.height-t.Ball.H)
		}
		return
	}

	t.Ball.X += throwBallSpeed
	switch {
	case t.Ball.overlaps(t.Target):
		t.done, t.outcome = true, hunt.CatchCaught
	case t.Ball.X > t.width:
		t.done, t.outcome = true, hunt.CatchFled
	}
}
