package minigame

import (
	"math/rand/v2"

	"github.com/appengine-ltd/pokedex/internal/hunt"
	"github.com/appengine-ltd/pokedex/internal/input"
)

const (
	StabilizeHits  = 3
	StabilizeLives = 3

	stabilizeCursorSpeed = float32(3)
	stabilizeCursorW     = float32(5)
	stabilizeZoneW       = float32(100)
	stabilizeBarH        = float32(20)

	// IntroDuration is the length of the creature-into-ball animation.
	IntroDuration = 1500
)

// Stabilize needs StabilizeHits presses while the cursor sits in the green
// zone. A miss costs a life; the zone moves after every hit.
type Stabilize struct {
	Zone   box
	Cursor box
	Hits   int
	Lives  int

	width   float32
	speed   float32
	rng     *rand.Rand
	done    bool
	outcome hunt.StabilizeOutcome
}

func NewStabilize(width, height float32, rng *rand.Rand) *Stabilize {
	y := height - stabilizeBarH - 10
	s := &Stabilize{
		Cursor: box{X: 0, Y: y, W: stabilizeCursorW, H: stabilizeBarH},
		Lives:  StabilizeLives,
		width:  width,
		speed:  stabilizeCursorSpeed,
		rng:    rng,
	}
	s.Zone = box{Y: y, W: stabilizeZoneW, H: stabilizeBarH}
	s.moveZone()
	return s
}

func (s *Stabilize) moveZone() {
	s.Zone.X = float32(s.rng.IntN(int(s.width-stabilizeZoneW) + 1))
}

func (s *Stabilize) Done() bool { return s.done }

func (s *Stabilize) Outcome() hunt.StabilizeOutcome { return s.outcome }

func (s *Stabilize) Update(f input.Frame) {
	if s.done {
		return
	}
	switch {
	case f.Quitting():
		s.done, s.outcome = true, hunt.StabilizeQuit
		return
	case f.Pressed(input.Cancel):
		s.done, s.outcome = true, hunt.StabilizeBack
		return
	case f.Pressed(input.Confirm):
		if s.Cursor.overlaps(s.Zone) {
			s.Hits++
			if s.Hits >= StabilizeHits {
				s.done, s.outcome = true, hunt.StabilizeCaught
				return
			}
			s.moveZone()
		} else {
			s.Lives--
			if s.Lives <= 0 {
				s.done, s.outcome = true, hunt.StabilizeFailed
				return
			}
		}
	}

	s.Cursor.X += s.speed
	if s.Cursor.X > s.width-s.Cursor.W || s.Cursor.X < 0 {
		s.speed = -s.speed
		s.Cursor.X = clamp(s.Cursor.X, 0, s.width-s.Cursor.W)
	}
}

// IntroProgress maps elapsed time onto [0, 1] for the intro animation.
func IntroProgress(started, now int64) float32 {
	if now <= started {
		return 0
	}
	return min(float32(now-started)/IntroDuration, 1)
}
