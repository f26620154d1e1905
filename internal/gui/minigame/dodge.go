package minigame

import (
	"math"
	"math/rand/v2"

	"github.com/appengine-ltd/pokedex/internal/hunt"
	"github.com/appengine-ltd/pokedex/internal/input"
)

const (
	DodgeDuration = 8000
	DodgeLives    = 3

	dodgePlayerSpeed  = float32(5)
	dodgeShotSpeed    = float32(4)
	dodgeShotEvery    = 20
	dodgeShotSize     = float32(16)
	dodgePlayerSize   = float32(40)
	dodgeInvulnerable = 600
)

type Shot struct {
	Box    box
	VX, VY float32
}

// Dodge keeps the trainer alive under fire from the creature for
// DodgeDuration. Every hit costs a life.
type Dodge struct {
	Player box
	Source box
	Shots  []Shot
	Lives  int

	width, height float32
	rng           *rand.Rand
	started       int64
	hitAt         int64
	frames        int
	done          bool
	outcome       hunt.CombatOutcome
}

func NewDodge(width, height, spriteSize float32, rng *rand.Rand, now int64) *Dodge {
	return &Dodge{
		Player:  box{X: width/2 - dodgePlayerSize/2, Y: height - dodgePlayerSize - 10, W: dodgePlayerSize, H: dodgePlayerSize},
		Source:  box{X: width/2 - spriteSize/2, Y: 20, W: spriteSize, H: spriteSize},
		Lives:   DodgeLives,
		width:   width,
		height:  height,
		rng:     rng,
		started: now,
		hitAt:   math.MinInt64 / 2,
	}
}

func (d *Dodge) Done() bool { return d.done }

func (d *Dodge) Outcome() hunt.CombatOutcome { return d.outcome }

// Remaining is the survival time left in ms.
func (d *Dodge) Remaining(now int64) int64 {
	return max(0, DodgeDuration-(now-d.started))
}

// Flashing is true while the player is invulnerable after a hit.
func (d *Dodge) Flashing(now int64) bool {
	return now-d.hitAt < dodgeInvulnerable
}

func (d *Dodge) Update(f input.Frame, now int64) {
	if d.done {
		return
	}
	if f.Quitting() {
		d.done, d.outcome = true, hunt.CombatQuit
		return
	}
	if f.Pressed(input.Cancel) {
		d.done, d.outcome = true, hunt.CombatLose
		return
	}
	if now-d.started >= DodgeDuration {
		d.done, d.outcome = true, hunt.CombatWin
		return
	}

	if f.Held(input.Left) {
		d.Player.X -= dodgePlayerSpeed
	}
	if f.Held(input.Right) {
		d.Player.X += dodgePlayerSpeed
	}
	if f.Held(input.Up) {
		d.Player.Y -= dodgePlayerSpeed
	}
	if f.Held(input.Down) {
		d.Player.Y += dodgePlayerSpeed
	}
	d.Player.X = clamp(d.Player.X, 0, d.width-d.Player.W)
	d.Player.Y = clamp(d.Player.Y, 0, d.height-d.Player.H)

	d.frames++
	if d.frames%dodgeShotEvery == 0 {
		d.fire()
	}

	kept := d.Shots[:0]
	for _, s := range d.Shots {
		s.Box.X += s.VX
		s.Box.Y += s.VY
		if s.Box.overlaps(d.Player) && !d.Flashing(now) {
			d.hitAt = now
			d.Lives--
			if d.Lives <= 0 {
				d.done, d.outcome = true, hunt.CombatLose
				return
			}
			continue
		}
		if d.onScreen(s.Box) {
			kept = append(kept, s)
		}
	}
	d.Shots = kept
}

// fire aims a shot from the creature at a random point in the lower half.
func (d *Dodge) fire() {
	sx, sy := d.Source.centerX(), d.Source.centerY()
	tx := d.rng.Float32() * d.width
	ty := d.height/2 + d.rng.Float32()*d.height/2
	dx, dy := tx-sx, ty-sy
	n := float32(math.Hypot(float64(dx), float64(dy)))
	if n == 0 {
		dy, n = 1, 1
	}
	d.Shots = append(d.Shots, Shot{
		Box: box{X: sx - dodgeShotSize/2, Y: sy - dodgeShotSize/2, W: dodgeShotSize, H: dodgeShotSize},
		VX:  dx / n * dodgeShotSpeed,
		VY:  dy / n * dodgeShotSpeed,
	})
}

func (d *Dodge) onScreen(b box) bool {
	return b.overlaps(box{X: -30, Y: -30, W: d.width + 60, H: d.height + 60})
}
