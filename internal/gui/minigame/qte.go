package minigame

import (
	"github.com/appengine-ltd/pokedex/internal/hunt"
	"github.com/appengine-ltd/pokedex/internal/input"
)

const (
	qteBaseSpeed = float32(5)
	qteGrace     = 500
	qteZoneW     = 80
	qteZoneH     = 100
)

// QTESpeed scales the sprite speed by rarity: harder to catch moves faster.
func QTESpeed(catchRate int) float32 {
	switch {
	case catchRate < 45:
		return qteBaseSpeed * 2
	case catchRate < 100:
		return qteBaseSpeed * 1.5
	default:
		return qteBaseSpeed
	}
}

// QTE bounces the creature across the screen; CONFIRM wins while it
// overlaps the center zone.
type QTE struct {
	Zone   box
	Target box

	width   float32
	speed   float32
	started int64
	done    bool
	outcome hunt.CombatOutcome
}

func NewQTE(width, height, spriteSize float32, catchRate int, now int64) *QTE {
	zone := box{X: (width - qteZoneW) / 2, Y: (height - qteZoneH) / 2, W: qteZoneW, H: qteZoneH}
	return &QTE{
		Zone:    zone,
		Target:  box{X: 0, Y: zone.centerY() - spriteSize/2, W: spriteSize, H: spriteSize},
		width:   width,
		speed:   QTESpeed(catchRate),
		started: now,
	}
}

func (q *QTE) Done() bool { return q.done }

func (q *QTE) Outcome() hunt.CombatOutcome { return q.outcome }

func (q *QTE) Update(f input.Frame, now int64) {
	if q.done {
		return
	}
	switch {
	case f.Quitting():
		q.done, q.outcome = true, hunt.CombatQuit
		return
	case f.Pressed(input.Cancel):
		q.done, q.outcome = true, hunt.CombatLose
		return
	case f.Pressed(input.Confirm) && now-q.started >= qteGrace:
		q.done = true
		q.outcome = hunt.CombatLose
		if q.Zone.overlaps(q.Target) {
			q.outcome = hunt.CombatWin
		}
		return
	}

	q.Target.X += q.speed
	if q.Target.X <= 0 || q.Target.X+q.Target.W >= q.width {
		q.speed = -q.speed
		q.Target.X = clamp(q.Target.X, 0, q.width-q.Target.W)
	}
}
