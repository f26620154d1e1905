package minigame

import (
	"context"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/pokedex/internal/hunt"
	"github.com/appengine-ltd/pokedex/internal/i18n"
	"github.com/appengine-ltd/pokedex/internal/input"
	"github.com/appengine-ltd/pokedex/internal/ui/theme"
)

const arrowSize = float32(44)

type MemoryGame struct{ env *Env }

func NewMemoryGame(env *Env) *MemoryGame { return &MemoryGame{env: env} }

func (g *MemoryGame) Name() string { return "memory" }

func (g *MemoryGame) PlayCombat(ctx context.Context, surface hunt.Surface, s *hunt.Session) hunt.CombatOutcome {
	w, h := surfaceSize(surface)
	m := NewMemory(g.env.RNG, g.env.Clock.NowMillis())
	ok := g.env.Loop(ctx, func(f input.Frame, now int64) bool {
		m.Update(f, now)
		DrawScene(s, w, h)
		switch {
		case m.Intro():
			drawPrompt(g.env.text(i18n.KeyMemoryWatch), w, 40)
		case m.AwaitingInput():
			drawPrompt(g.env.text(i18n.KeyMemoryRepeat), w, 40)
			theme.DrawText(fmt.Sprintf("%.1fs", float64(m.Remaining(now))/1000), 10, 10, theme.Type.Body, theme.TextPrimary)
			drawMemoryProgress(m, w, h)
		default:
			if a, ok := m.Showing(now); ok {
				drawArrow(a, w*0.75, h*0.35-float32(hunt.CombatSpriteSize)/2-arrowSize/2, arrowSize, rl.White)
			}
		}
		return m.Done()
	})
	if !ok {
		return hunt.CombatQuit
	}
	return m.Outcome()
}

func drawMemoryProgress(m *Memory, w, h float32) {
	gap := float32(10)
	total := float32(len(m.Sequence))*(arrowSize+gap) - gap
	x := (w - total) / 2
	y := h - arrowSize - 40
	for i, a := range m.Sequence {
		b := box{X: x + float32(i)*(arrowSize+gap), Y: y, W: arrowSize, H: arrowSize}
		if i < m.Entered {
			drawBox(b, theme.HPHigh)
			drawArrow(a, b.centerX(), b.centerY(), arrowSize, rl.White)
		}
		drawBoxLines(b, 2, theme.Border)
	}
}

func drawArrow(a input.Action, cx, cy, size float32, clr rl.Color) {
	half := size/2 - size*0.2
	head := size * 0.25
	var tip, tail, l, r rl.Vector2
	switch a {
	case input.Up:
		tip, tail = rl.NewVector2(cx, cy-half), rl.NewVector2(cx, cy+half)
		l, r = rl.NewVector2(cx-head, cy-half+head), rl.NewVector2(cx+head, cy-half+head)
	case input.Down:
		tip, tail = rl.NewVector2(cx, cy+half), rl.NewVector2(cx, cy-half)
		l, r = rl.NewVector2(cx-head, cy+half-head), rl.NewVector2(cx+head, cy+half-head)
	case input.Left:
		tip, tail = rl.NewVector2(cx-half, cy), rl.NewVector2(cx+half, cy)
		l, r = rl.NewVector2(cx-half+head, cy-head), rl.NewVector2(cx-half+head, cy+head)
	default:
		tip, tail = rl.NewVector2(cx+half, cy), rl.NewVector2(cx-half, cy)
		l, r = rl.NewVector2(cx+half-head, cy-head), rl.NewVector2(cx+half-head, cy+head)
	}
	rl.DrawLineEx(tail, tip, 3, clr)
	rl.DrawLineEx(tip, l, 3, clr)
	rl.DrawLineEx(tip, r, 3, clr)
}

type QTEGame struct{ env *Env }

func NewQTEGame(env *Env) *QTEGame { return &QTEGame{env: env} }

func (g *QTEGame) Name() string { return "qte" }

func (g *QTEGame) PlayCombat(ctx context.Context, surface hunt.Surface, s *hunt.Session) hunt.CombatOutcome {
	w, h := surfaceSize(surface)
	q := NewQTE(w, h, hunt.CombatSpriteSize, s.Assets.Detail.CatchRate, g.env.Clock.NowMillis())
	ok := g.env.Loop(ctx, func(f input.Frame, now int64) bool {
		q.Update(f, now)
		theme.DrawBackground(s.Assets.Background, int32(w), int32(h), theme.BG)
		drawBox(q.Zone, rl.Fade(theme.Accent, 0.4))
		drawBoxLines(q.Zone, 3, theme.Accent)
		theme.DrawSprite(s.Assets.Creature, rl.NewRectangle(q.Target.X, q.Target.Y, q.Target.W, q.Target.H), rl.White)
		drawPrompt(g.env.text(i18n.KeyQTEPrompt), w, h-30)
		return q.Done()
	})
	if !ok {
		return hunt.CombatQuit
	}
	return q.Outcome()
}

type DodgeGame struct{ env *Env }

func NewDodgeGame(env *Env) *DodgeGame { return &DodgeGame{env: env} }

func (g *DodgeGame) Name() string { return "dodge" }

func (g *DodgeGame) PlayCombat(ctx context.Context, surface hunt.Surface, s *hunt.Session) hunt.CombatOutcome {
	w, h := surfaceSize(surface)
	d := NewDodge(w, h, hunt.CombatSpriteSize*0.75, g.env.RNG, g.env.Clock.NowMillis())
	shot := rl.White
	if len(s.Assets.Types) > 0 {
		shot = theme.TypeColor(s.Assets.Types[0])
	}
	ok := g.env.Loop(ctx, func(f input.Frame, now int64) bool {
		d.Update(f, now)
		theme.DrawBackground(s.Assets.Background, int32(w), int32(h), theme.BG)
		theme.DrawSprite(s.Assets.Creature, rl.NewRectangle(d.Source.X, d.Source.Y, d.Source.W, d.Source.H), rl.White)
		for _, p := range d.Shots {
			rl.DrawCircle(int32(p.Box.centerX()), int32(p.Box.centerY()), p.Box.W/2, shot)
		}
		if !d.Flashing(now) || (now/100)%2 == 0 {
			theme.DrawSprite(s.Assets.TrainerBack, rl.NewRectangle(d.Player.X, d.Player.Y, d.Player.W, d.Player.H), rl.White)
		}
		theme.DrawText(fmt.Sprintf("%.1fs", float64(d.Remaining(now))/1000), 10, 10, theme.Type.Body, theme.TextPrimary)
		lives := g.env.text(i18n.KeyLives, d.Lives)
		theme.DrawText(lives, int32(w)-theme.MeasureText(lives, theme.Type.Body)-10, 10, theme.Type.Body, theme.TextPrimary)
		drawPrompt(g.env.text(i18n.KeyDodgePrompt), w, h-24)
		return d.Done()
	})
	if !ok {
		return hunt.CombatQuit
	}
	return d.Outcome()
}
