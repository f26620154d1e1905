package minigame

import (
	"context"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/pokedex/internal/hunt"
	"github.com/appengine-ltd/pokedex/internal/i18n"
	"github.com/appengine-ltd/pokedex/internal/input"
	"github.com/appengine-ltd/pokedex/internal/ui/theme"
)

type ThrowGame struct{ env *Env }

func NewThrowGame(env *Env) *ThrowGame { return &ThrowGame{env: env} }

func (g *ThrowGame) PlayCatch(ctx context.Context, surface hunt.Surface, s *hunt.Session) (hunt.CatchOutcome, hunt.Sprite) {
	w, h := surfaceSize(surface)
	t := NewThrow(w, h, hunt.CombatSpriteSize)
	ok := g.env.Loop(ctx, func(f input.Frame, _ int64) bool {
		t.Update(f)
		theme.DrawBackground(s.Assets.Background, int32(w), int32(h), theme.Sky)
		theme.DrawSprite(s.Assets.Creature, rl.NewRectangle(t.Target.X, t.Target.Y, t.Target.W, t.Target.H), rl.White)
		g.env.drawBall(t.Ball.centerX(), t.Ball.centerY(), t.Ball.W)
		drawPrompt(g.env.text(i18n.KeyThrowPrompt), w, 16)
		return t.Done()
	})
	if !ok {
		return hunt.CatchQuit, nil
	}
	if t.Outcome() != hunt.CatchCaught {
		return t.Outcome(), nil
	}
	front, err := g.env.Assets.TrainerSprite(g.env.Trainer(), hunt.FacingFront)
	if err != nil {
		return hunt.CatchCaught, nil
	}
	return hunt.CatchCaught, front
}

type StabilizeGame struct{ env *Env }

func NewStabilizeGame(env *Env) *StabilizeGame { return &StabilizeGame{env: env} }

func (g *StabilizeGame) PlayStabilize(ctx context.Context, surface hunt.Surface, s *hunt.Session) hunt.StabilizeOutcome {
	w, h := surfaceSize(surface)
	st := NewStabilize(w, h, g.env.RNG)
	ok := g.env.Loop(ctx, func(f input.Frame, now int64) bool {
		st.Update(f)
		rl.ClearBackground(theme.Sky)
		// Shake grows calmer with every hit.
		mag := float64(5 * (StabilizeHits - st.Hits))
		secs := float64(now) / 1000
		dx := float32(math.Cos(secs*2.1) * mag)
		dy := float32(math.Sin(secs*1.5) * mag)
		g.env.drawBall(w/2+dx, h/2+dy, 64)
		rl.DrawRectangle(0, int32(st.Zone.Y), int32(w), int32(st.Zone.H), rl.Gray)
		drawBox(st.Zone, theme.HPHigh)
		drawBox(st.Cursor, rl.Red)
		theme.DrawText(g.env.text(i18n.KeyStabilizePrompt), 16, 16, theme.Type.Body, theme.DialogText)
		theme.DrawText(g.env.text(i18n.KeyLives, st.Lives), 16, 40, theme.Type.Body, theme.DialogText)
		drawTrainerFront(s, w, h)
		return st.Done()
	})
	if !ok {
		return hunt.StabilizeQuit
	}
	if st.Outcome() == hunt.StabilizeCaught {
		g.env.celebrate(ctx, surface, s)
	}
	return st.Outcome()
}

// IntroGame is played instead of StabilizeGame for easy catches: the
// creature is drawn into the ball and the capture succeeds.
type IntroGame struct{ env *Env }

func NewIntroGame(env *Env) *IntroGame { return &IntroGame{env: env} }

func (g *IntroGame) PlayStabilize(ctx context.Context, surface hunt.Surface, s *hunt.Session) hunt.StabilizeOutcome {
	w, h := surfaceSize(surface)
	ballX, ballY := w/2-120, h/2-100
	startX, startY := w/2, h/2+80
	start := g.env.Clock.NowMillis()
	quit := false
	ok := g.env.Loop(ctx, func(f input.Frame, now int64) bool {
		if f.Quitting() {
			quit = true
			return true
		}
		p := IntroProgress(start, now)
		x := startX + (ballX-startX)*p
		y := startY + (ballY-startY)*p
		size := 120 + (40-120)*p
		rl.ClearBackground(theme.Sky)
		rl.DrawLineEx(rl.NewVector2(ballX, ballY), rl.NewVector2(x, y), 8, rl.Fade(rl.SkyBlue, 0.7))
		g.env.drawBall(ballX, ballY, 40)
		theme.DrawSpriteCentered(s.Assets.Creature, x, y, size, rl.White)
		drawPrompt(g.env.text(i18n.KeyStabilizeIntro), w, 16)
		return p >= 1
	})
	if !ok || quit {
		return hunt.StabilizeQuit
	}
	g.env.celebrate(ctx, surface, s)
	return hunt.StabilizeCaught
}

// celebrate shows the capture banner with bursting stars.
func (e *Env) celebrate(ctx context.Context, surface hunt.Surface, s *hunt.Session) {
	w, h := surfaceSize(surface)
	type star struct{ angle, speed float64 }
	stars := make([]star, 20)
	for i := range stars {
		stars[i] = star{angle: e.RNG.Float64() * 2 * math.Pi, speed: 2 + e.RNG.Float64()*3}
	}
	name := s.Assets.Detail.Name
	if name == "" {
		name = s.Target.Name
	}
	e.Hold(ctx, 1000, func(p float32) {
		rl.ClearBackground(theme.Sky)
		e.drawBall(w/2, h/2, 64)
		frames := float64(p) * 60
		for _, st := range stars {
			x := float64(w/2) + math.Cos(st.angle)*st.speed*frames
			y := float64(h/2) + math.Sin(st.angle)*st.speed*frames
			rl.DrawCircle(int32(x), int32(y), float32(1+frames*0.1), rl.Yellow)
		}
		drawPrompt(e.text(i18n.KeyGotcha, name), w, h-40)
	})
}

func drawTrainerFront(s *hunt.Session, w, h float32) {
	if s.Assets.TrainerFront == nil {
		return
	}
	tw, th := spriteSize(s.Assets.TrainerFront)
	theme.DrawSprite(s.Assets.TrainerFront, rl.NewRectangle(w-tw-10, h-th-40, tw, th), rl.White)
}
