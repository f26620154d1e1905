// Package minigame implements the hunt phases as raylib frame loops around
// pure step models.
package minigame

import (
	"context"
	"math/rand/v2"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/text/message"

	"github.com/appengine-ltd/pokedex/internal/hunt"
	"github.com/appengine-ltd/pokedex/internal/input"
	"github.com/appengine-ltd/pokedex/internal/ui/theme"
)

// Env is shared by every minigame of one window.
type Env struct {
	Input   *input.State
	Clock   hunt.Clock
	RNG     *rand.Rand
	Printer *message.Printer
	Assets  hunt.AssetLoader
	// Ball is the poke ball sprite, drawn as a circle when nil.
	Ball hunt.Sprite
	// Trainer returns the active trainer folder name.
	Trainer func() string
	// OnFrame sees every frame before the game does, for volume keys.
	OnFrame func(input.Frame)
}

// Loop drives frames until step reports done. It returns false when ctx ends
// first.
func (e *Env) Loop(ctx context.Context, step func(f input.Frame, now int64) bool) bool {
	e.Input.Reset()
	for {
		if ctx.Err() != nil {
			return false
		}
		f := e.Input.Poll()
		if e.OnFrame != nil {
			e.OnFrame(f)
		}
		now := e.Clock.NowMillis()
		rl.BeginDrawing()
		done := step(f, now)
		rl.EndDrawing()
		if done {
			return true
		}
	}
}

// Hold plays a fixed-length animation, ignoring input except window close.
func (e *Env) Hold(ctx context.Context, ms int64, draw func(progress float32)) {
	start := e.Clock.NowMillis()
	e.Loop(ctx, func(f input.Frame, now int64) bool {
		p := min(float32(now-start)/float32(ms), 1)
		draw(p)
		return p >= 1 || f.Closing
	})
}

func surfaceSize(s hunt.Surface) (float32, float32) {
	w, h := s.Size()
	return float32(w), float32(h)
}

func (e *Env) text(key string, args ...any) string {
	return e.Printer.Sprintf(key, args...)
}

// DrawScene paints the battle backdrop: background, creature top right,
// trainer bottom left.
func DrawScene(s *hunt.Session, w, h float32) {
	theme.DrawBackground(s.Assets.Background, int32(w), int32(h), theme.BG)
	size := float32(hunt.CombatSpriteSize)
	theme.DrawSpriteCentered(s.Assets.Creature, w*0.75, h*0.35, size, rl.White)
	if tw, th := spriteSize(s.Assets.TrainerBack); tw > 0 {
		theme.DrawSprite(s.Assets.TrainerBack, rl.NewRectangle(10, h-th-10, tw, th), rl.White)
	}
}

func spriteSize(s hunt.Sprite) (float32, float32) {
	if s == nil {
		return 0, 0
	}
	w, h := s.Size()
	return float32(w), float32(h)
}

func (e *Env) drawBall(cx, cy, size float32) {
	if theme.AsSprite(e.Ball).Loaded() {
		theme.DrawSpriteCentered(e.Ball, cx, cy, size, rl.White)
		return
	}
	r := size / 2
	rl.DrawCircle(int32(cx), int32(cy), r, rl.Red)
	rl.DrawRectangle(int32(cx-r), int32(cy), int32(size), int32(r), rl.White)
	rl.DrawCircleLines(int32(cx), int32(cy), r, rl.Black)
	rl.DrawLineEx(rl.NewVector2(cx-r, cy), rl.NewVector2(cx+r, cy), 2, rl.Black)
	rl.DrawCircle(int32(cx), int32(cy), r/4, rl.White)
}

func drawBox(b box, clr rl.Color) {
	rl.DrawRectangleRec(rl.NewRectangle(b.X, b.Y, b.W, b.H), clr)
}

func drawBoxLines(b box, thick float32, clr rl.Color) {
	rl.DrawRectangleLinesEx(rl.NewRectangle(b.X, b.Y, b.W, b.H), thick, clr)
}

func drawPrompt(text string, w, y float32) {
	theme.DrawTextCentered(text, int32(w/2), int32(y), theme.Type.Body, theme.TextPrimary)
}
