package gui

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/text/message"

	"github.com/appengine-ltd/pokedex/internal/game"
	"github.com/appengine-ltd/pokedex/internal/gui/minigame"
	"github.com/appengine-ltd/pokedex/internal/hunt"
	"github.com/appengine-ltd/pokedex/internal/i18n"
	"github.com/appengine-ltd/pokedex/internal/input"
	"github.com/appengine-ltd/pokedex/internal/ui/theme"
)

const (
	cubeSize          = 40
	cubesPerFrame     = 2
	hpDrainDuration   = 1500
	hpFloor           = 0.1
	fadeDuration      = 800
	announceMessage   = 2000
	announceZoom      = 1500
	announceBlink     = 1500
	announceZoomScale = 2.5
	blinkPeriod       = 250
)

// spiralPath lists the cells of a cols x rows grid clockwise from the top
// left corner inward.
func spiralPath(cols, rows int) []int {
	out := make([]int, 0, cols*rows)
	top, bottom, left, right := 0, rows-1, 0, cols-1
	for top <= bottom && left <= right {
		for c := left; c <= right; c++ {
			out = append(out, top*cols+c)
		}
		for r := top + 1; r <= bottom; r++ {
			out = append(out, r*cols+right)
		}
		if top < bottom {
			for c := right - 1; c >= left; c-- {
				out = append(out, bottom*cols+c)
			}
		}
		if left < right {
			for r := bottom - 1; r > top; r-- {
				out = append(out, r*cols+left)
			}
		}
		top, bottom, left, right = top+1, bottom-1, left+1, right-1
	}
	return out
}

// revealOrder is the order cubes are removed: center first.
func revealOrder(cols, rows int) []int {
	path := spiralPath(cols, rows)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// hpFraction is the HP bar fill for a drain progress in [0, 1].
func hpFraction(progress float32) float32 {
	progress = min(max(progress, 0), 1)
	return 1 - (1-hpFloor)*progress
}

type announcePhase int

const (
	phaseMessage announcePhase = iota
	phaseZoom
	phaseBlink
	phaseDone
)

// announceAt maps elapsed ms to the phase and its progress in [0, 1].
func announceAt(elapsed int64) (announcePhase, float32) {
	switch {
	case elapsed < announceMessage:
		return phaseMessage, float32(elapsed) / announceMessage
	case elapsed < announceMessage+announceZoom:
		return phaseZoom, float32(elapsed-announceMessage) / announceZoom
	case elapsed < announceMessage+announceZoom+announceBlink:
		return phaseBlink, float32(elapsed-announceMessage-announceZoom) / announceBlink
	default:
		return phaseDone, 1
	}
}

// effects plays the scripted sequences between hunt phases.
type effects struct {
	env     *minigame.Env
	music   *musicPlayer
	regions *regionPicker
	printer *message.Printer
	// ceiling is the unlock ceiling after the capture that opened the region.
	ceiling func() int
}

func (e *effects) EncounterTransition(ctx context.Context, surface hunt.Surface, s *hunt.Session) {
	w, h := surface.Size()
	cols := (w + cubeSize - 1) / cubeSize
	rows := (h + cubeSize - 1) / cubeSize
	order := revealOrder(cols, rows)
	covered := make([]bool, cols*rows)
	for i := range covered {
		covered[i] = true
	}
	next := 0
	e.env.Loop(ctx, func(f input.Frame, _ int64) bool {
		for n := 0; n < cubesPerFrame && next < len(order); n++ {
			covered[order[next]] = false
			next++
		}
		minigame.DrawScene(s, float32(w), float32(h))
		for i, c := range covered {
			if c {
				rl.DrawRectangle(int32(i%cols*cubeSize), int32(i/cols*cubeSize), cubeSize, cubeSize, rl.Black)
			}
		}
		return next >= len(order) || f.Closing
	})
}

func (e *effects) HPDepletion(ctx context.Context, surface hunt.Surface, s *hunt.Session) {
	w, h := surface.Size()
	bar := rl.NewRectangle(float32(w)*0.55, float32(h)*0.08, float32(w)*0.4, 10)
	e.env.Hold(ctx, hpDrainDuration, func(p float32) {
		minigame.DrawScene(s, float32(w), float32(h))
		theme.DrawHPBar(bar, hpFraction(p))
	})
}

func (e *effects) LoseTransition(ctx context.Context, surface hunt.Surface) {
	w, h := surface.Size()
	e.env.Hold(ctx, fadeDuration, func(p float32) {
		rl.DrawRectangle(0, 0, int32(w), int32(h), rl.Fade(rl.Black, p))
	})
}

// AnnounceRegion shows the unlock dialog, then zooms the region grid onto
// the new region and blinks it. After the dialog, CONFIRM or CANCEL skips.
func (e *effects) AnnounceRegion(ctx context.Context, surface hunt.Surface, region string, regions []game.Region) {
	w, h := surface.Size()
	target := -1
	for i, r := range regions {
		if r.Name == region {
			target = i
		}
	}
	start := e.env.Clock.NowMillis()
	e.env.Loop(ctx, func(f input.Frame, now int64) bool {
		phase, p := announceAt(now - start)
		if phase == phaseDone || f.Closing {
			return true
		}
		if phase != phaseMessage && (f.Pressed(input.Confirm) || f.Pressed(input.Cancel)) {
			return true
		}

		rl.ClearBackground(rl.Black)
		if phase == phaseMessage {
			theme.DrawDialog(e.printer.Sprintf(i18n.KeyNewRegionTitle), e.printer.Sprintf(i18n.KeyNewRegionBody, region), int32(w), int32(h))
			return false
		}
		zoom := float32(announceZoomScale)
		if phase == phaseZoom {
			zoom = 1 + (announceZoomScale-1)*p
		}
		highlight := -1
		if phase == phaseBlink && (now/blinkPeriod)%2 == 0 {
			highlight = target
		}
		cam := rl.Camera2D{Offset: rl.NewVector2(float32(w)/2, float32(h)/2), Zoom: zoom}
		if target >= 0 {
			x, y := gridCell(target, float32(w))
			cam.Target = rl.NewVector2(x+gridIcon/2, y+gridIcon/2)
		} else {
			cam.Target = cam.Offset
		}
		rl.BeginMode2D(cam)
		e.regions.drawGrid(regions, e.ceiling(), highlight, float32(w))
		rl.EndMode2D()
		theme.DrawTextCentered(region, int32(w)/2, int32(h)-theme.Type.Title-8, theme.Type.Title, theme.Accent)
		return false
	})
}

func (e *effects) PlayRegionMusic(r game.Region) {
	e.music.PlayRegion(r)
}

func (e *effects) PlayMenuMusic() {
	e.music.PlayMenu()
}

var _ hunt.Effects = (*effects)(nil)
