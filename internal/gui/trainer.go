package gui

import (
	"context"
	"os"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/pokedex/internal/catalog"
	"github.com/appengine-ltd/pokedex/internal/hunt"
	"github.com/appengine-ltd/pokedex/internal/i18n"
	"github.com/appengine-ltd/pokedex/internal/input"
	"github.com/appengine-ltd/pokedex/internal/ui/theme"
)

const trainerPreviewSize = 128

// listTrainers returns the trainer folders that carry both sprites.
func listTrainers(paths assetPaths) []string {
	entries, err := os.ReadDir(paths.trainersDir())
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if !fileExists(paths.trainer(e.Name(), hunt.FacingFront)) || !fileExists(paths.trainer(e.Name(), hunt.FacingBack)) {
			continue
		}
		out = append(out, e.Name())
	}
	sort.Strings(out)
	return out
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// trainerChoice is the selection state of the trainer screen.
type trainerChoice struct {
	names  []string
	index  int
	facing hunt.Facing
}

func newTrainerChoice(names []string, current string) trainerChoice {
	c := trainerChoice{names: names}
	for i, n := range names {
		if n == current {
			c.index = i
		}
	}
	return c
}

func (c *trainerChoice) Update(f input.Frame) {
	n := len(c.names)
	if n == 0 {
		return
	}
	switch {
	case f.Pressed(input.Right):
		c.index = (c.index + 1) % n
	case f.Pressed(input.Left):
		c.index = (c.index - 1 + n) % n
	case f.Pressed(input.Up), f.Pressed(input.Down):
		if c.facing == hunt.FacingFront {
			c.facing = hunt.FacingBack
		} else {
			c.facing = hunt.FacingFront
		}
	}
}

func (c *trainerChoice) Current() string {
	if len(c.names) == 0 {
		return ""
	}
	return c.names[c.index]
}

// runTrainerScreen lets the player pick a trainer and saves it. It reports
// whether the player asked to quit.
func (ui *gameUI) runTrainerScreen(ctx context.Context) (bool, error) {
	names := listTrainers(ui.assets.paths)
	if len(names) == 0 {
		ui.logger.Printf("no trainer folders under %s", ui.assets.paths.trainersDir())
		return false, nil
	}
	choice := newTrainerChoice(names, ui.app.Trainer)
	bg := ui.assets.Pinned(ui.assets.paths.fallbackBackground(), 0)
	quit, confirmed := false, false
	w, h := rlSurface{}.Size()

	ui.env.Loop(ctx, func(f input.Frame, _ int64) bool {
		switch {
		case f.Quitting():
			quit = true
			return true
		case f.Pressed(input.Cancel):
			return true
		case f.Pressed(input.Confirm):
			confirmed = true
			return true
		}
		choice.Update(f)

		theme.DrawBackground(bg, int32(w), int32(h), rl.Black)
		theme.DrawHeader(ui.printer.Sprintf(i18n.KeyTrainerTitle), 12, 8)
		sprite := ui.assets.Pinned(ui.assets.paths.trainer(choice.Current(), choice.facing), 0)
		theme.DrawSpriteCentered(sprite, float32(w)/2, float32(h)/2, trainerPreviewSize, rl.White)
		theme.DrawTextCentered(choice.Current(), int32(w)/2, int32(h)-48, theme.Type.Body, theme.TextPrimary)
		drawSideArrows(float32(w)/2, float32(h)/2)
		theme.DrawHintText(ui.printer.Sprintf(i18n.KeyTrainerHint), 6, int32(h)-theme.Type.Small-6)
		return false
	})

	if !confirmed {
		return quit, nil
	}
	ui.app.Trainer = choice.Current()
	if err := ui.store.SetPreference(ctx, catalog.PrefTrainer, ui.app.Trainer); err != nil {
		return false, err
	}
	return false, nil
}

func drawSideArrows(cx, cy float32) {
	const size = 20
	left := cx - 80
	right := cx + 80
	rl.DrawTriangle(rl.NewVector2(left-size, cy), rl.NewVector2(left, cy+size/2), rl.NewVector2(left, cy-size/2), theme.TextPrimary)
	rl.DrawTriangle(rl.NewVector2(right+size, cy), rl.NewVector2(right, cy-size/2), rl.NewVector2(right, cy+size/2), theme.TextPrimary)
}
