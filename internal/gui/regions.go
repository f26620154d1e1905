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
	gridCols    = 3
	gridIcon    = 90
	gridPadding = 10
	gridTop     = 5
)

// gridCursor walks a row-major grid with wraparound on both axes.
type gridCursor struct {
	Index int
	Cols  int
	N     int
}

func (g *gridCursor) rows() int {
	return (g.N + g.Cols - 1) / g.Cols
}

func (g *gridCursor) Update(f input.Frame) {
	if g.N == 0 || g.Cols <= 0 {
		return
	}
	row, col := g.Index/g.Cols, g.Index%g.Cols
	rows := g.rows()
	switch {
	case f.Pressed(input.Up):
		row = (row - 1 + rows) % rows
	case f.Pressed(input.Down):
		row = (row + 1) % rows
	case f.Pressed(input.Left):
		col = (col - 1 + g.Cols) % g.Cols
	case f.Pressed(input.Right):
		col = (col + 1) % g.Cols
	default:
		return
	}
	g.Index = min(row*g.Cols+col, g.N-1)
}

// gridCell returns the top-left corner of cell i for a screen width.
func gridCell(i int, screenW float32) (float32, float32) {
	total := float32(gridCols*gridIcon + (gridCols-1)*gridPadding)
	x0 := (screenW - total) / 2
	row, col := i/gridCols, i%gridCols
	return x0 + float32(col*(gridIcon+gridPadding)), float32(gridTop + row*(gridIcon+gridPadding))
}

// regionPicker is the raylib region grid.
type regionPicker struct {
	env     *minigame.Env
	assets  *assetCache
	printer *message.Printer
}

func (p *regionPicker) PickRegion(ctx context.Context, surface hunt.Surface, req hunt.PickRequest) (hunt.PickResult, error) {
	cur := gridCursor{Index: req.Cursor, Cols: gridCols, N: len(req.Regions)}
	if cur.Index < 0 || cur.Index >= cur.N {
		cur.Index = 0
	}
	w, h := surface.Size()
	res := hunt.PickResult{Action: hunt.PickQuit}
	p.env.Loop(ctx, func(f input.Frame, now int64) bool {
		switch {
		case f.Quitting():
			res = hunt.PickResult{Action: hunt.PickQuit, Cursor: cur.Index}
			return true
		case f.Pressed(input.Cancel):
			res = hunt.PickResult{Action: hunt.PickCancel, Cursor: cur.Index}
			return true
		case f.Pressed(input.Confirm) && cur.N > 0:
			res = hunt.PickResult{Action: hunt.PickConfirm, Cursor: cur.Index, Region: req.Regions[cur.Index]}
			return true
		}
		cur.Update(f)

		rl.ClearBackground(rl.Black)
		p.drawGrid(req.Regions, req.Ceiling, cur.Index, float32(w))
		if cur.N > 0 {
			p.drawInfo(req.Regions[cur.Index], req.Ceiling, int32(w), int32(h))
		}
		if req.Message.Active(now) {
			theme.DrawMessage(req.Message.Text, int32(w), int32(h))
		}
		return false
	})
	return res, nil
}

func (p *regionPicker) icon(r game.Region) *theme.Sprite {
	return p.assets.Pinned(p.assets.paths.regionIcon(r.Name), gridIcon)
}

// drawGrid draws every region icon. selected < 0 draws no highlight.
func (p *regionPicker) drawGrid(regions []game.Region, ceiling, selected int, screenW float32) {
	for i, r := range regions {
		x, y := gridCell(i, screenW)
		cell := rl.NewRectangle(x, y, gridIcon, gridIcon)
		theme.DrawSprite(p.icon(r), cell, rl.White)
		if game.Locked(r, ceiling) {
			rl.DrawRectangleRec(cell, rl.Fade(rl.Black, 0.6))
		}
		if i == selected {
			rl.DrawRectangleLinesEx(cell, 3, theme.Accent)
		}
	}
}

func (p *regionPicker) drawInfo(r game.Region, ceiling int, w, h int32) {
	text, clr := r.Name, theme.TextPrimary
	if game.Locked(r, ceiling) {
		text, clr = p.printer.Sprintf(i18n.KeyRegionLocked, r.Name), theme.Locked
	}
	theme.DrawTextCentered(text, w/2, h-theme.Type.Body-6, theme.Type.Body, clr)
	theme.DrawHintText(p.printer.Sprintf(i18n.KeyHintRegions), 6, h-theme.Type.Small-26)
}

var _ hunt.RegionPicker = (*regionPicker)(nil)
