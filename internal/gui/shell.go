package gui

import (
	"context"
	"errors"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/pokedex/internal/catalog"
	"github.com/appengine-ltd/pokedex/internal/hunt"
	"github.com/appengine-ltd/pokedex/internal/i18n"
	"github.com/appengine-ltd/pokedex/internal/input"
	"github.com/appengine-ltd/pokedex/internal/ui/theme"
)

const (
	headerHeight = 26
	footerHeight = 20
	previewSize  = 96
	detailSize   = 128
)

// previewSprite holds the one creature sprite the shell shows.
type previewSprite struct {
	id     int
	shiny  bool
	size   int
	sprite hunt.Sprite
}

func (p *previewSprite) get(assets *assetCache, c catalog.Creature, size int) hunt.Sprite {
	if p.id == c.ID && p.shiny == c.IsShiny && p.size == size {
		return p.sprite
	}
	p.release(assets)
	p.id, p.shiny, p.size = c.ID, c.IsShiny, size
	s, err := assets.CreatureSprite(c, c.IsShiny, size)
	if err == nil {
		p.sprite = s
	}
	return p.sprite
}

func (p *previewSprite) release(assets *assetCache) {
	if p.sprite != nil {
		assets.release(p.sprite)
	}
	*p = previewSprite{}
}

func (ui *gameUI) shellFrame(ctx context.Context, f input.Frame, now int64) bool {
	w, h := rlSurface{}.Size()
	sw, sh := int32(w), int32(h)
	ui.list.Visible = max(1, (h-headerHeight-footerHeight)/int(theme.RowHeight))

	if ui.search.Active {
		ui.updateSearch(f)
	} else if ui.updateShell(ctx, f, now) {
		return true
	}

	rl.ClearBackground(theme.BG)
	ui.drawStats(sw)
	switch ui.app.View {
	case hunt.ViewDetail:
		ui.drawDetail(sw)
		theme.DrawHintText(ui.printer.Sprintf(i18n.KeyHintDetail), int32(spaceS), sh-footerHeight+4)
	default:
		ui.drawList(sw, sh)
		theme.DrawHintText(ui.printer.Sprintf(i18n.KeyHintList), int32(spaceS), sh-footerHeight+4)
	}
	if ui.search.Active {
		drawSearch(&ui.search, sw)
	}
	if ui.app.Message.Active(now) {
		theme.DrawMessage(ui.app.Message.Text, sw, sh)
	} else if now < ui.volumeUntil {
		theme.DrawMessage(ui.printer.Sprintf(i18n.KeyVolume, int(ui.music.Volume()*100+0.5)), sw, sh)
	}
	return false
}

func (ui *gameUI) updateSearch(f input.Frame) {
	submit, dismiss := captureSearchKeys(&ui.search, ui.index)
	switch {
	case f.Closing:
		ui.search.Close()
	case dismiss:
		ui.search.Close()
	case submit:
		if id, ok := ui.search.Submit(); ok && ui.app.Select(id) {
			ui.list.Jump(ui.app.Selected, len(ui.app.Catalog))
		}
	}
}

// updateShell handles one frame of shell input. It reports true when a
// screen change is pending.
func (ui *gameUI) updateShell(ctx context.Context, f input.Frame, now int64) bool {
	switch {
	case f.Quitting():
		ui.pending = pendingQuit
		return true
	case f.Pressed(input.Hunt):
		ui.pending = pendingHunt
		return true
	case f.Pressed(input.Trainer):
		ui.pending = pendingTrainer
		return true
	}

	n := len(ui.app.Catalog)
	if ui.app.View == hunt.ViewDetail {
		switch {
		case f.Pressed(input.Cancel), f.Pressed(input.Confirm):
			ui.app.View = hunt.ViewList
		case f.Pressed(input.Up) && ui.app.Selected > 0:
			ui.app.Selected--
			ui.list.Jump(ui.app.Selected, n)
			ui.openDetail(ctx)
		case f.Pressed(input.Down) && ui.app.Selected < n-1:
			ui.app.Selected++
			ui.list.Jump(ui.app.Selected, n)
			ui.openDetail(ctx)
		}
		return false
	}

	if rl.IsKeyPressed(rl.KeySlash) {
		ui.search.Open()
		return false
	}
	ui.list.Update(f, n, now)
	ui.app.Selected = ui.list.Index
	if f.Pressed(input.Confirm) {
		ui.openDetail(ctx)
	}
	return false
}

// openDetail shows the selected creature when it has been seen.
func (ui *gameUI) openDetail(ctx context.Context) {
	c, ok := ui.app.Current()
	if !ok || (!c.Seen && !c.Caught) {
		return
	}
	d, err := ui.store.Detail(ctx, c.ID)
	if err != nil {
		if !errors.Is(err, catalog.ErrNotFound) {
			ui.logger.Printf("detail %d: %v", c.ID, err)
		}
		d = catalog.ParseDetail(c.ID, nil)
		d.Name = c.Name
	}
	ui.app.Detail = &d
	ui.app.View = hunt.ViewDetail
}

func (ui *gameUI) drawStats(w int32) {
	rl.DrawRectangle(0, 0, w, headerHeight-4, theme.Shell)
	theme.DrawText(statsLine(ui.app, len(ui.prog.Regions), ui.printer), int32(spaceS), int32(spaceXS), theme.Type.Small, theme.TextPrimary)
}

func (ui *gameUI) drawList(w, h int32) {
	listW := float32(w) * 0.58
	y := float32(headerHeight)
	end := min(ui.list.Offset+ui.list.Visible, len(ui.app.Catalog))
	for i := ui.list.Offset; i < end; i++ {
		c := ui.app.Catalog[i]
		rect := listRowRect(spaceXS, y, listW)
		theme.DrawListItem(rect, listRowState(i == ui.app.Selected, c.Seen || c.Caught), creatureLabel(c, ui.printer), creatureMark(c))
		y += theme.RowHeight
	}

	c, ok := ui.app.Current()
	if !ok {
		return
	}
	cx := listW + (float32(w)-listW)/2
	cy := float32(headerHeight) + float32(h-headerHeight-footerHeight)/2 - 10
	sprite := ui.preview.get(ui.assets, c, previewSize)
	dest := rl.NewRectangle(cx-previewSize/2, cy-previewSize/2, previewSize, previewSize)
	if c.Caught {
		theme.DrawSprite(sprite, dest, rl.White)
	} else {
		theme.DrawSilhouette(sprite, dest)
	}
	theme.DrawTextCentered(creatureLabel(c, ui.printer), int32(cx), int32(cy+previewSize/2+spaceS), theme.Type.Body, theme.TextSecondary)
}

func (ui *gameUI) drawDetail(w int32) {
	c, ok := ui.app.Current()
	d := ui.app.Detail
	if !ok || d == nil {
		return
	}
	top := float32(headerHeight) + spaceS
	sprite := ui.preview.get(ui.assets, c, detailSize)
	theme.DrawPanel(rl.NewRectangle(spaceS, top, detailSize+2*spaceS, detailSize+2*spaceS), theme.PanelStandard)
	theme.DrawSprite(sprite, rl.NewRectangle(2*spaceS, top+spaceS, detailSize, detailSize), rl.White)

	x := int32(detailSize + 4*spaceS)
	y := int32(top)
	maxW := w - x - int32(spaceS)
	theme.DrawText(creatureLabel(c, ui.printer), x, y, theme.Type.Header, theme.Accent)
	y += theme.LineHeight(theme.Type.Header)
	if d.Category != "" {
		theme.DrawText(d.Category, x, y, theme.Type.Small, theme.TextSecondary)
		y += theme.LineHeight(theme.Type.Small)
	}
	y = drawTypeChips(d.Types, x, y)

	body := theme.Type.Small
	lines := []string{
		ui.printer.Sprintf(i18n.KeyDetailCatchRate, d.CatchRate),
		ui.printer.Sprintf(i18n.KeyDetailCaught, c.TimesCaught),
	}
	if d.Height != "" || d.Weight != "" {
		lines = append(lines, ui.printer.Sprintf(i18n.KeyDetailSize, d.Height, d.Weight))
	}
	for _, line := range lines {
		theme.DrawText(line, x, y, body, theme.TextPrimary)
		y += theme.LineHeight(body)
	}
	if len(d.Evolutions) > 0 {
		y += int32(spaceXS)
		theme.DrawText(ui.printer.Sprintf(i18n.KeyDetailEvolutions), x, y, body, theme.TextSecondary)
		y += theme.LineHeight(body)
		drawWrappedText(strings.Join(d.Evolutions, " > "), x, y, maxW, body, theme.TextPrimary)
	}
}
