package gui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/text/message"

	"github.com/appengine-ltd/pokedex/internal/catalog"
	"github.com/appengine-ltd/pokedex/internal/hunt"
	"github.com/appengine-ltd/pokedex/internal/i18n"
	"github.com/appengine-ltd/pokedex/internal/ui/theme"
)

const (
	spaceXS = theme.PaddingXS
	spaceS  = theme.PaddingS
	spaceM  = theme.PaddingM
)

// creatureLabel is the list text of c. Unseen entries keep their number but
// hide the name.
func creatureLabel(c catalog.Creature, p *message.Printer) string {
	name := c.Name
	if !c.Seen && !c.Caught {
		name = p.Sprintf(i18n.KeyUnknownName)
	}
	return fmt.Sprintf("#%03d %s", c.ID, name)
}

// creatureMark is the right hand list badge: "*" shiny, "+" caught.
func creatureMark(c catalog.Creature) string {
	switch {
	case c.IsShiny:
		return "*"
	case c.Caught:
		return "+"
	default:
		return ""
	}
}

// statsLine is the shell header: seen out of the visible catalog, captures,
// shinies and open regions, plus a bonus tag once the bonus rule is met.
func statsLine(app *hunt.AppState, regions int, p *message.Printer) string {
	s := app.Stats
	line := p.Sprintf(i18n.KeyStats, s.Seen, len(app.Catalog), s.Caught, s.Shiny, s.RegionsUnlocked, regions)
	if app.Bonus {
		line += "  " + p.Sprintf(i18n.KeyBonusUnlocked)
	}
	return line
}

func listRowRect(x, y, width float32) rl.Rectangle {
	return rl.NewRectangle(x, y, width, theme.RowHeight)
}

func listRowState(selected, seen bool) theme.ListItemState {
	switch {
	case selected:
		return theme.ListItemSelected
	case !seen:
		return theme.ListItemUnseen
	}
	return theme.ListItemNormal
}

// wrapText breaks text into lines no wider than maxWidth.
func wrapText(text string, maxWidth int32, measure func(string) int32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	lines := make([]string, 0, 4)
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

// drawWrappedText draws text from (x, y) and returns the y below it.
func drawWrappedText(text string, x, y, maxWidth, size int32, clr rl.Color) int32 {
	measure := func(s string) int32 { return theme.MeasureText(s, size) }
	for _, line := range wrapText(text, maxWidth, measure) {
		theme.DrawText(line, x, y, size, clr)
		y += theme.LineHeight(size)
	}
	return y
}

// drawTypeChips draws one colored tag per type and returns the y below them.
func drawTypeChips(types []string, x, y int32) int32 {
	size := theme.Type.Small
	for _, t := range types {
		w := theme.MeasureText(t, size) + int32(2*spaceS)
		rect := rl.NewRectangle(float32(x), float32(y), float32(w), float32(size)+2*spaceXS)
		rl.DrawRectangleRounded(rect, 0.5, 6, theme.TypeColor(t))
		theme.DrawText(t, x+int32(spaceS), y+int32(spaceXS), size, rl.Black)
		x += w + int32(spaceXS)
	}
	return y + size + int32(2*spaceXS) + int32(spaceS)
}
