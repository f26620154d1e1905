package theme

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TextDrawFunc renders text with caller-provided font handling.
type TextDrawFunc func(text string, x, y, fontSize int32, clr rl.Color)

// TextMeasureFunc reports text width in pixels for the active font.
type TextMeasureFunc func(text string, fontSize int32) int32

var (
	textDrawFn TextDrawFunc = func(text string, x, y, fontSize int32, clr rl.Color) {
		rl.DrawText(text, x, y, fontSize, clr)
	}
	textMeasureFn TextMeasureFunc = func(text string, fontSize int32) int32 {
		return int32(rl.MeasureText(text, fontSize))
	}
)

// SetTextRenderer wires theme helpers to the GUI font.
func SetTextRenderer(draw TextDrawFunc, measure TextMeasureFunc) {
	if draw != nil {
		textDrawFn = draw
	}
	if measure != nil {
		textMeasureFn = measure
	}
}

func DrawText(text string, x, y, fontSize int32, clr rl.Color) {
	textDrawFn(text, x, y, fontSize, clr)
}

// DrawTextCentered draws text horizontally centered on cx.
func DrawTextCentered(text string, cx, y, fontSize int32, clr rl.Color) {
	w := textMeasureFn(text, fontSize)
	textDrawFn(text, cx-w/2, y, fontSize, clr)
}

func MeasureText(text string, fontSize int32) int32 {
	return textMeasureFn(text, fontSize)
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
