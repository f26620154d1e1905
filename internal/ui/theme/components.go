package theme

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	PaddingXS = float32(4)
	PaddingS  = float32(8)
	PaddingM  = float32(12)
	PaddingL  = float32(16)

	RowHeight = float32(22)

	roundness   = float32(0.15)
	segments    = int32(8)
	strokeThin  = float32(1.2)
	strokeThick = float32(2.0)
	shadowDrop  = float32(3)
	markerWidth = float32(3)
)

type PanelVariant int

const (
	PanelStandard PanelVariant = iota
	// PanelLifted floats over other content and casts a shadow.
	PanelLifted
)

type ListItemState int

const (
	ListItemNormal ListItemState = iota
	ListItemSelected
	// ListItemUnseen dims rows for creatures never encountered.
	ListItemUnseen
)

func DrawPanel(rect rl.Rectangle, variant PanelVariant) {
	fill, stroke, width := Panel, Border, strokeThin
	if variant == PanelLifted {
		shadow := rect
		shadow.X += shadowDrop
		shadow.Y += shadowDrop
		rl.DrawRectangleRounded(shadow, roundness, segments, rl.Fade(rl.Black, 0.45))
		fill, stroke, width = PanelRaised, AccentBlue, strokeThick
	}
	rl.DrawRectangleRounded(rect, roundness, segments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, roundness, segments, width, stroke)
}

// DrawListItem draws one catalog row with its label on the left and a short
// marker on the right.
func DrawListItem(rect rl.Rectangle, state ListItemState, label, marker string) {
	labelColor, markerColor := TextPrimary, Accent
	switch state {
	case ListItemSelected:
		rl.DrawRectangleRec(rect, PanelRaised)
		rl.DrawRectangleRec(rl.NewRectangle(rect.X, rect.Y+1, markerWidth, rect.Height-2), Shell)
		labelColor = Accent
	case ListItemUnseen:
		labelColor = TextMuted
	}

	y := int32(rect.Y + (rect.Height-float32(Type.Body))/2)
	DrawText(label, int32(rect.X+PaddingM), y, Type.Body, labelColor)
	if marker != "" {
		w := MeasureText(marker, Type.Body)
		DrawText(marker, int32(rect.X+rect.Width-PaddingM)-w, y, Type.Body, markerColor)
	}
}

// DrawHeader draws a screen title underlined in the accent colour.
func DrawHeader(text string, x, y int32) {
	DrawText(text, x, y, Type.Header, TextPrimary)
	w := max(MeasureText(text, Type.Header)*3/5, 32)
	underline := float32(y + Type.Header + 3)
	rl.DrawLineEx(rl.NewVector2(float32(x), underline), rl.NewVector2(float32(x+w), underline), strokeThick, Accent)
}

func DrawHintText(text string, x, y int32) {
	DrawText(text, x, y, Type.Small, TextMuted)
}

// DrawHPBar draws a battle HP gauge filled to fraction.
func DrawHPBar(rect rl.Rectangle, fraction float32) {
	fraction = min(max(fraction, 0), 1)
	rl.DrawRectangleRec(rect, rl.Fade(BG, 0.85))
	fill := rl.NewRectangle(rect.X+1, rect.Y+1, (rect.Width-2)*fraction, rect.Height-2)
	if fill.Width > 0 {
		rl.DrawRectangleRec(fill, HPColor(fraction))
	}
	rl.DrawRectangleLinesEx(rect, 1, TextPrimary)
}

// DrawMessage draws a transient banner across the bottom of the screen.
func DrawMessage(text string, screenW, screenH int32) {
	if text == "" {
		return
	}
	h := float32(Type.Body) + PaddingM*2
	rect := rl.NewRectangle(PaddingL, float32(screenH)-h-PaddingL, float32(screenW)-PaddingL*2, h)
	rl.DrawRectangleRounded(rect, roundness, segments, rl.Fade(BG, 0.92))
	rl.DrawRectangleRoundedLinesEx(rect, roundness, segments, strokeThick, Accent)
	DrawTextCentered(text, screenW/2, int32(rect.Y+PaddingM), Type.Body, TextPrimary)
}

// DrawDialog draws a centered two-line announcement box over a dimmed screen.
func DrawDialog(title, body string, screenW, screenH int32) {
	rl.DrawRectangle(0, 0, screenW, screenH, rl.Fade(rl.Black, 0.7))
	rect := rl.NewRectangle(40, float32(screenH)/2-50, float32(screenW)-80, 100)
	rl.DrawRectangleRounded(rect, roundness, segments, Dialog)
	rl.DrawRectangleRoundedLinesEx(rect, roundness, segments, strokeThick, DialogText)
	DrawTextCentered(title, screenW/2, int32(rect.Y+15), Type.Title, DialogTitle)
	DrawTextCentered(body, screenW/2, int32(rect.Y+58), Type.Body, DialogText)
}
