package gui

import (
	"math"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/pokedex/internal/ui/theme"
)

const fontBakeSize = 32

type fontCandidate struct {
	file  string
	pixel bool
}

// Bitmap fonts first; they only look right with point filtering.
var fontCandidates = []fontCandidate{
	{file: "PokemonGb.ttf", pixel: true},
	{file: "NotoSans-Regular.ttf"},
}

type typographyState struct {
	font   rl.Font
	loaded bool
}

var uiType typographyState

// fontGlyphs is the codepoint set baked into the atlas: printable ASCII,
// Latin-1 for French names, plus the gender signs some names carry.
func fontGlyphs() []rune {
	glyphs := make([]rune, 0, 95+96+2)
	for r := rune(0x20); r <= 0x7E; r++ {
		glyphs = append(glyphs, r)
	}
	for r := rune(0xA0); r <= 0xFF; r++ {
		glyphs = append(glyphs, r)
	}
	return append(glyphs, '♀', '♂')
}

// initTypography loads the first bundled font found under root and routes
// theme text through it. Without one, raylib's default font draws ASCII only.
func initTypography(root string) {
	glyphs := fontGlyphs()
	for _, c := range fontCandidates {
		path := filepath.Join(root, "assets", "fonts", c.file)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		font := rl.LoadFontEx(path, fontBakeSize, glyphs, int32(len(glyphs)))
		if font.Texture.ID == 0 {
			continue
		}
		filter := rl.FilterBilinear
		if c.pixel {
			filter = rl.FilterPoint
		}
		rl.SetTextureFilter(font.Texture, filter)
		uiType = typographyState{font: font, loaded: true}
		break
	}
	theme.SetTextRenderer(drawText, measureText)
}

func shutdownTypography() {
	if uiType.loaded {
		rl.UnloadFont(uiType.font)
	}
	uiType = typographyState{}
}

func drawText(text string, x, y, fontSize int32, clr rl.Color) {
	if !uiType.loaded {
		rl.DrawText(text, x, y, fontSize, clr)
		return
	}
	rl.DrawTextEx(uiType.font, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(fontSize), 1, clr)
}

func measureText(text string, fontSize int32) int32 {
	if !uiType.loaded {
		return rl.MeasureText(text, fontSize)
	}
	return int32(math.Round(float64(rl.MeasureTextEx(uiType.font, text, float32(fontSize), 1).X)))
}
