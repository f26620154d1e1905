package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// Handheld palette: red shell around a pale screen.
var (
	BG            = rl.NewColor(0x1B, 0x1D, 0x24, 255) // #1B1D24
	Shell         = rl.NewColor(0xC8, 0x2A, 0x2A, 255) // #C82A2A
	Panel         = rl.NewColor(0x25, 0x29, 0x33, 255) // #252933
	PanelRaised   = rl.NewColor(0x2F, 0x35, 0x42, 255) // #2F3542
	Border        = rl.NewColor(0x44, 0x4C, 0x5C, 255) // #444C5C
	TextPrimary   = rl.NewColor(0xF2, 0xF2, 0xEE, 255) // #F2F2EE
	TextSecondary = rl.NewColor(0xB4, 0xB9, 0xC2, 255) // #B4B9C2
	TextMuted     = rl.NewColor(0x7E, 0x86, 0x92, 255) // #7E8692
	Accent        = rl.NewColor(0xFF, 0xCB, 0x05, 255) // #FFCB05
	AccentBlue    = rl.NewColor(0x3D, 0x7D, 0xCA, 255) // #3D7DCA
	Locked        = rl.NewColor(0xFF, 0x64, 0x64, 255) // #FF6464
	HPHigh        = rl.NewColor(0x48, 0xD0, 0x68, 255)
	HPMid         = rl.NewColor(0xF8, 0xC8, 0x30, 255)
	HPLow         = rl.NewColor(0xE8, 0x40, 0x30, 255)
	Dialog        = rl.NewColor(0xF0, 0xF0, 0xFF, 255)
	DialogText    = rl.NewColor(0x1E, 0x1E, 0x1E, 255)
	DialogTitle   = rl.NewColor(0x00, 0x00, 0x8B, 255)
	Sky           = rl.NewColor(0xC8, 0xDC, 0xFF, 255)
)

var typeColors = map[string]rl.Color{
	"normal":   rl.NewColor(168, 168, 120, 255),
	"plante":   rl.NewColor(120, 200, 80, 255),
	"grass":    rl.NewColor(120, 200, 80, 255),
	"poison":   rl.NewColor(160, 64, 160, 255),
	"feu":      rl.NewColor(240, 128, 48, 255),
	"fire":     rl.NewColor(240, 128, 48, 255),
	"vol":      rl.NewColor(168, 144, 240, 255),
	"flying":   rl.NewColor(168, 144, 240, 255),
	"eau":      rl.NewColor(104, 144, 240, 255),
	"water":    rl.NewColor(104, 144, 240, 255),
	"insecte":  rl.NewColor(168, 184, 32, 255),
	"bug":      rl.NewColor(168, 184, 32, 255),
	"électrik": rl.NewColor(248, 208, 48, 255),
	"electric": rl.NewColor(248, 208, 48, 255),
	"sol":      rl.NewColor(224, 192, 104, 255),
	"ground":   rl.NewColor(224, 192, 104, 255),
	"fée":      rl.NewColor(238, 153, 172, 255),
	"fairy":    rl.NewColor(238, 153, 172, 255),
	"combat":   rl.NewColor(192, 48, 40, 255),
	"fighting": rl.NewColor(192, 48, 40, 255),
	"psy":      rl.NewColor(248, 88, 136, 255),
	"psychic":  rl.NewColor(248, 88, 136, 255),
	"roche":    rl.NewColor(184, 160, 56, 255),
	"rock":     rl.NewColor(184, 160, 56, 255),
	"acier":    rl.NewColor(184, 184, 208, 255),
	"steel":    rl.NewColor(184, 184, 208, 255),
	"glace":    rl.NewColor(152, 216, 216, 255),
	"ice":      rl.NewColor(152, 216, 216, 255),
	"spectre":  rl.NewColor(112, 88, 152, 255),
	"ghost":    rl.NewColor(112, 88, 152, 255),
	"dragon":   rl.NewColor(112, 56, 248, 255),
	"ténèbres": rl.NewColor(112, 88, 72, 255),
	"dark":     rl.NewColor(112, 88, 72, 255),
}

// TypeColor returns the badge color for a creature type in French or
// English, white when unknown.
func TypeColor(name string) rl.Color {
	if c, ok := typeColors[lower(name)]; ok {
		return c
	}
	return rl.White
}

// HPColor picks the bar color for a remaining fraction.
func HPColor(fraction float32) rl.Color {
	switch {
	case fraction > 0.5:
		return HPHigh
	case fraction > 0.2:
		return HPMid
	default:
		return HPLow
	}
}
