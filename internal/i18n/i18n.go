// Package i18n registers operator-facing strings and resolves the display
// language.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys.
const (
	KeyFled             = "hunt.fled"
	KeySpriteNotFound   = "hunt.sprite_not_found"
	KeyBackgroundMiss   = "hunt.background_not_found"
	KeyEmptyRegion      = "hunt.empty_region"
	KeyRegionLocked     = "hunt.region_locked"
	KeyNewRegionTitle   = "region.new_title"
	KeyNewRegionBody    = "region.new_body"
	KeyStats            = "shell.stats"
	KeyBonusUnlocked    = "shell.bonus_unlocked"
	KeyHintList         = "shell.hint_list"
	KeyHintDetail       = "shell.hint_detail"
	KeyHintRegions      = "shell.hint_regions"
	KeyUnknownName      = "shell.unknown_name"
	KeyVolume           = "shell.volume"
	KeyDetailType       = "detail.type"
	KeyDetailCatchRate  = "detail.catch_rate"
	KeyDetailEvolutions = "detail.evolutions"
	KeyDetailSize       = "detail.size"
	KeyDetailCaught     = "detail.times_caught"
	KeyTrainerTitle     = "trainer.title"
	KeyTrainerHint      = "trainer.hint"
	KeyMemoryWatch      = "minigame.memory.watch"
	KeyMemoryRepeat     = "minigame.memory.repeat"
	KeyQTEPrompt        = "minigame.qte.prompt"
	KeyDodgePrompt      = "minigame.dodge.prompt"
	KeyThrowPrompt      = "minigame.throw.prompt"
	KeyStabilizePrompt  = "minigame.stabilize.prompt"
	KeyStabilizeIntro   = "minigame.stabilize.intro"
	KeyGotcha           = "minigame.gotcha"
	KeyLives            = "minigame.lives"
)

var supported = []language.Tag{language.French, language.English}

var matcher = language.NewMatcher(supported)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Default is French, the language the device ships with.
func Default() language.Tag {
	return language.French
}

// Resolve maps a configured locale such as "en-GB" onto a supported tag.
func Resolve(value string) language.Tag {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default()
	}
	tag, err := language.Parse(value)
	if err != nil {
		return Default()
	}
	_, idx, _ := matcher.Match(tag)
	return supported[idx]
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}
