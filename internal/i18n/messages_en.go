package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Hunt
	message.SetString(lang, KeyFled, "%s fled!")
	message.SetString(lang, KeySpriteNotFound, "Sprite for %s not found!")
	message.SetString(lang, KeyBackgroundMiss, "No background for %s!")
	message.SetString(lang, KeyEmptyRegion, "No pokemon in %s!")
	message.SetString(lang, KeyRegionLocked, "%s - LOCKED")
	message.SetString(lang, KeyNewRegionTitle, "New region!")
	message.SetString(lang, KeyNewRegionBody, "The %s region is now available!")

	// Shell
	message.SetString(lang, KeyStats, "Seen %d/%d  Caught %d  Shiny %d  Regions %d/%d")
	message.SetString(lang, KeyBonusUnlocked, "Bonus!")
	message.SetString(lang, KeyHintList, "A details  X hunt  Y trainer")
	message.SetString(lang, KeyHintDetail, "B back")
	message.SetString(lang, KeyHintRegions, "A select  B back")
	message.SetString(lang, KeyUnknownName, "???")
	message.SetString(lang, KeyVolume, "Volume %d%%")
	message.SetString(lang, KeyDetailType, "Type")
	message.SetString(lang, KeyDetailCatchRate, "Catch rate %d")
	message.SetString(lang, KeyDetailEvolutions, "Evolutions")
	message.SetString(lang, KeyDetailSize, "Height %s  Weight %s")
	message.SetString(lang, KeyDetailCaught, "Caught %d times")
	message.SetString(lang, KeyTrainerTitle, "Choose your trainer")
	message.SetString(lang, KeyTrainerHint, "Left/Right change  A confirm")

	// Minigames
	message.SetString(lang, KeyMemoryWatch, "Memorize the sequence!")
	message.SetString(lang, KeyMemoryRepeat, "Your turn!")
	message.SetString(lang, KeyQTEPrompt, "Press when the cursor is in the zone!")
	message.SetString(lang, KeyDodgePrompt, "Dodge the attacks!")
	message.SetString(lang, KeyThrowPrompt, "Aim and throw the Poké Ball!")
	message.SetString(lang, KeyStabilizePrompt, "Steady the Poké Ball!")
	message.SetString(lang, KeyStabilizeIntro, "The Poké Ball wobbles...")
	message.SetString(lang, KeyGotcha, "Gotcha! %s was caught!")
	message.SetString(lang, KeyLives, "Lives %d")
}
