package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.French

	// Hunt
	message.SetString(lang, KeyFled, "%s s'est enfui !")
	message.SetString(lang, KeySpriteNotFound, "Sprite de %s introuvable !")
	message.SetString(lang, KeyBackgroundMiss, "Décor de %s introuvable !")
	message.SetString(lang, KeyEmptyRegion, "Aucun Pokémon à %s !")
	message.SetString(lang, KeyRegionLocked, "%s - VERROUILLÉE")
	message.SetString(lang, KeyNewRegionTitle, "Nouvelle région !")
	message.SetString(lang, KeyNewRegionBody, "La région de %s est disponible !")

	// Shell
	message.SetString(lang, KeyStats, "Vus %d/%d  Capturés %d  Chromatiques %d  Régions %d/%d")
	message.SetString(lang, KeyBonusUnlocked, "Bonus !")
	message.SetString(lang, KeyHintList, "A détails  X chasse  Y dresseur")
	message.SetString(lang, KeyHintDetail, "B retour")
	message.SetString(lang, KeyHintRegions, "A choisir  B retour")
	message.SetString(lang, KeyUnknownName, "???")
	message.SetString(lang, KeyVolume, "Volume %d%%")
	message.SetString(lang, KeyDetailType, "Type")
	message.SetString(lang, KeyDetailCatchRate, "Taux de capture %d")
	message.SetString(lang, KeyDetailEvolutions, "Évolutions")
	message.SetString(lang, KeyDetailSize, "Taille %s  Poids %s")
	message.SetString(lang, KeyDetailCaught, "Capturé %d fois")
	message.SetString(lang, KeyTrainerTitle, "Choisis ton dresseur")
	message.SetString(lang, KeyTrainerHint, "Gauche/Droite changer  A valider")

	// Minigames
	message.SetString(lang, KeyMemoryWatch, "Mémorise la séquence !")
	message.SetString(lang, KeyMemoryRepeat, "À toi !")
	message.SetString(lang, KeyQTEPrompt, "Appuie quand le curseur est dans la zone !")
	message.SetString(lang, KeyDodgePrompt, "Esquive les attaques !")
	message.SetString(lang, KeyThrowPrompt, "Vise et lance la Poké Ball !")
	message.SetString(lang, KeyStabilizePrompt, "Stabilise la Poké Ball !")
	message.SetString(lang, KeyStabilizeIntro, "La Poké Ball bouge...")
	message.SetString(lang, KeyGotcha, "Gotcha ! %s est capturé !")
	message.SetString(lang, KeyLives, "Vies %d")
}
