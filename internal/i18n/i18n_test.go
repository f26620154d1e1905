package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestResolveFallsBackToFrench(t *testing.T) {
	cases := map[string]language.Tag{
		"":        language.French,
		"fr":      language.French,
		"en-GB":   language.English,
		"en":      language.English,
		"de":      language.French,
		"!!bad!!": language.French,
	}
	for input, want := range cases {
		if got := Resolve(input); got != want {
			t.Fatalf("Resolve(%q): expected %v, got %v", input, want, got)
		}
	}
}

func TestPrinterFormatsFledMessage(t *testing.T) {
	fr := Printer(language.French).Sprintf(KeyFled, "Pikachu")
	if fr != "Pikachu s'est enfui !" {
		t.Fatalf("unexpected french message %q", fr)
	}
	en := Printer(language.English).Sprintf(KeyFled, "Pikachu")
	if en != "Pikachu fled!" {
		t.Fatalf("unexpected english message %q", en)
	}
}

func TestNewRegionMessages(t *testing.T) {
	p := Printer(language.French)
	if got := p.Sprintf(KeyNewRegionTitle); got != "Nouvelle région !" {
		t.Fatalf("unexpected title %q", got)
	}
	if got := p.Sprintf(KeyNewRegionBody, "Johto"); got != "La région de Johto est disponible !" {
		t.Fatalf("unexpected body %q", got)
	}
}
