package theme

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestTypeColorAcceptsBothLanguages(t *testing.T) {
	if TypeColor("Feu") != TypeColor("fire") {
		t.Fatalf("expected French and English fire to match")
	}
	if TypeColor(" Électrik ") != TypeColor("electric") {
		t.Fatalf("expected accented names to resolve")
	}
	if TypeColor("Shadow") != rl.White {
		t.Fatalf("expected unknown type to be white")
	}
}

func TestHPColorThresholds(t *testing.T) {
	cases := []struct {
		fraction float32
		want     rl.Color
	}{
		{1, HPHigh},
		{0.51, HPHigh},
		{0.5, HPMid},
		{0.21, HPMid},
		{0.2, HPLow},
		{0, HPLow},
	}
	for _, tc := range cases {
		if got := HPColor(tc.fraction); got != tc.want {
			t.Fatalf("fraction %v: expected %v, got %v", tc.fraction, tc.want, got)
		}
	}
}

func TestNilSpriteIsSafe(t *testing.T) {
	var s *Sprite
	if s.Loaded() {
		t.Fatalf("expected nil sprite unloaded")
	}
	if w, h := s.Size(); w != 0 || h != 0 {
		t.Fatalf("expected zero size, got %dx%d", w, h)
	}
	s.Unload()
	if AsSprite(nil) != nil || AsSprite("texture") != nil {
		t.Fatalf("expected foreign values to unwrap to nil")
	}
}

func TestLineHeight(t *testing.T) {
	if got := LineHeight(10); got != 13 {
		t.Fatalf("expected 13, got %d", got)
	}
	if got := LineHeight(0); got != 1 {
		t.Fatalf("expected clamp to size 1, got %d", got)
	}
}
