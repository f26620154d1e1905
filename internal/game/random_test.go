package game

import "testing"

func TestSeededRNGDeterministic(t *testing.T) {
	rngA := SeededRNG(12345)
	rngB := SeededRNG(12345)

	for i := 0; i < 20; i++ {
		gotA := rngA.IntN(100000)
		gotB := rngB.IntN(100000)
		if gotA != gotB {
			t.Fatalf("expected deterministic sequence, mismatch at %d: %d != %d", i, gotA, gotB)
		}
	}
}

func TestSeedWordChangesWithSalt(t *testing.T) {
	a := seedWord(99, "draw")
	b := seedWord(99, "shiny")
	if a == b {
		t.Fatalf("expected different seed words for different salts")
	}
}

func TestRollShinyRespectsRateBounds(t *testing.T) {
	rng := SeededRNG(7)
	for i := 0; i < 200; i++ {
		if RollShiny(rng, 0) {
			t.Fatalf("expected rate 0 to never roll shiny")
		}
		if !RollShiny(rng, 1) {
			t.Fatalf("expected rate 1 to always roll shiny")
		}
	}
}
