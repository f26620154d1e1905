package gui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/appengine-ltd/pokedex/internal/catalog"
	"github.com/appengine-ltd/pokedex/internal/game"
	"github.com/appengine-ltd/pokedex/internal/hunt"
	"github.com/appengine-ltd/pokedex/internal/ui/theme"
)

// newTestCache builds a cache whose loader checks the file exists but never
// touches the GPU.
func newTestCache(t *testing.T, root string) (*assetCache, *[]string) {
	t.Helper()
	var unloaded []string
	c := newAssetCache(root)
	c.load = func(path string, _ int) (*theme.Sprite, error) {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%s: %w", path, hunt.ErrSpriteNotFound)
		}
		return &theme.Sprite{Path: path}, nil
	}
	c.unload = func(s *theme.Sprite) { unloaded = append(unloaded, s.Path) }
	return c, &unloaded
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestCreatureSpriteUsesShinyFileName(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "sprites", "25_shiny.png"))
	c, _ := newTestCache(t, root)

	cr := catalog.Creature{ID: 25, SpriteNormal: "https://cdn/sprites/25.png", SpriteShiny: "https://cdn/sprites/25_shiny.png"}
	s, err := c.CreatureSprite(cr, true, hunt.CombatSpriteSize)
	if err != nil {
		t.Fatalf("expected shiny sprite, got %v", err)
	}
	if got := theme.AsSprite(s).Path; got != filepath.Join(root, "sprites", "25_shiny.png") {
		t.Fatalf("unexpected path %s", got)
	}

	_, err = c.CreatureSprite(cr, false, hunt.CombatSpriteSize)
	if !errors.Is(err, hunt.ErrSpriteNotFound) {
		t.Fatalf("expected ErrSpriteNotFound for missing normal sprite, got %v", err)
	}
	if _, err := c.CreatureSprite(catalog.Creature{ID: 1}, false, 0); !errors.Is(err, hunt.ErrSpriteNotFound) {
		t.Fatalf("expected ErrSpriteNotFound without a file name, got %v", err)
	}
}

func TestBackgroundFallsBack(t *testing.T) {
	root := t.TempDir()
	c, _ := newTestCache(t, root)
	kanto := game.Region{Name: "Kanto", MinID: 1, MaxID: 152}

	if _, err := c.Background(kanto, game.SeededRNG(1)); !errors.Is(err, hunt.ErrSpriteNotFound) {
		t.Fatalf("expected missing background error, got %v", err)
	}

	touch(t, filepath.Join(root, "assets", "fallback_background.png"))
	s, err := c.Background(kanto, game.SeededRNG(1))
	if err != nil || theme.AsSprite(s).Path != c.paths.fallbackBackground() {
		t.Fatalf("expected fallback background, got %v", err)
	}

	touch(t, filepath.Join(root, "assets", "regions", "kanto", "stadium", "a.png"))
	touch(t, filepath.Join(root, "assets", "regions", "kanto", "stadium", "b.png"))
	s, err = c.Background(kanto, game.SeededRNG(1))
	if err != nil {
		t.Fatalf("background: %v", err)
	}
	if dir := filepath.Dir(theme.AsSprite(s).Path); dir != filepath.Join(root, "assets", "regions", "kanto", "stadium") {
		t.Fatalf("expected a stadium background, got %s", dir)
	}
}

func TestReleaseUnloadsWhenLastSessionLetsGo(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "assets", "trainers", "red", "back.png"))
	c, unloaded := newTestCache(t, root)

	first, err := c.TrainerSprite("red", hunt.FacingBack)
	if err != nil {
		t.Fatalf("trainer: %v", err)
	}
	second, _ := c.TrainerSprite("red", hunt.FacingBack)
	if first != second {
		t.Fatalf("expected cached sprite to be shared")
	}

	a := hunt.Assets{TrainerBack: first}
	c.Release(&a)
	if len(*unloaded) != 0 {
		t.Fatalf("expected sprite kept while still referenced")
	}
	if a.TrainerBack != nil {
		t.Fatalf("expected assets cleared after release")
	}
	b := hunt.Assets{TrainerBack: second}
	c.Release(&b)
	if len(*unloaded) != 1 {
		t.Fatalf("expected sprite unloaded after last release, got %v", *unloaded)
	}
}

func TestPinnedSpritesSurviveRelease(t *testing.T) {
	root := t.TempDir()
	icon := filepath.Join(root, "assets", "regions", "johto", "icon.png")
	touch(t, icon)
	c, unloaded := newTestCache(t, root)

	s := c.Pinned(c.paths.regionIcon("Johto"), 90)
	if s == nil {
		t.Fatalf("expected pinned icon")
	}
	a := hunt.Assets{Background: s}
	c.Release(&a)
	if len(*unloaded) != 0 {
		t.Fatalf("expected pinned sprite kept, got %v", *unloaded)
	}
	c.Close()
	if len(*unloaded) != 1 || len(c.entries) != 0 {
		t.Fatalf("expected close to unload everything")
	}
	if c.Pinned(filepath.Join(root, "missing.png"), 0) != nil {
		t.Fatalf("expected nil for a missing pinned sprite")
	}
}

func TestMenuMusicListing(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "audio", "menu", "b.ogg"))
	touch(t, filepath.Join(root, "audio", "menu", "a.mp3"))
	touch(t, filepath.Join(root, "audio", "menu", "notes.txt"))
	got := assetPaths{root: root}.menuMusic()
	if len(got) != 2 || filepath.Base(got[0]) != "a.mp3" {
		t.Fatalf("expected two sorted tracks, got %v", got)
	}
}
