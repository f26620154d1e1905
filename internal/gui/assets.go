package gui

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/pokedex/internal/catalog"
	"github.com/appengine-ltd/pokedex/internal/game"
	"github.com/appengine-ltd/pokedex/internal/hunt"
	"github.com/appengine-ltd/pokedex/internal/ui/theme"
)

// assetPaths resolves the on-disk layout under the assets root.
type assetPaths struct {
	root string
}

func (p assetPaths) creature(file string) string {
	return filepath.Join(p.root, "sprites", filepath.Base(file))
}

func (p assetPaths) trainer(name string, facing hunt.Facing) string {
	file := "back.png"
	if facing == hunt.FacingFront {
		file = "front.png"
	}
	return filepath.Join(p.root, "assets", "trainers", name, file)
}

func (p assetPaths) trainersDir() string {
	return filepath.Join(p.root, "assets", "trainers")
}

func (p assetPaths) regionDir(region string) string {
	return filepath.Join(p.root, "assets", "regions", strings.ToLower(region))
}

func (p assetPaths) regionIcon(region string) string {
	return filepath.Join(p.regionDir(region), "icon.png")
}

func (p assetPaths) stadiums(region string) []string {
	matches, _ := filepath.Glob(filepath.Join(p.regionDir(region), "stadium", "*.png"))
	sort.Strings(matches)
	return matches
}

func (p assetPaths) fallbackBackground() string {
	return filepath.Join(p.root, "assets", "fallback_background.png")
}

func (p assetPaths) ball() string {
	return filepath.Join(p.root, "assets", "ball.png")
}

func (p assetPaths) music(file string) string {
	return filepath.Join(p.root, "audio", file)
}

func (p assetPaths) menuMusic() []string {
	var out []string
	for _, ext := range []string{"*.ogg", "*.mp3", "*.wav"} {
		matches, _ := filepath.Glob(filepath.Join(p.root, "audio", "menu", ext))
		out = append(out, matches...)
	}
	sort.Strings(out)
	return out
}

type textureLoader func(path string, size int) (*theme.Sprite, error)

// assetCache loads textures once and reference counts the ones a hunt
// session holds. Icons and the ball are pinned until Close.
type assetCache struct {
	paths  assetPaths
	load   textureLoader
	unload func(*theme.Sprite)

	entries map[string]*cacheEntry
}

type cacheEntry struct {
	sprite *theme.Sprite
	refs   int
	pinned bool
}

func newAssetCache(root string) *assetCache {
	return &assetCache{
		paths:   assetPaths{root: root},
		load:    loadTexture,
		unload:  func(s *theme.Sprite) { s.Unload() },
		entries: map[string]*cacheEntry{},
	}
}

func loadTexture(path string, size int) (*theme.Sprite, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%s: %w", path, hunt.ErrSpriteNotFound)
	}
	img := rl.LoadImage(path)
	if img == nil || img.Width == 0 {
		return nil, fmt.Errorf("decode %s: %w", path, hunt.ErrSpriteNotFound)
	}
	defer rl.UnloadImage(img)
	if size > 0 {
		rl.ImageResizeNN(img, int32(size), int32(size))
	}
	tex := rl.LoadTextureFromImage(img)
	return &theme.Sprite{Tex: tex, Path: path}, nil
}

func (c *assetCache) key(path string, size int) string {
	return fmt.Sprintf("%s@%d", path, size)
}

func (c *assetCache) acquire(path string, size int, pinned bool) (*theme.Sprite, error) {
	k := c.key(path, size)
	if e, ok := c.entries[k]; ok {
		if pinned {
			e.pinned = true
		} else {
			e.refs++
		}
		return e.sprite, nil
	}
	s, err := c.load(path, size)
	if err != nil {
		return nil, err
	}
	e := &cacheEntry{sprite: s, pinned: pinned}
	if !pinned {
		e.refs = 1
	}
	c.entries[k] = e
	return s, nil
}

func (c *assetCache) release(s hunt.Sprite) {
	sp := theme.AsSprite(s)
	if sp == nil {
		return
	}
	for k, e := range c.entries {
		if e.sprite != sp {
			continue
		}
		if e.refs > 0 {
			e.refs--
		}
		if e.refs == 0 && !e.pinned {
			c.unload(e.sprite)
			delete(c.entries, k)
		}
		return
	}
}

func (c *assetCache) CreatureSprite(cr catalog.Creature, shiny bool, size int) (hunt.Sprite, error) {
	file := cr.Sprite(shiny)
	if file == "" {
		return nil, fmt.Errorf("creature %d: %w", cr.ID, hunt.ErrSpriteNotFound)
	}
	return handle(c.acquire(c.paths.creature(file), size, false))
}

func (c *assetCache) TrainerSprite(trainer string, facing hunt.Facing) (hunt.Sprite, error) {
	return handle(c.acquire(c.paths.trainer(trainer, facing), 0, false))
}

// Background picks a random stadium of the region, then the shared fallback.
func (c *assetCache) Background(region game.Region, rng *rand.Rand) (hunt.Sprite, error) {
	path := c.paths.fallbackBackground()
	if stadiums := c.paths.stadiums(region.Name); len(stadiums) > 0 {
		path = stadiums[rng.IntN(len(stadiums))]
	}
	return handle(c.acquire(path, 0, false))
}

// handle keeps a failed load from becoming a non-nil interface around a nil
// pointer.
func handle(s *theme.Sprite, err error) (hunt.Sprite, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (c *assetCache) Release(a *hunt.Assets) {
	for _, s := range []hunt.Sprite{a.Creature, a.TrainerBack, a.TrainerFront, a.Background} {
		c.release(s)
	}
	*a = hunt.Assets{}
}

// Pinned returns a sprite that lives until Close, or nil when it is missing.
func (c *assetCache) Pinned(path string, size int) *theme.Sprite {
	s, err := c.acquire(path, size, true)
	if err != nil {
		return nil
	}
	return s
}

func (c *assetCache) Close() {
	for k, e := range c.entries {
		c.unload(e.sprite)
		delete(c.entries, k)
	}
}

var _ hunt.AssetLoader = (*assetCache)(nil)
