// Package catalog defines the creature records and the store contract the
// Pokédex shell and the hunt orchestrator read from and write to.
package catalog

import (
	"context"
	"errors"
	"sort"
)

// ErrNotFound is returned when a creature id has no row in the store.
var ErrNotFound = errors.New("creature not found")

// Preference keys shared by the shell and the hunt.
const (
	PrefNewRegionUnlocked = "new_region_unlocked"
	PrefLastRegion        = "last_selected_region"
	PrefTrainer           = "trainer"
	PrefMusicVolume       = "music_volume"
)

// Creature is one catalog row.
type Creature struct {
	ID           int
	Name         string
	NameEN       string
	SpriteNormal string
	SpriteShiny  string
	Seen         bool
	Caught       bool
	IsShiny      bool
	TimesCaught  int
}

// Sprite returns the sprite reference for the requested variant. A missing
// shiny reference falls back to the normal one.
func (c Creature) Sprite(shiny bool) string {
	if shiny && c.SpriteShiny != "" {
		return c.SpriteShiny
	}
	return c.SpriteNormal
}

// Store is the persistence contract. Only the hunt success path and the
// maintenance tooling write to it.
type Store interface {
	// ListCreatures returns ids up to maxID in order. bonusID is held back
	// unless includeBonus is set, whatever the ceiling.
	ListCreatures(ctx context.Context, maxID, bonusID int, includeBonus bool) ([]Creature, error)
	Creature(ctx context.Context, id int) (Creature, error)
	Detail(ctx context.Context, id int) (Detail, error)
	RecordCapture(ctx context.Context, id int, shiny bool) error
	CountCaught(ctx context.Context) (int, error)
	CountShiny(ctx context.Context) (int, error)
	CountSeen(ctx context.Context) (int, error)
	BonusUnlocked(ctx context.Context, bonusID int, requiredBelow int) (bool, error)
	Preference(ctx context.Context, key string) (string, error)
	SetPreference(ctx context.Context, key, value string) error
}

// View is the in-memory slice of the catalog bounded by the unlock ceiling,
// ordered by id.
type View []Creature

// Index returns the position of id in the view.
func (v View) Index(id int) (int, bool) {
	i := sort.Search(len(v), func(i int) bool { return v[i].ID >= id })
	if i < len(v) && v[i].ID == id {
		return i, true
	}
	return 0, false
}

// Range returns the creatures with ids in [minID, maxID).
func (v View) Range(minID, maxID int) []Creature {
	var out []Creature
	for _, c := range v {
		if c.ID >= minID && c.ID < maxID {
			out = append(out, c)
		}
	}
	return out
}

// Pick returns the creatures whose id is in ids, keeping view order.
func (v View) Pick(ids []int) []Creature {
	want := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var out []Creature
	for _, c := range v {
		if _, ok := want[c.ID]; ok {
			out = append(out, c)
		}
	}
	return out
}
