package game

import (
	"math/rand/v2"

	"github.com/appengine-ltd/pokedex/internal/catalog"
)

// Locked reports whether r is still closed at the given ceiling. A region
// opens as soon as its first id is below the ceiling.
func Locked(r Region, maxID int) bool {
	return r.MinID >= maxID
}

// Selector draws encounter targets. It holds no state between calls.
type Selector struct {
	Regions []Region
}

func NewSelector(p *Progression) Selector {
	return Selector{Regions: p.Regions}
}

// Pool is the set of creatures in the view that r may spawn. Caught creatures
// stay eligible.
func (s Selector) Pool(r Region, view catalog.View) []catalog.Creature {
	return view.Range(r.MinID, r.MaxID)
}

func (s Selector) Locked(r Region, maxID int) bool {
	return Locked(r, maxID)
}

// InitialCursor places the picker on the last region chosen, or the first.
func (s Selector) InitialCursor(last string) int {
	for i, r := range s.Regions {
		if r.Name == last {
			return i
		}
	}
	return 0
}

// Draw picks uniformly from pool. ok=false for an empty pool.
func (s Selector) Draw(pool []catalog.Creature, rng *rand.Rand) (catalog.Creature, bool) {
	if len(pool) == 0 {
		return catalog.Creature{}, false
	}
	return pool[rng.IntN(len(pool))], true
}

// RollShiny is one Bernoulli trial at rate.
func RollShiny(rng *rand.Rand, rate float64) bool {
	return rng.Float64() < rate
}

// PickMusic chooses a region track, or "" when the region has none.
func PickMusic(r Region, rng *rand.Rand) string {
	if len(r.Music) == 0 {
		return ""
	}
	return r.Music[rng.IntN(len(r.Music))]
}
