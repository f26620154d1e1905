package hunt

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
)

// Surface is the display a phase draws on. It is owned exclusively by the
// running phase until that phase returns.
type Surface interface {
	Size() (width, height int)
}

// Sprite is an opaque loaded image handle.
type Sprite interface {
	Size() (width, height int)
}

// CombatGame is a combat minigame. It returns when the player wins, loses or
// quits and must not write to the catalog.
type CombatGame interface {
	Name() string
	PlayCombat(ctx context.Context, surface Surface, s *Session) CombatOutcome
}

// CatchGame returns the trainer's front sprite on a catch, for the
// stabilize scene.
type CatchGame interface {
	PlayCatch(ctx context.Context, surface Surface, s *Session) (CatchOutcome, Sprite)
}

type StabilizeGame interface {
	PlayStabilize(ctx context.Context, surface Surface, s *Session) StabilizeOutcome
}

// CombatRegistry holds the combat minigames a hunt picks from.
type CombatRegistry struct {
	games map[string]CombatGame
}

func NewCombatRegistry(games ...CombatGame) *CombatRegistry {
	r := &CombatRegistry{games: make(map[string]CombatGame, len(games))}
	for _, g := range games {
		r.Register(g)
	}
	return r
}

// Register panics on a duplicate name.
func (r *CombatRegistry) Register(g CombatGame) {
	if r.games == nil {
		r.games = make(map[string]CombatGame)
	}
	name := g.Name()
	if _, exists := r.games[name]; exists {
		panic(fmt.Sprintf("hunt: combat game %q already registered", name))
	}
	r.games[name] = g
}

// Names returns the registered names, sorted.
func (r *CombatRegistry) Names() []string {
	names := make([]string, 0, len(r.games))
	for name := range r.games {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *CombatRegistry) Get(name string) (CombatGame, bool) {
	g, ok := r.games[name]
	return g, ok
}

func (r *CombatRegistry) Len() int {
	return len(r.games)
}

// Choose picks uniformly. Names are sorted first so a seeded rng replays the
// same choice.
func (r *CombatRegistry) Choose(rng *rand.Rand) (CombatGame, bool) {
	names := r.Names()
	if len(names) == 0 {
		return nil, false
	}
	return r.games[names[rng.IntN(len(names))]], true
}
