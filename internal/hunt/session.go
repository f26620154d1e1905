package hunt

import (
	"github.com/google/uuid"

	"github.com/appengine-ltd/pokedex/internal/catalog"
	"github.com/appengine-ltd/pokedex/internal/game"
)

// CombatSpriteSize is the edge length creature sprites are scaled to for the
// battle scenes.
const CombatSpriteSize = 128

// Assets are loaded once at encounter setup and shared by every later phase.
type Assets struct {
	Creature     Sprite
	TrainerBack  Sprite
	TrainerFront Sprite
	Background   Sprite
	Types        []string
	Detail       catalog.Detail
}

// Session is the transient state of one hunt. It is never persisted.
type Session struct {
	ID     uuid.UUID
	State  State
	Region game.Region
	Target catalog.Creature
	Shiny  bool
	Assets Assets
}

func newSession() *Session {
	return &Session{ID: uuid.New(), State: RegionSelection}
}

// clearEncounter drops the target so a new draw can happen.
func (s *Session) clearEncounter() {
	s.Region = game.Region{}
	s.Target = catalog.Creature{}
	s.Shiny = false
	s.Assets = Assets{}
}
