package hunt

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/appengine-ltd/pokedex/internal/catalog"
	"github.com/appengine-ltd/pokedex/internal/game"
)

var (
	// ErrSpriteNotFound marks a missing creature, trainer or background image.
	ErrSpriteNotFound = errors.New("sprite not found")
	// ErrEmptyPool means a region has no creature in the current view.
	ErrEmptyPool = errors.New("no creatures in region")
)

type PickAction int

const (
	PickConfirm PickAction = iota
	PickCancel
	PickQuit
)

// PickRequest describes the grid the picker shows. Message is drawn over it
// until it expires.
type PickRequest struct {
	Regions []game.Region
	Ceiling int
	Cursor  int
	Message Message
}

type PickResult struct {
	Action PickAction
	Cursor int
	Region game.Region
}

// RegionPicker runs the region grid until the player confirms, cancels or
// quits. Locked regions may be confirmed; the orchestrator ignores them.
type RegionPicker interface {
	PickRegion(ctx context.Context, surface Surface, req PickRequest) (PickResult, error)
}

type Facing int

const (
	FacingBack Facing = iota
	FacingFront
)

// AssetLoader prepares images for a session. Release frees everything a
// session loaded and is safe to call with partially filled assets.
type AssetLoader interface {
	CreatureSprite(c catalog.Creature, shiny bool, size int) (Sprite, error)
	TrainerSprite(trainer string, facing Facing) (Sprite, error)
	Background(region game.Region, rng *rand.Rand) (Sprite, error)
	Release(a *Assets)
}

// Effects are the non-interactive sequences played between phases. They block
// until finished.
type Effects interface {
	EncounterTransition(ctx context.Context, surface Surface, s *Session)
	HPDepletion(ctx context.Context, surface Surface, s *Session)
	LoseTransition(ctx context.Context, surface Surface)
	AnnounceRegion(ctx context.Context, surface Surface, region string, regions []game.Region)
	PlayRegionMusic(region game.Region)
	PlayMenuMusic()
}

// Clock is a monotonic millisecond clock sampled once per frame.
type Clock interface {
	NowMillis() int64
}

type nopEffects struct{}

func (nopEffects) EncounterTransition(context.Context, Surface, *Session)         {}
func (nopEffects) HPDepletion(context.Context, Surface, *Session)                 {}
func (nopEffects) LoseTransition(context.Context, Surface)                        {}
func (nopEffects) AnnounceRegion(context.Context, Surface, string, []game.Region) {}
func (nopEffects) PlayRegionMusic(game.Region)                                    {}
func (nopEffects) PlayMenuMusic()                                                 {}
