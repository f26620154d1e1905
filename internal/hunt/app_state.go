package hunt

import (
	"context"
	"fmt"

	"github.com/appengine-ltd/pokedex/internal/catalog"
	"github.com/appengine-ltd/pokedex/internal/game"
)

// MessageDuration is how long transient messages stay on screen, in ms.
const MessageDuration = 2000

// Message is a transient overlay that expires at Until.
type Message struct {
	Text  string
	Until int64
}

func (m Message) Active(now int64) bool {
	return m.Text != "" && now < m.Until
}

type View int

const (
	ViewList View = iota
	ViewDetail
)

type Stats struct {
	Caught          int
	Shiny           int
	Seen            int
	RegionsUnlocked int
}

// AppState is the shell state a hunt reads and updates. The shell owns it;
// a hunt borrows it for the duration of Run.
type AppState struct {
	Catalog  catalog.View
	Unlock   game.UnlockState
	Bonus    bool
	Selected int
	View     View
	Detail   *catalog.Detail
	Message  Message
	Trainer  string
	Stats    Stats
}

// LoadAppState rebuilds the shell state from persisted progress alone.
func LoadAppState(ctx context.Context, store catalog.Store, prog *game.Progression, defaultTrainer string) (*AppState, error) {
	caught, err := store.CountCaught(ctx)
	if err != nil {
		return nil, fmt.Errorf("load app state: %w", err)
	}
	trainer, err := store.Preference(ctx, catalog.PrefTrainer)
	if err != nil {
		return nil, fmt.Errorf("load app state: %w", err)
	}
	if trainer == "" {
		trainer = defaultTrainer
	}
	app := &AppState{
		Unlock:  game.NewUnlockState(caught, prog.Thresholds),
		Trainer: trainer,
	}
	if err := app.Refresh(ctx, store, prog); err != nil {
		return nil, err
	}
	return app, nil
}

// Refresh reloads the catalog view bounded by the current ceiling and the
// bonus rule, and the header counters.
func (a *AppState) Refresh(ctx context.Context, store catalog.Store, prog *game.Progression) error {
	bonus, err := store.BonusUnlocked(ctx, prog.Bonus.ID, prog.Bonus.RequiredBelow)
	if err != nil {
		return fmt.Errorf("refresh catalog: %w", err)
	}
	list, err := store.ListCreatures(ctx, a.Unlock.MaxID, prog.Bonus.ID, bonus)
	if err != nil {
		return fmt.Errorf("refresh catalog: %w", err)
	}
	a.Catalog = list
	a.Bonus = bonus

	if a.Stats.Caught, err = store.CountCaught(ctx); err != nil {
		return fmt.Errorf("refresh stats: %w", err)
	}
	if a.Stats.Shiny, err = store.CountShiny(ctx); err != nil {
		return fmt.Errorf("refresh stats: %w", err)
	}
	if a.Stats.Seen, err = store.CountSeen(ctx); err != nil {
		return fmt.Errorf("refresh stats: %w", err)
	}
	a.Stats.RegionsUnlocked = game.UnlockedRegions(prog.Regions, a.Unlock.MaxID)

	if a.Selected >= len(a.Catalog) {
		a.Selected = max(0, len(a.Catalog)-1)
	}
	return nil
}

// Select moves the cursor to id when it is in the view.
func (a *AppState) Select(id int) bool {
	i, ok := a.Catalog.Index(id)
	if ok {
		a.Selected = i
	}
	return ok
}

func (a *AppState) Current() (catalog.Creature, bool) {
	if a.Selected < 0 || a.Selected >= len(a.Catalog) {
		return catalog.Creature{}, false
	}
	return a.Catalog[a.Selected], true
}

func (a *AppState) SetMessage(text string, now int64) {
	a.Message = Message{Text: text, Until: now + MessageDuration}
}
