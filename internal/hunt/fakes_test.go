package hunt

import (
	"context"
	"errors"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/appengine-ltd/pokedex/internal/catalog"
	"github.com/appengine-ltd/pokedex/internal/game"
)

type fakeStore struct {
	creatures map[int]*catalog.Creature
	details   map[int]catalog.Detail
	prefs     map[string]string
	failWrite error
	captures  []int

	// failDetail is returned by every Detail call after the first
	// failDetailAfter ones.
	failDetail      error
	failDetailAfter int
	detailCalls     int
}

func newFakeStore(ids ...int) *fakeStore {
	s := &fakeStore{
		creatures: map[int]*catalog.Creature{},
		details:   map[int]catalog.Detail{},
		prefs:     map[string]string{},
	}
	for _, id := range ids {
		s.creatures[id] = &catalog.Creature{ID: id, Name: "mon"}
		s.details[id] = catalog.Detail{ID: id, Types: []string{"Normal"}, CatchRate: 45}
	}
	return s
}

func (s *fakeStore) addRange(from, to int) {
	for id := from; id <= to; id++ {
		s.creatures[id] = &catalog.Creature{ID: id, Name: "mon"}
		s.details[id] = catalog.Detail{ID: id, Types: []string{"Normal"}, CatchRate: 45}
	}
}

func (s *fakeStore) markCaught(ids ...int) {
	for _, id := range ids {
		s.creatures[id].Caught = true
		s.creatures[id].Seen = true
		s.creatures[id].TimesCaught++
	}
}

func (s *fakeStore) ListCreatures(_ context.Context, maxID, bonusID int, includeBonus bool) ([]catalog.Creature, error) {
	var out []catalog.Creature
	for id, c := range s.creatures {
		if (id <= maxID && id != bonusID) || (includeBonus && id == bonusID) {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeStore) Creature(_ context.Context, id int) (catalog.Creature, error) {
	c, ok := s.creatures[id]
	if !ok {
		return catalog.Creature{}, catalog.ErrNotFound
	}
	return *c, nil
}

func (s *fakeStore) Detail(_ context.Context, id int) (catalog.Detail, error) {
	s.detailCalls++
	if s.failDetail != nil && s.detailCalls > s.failDetailAfter {
		return catalog.Detail{}, s.failDetail
	}
	d, ok := s.details[id]
	if !ok {
		return catalog.Detail{}, catalog.ErrNotFound
	}
	return d, nil
}

func (s *fakeStore) RecordCapture(_ context.Context, id int, shiny bool) error {
	if s.failWrite != nil {
		return s.failWrite
	}
	c, ok := s.creatures[id]
	if !ok {
		return catalog.ErrNotFound
	}
	c.Caught = true
	c.Seen = true
	c.TimesCaught++
	if shiny {
		c.IsShiny = true
	}
	s.captures = append(s.captures, id)
	return nil
}

func (s *fakeStore) countWhere(pred func(c *catalog.Creature) bool) int {
	n := 0
	for _, c := range s.creatures {
		if pred(c) {
			n++
		}
	}
	return n
}

func (s *fakeStore) CountCaught(context.Context) (int, error) {
	return s.countWhere(func(c *catalog.Creature) bool { return c.Caught }), nil
}

func (s *fakeStore) CountShiny(context.Context) (int, error) {
	return s.countWhere(func(c *catalog.Creature) bool { return c.IsShiny }), nil
}

func (s *fakeStore) CountSeen(context.Context) (int, error) {
	return s.countWhere(func(c *catalog.Creature) bool { return c.Seen }), nil
}

func (s *fakeStore) BonusUnlocked(_ context.Context, bonusID int, requiredBelow int) (bool, error) {
	n := s.countWhere(func(c *catalog.Creature) bool { return c.Caught && c.ID < bonusID })
	return game.BonusRule{ID: bonusID, RequiredBelow: requiredBelow}.Eligible(n), nil
}

func (s *fakeStore) Preference(_ context.Context, key string) (string, error) {
	return s.prefs[key], nil
}

func (s *fakeStore) SetPreference(_ context.Context, key, value string) error {
	s.prefs[key] = value
	return nil
}

type fakeSurface struct{}

func (fakeSurface) Size() (int, int) { return 480, 320 }

type fakeSprite struct{ name string }

func (fakeSprite) Size() (int, int) { return 128, 128 }

// scriptedPicker confirms the named regions in order, then cancels.
type scriptedPicker struct {
	prog     *game.Progression
	script   []string
	requests []PickRequest
}

func (p *scriptedPicker) PickRegion(_ context.Context, _ Surface, req PickRequest) (PickResult, error) {
	p.requests = append(p.requests, req)
	if len(p.script) == 0 {
		return PickResult{Action: PickCancel, Cursor: req.Cursor}, nil
	}
	next := p.script[0]
	p.script = p.script[1:]
	switch next {
	case "quit":
		return PickResult{Action: PickQuit}, nil
	case "cancel":
		return PickResult{Action: PickCancel}, nil
	}
	for i, r := range p.prog.Regions {
		if r.Name == next {
			return PickResult{Action: PickConfirm, Region: r, Cursor: i}, nil
		}
	}
	return PickResult{}, errors.New("unknown region " + next)
}

type fakeAssets struct {
	missingCreature map[int]bool
	missingBG       bool
	loaded          int
	released        int
	creatureCalls   []int
}

func (a *fakeAssets) CreatureSprite(c catalog.Creature, _ bool, size int) (Sprite, error) {
	a.creatureCalls = append(a.creatureCalls, c.ID)
	if a.missingCreature[c.ID] {
		return nil, ErrSpriteNotFound
	}
	a.loaded++
	return fakeSprite{name: "creature"}, nil
}

func (a *fakeAssets) TrainerSprite(string, Facing) (Sprite, error) {
	a.loaded++
	return fakeSprite{name: "trainer"}, nil
}

func (a *fakeAssets) Background(game.Region, *rand.Rand) (Sprite, error) {
	if a.missingBG {
		return nil, ErrSpriteNotFound
	}
	a.loaded++
	return fakeSprite{name: "bg"}, nil
}

// Release counts only sprites this loader produced; the front trainer sprite
// comes from the catch game.
func (a *fakeAssets) Release(as *Assets) {
	for _, s := range []Sprite{as.Creature, as.TrainerBack, as.Background} {
		if s != nil {
			a.released++
		}
	}
	*as = Assets{}
}

type fixedCombat struct {
	name     string
	outcome  CombatOutcome
	sessions []*Session
}

func (g *fixedCombat) Name() string { return g.name }

func (g *fixedCombat) PlayCombat(_ context.Context, _ Surface, s *Session) CombatOutcome {
	g.sessions = append(g.sessions, s)
	return g.outcome
}

type fixedCatch struct {
	outcome CatchOutcome
}

func (g *fixedCatch) PlayCatch(context.Context, Surface, *Session) (CatchOutcome, Sprite) {
	if g.outcome == CatchCaught {
		return g.outcome, fakeSprite{name: "front"}
	}
	return g.outcome, nil
}

type fixedStabilize struct {
	outcome StabilizeOutcome
	calls   int
}

func (g *fixedStabilize) PlayStabilize(context.Context, Surface, *Session) StabilizeOutcome {
	g.calls++
	return g.outcome
}

type fakeClock struct{ now int64 }

func (c *fakeClock) NowMillis() int64 { return c.now }

type recordingEffects struct {
	announced   []string
	regionMusic []string
	menuMusic   int
	hp          int
	lose        int
	transitions int
}

func (e *recordingEffects) EncounterTransition(context.Context, Surface, *Session) { e.transitions++ }

func (e *recordingEffects) HPDepletion(context.Context, Surface, *Session) { e.hp++ }

func (e *recordingEffects) LoseTransition(context.Context, Surface) { e.lose++ }

func (e *recordingEffects) AnnounceRegion(_ context.Context, _ Surface, region string, _ []game.Region) {
	e.announced = append(e.announced, region)
}

func (e *recordingEffects) PlayRegionMusic(r game.Region) {
	e.regionMusic = append(e.regionMusic, r.Name)
}

func (e *recordingEffects) PlayMenuMusic() { e.menuMusic++ }

type harness struct {
	store     *fakeStore
	prog      *game.Progression
	picker    *scriptedPicker
	assets    *fakeAssets
	combat    *fixedCombat
	catch     *fixedCatch
	stabilize *fixedStabilize
	intro     *fixedStabilize
	effects   *recordingEffects
	clock     *fakeClock
	orch      *Orchestrator
	app       *AppState
}

func newHarness(t *testing.T, store *fakeStore) *harness {
	t.Helper()

	prog := game.DefaultProgression()
	h := &harness{
		store:     store,
		prog:      prog,
		picker:    &scriptedPicker{prog: prog},
		assets:    &fakeAssets{missingCreature: map[int]bool{}},
		combat:    &fixedCombat{name: "memory", outcome: CombatWin},
		catch:     &fixedCatch{outcome: CatchCaught},
		stabilize: &fixedStabilize{outcome: StabilizeCaught},
		intro:     &fixedStabilize{outcome: StabilizeCaught},
		effects:   &recordingEffects{},
		clock:     &fakeClock{now: 10_000},
	}
	orch, err := New(Deps{
		Store:       store,
		Progression: prog,
		Picker:      h.picker,
		Assets:      h.assets,
		Combat:      NewCombatRegistry(h.combat),
		Catch:       h.catch,
		Stabilize:   h.stabilize,
		Intro:       h.intro,
		Effects:     h.effects,
		Clock:       h.clock,
		RNG:         game.SeededRNG(42),
	})
	if err != nil {
		t.Fatalf("new orchestrator: %v", err)
	}
	h.orch = orch
	h.reload(t)
	return h
}

func (h *harness) reload(t *testing.T) {
	t.Helper()
	app, err := LoadAppState(context.Background(), h.store, h.prog, "red")
	if err != nil {
		t.Fatalf("load app state: %v", err)
	}
	h.app = app
}

func (h *harness) run(t *testing.T) ShellResult {
	t.Helper()
	res, err := h.orch.Run(context.Background(), fakeSurface{}, h.app)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return res
}
