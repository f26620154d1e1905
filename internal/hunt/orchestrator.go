package hunt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/message"

	"github.com/appengine-ltd/pokedex/internal/catalog"
	"github.com/appengine-ltd/pokedex/internal/game"
	"github.com/appengine-ltd/pokedex/internal/i18n"
)

const tracerName = "github.com/appengine-ltd/pokedex/internal/hunt"

// DefaultStabilizeThreshold is the catch rate above which stabilizing is a
// cosmetic intro only.
const DefaultStabilizeThreshold = 100

// Deps wires an Orchestrator. Effects, Printer, Logger and TracerProvider
// are optional.
type Deps struct {
	Store              catalog.Store
	Progression        *game.Progression
	Picker             RegionPicker
	Assets             AssetLoader
	Combat             *CombatRegistry
	Catch              CatchGame
	Stabilize          StabilizeGame
	Intro              StabilizeGame
	Effects            Effects
	Clock              Clock
	RNG                *rand.Rand
	ShinyRate          float64
	StabilizeThreshold int
	Printer            *message.Printer
	Logger             *log.Logger
	TracerProvider     trace.TracerProvider
}

// Orchestrator runs hunt sessions. It owns no state between runs.
type Orchestrator struct {
	deps     Deps
	selector game.Selector
	tracer   trace.Tracer
	log      *log.Logger
}

func New(d Deps) (*Orchestrator, error) {
	switch {
	case d.Store == nil:
		return nil, fmt.Errorf("hunt: store is required")
	case d.Progression == nil:
		return nil, fmt.Errorf("hunt: progression is required")
	case d.Picker == nil:
		return nil, fmt.Errorf("hunt: region picker is required")
	case d.Assets == nil:
		return nil, fmt.Errorf("hunt: asset loader is required")
	case d.Combat == nil || d.Combat.Len() == 0:
		return nil, fmt.Errorf("hunt: at least one combat game is required")
	case d.Catch == nil:
		return nil, fmt.Errorf("hunt: catch game is required")
	case d.Stabilize == nil || d.Intro == nil:
		return nil, fmt.Errorf("hunt: stabilize games are required")
	case d.Clock == nil:
		return nil, fmt.Errorf("hunt: clock is required")
	case d.RNG == nil:
		return nil, fmt.Errorf("hunt: rng is required")
	}
	if d.Effects == nil {
		d.Effects = nopEffects{}
	}
	if d.Printer == nil {
		d.Printer = i18n.Printer(i18n.Default())
	}
	if d.Logger == nil {
		d.Logger = log.New(io.Discard, "", 0)
	}
	if d.TracerProvider == nil {
		d.TracerProvider = otel.GetTracerProvider()
	}
	if d.StabilizeThreshold == 0 {
		d.StabilizeThreshold = DefaultStabilizeThreshold
	}
	return &Orchestrator{
		deps:     d,
		selector: game.NewSelector(d.Progression),
		tracer:   d.TracerProvider.Tracer(tracerName),
		log:      d.Logger,
	}, nil
}

// Run plays one hunt session and reports how the shell should continue.
// Errors are persistence failures; everything else ends in a ShellResult.
func (o *Orchestrator) Run(ctx context.Context, surface Surface, app *AppState) (result ShellResult, err error) {
	sess := newSession()
	ctx, span := o.tracer.Start(ctx, "hunt.session", trace.WithAttributes(
		attribute.String("hunt.session_id", sess.ID.String()),
	))
	defer func() {
		o.deps.Assets.Release(&sess.Assets)
		sess.Assets = Assets{}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.SetAttributes(attribute.String("hunt.result", string(result)))
		span.End()
	}()

	caught, err := o.deps.Store.CountCaught(ctx)
	if err != nil {
		return ResultQuit, fmt.Errorf("count caught: %w", err)
	}
	if caught == 0 && o.startWithStarter(sess, app) {
		o.log.Printf("hunt %s: first hunt, starter %d in %s", sess.ID, sess.Target.ID, sess.Region.Name)
	}

	for {
		if ctx.Err() != nil {
			o.log.Printf("hunt %s: cancelled in %s", sess.ID, sess.State)
			return ResultQuit, nil
		}
		from := sess.State
		next, res, err := o.step(ctx, surface, sess, app)
		if err != nil {
			return ResultQuit, err
		}
		if next != from {
			o.log.Printf("hunt %s: %s -> %s", sess.ID, from, next)
		}
		sess.State = next
		if next == ExitToShell {
			return res, nil
		}
	}
}

func (o *Orchestrator) step(ctx context.Context, surface Surface, sess *Session, app *AppState) (State, ShellResult, error) {
	ctx, span := o.tracer.Start(ctx, "hunt."+sess.State.String())
	defer span.End()

	switch sess.State {
	case RegionSelection:
		return o.selectRegion(ctx, surface, sess, app)
	case Encounter:
		next, err := o.encounter(ctx, surface, sess, app)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return Quit, "", err
		}
		return next, "", nil
	case Combat:
		return o.combat(ctx, surface, sess), "", nil
	case Catching:
		out, front := o.deps.Catch.PlayCatch(ctx, surface, sess)
		span.SetAttributes(attribute.String("hunt.outcome", out.String()))
		if out == CatchCaught {
			sess.Assets.TrainerFront = front
		}
		return NextAfterCatch(out), "", nil
	case Stabilizing:
		return o.stabilize(ctx, surface, sess), "", nil
	case Success:
		if err := o.success(ctx, sess, app); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return Quit, "", err
		}
		return ExitToShell, ResultDetail, nil
	case Fled:
		o.fled(sess, app)
		return ExitToShell, ResultMainMenu, nil
	default:
		return ExitToShell, ResultQuit, nil
	}
}

// startWithStarter sets up the first ever encounter. The lock check is
// skipped and the starter is never shiny.
func (o *Orchestrator) startWithStarter(sess *Session, app *AppState) bool {
	starters := app.Catalog.Pick(o.deps.Progression.Starter.IDs)
	target, ok := o.selector.Draw(starters, o.deps.RNG)
	if !ok {
		return false
	}
	sess.Region = o.deps.Progression.StarterRegion()
	sess.Target = target
	sess.Shiny = false
	sess.State = Encounter
	o.deps.Effects.PlayRegionMusic(sess.Region)
	return true
}

func (o *Orchestrator) selectRegion(ctx context.Context, surface Surface, sess *Session, app *AppState) (State, ShellResult, error) {
	if err := o.announcePending(ctx, surface); err != nil {
		return Quit, "", err
	}
	last, err := o.deps.Store.Preference(ctx, catalog.PrefLastRegion)
	if err != nil {
		return Quit, "", err
	}
	req := PickRequest{
		Regions: o.deps.Progression.Regions,
		Ceiling: app.Unlock.MaxID,
		Cursor:  o.selector.InitialCursor(last),
	}

	for {
		req.Message = app.Message
		res, err := o.deps.Picker.PickRegion(ctx, surface, req)
		if err != nil {
			return Quit, "", fmt.Errorf("pick region: %w", err)
		}
		switch res.Action {
		case PickQuit:
			return Quit, "", nil
		case PickCancel:
			return ExitToShell, ResultMainMenu, nil
		}

		req.Cursor = res.Cursor
		region := res.Region
		if o.selector.Locked(region, app.Unlock.MaxID) {
			continue
		}
		if err := o.deps.Store.SetPreference(ctx, catalog.PrefLastRegion, region.Name); err != nil {
			return Quit, "", err
		}
		target, ok := o.selector.Draw(o.selector.Pool(region, app.Catalog), o.deps.RNG)
		if !ok {
			o.log.Printf("hunt %s: %v: %s", sess.ID, ErrEmptyPool, region.Name)
			app.SetMessage(o.deps.Printer.Sprintf(i18n.KeyEmptyRegion, region.Name), o.deps.Clock.NowMillis())
			continue
		}

		sess.Region = region
		sess.Target = target
		sess.Shiny = game.RollShiny(o.deps.RNG, o.deps.ShinyRate)
		trace.SpanFromContext(ctx).SetAttributes(
			attribute.String("hunt.region", region.Name),
			attribute.Int("hunt.creature_id", target.ID),
			attribute.Bool("hunt.shiny", sess.Shiny),
		)
		o.deps.Effects.PlayRegionMusic(region)
		return Encounter, "", nil
	}
}

// announcePending plays the deferred new region celebration once, then
// clears it.
func (o *Orchestrator) announcePending(ctx context.Context, surface Surface) error {
	pending, err := o.deps.Store.Preference(ctx, catalog.PrefNewRegionUnlocked)
	if err != nil {
		return err
	}
	if pending == "" {
		return nil
	}
	o.deps.Effects.AnnounceRegion(ctx, surface, pending, o.deps.Progression.Regions)
	return o.deps.Store.SetPreference(ctx, catalog.PrefNewRegionUnlocked, "")
}

// encounter loads the scene. Missing art sends the player back to the grid;
// a failing store is fatal.
func (o *Orchestrator) encounter(ctx context.Context, surface Surface, sess *Session, app *AppState) (State, error) {
	detail, err := o.deps.Store.Detail(ctx, sess.Target.ID)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		detail = catalog.ParseDetail(sess.Target.ID, nil)
		detail.Name = sess.Target.Name
	case err != nil:
		return Quit, fmt.Errorf("load detail: %w", err)
	}

	sprite, err := o.deps.Assets.CreatureSprite(sess.Target, sess.Shiny, CombatSpriteSize)
	if err != nil {
		return o.abandonEncounter(sess, app, i18n.KeySpriteNotFound, err), nil
	}
	sess.Assets.Creature = sprite
	sess.Assets.Detail = detail
	sess.Assets.Types = detail.Types

	back, err := o.deps.Assets.TrainerSprite(app.Trainer, FacingBack)
	if err != nil {
		o.log.Printf("hunt %s: trainer %s: %v", sess.ID, app.Trainer, err)
	}
	sess.Assets.TrainerBack = back

	bg, err := o.deps.Assets.Background(sess.Region, o.deps.RNG)
	if err != nil {
		return o.abandonEncounter(sess, app, i18n.KeyBackgroundMiss, err), nil
	}
	sess.Assets.Background = bg

	o.deps.Effects.EncounterTransition(ctx, surface, sess)
	return Combat, nil
}

// abandonEncounter reports a recoverable asset failure and sends the player
// back to the region grid with nothing leaked.
func (o *Orchestrator) abandonEncounter(sess *Session, app *AppState, key string, cause error) State {
	o.log.Printf("hunt %s: encounter %d: %v", sess.ID, sess.Target.ID, cause)
	app.SetMessage(o.deps.Printer.Sprintf(key, sess.Target.Name), o.deps.Clock.NowMillis())
	o.deps.Assets.Release(&sess.Assets)
	sess.clearEncounter()
	return RegionSelection
}

func (o *Orchestrator) combat(ctx context.Context, surface Surface, sess *Session) State {
	g, _ := o.deps.Combat.Choose(o.deps.RNG)
	out := g.PlayCombat(ctx, surface, sess)
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("hunt.minigame", g.Name()),
		attribute.String("hunt.outcome", out.String()),
	)
	switch out {
	case CombatWin:
		o.deps.Effects.HPDepletion(ctx, surface, sess)
	case CombatLose:
		o.deps.Effects.LoseTransition(ctx, surface)
	}
	return NextAfterCombat(out)
}

func (o *Orchestrator) stabilize(ctx context.Context, surface Surface, sess *Session) State {
	g := o.deps.Stabilize
	intro := sess.Assets.Detail.CatchRate > o.deps.StabilizeThreshold
	if intro {
		g = o.deps.Intro
	}
	out := g.PlayStabilize(ctx, surface, sess)
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Bool("hunt.intro_only", intro),
		attribute.String("hunt.outcome", out.String()),
	)
	switch out {
	case StabilizeFailed:
		o.deps.Effects.LoseTransition(ctx, surface)
	case StabilizeBack:
		o.deps.Assets.Release(&sess.Assets)
		sess.clearEncounter()
	}
	return NextAfterStabilize(out)
}

// success persists the capture, applies at most one unlock and points the
// shell at the caught creature.
func (o *Orchestrator) success(ctx context.Context, sess *Session, app *AppState) error {
	store := o.deps.Store
	prog := o.deps.Progression
	id := sess.Target.ID

	if err := store.RecordCapture(ctx, id, sess.Shiny); err != nil {
		return fmt.Errorf("record capture: %w", err)
	}
	caught, err := store.CountCaught(ctx)
	if err != nil {
		return fmt.Errorf("count caught: %w", err)
	}
	if t, ok := app.Unlock.Advance(caught, prog.Thresholds); ok {
		o.log.Printf("hunt %s: ceiling raised to %d at %d catches", sess.ID, t.MaxID, caught)
		if t.Region != "" {
			if err := store.SetPreference(ctx, catalog.PrefNewRegionUnlocked, t.Region); err != nil {
				return fmt.Errorf("record unlock: %w", err)
			}
		}
	}
	if err := app.Refresh(ctx, store, prog); err != nil {
		return err
	}

	detail, err := store.Detail(ctx, id)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		detail = sess.Assets.Detail
	case err != nil:
		return fmt.Errorf("load detail: %w", err)
	}
	app.Detail = &detail
	if app.Select(id) {
		app.View = ViewDetail
	}
	return nil
}

func (o *Orchestrator) fled(sess *Session, app *AppState) {
	o.deps.Effects.PlayMenuMusic()
	app.SetMessage(o.deps.Printer.Sprintf(i18n.KeyFled, sess.Target.Name), o.deps.Clock.NowMillis())
	app.View = ViewList
}
