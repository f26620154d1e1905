package gui

import (
	"context"
	"fmt"
	"io"
	"log"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/text/message"

	"github.com/appengine-ltd/pokedex/internal/catalog"
	"github.com/appengine-ltd/pokedex/internal/config"
	"github.com/appengine-ltd/pokedex/internal/game"
	"github.com/appengine-ltd/pokedex/internal/gui/minigame"
	"github.com/appengine-ltd/pokedex/internal/hunt"
	"github.com/appengine-ltd/pokedex/internal/i18n"
	"github.com/appengine-ltd/pokedex/internal/input"
	"github.com/appengine-ltd/pokedex/internal/lookup"
)

const volumeOverlay = 1000

type AppConfig struct {
	Config      config.Config
	Store       catalog.Store
	Progression *game.Progression
	Logger      *log.Logger
	Version     string
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

// Run opens the window and plays until the player quits or ctx ends.
func (a *App) Run(ctx context.Context) error {
	cfg := a.cfg.Config
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.ScreenWidth), int32(cfg.ScreenHeight), "Pokédex")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	defer rl.CloseWindow()

	initTypography(cfg.AssetsDir)
	defer shutdownTypography()

	ui, err := newGameUI(ctx, a.cfg)
	if err != nil {
		return err
	}
	defer ui.close()
	return ui.run(ctx)
}

type pendingAction int

const (
	pendingNone pendingAction = iota
	pendingHunt
	pendingTrainer
	pendingQuit
)

type gameUI struct {
	cfg     AppConfig
	logger  *log.Logger
	printer *message.Printer
	store   catalog.Store
	prog    *game.Progression

	app     *hunt.AppState
	assets  *assetCache
	music   *musicPlayer
	env     *minigame.Env
	effects *effects
	orch    *hunt.Orchestrator

	index   *lookup.Index
	list    listCursor
	search  searchState
	preview previewSprite
	pending pendingAction

	volumeUntil int64
}

func newGameUI(ctx context.Context, cfg AppConfig) (*gameUI, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	c := cfg.Config
	printer := i18n.Printer(i18n.Resolve(c.Locale))

	app, err := hunt.LoadAppState(ctx, cfg.Store, cfg.Progression, c.Trainer)
	if err != nil {
		return nil, err
	}

	ui := &gameUI{
		cfg:     cfg,
		logger:  logger,
		printer: printer,
		store:   cfg.Store,
		prog:    cfg.Progression,
		app:     app,
		assets:  newAssetCache(c.AssetsDir),
	}

	volume := float32(c.MusicVolume)
	if saved, err := cfg.Store.Preference(ctx, catalog.PrefMusicVolume); err == nil && saved != "" {
		if v, perr := strconv.ParseFloat(saved, 32); perr == nil {
			volume = float32(v)
		}
	}
	ui.music = newMusicPlayer(ui.assets.paths, game.NewRNG(0), volume)
	ui.music.Init()

	rng := game.NewRNG(c.Seed)
	ui.env = &minigame.Env{
		Input:   input.NewState(0),
		Clock:   rlClock{},
		RNG:     rng,
		Printer: printer,
		Assets:  ui.assets,
		Ball:    ui.assets.Pinned(ui.assets.paths.ball(), 0),
		Trainer: func() string { return ui.app.Trainer },
		OnFrame: func(f input.Frame) { ui.onFrame(ctx, f) },
	}
	picker := &regionPicker{env: ui.env, assets: ui.assets, printer: printer}
	ui.effects = &effects{
		env:     ui.env,
		music:   ui.music,
		regions: picker,
		printer: printer,
		ceiling: func() int { return ui.app.Unlock.MaxID },
	}

	ui.orch, err = hunt.New(hunt.Deps{
		Store:       cfg.Store,
		Progression: cfg.Progression,
		Picker:      picker,
		Assets:      ui.assets,
		Combat: hunt.NewCombatRegistry(
			minigame.NewMemoryGame(ui.env),
			minigame.NewQTEGame(ui.env),
			minigame.NewDodgeGame(ui.env),
		),
		Catch:              minigame.NewThrowGame(ui.env),
		Stabilize:          minigame.NewStabilizeGame(ui.env),
		Intro:              minigame.NewIntroGame(ui.env),
		Effects:            ui.effects,
		Clock:              rlClock{},
		RNG:                rng,
		ShinyRate:          c.ShinyRate,
		StabilizeThreshold: c.StabilizeThreshold,
		Printer:            printer,
		Logger:             logger,
	})
	if err != nil {
		ui.close()
		return nil, fmt.Errorf("wire hunt: %w", err)
	}
	ui.reindex()
	ui.music.PlayMenu()
	return ui, nil
}

func (ui *gameUI) close() {
	ui.preview.release(ui.assets)
	ui.music.Close()
	ui.assets.Close()
}

// run alternates between the shell frame loop and the screens it hands off
// to. Screens own their own frame loops, so they never nest inside a shell
// frame.
func (ui *gameUI) run(ctx context.Context) error {
	for {
		ui.pending = pendingNone
		shell := func(f input.Frame, now int64) bool { return ui.shellFrame(ctx, f, now) }
		if !ui.env.Loop(ctx, shell) {
			return nil
		}
		switch ui.pending {
		case pendingQuit:
			return nil
		case pendingTrainer:
			quit, err := ui.runTrainerScreen(ctx)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		case pendingHunt:
			quit, err := ui.runHunt(ctx)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

func (ui *gameUI) runHunt(ctx context.Context) (bool, error) {
	ui.preview.release(ui.assets)
	res, err := ui.orch.Run(ctx, rlSurface{}, ui.app)
	if err != nil {
		return true, fmt.Errorf("hunt: %w", err)
	}
	ui.reindex()
	ui.list.Jump(ui.app.Selected, len(ui.app.Catalog))
	switch res {
	case hunt.ResultQuit:
		return true, nil
	case hunt.ResultDetail:
		ui.music.PlayMenu()
	}
	return false, nil
}

func (ui *gameUI) reindex() {
	ui.index = lookup.NewIndex(ui.app.Catalog)
}

// onFrame runs for every frame of every screen.
func (ui *gameUI) onFrame(ctx context.Context, f input.Frame) {
	ui.music.Update()
	v := input.Volume(f, ui.music.Volume())
	if v == ui.music.Volume() {
		return
	}
	ui.music.SetVolume(v)
	ui.volumeUntil = rlClock{}.NowMillis() + volumeOverlay
	value := strconv.FormatFloat(float64(v), 'f', 2, 32)
	if err := ui.store.SetPreference(ctx, catalog.PrefMusicVolume, value); err != nil {
		ui.logger.Printf("save volume: %v", err)
	}
}
