//go:build cgo

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/appengine-ltd/pokedex/internal/catalog/sqlite"
	"github.com/appengine-ltd/pokedex/internal/config"
	"github.com/appengine-ltd/pokedex/internal/game"
	"github.com/appengine-ltd/pokedex/internal/gui"
	"github.com/appengine-ltd/pokedex/internal/telemetry"
)

// version, commit, date are injected at build time with -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("%v", err)
	}

	var showVersion bool
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "catalog database path")
	flag.StringVar(&cfg.AssetsDir, "assets", cfg.AssetsDir, "assets root directory")
	flag.StringVar(&cfg.Locale, "locale", cfg.Locale, "interface language (fr, en)")
	flag.StringVar(&cfg.ProgressionFile, "progression", cfg.ProgressionFile, "progression YAML overriding the built-in tables")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducible hunts (0 = clock)")
	flag.IntVar(&cfg.ScreenWidth, "width", cfg.ScreenWidth, "window width")
	flag.IntVar(&cfg.ScreenHeight, "height", cfg.ScreenHeight, "window height")
	flag.Parse()

	if showVersion {
		fmt.Printf("Pokedex %s (%s) %s\n", version, commit, date)
		return
	}
	if err := cfg.Validate(); err != nil {
		config.Exitf("%v", err)
	}

	log.SetPrefix("[POKEDEX] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, playWindow)
	stop()
	if err != nil {
		log.Printf("pokedex: %v", err)
		os.Exit(1)
	}
}

// playWindow runs the raylib application until the player quits.
func playWindow(ctx context.Context, cfg gui.AppConfig) error {
	return gui.NewApp(cfg).Run(ctx)
}

// run owns every resource the window needs. It returns instead of exiting so
// the catalog is closed and pending spans are flushed on every path.
func run(ctx context.Context, cfg config.Config, play func(context.Context, gui.AppConfig) error) error {
	shutdown, err := telemetry.Setup(ctx, "pokedex", cfg.OTelEndpoint, cfg.TracingEnabled())
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("shutdown telemetry: %v", err)
		}
	}()

	prog := game.DefaultProgression()
	if cfg.ProgressionFile != "" {
		if prog, err = game.LoadProgression(cfg.ProgressionFile); err != nil {
			return fmt.Errorf("load progression: %w", err)
		}
	}

	store, err := sqlite.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close catalog: %v", err)
		}
	}()

	return play(ctx, gui.AppConfig{
		Config:      cfg,
		Store:       store,
		Progression: prog,
		Logger:      log.Default(),
		Version:     version,
	})
}
