//go:build cgo

package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/appengine-ltd/pokedex/internal/catalog"
	"github.com/appengine-ltd/pokedex/internal/config"
	"github.com/appengine-ltd/pokedex/internal/gui"
)

func TestRunClosesCatalogWhenWindowFails(t *testing.T) {
	cfg := config.Config{DBPath: filepath.Join(t.TempDir(), "pokedex.db")}
	failed := errors.New("window failed")

	var store catalog.Store
	err := run(context.Background(), cfg, func(_ context.Context, app gui.AppConfig) error {
		store = app.Store
		return failed
	})
	if !errors.Is(err, failed) {
		t.Fatalf("expected window error, got %v", err)
	}
	if store == nil {
		t.Fatalf("expected window to receive the catalog")
	}
	if _, err := store.CountCaught(context.Background()); err == nil {
		t.Fatalf("expected catalog to be closed after run returned")
	}
}

func TestRunReportsBadProgressionWithoutExiting(t *testing.T) {
	cfg := config.Config{
		DBPath:          filepath.Join(t.TempDir(), "pokedex.db"),
		ProgressionFile: filepath.Join(t.TempDir(), "missing.yaml"),
	}
	called := false
	err := run(context.Background(), cfg, func(context.Context, gui.AppConfig) error {
		called = true
		return nil
	})
	if err == nil {
		t.Fatalf("expected progression error, got nil")
	}
	if called {
		t.Fatalf("expected window not to start")
	}
}
