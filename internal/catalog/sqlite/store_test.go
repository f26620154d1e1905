package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/appengine-ltd/pokedex/internal/catalog"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "pokedex.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}

func seedRange(t *testing.T, store *Store, from, to int) {
	t.Helper()

	var seeds []Seed
	for id := from; id <= to; id++ {
		seeds = append(seeds, Seed{
			Creature: catalog.Creature{ID: id, Name: "creature", SpriteNormal: "regular.png", SpriteShiny: "shiny.png"},
			RawJSON:  `{"catch_rate": 45, "types": [{"name": "Plante"}]}`,
		})
	}
	if err := store.UpsertCreatures(context.Background(), seeds); err != nil {
		t.Fatalf("seed creatures: %v", err)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), ""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestOpenIsIdempotentAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokedex.db")
	ctx := context.Background()

	first, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	seedRange(t, first, 1, 3)
	if err := first.RecordCapture(ctx, 2, false); err != nil {
		t.Fatalf("record capture: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	second, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer second.Close()
	n, err := second.CountCaught(ctx)
	if err != nil || n != 1 {
		t.Fatalf("expected caught count to survive restart, got %d %v", n, err)
	}
}

func TestRecordCaptureFirstShinyCatch(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()
	seedRange(t, store, 1, 10)

	if err := store.RecordCapture(ctx, 5, true); err != nil {
		t.Fatalf("record capture: %v", err)
	}
	got, err := store.Creature(ctx, 5)
	if err != nil {
		t.Fatalf("get creature: %v", err)
	}
	if !got.Caught || !got.Seen || !got.IsShiny || got.TimesCaught != 1 {
		t.Fatalf("expected caught, seen, shiny and one capture, got %+v", got)
	}
}

func TestRecordCaptureNeverDowngradesShiny(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()
	seedRange(t, store, 1, 10)

	if err := store.RecordCapture(ctx, 3, true); err != nil {
		t.Fatalf("record shiny capture: %v", err)
	}
	if err := store.RecordCapture(ctx, 3, false); err != nil {
		t.Fatalf("record normal capture: %v", err)
	}
	got, err := store.Creature(ctx, 3)
	if err != nil {
		t.Fatalf("get creature: %v", err)
	}
	if !got.IsShiny {
		t.Fatalf("expected shiny flag to stay set")
	}
	if got.TimesCaught != 2 {
		t.Fatalf("expected two captures, got %d", got.TimesCaught)
	}
	shiny, err := store.CountShiny(ctx)
	if err != nil || shiny != 1 {
		t.Fatalf("expected one shiny, got %d %v", shiny, err)
	}
}

func TestRecordCaptureUnknownCreature(t *testing.T) {
	store := openTempStore(t)

	err := store.RecordCapture(context.Background(), 999, false)
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListCreaturesBoundsAndBonus(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()
	seedRange(t, store, 1, 160)

	got, err := store.ListCreatures(ctx, 149, 0, false)
	if err != nil {
		t.Fatalf("list creatures: %v", err)
	}
	if len(got) != 149 || got[0].ID != 1 || got[148].ID != 149 {
		t.Fatalf("expected ids 1..149 in order, got %d rows", len(got))
	}

	got, err = store.ListCreatures(ctx, 149, 151, true)
	if err != nil {
		t.Fatalf("list creatures with bonus: %v", err)
	}
	if len(got) != 150 || got[len(got)-1].ID != 151 {
		t.Fatalf("expected bonus 151 appended, got %d rows ending at %d", len(got), got[len(got)-1].ID)
	}
}

func TestListCreaturesHoldsBackLockedBonusUnderCeiling(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()
	seedRange(t, store, 1, 260)

	if _, err := store.MarkCaught(ctx, 75, 150); err != nil {
		t.Fatalf("mark caught: %v", err)
	}
	unlocked, err := store.BonusUnlocked(ctx, 151, 150)
	if err != nil || unlocked {
		t.Fatalf("expected bonus locked at 75 captures, got %v %v", unlocked, err)
	}

	got, err := store.ListCreatures(ctx, 251, 151, false)
	if err != nil {
		t.Fatalf("list creatures: %v", err)
	}
	if len(got) != 250 {
		t.Fatalf("expected 250 rows without the bonus, got %d", len(got))
	}
	for _, c := range got {
		if c.ID == 151 {
			t.Fatalf("expected locked bonus 151 absent at ceiling 251")
		}
	}

	got, err = store.ListCreatures(ctx, 251, 151, true)
	if err != nil {
		t.Fatalf("list creatures: %v", err)
	}
	if len(got) != 251 || got[150].ID != 151 {
		t.Fatalf("expected unlocked bonus in place, got %d rows", len(got))
	}
}

func TestBonusUnlockedCountsOnlyLowerIDs(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()
	seedRange(t, store, 1, 160)

	if _, err := store.MarkCaught(ctx, 5, 150); err != nil {
		t.Fatalf("mark caught: %v", err)
	}
	if err := store.RecordCapture(ctx, 155, false); err != nil {
		t.Fatalf("record capture: %v", err)
	}

	ok, err := store.BonusUnlocked(ctx, 151, 6)
	if err != nil {
		t.Fatalf("bonus unlocked: %v", err)
	}
	if ok {
		t.Fatalf("expected captures above the bonus id not to count")
	}
	ok, err = store.BonusUnlocked(ctx, 151, 5)
	if err != nil || !ok {
		t.Fatalf("expected bonus unlocked at five lower captures, got %v %v", ok, err)
	}
}

func TestDetailParsesStoredDocument(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()
	seedRange(t, store, 1, 1)

	d, err := store.Detail(ctx, 1)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if d.CatchRate != 45 || len(d.Types) != 1 || d.Types[0] != "Plante" {
		t.Fatalf("unexpected detail %+v", d)
	}
	if _, err := store.Detail(ctx, 2); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing detail, got %v", err)
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	got, err := store.Preference(ctx, catalog.PrefLastRegion)
	if err != nil || got != "" {
		t.Fatalf("expected unset preference to be empty, got %q %v", got, err)
	}
	if err := store.SetPreference(ctx, catalog.PrefLastRegion, "Kanto"); err != nil {
		t.Fatalf("set preference: %v", err)
	}
	if err := store.SetPreference(ctx, catalog.PrefLastRegion, "Johto"); err != nil {
		t.Fatalf("overwrite preference: %v", err)
	}
	got, err = store.Preference(ctx, catalog.PrefLastRegion)
	if err != nil || got != "Johto" {
		t.Fatalf("expected Johto, got %q %v", got, err)
	}
}

func TestResetWritesBackupAndClearsProgress(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()
	seedRange(t, store, 1, 10)

	if err := store.RecordCapture(ctx, 1, true); err != nil {
		t.Fatalf("record capture: %v", err)
	}
	if err := store.SetPreference(ctx, catalog.PrefTrainer, "blue"); err != nil {
		t.Fatalf("set preference: %v", err)
	}

	dir := t.TempDir()
	now := time.Date(2026, time.March, 4, 9, 8, 7, 0, time.UTC)
	backup, err := store.Backup(ctx, dir, now)
	if err != nil {
		t.Fatalf("backup: %v", err)
	}
	if filepath.Base(backup) != "pokedex_20260304_090807.bk" {
		t.Fatalf("unexpected backup name %s", backup)
	}
	if _, err := os.Stat(backup); err != nil {
		t.Fatalf("expected backup file: %v", err)
	}

	if err := store.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	c, err := store.Creature(ctx, 1)
	if err != nil {
		t.Fatalf("get creature: %v", err)
	}
	if c.Caught || c.Seen || c.IsShiny || c.TimesCaught != 0 {
		t.Fatalf("expected progress cleared, got %+v", c)
	}
	if v, _ := store.Preference(ctx, catalog.PrefTrainer); v != "" {
		t.Fatalf("expected preferences cleared, got %q", v)
	}
}

func TestMarkCaughtFailsWhenNotEnoughCreatures(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()
	seedRange(t, store, 1, 3)

	if _, err := store.MarkCaught(ctx, 4, 10); err == nil {
		t.Fatalf("expected error when asking for more creatures than exist")
	}
	n, _ := store.CountCaught(ctx)
	if n != 0 {
		t.Fatalf("expected no partial update, got %d caught", n)
	}
	ids, err := store.MarkCaught(ctx, 3, 10)
	if err != nil || len(ids) != 3 {
		t.Fatalf("expected three creatures marked, got %v %v", ids, err)
	}
}
