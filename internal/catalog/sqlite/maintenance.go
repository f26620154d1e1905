package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/appengine-ltd/pokedex/internal/catalog"
)

// Seed is one row imported by the maintenance tool.
type Seed struct {
	Creature catalog.Creature
	RawJSON  string
}

// UpsertCreatures inserts or refreshes catalog rows without touching progress
// columns of rows that already exist.
func (s *Store) UpsertCreatures(ctx context.Context, seeds []Seed) error {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO pokemon (pokedex_id, name_fr, name_en, sprite_regular, sprite_shiny, raw_json)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(pokedex_id) DO UPDATE SET
		   name_fr = excluded.name_fr,
		   name_en = excluded.name_en,
		   sprite_regular = excluded.sprite_regular,
		   sprite_shiny = excluded.sprite_shiny,
		   raw_json = excluded.raw_json`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, seed := range seeds {
		c := seed.Creature
		if c.ID <= 0 {
			_ = tx.Rollback()
			return fmt.Errorf("upsert: invalid creature id %d", c.ID)
		}
		raw := seed.RawJSON
		if raw == "" {
			raw = "{}"
		}
		if _, err := stmt.ExecContext(ctx, c.ID, c.Name, c.NameEN, c.SpriteNormal, c.SpriteShiny, raw); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("upsert creature %d: %w", c.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert: %w", err)
	}
	return nil
}

// AllCreatures lists every row regardless of unlock state.
func (s *Store) AllCreatures(ctx context.Context) ([]catalog.Creature, error) {
	return s.ListCreatures(ctx, int(^uint32(0)>>1), 0, false)
}

// BackupName is the timestamped backup file name written before a reset.
func BackupName(now time.Time) string {
	return "pokedex_" + now.Format("20060102_150405") + ".bk"
}

// Backup writes a consistent copy of the database into dir and returns its
// path.
func (s *Store) Backup(ctx context.Context, dir string, now time.Time) (string, error) {
	dest := filepath.Join(filepath.Clean(dir), BackupName(now))
	if _, err := s.sqlDB.ExecContext(ctx, `VACUUM INTO ?`, dest); err != nil {
		return "", fmt.Errorf("backup to %s: %w", dest, err)
	}
	return dest, nil
}

// Reset clears all progress and preferences. Callers take a Backup first.
func (s *Store) Reset(ctx context.Context) error {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE pokemon SET caught = 0, is_shiny = 0, seen = 0, times_caught = 0`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("reset progress: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM user_preferences`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("reset preferences: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}
	return nil
}

// MarkCaught records n random uncaught creatures with id <= maxID as caught.
// It fails without changes when fewer than n are available.
func (s *Store) MarkCaught(ctx context.Context, n int, maxID int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin mark caught: %w", err)
	}
	rows, err := tx.QueryContext(ctx,
		`SELECT pokedex_id FROM pokemon WHERE caught = 0 AND pokedex_id <= ? ORDER BY RANDOM() LIMIT ?`,
		maxID, n,
	)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("select uncaught: %w", err)
	}
	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			_ = rows.Close()
			_ = tx.Rollback()
			return nil, fmt.Errorf("scan uncaught: %w", err)
		}
		ids = append(ids, id)
	}
	_ = rows.Close()
	if len(ids) < n {
		_ = tx.Rollback()
		return nil, fmt.Errorf("mark caught: only %d uncaught creatures available, need %d", len(ids), n)
	}
	for _, id := range ids {
		if _, err := tx.ExecContext(ctx,
			`UPDATE pokemon SET caught = 1, seen = 1, times_caught = times_caught + 1 WHERE pokedex_id = ?`, id,
		); err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("mark caught %d: %w", id, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit mark caught: %w", err)
	}
	return ids, nil
}
