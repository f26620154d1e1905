// Package sqlite provides the SQLite-backed catalog store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/appengine-ltd/pokedex/internal/catalog"
	"github.com/appengine-ltd/pokedex/internal/catalog/sqlite/migrations"
	"github.com/appengine-ltd/pokedex/internal/game"
	_ "modernc.org/sqlite"
)

// Store persists the catalog and user preferences in SQLite.
type Store struct {
	sqlDB *sql.DB
	path  string
}

// Open opens the catalog database and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One writer at a time; the app is single threaded anyway.
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, path: cleanPath}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Path is the cleaned database file path.
func (s *Store) Path() string {
	return s.path
}

const creatureColumns = `pokedex_id, name_fr, name_en, sprite_regular, sprite_shiny, seen, caught, is_shiny, times_caught`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCreature(row rowScanner) (catalog.Creature, error) {
	var c catalog.Creature
	err := row.Scan(&c.ID, &c.Name, &c.NameEN, &c.SpriteNormal, &c.SpriteShiny, &c.Seen, &c.Caught, &c.IsShiny, &c.TimesCaught)
	return c, err
}

// ListCreatures returns creatures with id <= maxID ordered by id. bonusID is
// listed only when includeBonus is set, below or above the ceiling.
func (s *Store) ListCreatures(ctx context.Context, maxID, bonusID int, includeBonus bool) ([]catalog.Creature, error) {
	include := 0
	if includeBonus {
		include = 1
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT `+creatureColumns+` FROM pokemon
		 WHERE (pokedex_id <= ? AND pokedex_id <> ?) OR (? = 1 AND pokedex_id = ?)
		 ORDER BY pokedex_id`,
		maxID, bonusID, include, bonusID,
	)
	if err != nil {
		return nil, fmt.Errorf("list creatures: %w", err)
	}
	defer rows.Close()

	var out []catalog.Creature
	for rows.Next() {
		c, err := scanCreature(rows)
		if err != nil {
			return nil, fmt.Errorf("scan creature: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate creatures: %w", err)
	}
	return out, nil
}

func (s *Store) Creature(ctx context.Context, id int) (catalog.Creature, error) {
	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+creatureColumns+` FROM pokemon WHERE pokedex_id = ?`, id)
	c, err := scanCreature(row)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Creature{}, catalog.ErrNotFound
	}
	if err != nil {
		return catalog.Creature{}, fmt.Errorf("get creature %d: %w", id, err)
	}
	return c, nil
}

func (s *Store) Detail(ctx context.Context, id int) (catalog.Detail, error) {
	var raw string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT raw_json FROM pokemon WHERE pokedex_id = ?`, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Detail{}, catalog.ErrNotFound
	}
	if err != nil {
		return catalog.Detail{}, fmt.Errorf("get detail %d: %w", id, err)
	}
	return catalog.ParseDetail(id, []byte(raw)), nil
}

// RecordCapture marks id caught and seen, bumps its capture count and only
// ever raises the shiny flag.
func (s *Store) RecordCapture(ctx context.Context, id int, shiny bool) error {
	res, err := s.sqlDB.ExecContext(ctx,
		`UPDATE pokemon
		 SET caught = 1,
		     seen = 1,
		     times_caught = times_caught + 1,
		     is_shiny = CASE WHEN ? THEN 1 ELSE is_shiny END
		 WHERE pokedex_id = ?`,
		shiny, id,
	)
	if err != nil {
		return fmt.Errorf("record capture %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("record capture %d: %w", id, err)
	}
	if n == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (s *Store) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := s.sqlDB.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Store) CountCaught(ctx context.Context) (int, error) {
	n, err := s.count(ctx, `SELECT COUNT(*) FROM pokemon WHERE caught = 1`)
	if err != nil {
		return 0, fmt.Errorf("count caught: %w", err)
	}
	return n, nil
}

func (s *Store) CountShiny(ctx context.Context) (int, error) {
	n, err := s.count(ctx, `SELECT COUNT(*) FROM pokemon WHERE is_shiny = 1`)
	if err != nil {
		return 0, fmt.Errorf("count shiny: %w", err)
	}
	return n, nil
}

func (s *Store) CountSeen(ctx context.Context) (int, error) {
	n, err := s.count(ctx, `SELECT COUNT(*) FROM pokemon WHERE seen = 1`)
	if err != nil {
		return 0, fmt.Errorf("count seen: %w", err)
	}
	return n, nil
}

// BonusUnlocked reports whether at least requiredBelow creatures with an id
// lower than bonusID are caught.
func (s *Store) BonusUnlocked(ctx context.Context, bonusID int, requiredBelow int) (bool, error) {
	rule := game.BonusRule{ID: bonusID, RequiredBelow: requiredBelow}
	if rule.ID <= 0 {
		return false, nil
	}
	n, err := s.count(ctx, `SELECT COUNT(*) FROM pokemon WHERE caught = 1 AND pokedex_id < ?`, bonusID)
	if err != nil {
		return false, fmt.Errorf("count caught below %d: %w", bonusID, err)
	}
	return rule.Eligible(n), nil
}

// Preference returns "" for unset keys.
func (s *Store) Preference(ctx context.Context, key string) (string, error) {
	var value string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT value FROM user_preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get preference %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) SetPreference(ctx context.Context, key, value string) error {
	if _, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO user_preferences (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	); err != nil {
		return fmt.Errorf("set preference %s: %w", key, err)
	}
	return nil
}

var _ catalog.Store = (*Store)(nil)
