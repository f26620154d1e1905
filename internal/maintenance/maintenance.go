// Package maintenance implements the pokedexctl commands: progress reset,
// milestone jumps, name lookup, checklist export, catalog import and the
// release check.
package maintenance

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/appengine-ltd/pokedex/internal/catalog/sqlite"
	"github.com/appengine-ltd/pokedex/internal/config"
	"github.com/appengine-ltd/pokedex/internal/export"
	"github.com/appengine-ltd/pokedex/internal/game"
	"github.com/appengine-ltd/pokedex/internal/lookup"
	"github.com/appengine-ltd/pokedex/internal/update"
)

// Config holds maintenance command configuration.
type Config struct {
	Command         string
	Args            []string
	DBPath          string
	ProgressionFile string
	BackupDir       string
	Output          string
	SeedFile        string
	Limit           int
	Reveal          bool
	Timeout         time.Duration
	Version         string
}

// ParseConfig parses flags into a Config. The first positional argument is
// the command.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	base, err := config.Load()
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		DBPath:          base.DBPath,
		ProgressionFile: base.ProgressionFile,
		Limit:           5,
		Timeout:         time.Minute,
	}

	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "catalog database path (default: POKEDEX_DB_PATH or ./pokedex.db)")
	fs.StringVar(&cfg.ProgressionFile, "progression", cfg.ProgressionFile, "progression YAML overriding the built-in tables")
	fs.StringVar(&cfg.BackupDir, "backup-dir", "", "where reset writes its backup (default: next to the database)")
	fs.StringVar(&cfg.Output, "o", "pokedex.pdf", "export output file")
	fs.StringVar(&cfg.SeedFile, "f", "", "seed input file (JSON array)")
	fs.IntVar(&cfg.Limit, "limit", cfg.Limit, "max find results")
	fs.BoolVar(&cfg.Reveal, "reveal", false, "export names of creatures never seen")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall timeout")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() == 0 {
		return Config{}, errors.New("missing command: reset, milestone, find, export, seed or update")
	}
	cfg.Command = fs.Arg(0)
	cfg.Args = fs.Args()[1:]
	return cfg, nil
}

// Run executes the maintenance command.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if cfg.Command == "update" {
		return runUpdate(ctx, update.NewChecker(), cfg.Version, out)
	}
	prog := game.DefaultProgression()
	if cfg.ProgressionFile != "" {
		p, err := game.LoadProgression(cfg.ProgressionFile)
		if err != nil {
			return err
		}
		prog = p
	}

	store, err := sqlite.Open(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close()
	}()

	switch cfg.Command {
	case "reset":
		return runReset(ctx, store, cfg, out)
	case "milestone":
		return runMilestone(ctx, store, prog, out)
	case "find":
		return runFind(ctx, store, cfg, out)
	case "export":
		return runExport(ctx, store, prog, cfg, out)
	case "seed":
		return runSeed(ctx, store, cfg, out)
	default:
		return fmt.Errorf("unknown command %q", cfg.Command)
	}
}

func runReset(ctx context.Context, store *sqlite.Store, cfg Config, out io.Writer) error {
	dir := cfg.BackupDir
	if dir == "" {
		dir = filepath.Dir(store.Path())
	}
	backup, err := store.Backup(ctx, dir, time.Now())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "backup written to %s\n", backup)
	if err := store.Reset(ctx); err != nil {
		return err
	}
	fmt.Fprintln(out, "progress and preferences reset")
	return nil
}

// milestoneGap is how many more catches leave the player one short of the
// next threshold. ok is false past the last threshold.
func milestoneGap(caught int, table game.ThresholdTable) (need int, next game.Threshold, ok bool) {
	for _, t := range table {
		if t.UnlockCount > caught {
			return max(0, t.UnlockCount-1-caught), t, true
		}
	}
	return 0, game.Threshold{}, false
}

func runMilestone(ctx context.Context, store *sqlite.Store, prog *game.Progression, out io.Writer) error {
	caught, err := store.CountCaught(ctx)
	if err != nil {
		return err
	}
	need, next, ok := milestoneGap(caught, prog.Thresholds)
	if !ok {
		fmt.Fprintf(out, "%d caught: every threshold is already met\n", caught)
		return nil
	}
	ceiling, _ := game.ComputeUnlockCeiling(caught, prog.Thresholds)
	ids, err := store.MarkCaught(ctx, need, ceiling)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "marked %d caught, %d total; next unlock at %d catches (up to #%d)\n", len(ids), caught+len(ids), next.UnlockCount, next.MaxID)
	return nil
}

func runFind(ctx context.Context, store *sqlite.Store, cfg Config, out io.Writer) error {
	query := strings.TrimSpace(strings.Join(cfg.Args, " "))
	if query == "" {
		return errors.New("find needs a name or number")
	}
	all, err := store.AllCreatures(ctx)
	if err != nil {
		return err
	}
	matches := lookup.NewIndex(all).Find(query, cfg.Limit)
	if len(matches) == 0 {
		return fmt.Errorf("no creature matches %q", query)
	}
	for _, m := range matches {
		fmt.Fprintf(out, "#%03d %s (%s %.2f)\n", m.ID, m.Name, m.Source, m.Score)
	}
	return nil
}

func runExport(ctx context.Context, store *sqlite.Store, prog *game.Progression, cfg Config, out io.Writer) error {
	all, err := store.AllCreatures(ctx)
	if err != nil {
		return err
	}
	pdf, err := export.Checklist(export.Group(all, prog.Regions), export.Options{RevealUnseen: cfg.Reveal})
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.Output, pdf, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output, err)
	}
	fmt.Fprintf(out, "wrote %s (%d creatures)\n", cfg.Output, len(all))
	return nil
}

func runSeed(ctx context.Context, store *sqlite.Store, cfg Config, out io.Writer) error {
	if cfg.SeedFile == "" {
		return errors.New("seed needs -f <file>")
	}
	data, err := os.ReadFile(cfg.SeedFile)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	seeds, err := ParseSeeds(data)
	if err != nil {
		return err
	}
	if err := store.UpsertCreatures(ctx, seeds); err != nil {
		return err
	}
	fmt.Fprintf(out, "imported %d creatures\n", len(seeds))
	return nil
}

func runUpdate(ctx context.Context, checker *update.Checker, current string, out io.Writer) error {
	res, err := checker.Check(ctx, current)
	if err != nil {
		return fmt.Errorf("check for update: %w", err)
	}
	if !res.Newer {
		fmt.Fprintf(out, "%s is current (latest release %s)\n", current, res.Latest.Tag)
		return nil
	}
	fmt.Fprintf(out, "update available: %s -> %s\n", current, res.Latest.Tag)
	if res.Latest.Page != "" {
		fmt.Fprintln(out, res.Latest.Page)
	}
	return nil
}
