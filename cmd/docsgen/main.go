package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/appengine-ltd/pokedex/internal/game"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	progressionPath := flag.String("progression", "", "progression YAML (defaults to the built-in tables)")
	out := flag.String("out", filepath.Join("docs", "reference", "progression"), "output directory")
	flag.Parse()

	prog := game.DefaultProgression()
	if *progressionPath != "" {
		p, err := game.LoadProgression(*progressionPath)
		if err != nil {
			fatal(err)
		}
		prog = p
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		fatal(err)
	}

	files := []docFile{
		generateThresholdsDoc(prog),
		generateRegionsDoc(prog),
	}
	for _, f := range files {
		path := filepath.Join(*out, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateIndex(files, prog)
	indexPath := filepath.Join(*out, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateIndex(files []docFile, prog *game.Progression) string {
	var b strings.Builder
	b.WriteString("# Progression\n\n")
	b.WriteString("Generated from the progression tables using `go run ./cmd/docsgen`.\n\n")
	b.WriteString(fmt.Sprintf("Starter region: **%s** (%s).\n\n", escape(prog.Starter.Region), formatIDs(prog.Starter.IDs)))
	if prog.Bonus.ID > 0 {
		b.WriteString(fmt.Sprintf("Bonus: #%03d after %d catches below it.\n\n", prog.Bonus.ID, prog.Bonus.RequiredBelow))
	}
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateThresholdsDoc(prog *game.Progression) docFile {
	var b strings.Builder
	b.WriteString("# Unlock Thresholds\n\n")
	b.WriteString(fmt.Sprintf("Total thresholds: **%d**.\n\n", len(prog.Thresholds)))
	b.WriteString("| Catches | Ceiling | Opens |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, t := range prog.Thresholds {
		b.WriteString("| ")
		b.WriteString(strconv.Itoa(t.UnlockCount))
		b.WriteString(" | ")
		b.WriteString(fmt.Sprintf("#%03d", t.MaxID))
		b.WriteString(" | ")
		b.WriteString(escape(t.Region))
		b.WriteString(" |\n")
	}

	return docFile{Name: "thresholds.md", Title: "Unlock Thresholds", Content: b.String()}
}

func generateRegionsDoc(prog *game.Progression) docFile {
	var b strings.Builder
	b.WriteString("# Regions\n\n")
	b.WriteString(fmt.Sprintf("Total regions: **%d**, %d creatures.\n\n", len(prog.Regions), prog.TotalCount()))
	b.WriteString("| Region | IDs | Creatures | Unlocked At | Music |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, r := range prog.Regions {
		b.WriteString("| ")
		b.WriteString(escape(r.Name))
		b.WriteString(" | ")
		b.WriteString(fmt.Sprintf("%d-%d", r.MinID, r.MaxID-1))
		b.WriteString(" | ")
		b.WriteString(strconv.Itoa(r.MaxID - r.MinID))
		b.WriteString(" | ")
		b.WriteString(unlockedAt(r, prog.Thresholds))
		b.WriteString(" | ")
		b.WriteString(escape(strings.Join(r.Music, ", ")))
		b.WriteString(" |\n")
	}

	return docFile{Name: "regions.md", Title: "Regions", Content: b.String()}
}

// unlockedAt reports the catch count at which any part of r becomes
// reachable.
func unlockedAt(r game.Region, table game.ThresholdTable) string {
	for _, t := range table {
		if !game.Locked(r, t.MaxID) {
			return strconv.Itoa(t.UnlockCount)
		}
	}
	return "never"
}

func formatIDs(ids []int) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("#%03d", id))
	}
	return strings.Join(parts, ", ")
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
