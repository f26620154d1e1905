// Package lookup resolves typed creature names to catalog ids, tolerating
// accents, prefixes and small typos.
package lookup

import (
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/appengine-ltd/pokedex/internal/catalog"
)

type Source string

const (
	SourceID     Source = "id"
	SourceExact  Source = "exact"
	SourcePrefix Source = "prefix"
	SourceFuzzy  Source = "lev"
)

// Match is one candidate for a query.
type Match struct {
	ID     int
	Name   string
	Score  float64
	Source Source
}

type entry struct {
	id      int
	display string
	alias   string
}

// Index holds every name a creature answers to.
type Index struct {
	entries []entry
	ids     map[int]string
}

func NewIndex(creatures []catalog.Creature) *Index {
	idx := &Index{ids: make(map[int]string, len(creatures))}
	for _, c := range creatures {
		idx.Add(c)
	}
	return idx
}

// Add registers the French and English names of c. Empty names are skipped.
func (x *Index) Add(c catalog.Creature) {
	display := c.Name
	if display == "" {
		display = c.NameEN
	}
	x.ids[c.ID] = display
	for _, name := range []string{c.Name, c.NameEN} {
		n := normaliseName(name)
		if n == "" {
			continue
		}
		x.entries = append(x.entries, entry{id: c.ID, display: display, alias: n})
	}
}

func (x *Index) Len() int {
	return len(x.ids)
}

// Find returns up to limit candidates, best first. A numeric query matches
// the id directly.
func (x *Index) Find(query string, limit int) []Match {
	if limit <= 0 {
		limit = 5
	}
	if id, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(query, "#"))); err == nil {
		if name, ok := x.ids[id]; ok {
			return []Match{{ID: id, Name: name, Score: 1, Source: SourceID}}
		}
		return nil
	}

	q := normaliseName(query)
	if q == "" {
		return nil
	}
	best := map[int]Match{}
	for _, e := range x.entries {
		m, ok := score(q, e)
		if !ok {
			continue
		}
		if prev, seen := best[e.id]; !seen || m.Score > prev.Score {
			best[e.id] = m
		}
	}

	out := make([]Match, 0, len(best))
	for _, m := range best {
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score == out[j].Score {
			return out[i].ID < out[j].ID
		}
		return out[i].Score > out[j].Score
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Best returns the top candidate.
func (x *Index) Best(query string) (Match, bool) {
	m := x.Find(query, 1)
	if len(m) == 0 {
		return Match{}, false
	}
	return m[0], true
}

func score(q string, e entry) (Match, bool) {
	m := Match{ID: e.id, Name: e.display}
	switch {
	case q == e.alias:
		m.Score, m.Source = 1.0, SourceExact
	case len(q) >= 2 && strings.HasPrefix(e.alias, q):
		m.Score, m.Source = 0.9, SourcePrefix
	case len(q) >= 3:
		dist := levenshtein.ComputeDistance(q, e.alias)
		if dist > distanceLimit(len(e.alias)) {
			return Match{}, false
		}
		m.Score, m.Source = 0.72-0.08*float64(dist), SourceFuzzy
	default:
		return Match{}, false
	}
	return m, true
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
