package game

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed progression.yaml
var defaultProgression []byte

// Threshold grants access to creature ids below MaxID once UnlockCount
// creatures have been caught. Region is set when the threshold opens a new
// area for the region picker.
type Threshold struct {
	UnlockCount int    `yaml:"unlock_count"`
	MaxID       int    `yaml:"max_id"`
	Region      string `yaml:"region,omitempty"`
}

// ThresholdTable is ordered by UnlockCount.
type ThresholdTable []Threshold

// Region owns the half-open id interval [MinID, MaxID).
type Region struct {
	Name  string   `yaml:"name"`
	MinID int      `yaml:"min_id"`
	MaxID int      `yaml:"max_id"`
	Music []string `yaml:"music,omitempty"`
}

func (r Region) Contains(id int) bool {
	return id >= r.MinID && id < r.MaxID
}

type Starter struct {
	Region string `yaml:"region"`
	IDs    []int  `yaml:"ids"`
}

// BonusRule makes ID eligible once RequiredBelow creatures with a lower id
// are caught, regardless of the threshold ceiling.
type BonusRule struct {
	ID            int `yaml:"id"`
	RequiredBelow int `yaml:"required_below"`
}

type Progression struct {
	Starter    Starter        `yaml:"starter"`
	Bonus      BonusRule      `yaml:"bonus"`
	Thresholds ThresholdTable `yaml:"thresholds"`
	Regions    []Region       `yaml:"regions"`
}

// DefaultProgression returns the built-in tables.
func DefaultProgression() *Progression {
	p, err := ParseProgression(defaultProgression)
	if err != nil {
		panic(fmt.Sprintf("embedded progression: %v", err))
	}
	return p
}

// LoadProgression reads tables from a YAML file. An empty path returns the
// built-in tables.
func LoadProgression(path string) (*Progression, error) {
	if path == "" {
		return DefaultProgression(), nil
	}
	cleanPath := filepath.Clean(path)
	b, err := os.ReadFile(cleanPath) //nolint:gosec // operator supplied config path
	if err != nil {
		return nil, fmt.Errorf("read progression: %w", err)
	}
	return ParseProgression(b)
}

func ParseProgression(b []byte) (*Progression, error) {
	var p Progression
	if err := yaml.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("parse progression: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks that regions partition the id space without gaps and that
// thresholds never lower the ceiling.
func (p *Progression) Validate() error {
	if len(p.Regions) == 0 {
		return fmt.Errorf("progression: no regions")
	}
	names := make(map[string]struct{}, len(p.Regions))
	next := 1
	for i, r := range p.Regions {
		if r.Name == "" {
			return fmt.Errorf("progression: region %d has no name", i)
		}
		if _, dup := names[r.Name]; dup {
			return fmt.Errorf("progression: duplicate region %s", r.Name)
		}
		names[r.Name] = struct{}{}
		if r.MinID != next {
			return fmt.Errorf("progression: region %s starts at %d, want %d", r.Name, r.MinID, next)
		}
		if r.MaxID <= r.MinID {
			return fmt.Errorf("progression: region %s is empty", r.Name)
		}
		next = r.MaxID
	}

	if len(p.Thresholds) == 0 {
		return fmt.Errorf("progression: no thresholds")
	}
	if p.Thresholds[0].UnlockCount != 0 {
		return fmt.Errorf("progression: first threshold must unlock at 0 catches")
	}
	for i, t := range p.Thresholds {
		if t.Region != "" {
			if _, ok := names[t.Region]; !ok {
				return fmt.Errorf("progression: threshold %d names unknown region %s", t.UnlockCount, t.Region)
			}
		}
		if i == 0 {
			continue
		}
		prev := p.Thresholds[i-1]
		if t.UnlockCount <= prev.UnlockCount {
			return fmt.Errorf("progression: thresholds not ordered at %d", t.UnlockCount)
		}
		if t.MaxID < prev.MaxID {
			return fmt.Errorf("progression: threshold %d lowers ceiling to %d", t.UnlockCount, t.MaxID)
		}
	}

	if p.Starter.Region != "" {
		if _, ok := names[p.Starter.Region]; !ok {
			return fmt.Errorf("progression: unknown starter region %s", p.Starter.Region)
		}
	}
	return nil
}

// StarterRegion falls back to the first region.
func (p *Progression) StarterRegion() Region {
	if r, ok := p.Region(p.Starter.Region); ok {
		return r
	}
	return p.Regions[0]
}

func (p *Progression) Region(name string) (Region, bool) {
	for _, r := range p.Regions {
		if r.Name == name {
			return r, true
		}
	}
	return Region{}, false
}

// RegionFor returns the region owning id.
func (p *Progression) RegionFor(id int) (Region, bool) {
	for _, r := range p.Regions {
		if r.Contains(id) {
			return r, true
		}
	}
	return Region{}, false
}

// TotalCount is the highest creature id covered by the region table.
func (p *Progression) TotalCount() int {
	return p.Regions[len(p.Regions)-1].MaxID - 1
}
