package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/user/mideast-strategy/internal/registry"
	"github.com/user/mideast-strategy/internal/types"
	"gopkg.in/yaml.v3"
)

// Scenario is the starting roster and AI personality table every new game copies
type Scenario struct {
	Name          string                       `yaml:"name"`
	Roster        []*types.Nation              `yaml:"nations"`
	Personalities map[string]types.Personality `yaml:"personalities"`
}

// DefaultScenario returns the built-in nine nation scenario
func DefaultScenario() *Scenario {
	nations := registry.Nations()
	state := types.GameState{Nations: nations}
	roster := make([]*types.Nation, 0, len(nations))
	for _, id := range state.NationIDs() {
		roster = append(roster, nations[id])
	}
	return &Scenario{
		Name:          "default",
		Roster:        roster,
		Personalities: registry.Personalities(),
	}
}

// Nations returns a fresh copy of the roster keyed by nation ID
func (s *Scenario) Nations() map[string]*types.Nation {
	out := make(map[string]*types.Nation, len(s.Roster))
	for _, n := range s.Roster {
		out[n.ID] = n.Clone()
	}
	return out
}

// Validate checks that every nation has a unique ID and every personality a nation
func (s *Scenario) Validate() error {
	if len(s.Roster) == 0 {
		return errors.New("scenario has no nations")
	}

	seen := make(map[string]bool, len(s.Roster))
	for i, n := range s.Roster {
		if n == nil || n.ID == "" {
			return fmt.Errorf("nation %d has no id", i)
		}
		if seen[n.ID] {
			return fmt.Errorf("duplicate nation %q", n.ID)
		}
		seen[n.ID] = true
	}

	for id := range s.Personalities {
		if !seen[id] {
			return fmt.Errorf("personality for unknown nation %q", id)
		}
	}
	return nil
}

// DataLoader handles loading scenario files
type DataLoader struct {
	basePath string
}

// NewDataLoader creates a new data loader
func NewDataLoader(basePath string) *DataLoader {
	return &DataLoader{
		basePath: basePath,
	}
}

// LoadScenario reads a YAML scenario. A file without nations keeps the
// built-in roster and one without personalities keeps the built-in table.
func (dl *DataLoader) LoadScenario(name string) (*Scenario, error) {
	path := name
	if !filepath.IsAbs(path) && dl.basePath != "" {
		path = filepath.Join(dl.basePath, name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse scenario data: %w", err)
	}

	defaults := DefaultScenario()
	if len(scenario.Roster) == 0 {
		scenario.Roster = defaults.Roster
	}
	if scenario.Personalities == nil {
		scenario.Personalities = defaults.Personalities
	}
	if scenario.Name == "" {
		scenario.Name = filepath.Base(path)
	}
	for _, n := range scenario.Roster {
		if n != nil && n.Diplomacy.Relationships == nil {
			n.Diplomacy.Relationships = make(map[string]float64)
		}
	}

	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &scenario, nil
}
