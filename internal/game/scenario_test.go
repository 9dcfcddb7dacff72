package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/mideast-strategy/config"
	"github.com/user/mideast-strategy/internal/types"
)

const twoNationScenario = `
name: border dispute
nations:
  - id: north
    name: Northland
    capital: Nordholm
    ideology: democracy
    population: 5000000
    economy:
      gdp: 200000000000
      debt: 40
      inflation: 2
      budget:
        income: 50000000000
        expenses:
          defense: 5000000000
    military:
      experience: 50
      morale: 60
      nuclear:
        status: none
    politics:
      stability: 150
      public_support: 55
    diplomacy:
      relationships:
        south: -70
  - id: south
    name: Southland
    capital: Sudberg
    ideology: autocracy
    economy:
      gdp: 90000000000
      debt: 80
    military:
      experience: 40
      morale: 50
    politics:
      stability: 45
    diplomacy:
      relationships:
        north: -80
personalities:
  south:
    aggression: 85
    caution: 20
    cooperation: 10
`

func writeScenario(t *testing.T, content string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scenario.yaml"), []byte(content), 0644))
	return dir, "scenario.yaml"
}

func TestLoadScenario(t *testing.T) {
	dir, name := writeScenario(t, twoNationScenario)

	scenario, err := NewDataLoader(dir).LoadScenario(name)
	require.NoError(t, err)

	assert.Equal(t, "border dispute", scenario.Name)
	require.Len(t, scenario.Roster, 2)
	nations := scenario.Nations()
	assert.Equal(t, "Northland", nations["north"].Name)
	assert.Equal(t, -70.0, nations["north"].Diplomacy.Relationships["south"])
	assert.NotNil(t, nations["south"].Diplomacy.Relationships)
	assert.Equal(t, 85.0, scenario.Personalities["south"].Aggression)
	assert.NotContains(t, scenario.Personalities, "north")
}

func TestLoadScenarioDrivesEngine(t *testing.T) {
	dir, name := writeScenario(t, twoNationScenario)
	scenario, err := NewDataLoader(dir).LoadScenario(name)
	require.NoError(t, err)

	engine := NewEngine(config.DefaultConfig().Game, scenario.Nations(), scenario.Personalities)
	engine.SetRandomSource(NewSequenceSource(0.0, 0.99))

	state := engine.StartGame("north")
	assert.Equal(t, 100.0, state.Nations["north"].Politics.Stability, "loaded values are clamped")

	// South is aggressive with experience under 80 and an enemy below -60
	state = engine.EndTurn()
	assert.Equal(t, 2, state.Turn)
	assert.Equal(t, "Sophisticated Cyber Attack Reported", state.News[0].Headline)
}

func TestLoadScenarioDefaults(t *testing.T) {
	dir, name := writeScenario(t, "name: empty\n")
	scenario, err := NewDataLoader(dir).LoadScenario(name)
	require.NoError(t, err)

	assert.Len(t, scenario.Roster, 9)
	assert.Len(t, scenario.Personalities, 8)
}

func TestLoadScenarioErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "nations: [\n"},
		{"missing id", "nations:\n  - name: Nowhere\n"},
		{"duplicate id", "nations:\n  - id: a\n  - id: a\n"},
		{"orphan personality", "nations:\n  - id: a\npersonalities:\n  b:\n    aggression: 10\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, name := writeScenario(t, tt.content)
			_, err := NewDataLoader(dir).LoadScenario(name)
			assert.Error(t, err)
		})
	}

	_, err := NewDataLoader(t.TempDir()).LoadScenario("missing.yaml")
	assert.Error(t, err)
}

func TestDefaultScenarioIsIsolated(t *testing.T) {
	scenario := DefaultScenario()
	first := scenario.Nations()
	first["israel"].Politics.Stability = 1

	second := scenario.Nations()
	assert.NotEqual(t, 1.0, second["israel"].Politics.Stability)
	assert.IsType(t, map[string]*types.Nation{}, second)
}
