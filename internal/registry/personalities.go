package registry

import (
	"slices"

	"github.com/user/mideast-strategy/internal/types"
)

// personalities drive AI action weighting. The UAE has no entry and never acts.
var personalities = map[string]types.Personality{
	"israel": {Aggression: 70, Caution: 80, Expansion: 40, Cooperation: 60, Ideology: 70, Priorities: []string{"security", "technology", "alliances"}},
	"egypt":  {Aggression: 40, Caution: 70, Expansion: 30, Cooperation: 70, Ideology: 50, Priorities: []string{"stability", "economy", "regional_power"}},
	"saudi":  {Aggression: 60, Caution: 60, Expansion: 80, Cooperation: 50, Ideology: 90, Priorities: []string{"oil", "influence", "security"}},
	"turkey": {Aggression: 80, Caution: 40, Expansion: 90, Cooperation: 40, Ideology: 60, Priorities: []string{"expansion", "influence", "economy"}},
	"iran":   {Aggression: 90, Caution: 30, Expansion: 80, Cooperation: 20, Ideology: 95, Priorities: []string{"nuclear", "regional_hegemony", "ideology"}},
	"jordan": {Aggression: 20, Caution: 90, Expansion: 10, Cooperation: 80, Ideology: 40, Priorities: []string{"stability", "alliances", "survival"}},
	"syria":  {Aggression: 60, Caution: 40, Expansion: 30, Cooperation: 30, Ideology: 70, Priorities: []string{"survival", "iranian_alliance", "control"}},
	"iraq":   {Aggression: 30, Caution: 70, Expansion: 20, Cooperation: 60, Ideology: 40, Priorities: []string{"stability", "reconstruction", "sovereignty"}},
}

// Personalities returns a copy of the AI personality table
func Personalities() map[string]types.Personality {
	out := make(map[string]types.Personality, len(personalities))
	for id, p := range personalities {
		p.Priorities = slices.Clone(p.Priorities)
		out[id] = p
	}
	return out
}
