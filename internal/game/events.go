package game

import (
	"maps"

	"github.com/google/uuid"
	"github.com/user/mideast-strategy/internal/types"
)

// eventCatalogue is the fixed set of random world events
var eventCatalogue = []types.Event{
	{
		Scope:       types.ScopeGlobal,
		Title:       "Oil Price Surge",
		Description: "Global oil prices increase due to supply concerns",
		Effects:     map[string]float64{"oil_price": 20, "economy": 10},
		Severity:    types.SeverityMedium,
	},
	{
		Scope:       types.ScopeRegional,
		Title:       "Regional Summit Called",
		Description: "Major powers call for regional peace talks",
		Effects:     map[string]float64{"diplomacy": 5, "tension": -10},
		Severity:    types.SeverityLow,
	},
	{
		Scope:       types.ScopeGlobal,
		Title:       "Cyber Attack Wave",
		Description: "Multiple countries report sophisticated cyber attacks",
		Effects:     map[string]float64{"cyber_defense": -10, "tension": 15},
		Severity:    types.SeverityHigh,
	},
	{
		Scope:       types.ScopeRegional,
		Title:       "Water Crisis Escalates",
		Description: "Regional water shortages threaten stability",
		Effects:     map[string]float64{"stability": -5, "tension": 10},
		Severity:    types.SeverityHigh,
	},
	{
		Scope:       types.ScopeGlobal,
		Title:       "Economic Sanctions Imposed",
		Description: "International community imposes new sanctions",
		Effects:     map[string]float64{"economy": -15, "isolation": 10},
		Severity:    types.SeverityHigh,
	},
}

// GenerateEvent picks a catalogue event uniformly and gives it a duration of 1-3 turns.
// The caller appends it to the state.
func GenerateEvent(dice *DiceRoller) types.Event {
	event := eventCatalogue[dice.Intn(len(eventCatalogue))]
	event.ID = uuid.NewString()
	event.Effects = maps.Clone(event.Effects)
	event.Duration = dice.Roll(3)
	return event
}

// decisionEvent records a free-form decision taken through the UI
func decisionEvent(title, description string, effects map[string]float64, severity types.Severity) types.Event {
	if effects == nil {
		effects = map[string]float64{}
	}
	return types.Event{
		ID:          uuid.NewString(),
		Scope:       types.ScopeInternal,
		Title:       title,
		Description: description,
		Effects:     effects,
		Duration:    2,
		Severity:    severity,
	}
}
