package game

import (
	"github.com/user/mideast-strategy/internal/types"
)

// VictoryCheck is one victory condition over the player's nation
type VictoryCheck struct {
	Type types.VictoryType
	Met  func(n *types.Nation) bool
}

// Victory thresholds
const (
	militaryExperience    = 95
	militaryStability     = 80
	economicGDP           = 1_000_000_000_000
	economicDebt          = 30
	diplomaticAllyScore   = 70
	diplomaticAllyCount   = 6
	technologicalCyberMin = 90
)

var (
	MilitaryVictory = VictoryCheck{
		Type: types.VictoryMilitary,
		Met: func(n *types.Nation) bool {
			return n.Military.Experience >= militaryExperience && n.Politics.Stability >= militaryStability
		},
	}
	EconomicVictory = VictoryCheck{
		Type: types.VictoryEconomic,
		Met: func(n *types.Nation) bool {
			return n.Economy.GDP > economicGDP && n.Economy.Debt < economicDebt
		},
	}
	DiplomaticVictory = VictoryCheck{
		Type: types.VictoryDiplomatic,
		Met: func(n *types.Nation) bool {
			allies := 0
			for _, score := range n.Diplomacy.Relationships {
				if score > diplomaticAllyScore {
					allies++
				}
			}
			return allies >= diplomaticAllyCount
		},
	}
	TechnologicalVictory = VictoryCheck{
		Type: types.VictoryTechnological,
		Met: func(n *types.Nation) bool {
			return n.Military.Nuclear.Status == types.NuclearOperational &&
				n.Intelligence.Capabilities.Cyber >= technologicalCyberMin
		},
	}
)

// DefaultVictoryOrder is the order conditions are checked in. The first
// satisfied condition decides the victory type.
func DefaultVictoryOrder() []VictoryCheck {
	return []VictoryCheck{MilitaryVictory, EconomicVictory, DiplomaticVictory, TechnologicalVictory}
}

// EvaluateVictory returns the first satisfied victory type in checks order
func EvaluateVictory(n *types.Nation, checks []VictoryCheck) (types.VictoryType, bool) {
	if n == nil {
		return "", false
	}
	for _, c := range checks {
		if c.Met(n) {
			return c.Type, true
		}
	}
	return "", false
}
