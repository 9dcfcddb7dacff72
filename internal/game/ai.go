package game

import (
	"slices"

	"github.com/user/mideast-strategy/internal/types"
)

// AI thresholds
const (
	aiAggressiveExercise = 60
	aiExperienceCeiling  = 80
	aiDebtConcern        = 60
	aiCautionThreshold   = 50
	aiHostileRelation    = -30
	aiHostileCount       = 2
	aiCooperative        = 40
	aiVeryAggressive     = 80
	aiEnemyRelation      = -60
)

// candidate is an action with its selection weight
type candidate struct {
	action types.Action
	weight float64
}

// Decide picks one action for an AI nation or returns nil when it sits the turn out.
// Candidates pass fixed threshold gates, carry a trait-derived weight, and one
// is drawn by weighted lottery. Nations without a personality never act.
func Decide(state *types.GameState, nationID string, personalities map[string]types.Personality, dice *DiceRoller) types.Action {
	nation, ok := state.Nations[nationID]
	if !ok || nation == nil {
		return nil
	}
	p, ok := personalities[nationID]
	if !ok {
		return nil
	}

	var candidates []candidate

	if p.Aggression > aiAggressiveExercise && nation.Military.Experience < aiExperienceCeiling {
		candidates = append(candidates, candidate{types.MilitaryExercise{Country: nationID}, p.Aggression})
	}

	if nation.Economy.Debt > aiDebtConcern {
		candidates = append(candidates, candidate{types.InvestInfrastructure{Country: nationID}, 100 - p.Aggression})
	}

	if p.Caution > aiCautionThreshold {
		candidates = append(candidates, candidate{types.GatherIntelligence{Country: nationID}, p.Caution})
	}

	hostile := relationsBelow(nation, aiHostileRelation)
	if len(hostile) > aiHostileCount && p.Cooperation > aiCooperative {
		target := hostile[dice.Intn(len(hostile))]
		candidates = append(candidates, candidate{types.ImproveRelations{Country: nationID, Target: target}, p.Cooperation})
	}

	if p.Aggression > aiVeryAggressive {
		if enemies := relationsBelow(nation, aiEnemyRelation); len(enemies) > 0 {
			target := enemies[dice.Intn(len(enemies))]
			candidates = append(candidates, candidate{types.CyberAttack{Country: nationID, Target: target}, p.Aggression})
		}
	}

	return pickWeighted(candidates, dice)
}

// pickWeighted draws uniformly over the summed weights and walks the list
// until the draw is covered
func pickWeighted(candidates []candidate, dice *DiceRoller) types.Action {
	if len(candidates) == 0 {
		return nil
	}

	var total float64
	for _, c := range candidates {
		total += c.weight
	}

	draw := dice.Float() * total
	var cumulative float64
	for _, c := range candidates {
		cumulative += c.weight
		if draw <= cumulative {
			return c.action
		}
	}
	return candidates[len(candidates)-1].action
}

// relationsBelow lists, in ID order, the nations n regards below threshold
func relationsBelow(n *types.Nation, threshold float64) []string {
	var ids []string
	for id, score := range n.Diplomacy.Relationships {
		if score < threshold {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}
