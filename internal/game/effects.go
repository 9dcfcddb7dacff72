package game

import (
	"math"

	"github.com/user/mideast-strategy/internal/types"
)

// Origin tells the effect rules who issued an action
type Origin int

const (
	// OriginPlayer is an action dispatched by the human player
	OriginPlayer Origin = iota
	// OriginAI is an action chosen by the AI decision procedure
	OriginAI
)

// Probabilities of the stochastic cyber outcomes
const (
	cyberSkillGainChance = 0.6
	cyberHitChance       = 0.7
)

// actorRule computes the patch for the acting nation
type actorRule func(a types.Action, actor *types.Nation, dice *DiceRoller) types.Patch

// targetRule computes the reciprocal patch for the target nation and reports
// whether the action landed. actorID is the nation that issued the action.
type targetRule func(actorID string, target *types.Nation, origin Origin, dice *DiceRoller) (types.Patch, bool)

type effectRule struct {
	actor  actorRule
	target targetRule
}

// effectRules maps each resolvable action to its actor and reciprocal rules.
// A nil target rule means the action has no reciprocal effect.
var effectRules = map[types.ActionType]effectRule{
	types.ActionMilitaryExercise: {
		actor: func(_ types.Action, n *types.Nation, _ *DiceRoller) types.Patch {
			return types.Patch{
				Experience:     types.Float(math.Min(100, n.Military.Experience+5)),
				Morale:         types.Float(math.Min(100, n.Military.Morale+3)),
				DefenseExpense: types.Float(n.Economy.Budget.Expenses.Defense * 1.05),
			}
		},
	},
	types.ActionInvestInfrastructure: {
		actor: func(_ types.Action, n *types.Nation, _ *DiceRoller) types.Patch {
			return types.Patch{
				GDP:                   types.Float(n.Economy.GDP * 1.03),
				InfrastructureExpense: types.Float(n.Economy.Budget.Expenses.Infrastructure * 1.2),
				PublicSupport:         types.Float(math.Min(100, n.Politics.PublicSupport+3)),
				Stability:             types.Float(math.Min(100, n.Politics.Stability+2)),
			}
		},
	},
	types.ActionGatherIntelligence: {
		actor: func(_ types.Action, n *types.Nation, _ *DiceRoller) types.Patch {
			return types.Patch{
				Gathering: types.Float(math.Min(100, n.Intelligence.Capabilities.Gathering+2)),
				Analysis:  types.Float(math.Min(100, n.Intelligence.Capabilities.Analysis+1)),
			}
		},
	},
	types.ActionCyberAttack: {
		// The attacker may learn from the operation whatever its outcome
		actor: func(_ types.Action, n *types.Nation, dice *DiceRoller) types.Patch {
			if !dice.Chance(cyberSkillGainChance) {
				return types.Patch{}
			}
			return types.Patch{Cyber: types.Float(math.Min(100, n.Intelligence.Capabilities.Cyber+3))}
		},
		target: func(_ string, t *types.Nation, _ Origin, dice *DiceRoller) (types.Patch, bool) {
			if !dice.Chance(cyberHitChance) {
				return types.Patch{}, false
			}
			return types.Patch{
				GDP:       types.Float(t.Economy.GDP * 0.98),
				Stability: types.Float(math.Max(0, t.Politics.Stability-5)),
			}, true
		},
	},
	types.ActionImproveRelations: {
		actor: func(a types.Action, n *types.Nation, _ *DiceRoller) types.Patch {
			var p types.Patch
			target := types.TargetOf(a)
			p.SetRelationship(target, math.Min(maxRelationship, relationship(n, target)+15))
			return p
		},
		target: func(actorID string, t *types.Nation, origin Origin, _ *DiceRoller) (types.Patch, bool) {
			gain := 10.0
			if origin == OriginAI {
				gain = 8
			}
			var p types.Patch
			p.SetRelationship(actorID, math.Min(maxRelationship, relationship(t, actorID)+gain))
			return p, true
		},
	},
	types.ActionTradeAgreement: {
		actor: func(a types.Action, n *types.Nation, _ *DiceRoller) types.Patch {
			p := types.Patch{GDP: types.Float(n.Economy.GDP * 1.02)}
			target := types.TargetOf(a)
			p.SetRelationship(target, math.Min(maxRelationship, relationship(n, target)+10))
			return p
		},
		target: func(actorID string, t *types.Nation, _ Origin, _ *DiceRoller) (types.Patch, bool) {
			p := types.Patch{GDP: types.Float(t.Economy.GDP * 1.015)}
			p.SetRelationship(actorID, math.Min(maxRelationship, relationship(t, actorID)+8))
			return p, true
		},
	},
	types.ActionEconomicSanctions: {
		actor: func(a types.Action, n *types.Nation, _ *DiceRoller) types.Patch {
			var p types.Patch
			target := types.TargetOf(a)
			p.SetRelationship(target, math.Max(minRelationship, relationship(n, target)-20))
			return p
		},
		target: func(actorID string, t *types.Nation, _ Origin, _ *DiceRoller) (types.Patch, bool) {
			p := types.Patch{GDP: types.Float(t.Economy.GDP * 0.95)}
			p.SetRelationship(actorID, math.Max(minRelationship, relationship(t, actorID)-25))
			return p, true
		},
	},
	types.ActionDeclareWar: {
		// The target's view of the actor is left as it was
		actor: func(a types.Action, n *types.Nation, _ *DiceRoller) types.Patch {
			p := types.Patch{
				Morale:    types.Float(math.Min(100, n.Military.Morale+10)),
				Stability: types.Float(math.Max(0, n.Politics.Stability-15)),
			}
			p.SetRelationship(types.TargetOf(a), minRelationship)
			return p
		},
	},
}

// ComputeEffects returns the patch an action applies to its acting nation.
// It never mutates actor. Actions without a rule yield an empty patch.
func ComputeEffects(a types.Action, actor *types.Nation, dice *DiceRoller) types.Patch {
	rule, ok := effectRules[a.Type()]
	if !ok || actor == nil {
		return types.Patch{}
	}
	return rule.actor(a, actor, dice)
}

// ComputeReciprocal returns the patch an action applies to its target and
// whether it landed. Actions without a reciprocal rule yield an empty patch and false.
func ComputeReciprocal(a types.Action, target *types.Nation, origin Origin, dice *DiceRoller) (types.Patch, bool) {
	rule, ok := effectRules[a.Type()]
	if !ok || rule.target == nil || target == nil {
		return types.Patch{}, false
	}
	return rule.target(a.Actor(), target, origin, dice)
}

// HasReciprocal reports whether an action type affects its target
func HasReciprocal(t types.ActionType) bool {
	rule, ok := effectRules[t]
	return ok && rule.target != nil
}

func relationship(n *types.Nation, id string) float64 {
	return n.Diplomacy.Relationships[id]
}
