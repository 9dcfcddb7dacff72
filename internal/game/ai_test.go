package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/mideast-strategy/internal/registry"
	"github.com/user/mideast-strategy/internal/types"
)

func testState() *types.GameState {
	return &types.GameState{Turn: 1, Nations: registry.Nations(), Phase: types.PhasePlaying}
}

func TestDecideAggressiveCyberAttack(t *testing.T) {
	state := testState()
	personalities := map[string]types.Personality{
		"iran": {Aggression: 85, Caution: 30, Cooperation: 20},
	}

	// 0.0 picks the first enemy in ID order, 0.9 lands past the exercise weight
	action := Decide(state, "iran", personalities, NewDiceRollerFrom(NewSequenceSource(0.0, 0.9)))
	require.NotNil(t, action)
	assert.Equal(t, types.CyberAttack{Country: "iran", Target: "israel"}, action)

	// A high target draw picks the other enemy
	action = Decide(state, "iran", personalities, NewDiceRollerFrom(NewSequenceSource(0.99, 0.9)))
	assert.Equal(t, types.CyberAttack{Country: "iran", Target: "saudi"}, action)

	// A low selection draw stays on the exercise
	action = Decide(state, "iran", personalities, NewDiceRollerFrom(NewSequenceSource(0.0, 0.1)))
	assert.Equal(t, types.MilitaryExercise{Country: "iran"}, action)
}

func TestDecideDeterministicUnderFixedSource(t *testing.T) {
	state := testState()
	personalities := registry.Personalities()

	for _, id := range state.NationIDs() {
		first := Decide(state, id, personalities, NewDiceRollerFrom(NewSequenceSource(0.42, 0.17, 0.88)))
		for i := 0; i < 5; i++ {
			again := Decide(state, id, personalities, NewDiceRollerFrom(NewSequenceSource(0.42, 0.17, 0.88)))
			assert.Equal(t, first, again, id)
		}
	}
}

func TestDecideCandidateGates(t *testing.T) {
	state := testState()
	personalities := registry.Personalities()
	last := func() *DiceRoller { return NewDiceRollerFrom(NewSequenceSource(0.999)) }
	first := func() *DiceRoller { return NewDiceRollerFrom(NewSequenceSource(0.0)) }

	// Turkey: aggression 80 with experience 80, debt 40, caution 40, one hostile relation
	assert.Nil(t, Decide(state, "turkey", personalities, last()))

	// UAE has no personality and sits out
	assert.Nil(t, Decide(state, "uae", personalities, last()))

	// Unknown nation
	assert.Nil(t, Decide(state, "atlantis", personalities, last()))

	// Jordan: debt 95 -> infrastructure (80), caution 90 -> intelligence (90)
	assert.Equal(t, types.InvestInfrastructure{Country: "jordan"}, Decide(state, "jordan", personalities, first()))
	assert.Equal(t, types.GatherIntelligence{Country: "jordan"}, Decide(state, "jordan", personalities, last()))

	// Syria has two relations below -30, which is not more than two
	assert.Equal(t, types.InvestInfrastructure{Country: "syria"}, Decide(state, "syria", personalities, last()))
}

func TestDecideImproveRelationsTargetsHostileNation(t *testing.T) {
	state := testState()
	egypt := state.Nations["egypt"]
	egypt.Economy.Debt = 10
	egypt.Diplomacy.Relationships["iran"] = -50
	egypt.Diplomacy.Relationships["syria"] = -45
	egypt.Diplomacy.Relationships["turkey"] = -35

	personalities := map[string]types.Personality{
		"egypt": {Aggression: 10, Caution: 10, Cooperation: 70},
	}

	action := Decide(state, "egypt", personalities, NewDiceRollerFrom(NewSequenceSource(0.5, 0.5)))
	require.IsType(t, types.ImproveRelations{}, action)
	assert.Contains(t, []string{"iran", "syria", "turkey"}, types.TargetOf(action))
	assert.Equal(t, "syria", types.TargetOf(action))
}

func TestPickWeighted(t *testing.T) {
	candidates := []candidate{
		{types.MilitaryExercise{Country: "a"}, 10},
		{types.GatherIntelligence{Country: "a"}, 30},
	}

	pick := func(v float64) types.Action {
		return pickWeighted(candidates, NewDiceRollerFrom(NewSequenceSource(v)))
	}

	assert.Equal(t, candidates[0].action, pick(0.2))
	assert.Equal(t, candidates[0].action, pick(0.25), "a draw on the boundary is covered by the earlier candidate")
	assert.Equal(t, candidates[1].action, pick(0.5))
	assert.Nil(t, pickWeighted(nil, NewDiceRollerFrom(NewSequenceSource(0.5))))
}

func TestExecuteAITurnDoesNotMutate(t *testing.T) {
	engine := newTestEngine(t, "israel", 0.0, 0.9)
	before := engine.State()

	action := engine.ExecuteAITurn("iran")
	require.NotNil(t, action)
	assert.Equal(t, before, engine.State())
}
