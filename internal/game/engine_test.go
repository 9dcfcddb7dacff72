package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/mideast-strategy/config"
	"github.com/user/mideast-strategy/internal/registry"
	"github.com/user/mideast-strategy/internal/types"
)

// newTestEngine builds an engine over the built-in roster driven by values
func newTestEngine(t *testing.T, player string, values ...float64) *Engine {
	t.Helper()
	engine := NewEngine(config.DefaultConfig().Game, registry.Nations(), registry.Personalities())
	engine.SetRandomSource(NewSequenceSource(values...))
	engine.SetClock(func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) })
	if player != "" {
		state := engine.StartGame(player)
		require.Equal(t, types.PhasePlaying, state.Phase)
	}
	return engine
}

// noEvents is a draw that never triggers a random event or a cyber success
const noEvents = 0.99

func TestStartGame(t *testing.T) {
	engine := newTestEngine(t, "")

	state := engine.StartGame("atlantis")
	assert.Equal(t, types.PhaseSetup, state.Phase, "unknown nation is ignored")

	state = engine.StartGame("egypt")
	assert.Equal(t, types.PhasePlaying, state.Phase)
	assert.Equal(t, "egypt", state.CurrentPlayer)
	assert.Equal(t, 1, state.Turn)
	require.Len(t, state.News, 1)
	assert.Equal(t, "Egypt Leadership Takes Office", state.News[0].Headline)
	assert.Equal(t, types.NewsInternal, state.News[0].Category)

	again := engine.StartGame("iran")
	assert.Equal(t, "egypt", again.CurrentPlayer, "a running game cannot be restarted")
}

func TestActionsIgnoredOutsidePlaying(t *testing.T) {
	engine := newTestEngine(t, "", noEvents)
	before := engine.State()

	after := engine.ProcessAction(types.MilitaryExercise{Country: "israel"})
	assert.Equal(t, before, after)

	after = engine.EndTurn()
	assert.Equal(t, 1, after.Turn)
}

func TestInvestInfrastructureScenario(t *testing.T) {
	engine := newTestEngine(t, "israel", noEvents)
	before := engine.State().Nations["israel"]

	state := engine.ProcessAction(types.InvestInfrastructure{Country: "israel"})
	after := state.Nations["israel"]

	assert.Equal(t, 72.0, after.Politics.Stability)
	assert.Equal(t, 68.0, after.Politics.PublicSupport)
	assert.InDelta(t, before.Economy.GDP*1.03, after.Economy.GDP, 1)
	assert.InDelta(t, before.Economy.Budget.Expenses.Infrastructure*1.2, after.Economy.Budget.Expenses.Infrastructure, 1)
}

func TestEconomicSanctionsScenario(t *testing.T) {
	engine := newTestEngine(t, "israel", noEvents)
	before := engine.State()
	require.Equal(t, -90.0, before.Nations["israel"].Diplomacy.Relationships["iran"])
	iranView := before.Nations["iran"].Diplomacy.Relationships["israel"]

	state := engine.ProcessAction(types.EconomicSanctions{Country: "israel", Target: "iran"})

	assert.Equal(t, -100.0, state.Nations["israel"].Diplomacy.Relationships["iran"])
	assert.InDelta(t, before.Nations["iran"].Economy.GDP*0.95, state.Nations["iran"].Economy.GDP, 1)
	assert.Equal(t, max(-100, iranView-25), state.Nations["iran"].Diplomacy.Relationships["israel"])
}

func TestDeclareWarScenario(t *testing.T) {
	engine := newTestEngine(t, "egypt", noEvents)
	before := engine.State()
	require.Equal(t, 40.0, before.Nations["egypt"].Diplomacy.Relationships["israel"])

	state := engine.ProcessAction(types.DeclareWar{Country: "egypt", Target: "israel"})
	egypt := state.Nations["egypt"]

	assert.Equal(t, -100.0, egypt.Diplomacy.Relationships["israel"])
	assert.Equal(t, 75.0, egypt.Military.Morale)
	assert.Equal(t, 45.0, egypt.Politics.Stability)
	assert.Equal(t, 65.0, state.GlobalFactors.GlobalTension)

	// The target's view of the aggressor is intentionally not mirrored
	assert.Equal(t, before.Nations["israel"].Diplomacy.Relationships["egypt"], state.Nations["israel"].Diplomacy.Relationships["egypt"])
}

func TestImproveRelationsPlayerVersusAI(t *testing.T) {
	player := newTestEngine(t, "egypt", noEvents)
	before := player.State()

	state := player.ProcessAction(types.ImproveRelations{Country: "egypt", Target: "iran"})
	assert.Equal(t, before.Nations["egypt"].Diplomacy.Relationships["iran"]+15, state.Nations["egypt"].Diplomacy.Relationships["iran"])
	assert.Equal(t, before.Nations["iran"].Diplomacy.Relationships["egypt"]+10, state.Nations["iran"].Diplomacy.Relationships["egypt"])
	assert.Equal(t, 48.0, state.GlobalFactors.GlobalTension)

	ai := newTestEngine(t, "israel", noEvents)
	require.True(t, ai.resolve(types.ImproveRelations{Country: "egypt", Target: "iran"}, OriginAI))
	aiState := ai.State()
	assert.Equal(t, before.Nations["egypt"].Diplomacy.Relationships["iran"]+15, aiState.Nations["egypt"].Diplomacy.Relationships["iran"])
	assert.Equal(t, before.Nations["iran"].Diplomacy.Relationships["egypt"]+8, aiState.Nations["iran"].Diplomacy.Relationships["egypt"])
}

func TestCyberAttackOutcomes(t *testing.T) {
	// actor roll succeeds (0.1 < 0.6), target roll succeeds (0.2 < 0.7)
	hit := newTestEngine(t, "iran", 0.1, 0.2, noEvents)
	before := hit.State()
	state := hit.ProcessAction(types.CyberAttack{Country: "iran", Target: "israel"})
	assert.Equal(t, 88.0, state.Nations["iran"].Intelligence.Capabilities.Cyber)
	assert.InDelta(t, before.Nations["israel"].Economy.GDP*0.98, state.Nations["israel"].Economy.GDP, 1)
	assert.Equal(t, 65.0, state.Nations["israel"].Politics.Stability)

	// both rolls fail: a modeled outcome, not an error
	miss := newTestEngine(t, "iran", 0.9, 0.9, noEvents)
	state = miss.ProcessAction(types.CyberAttack{Country: "iran", Target: "israel"})
	assert.Equal(t, 85.0, state.Nations["iran"].Intelligence.Capabilities.Cyber)
	assert.Equal(t, before.Nations["israel"].Economy.GDP, state.Nations["israel"].Economy.GDP)
	assert.Equal(t, 70.0, state.Nations["israel"].Politics.Stability)
	assert.Equal(t, "Sophisticated Cyber Attack Reported", state.News[0].Headline)
}

func TestFailSoftOnInvalidReferences(t *testing.T) {
	engine := newTestEngine(t, "israel", noEvents)
	before := engine.State()

	tests := []struct {
		name   string
		action types.Action
	}{
		{"unknown actor", types.MilitaryExercise{Country: "atlantis"}},
		{"missing target", types.DeclareWar{Country: "israel"}},
		{"self target", types.EconomicSanctions{Country: "israel", Target: "israel"}},
		{"unknown decision maker", types.ExecuteAction{Country: "atlantis", Effects: types.Patch{GDP: types.Float(1)}}},
		{"unknown dilemma owner", types.ResolveDilemma{Country: "atlantis", OptionID: "a"}},
		{"nil action", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				after := engine.ProcessAction(tt.action)
				assert.Equal(t, before, after)
			})
		})
	}
}

func TestUnknownTargetStillAppliesActorEffects(t *testing.T) {
	engine := newTestEngine(t, "israel", noEvents)
	before := engine.State()

	state := engine.ProcessAction(types.TradeAgreement{Country: "israel", Target: "atlantis"})
	assert.InDelta(t, before.Nations["israel"].Economy.GDP*1.02, state.Nations["israel"].Economy.GDP, 1)
	assert.Equal(t, 10.0, state.Nations["israel"].Diplomacy.Relationships["atlantis"])
}

func TestExecuteActionScoresAgainstOldSnapshot(t *testing.T) {
	engine := newTestEngine(t, "jordan", noEvents)
	before := engine.State()

	state := engine.ProcessAction(types.ExecuteAction{
		Country:  "jordan",
		ActionID: "austerity",
		Effects: types.Patch{
			GDP:           types.Float(before.Nations["jordan"].Economy.GDP + 1e9),
			Stability:     types.Float(140),
			PublicSupport: types.Float(10),
		},
	})

	assert.Equal(t, 15, state.Score, "gdp and stability rose, support fell")
	assert.Equal(t, 100.0, state.Nations["jordan"].Politics.Stability, "patch values are clamped")
	require.Len(t, state.Events, 1)
	assert.Equal(t, types.ScopeInternal, state.Events[0].Scope)
	assert.Equal(t, 2, state.Events[0].Duration)
	assert.Equal(t, types.SeverityMedium, state.Events[0].Severity)
	assert.Contains(t, state.Events[0].Description, "austerity")
	assert.Len(t, state.News, 1, "decisions bypass the news pipeline")

	// Same values again: nothing improves, nothing scores
	state = engine.ProcessAction(types.ExecuteAction{Country: "jordan", ActionID: "repeat", Effects: types.Patch{Stability: types.Float(100)}})
	assert.Equal(t, 15, state.Score)
}

func TestResolveDilemmaRecordsEvent(t *testing.T) {
	engine := newTestEngine(t, "iraq", noEvents)

	state := engine.ProcessAction(types.ResolveDilemma{Country: "iraq", OptionID: "open_borders"})
	require.Len(t, state.Events, 1)
	assert.Equal(t, "Dilemma Resolved", state.Events[0].Title)
	assert.Equal(t, types.SeverityLow, state.Events[0].Severity)
	assert.Contains(t, state.Events[0].Description, "open_borders")
}

func TestRandomEventSpawn(t *testing.T) {
	// event roll 0.1 < 0.15, pick 0.0 -> first catalogue entry, duration roll 0.9 -> 3
	engine := newTestEngine(t, "israel", 0.1, 0.0, 0.9)

	state := engine.ProcessAction(types.MilitaryExercise{Country: "israel"})
	require.Len(t, state.Events, 1)
	assert.Equal(t, "Oil Price Surge", state.Events[0].Title)
	assert.Equal(t, 3, state.Events[0].Duration)
}

func TestEventLifecycle(t *testing.T) {
	engine := newTestEngine(t, "israel", noEvents)
	engine.AddEvent(types.Event{ID: "summit", Title: "Summit", Duration: 2})

	state := engine.EndTurn()
	require.Len(t, state.Events, 1)
	assert.Equal(t, 1, state.Events[0].Duration)

	state = engine.EndTurn()
	assert.Empty(t, state.Events)
}

func TestTurnMonotonicity(t *testing.T) {
	engine := newTestEngine(t, "jordan", 0.3, 0.7, 0.5, 0.1, 0.9)

	prev := engine.State().Turn
	for i := 0; i < 10; i++ {
		state := engine.EndTurn()
		if state.Phase != types.PhasePlaying {
			break
		}
		assert.Equal(t, prev+1, state.Turn)
		prev = state.Turn
	}
}

func TestNewsBoundAndInvariants(t *testing.T) {
	engine := newTestEngine(t, "turkey", 0.05, 0.65, 0.31, 0.97, 0.12, 0.44, 0.83)

	actions := []types.Action{
		types.DeclareWar{Country: "turkey", Target: "syria"},
		types.CyberAttack{Country: "turkey", Target: "iran"},
		types.EconomicSanctions{Country: "turkey", Target: "israel"},
		types.ImproveRelations{Country: "turkey", Target: "iraq"},
		types.TradeAgreement{Country: "turkey", Target: "saudi"},
		types.MilitaryExercise{Country: "turkey"},
		types.InvestInfrastructure{Country: "turkey"},
		types.GatherIntelligence{Country: "turkey"},
	}

	for round := 0; round < 15; round++ {
		for _, a := range actions {
			state := engine.ProcessAction(a)
			assert.LessOrEqual(t, len(state.News), 20)
			assertInvariants(t, state)
		}
		state := engine.EndTurn()
		assert.LessOrEqual(t, len(state.News), 20)
		assertInvariants(t, state)
		if state.Phase == types.PhaseEnded {
			break
		}
	}
}

func assertInvariants(t *testing.T, state *types.GameState) {
	t.Helper()
	for id, n := range state.Nations {
		for _, r := range nationRanges {
			v := *r.field(n)
			assert.GreaterOrEqual(t, v, r.min, "%s %s", id, r.name)
			assert.LessOrEqual(t, v, r.max, "%s %s", id, r.name)
		}
		for other, score := range n.Diplomacy.Relationships {
			assert.GreaterOrEqual(t, score, -100.0, "%s->%s", id, other)
			assert.LessOrEqual(t, score, 100.0, "%s->%s", id, other)
		}
	}
	gf := state.GlobalFactors
	assert.GreaterOrEqual(t, gf.GlobalTension, 0.0)
	assert.LessOrEqual(t, gf.GlobalTension, 100.0)
	assert.GreaterOrEqual(t, gf.OilPrice, 30.0)
	assert.LessOrEqual(t, gf.OilPrice, 150.0)
	assert.GreaterOrEqual(t, gf.EconomicGrowth, -5.0)
	assert.LessOrEqual(t, gf.EconomicGrowth, 8.0)
}

func TestEconomicVictoryScenario(t *testing.T) {
	engine := newTestEngine(t, "saudi", noEvents)
	saudi := engine.state.Nations["saudi"]
	saudi.Economy.GDP = 1_000_000_000_001
	saudi.Economy.Debt = 29

	state := engine.EndTurn()
	assert.Equal(t, types.PhaseEnded, state.Phase)
	assert.Equal(t, "saudi", state.Winner)
	assert.Equal(t, types.VictoryEconomic, state.VictoryType)

	// Ended games no longer advance
	assert.Equal(t, state.Turn, engine.EndTurn().Turn)
}

func TestVictoryPrecedence(t *testing.T) {
	setup := func() *Engine {
		engine := newTestEngine(t, "saudi", noEvents)
		saudi := engine.state.Nations["saudi"]
		saudi.Military.Experience = 100
		saudi.Politics.Stability = 100
		saudi.Economy.GDP = 2e12
		saudi.Economy.Debt = 0
		return engine
	}

	state := setup().EndTurn()
	assert.Equal(t, types.VictoryMilitary, state.VictoryType)

	reordered := setup()
	reordered.SetVictoryOrder([]VictoryCheck{EconomicVictory, MilitaryVictory, DiplomaticVictory, TechnologicalVictory})
	state = reordered.EndTurn()
	assert.Equal(t, types.VictoryEconomic, state.VictoryType)
}

func TestOnlyPlayerCanWin(t *testing.T) {
	engine := newTestEngine(t, "jordan", noEvents)
	iran := engine.state.Nations["iran"]
	iran.Economy.GDP = 5e12
	iran.Economy.Debt = 0

	state := engine.EndTurn()
	assert.Equal(t, types.PhasePlaying, state.Phase)
}

func TestTurnLimitEndsWithoutWinner(t *testing.T) {
	cfg := config.DefaultConfig().Game
	cfg.MaxTurns = 2
	engine := NewEngine(cfg, registry.Nations(), registry.Personalities())
	engine.SetRandomSource(NewSequenceSource(noEvents))
	engine.StartGame("jordan")

	assert.Equal(t, types.PhasePlaying, engine.EndTurn().Phase)
	state := engine.EndTurn()
	assert.Equal(t, types.PhaseEnded, state.Phase)
	assert.Empty(t, state.Winner)
}

func TestEndTurnPerturbsGlobalFactors(t *testing.T) {
	// Draws above 0.5 push every factor up
	engine := newTestEngine(t, "jordan", 1.0-1e-9)
	before := engine.State().GlobalFactors

	state := engine.EndTurn()
	assert.Greater(t, state.GlobalFactors.OilPrice, before.OilPrice)
	assert.LessOrEqual(t, state.GlobalFactors.OilPrice-before.OilPrice, 4.0)
	assert.LessOrEqual(t, state.GlobalFactors.EconomicGrowth-before.EconomicGrowth, 0.5)
}

func TestStateIsASnapshot(t *testing.T) {
	engine := newTestEngine(t, "israel", noEvents)

	snapshot := engine.State()
	snapshot.Nations["israel"].Politics.Stability = 0
	snapshot.News = nil

	fresh := engine.State()
	assert.Equal(t, 70.0, fresh.Nations["israel"].Politics.Stability)
	assert.Len(t, fresh.News, 1)
}
