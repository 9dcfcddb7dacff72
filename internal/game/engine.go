package game

import (
	"fmt"
	"time"

	"github.com/user/mideast-strategy/config"
	"github.com/user/mideast-strategy/internal/types"
	"go.uber.org/zap"
)

const defaultNewsWindow = 20

// Global factor bounds and per-turn perturbation spreads
const (
	oilPriceMin    = 30
	oilPriceMax    = 150
	tensionMin     = 0
	tensionMax     = 100
	growthMin      = -5
	growthMax      = 8
	oilPriceSpread = 8
	tensionSpread  = 5
	growthSpread   = 1

	initialOilPrice       = 80
	initialGlobalTension  = 50
	initialEconomicGrowth = 2.5
)

// Action side effects on the world and the score
const (
	warTension             = 15
	relationsTensionRelief = 2

	executeGDPScore           = 10
	executeStabilityScore     = 5
	executePublicSupportScore = 5
)

// Engine owns one game state and is the only thing that mutates it.
// It is not safe for concurrent use; GameManager serializes calls per session.
type Engine struct {
	state         *types.GameState
	personalities map[string]types.Personality
	victories     []VictoryCheck
	dice          *DiceRoller
	cfg           config.GameConfig
	logger        *zap.Logger
	now           func() time.Time
}

// NewEngine creates an engine in the setup phase over the given roster.
// The engine takes ownership of nations.
func NewEngine(cfg config.GameConfig, nations map[string]*types.Nation, personalities map[string]types.Personality) *Engine {
	if cfg.NewsWindow <= 0 {
		cfg.NewsWindow = defaultNewsWindow
	}

	for _, n := range nations {
		if n.Diplomacy.Relationships == nil {
			n.Diplomacy.Relationships = make(map[string]float64)
		}
		clampNation(n)
	}

	return &Engine{
		state: &types.GameState{
			Turn:    1,
			Nations: nations,
			Events:  []types.Event{},
			News:    []types.NewsItem{},
			GlobalFactors: types.GlobalFactors{
				OilPrice:       initialOilPrice,
				GlobalTension:  initialGlobalTension,
				EconomicGrowth: initialEconomicGrowth,
			},
			Phase: types.PhaseSetup,
		},
		personalities: personalities,
		victories:     DefaultVictoryOrder(),
		dice:          NewDiceRoller(cfg.Seed),
		cfg:           cfg,
		logger:        zap.NewNop(),
		now:           time.Now,
	}
}

// SetLogger sets the logger
func (e *Engine) SetLogger(logger *zap.Logger) {
	e.logger = logger
}

// SetRandomSource replaces the source of every random draw
func (e *Engine) SetRandomSource(src RandomSource) {
	e.dice = NewDiceRollerFrom(src)
}

// SetClock replaces the clock used to timestamp news
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}

// SetVictoryOrder replaces the ordered list of victory checks
func (e *Engine) SetVictoryOrder(checks []VictoryCheck) {
	e.victories = checks
}

// State returns a snapshot of the game state
func (e *Engine) State() *types.GameState {
	return e.state.Clone()
}

// AddEvent appends an event to the active list
func (e *Engine) AddEvent(event types.Event) {
	e.state.Events = append(e.state.Events, event)
}

// StartGame moves the game from setup to playing with nationID as the player
func (e *Engine) StartGame(nationID string) *types.GameState {
	if e.state.Phase != types.PhaseSetup {
		e.logger.Warn("Ignoring start outside setup", zap.String("phase", string(e.state.Phase)))
		return e.State()
	}
	nation, ok := e.state.Nations[nationID]
	if !ok {
		e.logger.Warn("Ignoring start for unknown nation", zap.String("nation", nationID))
		return e.State()
	}

	e.state.CurrentPlayer = nationID
	e.state.Phase = types.PhasePlaying
	e.state.News = []types.NewsItem{leadershipNews(nation, e.now())}

	e.logger.Info("Game started", zap.String("nation", nationID))
	return e.State()
}

// ProcessAction resolves a player action. Invalid references and malformed
// actions leave the state unchanged.
func (e *Engine) ProcessAction(action types.Action) *types.GameState {
	if action == nil || e.state.Phase != types.PhasePlaying || e.state.CurrentPlayer == "" {
		return e.State()
	}

	switch a := action.(type) {
	case types.ExecuteAction:
		e.executeDecision(a)
		return e.State()
	case types.ResolveDilemma:
		e.resolveDilemma(a)
		return e.State()
	}

	if !e.resolve(action, OriginPlayer) {
		return e.State()
	}

	switch action.Type() {
	case types.ActionDeclareWar:
		e.state.GlobalFactors.GlobalTension = clamp(e.state.GlobalFactors.GlobalTension+warTension, tensionMin, tensionMax)
	case types.ActionImproveRelations:
		e.state.GlobalFactors.GlobalTension = clamp(e.state.GlobalFactors.GlobalTension-relationsTensionRelief, tensionMin, tensionMax)
	}

	if e.dice.Chance(e.cfg.RandomEventProbability) {
		event := GenerateEvent(e.dice)
		e.state.Events = append(e.state.Events, event)
		e.logger.Info("World event",
			zap.String("title", event.Title),
			zap.Int("duration", event.Duration))
	}

	return e.State()
}

// ExecuteAITurn returns the action the AI picks for nationID without applying it
func (e *Engine) ExecuteAITurn(nationID string) types.Action {
	return Decide(e.state, nationID, e.personalities, e.dice)
}

// EndTurn runs every AI nation, perturbs global factors, advances the turn,
// ages events and checks the player's victory conditions
func (e *Engine) EndTurn() *types.GameState {
	if e.state.Phase != types.PhasePlaying {
		return e.State()
	}

	for _, id := range e.state.NationIDs() {
		if id == e.state.CurrentPlayer {
			continue
		}
		if action := e.ExecuteAITurn(id); action != nil {
			e.resolve(action, OriginAI)
		}
	}

	gf := &e.state.GlobalFactors
	gf.OilPrice = clamp(gf.OilPrice+e.dice.Jitter(oilPriceSpread), oilPriceMin, oilPriceMax)
	gf.GlobalTension = clamp(gf.GlobalTension+e.dice.Jitter(tensionSpread), tensionMin, tensionMax)
	gf.EconomicGrowth = clamp(gf.EconomicGrowth+e.dice.Jitter(growthSpread), growthMin, growthMax)

	e.state.Turn++

	active := e.state.Events[:0]
	for _, event := range e.state.Events {
		event.Duration--
		if event.Duration > 0 {
			active = append(active, event)
		}
	}
	e.state.Events = active

	if victory, ok := EvaluateVictory(e.state.Nations[e.state.CurrentPlayer], e.victories); ok {
		e.state.Phase = types.PhaseEnded
		e.state.Winner = e.state.CurrentPlayer
		e.state.VictoryType = victory
		e.logger.Info("Victory",
			zap.String("winner", e.state.Winner),
			zap.String("victory_type", string(victory)),
			zap.Int("turn", e.state.Turn))
	} else if e.cfg.MaxTurns > 0 && e.state.Turn > e.cfg.MaxTurns {
		e.state.Phase = types.PhaseEnded
		e.logger.Info("Turn limit reached", zap.Int("turn", e.state.Turn))
	}

	e.logger.Info("Turn ended",
		zap.Int("turn", e.state.Turn),
		zap.Float64("oil_price", gf.OilPrice),
		zap.Float64("global_tension", gf.GlobalTension),
		zap.Float64("economic_growth", gf.EconomicGrowth))

	return e.State()
}

// resolve applies the actor effects, the reciprocal effects and the news of an
// action. It reports false when the action was skipped.
func (e *Engine) resolve(action types.Action, origin Origin) bool {
	actorID := action.Actor()
	actor, ok := e.state.Nations[actorID]
	if !ok || actor == nil {
		e.logger.Warn("Skipping action from unknown nation",
			zap.String("nation", actorID),
			zap.String("action", string(action.Type())))
		return false
	}

	targetID := types.TargetOf(action)
	if _, targeted := action.(types.Targeted); targeted && (targetID == "" || targetID == actorID) {
		e.logger.Warn("Skipping action with invalid target",
			zap.String("nation", actorID),
			zap.String("action", string(action.Type())),
			zap.String("target", targetID))
		return false
	}

	applyPatch(actor, ComputeEffects(action, actor, e.dice))

	landed := false
	if target, ok := e.state.Nations[targetID]; ok && target != nil {
		var patch types.Patch
		patch, landed = ComputeReciprocal(action, target, origin, e.dice)
		applyPatch(target, patch)
	}

	e.pushNews(GenerateNews(e.state, action, e.now())...)

	e.logger.Debug("Action resolved",
		zap.String("nation", actorID),
		zap.String("action", string(action.Type())),
		zap.String("target", targetID),
		zap.Bool("ai", origin == OriginAI),
		zap.Bool("landed", landed))
	return true
}

// executeDecision merges a UI-supplied patch and scores the improvements it made
func (e *Engine) executeDecision(a types.ExecuteAction) {
	nation, ok := e.state.Nations[a.Country]
	if !ok || nation == nil {
		e.logger.Warn("Skipping decision from unknown nation", zap.String("nation", a.Country))
		return
	}

	before := nation.Clone()
	applyPatch(nation, a.Effects)

	score := 0
	if nation.Economy.GDP > before.Economy.GDP {
		score += executeGDPScore
	}
	if nation.Politics.Stability > before.Politics.Stability {
		score += executeStabilityScore
	}
	if nation.Politics.PublicSupport > before.Politics.PublicSupport {
		score += executePublicSupportScore
	}
	e.state.Score += score

	e.state.Events = append(e.state.Events, decisionEvent(
		"Decision Executed",
		fmt.Sprintf("%s carried out the action: %s", nation.Name, a.ActionID),
		a.Effects.Summary(),
		types.SeverityMedium,
	))

	e.logger.Debug("Decision executed",
		zap.String("nation", a.Country),
		zap.String("action_id", a.ActionID),
		zap.Int("score_delta", score))
}

// resolveDilemma records the chosen option as an internal event
func (e *Engine) resolveDilemma(a types.ResolveDilemma) {
	nation, ok := e.state.Nations[a.Country]
	if !ok || nation == nil {
		e.logger.Warn("Skipping dilemma from unknown nation", zap.String("nation", a.Country))
		return
	}

	e.state.Events = append(e.state.Events, decisionEvent(
		"Dilemma Resolved",
		fmt.Sprintf("%s chose the option: %s", nation.Name, a.OptionID),
		nil,
		types.SeverityLow,
	))
}

// pushNews prepends items and evicts the oldest beyond the window
func (e *Engine) pushNews(items ...types.NewsItem) {
	news := make([]types.NewsItem, 0, len(items)+len(e.state.News))
	news = append(news, items...)
	news = append(news, e.state.News...)
	if len(news) > e.cfg.NewsWindow {
		news = news[:e.cfg.NewsWindow]
	}
	e.state.News = news
}
