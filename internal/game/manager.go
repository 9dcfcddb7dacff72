package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/user/mideast-strategy/config"
	"github.com/user/mideast-strategy/internal/interfaces"
	"github.com/user/mideast-strategy/internal/oracle"
	"github.com/user/mideast-strategy/internal/types"
	"go.uber.org/zap"
)

var (
	// ErrGameNotFound is returned for an unknown session id
	ErrGameNotFound = errors.New("game not found")
	// ErrNationNotFound is returned when a nation id is not in the roster
	ErrNationNotFound = errors.New("nation not found")
	// ErrInvalidPhase is returned when an operation does not fit the game phase
	ErrInvalidPhase = errors.New("invalid game phase")
)

const defaultHistoryLimit = 20

// Update kinds pushed to the Notifier
const (
	UpdateNews = "news"
	UpdateTurn = "turn"
)

// Update is pushed to subscribers after a session changes
type Update struct {
	GameID        string              `json:"game_id"`
	Kind          string              `json:"kind"`
	Turn          int                 `json:"turn"`
	Phase         types.Phase         `json:"game_phase"`
	News          []types.NewsItem    `json:"news,omitempty"`
	GlobalFactors types.GlobalFactors `json:"global_factors"`
	Winner        string              `json:"winner,omitempty"`
	Summary       string              `json:"summary,omitempty"`
}

// Notifier receives session updates
type Notifier interface {
	Notify(update Update)
}

// HistoryRecorder persists finished games and per-turn snapshots
type HistoryRecorder interface {
	RecordTurn(ctx context.Context, rec types.TurnRecord) error
	RecordMatch(ctx context.Context, rec types.MatchRecord) error
	RecentMatches(ctx context.Context, limit int) ([]types.MatchRecord, error)
}

// session is one running game. mu serializes mutations of its engine.
type session struct {
	mu     sync.Mutex
	engine *Engine
}

// GameManager owns every running game
type GameManager struct {
	sessions  map[string]*session
	stateLock sync.RWMutex
	cfg       config.GameConfig
	scenario  *Scenario
	notifier  Notifier
	history   HistoryRecorder
	Logger    *zap.Logger
	newSource func() RandomSource
	now       func() time.Time
}

// Ensure GameManager satisfies the interfaces.GameManager interface
var _ interfaces.GameManager = (*GameManager)(nil)

// NewGameManager creates a manager that starts every game from scenario.
// A nil scenario uses the built-in roster.
func NewGameManager(cfg config.GameConfig, scenario *Scenario) *GameManager {
	if scenario == nil {
		scenario = DefaultScenario()
	}
	return &GameManager{
		sessions: make(map[string]*session),
		cfg:      cfg,
		scenario: scenario,
		Logger:   zap.NewNop(),
		now:      time.Now,
	}
}

// SetLogger sets the logger
func (gm *GameManager) SetLogger(logger *zap.Logger) {
	gm.Logger = logger
}

// SetNotifier sets the receiver of session updates
func (gm *GameManager) SetNotifier(n Notifier) {
	gm.notifier = n
}

// SetHistory sets the match history recorder
func (gm *GameManager) SetHistory(h HistoryRecorder) {
	gm.history = h
}

// SetRandomSourceFactory makes every new game draw from the sources f returns
func (gm *GameManager) SetRandomSourceFactory(f func() RandomSource) {
	gm.newSource = f
}

// CreateGame starts a new session in the setup phase
func (gm *GameManager) CreateGame(ctx context.Context) (string, *types.GameState, error) {
	engine := NewEngine(gm.cfg, gm.scenario.Nations(), gm.scenario.Personalities)
	engine.SetLogger(gm.Logger)
	engine.SetClock(gm.now)
	if gm.newSource != nil {
		engine.SetRandomSource(gm.newSource())
	}

	id := uuid.NewString()

	gm.stateLock.Lock()
	gm.sessions[id] = &session{engine: engine}
	gm.stateLock.Unlock()

	gm.Logger.Info("Game created", zap.String("game_id", id))
	return id, engine.State(), nil
}

// StartGame picks the player's nation. An empty nationID uses the configured default.
func (gm *GameManager) StartGame(ctx context.Context, gameID, nationID string) (*types.GameState, error) {
	s, err := gm.session(gameID)
	if err != nil {
		return nil, err
	}
	if nationID == "" {
		nationID = gm.cfg.DefaultNation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.engine.state
	if current.Phase != types.PhaseSetup {
		return nil, fmt.Errorf("start game %s in phase %s: %w", gameID, current.Phase, ErrInvalidPhase)
	}
	if _, ok := current.Nations[nationID]; !ok {
		return nil, fmt.Errorf("start game %s as %q: %w", gameID, nationID, ErrNationNotFound)
	}

	state := s.engine.StartGame(nationID)
	gm.notify(gameID, UpdateNews, state, state.News)
	return state, nil
}

// ProcessAction decodes and resolves one player action. An envelope without a
// country acts for the current player.
func (gm *GameManager) ProcessAction(ctx context.Context, gameID string, env types.ActionEnvelope) (*types.GameState, error) {
	s, err := gm.session(gameID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.engine.state.Phase != types.PhasePlaying {
		return nil, fmt.Errorf("action in phase %s: %w", s.engine.state.Phase, ErrInvalidPhase)
	}
	if env.Country == "" {
		env.Country = s.engine.state.CurrentPlayer
	}

	action, err := env.Decode()
	if err != nil {
		return nil, fmt.Errorf("decode action: %w", err)
	}

	before := newestNewsID(s.engine.state)
	state := s.engine.ProcessAction(action)
	if fresh := newsSince(state, before); len(fresh) > 0 {
		gm.notify(gameID, UpdateNews, state, fresh)
	}
	return state, nil
}

// EndTurn runs the AI nations and advances the game by one turn
func (gm *GameManager) EndTurn(ctx context.Context, gameID string) (*types.GameState, error) {
	s, err := gm.session(gameID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.engine.state.Phase != types.PhasePlaying {
		return nil, fmt.Errorf("end turn in phase %s: %w", s.engine.state.Phase, ErrInvalidPhase)
	}

	before := newestNewsID(s.engine.state)
	state := s.engine.EndTurn()

	if fresh := newsSince(state, before); len(fresh) > 0 {
		gm.notify(gameID, UpdateNews, state, fresh)
	}
	gm.notify(gameID, UpdateTurn, state, nil)
	gm.record(ctx, gameID, state)
	return state, nil
}

// GetState returns a snapshot of one game
func (gm *GameManager) GetState(ctx context.Context, gameID string) (*types.GameState, error) {
	s, err := gm.session(gameID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.State(), nil
}

// Nations returns the starting roster in ID order
func (gm *GameManager) Nations() []*types.Nation {
	nations := gm.scenario.Nations()
	state := types.GameState{Nations: nations}
	list := make([]*types.Nation, 0, len(nations))
	for _, id := range state.NationIDs() {
		list = append(list, nations[id])
	}
	return list
}

// FlightTime reports distance and flight time of a platform between two nations.
// A non-empty defense system adds its interception window.
func (gm *GameManager) FlightTime(from, to, platform, defense string) (types.FlightReport, error) {
	report := types.FlightReport{From: from, To: to, Platform: platform}

	distance, err := oracle.NationDistance(from, to)
	if err != nil {
		return report, fmt.Errorf("distance %s to %s: %w", from, to, err)
	}
	report.DistanceKm = distance

	minutes, err := oracle.FlightTime(from, to, platform)
	if err != nil {
		return report, fmt.Errorf("flight time of %s: %w", platform, err)
	}
	report.Minutes = minutes

	if rt, err := oracle.AircraftFlightTime(from, to, platform); err == nil {
		report.RoundTrip = &rt
	}

	if defense != "" {
		window, err := oracle.InterceptionWindow(minutes, defense)
		if err != nil {
			return report, fmt.Errorf("interception by %s: %w", defense, err)
		}
		report.Interception = &window
	}
	return report, nil
}

// History returns the most recent finished games. It is empty without a recorder.
func (gm *GameManager) History(ctx context.Context, limit int) ([]types.MatchRecord, error) {
	if gm.history == nil {
		return []types.MatchRecord{}, nil
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return gm.history.RecentMatches(ctx, limit)
}

func (gm *GameManager) session(gameID string) (*session, error) {
	gm.stateLock.RLock()
	defer gm.stateLock.RUnlock()

	s, ok := gm.sessions[gameID]
	if !ok {
		return nil, fmt.Errorf("game %q: %w", gameID, ErrGameNotFound)
	}
	return s, nil
}

func (gm *GameManager) notify(gameID, kind string, state *types.GameState, news []types.NewsItem) {
	if gm.notifier == nil {
		return
	}
	update := Update{
		GameID:        gameID,
		Kind:          kind,
		Turn:          state.Turn,
		Phase:         state.Phase,
		News:          news,
		GlobalFactors: state.GlobalFactors,
		Winner:        state.Winner,
	}
	if kind == UpdateTurn {
		update.Summary = TurnSummary(state)
	}
	gm.notifier.Notify(update)
}

// record stores the turn snapshot and, once the game is over, its result.
// Storage failures are logged and never block the game.
func (gm *GameManager) record(ctx context.Context, gameID string, state *types.GameState) {
	if gm.history == nil {
		return
	}

	err := gm.history.RecordTurn(ctx, types.TurnRecord{
		GameID:         gameID,
		Turn:           state.Turn,
		OilPrice:       state.GlobalFactors.OilPrice,
		GlobalTension:  state.GlobalFactors.GlobalTension,
		EconomicGrowth: state.GlobalFactors.EconomicGrowth,
		RecordedAt:     gm.now().UTC(),
	})
	if err != nil {
		gm.Logger.Error("Failed to record turn", zap.String("game_id", gameID), zap.Error(err))
	}

	if state.Phase != types.PhaseEnded {
		return
	}
	err = gm.history.RecordMatch(ctx, types.MatchRecord{
		GameID:      gameID,
		Player:      state.CurrentPlayer,
		Winner:      state.Winner,
		VictoryType: state.VictoryType,
		Turns:       state.Turn,
		Score:       state.Score,
		EndedAt:     gm.now().UTC(),
	})
	if err != nil {
		gm.Logger.Error("Failed to record match", zap.String("game_id", gameID), zap.Error(err))
	}
}

// TurnSummary is a one-line human readable digest of the player's position
func TurnSummary(state *types.GameState) string {
	gf := state.GlobalFactors
	summary := fmt.Sprintf("Turn %d: oil $%.2f, tension %.0f, growth %.1f%%",
		state.Turn, gf.OilPrice, gf.GlobalTension, gf.EconomicGrowth)

	if n, ok := state.Nations[state.CurrentPlayer]; ok && n != nil {
		summary += fmt.Sprintf(", %s GDP $%s", n.Name, humanize.CommafWithDigits(n.Economy.GDP/1e9, 1)+"B")
	}
	if state.Winner != "" {
		summary += fmt.Sprintf(", %s wins (%s)", state.Winner, state.VictoryType)
	}
	return summary
}

func newestNewsID(state *types.GameState) string {
	if len(state.News) == 0 {
		return ""
	}
	return state.News[0].ID
}

// newsSince returns the items prepended after the item with id lastID
func newsSince(state *types.GameState, lastID string) []types.NewsItem {
	for i, item := range state.News {
		if item.ID == lastID {
			return state.News[:i]
		}
	}
	return state.News
}
