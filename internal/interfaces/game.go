package interfaces

import (
	"context"

	"github.com/user/mideast-strategy/internal/types"
)

// GameManager defines the interface for game operations
type GameManager interface {
	CreateGame(ctx context.Context) (string, *types.GameState, error)
	StartGame(ctx context.Context, gameID, nationID string) (*types.GameState, error)
	ProcessAction(ctx context.Context, gameID string, action types.ActionEnvelope) (*types.GameState, error)
	EndTurn(ctx context.Context, gameID string) (*types.GameState, error)
	GetState(ctx context.Context, gameID string) (*types.GameState, error)
	Nations() []*types.Nation
	FlightTime(from, to, platform, defense string) (types.FlightReport, error)
	History(ctx context.Context, limit int) ([]types.MatchRecord, error)
}
