package types

import (
	"time"

	"github.com/user/mideast-strategy/internal/oracle"
)

// MatchRecord is one finished game
type MatchRecord struct {
	GameID      string      `db:"game_id" json:"game_id"`
	Player      string      `db:"player" json:"player"`
	Winner      string      `db:"winner" json:"winner,omitempty"`
	VictoryType VictoryType `db:"victory_type" json:"victory_type,omitempty"`
	Turns       int         `db:"turns" json:"turns"`
	Score       int         `db:"score" json:"score"`
	EndedAt     time.Time   `db:"ended_at" json:"ended_at"`
}

// TurnRecord is the global factor snapshot taken at the end of a turn
type TurnRecord struct {
	GameID         string    `db:"game_id" json:"game_id"`
	Turn           int       `db:"turn" json:"turn"`
	OilPrice       float64   `db:"oil_price" json:"oil_price"`
	GlobalTension  float64   `db:"global_tension" json:"global_tension"`
	EconomicGrowth float64   `db:"economic_growth" json:"economic_growth"`
	RecordedAt     time.Time `db:"recorded_at" json:"recorded_at"`
}

// FlightReport answers a feasibility query
type FlightReport struct {
	From         string            `json:"from"`
	To           string            `json:"to"`
	Platform     string            `json:"platform"`
	DistanceKm   float64           `json:"distance_km"`
	Minutes      float64           `json:"minutes"`
	RoundTrip    *oracle.RoundTrip `json:"round_trip,omitempty"`
	Interception *oracle.Window    `json:"interception,omitempty"`
}
