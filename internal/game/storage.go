package game

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // cgo driver, registered as "sqlite3"
	"github.com/user/mideast-strategy/internal/types"
	_ "modernc.org/sqlite" // pure Go driver, registered as "sqlite"
)

// HistoryStore persists finished matches and per-turn snapshots in SQLite
type HistoryStore struct {
	conn *sqlx.DB
}

// OpenHistoryStore opens or creates the history database. driver is "sqlite"
// (modernc) or "sqlite3" (mattn).
func OpenHistoryStore(driver, dsn string) (*HistoryStore, error) {
	if driver == "" {
		driver = "sqlite"
	}
	if dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
		if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	conn, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if dsn == ":memory:" {
		// Every connection to :memory: is a separate database
		conn.SetMaxOpenConns(1)
	}

	store := &HistoryStore{conn: conn}
	if err := store.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return store, nil
}

// Close closes the database connection
func (s *HistoryStore) Close() error {
	return s.conn.Close()
}

func (s *HistoryStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS matches (
		game_id TEXT PRIMARY KEY,
		player TEXT NOT NULL,
		winner TEXT NOT NULL,
		victory_type TEXT NOT NULL,
		turns INTEGER NOT NULL,
		score INTEGER NOT NULL,
		ended_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS turns (
		game_id TEXT NOT NULL,
		turn INTEGER NOT NULL,
		oil_price REAL NOT NULL,
		global_tension REAL NOT NULL,
		economic_growth REAL NOT NULL,
		recorded_at TIMESTAMP NOT NULL,
		PRIMARY KEY (game_id, turn)
	);

	CREATE INDEX IF NOT EXISTS idx_matches_ended ON matches(ended_at);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// RecordTurn stores the global factors of a game at the given turn
func (s *HistoryStore) RecordTurn(ctx context.Context, rec types.TurnRecord) error {
	_, err := s.conn.NamedExecContext(ctx, `INSERT OR REPLACE INTO turns
		(game_id, turn, oil_price, global_tension, economic_growth, recorded_at)
		VALUES (:game_id, :turn, :oil_price, :global_tension, :economic_growth, :recorded_at)`, rec)
	if err != nil {
		return fmt.Errorf("record turn: %w", err)
	}
	return nil
}

// RecordMatch stores the result of a finished game
func (s *HistoryStore) RecordMatch(ctx context.Context, rec types.MatchRecord) error {
	_, err := s.conn.NamedExecContext(ctx, `INSERT OR REPLACE INTO matches
		(game_id, player, winner, victory_type, turns, score, ended_at)
		VALUES (:game_id, :player, :winner, :victory_type, :turns, :score, :ended_at)`, rec)
	if err != nil {
		return fmt.Errorf("record match: %w", err)
	}
	return nil
}

// RecentMatches returns up to limit matches, most recent first
func (s *HistoryStore) RecentMatches(ctx context.Context, limit int) ([]types.MatchRecord, error) {
	var matches []types.MatchRecord
	err := s.conn.SelectContext(ctx, &matches,
		`SELECT game_id, player, winner, victory_type, turns, score, ended_at
		 FROM matches ORDER BY ended_at DESC, game_id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	return matches, nil
}

// Turns returns the snapshots of one game in turn order
func (s *HistoryStore) Turns(ctx context.Context, gameID string) ([]types.TurnRecord, error) {
	var turns []types.TurnRecord
	err := s.conn.SelectContext(ctx, &turns,
		`SELECT game_id, turn, oil_price, global_tension, economic_growth, recorded_at
		 FROM turns WHERE game_id = ? ORDER BY turn`, gameID)
	if err != nil {
		return nil, fmt.Errorf("query turns: %w", err)
	}
	return turns, nil
}
