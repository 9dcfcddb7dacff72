package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds all configuration for the application
type Config struct {
	// Game configuration
	Game GameConfig `json:"game"`

	// Server configuration
	Server ServerConfig `json:"server"`

	// Database configuration
	Database DatabaseConfig `json:"database"`

	// Scenario configuration
	Scenario ScenarioConfig `json:"scenario"`
}

// GameConfig holds simulation specific configuration
type GameConfig struct {
	// Number of news items retained in the state
	NewsWindow int `json:"news_window"`

	// Probability (0-1) that a player action spawns a world event
	RandomEventProbability float64 `json:"random_event_probability"`

	// Random seed, 0 means seed from the clock
	Seed int64 `json:"seed"`

	// Nation picked when a client starts a game without choosing one
	DefaultNation string `json:"default_nation"`

	// Turn cap, 0 means unlimited
	MaxTurns int `json:"max_turns"`
}

// ServerConfig holds server specific configuration
type ServerConfig struct {
	// Server port
	Port string `json:"port"`

	// Log level (debug, info, warn, error)
	LogLevel string `json:"log_level"`
}

// DatabaseConfig holds match history database configuration
type DatabaseConfig struct {
	// Database driver: "sqlite" (pure Go) or "sqlite3" (cgo)
	Driver string `json:"driver"`

	// Database connection string, empty disables history
	DSN string `json:"dsn"`
}

// ScenarioConfig points at an optional YAML scenario file
type ScenarioConfig struct {
	// Path to a YAML file with nations and personalities, empty uses the built-in roster
	Path string `json:"path"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			NewsWindow:             20,
			RandomEventProbability: 0.15,
			Seed:                   0,
			DefaultNation:          "israel",
			MaxTurns:               0,
		},
		Server: ServerConfig{
			Port:     "8080",
			LogLevel: "info",
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    "./data/history.db",
		},
		Scenario: ScenarioConfig{
			Path: "",
		},
	}
}

// LoadConfig loads configuration from a file
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return config, err
	}

	// Write defaults when the file is missing
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, SaveConfig(config, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return config, err
	}

	return config, nil
}

// SaveConfig saves configuration to a file
func SaveConfig(config Config, path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Create or truncate file
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(config)
}
