package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/user/mideast-strategy/config"
	"github.com/user/mideast-strategy/internal/api"
	"github.com/user/mideast-strategy/internal/game"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "./config/config.json", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		// Logger is not configured yet
		zap.NewExample().Fatal("Failed to load configuration", zap.Error(err))
	}

	// Set up logger
	logger := setupLogger(cfg.Server.LogLevel)
	defer logger.Sync()

	// Load the scenario
	scenario, err := loadScenario(cfg.Scenario, logger)
	if err != nil {
		logger.Fatal("Failed to load scenario", zap.Error(err))
	}

	// Initialize game manager
	gameManager := game.NewGameManager(cfg.Game, scenario)
	gameManager.SetLogger(logger)

	// Open the match history
	if cfg.Database.DSN != "" {
		history, err := game.OpenHistoryStore(cfg.Database.Driver, cfg.Database.DSN)
		if err != nil {
			logger.Fatal("Failed to open history database", zap.Error(err))
		}
		defer history.Close()
		gameManager.SetHistory(history)
		logger.Info("History database opened",
			zap.String("driver", cfg.Database.Driver),
			zap.String("dsn", cfg.Database.DSN))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start the websocket hub
	hub := api.NewHub(logger)
	go hub.Run(ctx)
	gameManager.SetNotifier(hub)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: api.NewServer(gameManager, hub, logger).Routes(),
	}

	// Start HTTP server
	go func() {
		logger.Info("Starting HTTP server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server stopped", zap.Error(err))
			stop()
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
		os.Exit(1)
	}
}

func setupLogger(level string) *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		config.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, _ := config.Build()
	return logger
}

func loadScenario(cfg config.ScenarioConfig, logger *zap.Logger) (*game.Scenario, error) {
	if cfg.Path == "" {
		logger.Info("Using built-in scenario")
		return game.DefaultScenario(), nil
	}

	scenario, err := game.NewDataLoader("").LoadScenario(cfg.Path)
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded scenario",
		zap.String("name", scenario.Name),
		zap.Int("nations", len(scenario.Roster)),
		zap.Int("personalities", len(scenario.Personalities)))
	return scenario, nil
}
