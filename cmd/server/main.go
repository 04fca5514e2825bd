// Package main implements the entry point for the lingo API server,
// which tracks language learners' vocabulary mastery, XP, streaks, and
// achievements.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/lingokit/lingo-api/internal/config"
	"github.com/lingokit/lingo-api/internal/platform/logger"
	"github.com/lingokit/lingo-api/internal/platform/postgres"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// run loads configuration, connects the database, wires the application
// dependencies, and serves HTTP until shutdown.
func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := postgres.Open(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	appLogger.Info("Database connection established")

	if err := postgres.MigrateUp(db, appLogger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
