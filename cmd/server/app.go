package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/lingokit/lingo-api/internal/config"
	"github.com/lingokit/lingo-api/internal/platform/postgres"
	"github.com/lingokit/lingo-api/internal/service"
	"github.com/lingokit/lingo-api/internal/service/auth"
	progresssvc "github.com/lingokit/lingo-api/internal/service/progress"
	"github.com/lingokit/lingo-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore        store.UserStore
	vocabularyStore  store.VocabularyStore
	masteryStore     store.MasteryStore
	activityStore    store.ActivityStore
	lessonStore      store.LessonStore
	achievementStore store.AchievementStore

	// Service interfaces
	jwtService      auth.JWTService
	userService     service.UserService
	progressService progresssvc.Service

	// Per-process practice session state
	sessions *progresssvc.SessionRegistry
}

// newApplication creates a new application instance with all
// dependencies initialized. Configuration, logging, and the database
// connection must be established before calling it.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	// Stores
	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.vocabularyStore = postgres.NewPostgresVocabularyStore(db, logger)
	app.masteryStore = postgres.NewPostgresMasteryStore(db, logger)
	app.activityStore = postgres.NewPostgresActivityStore(db, logger)
	app.lessonStore = postgres.NewPostgresLessonStore(db, logger)
	app.achievementStore = postgres.NewPostgresAchievementStore(db, logger)

	// User identity service
	verifier := auth.NewBcryptVerifier()
	app.userService = service.NewUserService(app.userStore, db, verifier, verifier, logger)

	// Progress engine service
	app.sessions = progresssvc.NewSessionRegistry()
	app.progressService = progresssvc.NewService(
		db,
		app.userStore,
		app.vocabularyStore,
		app.masteryStore,
		app.activityStore,
		app.lessonStore,
		app.achievementStore,
		app.sessions,
		cfg.Practice,
		logger,
	)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
