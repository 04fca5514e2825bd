package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lingokit/lingo-api/internal/domain"
	"github.com/lingokit/lingo-api/internal/platform/logger"
	"github.com/lingokit/lingo-api/internal/store"
)

// PostgresActivityStore implements the store.ActivityStore interface
// using a PostgreSQL database as the storage backend.
type PostgresActivityStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresActivityStore creates a new PostgreSQL implementation of the ActivityStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresActivityStore(db store.DBTX, logger *slog.Logger) *PostgresActivityStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresActivityStore{
		db:     db,
		logger: logger.With(slog.String("component", "activity_store")),
	}
}

// Ensure PostgresActivityStore implements store.ActivityStore interface
var _ store.ActivityStore = (*PostgresActivityStore)(nil)

// Append implements store.ActivityStore.Append
// It records one completed lesson or practice session. The log is
// append-only; events are never updated or deleted.
// Returns store.ErrInvalidEntity if the user does not exist.
func (s *PostgresActivityStore) Append(ctx context.Context, event *domain.ActivityEvent) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := event.Validate(); err != nil {
		log.Warn("activity event validation failed during append",
			slog.String("error", err.Error()),
			slog.String("user_id", event.UserID.String()))
		return err
	}

	query := `
		INSERT INTO activity_events (id, user_id, completed_at)
		VALUES ($1, $2, $3)
	`
	_, err := s.db.ExecContext(ctx, query, event.ID, event.UserID, event.CompletedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during activity append",
				slog.String("user_id", event.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, event.UserID)
		}

		log.Error("failed to append activity event",
			slog.String("error", err.Error()),
			slog.String("user_id", event.UserID.String()))
		return MapError(err)
	}

	log.Debug("activity event appended",
		slog.String("event_id", event.ID.String()),
		slog.String("user_id", event.UserID.String()))
	return nil
}

// MostRecent implements store.ActivityStore.MostRecent
// It returns the latest activity event for a user, or (nil, nil) when
// the user has no recorded activity yet.
func (s *PostgresActivityStore) MostRecent(
	ctx context.Context,
	userID uuid.UUID,
) (*domain.ActivityEvent, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, completed_at
		FROM activity_events
		WHERE user_id = $1
		ORDER BY completed_at DESC
		LIMIT 1
	`

	var event domain.ActivityEvent
	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&event.ID,
		&event.UserID,
		&event.CompletedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("no activity recorded for user",
				slog.String("user_id", userID.String()))
			return nil, nil
		}
		log.Error("failed to get most recent activity",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}

	return &event, nil
}

// WithTx implements store.ActivityStore.WithTx
// It returns a new ActivityStore instance running against the given transaction.
func (s *PostgresActivityStore) WithTx(tx *sql.Tx) store.ActivityStore {
	return &PostgresActivityStore{
		db:     tx,
		logger: s.logger,
	}
}
