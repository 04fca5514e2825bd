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

// PostgresLessonStore implements the store.LessonStore interface
// using a PostgreSQL database as the storage backend.
type PostgresLessonStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresLessonStore creates a new PostgreSQL implementation of the LessonStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresLessonStore(db store.DBTX, logger *slog.Logger) *PostgresLessonStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresLessonStore{
		db:     db,
		logger: logger.With(slog.String("component", "lesson_store")),
	}
}

// Ensure PostgresLessonStore implements store.LessonStore interface
var _ store.LessonStore = (*PostgresLessonStore)(nil)

// GetByID implements store.LessonStore.GetByID
// Returns store.ErrLessonNotFound if the lesson does not exist.
func (s *PostgresLessonStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, language_id, title, xp_reward
		FROM lessons
		WHERE id = $1
	`

	var lesson domain.Lesson
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&lesson.ID,
		&lesson.LanguageID,
		&lesson.Title,
		&lesson.XPReward,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("lesson not found", slog.String("lesson_id", id.String()))
			return nil, store.ErrLessonNotFound
		}
		log.Error("failed to get lesson by ID",
			slog.String("error", err.Error()),
			slog.String("lesson_id", id.String()))
		return nil, MapError(err)
	}

	return &lesson, nil
}

// RecordCompletion implements store.LessonStore.RecordCompletion
// It upserts the completion row keyed by (user, lesson); re-completing
// a lesson replaces the previous attempt.
// Returns store.ErrInvalidEntity if the user or lesson does not exist.
func (s *PostgresLessonStore) RecordCompletion(
	ctx context.Context,
	completion *domain.LessonCompletion,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := completion.Validate(); err != nil {
		log.Warn("lesson completion validation failed",
			slog.String("error", err.Error()),
			slog.String("user_id", completion.UserID.String()),
			slog.String("lesson_id", completion.LessonID.String()))
		return err
	}

	query := `
		INSERT INTO lesson_completions (user_id, lesson_id, completed_at, score, time_spent_seconds)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, lesson_id) DO UPDATE
		SET completed_at = EXCLUDED.completed_at,
			score = EXCLUDED.score,
			time_spent_seconds = EXCLUDED.time_spent_seconds
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		completion.UserID,
		completion.LessonID,
		completion.CompletedAt,
		completion.Score,
		completion.TimeSpentSeconds,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during completion record",
				slog.String("user_id", completion.UserID.String()),
				slog.String("lesson_id", completion.LessonID.String()))
			return fmt.Errorf("%w: user or lesson not found", store.ErrInvalidEntity)
		}

		log.Error("failed to record lesson completion",
			slog.String("error", err.Error()),
			slog.String("user_id", completion.UserID.String()),
			slog.String("lesson_id", completion.LessonID.String()))
		return MapError(err)
	}

	log.Info("lesson completion recorded",
		slog.String("user_id", completion.UserID.String()),
		slog.String("lesson_id", completion.LessonID.String()),
		slog.Int("score", completion.Score))
	return nil
}

// CountCompleted implements store.LessonStore.CountCompleted
// It returns how many distinct lessons the user has completed.
func (s *PostgresLessonStore) CountCompleted(ctx context.Context, userID uuid.UUID) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT COUNT(*)
		FROM lesson_completions
		WHERE user_id = $1
	`

	var count int
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		log.Error("failed to count completed lessons",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return 0, MapError(err)
	}

	return count, nil
}

// WithTx implements store.LessonStore.WithTx
// It returns a new LessonStore instance running against the given transaction.
func (s *PostgresLessonStore) WithTx(tx *sql.Tx) store.LessonStore {
	return &PostgresLessonStore{
		db:     tx,
		logger: s.logger,
	}
}
