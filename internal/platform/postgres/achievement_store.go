package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lingokit/lingo-api/internal/domain"
	"github.com/lingokit/lingo-api/internal/platform/logger"
	"github.com/lingokit/lingo-api/internal/store"
)

// PostgresAchievementStore implements the store.AchievementStore interface
// using a PostgreSQL database as the storage backend. Achievement unlock
// conditions are stored as a JSONB array on the definition row.
type PostgresAchievementStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAchievementStore creates a new PostgreSQL implementation of the AchievementStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresAchievementStore(db store.DBTX, logger *slog.Logger) *PostgresAchievementStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAchievementStore{
		db:     db,
		logger: logger.With(slog.String("component", "achievement_store")),
	}
}

// Ensure PostgresAchievementStore implements store.AchievementStore interface
var _ store.AchievementStore = (*PostgresAchievementStore)(nil)

// ListDefinitions implements store.AchievementStore.ListDefinitions
// It returns every achievement definition in creation order, which is
// the order newly unlocked achievements are reported in.
func (s *PostgresAchievementStore) ListDefinitions(ctx context.Context) ([]domain.Achievement, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, description, conditions
		FROM achievements
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query achievement definitions",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var definitions []domain.Achievement
	for rows.Next() {
		var achievement domain.Achievement
		var conditionsJSON []byte

		err := rows.Scan(
			&achievement.ID,
			&achievement.Name,
			&achievement.Description,
			&conditionsJSON,
		)
		if err != nil {
			log.Error("failed to scan achievement row",
				slog.String("error", err.Error()))
			return nil, MapError(err)
		}

		if err := json.Unmarshal(conditionsJSON, &achievement.Conditions); err != nil {
			log.Error("failed to decode achievement conditions",
				slog.String("error", err.Error()),
				slog.String("achievement_id", achievement.ID.String()))
			return nil, fmt.Errorf("failed to decode conditions for achievement %s: %w",
				achievement.ID, err)
		}

		definitions = append(definitions, achievement)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	if definitions == nil {
		definitions = []domain.Achievement{}
	}

	return definitions, nil
}

// ListEarnedIDs implements store.AchievementStore.ListEarnedIDs
// It returns the set of achievement IDs the user has already earned.
func (s *PostgresAchievementStore) ListEarnedIDs(
	ctx context.Context,
	userID uuid.UUID,
) (map[uuid.UUID]struct{}, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT achievement_id
		FROM user_achievements
		WHERE user_id = $1
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query earned achievement IDs",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	earned := make(map[uuid.UUID]struct{})
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			log.Error("failed to scan achievement ID",
				slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		earned[id] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return earned, nil
}

// ListEarned implements store.AchievementStore.ListEarned
// It returns the user's unlock records, most recent first.
func (s *PostgresAchievementStore) ListEarned(
	ctx context.Context,
	userID uuid.UUID,
) ([]domain.UserAchievement, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT user_id, achievement_id, earned_at
		FROM user_achievements
		WHERE user_id = $1
		ORDER BY earned_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query earned achievements",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var earned []domain.UserAchievement
	for rows.Next() {
		var ua domain.UserAchievement
		if err := rows.Scan(&ua.UserID, &ua.AchievementID, &ua.EarnedAt); err != nil {
			log.Error("failed to scan user achievement row",
				slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		earned = append(earned, ua)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	if earned == nil {
		earned = []domain.UserAchievement{}
	}

	return earned, nil
}

// Award implements store.AchievementStore.Award
// Awards are idempotent: ON CONFLICT DO NOTHING makes a duplicate award
// attempt a no-op instead of an error, so re-evaluating an already
// earned achievement never aborts the batch it is part of.
// Returns store.ErrInvalidEntity if the user or achievement does not exist.
func (s *PostgresAchievementStore) Award(
	ctx context.Context,
	userAchievement *domain.UserAchievement,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := userAchievement.Validate(); err != nil {
		log.Warn("user achievement validation failed during award",
			slog.String("error", err.Error()),
			slog.String("user_id", userAchievement.UserID.String()))
		return err
	}

	query := `
		INSERT INTO user_achievements (user_id, achievement_id, earned_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, achievement_id) DO NOTHING
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		userAchievement.UserID,
		userAchievement.AchievementID,
		userAchievement.EarnedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during achievement award",
				slog.String("user_id", userAchievement.UserID.String()),
				slog.String("achievement_id", userAchievement.AchievementID.String()))
			return fmt.Errorf("%w: user or achievement not found", store.ErrInvalidEntity)
		}

		log.Error("failed to award achievement",
			slog.String("error", err.Error()),
			slog.String("user_id", userAchievement.UserID.String()),
			slog.String("achievement_id", userAchievement.AchievementID.String()))
		return MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err == nil && rowsAffected == 0 {
		log.Debug("achievement already awarded",
			slog.String("user_id", userAchievement.UserID.String()),
			slog.String("achievement_id", userAchievement.AchievementID.String()))
		return nil
	}

	log.Info("achievement awarded",
		slog.String("user_id", userAchievement.UserID.String()),
		slog.String("achievement_id", userAchievement.AchievementID.String()))
	return nil
}

// WithTx implements store.AchievementStore.WithTx
// It returns a new AchievementStore instance running against the given transaction.
func (s *PostgresAchievementStore) WithTx(tx *sql.Tx) store.AchievementStore {
	return &PostgresAchievementStore{
		db:     tx,
		logger: s.logger,
	}
}
