package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/lingokit/lingo-api/internal/domain"
)

// AchievementStore defines the interface for achievement definitions and
// per-user unlock records.
type AchievementStore interface {
	// ListDefinitions returns every achievement definition in creation
	// order. Definition order is the order newly unlocked achievements
	// are reported in.
	ListDefinitions(ctx context.Context) ([]domain.Achievement, error)

	// ListEarnedIDs returns the set of achievement IDs the user has
	// already earned.
	ListEarnedIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]struct{}, error)

	// ListEarned returns the user's unlock records.
	ListEarned(ctx context.Context, userID uuid.UUID) ([]domain.UserAchievement, error)

	// Award persists a newly earned achievement for a user. Awards are
	// idempotent: if the (user, achievement) row already exists the call
	// is a no-op, not an error, so a duplicate award attempt never aborts
	// the batch it is part of.
	Award(ctx context.Context, userAchievement *domain.UserAchievement) error

	// WithTx returns a new AchievementStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) AchievementStore
}
