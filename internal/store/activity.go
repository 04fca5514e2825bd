package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/lingokit/lingo-api/internal/domain"
)

// ActivityStore defines the interface for the append-only activity log.
// Events are never updated or deleted.
type ActivityStore interface {
	// Append records one completed lesson or practice session.
	Append(ctx context.Context, event *domain.ActivityEvent) error

	// MostRecent returns the latest activity event for a user, or
	// (nil, nil) when the user has no recorded activity yet. The streak
	// tracker treats the nil case as "first ever activity".
	MostRecent(ctx context.Context, userID uuid.UUID) (*domain.ActivityEvent, error)

	// WithTx returns a new ActivityStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) ActivityStore
}
