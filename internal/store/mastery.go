package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/lingokit/lingo-api/internal/domain"
)

// MasteryStore defines the interface for mastery record persistence.
// One record exists per (user, vocabulary item); records are created
// lazily on first review and never deleted.
type MasteryStore interface {
	// Get retrieves the mastery record for a (user, vocabulary item) pair.
	// Returns ErrMasteryNotFound if the record does not exist.
	// NOTE: This method does NOT provide any row locking, so it should not
	// be used when you plan to update the row and need concurrency protection.
	Get(ctx context.Context, userID, vocabularyID uuid.UUID) (*domain.MasteryRecord, error)

	// GetForUpdate retrieves a mastery record with a row-level lock using
	// SELECT FOR UPDATE. Use it within a transaction when applying a review
	// outcome, so concurrent reviews of the same item serialize instead of
	// silently losing one update.
	// Returns ErrMasteryNotFound if the record does not exist.
	GetForUpdate(ctx context.Context, userID, vocabularyID uuid.UUID) (*domain.MasteryRecord, error)

	// Upsert inserts the record or replaces the existing row for the same
	// (user, vocabulary item) key. It handles domain validation internally.
	Upsert(ctx context.Context, record *domain.MasteryRecord) error

	// WithTx returns a new MasteryStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) MasteryStore
}
