package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/lingokit/lingo-api/internal/domain"
	"github.com/lingokit/lingo-api/internal/domain/progress"
)

// VocabularyStore defines the interface for vocabulary reference data.
// Vocabulary items are immutable once created; per-user learning state
// is handled by MasteryStore.
type VocabularyStore interface {
	// Create saves a new vocabulary item.
	// Returns validation errors if the item data is invalid.
	Create(ctx context.Context, item *domain.VocabularyItem) error

	// GetByID retrieves a vocabulary item by its unique ID.
	// Returns ErrVocabularyNotFound if the item does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.VocabularyItem, error)

	// ListWithMastery returns every vocabulary item for a language paired
	// with the user's mastery record for it, nil where the user has never
	// reviewed the item. Input order is the item creation order, which the
	// scheduler relies on as the tie-break among never-reviewed items.
	//
	// The whole set is read in one query; at the observed scale (tens to
	// low hundreds of items per user) pagination is not needed.
	ListWithMastery(
		ctx context.Context,
		userID, languageID uuid.UUID,
	) ([]progress.ItemWithMastery, error)

	// WithTx returns a new VocabularyStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) VocabularyStore
}
