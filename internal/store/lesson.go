package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/lingokit/lingo-api/internal/domain"
)

// LessonStore defines the interface for the lesson catalog and per-user
// lesson completion records.
type LessonStore interface {
	// GetByID retrieves a lesson definition by its unique ID.
	// Returns ErrLessonNotFound if the lesson does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error)

	// RecordCompletion upserts a lesson completion row keyed by
	// (user, lesson). Re-completing a lesson replaces the previous
	// attempt's score, completion time and time spent.
	RecordCompletion(ctx context.Context, completion *domain.LessonCompletion) error

	// CountCompleted returns how many distinct lessons the user has
	// completed. This feeds lesson-count achievement thresholds.
	CountCompleted(ctx context.Context, userID uuid.UUID) (int, error)

	// WithTx returns a new LessonStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) LessonStore
}
