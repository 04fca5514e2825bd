package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lingokit/lingo-api/internal/domain"
	"github.com/lingokit/lingo-api/internal/platform/logger"
	"github.com/lingokit/lingo-api/internal/store"
)

// PostgresMasteryStore implements the store.MasteryStore interface
// using a PostgreSQL database as the storage backend.
type PostgresMasteryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresMasteryStore creates a new PostgreSQL implementation of the MasteryStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresMasteryStore(db store.DBTX, logger *slog.Logger) *PostgresMasteryStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresMasteryStore{
		db:     db,
		logger: logger.With(slog.String("component", "mastery_store")),
	}
}

// Ensure PostgresMasteryStore implements store.MasteryStore interface
var _ store.MasteryStore = (*PostgresMasteryStore)(nil)

const masterySelectColumns = `
	SELECT user_id, vocabulary_id, mastery_level, last_reviewed_at, review_count, created_at, updated_at
	FROM mastery_records
	WHERE user_id = $1 AND vocabulary_id = $2
`

// Get implements store.MasteryStore.Get
// Returns store.ErrMasteryNotFound if the record does not exist.
func (s *PostgresMasteryStore) Get(
	ctx context.Context,
	userID, vocabularyID uuid.UUID,
) (*domain.MasteryRecord, error) {
	return s.get(ctx, userID, vocabularyID, masterySelectColumns)
}

// GetForUpdate implements store.MasteryStore.GetForUpdate
// It acquires a row-level lock with SELECT FOR UPDATE so concurrent
// reviews of the same item serialize inside their transactions instead
// of losing one update. Must be called within a transaction.
// Returns store.ErrMasteryNotFound if the record does not exist.
func (s *PostgresMasteryStore) GetForUpdate(
	ctx context.Context,
	userID, vocabularyID uuid.UUID,
) (*domain.MasteryRecord, error) {
	return s.get(ctx, userID, vocabularyID, masterySelectColumns+" FOR UPDATE")
}

func (s *PostgresMasteryStore) get(
	ctx context.Context,
	userID, vocabularyID uuid.UUID,
	query string,
) (*domain.MasteryRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var record domain.MasteryRecord
	var lastReviewedAt sql.NullTime

	err := s.db.QueryRowContext(ctx, query, userID, vocabularyID).Scan(
		&record.UserID,
		&record.VocabularyID,
		&record.MasteryLevel,
		&lastReviewedAt,
		&record.ReviewCount,
		&record.CreatedAt,
		&record.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("mastery record not found",
				slog.String("user_id", userID.String()),
				slog.String("vocabulary_id", vocabularyID.String()))
			return nil, store.ErrMasteryNotFound
		}
		log.Error("failed to get mastery record",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("vocabulary_id", vocabularyID.String()))
		return nil, MapError(err)
	}

	if lastReviewedAt.Valid {
		record.LastReviewedAt = lastReviewedAt.Time
	}

	return &record, nil
}

// Upsert implements store.MasteryStore.Upsert
// It inserts the record or replaces the existing row for the same
// (user, vocabulary item) key, handling domain validation.
func (s *PostgresMasteryStore) Upsert(ctx context.Context, record *domain.MasteryRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := record.Validate(); err != nil {
		log.Warn("mastery record validation failed during upsert",
			slog.String("error", err.Error()),
			slog.String("user_id", record.UserID.String()),
			slog.String("vocabulary_id", record.VocabularyID.String()))
		return err
	}

	// A zero LastReviewedAt means the item has never been reviewed;
	// store NULL rather than the zero time.
	var lastReviewedAt sql.NullTime
	if !record.LastReviewedAt.IsZero() {
		lastReviewedAt = sql.NullTime{Time: record.LastReviewedAt, Valid: true}
	}

	query := `
		INSERT INTO mastery_records
			(user_id, vocabulary_id, mastery_level, last_reviewed_at, review_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, vocabulary_id) DO UPDATE
		SET mastery_level = EXCLUDED.mastery_level,
			last_reviewed_at = EXCLUDED.last_reviewed_at,
			review_count = EXCLUDED.review_count,
			updated_at = EXCLUDED.updated_at
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		record.UserID,
		record.VocabularyID,
		record.MasteryLevel,
		lastReviewedAt,
		record.ReviewCount,
		record.CreatedAt,
		record.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to upsert mastery record",
			slog.String("error", err.Error()),
			slog.String("user_id", record.UserID.String()),
			slog.String("vocabulary_id", record.VocabularyID.String()))
		return MapError(err)
	}

	log.Debug("mastery record upserted",
		slog.String("user_id", record.UserID.String()),
		slog.String("vocabulary_id", record.VocabularyID.String()),
		slog.Int("mastery_level", record.MasteryLevel),
		slog.Int("review_count", record.ReviewCount))
	return nil
}

// WithTx implements store.MasteryStore.WithTx
// It returns a new MasteryStore instance running against the given transaction.
func (s *PostgresMasteryStore) WithTx(tx *sql.Tx) store.MasteryStore {
	return &PostgresMasteryStore{
		db:     tx,
		logger: s.logger,
	}
}
