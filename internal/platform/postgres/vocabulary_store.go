package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lingokit/lingo-api/internal/domain"
	"github.com/lingokit/lingo-api/internal/domain/progress"
	"github.com/lingokit/lingo-api/internal/platform/logger"
	"github.com/lingokit/lingo-api/internal/store"
)

// PostgresVocabularyStore implements the store.VocabularyStore interface
// using a PostgreSQL database as the storage backend.
type PostgresVocabularyStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresVocabularyStore creates a new PostgreSQL implementation of the VocabularyStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresVocabularyStore(db store.DBTX, logger *slog.Logger) *PostgresVocabularyStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresVocabularyStore{
		db:     db,
		logger: logger.With(slog.String("component", "vocabulary_store")),
	}
}

// Ensure PostgresVocabularyStore implements store.VocabularyStore interface
var _ store.VocabularyStore = (*PostgresVocabularyStore)(nil)

// Create implements store.VocabularyStore.Create
// It saves a new vocabulary item, handling domain validation.
func (s *PostgresVocabularyStore) Create(ctx context.Context, item *domain.VocabularyItem) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := item.Validate(); err != nil {
		log.Warn("vocabulary item validation failed during create",
			slog.String("error", err.Error()),
			slog.String("vocabulary_id", item.ID.String()))
		return err
	}

	query := `
		INSERT INTO vocabulary_items (id, language_id, word, translation, pronunciation, difficulty_level)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		item.ID,
		item.LanguageID,
		item.Word,
		item.Translation,
		item.Pronunciation,
		item.DifficultyLevel,
	)

	if err != nil {
		log.Error("failed to create vocabulary item",
			slog.String("error", err.Error()),
			slog.String("vocabulary_id", item.ID.String()))
		return MapError(err)
	}

	log.Info("vocabulary item created",
		slog.String("vocabulary_id", item.ID.String()),
		slog.String("language_id", item.LanguageID.String()))
	return nil
}

// GetByID implements store.VocabularyStore.GetByID
// Returns store.ErrVocabularyNotFound if the item does not exist.
func (s *PostgresVocabularyStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.VocabularyItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, language_id, word, translation, pronunciation, difficulty_level
		FROM vocabulary_items
		WHERE id = $1
	`

	var item domain.VocabularyItem
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.LanguageID,
		&item.Word,
		&item.Translation,
		&item.Pronunciation,
		&item.DifficultyLevel,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("vocabulary item not found", slog.String("vocabulary_id", id.String()))
			return nil, store.ErrVocabularyNotFound
		}
		log.Error("failed to get vocabulary item by ID",
			slog.String("error", err.Error()),
			slog.String("vocabulary_id", id.String()))
		return nil, MapError(err)
	}

	return &item, nil
}

// ListWithMastery implements store.VocabularyStore.ListWithMastery
// It joins the language's vocabulary against the user's mastery records
// in one query, ordered by item creation time so never-reviewed items
// keep a stable order for the review scheduler.
func (s *PostgresVocabularyStore) ListWithMastery(
	ctx context.Context,
	userID, languageID uuid.UUID,
) ([]progress.ItemWithMastery, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT v.id, v.language_id, v.word, v.translation, v.pronunciation, v.difficulty_level,
			m.mastery_level, m.last_reviewed_at, m.review_count, m.created_at, m.updated_at
		FROM vocabulary_items v
		LEFT JOIN mastery_records m
			ON m.vocabulary_id = v.id AND m.user_id = $1
		WHERE v.language_id = $2
		ORDER BY v.created_at, v.id
	`

	rows, err := s.db.QueryContext(ctx, query, userID, languageID)
	if err != nil {
		log.Error("failed to query vocabulary with mastery",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("language_id", languageID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var items []progress.ItemWithMastery
	for rows.Next() {
		var item domain.VocabularyItem
		var masteryLevel sql.NullInt64
		var lastReviewedAt sql.NullTime
		var reviewCount sql.NullInt64
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&item.ID,
			&item.LanguageID,
			&item.Word,
			&item.Translation,
			&item.Pronunciation,
			&item.DifficultyLevel,
			&masteryLevel,
			&lastReviewedAt,
			&reviewCount,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			log.Error("failed to scan vocabulary row",
				slog.String("error", err.Error()))
			return nil, MapError(err)
		}

		entry := progress.ItemWithMastery{Item: item}
		if masteryLevel.Valid {
			entry.Mastery = &domain.MasteryRecord{
				UserID:       userID,
				VocabularyID: item.ID,
				MasteryLevel: int(masteryLevel.Int64),
				ReviewCount:  int(reviewCount.Int64),
				CreatedAt:    createdAt.Time,
				UpdatedAt:    updatedAt.Time,
			}
			if lastReviewedAt.Valid {
				entry.Mastery.LastReviewedAt = lastReviewedAt.Time
			}
		}
		items = append(items, entry)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	if items == nil {
		items = []progress.ItemWithMastery{}
	}

	log.Debug("listed vocabulary with mastery",
		slog.String("user_id", userID.String()),
		slog.String("language_id", languageID.String()),
		slog.Int("count", len(items)))
	return items, nil
}

// WithTx implements store.VocabularyStore.WithTx
// It returns a new VocabularyStore instance running against the given transaction.
func (s *PostgresVocabularyStore) WithTx(tx *sql.Tx) store.VocabularyStore {
	return &PostgresVocabularyStore{
		db:     tx,
		logger: s.logger,
	}
}
