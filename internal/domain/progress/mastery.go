package progress

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lingokit/lingo-api/internal/domain"
)

// Mastery update errors
var (
	ErrNilIDs = errors.New("user ID and vocabulary ID are required for a first review")
)

// ApplyOutcome applies one review outcome to a mastery record and
// returns the resulting record, following immutability principles by
// never modifying the input.
//
// When record is nil the item has never been reviewed: a correct first
// answer produces mastery level 1 and an incorrect one level 0, each
// with a review count of 1. When a record exists, a correct answer
// moves the level one step up (capped at 5) and an incorrect answer one
// step down (floored at 0), and the review count is incremented.
// LastReviewedAt is always set to now.
func ApplyOutcome(
	userID, vocabularyID uuid.UUID,
	record *domain.MasteryRecord,
	correct bool,
	now time.Time,
) (*domain.MasteryRecord, error) {
	if record == nil {
		if userID == uuid.Nil || vocabularyID == uuid.Nil {
			return nil, ErrNilIDs
		}

		level := domain.MinMasteryLevel
		if correct {
			level = 1
		}

		return &domain.MasteryRecord{
			UserID:         userID,
			VocabularyID:   vocabularyID,
			MasteryLevel:   level,
			LastReviewedAt: now,
			ReviewCount:    1,
			CreatedAt:      now,
			UpdatedAt:      now,
		}, nil
	}

	next := *record

	step := -1
	if correct {
		step = 1
	}
	next.MasteryLevel = clampMastery(record.MasteryLevel + step)

	next.ReviewCount++
	next.LastReviewedAt = now
	next.UpdatedAt = now

	return &next, nil
}

// clampMastery bounds a level to the 0-5 mastery scale.
func clampMastery(level int) int {
	if level < domain.MinMasteryLevel {
		return domain.MinMasteryLevel
	}
	if level > domain.MaxMasteryLevel {
		return domain.MaxMasteryLevel
	}
	return level
}
