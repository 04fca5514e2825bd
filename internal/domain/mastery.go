package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Mastery scale bounds. A correct answer moves a record one step up the
// scale, an incorrect answer one step down; the level never leaves [0,5].
const (
	MinMasteryLevel = 0
	MaxMasteryLevel = 5
)

// Common validation errors for MasteryRecord
var (
	ErrEmptyMasteryUserID       = errors.New("mastery record user ID cannot be empty")
	ErrEmptyMasteryVocabularyID = errors.New("mastery record vocabulary ID cannot be empty")
	ErrMasteryLevelOutOfRange   = errors.New("mastery level must be between 0 and 5")
	ErrNegativeReviewCount      = errors.New("review count cannot be negative")
)

// MasteryRecord tracks how well a user knows a single vocabulary item.
// One record exists per (user, item), created lazily on first review and
// mutated on every review after that; records are never deleted.
type MasteryRecord struct {
	UserID         uuid.UUID `json:"user_id"`
	VocabularyID   uuid.UUID `json:"vocabulary_id"`
	MasteryLevel   int       `json:"mastery_level"`
	LastReviewedAt time.Time `json:"last_reviewed_at"`
	ReviewCount    int       `json:"review_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewMasteryRecord creates an empty mastery record for a user and item.
// The record starts at level 0 with no reviews; the first call to
// progress.ApplyOutcome produces the first meaningful state.
func NewMasteryRecord(userID, vocabularyID uuid.UUID) (*MasteryRecord, error) {
	now := time.Now().UTC()
	record := &MasteryRecord{
		UserID:         userID,
		VocabularyID:   vocabularyID,
		MasteryLevel:   MinMasteryLevel,
		LastReviewedAt: time.Time{}, // Zero time until first review
		ReviewCount:    0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks if the MasteryRecord has valid data.
// Returns an error if any field fails validation.
func (r *MasteryRecord) Validate() error {
	if r.UserID == uuid.Nil {
		return ErrEmptyMasteryUserID
	}

	if r.VocabularyID == uuid.Nil {
		return ErrEmptyMasteryVocabularyID
	}

	if r.MasteryLevel < MinMasteryLevel || r.MasteryLevel > MaxMasteryLevel {
		return ErrMasteryLevelOutOfRange
	}

	if r.ReviewCount < 0 {
		return ErrNegativeReviewCount
	}

	return nil
}
