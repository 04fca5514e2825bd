package progress

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lingokit/lingo-api/internal/domain"
)

func TestApplyOutcomeFirstReview(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	vocabID := uuid.New()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		correct       bool
		expectedLevel int
	}{
		{
			name:          "first correct answer starts at level 1",
			correct:       true,
			expectedLevel: 1,
		},
		{
			name:          "first incorrect answer starts at level 0",
			correct:       false,
			expectedLevel: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			record, err := ApplyOutcome(userID, vocabID, nil, tc.correct, now)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			if record.MasteryLevel != tc.expectedLevel {
				t.Errorf("Expected mastery level %d, got %d", tc.expectedLevel, record.MasteryLevel)
			}

			if record.ReviewCount != 1 {
				t.Errorf("Expected review count 1, got %d", record.ReviewCount)
			}

			if !record.LastReviewedAt.Equal(now) {
				t.Errorf("Expected last reviewed at %v, got %v", now, record.LastReviewedAt)
			}

			if record.UserID != userID || record.VocabularyID != vocabID {
				t.Error("Expected record keyed by the given user and vocabulary IDs")
			}
		})
	}
}

func TestApplyOutcomeFirstReviewRequiresIDs(t *testing.T) {
	t.Parallel()

	_, err := ApplyOutcome(uuid.Nil, uuid.New(), nil, true, time.Now().UTC())
	if err != ErrNilIDs {
		t.Errorf("Expected ErrNilIDs, got %v", err)
	}

	_, err = ApplyOutcome(uuid.New(), uuid.Nil, nil, true, time.Now().UTC())
	if err != ErrNilIDs {
		t.Errorf("Expected ErrNilIDs, got %v", err)
	}
}

func TestApplyOutcomeSteps(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		level    int
		correct  bool
		expected int
	}{
		{name: "correct answer moves one step up", level: 2, correct: true, expected: 3},
		{name: "incorrect answer moves one step down", level: 2, correct: false, expected: 1},
		{name: "correct answer is capped at 5", level: 5, correct: true, expected: 5},
		{name: "incorrect answer is floored at 0", level: 0, correct: false, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			record := &domain.MasteryRecord{
				UserID:         uuid.New(),
				VocabularyID:   uuid.New(),
				MasteryLevel:   tc.level,
				LastReviewedAt: now.AddDate(0, 0, -1),
				ReviewCount:    4,
			}

			updated, err := ApplyOutcome(record.UserID, record.VocabularyID, record, tc.correct, now)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			if updated.MasteryLevel != tc.expected {
				t.Errorf("Expected mastery level %d, got %d", tc.expected, updated.MasteryLevel)
			}

			if updated.ReviewCount != 5 {
				t.Errorf("Expected review count 5, got %d", updated.ReviewCount)
			}

			if !updated.LastReviewedAt.Equal(now) {
				t.Errorf("Expected last reviewed at %v, got %v", now, updated.LastReviewedAt)
			}

			// The input record must not be mutated.
			if record.MasteryLevel != tc.level || record.ReviewCount != 4 {
				t.Error("Expected input record to be unchanged")
			}
		})
	}
}

func TestApplyOutcomeStaysInBounds(t *testing.T) {
	t.Parallel()

	// Fold an arbitrary outcome sequence through the updater and check
	// the mastery scale invariant at every step.
	outcomes := []bool{
		true, true, false, true, true, true, true, true, // climbs and caps
		false, false, false, false, false, false, false, // falls and floors
		true, false, true, true, false, true, true, true, true, true,
	}

	userID := uuid.New()
	vocabID := uuid.New()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	var record *domain.MasteryRecord
	for i, correct := range outcomes {
		var err error
		record, err = ApplyOutcome(userID, vocabID, record, correct, now)
		if err != nil {
			t.Fatalf("Step %d: expected no error, got %v", i, err)
		}

		if record.MasteryLevel < domain.MinMasteryLevel || record.MasteryLevel > domain.MaxMasteryLevel {
			t.Fatalf("Step %d: mastery level %d out of bounds", i, record.MasteryLevel)
		}

		if record.ReviewCount != i+1 {
			t.Fatalf("Step %d: expected review count %d, got %d", i, i+1, record.ReviewCount)
		}

		now = now.Add(time.Hour)
	}
}
