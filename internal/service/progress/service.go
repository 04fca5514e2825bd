package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lingokit/lingo-api/internal/domain"
)

// StartedSession is the result of starting a practice session: the
// session handle plus the review batch selected by the scheduler. An
// empty Items slice is a valid session; the user simply has nothing in
// that language yet.
type StartedSession struct {
	ID        uuid.UUID               `json:"id"`
	Items     []domain.VocabularyItem `json:"items"`
	StartedAt time.Time               `json:"started_at"`
}

// SessionSummary is returned when a practice session completes. If the
// achievement check failed after the XP and streak were already
// persisted, AchievementCheckFailed is set and Unlocked is empty; the
// completion itself still succeeded.
type SessionSummary struct {
	SessionID              uuid.UUID            `json:"session_id"`
	Answered               int                  `json:"answered"`
	Correct                int                  `json:"correct"`
	XPAwarded              int                  `json:"xp_awarded"`
	Stats                  domain.UserStats     `json:"stats"`
	Unlocked               []domain.Achievement `json:"unlocked_achievements"`
	AchievementCheckFailed bool                 `json:"achievement_check_failed,omitempty"`
}

// LessonResult is returned when a lesson completion is recorded.
type LessonResult struct {
	LessonID               uuid.UUID            `json:"lesson_id"`
	XPAwarded              int                  `json:"xp_awarded"`
	Stats                  domain.UserStats     `json:"stats"`
	Unlocked               []domain.Achievement `json:"unlocked_achievements"`
	AchievementCheckFailed bool                 `json:"achievement_check_failed,omitempty"`
}

// Snapshot is a read-only view of a user's progress.
type Snapshot struct {
	Stats            domain.UserStats `json:"stats"`
	CompletedLessons int              `json:"completed_lessons"`
	XPToNextLevel    int              `json:"xp_to_next_level"`
}

// AchievementStatus pairs an achievement definition with the user's
// unlock state.
type AchievementStatus struct {
	Achievement domain.Achievement `json:"achievement"`
	Earned      bool               `json:"earned"`
	EarnedAt    *time.Time         `json:"earned_at,omitempty"`
}

// Service orchestrates the learning-progress engine: practice sessions,
// mastery updates, XP and level, daily streaks, and achievements.
type Service interface {
	// StartSession selects a review batch for the user and opens a
	// practice session around it. A limit of zero or less falls back to
	// the configured default batch size; requests above the configured
	// maximum are clamped.
	StartSession(
		ctx context.Context,
		userID, languageID uuid.UUID,
		limit int,
	) (*StartedSession, error)

	// SubmitAnswer applies one answer to the session's vocabulary item
	// and persists the resulting mastery record. Each item accepts at
	// most one answer per session.
	//
	// Returns ErrSessionNotFound, ErrSessionNotOwned, ErrSessionCompleted,
	// ErrItemNotInSession or ErrItemAlreadyAnswered for session-level
	// failures; persistence errors are wrapped and returned as-is.
	SubmitAnswer(
		ctx context.Context,
		userID, sessionID, vocabularyID uuid.UUID,
		correct bool,
	) (*domain.MasteryRecord, error)

	// CompleteSession finishes a practice session: awards session XP,
	// records the activity, advances the streak, and evaluates
	// achievements. The achievement check is non-fatal; if it fails the
	// summary reports it as degraded but the completion still succeeds.
	//
	// Returns ErrSessionNotFound, ErrSessionNotOwned or
	// ErrSessionCompleted for session-level failures, and
	// progress.ErrClockSkew when the last recorded activity is in the
	// future relative to now.
	CompleteSession(
		ctx context.Context,
		userID, sessionID uuid.UUID,
	) (*SessionSummary, error)

	// CompleteLesson records a lesson completion and runs the same
	// XP/streak/achievement pipeline as CompleteSession, using the
	// lesson's XP reward.
	//
	// Returns store.ErrLessonNotFound when the lesson does not exist.
	CompleteLesson(
		ctx context.Context,
		userID, lessonID uuid.UUID,
		score, timeSpentSeconds int,
	) (*LessonResult, error)

	// GetProgress returns the user's progress snapshot.
	// Returns store.ErrUserNotFound when the user does not exist.
	GetProgress(ctx context.Context, userID uuid.UUID) (*Snapshot, error)

	// ListAchievements returns every achievement definition together
	// with the user's unlock state, in definition order.
	ListAchievements(ctx context.Context, userID uuid.UUID) ([]AchievementStatus, error)
}

// Common error types for the progress Service
var (
	// ErrSessionNotFound indicates the practice session does not exist
	// (never started, expired with the process, or already removed).
	ErrSessionNotFound = errors.New("practice session not found")

	// ErrSessionNotOwned indicates the session belongs to another user.
	ErrSessionNotOwned = errors.New("unauthorized access: session not owned by user")

	// ErrSessionCompleted indicates the session has already been completed.
	ErrSessionCompleted = errors.New("practice session already completed")

	// ErrItemNotInSession indicates the answered vocabulary item is not
	// part of the session's review batch.
	ErrItemNotInSession = errors.New("vocabulary item is not part of this session")

	// ErrItemAlreadyAnswered indicates the vocabulary item was already
	// answered in this session.
	ErrItemAlreadyAnswered = errors.New("vocabulary item already answered in this session")
)

// ServiceError wraps errors from the progress service with additional context.
// This allows consumers to differentiate between different types of service errors
// using errors.As instead of string matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "start_session", "submit_answer")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// newServiceError returns a ServiceError for the given operation.
func newServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
