package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Lesson validation errors
var (
	ErrEmptyLessonID       = errors.New("lesson ID cannot be empty")
	ErrEmptyLessonTitle    = errors.New("lesson title cannot be empty")
	ErrNegativeXPReward    = errors.New("lesson XP reward cannot be negative")
	ErrInvalidLessonScore  = errors.New("lesson score must be between 0 and 100")
	ErrNegativeTimeSpent   = errors.New("time spent cannot be negative")
	ErrEmptyCompletionUser = errors.New("lesson completion user ID cannot be empty")
)

// Lesson is a catalog entry: a unit of study with a fixed XP reward.
// The catalog is reference data maintained outside this subsystem; the
// progress engine only consumes the reward amount.
type Lesson struct {
	ID         uuid.UUID `json:"id"`
	LanguageID uuid.UUID `json:"language_id"`
	Title      string    `json:"title"`
	XPReward   int       `json:"xp_reward"`
}

// Validate checks if the Lesson has valid data.
func (l *Lesson) Validate() error {
	if l.ID == uuid.Nil {
		return ErrEmptyLessonID
	}

	if l.Title == "" {
		return ErrEmptyLessonTitle
	}

	if l.XPReward < 0 {
		return ErrNegativeXPReward
	}

	return nil
}

// LessonCompletion records that a user finished a lesson, with the score
// achieved and the time spent. One row per (user, lesson); re-completing
// a lesson replaces the previous attempt's score and timestamp.
type LessonCompletion struct {
	UserID           uuid.UUID `json:"user_id"`
	LessonID         uuid.UUID `json:"lesson_id"`
	CompletedAt      time.Time `json:"completed_at"`
	Score            int       `json:"score"`
	TimeSpentSeconds int       `json:"time_spent_seconds"`
}

// NewLessonCompletion creates a lesson completion record.
// Returns an error if validation fails.
func NewLessonCompletion(
	userID, lessonID uuid.UUID,
	score, timeSpentSeconds int,
	completedAt time.Time,
) (*LessonCompletion, error) {
	completion := &LessonCompletion{
		UserID:           userID,
		LessonID:         lessonID,
		CompletedAt:      completedAt,
		Score:            score,
		TimeSpentSeconds: timeSpentSeconds,
	}

	if err := completion.Validate(); err != nil {
		return nil, err
	}

	return completion, nil
}

// Validate checks if the LessonCompletion has valid data.
func (c *LessonCompletion) Validate() error {
	if c.UserID == uuid.Nil {
		return ErrEmptyCompletionUser
	}

	if c.LessonID == uuid.Nil {
		return ErrEmptyLessonID
	}

	if c.Score < 0 || c.Score > 100 {
		return ErrInvalidLessonScore
	}

	if c.TimeSpentSeconds < 0 {
		return ErrNegativeTimeSpent
	}

	return nil
}
