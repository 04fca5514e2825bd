package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AchievementConditionKind tags the quantity an achievement condition
// measures. The tag makes each condition's meaning explicit instead of
// relying on which optional threshold columns happen to be set.
type AchievementConditionKind string

// Supported condition kinds
const (
	ConditionXPThreshold     AchievementConditionKind = "xp_threshold"
	ConditionStreakThreshold AchievementConditionKind = "streak_threshold"
	ConditionLessonThreshold AchievementConditionKind = "lesson_threshold"
)

// Achievement validation errors
var (
	ErrEmptyAchievementID     = errors.New("achievement ID cannot be empty")
	ErrEmptyAchievementName   = errors.New("achievement name cannot be empty")
	ErrNoAchievementCondition = errors.New("achievement must have at least one condition")
	ErrInvalidConditionKind   = errors.New("invalid achievement condition kind")
	ErrInvalidThreshold       = errors.New("achievement threshold must be at least 1")
)

// AchievementCondition is one unlock criterion: a kind and the value the
// user's progress must reach. An achievement with several conditions
// unlocks when ANY of them is satisfied.
type AchievementCondition struct {
	Kind      AchievementConditionKind `json:"kind"`
	Threshold int                      `json:"threshold"`
}

// XPThreshold builds a condition met once total XP reaches n.
func XPThreshold(n int) AchievementCondition {
	return AchievementCondition{Kind: ConditionXPThreshold, Threshold: n}
}

// StreakThreshold builds a condition met once the current streak reaches n days.
func StreakThreshold(n int) AchievementCondition {
	return AchievementCondition{Kind: ConditionStreakThreshold, Threshold: n}
}

// LessonThreshold builds a condition met once n lessons have been completed.
func LessonThreshold(n int) AchievementCondition {
	return AchievementCondition{Kind: ConditionLessonThreshold, Threshold: n}
}

// Met reports whether the condition is satisfied by the given stats and
// completed-lesson count. Unknown kinds are never met.
func (c AchievementCondition) Met(stats UserStats, completedLessonCount int) bool {
	switch c.Kind {
	case ConditionXPThreshold:
		return stats.TotalXP >= c.Threshold
	case ConditionStreakThreshold:
		return stats.CurrentStreak >= c.Threshold
	case ConditionLessonThreshold:
		return completedLessonCount >= c.Threshold
	default:
		return false
	}
}

// Validate checks the condition's kind and threshold.
func (c AchievementCondition) Validate() error {
	switch c.Kind {
	case ConditionXPThreshold, ConditionStreakThreshold, ConditionLessonThreshold:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidConditionKind, c.Kind)
	}

	if c.Threshold < 1 {
		return ErrInvalidThreshold
	}

	return nil
}

// Achievement is a definition row: a permanent badge with one or more
// unlock conditions. Definitions are reference data; per-user unlock
// state lives in UserAchievement.
type Achievement struct {
	ID          uuid.UUID              `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Conditions  []AchievementCondition `json:"conditions"`
}

// Validate checks if the Achievement has valid data.
func (a *Achievement) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAchievementID
	}

	if a.Name == "" {
		return ErrEmptyAchievementName
	}

	if len(a.Conditions) == 0 {
		return ErrNoAchievementCondition
	}

	for _, c := range a.Conditions {
		if err := c.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// UserAchievement records that a user earned an achievement. Rows are
// append-only and unique per (user, achievement): re-evaluating an
// already-earned achievement never re-inserts or alters the row.
type UserAchievement struct {
	UserID        uuid.UUID `json:"user_id"`
	AchievementID uuid.UUID `json:"achievement_id"`
	EarnedAt      time.Time `json:"earned_at"`
}

// Validate checks if the UserAchievement has valid data.
func (ua *UserAchievement) Validate() error {
	if ua.UserID == uuid.Nil {
		return ErrEmptyUserID
	}

	if ua.AchievementID == uuid.Nil {
		return ErrEmptyAchievementID
	}

	return nil
}
