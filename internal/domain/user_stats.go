package domain

import "errors"

// XPPerLevel is the amount of experience required to advance one level.
// Level is a pure function of total XP: level = totalXP/100 + 1.
const XPPerLevel = 100

// UserStats validation errors
var (
	ErrNegativeXP      = errors.New("total XP cannot be negative")
	ErrInvalidLevel    = errors.New("level must be at least 1")
	ErrNegativeStreak  = errors.New("streak cannot be negative")
	ErrNegativeXPAward = errors.New("XP award cannot be negative")
)

// UserStats is the cached progress aggregate for a user: lifetime XP,
// the level derived from it, and the current/longest daily streaks.
// It is stored denormalized on the users row and updated by the
// progress service at session and lesson completion.
type UserStats struct {
	TotalXP       int `json:"total_xp"`
	Level         int `json:"level"`
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
}

// NewUserStats returns the zero-progress stats for a freshly
// registered user.
func NewUserStats() UserStats {
	return UserStats{
		TotalXP:       0,
		Level:         1,
		CurrentStreak: 0,
		LongestStreak: 0,
	}
}

// LevelForXP computes the level for a given XP total.
// 0 XP is level 1, 100 XP is level 2, 250 XP is level 3, and so on.
func LevelForXP(totalXP int) int {
	if totalXP < 0 {
		return 1
	}
	return totalXP/XPPerLevel + 1
}

// AddXP returns a copy of the stats with the award applied and the
// level recomputed. Returns an error for negative awards.
func (s UserStats) AddXP(amount int) (UserStats, error) {
	if amount < 0 {
		return s, ErrNegativeXPAward
	}

	next := s
	next.TotalXP += amount
	next.Level = LevelForXP(next.TotalXP)
	return next, nil
}

// Validate checks if the UserStats has valid data.
// Returns an error if any field fails validation.
func (s UserStats) Validate() error {
	if s.TotalXP < 0 {
		return ErrNegativeXP
	}

	if s.Level < 1 {
		return ErrInvalidLevel
	}

	if s.CurrentStreak < 0 || s.LongestStreak < 0 {
		return ErrNegativeStreak
	}

	return nil
}
