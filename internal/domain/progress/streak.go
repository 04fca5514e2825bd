package progress

import (
	"errors"
	"math"
	"time"
)

// Streak errors
var (
	// ErrClockSkew is returned when the most recent activity event is on a
	// later calendar day than now. Out-of-order events are rejected rather
	// than guessed at.
	ErrClockSkew = errors.New("most recent activity is in the future")
)

// StreakUpdate is the result of folding one day of activity into a
// user's streak state.
type StreakUpdate struct {
	Current int
	Longest int
}

// NextStreak computes the streak state after activity at now, given the
// completion time of the most recent prior activity event (nil when the
// user has never been active) and the previously persisted streak values.
//
// Comparison is by calendar day in loc, not a rolling 24-hour window:
//   - same day: the streak is unchanged, so repeat calls are idempotent
//   - next day: the streak extends by one
//   - a gap of two or more days: the streak restarts at one
//
// Longest is recomputed as max(previous longest, new current) in the
// same update, so both values belong in a single persisted write.
func NextStreak(
	lastActivity *time.Time,
	prevCurrent, prevLongest int,
	now time.Time,
	loc *time.Location,
) (StreakUpdate, error) {
	if loc == nil {
		loc = time.Local
	}

	update := StreakUpdate{Current: prevCurrent, Longest: prevLongest}

	if lastActivity == nil {
		update.Current = 1
	} else {
		switch diff := calendarDaysBetween(*lastActivity, now, loc); {
		case diff < 0:
			return StreakUpdate{}, ErrClockSkew
		case diff == 0:
			// Activity already recorded today; keep the current streak.
		case diff == 1:
			update.Current = prevCurrent + 1
		default:
			update.Current = 1
		}
	}

	if update.Current > update.Longest {
		update.Longest = update.Current
	}

	return update, nil
}

// calendarDaysBetween counts calendar-day boundaries crossed between
// from and to, both interpreted in loc. Rounding absorbs DST shifts.
func calendarDaysBetween(from, to time.Time, loc *time.Location) int {
	fy, fm, fd := from.In(loc).Date()
	ty, tm, td := to.In(loc).Date()

	fromDay := time.Date(fy, fm, fd, 0, 0, 0, 0, loc)
	toDay := time.Date(ty, tm, td, 0, 0, 0, 0, loc)

	return int(math.Round(toDay.Sub(fromDay).Hours() / 24))
}
