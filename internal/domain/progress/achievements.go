package progress

import (
	"github.com/google/uuid"

	"github.com/lingokit/lingo-api/internal/domain"
)

// CheckAchievements evaluates every definition the user has not already
// earned and returns the newly unlocked ones in definition order.
//
// An achievement unlocks when any one of its conditions is satisfied by
// the current stats and completed-lesson count. Definitions that fail
// validation are skipped rather than aborting the batch. The caller is
// responsible for persisting the unlocks; persistence must be
// idempotent per (user, achievement).
func CheckAchievements(
	stats domain.UserStats,
	completedLessonCount int,
	definitions []domain.Achievement,
	alreadyEarned map[uuid.UUID]struct{},
) []domain.Achievement {
	var unlocked []domain.Achievement

	for _, def := range definitions {
		if _, earned := alreadyEarned[def.ID]; earned {
			continue
		}

		if def.Validate() != nil {
			continue
		}

		for _, cond := range def.Conditions {
			if cond.Met(stats, completedLessonCount) {
				unlocked = append(unlocked, def)
				break
			}
		}
	}

	return unlocked
}
