package progress

import (
	"testing"

	"github.com/google/uuid"

	"github.com/lingokit/lingo-api/internal/domain"
)

func achievementDef(name string, conditions ...domain.AchievementCondition) domain.Achievement {
	return domain.Achievement{
		ID:          uuid.New(),
		Name:        name,
		Description: name,
		Conditions:  conditions,
	}
}

func TestCheckAchievementsThresholds(t *testing.T) {
	t.Parallel()

	xp100 := achievementDef("Century", domain.XPThreshold(100))
	streak7 := achievementDef("Week Warrior", domain.StreakThreshold(7))
	lessons10 := achievementDef("Ten Lessons", domain.LessonThreshold(10))
	defs := []domain.Achievement{xp100, streak7, lessons10}

	testCases := []struct {
		name        string
		stats       domain.UserStats
		lessonCount int
		expected    []uuid.UUID
	}{
		{
			name:        "nothing met",
			stats:       domain.UserStats{TotalXP: 99, Level: 1, CurrentStreak: 6},
			lessonCount: 9,
			expected:    nil,
		},
		{
			name:        "xp threshold met exactly",
			stats:       domain.UserStats{TotalXP: 100, Level: 2},
			lessonCount: 0,
			expected:    []uuid.UUID{xp100.ID},
		},
		{
			name:        "all met, definition order kept",
			stats:       domain.UserStats{TotalXP: 500, Level: 6, CurrentStreak: 30},
			lessonCount: 50,
			expected:    []uuid.UUID{xp100.ID, streak7.ID, lessons10.ID},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			unlocked := CheckAchievements(tc.stats, tc.lessonCount, defs, nil)

			if len(unlocked) != len(tc.expected) {
				t.Fatalf("Expected %d unlocks, got %d", len(tc.expected), len(unlocked))
			}

			for i, id := range tc.expected {
				if unlocked[i].ID != id {
					t.Errorf("Position %d: expected %s, got %s", i, id, unlocked[i].ID)
				}
			}
		})
	}
}

func TestCheckAchievementsOrSemantics(t *testing.T) {
	t.Parallel()

	// One achievement, two independent ways to earn it.
	combo := achievementDef("Dedicated", domain.XPThreshold(500), domain.StreakThreshold(7))
	defs := []domain.Achievement{combo}

	byXP := CheckAchievements(domain.UserStats{TotalXP: 500, Level: 6, CurrentStreak: 0}, 0, defs, nil)
	if len(byXP) != 1 || byXP[0].ID != combo.ID {
		t.Error("Expected unlock via XP threshold alone")
	}

	byStreak := CheckAchievements(domain.UserStats{TotalXP: 0, Level: 1, CurrentStreak: 7}, 0, defs, nil)
	if len(byStreak) != 1 || byStreak[0].ID != combo.ID {
		t.Error("Expected unlock via streak threshold alone")
	}
}

func TestCheckAchievementsSkipsAlreadyEarned(t *testing.T) {
	t.Parallel()

	xp100 := achievementDef("Century", domain.XPThreshold(100))
	defs := []domain.Achievement{xp100}
	stats := domain.UserStats{TotalXP: 1000, Level: 11}

	first := CheckAchievements(stats, 0, defs, nil)
	if len(first) != 1 {
		t.Fatalf("Expected 1 unlock, got %d", len(first))
	}

	earned := map[uuid.UUID]struct{}{xp100.ID: {}}
	second := CheckAchievements(stats, 0, defs, earned)
	if len(second) != 0 {
		t.Errorf("Expected no repeat unlock, got %d", len(second))
	}
}

func TestCheckAchievementsSkipsInvalidDefinitions(t *testing.T) {
	t.Parallel()

	noConditions := domain.Achievement{ID: uuid.New(), Name: "Broken"}
	valid := achievementDef("Century", domain.XPThreshold(100))

	unlocked := CheckAchievements(
		domain.UserStats{TotalXP: 200, Level: 3},
		0,
		[]domain.Achievement{noConditions, valid},
		nil,
	)

	if len(unlocked) != 1 || unlocked[0].ID != valid.ID {
		t.Error("Expected invalid definition to be skipped, valid one unlocked")
	}
}
