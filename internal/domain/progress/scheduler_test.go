package progress

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lingokit/lingo-api/internal/domain"
)

func makeItem(word string) domain.VocabularyItem {
	return domain.VocabularyItem{
		ID:              uuid.New(),
		LanguageID:      uuid.New(),
		Word:            word,
		Translation:     word + "-translation",
		DifficultyLevel: 1,
	}
}

func withMastery(item domain.VocabularyItem, level int, lastReviewed time.Time) ItemWithMastery {
	return ItemWithMastery{
		Item: item,
		Mastery: &domain.MasteryRecord{
			UserID:         uuid.New(),
			VocabularyID:   item.ID,
			MasteryLevel:   level,
			LastReviewedAt: lastReviewed,
			ReviewCount:    1,
		},
	}
}

func TestSelectForReviewOrdering(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	fiveDaysAgo := now.AddDate(0, 0, -5)

	// A has never been reviewed; B is a weak item five days old
	// (overdue 5-0=5); C is fully mastered and far from due (5-30=-25).
	a := makeItem("casa")
	b := withMastery(makeItem("perro"), 0, fiveDaysAgo)
	c := withMastery(makeItem("gato"), 5, fiveDaysAgo)

	items := []ItemWithMastery{c, b, {Item: a}}

	selected := SelectForReview(items, 10, now)

	if len(selected) != 3 {
		t.Fatalf("Expected 3 items, got %d", len(selected))
	}

	if selected[0].ID != a.ID {
		t.Errorf("Expected never-reviewed item first, got %q", selected[0].Word)
	}

	if selected[1].ID != b.Item.ID {
		t.Errorf("Expected most overdue reviewed item second, got %q", selected[1].Word)
	}

	if selected[2].ID != c.Item.ID {
		t.Errorf("Expected least overdue item last, got %q", selected[2].Word)
	}
}

func TestSelectForReviewUnseenTiesKeepInputOrder(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	first := makeItem("uno")
	second := makeItem("dos")
	third := makeItem("tres")

	items := []ItemWithMastery{{Item: first}, {Item: second}, {Item: third}}

	selected := SelectForReview(items, 3, now)

	if selected[0].ID != first.ID || selected[1].ID != second.ID || selected[2].ID != third.ID {
		t.Error("Expected never-reviewed items to keep their input order")
	}
}

func TestSelectForReviewDoesNotFilterNotYetDue(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	// Reviewed an hour ago at level 5: overdue is -30, but the item must
	// still appear when the limit allows.
	fresh := withMastery(makeItem("sol"), 5, now.Add(-time.Hour))

	selected := SelectForReview([]ItemWithMastery{fresh}, 5, now)

	if len(selected) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(selected))
	}
}

func TestSelectForReviewTruncatesToLimit(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	items := []ItemWithMastery{
		{Item: makeItem("uno")},
		withMastery(makeItem("dos"), 1, now.AddDate(0, 0, -10)),
		withMastery(makeItem("tres"), 2, now.AddDate(0, 0, -2)),
	}

	selected := SelectForReview(items, 2, now)

	if len(selected) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(selected))
	}

	if selected[0].Word != "uno" || selected[1].Word != "dos" {
		t.Errorf("Expected [uno dos], got [%s %s]", selected[0].Word, selected[1].Word)
	}
}

func TestSelectForReviewEmptyCases(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	items := []ItemWithMastery{{Item: makeItem("uno")}}

	if got := SelectForReview(items, 0, now); len(got) != 0 {
		t.Errorf("Expected empty batch for limit 0, got %d items", len(got))
	}

	if got := SelectForReview(items, -1, now); len(got) != 0 {
		t.Errorf("Expected empty batch for negative limit, got %d items", len(got))
	}

	if got := SelectForReview(nil, 5, now); len(got) != 0 {
		t.Errorf("Expected empty batch for no items, got %d items", len(got))
	}
}

func TestOverdue(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		level        int
		lastReviewed time.Time
		expected     int
	}{
		{
			name:         "level 0 reviewed five days ago",
			level:        0,
			lastReviewed: now.AddDate(0, 0, -5),
			expected:     5,
		},
		{
			name:         "level 5 reviewed five days ago",
			level:        5,
			lastReviewed: now.AddDate(0, 0, -5),
			expected:     -25,
		},
		{
			name:         "partial days floor",
			level:        1,
			lastReviewed: now.Add(-36 * time.Hour), // 1.5 days
			expected:     0,                        // floor(1.5) - 1
		},
		{
			name:         "level 3 exactly at its interval",
			level:        3,
			lastReviewed: now.AddDate(0, 0, -7),
			expected:     0,
		},
		{
			// Flooring must carry through negative elapsed time: a review
			// half a day ahead of now is a full day short, not zero.
			name:         "last review in the future floors to a negative day",
			level:        0,
			lastReviewed: now.Add(12 * time.Hour),
			expected:     -1,
		},
		{
			name:         "future review at level 1 ranks below freshly due",
			level:        1,
			lastReviewed: now.Add(36 * time.Hour),
			expected:     -3, // floor(-1.5) - 1
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			record := &domain.MasteryRecord{
				UserID:         uuid.New(),
				VocabularyID:   uuid.New(),
				MasteryLevel:   tc.level,
				LastReviewedAt: tc.lastReviewed,
			}

			if got := Overdue(record, now); got != tc.expected {
				t.Errorf("Expected overdue %d, got %d", tc.expected, got)
			}
		})
	}
}
