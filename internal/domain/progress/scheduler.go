package progress

import (
	"math"
	"sort"
	"time"

	"github.com/lingokit/lingo-api/internal/domain"
)

// ReviewIntervals is the expected number of days between reviews,
// indexed by mastery level. A level-0 item is due immediately; a fully
// mastered item is expected back after a month. This is a Leitner-style
// expanding schedule: it approximates spaced repetition without a full
// SM-2 ease-factor calculation.
var ReviewIntervals = [domain.MaxMasteryLevel + 1]int{0, 1, 3, 7, 14, 30}

// ItemWithMastery pairs a vocabulary item with the user's mastery record
// for it. Mastery is nil when the user has never reviewed the item.
type ItemWithMastery struct {
	Item    domain.VocabularyItem
	Mastery *domain.MasteryRecord
}

// Overdue computes how many days past its expected review interval a
// record is: whole days since the last review (floored) minus the
// interval for the current mastery level. Recently reviewed items yield
// negative values; they still participate in ordering, just rank lower.
func Overdue(record *domain.MasteryRecord, now time.Time) int {
	return daysSince(record.LastReviewedAt, now) - ReviewIntervals[clampMastery(record.MasteryLevel)]
}

// SelectForReview orders the user's vocabulary by descending review
// priority and truncates the result to limit.
//
// Never-reviewed items always outrank reviewed ones: coverage before
// reinforcement. Among never-reviewed items the input order is kept;
// the tie-break is deliberately unspecified beyond that. Among reviewed
// items, larger Overdue ranks first. Items that are not yet due are not
// filtered out; the limit is the only cap on the batch.
func SelectForReview(
	items []ItemWithMastery,
	limit int,
	now time.Time,
) []domain.VocabularyItem {
	if limit <= 0 || len(items) == 0 {
		return []domain.VocabularyItem{}
	}

	ordered := make([]ItemWithMastery, len(items))
	copy(ordered, items)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]

		// Unseen items come first; two unseen items keep input order.
		if a.Mastery == nil || b.Mastery == nil {
			return a.Mastery == nil && b.Mastery != nil
		}

		return Overdue(a.Mastery, now) > Overdue(b.Mastery, now)
	})

	if limit > len(ordered) {
		limit = len(ordered)
	}

	selected := make([]domain.VocabularyItem, 0, limit)
	for _, entry := range ordered[:limit] {
		selected = append(selected, entry.Item)
	}

	return selected
}

// daysSince returns the number of whole days between two timestamps,
// floored. A from in the future yields a negative count rather than
// rounding up to zero, so clock skew cannot make an item look due.
func daysSince(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Hours() / 24))
}
