package progress

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingokit/lingo-api/internal/domain"
)

func testItems(n int) []domain.VocabularyItem {
	items := make([]domain.VocabularyItem, n)
	for i := range items {
		items[i] = domain.VocabularyItem{
			ID:              uuid.New(),
			LanguageID:      uuid.New(),
			Word:            "word",
			Translation:     "translation",
			DifficultyLevel: 1,
		}
	}
	return items
}

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	languageID := uuid.New()
	items := testItems(3)
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	session := NewSession(userID, languageID, items, now)

	require.NotEqual(t, uuid.Nil, session.ID)
	assert.Equal(t, SessionInProgress, session.State())
	assert.Equal(t, now, session.StartedAt)

	// Items in the batch are answerable, unknown items are not.
	assert.NoError(t, session.CheckAnswerable(items[0].ID))
	assert.ErrorIs(t, session.CheckAnswerable(uuid.New()), ErrItemNotInSession)

	session.CountAnswer(items[0].ID, true)
	session.CountAnswer(items[1].ID, false)
	session.CountAnswer(items[2].ID, true)

	answered, correct, err := session.Complete()
	require.NoError(t, err)
	assert.Equal(t, 3, answered)
	assert.Equal(t, 2, correct)
	assert.Equal(t, SessionCompleted, session.State())

	// Completing twice fails, as does answering after completion.
	_, _, err = session.Complete()
	assert.ErrorIs(t, err, ErrSessionCompleted)
	assert.ErrorIs(t, session.CheckAnswerable(items[0].ID), ErrSessionCompleted)
}

func TestSessionRejectsRepeatAnswer(t *testing.T) {
	t.Parallel()

	items := testItems(2)
	session := NewSession(uuid.New(), uuid.New(), items, time.Now().UTC())

	require.NoError(t, session.CheckAnswerable(items[0].ID))
	session.CountAnswer(items[0].ID, true)

	// The counted item cannot be answered again; its sibling still can.
	assert.ErrorIs(t, session.CheckAnswerable(items[0].ID), ErrItemAlreadyAnswered)
	assert.NoError(t, session.CheckAnswerable(items[1].ID))

	// A racing duplicate that slipped past the check is not counted twice.
	session.CountAnswer(items[0].ID, true)
	session.CountAnswer(items[1].ID, false)

	answered, correct, err := session.Complete()
	require.NoError(t, err)
	assert.Equal(t, 2, answered)
	assert.Equal(t, 1, correct)
}

func TestSessionReopen(t *testing.T) {
	t.Parallel()

	items := testItems(1)
	session := NewSession(uuid.New(), uuid.New(), items, time.Now().UTC())
	session.CountAnswer(items[0].ID, true)

	answered, correct, err := session.Complete()
	require.NoError(t, err)
	assert.Equal(t, 1, answered)
	assert.Equal(t, 1, correct)

	// Reopening makes the session completable again with its counters
	// intact, so a failed completion write can be retried.
	session.Reopen()
	assert.Equal(t, SessionInProgress, session.State())

	answered, correct, err = session.Complete()
	require.NoError(t, err)
	assert.Equal(t, 1, answered)
	assert.Equal(t, 1, correct)
}

func TestSessionEmptyBatch(t *testing.T) {
	t.Parallel()

	session := NewSession(uuid.New(), uuid.New(), nil, time.Now().UTC())

	assert.ErrorIs(t, session.CheckAnswerable(uuid.New()), ErrItemNotInSession)

	answered, correct, err := session.Complete()
	require.NoError(t, err)
	assert.Zero(t, answered)
	assert.Zero(t, correct)
}

func TestSessionRegistry(t *testing.T) {
	t.Parallel()

	registry := NewSessionRegistry()
	session := NewSession(uuid.New(), uuid.New(), testItems(1), time.Now().UTC())

	_, ok := registry.Get(session.ID)
	assert.False(t, ok)

	registry.Add(session)
	got, ok := registry.Get(session.ID)
	require.True(t, ok)
	assert.Same(t, session, got)
	assert.Equal(t, 1, registry.Len())

	registry.Remove(session.ID)
	_, ok = registry.Get(session.ID)
	assert.False(t, ok)
	assert.Zero(t, registry.Len())

	// Removing an unknown session is a no-op.
	registry.Remove(uuid.New())
}
