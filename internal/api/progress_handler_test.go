package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingokit/lingo-api/internal/domain"
	"github.com/lingokit/lingo-api/internal/mocks"
	progresssvc "github.com/lingokit/lingo-api/internal/service/progress"
	"github.com/lingokit/lingo-api/internal/store"
)

func TestGetProgressHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("returns snapshot", func(t *testing.T) {
		progressService := &mocks.MockProgressService{
			Snapshot: &progresssvc.Snapshot{
				Stats: domain.UserStats{
					TotalXP:       250,
					Level:         3,
					CurrentStreak: 4,
					LongestStreak: 9,
				},
				CompletedLessons: 12,
				XPToNextLevel:    50,
			},
		}
		handler := NewProgressHandler(progressService)

		req := authenticatedRequest(t, http.MethodGet, "/progress", userID, nil, nil)
		w := httptest.NewRecorder()
		handler.GetProgress(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp progresssvc.Snapshot
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, 250, resp.Stats.TotalXP)
		assert.Equal(t, 12, resp.CompletedLessons)
		assert.Equal(t, 50, resp.XPToNextLevel)
	})

	t.Run("user not found", func(t *testing.T) {
		handler := NewProgressHandler(&mocks.MockProgressService{Err: store.ErrUserNotFound})

		req := authenticatedRequest(t, http.MethodGet, "/progress", userID, nil, nil)
		w := httptest.NewRecorder()
		handler.GetProgress(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		handler := NewProgressHandler(&mocks.MockProgressService{})

		req := httptest.NewRequest(http.MethodGet, "/progress", nil)
		w := httptest.NewRecorder()
		handler.GetProgress(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestListAchievementsHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	earnedAt := time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC)

	progressService := &mocks.MockProgressService{
		Achievements: []progresssvc.AchievementStatus{
			{
				Achievement: domain.Achievement{
					ID:   uuid.New(),
					Name: "First Steps",
					Conditions: []domain.AchievementCondition{
						domain.XPThreshold(100),
					},
				},
				Earned:   true,
				EarnedAt: &earnedAt,
			},
			{
				Achievement: domain.Achievement{
					ID:   uuid.New(),
					Name: "Week Warrior",
					Conditions: []domain.AchievementCondition{
						domain.StreakThreshold(7),
					},
				},
				Earned: false,
			},
		},
	}
	handler := NewProgressHandler(progressService)

	req := authenticatedRequest(t, http.MethodGet, "/achievements", userID, nil, nil)
	w := httptest.NewRecorder()
	handler.ListAchievements(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []progresssvc.AchievementStatus
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "First Steps", resp[0].Achievement.Name)
	assert.True(t, resp[0].Earned)
	require.NotNil(t, resp[0].EarnedAt)
	assert.Equal(t, earnedAt, resp[0].EarnedAt.UTC())
	assert.False(t, resp[1].Earned)
	assert.Nil(t, resp[1].EarnedAt)
}
