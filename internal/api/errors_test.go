package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	engine "github.com/lingokit/lingo-api/internal/domain/progress"
	"github.com/lingokit/lingo-api/internal/service"
	"github.com/lingokit/lingo-api/internal/service/auth"
	progresssvc "github.com/lingokit/lingo-api/internal/service/progress"
	"github.com/lingokit/lingo-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"session not owned", progresssvc.ErrSessionNotOwned, http.StatusForbidden},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"lesson not found", store.ErrLessonNotFound, http.StatusNotFound},
		{"session not found", progresssvc.ErrSessionNotFound, http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"session completed", progresssvc.ErrSessionCompleted, http.StatusConflict},
		{"item already answered", progresssvc.ErrItemAlreadyAnswered, http.StatusConflict},
		{"item not in session", progresssvc.ErrItemNotInSession, http.StatusBadRequest},
		{"clock skew", engine.ErrClockSkew, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{
			"wrapped not found",
			fmt.Errorf("lookup: %w", store.ErrVocabularyNotFound),
			http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"expired token", auth.ErrExpiredToken, "Token expired"},
		{"invalid credentials", service.ErrInvalidCredentials, "Invalid credentials"},
		{"session not owned", progresssvc.ErrSessionNotOwned, "You do not own this practice session"},
		{"lesson not found", store.ErrLessonNotFound, "Lesson not found"},
		{"email exists", store.ErrEmailExists, "Email already exists"},
		{
			"internal details stay hidden",
			errors.New("pq: connection refused to 10.0.0.5:5432"),
			"An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	err := errors.New(
		"Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag",
	)
	got := SanitizeValidationError(err)
	assert.Equal(t, "Invalid Email: required field", got)

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("something else")))
}
