package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/lingokit/lingo-api/internal/api/shared"
	"github.com/lingokit/lingo-api/internal/domain"
	engine "github.com/lingokit/lingo-api/internal/domain/progress"
	"github.com/lingokit/lingo-api/internal/service"
	"github.com/lingokit/lingo-api/internal/service/auth"
	progresssvc "github.com/lingokit/lingo-api/internal/service/progress"
	"github.com/lingokit/lingo-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
// Unknown errors default to 500 so internal details never drive the
// response shape.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, progresssvc.ErrSessionNotOwned):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, progresssvc.ErrSessionNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return http.StatusConflict

	case errors.Is(err, progresssvc.ErrSessionCompleted),
		errors.Is(err, progresssvc.ErrItemAlreadyAnswered):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, progresssvc.ErrItemNotInSession),
		errors.Is(err, engine.ErrClockSkew),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidLessonScore),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the
// error. Internal error text never reaches the client.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid credentials"

	// Authorization errors
	case errors.Is(err, progresssvc.ErrSessionNotOwned):
		return "You do not own this practice session"

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrVocabularyNotFound):
		return "Vocabulary item not found"

	case errors.Is(err, store.ErrLessonNotFound):
		return "Lesson not found"

	case errors.Is(err, store.ErrAchievementNotFound):
		return "Achievement not found"

	case errors.Is(err, progresssvc.ErrSessionNotFound):
		return "Practice session not found"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, progresssvc.ErrSessionCompleted):
		return "Practice session is already completed"

	case errors.Is(err, progresssvc.ErrItemAlreadyAnswered):
		return "Vocabulary item was already answered in this session"

	// Bad request errors
	case errors.Is(err, progresssvc.ErrItemNotInSession):
		return "Vocabulary item is not part of this session"

	case errors.Is(err, engine.ErrClockSkew):
		return "Recorded activity is ahead of the server clock"

	case errors.Is(err, domain.ErrInvalidLessonScore):
		return "Score must be between 0 and 100"

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidInput):
		return "Invalid request data"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid identifier format"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes an error response using the standard status and
// message mapping. An explicit userMessage overrides the mapped message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}

// SanitizeValidationError converts a validator error into a
// user-friendly message without echoing submitted values back.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example: "Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, validationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "uuid":
		return "invalid identifier"
	default:
		return "validation failed"
	}
}
