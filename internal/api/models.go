package api

import (
	"github.com/google/uuid"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// Token is the JWT used for API authorization
	Token string `json:"token"`
}

// StartSessionRequest defines the payload for opening a practice session.
// A zero or omitted limit falls back to the configured default batch size.
type StartSessionRequest struct {
	LanguageID uuid.UUID `json:"language_id" validate:"required"`
	Limit      int       `json:"limit"       validate:"omitempty,min=1"`
}

// SubmitAnswerRequest defines the payload for answering a vocabulary
// item inside a session. Correct is a pointer so that an explicit false
// still passes required validation.
type SubmitAnswerRequest struct {
	VocabularyID uuid.UUID `json:"vocabulary_id" validate:"required"`
	Correct      *bool     `json:"correct"       validate:"required"`
}

// CompleteLessonRequest defines the payload for recording a lesson
// completion.
type CompleteLessonRequest struct {
	Score            int `json:"score"              validate:"min=0,max=100"`
	TimeSpentSeconds int `json:"time_spent_seconds" validate:"min=0"`
}
