package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ActivityEvent validation errors
var (
	ErrEmptyActivityUserID    = errors.New("activity event user ID cannot be empty")
	ErrZeroActivityCompletion = errors.New("activity event completion time cannot be zero")
)

// ActivityEvent records one completed lesson or practice session.
// Events are append-only: the streak tracker reads the most recent one
// to decide whether today extends, repeats, or restarts the streak.
type ActivityEvent struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	CompletedAt time.Time `json:"completed_at"`
}

// NewActivityEvent creates an activity event for the given user at the
// given completion time.
func NewActivityEvent(userID uuid.UUID, completedAt time.Time) (*ActivityEvent, error) {
	event := &ActivityEvent{
		ID:          uuid.New(),
		UserID:      userID,
		CompletedAt: completedAt,
	}

	if err := event.Validate(); err != nil {
		return nil, err
	}

	return event, nil
}

// Validate checks if the ActivityEvent has valid data.
func (e *ActivityEvent) Validate() error {
	if e.UserID == uuid.Nil {
		return ErrEmptyActivityUserID
	}

	if e.CompletedAt.IsZero() {
		return ErrZeroActivityCompletion
	}

	return nil
}
