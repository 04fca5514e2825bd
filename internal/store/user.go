package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/lingokit/lingo-api/internal/domain"
)

// UserStore defines the interface for user data persistence, covering
// both the authentication identity and the cached progress aggregates
// stored on the users row.
type UserStore interface {
	// Create saves a new user to the store.
	// The user's password must already be hashed by the caller.
	// Returns ErrEmailExists if the email is already in use.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if no user has that email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdateStats overwrites the cached stats columns (total XP, level,
	// current and longest streak) for the given user in a single write.
	// Returns ErrUserNotFound if the user does not exist.
	UpdateStats(ctx context.Context, userID uuid.UUID, stats domain.UserStats) error

	// WithTx returns a new UserStore instance that uses the provided transaction.
	// The transaction is created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) UserStore
}
