package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"
)

// ErrSessionNotFound is returned when no live session matches the token
// hash. An expired session is reported the same way as a missing one.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines the operations for the session table backing
// bearer-token logins. Tokens are stored hashed, never in the clear.
type SessionRepository interface {
	// Create persists a new session row.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves the live session for a token hash.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteByTokenHash removes the session for a token hash, if present.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteExpired removes every expired session and reports how many.
	DeleteExpired(ctx context.Context) (int, error)
}
