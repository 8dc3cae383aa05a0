package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is a live login for a seller. The bearer token itself is never
// stored; only its SHA-256 hash is, so a leaked store cannot be replayed.
type Session struct {
	ID        uuid.UUID
	SellerID  uuid.UUID
	TokenHash string // SHA-256 hex digest of the issued session token.
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Active reports whether the session is still usable at the given instant.
func (s *Session) Active(now time.Time) bool {
	return s.ExpiresAt.After(now)
}
