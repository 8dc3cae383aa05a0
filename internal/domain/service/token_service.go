package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by a session token.
type Claims struct {
	SellerID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session
// tokens. Tokens are opaque to callers and decoupled from the seller's
// primary key; the session store keeps only their hashes.
type TokenService interface {
	// Generate creates a new signed session token for a seller.
	Generate(sellerID uuid.UUID) (token string, err error)

	// Validate checks a token's signature and expiry and returns its claims.
	Validate(token string) (*Claims, error)

	// HashToken returns the digest under which a token is stored.
	HashToken(token string) string

	// SessionTTL returns the configured session lifetime.
	SessionTTL() time.Duration
}
