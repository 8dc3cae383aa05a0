// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new seller.
type RegisterInput struct {
	Name   string
	Email  string
	Secret string
	Plan   string // Optional; defaults to entity.PlanMonthly.
}

// LoginInput defines the data required for a seller to log in.
type LoginInput struct {
	Email  string
	Secret string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created seller.
type RegisterOutput struct {
	Seller *entity.Seller
}

// LoginOutput returns the issued session token after a successful login.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	Seller    *entity.Seller
}

// IdentityUsecase defines the interface for seller identity operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type IdentityUsecase interface {
	// Register creates a new seller. Registration is append-only; no two
	// sellers ever share an email.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Resolve maps a bearer token to its seller. Failure means the caller
	// is unauthenticated, never a fault.
	Resolve(ctx context.Context, token string) (*entity.Seller, error)

	// Logout invalidates the session behind a token. Idempotent.
	Logout(ctx context.Context, token string) error
}
