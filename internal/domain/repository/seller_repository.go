// Package repository defines the interfaces for the storage layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer; stores are constructed at startup and can
// be swapped for a persistent backend without touching the usecases.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSellerNotFound is returned when no seller matches the lookup.
var ErrSellerNotFound = errors.New("seller not found")

// ErrEmailTaken is returned by Create when another seller already holds the
// email. The check and the insert are atomic inside the store.
var ErrEmailTaken = errors.New("email already registered")

// SellerRepository defines the standard operations for seller storage.
// Sellers are append-only; there is no update or delete.
type SellerRepository interface {
	// Create persists a new seller. Fails with ErrEmailTaken when the email
	// is already registered (case-sensitive match as stored).
	Create(ctx context.Context, seller *entity.Seller) error

	// FindByID retrieves a single seller by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error)

	// FindByEmail retrieves a single seller by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Seller, error)
}
