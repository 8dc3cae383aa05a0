package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when no product matches the lookup. A
// product owned by a different seller is indistinguishable from a missing
// one on every owner-scoped operation.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product storage.
// All mutating operations are owner-scoped; the ownership check and the
// mutation are atomic inside the store.
type ProductRepository interface {
	// Create persists a new product at the end of the iteration order.
	Create(ctx context.Context, product *entity.Product) error

	// FindForSeller retrieves a product by id, scoped to the owning seller.
	FindForSeller(ctx context.Context, sellerID, productID uuid.UUID) (*entity.Product, error)

	// ListBySeller returns the seller's products in insertion order.
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error)

	// ListAll returns every product in the store in insertion order.
	ListAll(ctx context.Context) ([]*entity.Product, error)

	// Update replaces the stored record matching the product's id and
	// seller id. Fails with ErrProductNotFound when no such record exists.
	Update(ctx context.Context, product *entity.Product) error

	// DeleteForSeller removes a product, scoped to the owning seller.
	DeleteForSeller(ctx context.Context, sellerID, productID uuid.UUID) error
}
