package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	Name              string
	Description       string
	Price             float64
	Inventory         int
	ImageURL          string
	DeliveryPartnerID string // Optional; must resolve in the logistics registry when set.
}

// UpdateProductInput carries a partial update. Nil fields keep their prior
// values; a non-nil empty DeliveryPartnerID clears the partner reference.
type UpdateProductInput struct {
	Name              *string
	Description       *string
	Price             *float64
	Inventory         *int
	ImageURL          *string
	DeliveryPartnerID *string
}

// CatalogUsecase defines the seller-scoped product operations. Every call
// takes the already-resolved seller identity; ownership is enforced on all
// mutations.
type CatalogUsecase interface {
	// Create validates the fields and inserts a new product owned by the seller.
	Create(ctx context.Context, sellerID uuid.UUID, input *CreateProductInput) (*entity.Product, error)

	// ListForSeller returns the seller's products in insertion order.
	ListForSeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error)

	// Update applies a partial update to a product the seller owns.
	Update(ctx context.Context, sellerID, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// Delete removes a product the seller owns.
	Delete(ctx context.Context, sellerID, productID uuid.UUID) error
}
