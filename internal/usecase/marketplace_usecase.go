package usecase

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// UnknownSellerName is the fallback shown when a product's seller cannot be
// resolved. It should not occur while sellers are never deleted.
const UnknownSellerName = "Unknown"

// Listing is one marketplace entry: a product joined with its seller's
// display name and, when a delivery partner is set, the partner's name and
// base fee. Partner fields are null when the product has no partner.
type Listing struct {
	ProductID           uuid.UUID `json:"product_id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	Price               float64   `json:"price"`
	Inventory           int       `json:"inventory"`
	ImageURL            string    `json:"image_url,omitempty"`
	SellerID            uuid.UUID `json:"seller_id"`
	SellerName          string    `json:"seller_name"`
	DeliveryPartnerID   *string   `json:"delivery_partner_id"`
	DeliveryPartnerName *string   `json:"delivery_partner_name"`
	DeliveryFeeINR      *float64  `json:"delivery_fee_inr"`
	CreatedAt           time.Time `json:"created_at"`
}

// MarketplaceUsecase composes the stores into read-only aggregated views.
// It mutates nothing and raises no new error kinds.
type MarketplaceUsecase interface {
	// Listings materializes the public marketplace view: one enriched
	// listing per product, in store iteration order.
	Listings(ctx context.Context) ([]*Listing, error)

	// SellerListings is the seller's private dashboard view.
	SellerListings(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error)
}
