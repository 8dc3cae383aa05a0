package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item owned by exactly one seller. Only the owning
// seller may mutate or delete it.
type Product struct {
	ID                uuid.UUID `json:"id"`
	SellerID          uuid.UUID `json:"seller_id"`                     // Owning seller, a foreign reference.
	Name              string    `json:"name"`                          // Required, non-empty.
	Description       string    `json:"description"`                   //
	Price             float64   `json:"price"`                         // Non-negative, currency-agnostic unit.
	Inventory         int       `json:"inventory"`                     // Non-negative stock count.
	ImageURL          string    `json:"image_url,omitempty"`           // Optional image reference.
	DeliveryPartnerID string    `json:"delivery_partner_id,omitempty"` // Optional logistics provider id; must resolve when set.
	CreatedAt         time.Time `json:"created_at"`
}
