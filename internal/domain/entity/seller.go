// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Subscription plans a seller can be registered under.
const (
	PlanMonthly = "monthly"
	PlanYearly  = "yearly"
)

// Seller is a registered tenant of the marketplace. A seller owns zero or
// more products; no two sellers share an email at any point in time.
type Seller struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`       // Display name shown on marketplace listings.
	Email      string    `json:"email"`      // Login identifier, unique across all sellers (case-sensitive).
	SecretHash string    `json:"-"`          // Salted bcrypt hash of the login secret. Never serialized.
	Plan       string    `json:"plan"`       // Subscription plan tag, defaults to PlanMonthly.
	CreatedAt  time.Time `json:"created_at"` // Timestamp of registration. Sellers are immutable afterwards.
}
