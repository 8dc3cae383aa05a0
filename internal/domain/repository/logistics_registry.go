package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"
)

// ErrProviderNotFound is a recoverable lookup failure; callers use it to
// validate delivery-partner references, not to signal a fault.
var ErrProviderNotFound = errors.New("logistics provider not found")

// LogisticsRegistry is the read-only registry of shipping partners. The
// registry contents are static for the process lifetime.
type LogisticsRegistry interface {
	// ListProviders returns providers matching the coverage filter. An
	// empty filter returns only providers serving all cities; a non-empty
	// filter additionally matches listed cities case-insensitively. An
	// empty result is valid.
	ListProviders(ctx context.Context, cityFilter string) ([]*entity.LogisticsProvider, error)

	// GetProvider retrieves a provider by id.
	GetProvider(ctx context.Context, id string) (*entity.LogisticsProvider, error)

	// Pricing returns the static pricing constants.
	Pricing() entity.PricingConstants
}
