package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// LogisticsUsecase exposes the read-only logistics registry to the
// delivery layer.
type LogisticsUsecase interface {
	// ListProviders returns providers covering the given city; an empty
	// filter returns only providers serving all cities.
	ListProviders(ctx context.Context, cityFilter string) ([]*entity.LogisticsProvider, error)

	// Pricing returns the static pricing constants.
	Pricing(ctx context.Context) (entity.PricingConstants, error)
}
