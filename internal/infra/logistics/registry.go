// Package logistics provides the static shipping-partner registry.
package logistics

import (
	"context"
	"log/slog"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"go.uber.org/fx"
)

// defaultProviders seeds the registry when no logistics section is
// configured. Fees are flat INR amounts per delivery.
var defaultProviders = []*entity.LogisticsProvider{
	{
		ID:          "lp-swiftship",
		Name:        "SwiftShip",
		Description: "Pan-India express delivery network",
		AllCities:   true,
		BaseFeeINR:  49,
	},
	{
		ID:          "lp-metromile",
		Name:        "MetroMile",
		Description: "Metro-city same-day courier",
		Cities:      []string{"Bangalore", "Mumbai", "Delhi"},
		BaseFeeINR:  35,
	},
	{
		ID:          "lp-cityexpress",
		Name:        "CityExpress",
		Description: "South-India surface logistics",
		Cities:      []string{"Bangalore", "Chennai", "Hyderabad"},
		BaseFeeINR:  30,
	},
	{
		ID:          "lp-panindia",
		Name:        "PanIndia Cargo",
		Description: "Economy shipping to every pincode",
		AllCities:   true,
		BaseFeeINR:  59,
	},
}

var defaultPricing = entity.PricingConstants{
	Currency:              "INR",
	DefaultDeliveryFeeINR: 40,
	FreeDeliveryAboveINR:  499,
}

// Params holds dependencies for the registry, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// registry is the immutable provider table. It is populated once at
// construction and never mutated afterwards, so reads need no locking.
type registry struct {
	providers []*entity.LogisticsProvider
	byID      map[string]*entity.LogisticsProvider
	pricing   entity.PricingConstants
}

// NewRegistry builds the provider registry from config, falling back to the
// built-in seed.
func NewRegistry(params Params) repository.LogisticsRegistry {
	providers := defaultProviders
	pricing := defaultPricing

	if params.Config.Logistics != nil {
		if len(params.Config.Logistics.Providers) > 0 {
			providers = make([]*entity.LogisticsProvider, 0, len(params.Config.Logistics.Providers))
			for _, seed := range params.Config.Logistics.Providers {
				providers = append(providers, &entity.LogisticsProvider{
					ID:          seed.ID,
					Name:        seed.Name,
					Description: seed.Description,
					AllCities:   seed.AllCities,
					Cities:      seed.Cities,
					BaseFeeINR:  seed.BaseFeeINR,
				})
			}
		}
		if params.Config.Logistics.Pricing != nil {
			pricing = entity.PricingConstants{
				Currency:              params.Config.Logistics.Pricing.Currency,
				DefaultDeliveryFeeINR: params.Config.Logistics.Pricing.DefaultDeliveryFeeINR,
				FreeDeliveryAboveINR:  params.Config.Logistics.Pricing.FreeDeliveryAboveINR,
			}
		}
	}

	byID := make(map[string]*entity.LogisticsProvider, len(providers))
	for _, provider := range providers {
		byID[provider.ID] = provider
	}

	params.Logger.Info("Logistics registry initialized", slog.Int("providers", len(providers)))

	return &registry{
		providers: providers,
		byID:      byID,
		pricing:   pricing,
	}
}

// ListProviders returns providers matching the coverage filter. An empty
// filter returns only all-city providers; restricted providers are excluded
// rather than everything being returned. Callers rely on this, so it is
// preserved as-is.
func (r *registry) ListProviders(_ context.Context, cityFilter string) ([]*entity.LogisticsProvider, error) {
	matched := make([]*entity.LogisticsProvider, 0, len(r.providers))
	for _, provider := range r.providers {
		if provider.AllCities || (cityFilter != "" && provider.ServesCity(cityFilter)) {
			matched = append(matched, provider)
		}
	}

	return matched, nil
}

// GetProvider retrieves a provider by id. Absence is a recoverable lookup
// failure used for reference validation.
func (r *registry) GetProvider(_ context.Context, id string) (*entity.LogisticsProvider, error) {
	provider, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrProviderNotFound
	}

	return provider, nil
}

// Pricing returns the static pricing constants.
func (r *registry) Pricing() entity.PricingConstants {
	return r.pricing
}
