package entity

import "strings"

// LogisticsProvider is a static shipping partner with city coverage and a
// flat base fee. Providers are immutable for the process lifetime.
type LogisticsProvider struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	AllCities   bool     `json:"all_cities"`       // Sentinel coverage: the provider serves every city.
	Cities      []string `json:"cities,omitempty"` // Served city names when AllCities is false.
	BaseFeeINR  float64  `json:"base_fee_inr"`     // Non-negative flat delivery fee.
}

// ServesCity reports whether the provider covers the given city.
// Matching is case-insensitive; an all-city provider covers everything.
func (p *LogisticsProvider) ServesCity(city string) bool {
	if p.AllCities {
		return true
	}
	for _, c := range p.Cities {
		if strings.EqualFold(c, city) {
			return true
		}
	}

	return false
}

// PricingConstants are the static pricing figures the storefront renders
// alongside listings. They never change while the process is running.
type PricingConstants struct {
	Currency              string  `json:"currency"`
	DefaultDeliveryFeeINR float64 `json:"default_delivery_fee_inr"` // Shown when a product has no delivery partner.
	FreeDeliveryAboveINR  float64 `json:"free_delivery_above_inr"`
}
