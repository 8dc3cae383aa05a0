package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MarketplaceHandler holds dependencies for the aggregated storefront handlers.
type MarketplaceHandler struct {
	uc     usecase.MarketplaceUsecase
	logger *slog.Logger
}

// NewMarketplaceHandler is the constructor for MarketplaceHandler, injected by Fx.
func NewMarketplaceHandler(uc usecase.MarketplaceUsecase, logger *slog.Logger) *MarketplaceHandler {
	return &MarketplaceHandler{
		uc:     uc,
		logger: logger,
	}
}

// Listings returns the public marketplace view across all sellers.
func (h *MarketplaceHandler) Listings(c echo.Context) error {
	listings, err := h.uc.Listings(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "Listings retrieved successfully")
}

// MyListings returns the caller's own products for the seller dashboard.
func (h *MarketplaceHandler) MyListings(c echo.Context) error {
	sellerID, err := currentSellerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	products, err := h.uc.SellerListings(c.Request().Context(), sellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Listings retrieved successfully")
}
