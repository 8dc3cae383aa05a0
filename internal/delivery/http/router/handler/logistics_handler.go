package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LogisticsHandler holds dependencies for the public logistics handlers.
type LogisticsHandler struct {
	uc     usecase.LogisticsUsecase
	logger *slog.Logger
}

// NewLogisticsHandler is the constructor for LogisticsHandler, injected by Fx.
func NewLogisticsHandler(uc usecase.LogisticsUsecase, logger *slog.Logger) *LogisticsHandler {
	return &LogisticsHandler{
		uc:     uc,
		logger: logger,
	}
}

// Providers lists logistics providers covering the city in the query string.
// Without a city only the all-city providers are returned.
func (h *LogisticsHandler) Providers(c echo.Context) error {
	city := c.QueryParam("city")

	providers, err := h.uc.ListProviders(c.Request().Context(), city)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, providers, "Providers retrieved successfully")
}

// Pricing returns the platform delivery pricing constants.
func (h *LogisticsHandler) Pricing(c echo.Context) error {
	pricing, err := h.uc.Pricing(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pricing, "Pricing retrieved successfully")
}
