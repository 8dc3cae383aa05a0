package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// logisticsService implements the LogisticsUsecase interface. It is a thin
// read-only facade over the static registry.
type logisticsService struct {
	registry repository.LogisticsRegistry
	logger   *slog.Logger
}

// LogisticsServiceParams holds dependencies for logisticsService, injected by Fx.
type LogisticsServiceParams struct {
	fx.In

	Registry repository.LogisticsRegistry
	Logger   *slog.Logger
}

// NewLogisticsService is the constructor for logisticsService.
func NewLogisticsService(params LogisticsServiceParams) usecase.LogisticsUsecase {
	return &logisticsService{
		registry: params.Registry,
		logger:   params.Logger,
	}
}

func (srv *logisticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProviders returns providers covering the given city.
func (srv *logisticsService) ListProviders(ctx context.Context, cityFilter string) ([]*entity.LogisticsProvider, error) {
	srv.log(ctx).Debug("Listing logistics providers", slog.String("city", cityFilter))

	providers, err := srv.registry.ListProviders(ctx, cityFilter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list providers")
	}

	return providers, nil
}

// Pricing returns the static pricing constants.
func (srv *logisticsService) Pricing(_ context.Context) (entity.PricingConstants, error) {
	return srv.registry.Pricing(), nil
}
