package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// marketplaceService implements the MarketplaceUsecase interface. It joins
// products, sellers and logistics providers into enriched listings without
// mutating any store.
type marketplaceService struct {
	productRepo repository.ProductRepository
	sellerRepo  repository.SellerRepository
	registry    repository.LogisticsRegistry
	logger      *slog.Logger
}

// MarketplaceServiceParams holds dependencies for marketplaceService, injected by Fx.
type MarketplaceServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	SellerRepo  repository.SellerRepository
	Registry    repository.LogisticsRegistry
	Logger      *slog.Logger
}

// NewMarketplaceService is the constructor for marketplaceService.
func NewMarketplaceService(params MarketplaceServiceParams) usecase.MarketplaceUsecase {
	return &marketplaceService{
		productRepo: params.ProductRepo,
		sellerRepo:  params.SellerRepo,
		registry:    params.Registry,
		logger:      params.Logger,
	}
}

func (srv *marketplaceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Listings materializes the public marketplace view. The entire catalog is
// joined per call; there is no pagination, filtering or sorting here.
func (srv *marketplaceService) Listings(ctx context.Context) ([]*usecase.Listing, error) {
	products, err := srv.productRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	// Sellers repeat across products; resolve each one once per call.
	sellerNames := make(map[uuid.UUID]string)

	listings := make([]*usecase.Listing, 0, len(products))
	for _, product := range products {
		listings = append(listings, srv.enrich(ctx, product, sellerNames))
	}

	srv.log(ctx).Debug("Marketplace view materialized", slog.Int("listings", len(listings)))

	return listings, nil
}

// SellerListings is the seller's private dashboard view; it delegates to
// the product store.
func (srv *marketplaceService) SellerListings(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller products")
	}

	return products, nil
}

// enrich joins one product with its seller name and delivery partner data.
// Dangling references degrade to sentinel/null fields, never to errors.
func (srv *marketplaceService) enrich(ctx context.Context, product *entity.Product, sellerNames map[uuid.UUID]string) *usecase.Listing {
	sellerName, ok := sellerNames[product.SellerID]
	if !ok {
		sellerName = usecase.UnknownSellerName
		if seller, err := srv.sellerRepo.FindByID(ctx, product.SellerID); err == nil {
			sellerName = seller.Name
		} else {
			srv.log(ctx).Warn("Product references unknown seller",
				slog.Any("productID", product.ID), slog.Any("sellerID", product.SellerID))
		}
		sellerNames[product.SellerID] = sellerName
	}

	listing := &usecase.Listing{
		ProductID:   product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Inventory:   product.Inventory,
		ImageURL:    product.ImageURL,
		SellerID:    product.SellerID,
		SellerName:  sellerName,
		CreatedAt:   product.CreatedAt,
	}

	if product.DeliveryPartnerID == "" {
		return listing
	}

	provider, err := srv.registry.GetProvider(ctx, product.DeliveryPartnerID)
	if err != nil {
		srv.log(ctx).Warn("Product references unknown delivery partner",
			slog.Any("productID", product.ID), slog.String("partnerID", product.DeliveryPartnerID))

		return listing
	}

	partnerID := provider.ID
	partnerName := provider.Name
	fee := provider.BaseFeeINR
	listing.DeliveryPartnerID = &partnerID
	listing.DeliveryPartnerName = &partnerName
	listing.DeliveryFeeINR = &fee

	return listing
}
