package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	registry    repository.LogisticsRegistry
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Registry    repository.LogisticsRegistry
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		registry:    params.Registry,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create validates the fields and inserts a new product owned by the caller.
func (srv *catalogService) Create(ctx context.Context, sellerID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	srv.log(ctx).Debug("Creating product", slog.Any("sellerID", sellerID), slog.String("name", input.Name))

	if input.Name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "product name is required")
	}
	if input.Price < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "price must be non-negative")
	}
	if input.Inventory < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "inventory must be non-negative")
	}

	if err := srv.validatePartner(ctx, input.DeliveryPartnerID); err != nil {
		return nil, err
	}

	newProduct := &entity.Product{
		ID:                uuid.New(),
		SellerID:          sellerID,
		Name:              input.Name,
		Description:       input.Description,
		Price:             input.Price,
		Inventory:         input.Inventory,
		ImageURL:          input.ImageURL,
		DeliveryPartnerID: input.DeliveryPartnerID,
		CreatedAt:         time.Now(),
	}

	if err := srv.productRepo.Create(ctx, newProduct); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Debug("Product created", slog.Any("productID", newProduct.ID))

	return newProduct, nil
}

// ListForSeller returns the caller's products in insertion order.
func (srv *catalogService) ListForSeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller products")
	}

	return products, nil
}

// Update applies a partial update to a product the caller owns. Ownership
// and existence are one combined check; a product owned by another seller
// is reported as not found.
func (srv *catalogService) Update(ctx context.Context, sellerID, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	srv.log(ctx).Debug("Updating product", slog.Any("sellerID", sellerID), slog.Any("productID", productID))

	product, err := srv.productRepo.FindForSeller(ctx, sellerID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "update failed")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "product name cannot be empty")
		}
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "price must be non-negative")
		}
		product.Price = *input.Price
	}
	if input.Inventory != nil {
		if *input.Inventory < 0 {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "inventory must be non-negative")
		}
		product.Inventory = *input.Inventory
	}
	if input.ImageURL != nil {
		product.ImageURL = *input.ImageURL
	}
	if input.DeliveryPartnerID != nil {
		// An empty value clears the partner; anything else must resolve.
		if err := srv.validatePartner(ctx, *input.DeliveryPartnerID); err != nil {
			return nil, err
		}
		product.DeliveryPartnerID = *input.DeliveryPartnerID
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "update failed")
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// Delete removes a product the caller owns, with the same ownership-or-not-
// found semantics as Update.
func (srv *catalogService) Delete(ctx context.Context, sellerID, productID uuid.UUID) error {
	srv.log(ctx).Debug("Deleting product", slog.Any("sellerID", sellerID), slog.Any("productID", productID))

	if err := srv.productRepo.DeleteForSeller(ctx, sellerID, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "delete failed")
		}

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

// validatePartner checks a delivery partner reference against the registry.
// Empty references are allowed; a set reference must resolve.
func (srv *catalogService) validatePartner(ctx context.Context, partnerID string) error {
	if partnerID == "" {
		return nil
	}

	if _, err := srv.registry.GetProvider(ctx, partnerID); err != nil {
		if errors.Is(err, repository.ErrProviderNotFound) {
			return errors.Wrap(domainerrors.ErrDeliveryPartnerInvalid, "unknown delivery partner "+partnerID)
		}

		return errors.Wrap(err, "failed to validate delivery partner")
	}

	return nil
}
