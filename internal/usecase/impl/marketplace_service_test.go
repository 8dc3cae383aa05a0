package impl

import (
	"context"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketplaceService_Listings_Enrichment(t *testing.T) {
	fx := createTestServices(t)
	asha := registerSeller(t, fx, "Asha Traders", "asha@example.com")
	binod := registerSeller(t, fx, "Binod Crafts", "binod@example.com")

	_, err := fx.catalog.Create(context.Background(), asha.ID, &usecase.CreateProductInput{
		Name:              "Clay Teapot",
		Price:             649,
		Inventory:         12,
		DeliveryPartnerID: "lp-metromile",
	})
	require.NoError(t, err)
	_, err = fx.catalog.Create(context.Background(), binod.ID, &usecase.CreateProductInput{
		Name:  "Cane Basket",
		Price: 299,
	})
	require.NoError(t, err)

	listings, err := fx.marketplace.Listings(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 2)

	teapot := listings[0]
	assert.Equal(t, "Clay Teapot", teapot.Name)
	assert.Equal(t, "Asha Traders", teapot.SellerName)
	require.NotNil(t, teapot.DeliveryPartnerID)
	assert.Equal(t, "lp-metromile", *teapot.DeliveryPartnerID)
	require.NotNil(t, teapot.DeliveryPartnerName)
	assert.Equal(t, "MetroMile", *teapot.DeliveryPartnerName)
	require.NotNil(t, teapot.DeliveryFeeINR)
	assert.Equal(t, 35.0, *teapot.DeliveryFeeINR)

	basket := listings[1]
	assert.Equal(t, "Cane Basket", basket.Name)
	assert.Equal(t, "Binod Crafts", basket.SellerName)
	assert.Nil(t, basket.DeliveryPartnerID)
	assert.Nil(t, basket.DeliveryPartnerName)
	assert.Nil(t, basket.DeliveryFeeINR)
}

func TestMarketplaceService_Listings_Empty(t *testing.T) {
	fx := createTestServices(t)

	listings, err := fx.marketplace.Listings(context.Background())

	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestMarketplaceService_Listings_UnknownSellerFallback(t *testing.T) {
	fx := createTestServices(t)

	// Seed a product directly with a seller the identity store never saw.
	err := fx.productRepo.Create(context.Background(), &entity.Product{
		ID:        uuid.New(),
		SellerID:  uuid.New(),
		Name:      "Orphan Lamp",
		Price:     120,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	listings, err := fx.marketplace.Listings(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, usecase.UnknownSellerName, listings[0].SellerName)
}

func TestMarketplaceService_Listings_DanglingPartnerDegrades(t *testing.T) {
	fx := createTestServices(t)
	seller := registerSeller(t, fx, "Asha Traders", "asha@example.com")

	// A partner id that no longer resolves must not break the listing.
	err := fx.productRepo.Create(context.Background(), &entity.Product{
		ID:                uuid.New(),
		SellerID:          seller.ID,
		Name:              "Teapot",
		Price:             10,
		DeliveryPartnerID: "lp-retired",
		CreatedAt:         time.Now(),
	})
	require.NoError(t, err)

	listings, err := fx.marketplace.Listings(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Nil(t, listings[0].DeliveryPartnerID)
	assert.Nil(t, listings[0].DeliveryFeeINR)
}

func TestMarketplaceService_SellerListings(t *testing.T) {
	fx := createTestServices(t)
	asha := registerSeller(t, fx, "Asha Traders", "asha@example.com")
	binod := registerSeller(t, fx, "Binod Crafts", "binod@example.com")

	_, err := fx.catalog.Create(context.Background(), asha.ID, &usecase.CreateProductInput{Name: "Teapot", Price: 10})
	require.NoError(t, err)
	_, err = fx.catalog.Create(context.Background(), binod.ID, &usecase.CreateProductInput{Name: "Basket", Price: 20})
	require.NoError(t, err)

	products, err := fx.marketplace.SellerListings(context.Background(), asha.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Teapot", products[0].Name)
}

func TestMarketplace_EndToEndFlow(t *testing.T) {
	fx := createTestServices(t)

	// Register, login, resolve, publish, then observe on the marketplace.
	seller := registerSeller(t, fx, "Asha Traders", "asha@example.com")
	token := loginSeller(t, fx, "asha@example.com")

	resolved, err := fx.identity.Resolve(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, seller.ID, resolved.ID)

	_, err = fx.catalog.Create(context.Background(), resolved.ID, &usecase.CreateProductInput{
		Name:              "Clay Teapot",
		Price:             649,
		Inventory:         3,
		DeliveryPartnerID: "lp-swiftship",
	})
	require.NoError(t, err)

	listings, err := fx.marketplace.Listings(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Asha Traders", listings[0].SellerName)
	require.NotNil(t, listings[0].DeliveryFeeINR)
	assert.Equal(t, 49.0, *listings[0].DeliveryFeeINR)
}
