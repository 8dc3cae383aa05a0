package impl

import (
	"context"
	"testing"

	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_Create_Success(t *testing.T) {
	fx := createTestServices(t)
	seller := registerSeller(t, fx, "Asha Traders", "asha@example.com")

	product, err := fx.catalog.Create(context.Background(), seller.ID, &usecase.CreateProductInput{
		Name:        "Clay Teapot",
		Description: "Hand-thrown terracotta",
		Price:       649,
		Inventory:   12,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, seller.ID, product.SellerID)
	assert.Equal(t, "Clay Teapot", product.Name)
	assert.Empty(t, product.DeliveryPartnerID)
}

func TestCatalogService_Create_WithDeliveryPartner(t *testing.T) {
	fx := createTestServices(t)
	seller := registerSeller(t, fx, "Asha Traders", "asha@example.com")

	product, err := fx.catalog.Create(context.Background(), seller.ID, &usecase.CreateProductInput{
		Name:              "Clay Teapot",
		Price:             649,
		Inventory:         12,
		DeliveryPartnerID: "lp-swiftship",
	})

	require.NoError(t, err)
	assert.Equal(t, "lp-swiftship", product.DeliveryPartnerID)
}

func TestCatalogService_Create_UnknownDeliveryPartner(t *testing.T) {
	fx := createTestServices(t)
	seller := registerSeller(t, fx, "Asha Traders", "asha@example.com")

	_, err := fx.catalog.Create(context.Background(), seller.ID, &usecase.CreateProductInput{
		Name:              "Clay Teapot",
		Price:             649,
		DeliveryPartnerID: "lp-nope",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDeliveryPartnerInvalid))

	// Nothing was stored.
	products, err := fx.catalog.ListForSeller(context.Background(), seller.ID)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCatalogService_Create_Validation(t *testing.T) {
	fx := createTestServices(t)
	seller := registerSeller(t, fx, "Asha Traders", "asha@example.com")

	cases := []usecase.CreateProductInput{
		{Price: 10},
		{Name: "Negative Price", Price: -1},
		{Name: "Negative Inventory", Inventory: -5},
	}

	for _, input := range cases {
		_, err := fx.catalog.Create(context.Background(), seller.ID, &input)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	}
}

func TestCatalogService_ListForSeller_InsertionOrder(t *testing.T) {
	fx := createTestServices(t)
	seller := registerSeller(t, fx, "Asha Traders", "asha@example.com")

	names := []string{"Teapot", "Cup", "Saucer"}
	for _, name := range names {
		_, err := fx.catalog.Create(context.Background(), seller.ID, &usecase.CreateProductInput{Name: name, Price: 10})
		require.NoError(t, err)
	}

	products, err := fx.catalog.ListForSeller(context.Background(), seller.ID)
	require.NoError(t, err)
	require.Len(t, products, 3)
	for i, name := range names {
		assert.Equal(t, name, products[i].Name)
	}
}

func TestCatalogService_ListForSeller_OnlyOwnProducts(t *testing.T) {
	fx := createTestServices(t)
	asha := registerSeller(t, fx, "Asha Traders", "asha@example.com")
	binod := registerSeller(t, fx, "Binod Crafts", "binod@example.com")

	_, err := fx.catalog.Create(context.Background(), asha.ID, &usecase.CreateProductInput{Name: "Teapot", Price: 10})
	require.NoError(t, err)
	_, err = fx.catalog.Create(context.Background(), binod.ID, &usecase.CreateProductInput{Name: "Basket", Price: 20})
	require.NoError(t, err)

	products, err := fx.catalog.ListForSeller(context.Background(), asha.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Teapot", products[0].Name)
}

func TestCatalogService_Update_Partial(t *testing.T) {
	fx := createTestServices(t)
	seller := registerSeller(t, fx, "Asha Traders", "asha@example.com")

	product, err := fx.catalog.Create(context.Background(), seller.ID, &usecase.CreateProductInput{
		Name:        "Clay Teapot",
		Description: "Hand-thrown terracotta",
		Price:       649,
		Inventory:   12,
	})
	require.NoError(t, err)

	newPrice := 699.0
	updated, err := fx.catalog.Update(context.Background(), seller.ID, product.ID, &usecase.UpdateProductInput{
		Price: &newPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, 699.0, updated.Price)
	// Untouched fields keep their prior values.
	assert.Equal(t, "Clay Teapot", updated.Name)
	assert.Equal(t, "Hand-thrown terracotta", updated.Description)
	assert.Equal(t, 12, updated.Inventory)
}

func TestCatalogService_Update_SetAndClearPartner(t *testing.T) {
	fx := createTestServices(t)
	seller := registerSeller(t, fx, "Asha Traders", "asha@example.com")

	product, err := fx.catalog.Create(context.Background(), seller.ID, &usecase.CreateProductInput{Name: "Teapot", Price: 10})
	require.NoError(t, err)

	partner := "lp-metromile"
	updated, err := fx.catalog.Update(context.Background(), seller.ID, product.ID, &usecase.UpdateProductInput{
		DeliveryPartnerID: &partner,
	})
	require.NoError(t, err)
	assert.Equal(t, "lp-metromile", updated.DeliveryPartnerID)

	cleared := ""
	updated, err = fx.catalog.Update(context.Background(), seller.ID, product.ID, &usecase.UpdateProductInput{
		DeliveryPartnerID: &cleared,
	})
	require.NoError(t, err)
	assert.Empty(t, updated.DeliveryPartnerID)
}

func TestCatalogService_Update_UnknownPartner(t *testing.T) {
	fx := createTestServices(t)
	seller := registerSeller(t, fx, "Asha Traders", "asha@example.com")

	product, err := fx.catalog.Create(context.Background(), seller.ID, &usecase.CreateProductInput{Name: "Teapot", Price: 10})
	require.NoError(t, err)

	partner := "lp-nope"
	_, err = fx.catalog.Update(context.Background(), seller.ID, product.ID, &usecase.UpdateProductInput{
		DeliveryPartnerID: &partner,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrDeliveryPartnerInvalid))
}

func TestCatalogService_Update_Validation(t *testing.T) {
	fx := createTestServices(t)
	seller := registerSeller(t, fx, "Asha Traders", "asha@example.com")

	product, err := fx.catalog.Create(context.Background(), seller.ID, &usecase.CreateProductInput{Name: "Teapot", Price: 10})
	require.NoError(t, err)

	empty := ""
	_, err = fx.catalog.Update(context.Background(), seller.ID, product.ID, &usecase.UpdateProductInput{Name: &empty})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	negative := -1.0
	_, err = fx.catalog.Update(context.Background(), seller.ID, product.ID, &usecase.UpdateProductInput{Price: &negative})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCatalogService_Update_OtherSellersProduct(t *testing.T) {
	fx := createTestServices(t)
	asha := registerSeller(t, fx, "Asha Traders", "asha@example.com")
	binod := registerSeller(t, fx, "Binod Crafts", "binod@example.com")

	product, err := fx.catalog.Create(context.Background(), asha.ID, &usecase.CreateProductInput{Name: "Teapot", Price: 10})
	require.NoError(t, err)

	name := "Hijacked"
	_, err = fx.catalog.Update(context.Background(), binod.ID, product.ID, &usecase.UpdateProductInput{Name: &name})

	// Cross-tenant access reads as not-found, never as forbidden.
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_Update_UnknownProduct(t *testing.T) {
	fx := createTestServices(t)
	seller := registerSeller(t, fx, "Asha Traders", "asha@example.com")

	name := "Ghost"
	_, err := fx.catalog.Update(context.Background(), seller.ID, uuid.New(), &usecase.UpdateProductInput{Name: &name})

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_Delete_Success(t *testing.T) {
	fx := createTestServices(t)
	seller := registerSeller(t, fx, "Asha Traders", "asha@example.com")

	product, err := fx.catalog.Create(context.Background(), seller.ID, &usecase.CreateProductInput{Name: "Teapot", Price: 10})
	require.NoError(t, err)

	require.NoError(t, fx.catalog.Delete(context.Background(), seller.ID, product.ID))

	products, err := fx.catalog.ListForSeller(context.Background(), seller.ID)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCatalogService_Delete_OtherSellersProduct(t *testing.T) {
	fx := createTestServices(t)
	asha := registerSeller(t, fx, "Asha Traders", "asha@example.com")
	binod := registerSeller(t, fx, "Binod Crafts", "binod@example.com")

	product, err := fx.catalog.Create(context.Background(), asha.ID, &usecase.CreateProductInput{Name: "Teapot", Price: 10})
	require.NoError(t, err)

	err = fx.catalog.Delete(context.Background(), binod.ID, product.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))

	// Asha's product is untouched.
	products, err := fx.catalog.ListForSeller(context.Background(), asha.ID)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}
