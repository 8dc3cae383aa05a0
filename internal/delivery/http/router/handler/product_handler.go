package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for seller catalog handlers.
type ProductHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// looseFloat accepts a JSON number or a numeric string. Storefront clients
// send form values as strings.
type looseFloat float64

func (f *looseFloat) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)

	parsed, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return errors.Wrap(err, "not a number")
	}
	*f = looseFloat(parsed)

	return nil
}

// looseInt accepts a JSON number or a numeric string.
type looseInt int

func (i *looseInt) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)

	parsed, err := strconv.Atoi(string(data))
	if err != nil {
		return errors.Wrap(err, "not an integer")
	}
	*i = looseInt(parsed)

	return nil
}

// nullableString distinguishes an absent field from an explicit JSON null.
// Absence leaves the stored value untouched; null clears it.
type nullableString struct {
	present bool
	value   *string
}

func (s *nullableString) UnmarshalJSON(data []byte) error {
	s.present = true
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.Wrap(err, "not a string")
	}
	s.value = &v

	return nil
}

type createProductRequest struct {
	Name              string      `json:"name" validate:"required"`
	Description       string      `json:"description"`
	Price             *looseFloat `json:"price" validate:"required,gte=0"`
	Inventory         *looseInt   `json:"inventory" validate:"required,gte=0"`
	ImageURL          string      `json:"image_url"`
	DeliveryPartnerID string      `json:"delivery_partner_id"`
}

type updateProductRequest struct {
	Name              *string        `json:"name"`
	Description       *string        `json:"description"`
	Price             *looseFloat    `json:"price" validate:"omitempty,gte=0"`
	Inventory         *looseInt      `json:"inventory" validate:"omitempty,gte=0"`
	ImageURL          *string        `json:"image_url"`
	DeliveryPartnerID nullableString `json:"delivery_partner_id"`
}

// List returns the caller's products.
func (h *ProductHandler) List(c echo.Context) error {
	sellerID, err := currentSellerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	products, err := h.uc.ListForSeller(c.Request().Context(), sellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// Create adds a product to the caller's catalog.
func (h *ProductHandler) Create(c echo.Context) error {
	sellerID, err := currentSellerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.Create(c.Request().Context(), sellerID, &usecase.CreateProductInput{
		Name:              req.Name,
		Description:       req.Description,
		Price:             float64(*req.Price),
		Inventory:         int(*req.Inventory),
		ImageURL:          req.ImageURL,
		DeliveryPartnerID: req.DeliveryPartnerID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// Update applies a partial update to one of the caller's products.
func (h *ProductHandler) Update(c echo.Context) error {
	sellerID, err := currentSellerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	productID, err := productID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if req.Price != nil {
		price := float64(*req.Price)
		input.Price = &price
	}
	if req.Inventory != nil {
		inventory := int(*req.Inventory)
		input.Inventory = &inventory
	}
	if req.DeliveryPartnerID.present {
		partner := ""
		if req.DeliveryPartnerID.value != nil {
			partner = *req.DeliveryPartnerID.value
		}
		input.DeliveryPartnerID = &partner
	}

	product, err := h.uc.Update(c.Request().Context(), sellerID, productID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// Delete removes one of the caller's products.
func (h *ProductHandler) Delete(c echo.Context) error {
	sellerID, err := currentSellerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	productID, err := productID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), sellerID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted"}, "Product deleted successfully")
}

// currentSellerID reads the seller identity the auth middleware stored on the context.
func currentSellerID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get(middleware.KeySellerID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrSessionInvalid.WithDetails("No seller resolved for this session")
	}

	return id, nil
}

// productID parses the :id path parameter.
func productID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("Product ID must be a UUID")
	}

	return id, nil
}
