package middleware

import (
	"strings"

	deliverycontext "bazaar/internal/delivery/context"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// KeySeller is the echo.Context key for the resolved seller entity.
	KeySeller = "seller"

	// KeySellerID is the echo.Context key for the resolved seller's ID.
	KeySellerID = "sellerID"
)

// AuthMiddleware resolves the bearer session token to a seller before any
// protected handler runs.
type AuthMiddleware struct {
	identityUC usecase.IdentityUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identityUC usecase.IdentityUsecase) *AuthMiddleware {
	return &AuthMiddleware{identityUC: identityUC}
}

// Authenticate validates the session token and stores the resolved seller on
// the context. Any failure maps to 401; the reason is never disclosed.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := BearerToken(c)
		if err != nil {
			return errors.WithStack(err)
		}

		seller, err := m.identityUC.Resolve(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		c.Set(KeySeller, seller)
		c.Set(KeySellerID, seller.ID)

		// Stamp the seller on the request-scoped logger for downstream calls.
		ctx := c.Request().Context()
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With("seller_id", seller.ID.String()))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", domainerrors.ErrSessionInvalid.WithDetails("Authorization header is missing")
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader || token == "" {
		return "", domainerrors.ErrSessionInvalid.WithDetails("Authorization header must be a Bearer token")
	}

	return token, nil
}
