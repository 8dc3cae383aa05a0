// Package router contains routing setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SellerHandler      *handler.SellerHandler
	ProductHandler     *handler.ProductHandler
	LogisticsHandler   *handler.LogisticsHandler
	MarketplaceHandler *handler.MarketplaceHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sellerHandler      *handler.SellerHandler
	productHandler     *handler.ProductHandler
	logisticsHandler   *handler.LogisticsHandler
	marketplaceHandler *handler.MarketplaceHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sellerHandler:      params.SellerHandler,
		productHandler:     params.ProductHandler,
		logisticsHandler:   params.LogisticsHandler,
		marketplaceHandler: params.MarketplaceHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes. Logout takes the token from the Authorization header and
	// is idempotent, so it skips the auth middleware.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.sellerHandler.Register)
		authGroup.POST("/login", r.sellerHandler.Login)
		authGroup.POST("/logout", r.sellerHandler.Logout)
	}

	// Seller catalog routes require a live session
	productGroup := e.Group("/products")
	productGroup.Use(r.authMiddleware.Authenticate)
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.POST("", r.productHandler.Create)
		productGroup.PUT("/:id", r.productHandler.Update)
		productGroup.DELETE("/:id", r.productHandler.Delete)
	}

	sellerGroup := e.Group("/seller")
	sellerGroup.Use(r.authMiddleware.Authenticate)
	{
		sellerGroup.GET("/me", r.sellerHandler.Me)
		sellerGroup.GET("/listings", r.marketplaceHandler.MyListings)
	}

	// Public read-only routes
	logisticsGroup := e.Group("/logistics")
	{
		logisticsGroup.GET("/providers", r.logisticsHandler.Providers)
		logisticsGroup.GET("/pricing", r.logisticsHandler.Pricing)
	}

	e.GET("/marketplace/listings", r.marketplaceHandler.Listings)
}
