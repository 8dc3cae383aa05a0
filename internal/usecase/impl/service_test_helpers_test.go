package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/infra/auth"
	"bazaar/internal/infra/logistics"
	"bazaar/internal/infra/memory"
	"bazaar/internal/usecase"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// serviceFixtures wires the full service stack against the real in-memory
// stores. bcrypt runs at MinCost to keep the suite fast.
type serviceFixtures struct {
	identity    usecase.IdentityUsecase
	catalog     usecase.CatalogUsecase
	logistics   usecase.LogisticsUsecase
	marketplace usecase.MarketplaceUsecase

	sellerRepo   repository.SellerRepository
	productRepo  repository.ProductRepository
	sessionRepo  repository.SessionRepository
	registry     repository.LogisticsRegistry
	tokenService service.TokenService
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Session = "test-session-secret"
	cfg.Auth = &config.AuthConfig{
		BcryptCost: bcrypt.MinCost,
		SessionTTL: time.Hour,
	}

	return cfg
}

func createTestServices(t *testing.T) serviceFixtures {
	t.Helper()

	cfg := testConfig()
	logger := testLogger()

	sellerRepo := memory.NewSellerRepository()
	productRepo := memory.NewProductRepository()
	sessionRepo := memory.NewSessionRepository()
	registry := logistics.NewRegistry(logistics.Params{Config: cfg, Logger: logger})

	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	identity := NewIdentityService(IdentityServiceParams{
		SellerRepo:   sellerRepo,
		SessionRepo:  sessionRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})
	catalog := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		Registry:    registry,
		Logger:      logger,
	})
	logisticsUC := NewLogisticsService(LogisticsServiceParams{
		Registry: registry,
		Logger:   logger,
	})
	marketplace := NewMarketplaceService(MarketplaceServiceParams{
		ProductRepo: productRepo,
		SellerRepo:  sellerRepo,
		Registry:    registry,
		Logger:      logger,
	})

	return serviceFixtures{
		identity:     identity,
		catalog:      catalog,
		logistics:    logisticsUC,
		marketplace:  marketplace,
		sellerRepo:   sellerRepo,
		productRepo:  productRepo,
		sessionRepo:  sessionRepo,
		registry:     registry,
		tokenService: tokenService,
	}
}

func registerSeller(t *testing.T, fx serviceFixtures, name, email string) *entity.Seller {
	t.Helper()

	output, err := fx.identity.Register(context.Background(), &usecase.RegisterInput{
		Name:   name,
		Email:  email,
		Secret: "hunter2hunter2",
	})
	require.NoError(t, err)

	return output.Seller
}

func loginSeller(t *testing.T, fx serviceFixtures, email string) string {
	t.Helper()

	output, err := fx.identity.Login(context.Background(), &usecase.LoginInput{
		Email:  email,
		Secret: "hunter2hunter2",
	})
	require.NoError(t, err)

	return output.Token
}
