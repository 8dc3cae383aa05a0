// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	sellerRepo   repository.SellerRepository
	sessionRepo  repository.SessionRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for identityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	SellerRepo   repository.SellerRepository
	SessionRepo  repository.SessionRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService. It receives all dependencies as interfaces.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		sellerRepo:   params.SellerRepo,
		sessionRepo:  params.SessionRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new seller account. The email uniqueness check is
// atomic inside the seller store, so concurrent registrations with the same
// email cannot both succeed.
func (srv *identityService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting seller registration", slog.String("email", input.Email))

	if input.Name == "" || input.Email == "" || input.Secret == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "name, email and secret are required")
	}

	plan := input.Plan
	if plan == "" {
		plan = entity.PlanMonthly
	}

	secretHash, err := srv.hasher.Hash(input.Secret)
	if err != nil {
		srv.log(ctx).Error("Failed to hash secret during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash secret during registration")
	}

	newSeller := &entity.Seller{
		ID:         uuid.New(),
		Name:       input.Name,
		Email:      input.Email,
		SecretHash: secretHash,
		Plan:       plan,
		CreatedAt:  time.Now(),
	}

	if err := srv.sellerRepo.Create(ctx, newSeller); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			srv.log(ctx).Warn("Registration with duplicate email", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "registration failed")
		}

		return nil, errors.Wrap(err, "failed to create seller")
	}

	srv.log(ctx).Debug("Seller registered", slog.Any("sellerID", newSeller.ID))

	return &usecase.RegisterOutput{Seller: newSeller}, nil
}

// Login verifies the credentials and issues a session token whose hash is
// stored in the session table. Failures carry no hint of which field was wrong.
func (srv *identityService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting seller login", slog.String("email", input.Email))

	seller, err := srv.sellerRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find seller by email")
	}

	// Check secret outside any lock (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Secret, seller.SecretHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.Generate(seller.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	expiresAt := time.Now().Add(srv.tokenService.SessionTTL())
	newSession := &entity.Session{
		ID:        uuid.New(),
		SellerID:  seller.ID,
		TokenHash: srv.tokenService.HashToken(token),
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
	}

	if err := srv.sessionRepo.Create(ctx, newSession); err != nil {
		return nil, errors.Wrap(err, "failed to store session")
	}

	srv.log(ctx).Debug("Seller logged in", slog.Any("sellerID", seller.ID))

	return &usecase.LoginOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		Seller:    seller,
	}, nil
}

// Resolve maps a bearer token to its seller: the signature and expiry must
// check out, a live session row must exist, and the seller must resolve.
func (srv *identityService) Resolve(ctx context.Context, token string) (*entity.Seller, error) {
	claims, err := srv.tokenService.Validate(token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "token validation failed")
	}

	session, err := srv.sessionRepo.FindByTokenHash(ctx, srv.tokenService.HashToken(token))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "no live session for token")
	}

	if session.SellerID != claims.SellerID {
		// A session row keyed by this token hash but owned by another
		// seller means the store was tampered with; treat as unauthenticated.
		return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "session ownership mismatch")
	}

	seller, err := srv.sellerRepo.FindByID(ctx, session.SellerID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "session seller no longer resolves")
	}

	return seller, nil
}

// Logout deletes the session row behind the token. Invalid tokens are still
// deleted by hash so logout never fails on a stale client.
func (srv *identityService) Logout(ctx context.Context, token string) error {
	if _, err := srv.tokenService.Validate(token); err != nil {
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	if err := srv.sessionRepo.DeleteByTokenHash(ctx, srv.tokenService.HashToken(token)); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	srv.log(ctx).Info("Seller logged out")

	return nil
}
