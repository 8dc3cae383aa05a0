package auth

import (
	"testing"
	"time"

	"bazaar/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Session = "test-session-secret"
	cfg.Auth = &config.AuthConfig{SessionTTL: ttl}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{SessionTTL: time.Hour}

	_, err := NewJWTService(cfg)

	assert.Error(t, err)
}

func TestJWTService_GenerateValidate_Roundtrip(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)
	sellerID := uuid.New()

	token, err := svc.Generate(sellerID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, sellerID, claims.SellerID)
}

func TestJWTService_Generate_UniquePerCall(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)
	sellerID := uuid.New()

	first, err := svc.Generate(sellerID)
	require.NoError(t, err)
	second, err := svc.Generate(sellerID)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTService_Validate_TamperedToken(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	token, err := svc.Generate(uuid.New())
	require.NoError(t, err)

	_, err = svc.Validate(token + "x")
	assert.Error(t, err)
}

func TestJWTService_Validate_WrongKey(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	other := &jwtService{secret: "some-other-secret", sessionTTL: time.Hour}
	token, err := other.Generate(uuid.New())
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_Validate_ExpiredToken(t *testing.T) {
	svc := newTestTokenService(t, -time.Minute)

	token, err := svc.Generate(uuid.New())
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_HashToken(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	first := svc.HashToken("token-a")
	second := svc.HashToken("token-a")
	other := svc.HashToken("token-b")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	// The digest never contains the token itself.
	assert.NotContains(t, first, "token-a")
	assert.Len(t, first, 64)
}

func TestJWTService_SessionTTL(t *testing.T) {
	svc := newTestTokenService(t, 45*time.Minute)

	assert.Equal(t, 45*time.Minute, svc.SessionTTL())
}
