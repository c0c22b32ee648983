package auth

import (
	"testing"
	"time"

	"acai/config"
	"acai/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: time.Hour}}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	storeID := uuid.New()
	user := &entity.User{ID: uuid.New(), Email: "store@owner.com", Role: entity.RoleStore, StoreID: &storeID}

	token, err := jwtService.GenerateToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "store@owner.com", claims.Email)
	assert.Equal(t, entity.RoleStore, claims.Role)
	assert.Equal(t, user.ID.String(), claims.Subject)
}

func TestJWTService_ProvisionalIdentityHasNoRole(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("secret"))
	require.NoError(t, err)

	token, err := jwtService.GenerateToken(&entity.User{ID: uuid.New(), Email: "new@user.com"})
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Empty(t, claims.Role)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("secret"))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testConfig("first-secret"))
	require.NoError(t, err)
	verifier, err := NewJWTService(testConfig("second-secret"))
	require.NoError(t, err)

	token, err := issuer.GenerateToken(&entity.User{ID: uuid.New(), Email: "a@b.c", Role: entity.RoleCustomer})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(testConfig("secret"))
	require.NoError(t, err)
	impl := svc.(*jwtService)

	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := impl.GenerateToken(&entity.User{ID: uuid.New(), Email: "a@b.c", Role: entity.RoleAdmin})
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateToken(token)
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(testConfig(""))
	assert.Error(t, err)
}
