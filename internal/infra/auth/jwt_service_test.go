package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"courier/config"
	"courier/internal/domain/entity"
)

func testConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	if ttl > 0 {
		cfg.Auth = &config.AuthConfig{AccessTokenTTL: ttl}
	}

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(time.Hour))
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	user := &entity.User{
		ID:    42,
		Login: "dispatcher",
		Role:  entity.RoleManager,
	}

	token, err := jwtService.Issue(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.Validate(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Login, claims.Login)
	assert.Equal(t, entity.RoleManager, claims.Role)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(0))
	assert.NoError(t, err)

	claims, err := jwtService.Validate("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testConfig(time.Hour))
	assert.NoError(t, err)

	otherCfg := testConfig(time.Hour)
	otherCfg.SecretKey.Access = "a_completely_different_secret_key_for_testing"
	verifier, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	token, err := issuer.Issue(&entity.User{ID: 1, Login: "admin", Role: entity.RoleAdmin})
	assert.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	expired := &jwtService{
		secret:    "test_access_secret_key_very_long_for_testing",
		accessTTL: -time.Minute,
	}

	token, err := expired.Issue(&entity.User{ID: 7, Login: "courier1", Role: entity.RoleCourier})
	assert.NoError(t, err)

	claims, err := expired.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_UnknownRole(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(time.Hour))
	assert.NoError(t, err)

	token, err := jwtService.Issue(&entity.User{ID: 3, Login: "ghost", Role: entity.Role("superuser")})
	assert.NoError(t, err)

	claims, err := jwtService.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
