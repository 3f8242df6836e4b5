// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"courier/config"
	"courier/internal/domain/entity"
	"courier/internal/domain/service"
	"courier/internal/errors"
)

const defaultAccessTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    string        // Secret key for signing access tokens.
	accessTTL time.Duration // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultAccessTTL
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		ttl = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{
		secret:    cfg.SecretKey.Access,
		accessTTL: ttl,
	}, nil
}

// Issue creates a signed access token carrying the user's identity and role.
func (s *jwtService) Issue(user *entity.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"login": user.Login,
		"role":  user.Role.String(),          // Role for stateless authorization
		"iat":   now.Unix(),                  // Issued At
		"exp":   now.Add(s.accessTTL).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Validate parses and verifies a token string and extracts its claims.
func (s *jwtService) Validate(tokenString string) (*service.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	sub, ok := mapClaims["sub"].(float64)
	if !ok {
		return nil, errors.New("token missing subject")
	}

	login, _ := mapClaims["login"].(string)

	roleValue, _ := mapClaims["role"].(string)
	role := entity.Role(roleValue)
	if !role.IsValid() {
		return nil, errors.New("token carries unknown role")
	}

	return &service.TokenClaims{
		UserID: int64(sub),
		Login:  login,
		Role:   role,
	}, nil
}
