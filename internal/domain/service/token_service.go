package service

import "courier/internal/domain/entity"

// TokenClaims is the authenticated identity carried by an access token.
type TokenClaims struct {
	UserID int64
	Login  string
	Role   entity.Role
}

// TokenService issues and validates access tokens
type TokenService interface {
	// Issue generates a signed access token for the user
	Issue(user *entity.User) (string, error)

	// Validate parses and verifies a token string and returns its claims
	Validate(tokenString string) (*TokenClaims, error)
}
