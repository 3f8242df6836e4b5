package middleware

import (
	"strings"

	"courier/internal/domain/entity"
	"courier/internal/domain/service"
	"courier/internal/transport/http/response"

	"github.com/labstack/echo/v4"
)

// KeyIdentity is the echo context key under which Authenticate stores the
// verified token claims.
const KeyIdentity = "identity"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the identity on the
// request context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_MISSING", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "TOKEN_MALFORMED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		c.Set(KeyIdentity, claims)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has one of the
// given roles. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := Identity(c)
			if !ok {
				return response.Forbidden(c, "ROLE_MISSING", "Permission denied: role information missing")
			}

			if !allowed.Contains(claims.Role) {
				return response.Forbidden(c, "ROLE_DENIED", "Permission denied: require '"+rolesList(allowed)+"' role")
			}

			return next(c)
		}
	}
}

// Identity returns the authenticated claims stored by Authenticate.
func Identity(c echo.Context) (*service.TokenClaims, bool) {
	claims, ok := c.Get(KeyIdentity).(*service.TokenClaims)

	return claims, ok
}

func rolesList(roles entity.Roles) string {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.String())
	}

	return strings.Join(names, "' or '")
}
