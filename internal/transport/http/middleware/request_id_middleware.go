package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	transportctx "courier/internal/transport/context"
)

// RequestID propagates the X-Request-Id header, generating a fresh UUID when
// the client did not send one. The ID is stored on both the echo context and
// the request context so lower layers can log it.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(transportctx.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			transportctx.SetRequestID(c, requestID)
			ctx := transportctx.WithRequestID(c.Request().Context(), requestID)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(transportctx.HeaderXRequestID, requestID)

			return next(c)
		}
	}
}
