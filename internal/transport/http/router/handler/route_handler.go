package handler

import (
	"net/http"

	"courier/internal/transport/http/response"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RouteHandler holds dependencies for route preview handlers.
type RouteHandler struct {
	uc usecase.RouteUsecase
}

// NewRouteHandler is the constructor for RouteHandler, injected by Fx.
func NewRouteHandler(uc usecase.RouteUsecase) *RouteHandler {
	return &RouteHandler{uc: uc}
}

// CalculateRoute handles the route preview request.
func (h *RouteHandler) CalculateRoute(c echo.Context) error {
	var input *usecase.RouteRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid route input")
	}

	plan, err := h.uc.CalculateRoute(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan, "")
}
