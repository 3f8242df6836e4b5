package handler

import (
	"net/http"

	"courier/internal/transport/http/middleware"
	"courier/internal/transport/http/response"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CourierHandler holds dependencies for courier-facing handlers.
type CourierHandler struct {
	uc usecase.CourierUsecase
}

// NewCourierHandler is the constructor for CourierHandler, injected by Fx.
func NewCourierHandler(uc usecase.CourierUsecase) *CourierHandler {
	return &CourierHandler{uc: uc}
}

// ListCourierDeliveries returns compact summaries of the authenticated
// courier's own deliveries.
func (h *CourierHandler) ListCourierDeliveries(c echo.Context) error {
	claims, ok := middleware.Identity(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_MISSING", "Authentication required")
	}

	var filters usecase.CourierDeliveryFilters
	if value := c.QueryParam("date"); value != "" {
		filters.Date = &value
	}
	if value := c.QueryParam("status"); value != "" {
		filters.Status = &value
	}
	if value := c.QueryParam("date_from"); value != "" {
		filters.DateFrom = &value
	}
	if value := c.QueryParam("date_to"); value != "" {
		filters.DateTo = &value
	}

	deliveries, err := h.uc.ListCourierDeliveries(c.Request().Context(), claims.UserID, filters)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deliveries, "")
}

// GetCourierDelivery returns one of the authenticated courier's own
// deliveries in full.
func (h *CourierHandler) GetCourierDelivery(c echo.Context) error {
	claims, ok := middleware.Identity(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_MISSING", "Authentication required")
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	delivery, err := h.uc.GetCourierDelivery(c.Request().Context(), id, claims.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, delivery, "")
}
