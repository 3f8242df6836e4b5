package handler

import (
	"net/http"
	"strconv"

	"courier/internal/transport/http/middleware"
	"courier/internal/transport/http/response"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DeliveryHandler holds dependencies for delivery scheduling handlers.
type DeliveryHandler struct {
	uc usecase.DeliveryUsecase
}

// NewDeliveryHandler is the constructor for DeliveryHandler, injected by Fx.
func NewDeliveryHandler(uc usecase.DeliveryUsecase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

// ListDeliveries returns hydrated deliveries matching the query filters.
func (h *DeliveryHandler) ListDeliveries(c echo.Context) error {
	var filters usecase.DeliveryFilters

	if value := c.QueryParam("date"); value != "" {
		filters.Date = &value
	}
	if value := c.QueryParam("status"); value != "" {
		filters.Status = &value
	}
	if value := c.QueryParam("courier_id"); value != "" {
		courierID, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid courier_id filter")
		}
		filters.CourierID = &courierID
	}

	deliveries, err := h.uc.ListDeliveries(c.Request().Context(), filters)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deliveries, "")
}

// GetDelivery returns a single hydrated delivery by ID.
func (h *DeliveryHandler) GetDelivery(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	delivery, err := h.uc.GetDelivery(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, delivery, "")
}

// CreateDelivery handles the delivery creation request. The authenticated
// manager becomes the delivery's creator.
func (h *DeliveryHandler) CreateDelivery(c echo.Context) error {
	claims, ok := middleware.Identity(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_MISSING", "Authentication required")
	}

	var input *usecase.DeliveryRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery input")
	}

	delivery, err := h.uc.CreateDelivery(c.Request().Context(), input, claims.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, delivery, "Delivery created successfully")
}

// UpdateDelivery handles the delivery replacement request.
func (h *DeliveryHandler) UpdateDelivery(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.DeliveryRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery input")
	}

	delivery, err := h.uc.UpdateDelivery(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, delivery, "Delivery updated successfully")
}

// DeleteDelivery handles the delivery deletion request.
func (h *DeliveryHandler) DeleteDelivery(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteDelivery(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Delivery deleted successfully")
}

// GenerateDeliveries handles the bulk generation request.
func (h *DeliveryHandler) GenerateDeliveries(c echo.Context) error {
	claims, ok := middleware.Identity(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_MISSING", "Authentication required")
	}

	var input *usecase.GenerateRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid generation input")
	}

	result, err := h.uc.GenerateDeliveries(c.Request().Context(), input, claims.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Deliveries generated")
}
