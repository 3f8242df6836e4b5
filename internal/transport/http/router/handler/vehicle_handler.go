package handler

import (
	"net/http"

	"courier/internal/transport/http/response"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VehicleHandler holds dependencies for vehicle management handlers.
type VehicleHandler struct {
	uc usecase.VehicleUsecase
}

// NewVehicleHandler is the constructor for VehicleHandler, injected by Fx.
func NewVehicleHandler(uc usecase.VehicleUsecase) *VehicleHandler {
	return &VehicleHandler{uc: uc}
}

// ListVehicles returns all vehicles.
func (h *VehicleHandler) ListVehicles(c echo.Context) error {
	vehicles, err := h.uc.ListVehicles(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vehicles, "")
}

// GetVehicle returns a single vehicle by ID.
func (h *VehicleHandler) GetVehicle(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	vehicle, err := h.uc.GetVehicle(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vehicle, "")
}

// CreateVehicle handles the vehicle creation request.
func (h *VehicleHandler) CreateVehicle(c echo.Context) error {
	var input *usecase.VehicleRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vehicle input")
	}

	vehicle, err := h.uc.CreateVehicle(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, vehicle, "Vehicle created successfully")
}

// UpdateVehicle handles the vehicle replacement request.
func (h *VehicleHandler) UpdateVehicle(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.VehicleRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vehicle input")
	}

	vehicle, err := h.uc.UpdateVehicle(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vehicle, "Vehicle updated successfully")
}

// DeleteVehicle handles the vehicle deletion request.
func (h *VehicleHandler) DeleteVehicle(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteVehicle(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Vehicle deleted successfully")
}
