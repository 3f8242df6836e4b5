package handler

import (
	"net/http"

	"courier/internal/transport/http/response"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user management handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// ListUsers returns all users, optionally filtered by the role query param.
func (h *UserHandler) ListUsers(c echo.Context) error {
	var role *string
	if value := c.QueryParam("role"); value != "" {
		role = &value
	}

	users, err := h.uc.ListUsers(c.Request().Context(), role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

// GetUser returns a single user by ID.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// CreateUser handles the user creation request.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var input *usecase.CreateUserRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	user, err := h.uc.CreateUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "User created successfully")
}

// UpdateUser handles a partial user update.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateUserRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User updated successfully")
}

// DeleteUser handles the user deletion request.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted successfully")
}
