package handler

import (
	"net/http"

	"courier/internal/transport/http/response"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for product catalog handlers.
type ProductHandler struct {
	uc usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// ListProducts returns all products.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// GetProduct returns a single product by ID.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// CreateProduct handles the product creation request.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var input *usecase.ProductRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// UpdateProduct handles the product replacement request.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.ProductRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct handles the product deletion request.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}
