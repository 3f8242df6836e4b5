package usecase

import "context"

// ProductRequest carries the payload for creating or replacing a product.
// Dimensions are centimeters, weight is kilograms.
type ProductRequest struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ProductUsecase defines the product catalog use cases
type ProductUsecase interface {
	// ListProducts returns all products
	ListProducts(ctx context.Context) ([]*ProductView, error)

	// GetProduct returns a single product by ID
	GetProduct(ctx context.Context, id int64) (*ProductView, error)

	// CreateProduct registers a new product
	CreateProduct(ctx context.Context, req *ProductRequest) (*ProductView, error)

	// UpdateProduct replaces the attributes of an existing product
	UpdateProduct(ctx context.Context, id int64, req *ProductRequest) (*ProductView, error)

	// DeleteProduct removes a product unless it is used by active deliveries
	DeleteProduct(ctx context.Context, id int64) error
}
