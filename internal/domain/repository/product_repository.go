package repository

import (
	"context"

	"courier/internal/domain/entity"
	"courier/internal/errors"
)

// ErrProductNotFound indicates the product does not exist
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the persistence operations for products
type ProductRepository interface {
	// Create persists a new product and fills the generated ID
	Create(ctx context.Context, product *entity.Product) error

	// Update persists changes to an existing product
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by ID
	Delete(ctx context.Context, id int64) error

	// FindByID returns a product by ID, ErrProductNotFound if absent
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindAll returns all products ordered by ID
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindManyByIDs returns products keyed by ID; missing IDs are simply absent
	FindManyByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Product, error)
}
