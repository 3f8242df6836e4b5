package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"courier/internal/domain/entity"
	"courier/internal/domain/repository"
	"courier/internal/infra/persistence/model"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create persists a new product and fills the generated ID.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return errors.Wrap(err, "failed to create product")
	}

	product.ID = productM.ID

	return nil
}

// Update persists changes to an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":   product.Name,
			"weight": product.Weight,
			"length": product.Dimensions.Length,
			"width":  product.Dimensions.Width,
			"height": product.Dimensions.Height,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product by ID.
func (repo *productRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// FindByID retrieves a product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindAll retrieves all products ordered by ID.
func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindManyByIDs retrieves products keyed by ID. Missing IDs are simply absent.
func (repo *productRepository) FindManyByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Product, error) {
	if len(ids) == 0 {
		return map[int64]*entity.Product{}, nil
	}

	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by IDs")
	}

	products := make(map[int64]*entity.Product, len(productModels))
	for _, productM := range productModels {
		products[productM.ID] = toProductDomain(productM)
	}

	return products, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:     data.ID,
		Name:   data.Name,
		Weight: data.Weight,
		Dimensions: entity.Dimensions{
			Length: data.Length,
			Width:  data.Width,
			Height: data.Height,
		},
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:     data.ID,
		Name:   data.Name,
		Weight: data.Weight,
		Length: data.Dimensions.Length,
		Width:  data.Dimensions.Width,
		Height: data.Dimensions.Height,
	}
}
