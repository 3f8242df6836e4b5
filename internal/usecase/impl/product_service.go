package impl

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/usecase"
)

type productService struct {
	productRepo  repository.ProductRepository
	deliveryRepo repository.DeliveryRepository
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	DeliveryRepo repository.DeliveryRepository
}

// NewProductService creates a new product catalog service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:  params.ProductRepo,
		deliveryRepo: params.DeliveryRepo,
	}
}

// ListProducts returns all products.
func (s *productService) ListProducts(ctx context.Context) ([]*usecase.ProductView, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	views := make([]*usecase.ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, toProductView(product))
	}

	return views, nil
}

// GetProduct returns a single product by ID.
func (s *productService) GetProduct(ctx context.Context, id int64) (*usecase.ProductView, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductView(product), nil
}

// CreateProduct registers a new product.
func (s *productService) CreateProduct(ctx context.Context, req *usecase.ProductRequest) (*usecase.ProductView, error) {
	product, err := s.validateRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return toProductView(product), nil
}

// UpdateProduct replaces the attributes of an existing product.
func (s *productService) UpdateProduct(ctx context.Context, id int64, req *usecase.ProductRequest) (*usecase.ProductView, error) {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	product, err := s.validateRequest(req)
	if err != nil {
		return nil, err
	}
	product.ID = id

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return toProductView(product), nil
}

// DeleteProduct removes a product unless it is used by active deliveries.
func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to find product")
	}

	active, err := s.deliveryRepo.FindByProduct(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to check product deliveries")
	}
	if len(active) > 0 {
		return domainerrors.NewFieldError("id", "product used by active deliveries cannot be deleted")
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

func (s *productService) validateRequest(req *usecase.ProductRequest) (*entity.Product, error) {
	fields := map[string]string{}
	name := strings.TrimSpace(req.Name)

	if name == "" {
		fields["name"] = "name is required"
	}
	if req.Weight <= 0 {
		fields["weight"] = "weight must be positive"
	}
	if req.Length <= 0 {
		fields["length"] = "length must be positive"
	}
	if req.Width <= 0 {
		fields["width"] = "width must be positive"
	}
	if req.Height <= 0 {
		fields["height"] = "height must be positive"
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields)
	}

	return &entity.Product{
		Name:   name,
		Weight: req.Weight,
		Dimensions: entity.Dimensions{
			Length: req.Length,
			Width:  req.Width,
			Height: req.Height,
		},
	}, nil
}
