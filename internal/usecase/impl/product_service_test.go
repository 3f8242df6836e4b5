package impl

import (
	"context"
	"testing"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	mockRepo "courier/internal/mocks/repository"
	"courier/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductService(t *testing.T) (usecase.ProductUsecase, *mockRepo.MockProductRepository, *mockRepo.MockDeliveryRepository) {
	productRepo := mockRepo.NewMockProductRepository(t)
	deliveryRepo := mockRepo.NewMockDeliveryRepository(t)

	service := NewProductService(ProductServiceParams{
		ProductRepo:  productRepo,
		DeliveryRepo: deliveryRepo,
	})

	return service, productRepo, deliveryRepo
}

func TestProductService_CreateProduct_ValidatesPayload(t *testing.T) {
	service, _, _ := newProductService(t)

	_, err := service.CreateProduct(context.Background(), &usecase.ProductRequest{Weight: -5})

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	for _, field := range []string{"name", "weight", "length", "width", "height"} {
		assert.True(t, vErr.Has(field), "expected error for field %s", field)
	}
}

func TestProductService_CreateProduct_DerivesVolume(t *testing.T) {
	service, productRepo, _ := newProductService(t)

	ctx := context.Background()
	productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			product.ID = 5
		}).
		Return(nil)

	view, err := service.CreateProduct(ctx, &usecase.ProductRequest{
		Name:   "Box",
		Weight: 4,
		Length: 50,
		Width:  40,
		Height: 30,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), view.ID)
	assert.Equal(t, "Box", view.Name)
	assert.Equal(t, 0.06, view.Volume)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	service, productRepo, _ := newProductService(t)

	ctx := context.Background()
	productRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrProductNotFound)

	_, err := service.GetProduct(ctx, 404)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_DeleteProduct_BlockedByActiveDeliveries(t *testing.T) {
	service, productRepo, deliveryRepo := newProductService(t)

	ctx := context.Background()
	productRepo.EXPECT().FindByID(ctx, int64(5)).Return(&entity.Product{ID: 5}, nil)
	deliveryRepo.EXPECT().FindByProduct(ctx, int64(5)).
		Return([]*entity.Delivery{{ID: 4}}, nil)

	err := service.DeleteProduct(ctx, 5)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, map[string]string{"id": "product used by active deliveries cannot be deleted"}, vErr.Fields())
}

func TestProductService_DeleteProduct_Success(t *testing.T) {
	service, productRepo, deliveryRepo := newProductService(t)

	ctx := context.Background()
	productRepo.EXPECT().FindByID(ctx, int64(5)).Return(&entity.Product{ID: 5}, nil)
	deliveryRepo.EXPECT().FindByProduct(ctx, int64(5)).Return(nil, nil)
	productRepo.EXPECT().Delete(ctx, int64(5)).Return(nil)

	require.NoError(t, service.DeleteProduct(ctx, 5))
}
