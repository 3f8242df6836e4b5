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

func newVehicleService(t *testing.T) (usecase.VehicleUsecase, *mockRepo.MockVehicleRepository, *mockRepo.MockDeliveryRepository) {
	vehicleRepo := mockRepo.NewMockVehicleRepository(t)
	deliveryRepo := mockRepo.NewMockDeliveryRepository(t)

	service := NewVehicleService(VehicleServiceParams{
		VehicleRepo:  vehicleRepo,
		DeliveryRepo: deliveryRepo,
	})

	return service, vehicleRepo, deliveryRepo
}

func TestVehicleService_CreateVehicle_ValidatesPayload(t *testing.T) {
	service, _, _ := newVehicleService(t)

	_, err := service.CreateVehicle(context.Background(), &usecase.VehicleRequest{MaxWeight: -1})

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	for _, field := range []string{"brand", "license_plate", "max_weight", "max_volume"} {
		assert.True(t, vErr.Has(field), "expected error for field %s", field)
	}
}

func TestVehicleService_CreateVehicle_Success(t *testing.T) {
	service, vehicleRepo, _ := newVehicleService(t)

	ctx := context.Background()
	vehicleRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Vehicle")).
		Run(func(_ context.Context, vehicle *entity.Vehicle) {
			vehicle.ID = 3
		}).
		Return(nil)

	view, err := service.CreateVehicle(ctx, &usecase.VehicleRequest{
		Brand:        " Ford ",
		LicensePlate: "A123BC",
		MaxWeight:    1500,
		MaxVolume:    12,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), view.ID)
	assert.Equal(t, "Ford", view.Brand)
	assert.Equal(t, 1500.0, view.MaxWeight)
	assert.Equal(t, 12.0, view.MaxVolume)
}

func TestVehicleService_CreateVehicle_DuplicatePlate(t *testing.T) {
	service, vehicleRepo, _ := newVehicleService(t)

	ctx := context.Background()
	vehicleRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Vehicle")).
		Return(repository.ErrDuplicateLicensePlate)

	_, err := service.CreateVehicle(ctx, &usecase.VehicleRequest{
		Brand:        "Ford",
		LicensePlate: "A123BC",
		MaxWeight:    1500,
		MaxVolume:    12,
	})

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, map[string]string{"license_plate": "vehicle with this license plate already exists"}, vErr.Fields())
}

func TestVehicleService_UpdateVehicle_NotFound(t *testing.T) {
	service, vehicleRepo, _ := newVehicleService(t)

	ctx := context.Background()
	vehicleRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrVehicleNotFound)

	_, err := service.UpdateVehicle(ctx, 404, &usecase.VehicleRequest{
		Brand:        "Ford",
		LicensePlate: "A123BC",
		MaxWeight:    1500,
		MaxVolume:    12,
	})
	assert.ErrorIs(t, err, domainerrors.ErrVehicleNotFound)
}

func TestVehicleService_DeleteVehicle_BlockedByActiveDeliveries(t *testing.T) {
	service, vehicleRepo, deliveryRepo := newVehicleService(t)

	ctx := context.Background()
	vehicleRepo.EXPECT().FindByID(ctx, int64(3)).
		Return(&entity.Vehicle{ID: 3}, nil)
	deliveryRepo.EXPECT().FindByVehicle(ctx, int64(3)).
		Return([]*entity.Delivery{{ID: 4, VehicleID: 3}}, nil)

	err := service.DeleteVehicle(ctx, 3)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, map[string]string{"id": "vehicle with active deliveries cannot be deleted"}, vErr.Fields())
}

func TestVehicleService_DeleteVehicle_Success(t *testing.T) {
	service, vehicleRepo, deliveryRepo := newVehicleService(t)

	ctx := context.Background()
	vehicleRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.Vehicle{ID: 3}, nil)
	deliveryRepo.EXPECT().FindByVehicle(ctx, int64(3)).Return(nil, nil)
	vehicleRepo.EXPECT().Delete(ctx, int64(3)).Return(nil)

	require.NoError(t, service.DeleteVehicle(ctx, 3))
}
