package impl

import (
	"context"
	"testing"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	mockRepo "courier/internal/mocks/repository"
	mockUC "courier/internal/mocks/usecase"
	"courier/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCourierService(t *testing.T) (usecase.CourierUsecase, *mockRepo.MockDeliveryRepository, *mockUC.MockDeliveryUsecase) {
	deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	deliveries := mockUC.NewMockDeliveryUsecase(t)

	service := NewCourierService(CourierServiceParams{
		DeliveryRepo: deliveryRepo,
		Deliveries:   deliveries,
	})

	return service, deliveryRepo, deliveries
}

func TestCourierService_ListCourierDeliveries_RejectsBadDate(t *testing.T) {
	service, _, _ := newCourierService(t)

	date := "tomorrow"
	_, err := service.ListCourierDeliveries(context.Background(), 7, usecase.CourierDeliveryFilters{Date: &date})

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, map[string]string{"date": "invalid date format"}, vErr.Fields())
}

func TestCourierService_ListCourierDeliveries_SummarizesViews(t *testing.T) {
	service, deliveryRepo, deliveries := newCourierService(t)

	ctx := context.Background()
	courierID := int64(7)
	date := "2026-03-10"
	status := "planned"
	statusFilter := entity.StatusPlanned

	rows := []*entity.Delivery{{ID: 4, CourierID: 7}}
	deliveryRepo.EXPECT().
		FindByFilters(ctx, repository.DeliveryFilters{
			Date:      &date,
			CourierID: &courierID,
			Status:    &statusFilter,
		}).
		Return(rows, nil)

	deliveries.EXPECT().PresentDeliveries(ctx, rows).
		Return([]*usecase.DeliveryView{
			{
				ID:             4,
				DeliveryNumber: "DEL-2026-004",
				Date:           "2026-03-10",
				TimeStart:      "09:00",
				TimeEnd:        "18:00",
				Status:         "planned",
				Vehicle:        &usecase.VehicleView{ID: 3, Brand: "Ford", LicensePlate: "A123BC"},
				Points: []usecase.PointView{
					{ID: 21, Products: []usecase.ProductLineView{{Quantity: 2}, {Quantity: 3}}},
					{ID: 22, Products: []usecase.ProductLineView{{Quantity: 1}}},
				},
				TotalWeight: 24.5,
			},
		}, nil)

	views, err := service.ListCourierDeliveries(ctx, courierID, usecase.CourierDeliveryFilters{
		Date:   &date,
		Status: &status,
	})
	require.NoError(t, err)
	require.Len(t, views, 1)

	summary := views[0]
	assert.Equal(t, "DEL-2026-004", summary.DeliveryNumber)
	assert.Equal(t, 2, summary.PointsCount)
	assert.Equal(t, 6, summary.ProductsCount)
	assert.Equal(t, 24.5, summary.TotalWeight)
	assert.Equal(t, "Ford", summary.Vehicle.Brand)
}

func TestCourierService_ListCourierDeliveries_UnassignedVehicle(t *testing.T) {
	service, deliveryRepo, deliveries := newCourierService(t)

	ctx := context.Background()
	courierID := int64(7)

	rows := []*entity.Delivery{{ID: 4, CourierID: 7}}
	deliveryRepo.EXPECT().
		FindByFilters(ctx, repository.DeliveryFilters{CourierID: &courierID}).
		Return(rows, nil)
	deliveries.EXPECT().PresentDeliveries(ctx, rows).
		Return([]*usecase.DeliveryView{{ID: 4, Vehicle: nil}}, nil)

	views, err := service.ListCourierDeliveries(ctx, courierID, usecase.CourierDeliveryFilters{})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "unassigned", views[0].Vehicle.Brand)
}

func TestCourierService_GetCourierDelivery_OwnDelivery(t *testing.T) {
	service, _, deliveries := newCourierService(t)

	ctx := context.Background()
	view := &usecase.DeliveryView{ID: 4, Courier: &usecase.UserView{ID: 7}}
	deliveries.EXPECT().GetDelivery(ctx, int64(4)).Return(view, nil)

	result, err := service.GetCourierDelivery(ctx, 4, 7)
	require.NoError(t, err)
	assert.Equal(t, view, result)
}

func TestCourierService_GetCourierDelivery_ForeignDeliveryForbidden(t *testing.T) {
	service, _, deliveries := newCourierService(t)

	ctx := context.Background()
	deliveries.EXPECT().GetDelivery(ctx, int64(4)).
		Return(&usecase.DeliveryView{ID: 4, Courier: &usecase.UserView{ID: 9}}, nil)

	_, err := service.GetCourierDelivery(ctx, 4, 7)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
