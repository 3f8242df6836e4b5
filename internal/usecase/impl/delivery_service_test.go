package impl

import (
	"context"
	"testing"
	"time"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	mockRepo "courier/internal/mocks/repository"
	mockSvc "courier/internal/mocks/service"
	"courier/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deliveryServiceMocks struct {
	txManager    *mockRepo.MockTransactionManager
	deliveryRepo *mockRepo.MockDeliveryRepository
	pointRepo    *mockRepo.MockDeliveryPointRepository
	lineRepo     *mockRepo.MockPointProductRepository
	userRepo     *mockRepo.MockUserRepository
	vehicleRepo  *mockRepo.MockVehicleRepository
	productRepo  *mockRepo.MockProductRepository
	distance     *mockSvc.MockDistanceCalculator
	clock        *mockSvc.MockClock
}

func newDeliveryService(t *testing.T) (usecase.DeliveryUsecase, *deliveryServiceMocks) {
	m := &deliveryServiceMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		deliveryRepo: mockRepo.NewMockDeliveryRepository(t),
		pointRepo:    mockRepo.NewMockDeliveryPointRepository(t),
		lineRepo:     mockRepo.NewMockPointProductRepository(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		vehicleRepo:  mockRepo.NewMockVehicleRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		distance:     mockSvc.NewMockDistanceCalculator(t),
		clock:        mockSvc.NewMockClock(t),
	}

	service := NewDeliveryService(DeliveryServiceParams{
		TxManager:    m.txManager,
		DeliveryRepo: m.deliveryRepo,
		PointRepo:    m.pointRepo,
		LineRepo:     m.lineRepo,
		UserRepo:     m.userRepo,
		VehicleRepo:  m.vehicleRepo,
		ProductRepo:  m.productRepo,
		Distance:     m.distance,
		Clock:        m.clock,
	})

	return service, m
}

// stubTransaction makes Execute run its callback against the same mocks the
// service already holds.
func stubTransaction(t *testing.T, m *deliveryServiceMocks, ctx context.Context) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewDeliveryRepository().Return(m.deliveryRepo).Maybe()
	factory.EXPECT().NewDeliveryPointRepository().Return(m.pointRepo).Maybe()
	factory.EXPECT().NewPointProductRepository().Return(m.lineRepo).Maybe()

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func fixedToday(m *deliveryServiceMocks) {
	m.clock.EXPECT().Today().Return(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))
}

func validDeliveryRequest() *usecase.DeliveryRequest {
	lat, lon := 55.75, 37.61

	return &usecase.DeliveryRequest{
		CourierID: 7,
		VehicleID: 3,
		Date:      "2026-03-10",
		TimeStart: "09:00",
		TimeEnd:   "18:00",
		Points: []usecase.PointRequest{
			{
				Latitude:  &lat,
				Longitude: &lon,
				Products:  []usecase.ProductLineRequest{{ProductID: 5, Quantity: 2}},
			},
		},
	}
}

func TestDeliveryService_CreateDelivery_CollectsFieldErrors(t *testing.T) {
	service, _ := newDeliveryService(t)

	view, err := service.CreateDelivery(context.Background(), &usecase.DeliveryRequest{}, 2)
	require.Error(t, err)
	assert.Nil(t, view)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	for _, field := range []string{"delivery_date", "courier_id", "vehicle_id", "time_start", "time_end", "points"} {
		assert.True(t, vErr.Has(field), "expected error for field %s", field)
	}
}

func TestDeliveryService_CreateDelivery_RejectsPastDate(t *testing.T) {
	service, m := newDeliveryService(t)
	fixedToday(m)

	req := validDeliveryRequest()
	req.Date = "2026-02-27"

	_, err := service.CreateDelivery(context.Background(), req, 2)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, map[string]string{"delivery_date": "delivery date cannot be in the past"}, vErr.Fields())
}

func TestDeliveryService_CreateDelivery_RejectsInvalidWindow(t *testing.T) {
	service, m := newDeliveryService(t)
	fixedToday(m)

	req := validDeliveryRequest()
	req.TimeStart = "18:00"
	req.TimeEnd = "09:00"

	_, err := service.CreateDelivery(context.Background(), req, 2)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.True(t, vErr.Has("time_start"))
}

func TestDeliveryService_CreateDelivery_RejectsMalformedTime(t *testing.T) {
	service, m := newDeliveryService(t)
	fixedToday(m)

	req := validDeliveryRequest()
	req.TimeStart = "quarter past nine"

	_, err := service.CreateDelivery(context.Background(), req, 2)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, map[string]string{"time_start": "invalid time format"}, vErr.Fields())
}

func TestDeliveryService_CreateDelivery_RejectsWrongCourierRole(t *testing.T) {
	service, m := newDeliveryService(t)
	fixedToday(m)

	ctx := context.Background()
	m.userRepo.EXPECT().FindByID(ctx, int64(7)).
		Return(&entity.User{ID: 7, Role: entity.RoleManager}, nil)

	_, err := service.CreateDelivery(ctx, validDeliveryRequest(), 2)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, map[string]string{"courier_id": "courier not found or has the wrong role"}, vErr.Fields())
}

func TestDeliveryService_CreateDelivery_Success(t *testing.T) {
	service, m := newDeliveryService(t)
	fixedToday(m)

	ctx := context.Background()
	courier := &entity.User{ID: 7, Login: "courier1", Name: "Courier One", Role: entity.RoleCourier}
	manager := &entity.User{ID: 2, Login: "manager1", Name: "Manager One", Role: entity.RoleManager}
	vehicle := &entity.Vehicle{
		ID: 3, Brand: "Ford", LicensePlate: "A123BC",
		Capacity: entity.Capacity{MaxWeight: 100, MaxVolume: 2},
	}
	product := &entity.Product{
		ID: 5, Name: "Box", Weight: 4,
		Dimensions: entity.Dimensions{Length: 50, Width: 40, Height: 30},
	}

	m.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(courier, nil)
	m.vehicleRepo.EXPECT().FindByID(ctx, int64(3)).Return(vehicle, nil)
	m.productRepo.EXPECT().FindByID(ctx, int64(5)).Return(product, nil)
	m.deliveryRepo.EXPECT().
		FindByVehicleOverlapping(ctx, int64(3), "2026-03-10", "09:00", "18:00").
		Return(nil, nil)

	stubTransaction(t, m, ctx)
	m.deliveryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Delivery")).
		Run(func(_ context.Context, delivery *entity.Delivery) {
			assert.Equal(t, int64(2), delivery.CreatedBy)
			assert.Equal(t, "09:00", delivery.Window.TimeStart)
			assert.Equal(t, entity.StatusPlanned, delivery.Status)
			delivery.ID = 11
		}).
		Return(nil)
	m.pointRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.DeliveryPoint")).
		Run(func(_ context.Context, point *entity.DeliveryPoint) {
			assert.Equal(t, 1, point.Sequence)
			point.ID = 21
		}).
		Return(nil)
	m.lineRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.PointProduct")).Return(nil)

	stored := &entity.Delivery{
		ID: 11, CourierID: 7, VehicleID: 3, CreatedBy: 2,
		Window: entity.DeliveryWindow{Date: "2026-03-10", TimeStart: "09:00", TimeEnd: "18:00"},
		Status: entity.StatusPlanned,
	}
	m.deliveryRepo.EXPECT().FindByID(ctx, int64(11)).Return(stored, nil)
	m.pointRepo.EXPECT().FindByDeliveries(ctx, []int64{11}).
		Return(map[int64][]*entity.DeliveryPoint{
			11: {{ID: 21, DeliveryID: 11, Sequence: 1, Location: entity.Coordinates{Latitude: 55.75, Longitude: 37.61}}},
		}, nil)
	m.lineRepo.EXPECT().FindByPoints(ctx, []int64{21}).
		Return(map[int64][]*entity.PointProduct{
			21: {{ID: 31, PointID: 21, ProductID: 5, Quantity: 2}},
		}, nil)
	m.userRepo.EXPECT().FindManyByIDs(ctx, []int64{7, 2}).
		Return(map[int64]*entity.User{7: courier, 2: manager}, nil)
	m.vehicleRepo.EXPECT().FindManyByIDs(ctx, []int64{3}).
		Return(map[int64]*entity.Vehicle{3: vehicle}, nil)

	req := validDeliveryRequest()
	req.TimeStart = "09:00:00" // seconds are tolerated and normalized away

	view, err := service.CreateDelivery(ctx, req, 2)
	require.NoError(t, err)
	require.NotNil(t, view)

	assert.Equal(t, int64(11), view.ID)
	assert.Equal(t, "DEL-2026-011", view.DeliveryNumber)
	assert.Equal(t, "2026-03-10", view.Date)
	assert.Equal(t, "09:00", view.TimeStart)
	assert.Equal(t, "planned", view.Status)
	assert.True(t, view.CanEdit)

	require.NotNil(t, view.Courier)
	assert.Equal(t, int64(7), view.Courier.ID)
	require.NotNil(t, view.CreatedBy)
	assert.Equal(t, int64(2), view.CreatedBy.ID)
	require.NotNil(t, view.Vehicle)
	assert.Equal(t, "A123BC", view.Vehicle.LicensePlate)

	require.Len(t, view.Points, 1)
	require.Len(t, view.Points[0].Products, 1)
	assert.Equal(t, 2, view.Points[0].Products[0].Quantity)
	assert.Equal(t, 0.06, view.Points[0].Products[0].Product.Volume)

	assert.Equal(t, 8.0, view.TotalWeight)
	assert.Equal(t, 0.12, view.TotalVolume)
}

func TestDeliveryService_CreateDelivery_CapacityAggregatesOverlapping(t *testing.T) {
	service, m := newDeliveryService(t)
	fixedToday(m)

	ctx := context.Background()
	courier := &entity.User{ID: 7, Role: entity.RoleCourier}
	vehicle := &entity.Vehicle{ID: 3, Capacity: entity.Capacity{MaxWeight: 50, MaxVolume: 2}}
	product := &entity.Product{
		ID: 5, Weight: 4,
		Dimensions: entity.Dimensions{Length: 10, Width: 10, Height: 10},
	}

	m.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(courier, nil)
	m.vehicleRepo.EXPECT().FindByID(ctx, int64(3)).Return(vehicle, nil)
	m.productRepo.EXPECT().FindByID(ctx, int64(5)).Return(product, nil)
	m.deliveryRepo.EXPECT().
		FindByVehicleOverlapping(ctx, int64(3), "2026-03-10", "09:00", "18:00").
		Return([]*entity.Delivery{{ID: 99, VehicleID: 3}}, nil)
	m.pointRepo.EXPECT().FindByDeliveries(ctx, []int64{99}).
		Return(map[int64][]*entity.DeliveryPoint{99: {{ID: 40, DeliveryID: 99}}}, nil)
	m.lineRepo.EXPECT().FindByPoints(ctx, []int64{40}).
		Return(map[int64][]*entity.PointProduct{40: {{ID: 50, PointID: 40, ProductID: 5, Quantity: 20}}}, nil)

	_, err := service.CreateDelivery(ctx, validDeliveryRequest(), 2)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, map[string]string{
		"weight": "vehicle capacity exceeded: required 88.00 kg, available 50.00 kg",
	}, vErr.Fields())
}

func TestDeliveryService_CreateDelivery_RejectsTightWindow(t *testing.T) {
	service, m := newDeliveryService(t)
	fixedToday(m)

	ctx := context.Background()
	lat1, lon1 := 55.75, 37.61
	lat2, lon2 := 59.93, 30.33

	req := validDeliveryRequest()
	req.TimeStart = "09:00"
	req.TimeEnd = "10:00"
	req.Points = []usecase.PointRequest{
		{Latitude: &lat1, Longitude: &lon1, Products: []usecase.ProductLineRequest{{ProductID: 5, Quantity: 1}}},
		{Latitude: &lat2, Longitude: &lon2, Products: []usecase.ProductLineRequest{{ProductID: 5, Quantity: 1}}},
	}

	m.userRepo.EXPECT().FindByID(ctx, int64(7)).
		Return(&entity.User{ID: 7, Role: entity.RoleCourier}, nil)
	m.vehicleRepo.EXPECT().FindByID(ctx, int64(3)).
		Return(&entity.Vehicle{ID: 3, Capacity: entity.Capacity{MaxWeight: 100, MaxVolume: 2}}, nil)
	m.productRepo.EXPECT().FindByID(ctx, int64(5)).
		Return(&entity.Product{ID: 5, Weight: 1, Dimensions: entity.Dimensions{Length: 10, Width: 10, Height: 10}}, nil)
	m.deliveryRepo.EXPECT().
		FindByVehicleOverlapping(ctx, int64(3), "2026-03-10", "09:00", "10:00").
		Return(nil, nil)
	m.distance.EXPECT().
		Distance(entity.Coordinates{Latitude: 55.75, Longitude: 37.61}, entity.Coordinates{Latitude: 59.93, Longitude: 30.33}).
		Return(120.0)

	_, err := service.CreateDelivery(ctx, req, 2)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, map[string]string{
		"time": "not enough time for the route: required 180 min, available 60 min",
	}, vErr.Fields())
}

func TestDeliveryService_UpdateDelivery_ExcludesOwnLoadFromAggregation(t *testing.T) {
	service, m := newDeliveryService(t)
	fixedToday(m)

	ctx := context.Background()
	existing := &entity.Delivery{
		ID: 4, CourierID: 7, VehicleID: 3, CreatedBy: 2,
		Window: entity.DeliveryWindow{Date: "2026-03-10", TimeStart: "09:00", TimeEnd: "18:00"},
		Status: entity.StatusPlanned,
	}
	courier := &entity.User{ID: 7, Login: "courier1", Role: entity.RoleCourier}
	manager := &entity.User{ID: 2, Login: "manager1", Role: entity.RoleManager}
	vehicle := &entity.Vehicle{ID: 3, Capacity: entity.Capacity{MaxWeight: 10, MaxVolume: 1}}
	product := &entity.Product{
		ID: 5, Weight: 4,
		Dimensions: entity.Dimensions{Length: 10, Width: 10, Height: 10},
	}

	m.deliveryRepo.EXPECT().FindByID(ctx, int64(4)).Return(existing, nil)
	m.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(courier, nil)
	m.vehicleRepo.EXPECT().FindByID(ctx, int64(3)).Return(vehicle, nil)
	m.productRepo.EXPECT().FindByID(ctx, int64(5)).Return(product, nil)

	// The only overlapping delivery is the one being updated: its previous
	// load must not count against the vehicle.
	m.deliveryRepo.EXPECT().
		FindByVehicleOverlapping(ctx, int64(3), "2026-03-10", "09:00", "18:00").
		Return([]*entity.Delivery{existing}, nil)

	stubTransaction(t, m, ctx)
	m.deliveryRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Delivery")).
		Run(func(_ context.Context, delivery *entity.Delivery) {
			assert.Equal(t, int64(4), delivery.ID)
			assert.Equal(t, int64(2), delivery.CreatedBy, "creator must survive the update")
		}).
		Return(nil)
	m.pointRepo.EXPECT().DeleteByDelivery(ctx, int64(4)).Return(nil)
	m.pointRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.DeliveryPoint")).
		Run(func(_ context.Context, point *entity.DeliveryPoint) { point.ID = 22 }).
		Return(nil)
	m.lineRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.PointProduct")).Return(nil)

	m.pointRepo.EXPECT().FindByDeliveries(ctx, []int64{4}).
		Return(map[int64][]*entity.DeliveryPoint{
			4: {{ID: 22, DeliveryID: 4, Sequence: 1, Location: entity.Coordinates{Latitude: 55.75, Longitude: 37.61}}},
		}, nil)
	m.lineRepo.EXPECT().FindByPoints(ctx, []int64{22}).
		Return(map[int64][]*entity.PointProduct{
			22: {{ID: 32, PointID: 22, ProductID: 5, Quantity: 2}},
		}, nil)
	m.userRepo.EXPECT().FindManyByIDs(ctx, []int64{7, 2}).
		Return(map[int64]*entity.User{7: courier, 2: manager}, nil)
	m.vehicleRepo.EXPECT().FindManyByIDs(ctx, []int64{3}).
		Return(map[int64]*entity.Vehicle{3: vehicle}, nil)

	view, err := service.UpdateDelivery(ctx, 4, validDeliveryRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(4), view.ID)
	assert.Equal(t, 8.0, view.TotalWeight)
}

func TestDeliveryService_UpdateDelivery_EditWindowClosed(t *testing.T) {
	service, m := newDeliveryService(t)
	fixedToday(m)

	ctx := context.Background()
	m.deliveryRepo.EXPECT().FindByID(ctx, int64(4)).
		Return(&entity.Delivery{
			ID:     4,
			Window: entity.DeliveryWindow{Date: "2026-03-03", TimeStart: "09:00", TimeEnd: "18:00"},
		}, nil)

	_, err := service.UpdateDelivery(ctx, 4, validDeliveryRequest())

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, map[string]string{
		"delivery_date": "changes are allowed no later than 3 days before the delivery",
	}, vErr.Fields())
}

func TestDeliveryService_UpdateDelivery_PastDeliveryFrozen(t *testing.T) {
	service, m := newDeliveryService(t)
	fixedToday(m)

	ctx := context.Background()
	m.deliveryRepo.EXPECT().FindByID(ctx, int64(4)).
		Return(&entity.Delivery{
			ID:     4,
			Window: entity.DeliveryWindow{Date: "2026-03-01", TimeStart: "09:00", TimeEnd: "18:00"},
		}, nil)

	_, err := service.UpdateDelivery(ctx, 4, validDeliveryRequest())

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, map[string]string{"delivery_date": "cannot modify past deliveries"}, vErr.Fields())
}

func TestDeliveryService_DeleteDelivery_RemovesRouteFirst(t *testing.T) {
	service, m := newDeliveryService(t)
	fixedToday(m)

	ctx := context.Background()
	m.deliveryRepo.EXPECT().FindByID(ctx, int64(4)).
		Return(&entity.Delivery{
			ID:     4,
			Window: entity.DeliveryWindow{Date: "2026-03-10", TimeStart: "09:00", TimeEnd: "18:00"},
		}, nil)

	stubTransaction(t, m, ctx)
	m.pointRepo.EXPECT().DeleteByDelivery(ctx, int64(4)).Return(nil)
	m.deliveryRepo.EXPECT().Delete(ctx, int64(4)).Return(nil)

	require.NoError(t, service.DeleteDelivery(ctx, 4))
}

func TestDeliveryService_DeleteDelivery_EditWindowClosed(t *testing.T) {
	service, m := newDeliveryService(t)
	fixedToday(m)

	ctx := context.Background()
	m.deliveryRepo.EXPECT().FindByID(ctx, int64(4)).
		Return(&entity.Delivery{
			ID:     4,
			Window: entity.DeliveryWindow{Date: "2026-03-02", TimeStart: "09:00", TimeEnd: "18:00"},
		}, nil)

	err := service.DeleteDelivery(ctx, 4)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.True(t, vErr.Has("delivery_date"))
}

func TestDeliveryService_GetDelivery_NotFound(t *testing.T) {
	service, m := newDeliveryService(t)

	ctx := context.Background()
	m.deliveryRepo.EXPECT().FindByID(ctx, int64(404)).
		Return(nil, repository.ErrDeliveryNotFound)

	_, err := service.GetDelivery(ctx, 404)
	assert.ErrorIs(t, err, domainerrors.ErrDeliveryNotFound)
}

func TestDeliveryService_ListDeliveries_IgnoresUnparseableDate(t *testing.T) {
	service, m := newDeliveryService(t)

	ctx := context.Background()
	badDate := "next tuesday"

	m.deliveryRepo.EXPECT().FindByFilters(ctx, repository.DeliveryFilters{}).
		Return(nil, nil)

	views, err := service.ListDeliveries(ctx, usecase.DeliveryFilters{Date: &badDate})
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestDeliveryService_ListDeliveries_RejectsUnknownStatus(t *testing.T) {
	service, _ := newDeliveryService(t)

	status := "teleported"
	_, err := service.ListDeliveries(context.Background(), usecase.DeliveryFilters{Status: &status})

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.True(t, vErr.Has("status"))
}

func TestDeliveryService_GenerateDeliveries_RequiresData(t *testing.T) {
	service, _ := newDeliveryService(t)

	_, err := service.GenerateDeliveries(context.Background(), &usecase.GenerateRequest{}, 2)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.True(t, vErr.Has("delivery_data"))
}

func TestDeliveryService_GenerateDeliveries_ReportsBadDatesAndEmptyRoutes(t *testing.T) {
	service, m := newDeliveryService(t)

	ctx := context.Background()
	m.userRepo.EXPECT().FindAll(ctx, mock.AnythingOfType("*entity.Role")).
		Return([]*entity.User{{ID: 7, Role: entity.RoleCourier}}, nil)
	m.vehicleRepo.EXPECT().FindAll(ctx).
		Return([]*entity.Vehicle{{ID: 3}}, nil)

	result, err := service.GenerateDeliveries(ctx, &usecase.GenerateRequest{
		DeliveryData: map[string][]usecase.GenerateRoute{
			"not-a-date": {{Route: []usecase.GeneratePoint{{Latitude: 1, Longitude: 1}}}},
			"2026-03-10": {},
		},
	}, 2)
	require.NoError(t, err)

	assert.Equal(t, 0, result.TotalGenerated)
	require.Contains(t, result.ByDate, "not-a-date")
	assert.Equal(t, []string{"invalid date: not-a-date"}, result.ByDate["not-a-date"].Warnings)
	require.Contains(t, result.ByDate, "2026-03-10")
	assert.Equal(t, []string{"no routes to generate"}, result.ByDate["2026-03-10"].Warnings)
}

func TestDeliveryService_GenerateDeliveries_PartialSuccess(t *testing.T) {
	service, m := newDeliveryService(t)
	fixedToday(m)

	ctx := context.Background()
	courier := &entity.User{ID: 7, Login: "courier1", Role: entity.RoleCourier}
	manager := &entity.User{ID: 2, Login: "manager1", Role: entity.RoleManager}
	vehicle := &entity.Vehicle{ID: 3, Capacity: entity.Capacity{MaxWeight: 100, MaxVolume: 2}}
	product := &entity.Product{
		ID: 5, Weight: 4,
		Dimensions: entity.Dimensions{Length: 10, Width: 10, Height: 10},
	}

	m.userRepo.EXPECT().FindAll(ctx, mock.AnythingOfType("*entity.Role")).
		Return([]*entity.User{courier}, nil)
	m.vehicleRepo.EXPECT().FindAll(ctx).Return([]*entity.Vehicle{vehicle}, nil)

	m.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(courier, nil)
	m.vehicleRepo.EXPECT().FindByID(ctx, int64(3)).Return(vehicle, nil)
	m.productRepo.EXPECT().FindByID(ctx, int64(5)).Return(product, nil)
	m.deliveryRepo.EXPECT().
		FindByVehicleOverlapping(ctx, int64(3), "2026-03-10", "09:00", "18:00").
		Return(nil, nil)

	stubTransaction(t, m, ctx)
	m.deliveryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Delivery")).
		Run(func(_ context.Context, delivery *entity.Delivery) {
			assert.Equal(t, "09:00", delivery.Window.TimeStart)
			assert.Equal(t, "18:00", delivery.Window.TimeEnd)
			delivery.ID = 12
		}).
		Return(nil)
	m.pointRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.DeliveryPoint")).
		Run(func(_ context.Context, point *entity.DeliveryPoint) { point.ID = 23 }).
		Return(nil)
	m.lineRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.PointProduct")).Return(nil)

	stored := &entity.Delivery{
		ID: 12, CourierID: 7, VehicleID: 3, CreatedBy: 2,
		Window: entity.DeliveryWindow{Date: "2026-03-10", TimeStart: "09:00", TimeEnd: "18:00"},
		Status: entity.StatusPlanned,
	}
	m.deliveryRepo.EXPECT().FindByID(ctx, int64(12)).Return(stored, nil)
	m.pointRepo.EXPECT().FindByDeliveries(ctx, []int64{12}).
		Return(map[int64][]*entity.DeliveryPoint{
			12: {{ID: 23, DeliveryID: 12, Sequence: 1, Location: entity.Coordinates{Latitude: 55.75, Longitude: 37.61}}},
		}, nil)
	m.lineRepo.EXPECT().FindByPoints(ctx, []int64{23}).
		Return(map[int64][]*entity.PointProduct{
			23: {{ID: 33, PointID: 23, ProductID: 5, Quantity: 2}},
		}, nil)
	m.userRepo.EXPECT().FindManyByIDs(ctx, []int64{7, 2}).
		Return(map[int64]*entity.User{7: courier, 2: manager}, nil)
	m.vehicleRepo.EXPECT().FindManyByIDs(ctx, []int64{3}).
		Return(map[int64]*entity.Vehicle{3: vehicle}, nil)

	result, err := service.GenerateDeliveries(ctx, &usecase.GenerateRequest{
		DeliveryData: map[string][]usecase.GenerateRoute{
			"2026-03-10": {
				{
					Route:    []usecase.GeneratePoint{{Latitude: 55.75, Longitude: 37.61}},
					Products: []usecase.ProductLineRequest{{ProductID: 5, Quantity: 2}},
				},
				{Route: nil, Products: []usecase.ProductLineRequest{{ProductID: 5, Quantity: 1}}},
			},
		},
	}, 2)
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalGenerated)
	dateResult := result.ByDate["2026-03-10"]
	require.NotNil(t, dateResult)
	assert.Equal(t, 1, dateResult.GeneratedCount)
	require.Len(t, dateResult.Deliveries, 1)
	assert.Equal(t, int64(12), dateResult.Deliveries[0].ID)
	assert.Equal(t, []string{"route #2 skipped: no points"}, dateResult.Warnings)
}

func TestDeliveryService_GenerateDeliveries_ValidationBecomesWarning(t *testing.T) {
	service, m := newDeliveryService(t)
	fixedToday(m)

	ctx := context.Background()
	courier := &entity.User{ID: 7, Role: entity.RoleCourier}
	vehicle := &entity.Vehicle{ID: 3, Capacity: entity.Capacity{MaxWeight: 50, MaxVolume: 2}}
	heavy := &entity.Product{
		ID: 5, Weight: 400,
		Dimensions: entity.Dimensions{Length: 10, Width: 10, Height: 10},
	}

	m.userRepo.EXPECT().FindAll(ctx, mock.AnythingOfType("*entity.Role")).
		Return([]*entity.User{courier}, nil)
	m.vehicleRepo.EXPECT().FindAll(ctx).Return([]*entity.Vehicle{vehicle}, nil)

	m.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(courier, nil)
	m.vehicleRepo.EXPECT().FindByID(ctx, int64(3)).Return(vehicle, nil)
	m.productRepo.EXPECT().FindByID(ctx, int64(5)).Return(heavy, nil)
	m.deliveryRepo.EXPECT().
		FindByVehicleOverlapping(ctx, int64(3), "2026-03-10", "09:00", "18:00").
		Return(nil, nil)

	result, err := service.GenerateDeliveries(ctx, &usecase.GenerateRequest{
		DeliveryData: map[string][]usecase.GenerateRoute{
			"2026-03-10": {
				{
					Route:    []usecase.GeneratePoint{{Latitude: 55.75, Longitude: 37.61}},
					Products: []usecase.ProductLineRequest{{ProductID: 5, Quantity: 2}},
				},
			},
		},
	}, 2)
	require.NoError(t, err)

	assert.Equal(t, 0, result.TotalGenerated)
	dateResult := result.ByDate["2026-03-10"]
	require.NotNil(t, dateResult)
	assert.Empty(t, dateResult.Deliveries)
	assert.Equal(t, []string{
		"route #1: weight: vehicle capacity exceeded: required 800.00 kg, available 50.00 kg",
	}, dateResult.Warnings)
}

func TestDeliveryService_CreateDelivery_AllowsExactCapacity(t *testing.T) {
	service, m := newDeliveryService(t)
	fixedToday(m)

	ctx := context.Background()
	courier := &entity.User{ID: 7, Login: "courier1", Role: entity.RoleCourier}
	manager := &entity.User{ID: 2, Login: "manager1", Role: entity.RoleManager}
	// Existing load 80 kg plus the requested 8 kg lands exactly on the limit.
	vehicle := &entity.Vehicle{
		ID: 3, Brand: "Ford", LicensePlate: "A123BC",
		Capacity: entity.Capacity{MaxWeight: 88, MaxVolume: 2},
	}
	product := &entity.Product{
		ID: 5, Name: "Box", Weight: 4,
		Dimensions: entity.Dimensions{Length: 10, Width: 10, Height: 10},
	}

	m.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(courier, nil)
	m.vehicleRepo.EXPECT().FindByID(ctx, int64(3)).Return(vehicle, nil)
	m.productRepo.EXPECT().FindByID(ctx, int64(5)).Return(product, nil)
	m.deliveryRepo.EXPECT().
		FindByVehicleOverlapping(ctx, int64(3), "2026-03-10", "09:00", "18:00").
		Return([]*entity.Delivery{{ID: 99, VehicleID: 3}}, nil)
	m.pointRepo.EXPECT().FindByDeliveries(ctx, []int64{99}).
		Return(map[int64][]*entity.DeliveryPoint{99: {{ID: 40, DeliveryID: 99}}}, nil)
	m.lineRepo.EXPECT().FindByPoints(ctx, []int64{40}).
		Return(map[int64][]*entity.PointProduct{40: {{ID: 50, PointID: 40, ProductID: 5, Quantity: 20}}}, nil)

	stubTransaction(t, m, ctx)
	m.deliveryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Delivery")).
		Run(func(_ context.Context, delivery *entity.Delivery) {
			delivery.ID = 11
		}).
		Return(nil)
	m.pointRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.DeliveryPoint")).
		Run(func(_ context.Context, point *entity.DeliveryPoint) {
			point.ID = 21
		}).
		Return(nil)
	m.lineRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.PointProduct")).Return(nil)

	stored := &entity.Delivery{
		ID: 11, CourierID: 7, VehicleID: 3, CreatedBy: 2,
		Window: entity.DeliveryWindow{Date: "2026-03-10", TimeStart: "09:00", TimeEnd: "18:00"},
		Status: entity.StatusPlanned,
	}
	m.deliveryRepo.EXPECT().FindByID(ctx, int64(11)).Return(stored, nil)
	m.pointRepo.EXPECT().FindByDeliveries(ctx, []int64{11}).
		Return(map[int64][]*entity.DeliveryPoint{
			11: {{ID: 21, DeliveryID: 11, Sequence: 1, Location: entity.Coordinates{Latitude: 55.75, Longitude: 37.61}}},
		}, nil)
	m.lineRepo.EXPECT().FindByPoints(ctx, []int64{21}).
		Return(map[int64][]*entity.PointProduct{
			21: {{ID: 31, PointID: 21, ProductID: 5, Quantity: 2}},
		}, nil)
	m.userRepo.EXPECT().FindManyByIDs(ctx, []int64{7, 2}).
		Return(map[int64]*entity.User{7: courier, 2: manager}, nil)
	m.vehicleRepo.EXPECT().FindManyByIDs(ctx, []int64{3}).
		Return(map[int64]*entity.Vehicle{3: vehicle}, nil)

	view, err := service.CreateDelivery(ctx, validDeliveryRequest(), 2)
	require.NoError(t, err)
	require.NotNil(t, view)

	assert.Equal(t, int64(11), view.ID)
	assert.Equal(t, 8.0, view.TotalWeight)
}

func TestDeliveryService_GenerateDeliveries_NoCouriersAvailable(t *testing.T) {
	service, m := newDeliveryService(t)

	ctx := context.Background()
	m.userRepo.EXPECT().FindAll(ctx, mock.AnythingOfType("*entity.Role")).
		Return([]*entity.User{}, nil)
	m.vehicleRepo.EXPECT().FindAll(ctx).
		Return([]*entity.Vehicle{{ID: 3}}, nil)

	result, err := service.GenerateDeliveries(ctx, &usecase.GenerateRequest{
		DeliveryData: map[string][]usecase.GenerateRoute{
			"2026-03-10": {
				{
					Route:    []usecase.GeneratePoint{{Latitude: 55.75, Longitude: 37.61}},
					Products: []usecase.ProductLineRequest{{ProductID: 5, Quantity: 2}},
				},
			},
		},
	}, 2)
	require.NoError(t, err)

	assert.Equal(t, 0, result.TotalGenerated)
	require.Contains(t, result.ByDate, "2026-03-10")
	dateResult := result.ByDate["2026-03-10"]
	assert.Equal(t, 0, dateResult.GeneratedCount)
	assert.Empty(t, dateResult.Deliveries)
	assert.Equal(t, []string{"no available couriers"}, dateResult.Warnings)
}
