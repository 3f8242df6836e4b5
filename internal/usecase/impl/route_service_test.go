package impl

import (
	"context"
	"testing"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	mockSvc "courier/internal/mocks/service"
	"courier/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouteService(t *testing.T) (usecase.RouteUsecase, *mockSvc.MockDistanceCalculator) {
	distance := mockSvc.NewMockDistanceCalculator(t)

	service := NewRouteService(RouteServiceParams{Distance: distance})

	return service, distance
}

func TestRouteService_CalculateRoute_RequiresTwoPoints(t *testing.T) {
	service, _ := newRouteService(t)

	_, err := service.CalculateRoute(context.Background(), &usecase.RouteRequest{
		Points: []usecase.RoutePoint{{Latitude: 55.75, Longitude: 37.61}},
	})

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, map[string]string{"points": "route must contain at least two points"}, vErr.Fields())
}

func TestRouteService_CalculateRoute_SumsConsecutiveLegs(t *testing.T) {
	service, distance := newRouteService(t)

	a := entity.Coordinates{Latitude: 55.75, Longitude: 37.61}
	b := entity.Coordinates{Latitude: 55.80, Longitude: 37.70}
	c := entity.Coordinates{Latitude: 55.90, Longitude: 37.80}

	distance.EXPECT().Distance(a, b).Return(6.0)
	distance.EXPECT().Distance(b, c).Return(4.0)

	plan, err := service.CalculateRoute(context.Background(), &usecase.RouteRequest{
		Points: []usecase.RoutePoint{
			{Latitude: 55.75, Longitude: 37.61},
			{Latitude: 55.80, Longitude: 37.70},
			{Latitude: 55.90, Longitude: 37.80},
		},
	})
	require.NoError(t, err)

	// 10 km at 30 km/h is 20 minutes, plus a 30% buffer.
	assert.Equal(t, 10.0, plan.DistanceKm)
	assert.Equal(t, 26, plan.DurationMinutes)
	assert.Equal(t, "09:00", plan.SuggestedTime.Start)
	assert.Equal(t, "09:26", plan.SuggestedTime.End)
}

func TestRouteService_CalculateRoute_FloorsShortRoutes(t *testing.T) {
	service, distance := newRouteService(t)

	a := entity.Coordinates{Latitude: 55.75, Longitude: 37.61}
	b := entity.Coordinates{Latitude: 55.7501, Longitude: 37.6101}

	distance.EXPECT().Distance(a, b).Return(0.01)

	plan, err := service.CalculateRoute(context.Background(), &usecase.RouteRequest{
		Points: []usecase.RoutePoint{
			{Latitude: 55.75, Longitude: 37.61},
			{Latitude: 55.7501, Longitude: 37.6101},
		},
	})
	require.NoError(t, err)

	// The raw estimate rounds to zero, so the minimum kicks in before the
	// buffer is applied.
	assert.Equal(t, 7, plan.DurationMinutes)
	assert.Equal(t, "09:07", plan.SuggestedTime.End)
}
