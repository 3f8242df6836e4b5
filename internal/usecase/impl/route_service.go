package impl

import (
	"context"
	"math"
	"time"

	"go.uber.org/fx"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/service"
	"courier/internal/usecase"
)

const (
	// previewSpeedKmh is the average urban speed assumed for route previews.
	previewSpeedKmh = 30.0
	// previewMinMinutes is the floor for very short routes.
	previewMinMinutes = 5
	// previewBufferRatio pads the raw travel estimate for stops and traffic.
	previewBufferRatio = 0.3
	// workdayStart anchors the suggested delivery window.
	workdayStart = "09:00"
)

type routeService struct {
	distance service.DistanceCalculator
}

// RouteServiceParams holds dependencies for RouteService, injected by Fx.
type RouteServiceParams struct {
	fx.In

	Distance service.DistanceCalculator
}

// NewRouteService creates a new route preview service instance
func NewRouteService(params RouteServiceParams) usecase.RouteUsecase {
	return &routeService{
		distance: params.Distance,
	}
}

// CalculateRoute estimates distance, duration and a suggested window for an
// ordered list of stops. Distance is summed over consecutive legs.
func (s *routeService) CalculateRoute(_ context.Context, req *usecase.RouteRequest) (*usecase.RoutePlan, error) {
	if len(req.Points) < 2 {
		return nil, domainerrors.NewFieldError("points", "route must contain at least two points")
	}

	var distance float64
	for i := 0; i < len(req.Points)-1; i++ {
		distance += s.distance.Distance(
			entity.Coordinates{Latitude: req.Points[i].Latitude, Longitude: req.Points[i].Longitude},
			entity.Coordinates{Latitude: req.Points[i+1].Latitude, Longitude: req.Points[i+1].Longitude},
		)
	}

	durationMinutes := int(math.Round(distance / previewSpeedKmh * 60))
	if durationMinutes < previewMinMinutes {
		durationMinutes = previewMinMinutes
	}

	bufferMinutes := int(math.Round(float64(durationMinutes) * previewBufferRatio))
	totalMinutes := durationMinutes + bufferMinutes

	start, _ := time.Parse(entity.TimeLayout, workdayStart)
	end := start.Add(time.Duration(totalMinutes) * time.Minute)

	return &usecase.RoutePlan{
		DistanceKm:      math.Round(distance*100) / 100,
		DurationMinutes: totalMinutes,
		SuggestedTime: usecase.SuggestedWindow{
			Start: workdayStart,
			End:   end.Format(entity.TimeLayout),
		},
	}, nil
}
