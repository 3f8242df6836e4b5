package usecase

import "context"

// RoutePoint is one stop of a route preview request.
type RoutePoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RouteRequest is the payload of a route preview calculation.
type RouteRequest struct {
	Points []RoutePoint `json:"points"`
}

// SuggestedWindow is the recommended delivery window of a route preview,
// anchored at the start of the working day.
type SuggestedWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// RoutePlan is the outcome of a route preview: total distance over
// consecutive legs and a buffered duration estimate.
type RoutePlan struct {
	DistanceKm      float64         `json:"distance_km"`
	DurationMinutes int             `json:"duration_minutes"`
	SuggestedTime   SuggestedWindow `json:"suggested_time"`
}

// RouteUsecase defines the route preview use cases
type RouteUsecase interface {
	// CalculateRoute estimates distance, duration and a suggested window for
	// an ordered list of stops
	CalculateRoute(ctx context.Context, req *RouteRequest) (*RoutePlan, error)
}
