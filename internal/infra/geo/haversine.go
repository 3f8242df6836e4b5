// Package geo implements great-circle distance calculation.
package geo

import (
	"math"

	"courier/internal/domain/entity"
	"courier/internal/domain/service"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

type haversineCalculator struct{}

// NewHaversineCalculator returns a DistanceCalculator using the haversine
// great-circle approximation.
func NewHaversineCalculator() service.DistanceCalculator {
	return haversineCalculator{}
}

// Distance returns the great-circle distance between two points in
// kilometers, rounded to two decimal places.
func (haversineCalculator) Distance(from, to entity.Coordinates) float64 {
	latFrom := degToRad(from.Latitude)
	latTo := degToRad(to.Latitude)
	deltaLat := degToRad(to.Latitude - from.Latitude)
	deltaLon := degToRad(to.Longitude - from.Longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(latFrom)*math.Cos(latTo)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusKm*c*100) / 100
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
