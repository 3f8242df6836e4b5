package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"courier/internal/domain/entity"
)

func TestHaversine_ZeroDistanceForSamePoint(t *testing.T) {
	calc := NewHaversineCalculator()

	point := entity.Coordinates{Latitude: 55.7558, Longitude: 37.6173}
	assert.Equal(t, 0.0, calc.Distance(point, point))
}

func TestHaversine_MoscowToSaintPetersburg(t *testing.T) {
	calc := NewHaversineCalculator()

	moscow := entity.Coordinates{Latitude: 55.7558, Longitude: 37.6173}
	spb := entity.Coordinates{Latitude: 59.9343, Longitude: 30.3351}

	distance := calc.Distance(moscow, spb)
	assert.InDelta(t, 632.0, distance, 5.0)
}

func TestHaversine_Symmetry(t *testing.T) {
	calc := NewHaversineCalculator()

	a := entity.Coordinates{Latitude: 48.8566, Longitude: 2.3522}
	b := entity.Coordinates{Latitude: 51.5074, Longitude: -0.1278}

	assert.Equal(t, calc.Distance(a, b), calc.Distance(b, a))
}

func TestHaversine_RoundsToTwoDecimals(t *testing.T) {
	calc := NewHaversineCalculator()

	a := entity.Coordinates{Latitude: 55.7558, Longitude: 37.6173}
	b := entity.Coordinates{Latitude: 55.7560, Longitude: 37.6180}

	distance := calc.Distance(a, b)
	assert.InDelta(t, math.Round(distance*100)/100, distance, 1e-9)
}
