package service

import "courier/internal/domain/entity"

// DistanceCalculator computes the distance between two geographic points in
// kilometers.
type DistanceCalculator interface {
	Distance(from, to entity.Coordinates) float64
}
