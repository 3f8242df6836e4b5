package repository

import (
	"context"

	"courier/internal/domain/entity"
)

// DeliveryPointRepository defines the persistence operations for route points
type DeliveryPointRepository interface {
	// Create persists a new point and fills the generated ID
	Create(ctx context.Context, point *entity.DeliveryPoint) error

	// DeleteByDelivery removes all points of a delivery; product lines cascade
	DeleteByDelivery(ctx context.Context, deliveryID int64) error

	// FindByDelivery returns the points of a delivery ordered by sequence
	FindByDelivery(ctx context.Context, deliveryID int64) ([]*entity.DeliveryPoint, error)

	// FindByDeliveries returns points for a set of deliveries keyed by delivery
	// ID, each slice ordered by sequence
	FindByDeliveries(ctx context.Context, deliveryIDs []int64) (map[int64][]*entity.DeliveryPoint, error)
}

// PointProductRepository defines the persistence operations for product lines
// at delivery points
type PointProductRepository interface {
	// Create persists a new product line and fills the generated ID
	Create(ctx context.Context, line *entity.PointProduct) error

	// FindByPoints returns product lines for a set of points keyed by point ID
	FindByPoints(ctx context.Context, pointIDs []int64) (map[int64][]*entity.PointProduct, error)
}
