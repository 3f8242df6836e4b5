package repository

import (
	"context"

	"courier/internal/domain/entity"
	"courier/internal/errors"
)

// ErrDeliveryNotFound indicates the delivery does not exist
var ErrDeliveryNotFound = errors.New("delivery not found")

// DeliveryFilters narrows a delivery listing. Nil fields are ignored.
type DeliveryFilters struct {
	Date      *string
	DateFrom  *string
	DateTo    *string
	CourierID *int64
	Status    *entity.DeliveryStatus
}

// DeliveryRepository defines the persistence operations for deliveries
type DeliveryRepository interface {
	// Create persists a new delivery and fills the generated ID and timestamps
	Create(ctx context.Context, delivery *entity.Delivery) error

	// Update persists changes to an existing delivery
	Update(ctx context.Context, delivery *entity.Delivery) error

	// Delete removes a delivery by ID; points and product lines cascade
	Delete(ctx context.Context, id int64) error

	// FindByID returns a delivery by ID, ErrDeliveryNotFound if absent
	FindByID(ctx context.Context, id int64) (*entity.Delivery, error)

	// FindByFilters returns deliveries matching the filters, newest date first
	FindByFilters(ctx context.Context, filters DeliveryFilters) ([]*entity.Delivery, error)

	// FindManyByIDs returns deliveries keyed by ID; missing IDs are simply absent
	FindManyByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Delivery, error)

	// FindByVehicleOverlapping returns active deliveries of the vehicle on the
	// given date whose windows overlap [timeStart, timeEnd). Completed and
	// cancelled deliveries are excluded.
	FindByVehicleOverlapping(ctx context.Context, vehicleID int64, date, timeStart, timeEnd string) ([]*entity.Delivery, error)

	// FindByVehicle returns active deliveries assigned to the vehicle
	FindByVehicle(ctx context.Context, vehicleID int64) ([]*entity.Delivery, error)

	// FindByCourier returns active deliveries assigned to the courier
	FindByCourier(ctx context.Context, courierID int64) ([]*entity.Delivery, error)

	// FindByProduct returns active deliveries referencing the product at any point
	FindByProduct(ctx context.Context, productID int64) ([]*entity.Delivery, error)
}
