package usecase

import "context"

// CourierDeliveryFilters narrows a courier's own delivery listing. Nil
// fields are ignored.
type CourierDeliveryFilters struct {
	Date     *string
	Status   *string
	DateFrom *string
	DateTo   *string
}

// CourierUsecase defines the courier-facing use cases
type CourierUsecase interface {
	// ListCourierDeliveries returns compact summaries of the courier's own
	// deliveries matching the filters
	ListCourierDeliveries(ctx context.Context, courierID int64, filters CourierDeliveryFilters) ([]*CourierDeliveryView, error)

	// GetCourierDelivery returns one of the courier's own deliveries in full;
	// other couriers' deliveries are forbidden
	GetCourierDelivery(ctx context.Context, id, courierID int64) (*DeliveryView, error)
}
