package entity

import "time"

// Delivery is the aggregate root of the scheduling engine: a courier and a
// vehicle assigned to an ordered sequence of route points within a delivery
// window. Points and their product lines are owned by the delivery and are
// replaced wholesale on update.
type Delivery struct {
	ID        int64
	CourierID int64 // References a User with RoleCourier.
	VehicleID int64
	CreatedBy int64 // The manager who created the delivery.
	Window    DeliveryWindow
	Status    DeliveryStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DeliveryPoint is one stop of a delivery route. Sequence is 1-based and
// unique per delivery; the stop order defines the route order.
type DeliveryPoint struct {
	ID         int64
	DeliveryID int64
	Sequence   int
	Location   Coordinates
	Products   []PointProduct
}

// PointProduct is a product line at a delivery point.
type PointProduct struct {
	ID        int64
	PointID   int64
	ProductID int64
	Quantity  int
}
