package entity

// DeliveryStatus is the lifecycle state of a delivery.
// Transitions (planned -> in_progress -> completed, or cancellation) are set
// by external actors; the scheduling engine only creates deliveries as
// planned and reads the status for overlap and deletion-blocking checks.
type DeliveryStatus string

const (
	// StatusPlanned is the initial state of every created delivery.
	StatusPlanned DeliveryStatus = "planned"
	// StatusInProgress indicates the courier is executing the route.
	StatusInProgress DeliveryStatus = "in_progress"
	// StatusCompleted indicates the route has been finished.
	StatusCompleted DeliveryStatus = "completed"
	// StatusCancelled indicates the delivery was called off.
	StatusCancelled DeliveryStatus = "cancelled"
)

// String returns the string representation of the DeliveryStatus.
func (s DeliveryStatus) String() string {
	return string(s)
}

// IsValid checks if the DeliveryStatus is a valid value.
func (s DeliveryStatus) IsValid() bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the delivery counts toward vehicle capacity and
// blocks deletion of its courier, vehicle and products. Completed and
// cancelled deliveries are excluded from overlap aggregation.
func (s DeliveryStatus) IsActive() bool {
	return s == StatusPlanned || s == StatusInProgress
}
