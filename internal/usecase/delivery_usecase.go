package usecase

import (
	"context"

	"courier/internal/domain/entity"
)

// ProductLineRequest is one product line of a route point payload.
type ProductLineRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// PointRequest is one route point of a delivery payload. Coordinates are
// pointers so a missing value can be told apart from zero.
type PointRequest struct {
	Sequence  int                  `json:"sequence"`
	Latitude  *float64             `json:"latitude"`
	Longitude *float64             `json:"longitude"`
	Products  []ProductLineRequest `json:"products"`
}

// DeliveryRequest is the payload for creating or replacing a delivery.
type DeliveryRequest struct {
	CourierID int64          `json:"courier_id"`
	VehicleID int64          `json:"vehicle_id"`
	Date      string         `json:"delivery_date"`
	TimeStart string         `json:"time_start"`
	TimeEnd   string         `json:"time_end"`
	Points    []PointRequest `json:"points"`
}

// DeliveryFilters narrows a delivery listing. Nil fields are ignored.
type DeliveryFilters struct {
	Date      *string
	CourierID *int64
	Status    *string
}

// GeneratePoint is one stop of a generation route.
type GeneratePoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GenerateRoute is one candidate route of a generation request. Its product
// set is attached to every stop of the route.
type GenerateRoute struct {
	Route    []GeneratePoint      `json:"route"`
	Products []ProductLineRequest `json:"products"`
}

// GenerateRequest is the payload for bulk delivery generation, keyed by
// delivery date.
type GenerateRequest struct {
	DeliveryData map[string][]GenerateRoute `json:"delivery_data"`
}

// GenerateDateResult is the generation outcome for a single date.
type GenerateDateResult struct {
	GeneratedCount int             `json:"generated_count"`
	Deliveries     []*DeliveryView `json:"deliveries"`
	Warnings       []string        `json:"warnings,omitempty"`
}

// GenerateResult is the overall outcome of a generation request. Failed
// routes become warnings, successfully validated ones are persisted.
type GenerateResult struct {
	TotalGenerated int                            `json:"total_generated"`
	ByDate         map[string]*GenerateDateResult `json:"by_date"`
}

// DeliveryUsecase defines the delivery scheduling use cases
type DeliveryUsecase interface {
	// ListDeliveries returns hydrated deliveries matching the filters
	ListDeliveries(ctx context.Context, filters DeliveryFilters) ([]*DeliveryView, error)

	// GetDelivery returns a single hydrated delivery by ID
	GetDelivery(ctx context.Context, id int64) (*DeliveryView, error)

	// CreateDelivery validates the payload against capacity and route-time
	// rules and persists the delivery with its points and product lines
	CreateDelivery(ctx context.Context, req *DeliveryRequest, createdBy int64) (*DeliveryView, error)

	// UpdateDelivery replaces an editable delivery and its route wholesale
	UpdateDelivery(ctx context.Context, id int64, req *DeliveryRequest) (*DeliveryView, error)

	// DeleteDelivery removes an editable delivery with its route
	DeleteDelivery(ctx context.Context, id int64) error

	// GenerateDeliveries bulk-creates deliveries from route data, assigning
	// couriers and vehicles round-robin; per-route failures become warnings
	GenerateDeliveries(ctx context.Context, req *GenerateRequest, createdBy int64) (*GenerateResult, error)

	// PresentDeliveries hydrates already loaded deliveries into full views
	PresentDeliveries(ctx context.Context, deliveries []*entity.Delivery) ([]*DeliveryView, error)
}
