package usecase

import "context"

// VehicleRequest carries the payload for creating or replacing a vehicle.
type VehicleRequest struct {
	Brand        string  `json:"brand"`
	LicensePlate string  `json:"license_plate"`
	MaxWeight    float64 `json:"max_weight"`
	MaxVolume    float64 `json:"max_volume"`
}

// VehicleUsecase defines the vehicle management use cases
type VehicleUsecase interface {
	// ListVehicles returns all vehicles
	ListVehicles(ctx context.Context) ([]*VehicleView, error)

	// GetVehicle returns a single vehicle by ID
	GetVehicle(ctx context.Context, id int64) (*VehicleView, error)

	// CreateVehicle registers a new vehicle
	CreateVehicle(ctx context.Context, req *VehicleRequest) (*VehicleView, error)

	// UpdateVehicle replaces the attributes of an existing vehicle
	UpdateVehicle(ctx context.Context, id int64, req *VehicleRequest) (*VehicleView, error)

	// DeleteVehicle removes a vehicle unless it has active deliveries
	DeleteVehicle(ctx context.Context, id int64) error
}
