package repository

import (
	"context"

	"courier/internal/domain/entity"
	"courier/internal/errors"
)

var (
	// ErrVehicleNotFound indicates the vehicle does not exist
	ErrVehicleNotFound = errors.New("vehicle not found")
	// ErrDuplicateLicensePlate indicates the license plate is already registered
	ErrDuplicateLicensePlate = errors.New("license plate already exists")
)

// VehicleRepository defines the persistence operations for vehicles
type VehicleRepository interface {
	// Create persists a new vehicle and fills the generated ID
	Create(ctx context.Context, vehicle *entity.Vehicle) error

	// Update persists changes to an existing vehicle
	Update(ctx context.Context, vehicle *entity.Vehicle) error

	// Delete removes a vehicle by ID
	Delete(ctx context.Context, id int64) error

	// FindByID returns a vehicle by ID, ErrVehicleNotFound if absent
	FindByID(ctx context.Context, id int64) (*entity.Vehicle, error)

	// FindAll returns all vehicles ordered by ID
	FindAll(ctx context.Context) ([]*entity.Vehicle, error)

	// FindManyByIDs returns vehicles keyed by ID; missing IDs are simply absent
	FindManyByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Vehicle, error)
}
