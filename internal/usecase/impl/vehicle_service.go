package impl

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/usecase"
)

type vehicleService struct {
	vehicleRepo  repository.VehicleRepository
	deliveryRepo repository.DeliveryRepository
}

// VehicleServiceParams holds dependencies for VehicleService, injected by Fx.
type VehicleServiceParams struct {
	fx.In

	VehicleRepo  repository.VehicleRepository
	DeliveryRepo repository.DeliveryRepository
}

// NewVehicleService creates a new vehicle management service instance
func NewVehicleService(params VehicleServiceParams) usecase.VehicleUsecase {
	return &vehicleService{
		vehicleRepo:  params.VehicleRepo,
		deliveryRepo: params.DeliveryRepo,
	}
}

// ListVehicles returns all vehicles.
func (s *vehicleService) ListVehicles(ctx context.Context) ([]*usecase.VehicleView, error) {
	vehicles, err := s.vehicleRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vehicles")
	}

	views := make([]*usecase.VehicleView, 0, len(vehicles))
	for _, vehicle := range vehicles {
		views = append(views, toVehicleView(vehicle))
	}

	return views, nil
}

// GetVehicle returns a single vehicle by ID.
func (s *vehicleService) GetVehicle(ctx context.Context, id int64) (*usecase.VehicleView, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return nil, domainerrors.ErrVehicleNotFound
		}

		return nil, errors.Wrap(err, "failed to find vehicle")
	}

	return toVehicleView(vehicle), nil
}

// CreateVehicle registers a new vehicle.
func (s *vehicleService) CreateVehicle(ctx context.Context, req *usecase.VehicleRequest) (*usecase.VehicleView, error) {
	vehicle, err := s.validateRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		if errors.Is(err, repository.ErrDuplicateLicensePlate) {
			return nil, domainerrors.NewFieldError("license_plate", "vehicle with this license plate already exists")
		}

		return nil, errors.Wrap(err, "failed to create vehicle")
	}

	return toVehicleView(vehicle), nil
}

// UpdateVehicle replaces the attributes of an existing vehicle.
func (s *vehicleService) UpdateVehicle(ctx context.Context, id int64, req *usecase.VehicleRequest) (*usecase.VehicleView, error) {
	if _, err := s.vehicleRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return nil, domainerrors.ErrVehicleNotFound
		}

		return nil, errors.Wrap(err, "failed to find vehicle")
	}

	vehicle, err := s.validateRequest(req)
	if err != nil {
		return nil, err
	}
	vehicle.ID = id

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		if errors.Is(err, repository.ErrDuplicateLicensePlate) {
			return nil, domainerrors.NewFieldError("license_plate", "vehicle with this license plate already exists")
		}

		return nil, errors.Wrap(err, "failed to update vehicle")
	}

	return toVehicleView(vehicle), nil
}

// DeleteVehicle removes a vehicle unless it has active deliveries.
func (s *vehicleService) DeleteVehicle(ctx context.Context, id int64) error {
	if _, err := s.vehicleRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return domainerrors.ErrVehicleNotFound
		}

		return errors.Wrap(err, "failed to find vehicle")
	}

	active, err := s.deliveryRepo.FindByVehicle(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to check vehicle deliveries")
	}
	if len(active) > 0 {
		return domainerrors.NewFieldError("id", "vehicle with active deliveries cannot be deleted")
	}

	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete vehicle")
	}

	return nil
}

func (s *vehicleService) validateRequest(req *usecase.VehicleRequest) (*entity.Vehicle, error) {
	fields := map[string]string{}
	brand := strings.TrimSpace(req.Brand)
	license := strings.TrimSpace(req.LicensePlate)

	if brand == "" {
		fields["brand"] = "brand is required"
	}
	if license == "" {
		fields["license_plate"] = "license plate is required"
	}
	if req.MaxWeight <= 0 {
		fields["max_weight"] = "max weight must be positive"
	}
	if req.MaxVolume <= 0 {
		fields["max_volume"] = "max volume must be positive"
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields)
	}

	return &entity.Vehicle{
		Brand:        brand,
		LicensePlate: license,
		Capacity: entity.Capacity{
			MaxWeight: req.MaxWeight,
			MaxVolume: req.MaxVolume,
		},
	}, nil
}
