package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"courier/internal/domain/entity"
	"courier/internal/domain/repository"
	"courier/internal/infra/persistence/model"
)

// vehicleRepository implements the repository.VehicleRepository interface.
type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository is the constructor for vehicleRepository.
func NewVehicleRepository(db *gorm.DB) repository.VehicleRepository {
	return &vehicleRepository{
		db: db,
	}
}

// Create persists a new vehicle and fills the generated ID.
func (repo *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	vehicleM := fromVehicleDomain(vehicle)

	if err := repo.db.WithContext(ctx).Create(vehicleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLicensePlate
		}

		return errors.Wrap(err, "failed to create vehicle")
	}

	vehicle.ID = vehicleM.ID

	return nil
}

// Update persists changes to an existing vehicle.
func (repo *vehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VehicleModel{}).
		Where("id = ?", vehicle.ID).
		Updates(map[string]any{
			"brand":         vehicle.Brand,
			"license_plate": vehicle.LicensePlate,
			"max_weight":    vehicle.Capacity.MaxWeight,
			"max_volume":    vehicle.Capacity.MaxVolume,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateLicensePlate
		}

		return errors.Wrap(result.Error, "failed to update vehicle")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVehicleNotFound
	}

	return nil
}

// Delete removes a vehicle by ID.
func (repo *vehicleRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VehicleModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete vehicle")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVehicleNotFound
	}

	return nil
}

// FindByID retrieves a vehicle by its unique ID.
func (repo *vehicleRepository) FindByID(ctx context.Context, id int64) (*entity.Vehicle, error) {
	var vehicleM model.VehicleModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&vehicleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVehicleNotFound
		}

		return nil, errors.Wrap(err, "failed to find vehicle by ID")
	}

	return toVehicleDomain(&vehicleM), nil
}

// FindAll retrieves all vehicles ordered by ID.
func (repo *vehicleRepository) FindAll(ctx context.Context) ([]*entity.Vehicle, error) {
	var vehicleModels []*model.VehicleModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&vehicleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find vehicles")
	}

	vehicles := make([]*entity.Vehicle, 0, len(vehicleModels))
	for _, vehicleM := range vehicleModels {
		vehicles = append(vehicles, toVehicleDomain(vehicleM))
	}

	return vehicles, nil
}

// FindManyByIDs retrieves vehicles keyed by ID. Missing IDs are simply absent.
func (repo *vehicleRepository) FindManyByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Vehicle, error) {
	if len(ids) == 0 {
		return map[int64]*entity.Vehicle{}, nil
	}

	var vehicleModels []*model.VehicleModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&vehicleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find vehicles by IDs")
	}

	vehicles := make(map[int64]*entity.Vehicle, len(vehicleModels))
	for _, vehicleM := range vehicleModels {
		vehicles[vehicleM.ID] = toVehicleDomain(vehicleM)
	}

	return vehicles, nil
}

// --- Mapper Functions ---

// toVehicleDomain converts a GORM VehicleModel to a domain Vehicle entity.
func toVehicleDomain(data *model.VehicleModel) *entity.Vehicle {
	if data == nil {
		return nil
	}

	return &entity.Vehicle{
		ID:           data.ID,
		Brand:        data.Brand,
		LicensePlate: data.LicensePlate,
		Capacity: entity.Capacity{
			MaxWeight: data.MaxWeight,
			MaxVolume: data.MaxVolume,
		},
	}
}

// fromVehicleDomain converts a domain Vehicle entity to a GORM VehicleModel.
func fromVehicleDomain(data *entity.Vehicle) *model.VehicleModel {
	if data == nil {
		return nil
	}

	return &model.VehicleModel{
		ID:           data.ID,
		Brand:        data.Brand,
		LicensePlate: data.LicensePlate,
		MaxWeight:    data.Capacity.MaxWeight,
		MaxVolume:    data.Capacity.MaxVolume,
	}
}
