package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"courier/internal/domain/entity"
	"courier/internal/domain/repository"
	"courier/internal/infra/persistence/model"
)

// inactiveStatuses are excluded from overlap aggregation and blocking checks.
var inactiveStatuses = []string{
	entity.StatusCancelled.String(),
	entity.StatusCompleted.String(),
}

// deliveryRepository implements the repository.DeliveryRepository interface.
type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository is the constructor for deliveryRepository.
func NewDeliveryRepository(db *gorm.DB) repository.DeliveryRepository {
	return &deliveryRepository{
		db: db,
	}
}

// Create persists a new delivery and fills the generated ID and timestamps.
func (repo *deliveryRepository) Create(ctx context.Context, delivery *entity.Delivery) error {
	deliveryM := fromDeliveryDomain(delivery)

	if err := repo.db.WithContext(ctx).Create(deliveryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "delivery references a missing courier or vehicle")
		}

		return errors.Wrap(err, "failed to create delivery")
	}

	delivery.ID = deliveryM.ID
	delivery.CreatedAt = deliveryM.CreatedAt
	delivery.UpdatedAt = deliveryM.UpdatedAt

	return nil
}

// Update persists changes to an existing delivery.
func (repo *deliveryRepository) Update(ctx context.Context, delivery *entity.Delivery) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryModel{}).
		Where("id = ?", delivery.ID).
		Updates(map[string]any{
			"courier_id": delivery.CourierID,
			"vehicle_id": delivery.VehicleID,
			"date":       delivery.Window.Date,
			"time_start": delivery.Window.TimeStart,
			"time_end":   delivery.Window.TimeEnd,
			"status":     delivery.Status.String(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update delivery")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeliveryNotFound
	}

	return nil
}

// Delete removes a delivery by ID. Points and product lines cascade.
func (repo *deliveryRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DeliveryModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete delivery")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeliveryNotFound
	}

	return nil
}

// FindByID retrieves a delivery by its unique ID.
func (repo *deliveryRepository) FindByID(ctx context.Context, id int64) (*entity.Delivery, error) {
	var deliveryM model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deliveryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery by ID")
	}

	return toDeliveryDomain(&deliveryM), nil
}

// FindByFilters retrieves deliveries matching the filters, newest date first.
func (repo *deliveryRepository) FindByFilters(ctx context.Context, filters repository.DeliveryFilters) ([]*entity.Delivery, error) {
	query := repo.db.WithContext(ctx).Order("date DESC, time_start ASC")

	if filters.Date != nil {
		query = query.Where("date = ?", *filters.Date)
	}
	if filters.DateFrom != nil {
		query = query.Where("date >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("date <= ?", *filters.DateTo)
	}
	if filters.CourierID != nil {
		query = query.Where("courier_id = ?", *filters.CourierID)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", filters.Status.String())
	}

	var deliveryModels []*model.DeliveryModel
	if err := query.Find(&deliveryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find deliveries by filters")
	}

	return toDeliveryDomainSlice(deliveryModels), nil
}

// FindManyByIDs retrieves deliveries keyed by ID. Missing IDs are simply absent.
func (repo *deliveryRepository) FindManyByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Delivery, error) {
	if len(ids) == 0 {
		return map[int64]*entity.Delivery{}, nil
	}

	var deliveryModels []*model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&deliveryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find deliveries by IDs")
	}

	deliveries := make(map[int64]*entity.Delivery, len(deliveryModels))
	for _, deliveryM := range deliveryModels {
		deliveries[deliveryM.ID] = toDeliveryDomain(deliveryM)
	}

	return deliveries, nil
}

// FindByVehicleOverlapping retrieves active deliveries of the vehicle on the
// given date whose windows overlap [timeStart, timeEnd). The candidate set
// per vehicle and day is small, so rows are fetched by vehicle and date and
// the status and half-open interval rules are applied through the entity
// predicates.
func (repo *deliveryRepository) FindByVehicleOverlapping(ctx context.Context, vehicleID int64, date, timeStart, timeEnd string) ([]*entity.Delivery, error) {
	var deliveryModels []*model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Where("vehicle_id = ? AND date = ?", vehicleID, date).
		Find(&deliveryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find overlapping deliveries")
	}

	deliveries := make([]*entity.Delivery, 0, len(deliveryModels))
	for _, deliveryM := range deliveryModels {
		delivery := toDeliveryDomain(deliveryM)
		if !delivery.Status.IsActive() {
			continue
		}
		if delivery.Window.Overlaps(timeStart, timeEnd) {
			deliveries = append(deliveries, delivery)
		}
	}

	return deliveries, nil
}

// FindByVehicle retrieves active deliveries assigned to the vehicle.
func (repo *deliveryRepository) FindByVehicle(ctx context.Context, vehicleID int64) ([]*entity.Delivery, error) {
	var deliveryModels []*model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Where("status NOT IN ?", inactiveStatuses).
		Find(&deliveryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find deliveries by vehicle")
	}

	return toDeliveryDomainSlice(deliveryModels), nil
}

// FindByCourier retrieves active deliveries assigned to the courier.
func (repo *deliveryRepository) FindByCourier(ctx context.Context, courierID int64) ([]*entity.Delivery, error) {
	var deliveryModels []*model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Where("courier_id = ?", courierID).
		Where("status NOT IN ?", inactiveStatuses).
		Find(&deliveryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find deliveries by courier")
	}

	return toDeliveryDomainSlice(deliveryModels), nil
}

// FindByProduct retrieves active deliveries referencing the product at any
// point of their route.
func (repo *deliveryRepository) FindByProduct(ctx context.Context, productID int64) ([]*entity.Delivery, error) {
	var deliveryModels []*model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Distinct("deliveries.*").
		Joins("JOIN delivery_points dp ON dp.delivery_id = deliveries.id").
		Joins("JOIN delivery_point_products dpp ON dpp.delivery_point_id = dp.id").
		Where("dpp.product_id = ?", productID).
		Where("deliveries.status NOT IN ?", inactiveStatuses).
		Find(&deliveryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find deliveries by product")
	}

	return toDeliveryDomainSlice(deliveryModels), nil
}

// --- Mapper Functions ---

// toDeliveryDomain converts a GORM DeliveryModel to a domain Delivery entity.
func toDeliveryDomain(data *model.DeliveryModel) *entity.Delivery {
	if data == nil {
		return nil
	}

	return &entity.Delivery{
		ID:        data.ID,
		CourierID: data.CourierID,
		VehicleID: data.VehicleID,
		CreatedBy: data.CreatedBy,
		Window: entity.DeliveryWindow{
			Date:      data.Date,
			TimeStart: data.TimeStart,
			TimeEnd:   data.TimeEnd,
		},
		Status:    entity.DeliveryStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toDeliveryDomainSlice(models []*model.DeliveryModel) []*entity.Delivery {
	deliveries := make([]*entity.Delivery, 0, len(models))
	for _, deliveryM := range models {
		deliveries = append(deliveries, toDeliveryDomain(deliveryM))
	}

	return deliveries
}

// fromDeliveryDomain converts a domain Delivery entity to a GORM DeliveryModel.
func fromDeliveryDomain(data *entity.Delivery) *model.DeliveryModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryModel{
		ID:        data.ID,
		CourierID: data.CourierID,
		VehicleID: data.VehicleID,
		CreatedBy: data.CreatedBy,
		Date:      data.Window.Date,
		TimeStart: data.Window.TimeStart,
		TimeEnd:   data.Window.TimeEnd,
		Status:    data.Status.String(),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
