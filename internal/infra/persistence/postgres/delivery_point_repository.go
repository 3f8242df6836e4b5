package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"courier/internal/domain/entity"
	"courier/internal/domain/repository"
	"courier/internal/infra/persistence/model"
)

// deliveryPointRepository implements the repository.DeliveryPointRepository interface.
type deliveryPointRepository struct {
	db *gorm.DB
}

// NewDeliveryPointRepository is the constructor for deliveryPointRepository.
func NewDeliveryPointRepository(db *gorm.DB) repository.DeliveryPointRepository {
	return &deliveryPointRepository{
		db: db,
	}
}

// Create persists a new point and fills the generated ID.
func (repo *deliveryPointRepository) Create(ctx context.Context, point *entity.DeliveryPoint) error {
	pointM := fromPointDomain(point)

	if err := repo.db.WithContext(ctx).Create(pointM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(err, "duplicate point sequence within delivery")
		}

		return errors.Wrap(err, "failed to create delivery point")
	}

	point.ID = pointM.ID

	return nil
}

// DeleteByDelivery removes all points of a delivery. Product lines cascade.
func (repo *deliveryPointRepository) DeleteByDelivery(ctx context.Context, deliveryID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("delivery_id = ?", deliveryID).
		Delete(&model.DeliveryPointModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete delivery points")
	}

	return nil
}

// FindByDelivery retrieves the points of a delivery ordered by sequence.
func (repo *deliveryPointRepository) FindByDelivery(ctx context.Context, deliveryID int64) ([]*entity.DeliveryPoint, error) {
	var pointModels []*model.DeliveryPointModel

	if err := repo.db.WithContext(ctx).
		Where("delivery_id = ?", deliveryID).
		Order("sequence ASC").
		Find(&pointModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find delivery points")
	}

	points := make([]*entity.DeliveryPoint, 0, len(pointModels))
	for _, pointM := range pointModels {
		points = append(points, toPointDomain(pointM))
	}

	return points, nil
}

// FindByDeliveries retrieves points for a set of deliveries keyed by delivery
// ID, each slice ordered by sequence.
func (repo *deliveryPointRepository) FindByDeliveries(ctx context.Context, deliveryIDs []int64) (map[int64][]*entity.DeliveryPoint, error) {
	if len(deliveryIDs) == 0 {
		return map[int64][]*entity.DeliveryPoint{}, nil
	}

	var pointModels []*model.DeliveryPointModel

	if err := repo.db.WithContext(ctx).
		Where("delivery_id IN ?", deliveryIDs).
		Order("delivery_id ASC, sequence ASC").
		Find(&pointModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find points by deliveries")
	}

	points := make(map[int64][]*entity.DeliveryPoint, len(deliveryIDs))
	for _, pointM := range pointModels {
		points[pointM.DeliveryID] = append(points[pointM.DeliveryID], toPointDomain(pointM))
	}

	return points, nil
}

// --- Mapper Functions ---

// toPointDomain converts a GORM DeliveryPointModel to a domain DeliveryPoint entity.
func toPointDomain(data *model.DeliveryPointModel) *entity.DeliveryPoint {
	if data == nil {
		return nil
	}

	return &entity.DeliveryPoint{
		ID:         data.ID,
		DeliveryID: data.DeliveryID,
		Sequence:   data.Sequence,
		Location: entity.Coordinates{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
		},
	}
}

// fromPointDomain converts a domain DeliveryPoint entity to a GORM DeliveryPointModel.
func fromPointDomain(data *entity.DeliveryPoint) *model.DeliveryPointModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryPointModel{
		ID:         data.ID,
		DeliveryID: data.DeliveryID,
		Sequence:   data.Sequence,
		Latitude:   data.Location.Latitude,
		Longitude:  data.Location.Longitude,
	}
}

// pointProductRepository implements the repository.PointProductRepository interface.
type pointProductRepository struct {
	db *gorm.DB
}

// NewPointProductRepository is the constructor for pointProductRepository.
func NewPointProductRepository(db *gorm.DB) repository.PointProductRepository {
	return &pointProductRepository{
		db: db,
	}
}

// Create persists a new product line and fills the generated ID.
func (repo *pointProductRepository) Create(ctx context.Context, line *entity.PointProduct) error {
	lineM := fromPointProductDomain(line)

	if err := repo.db.WithContext(ctx).Create(lineM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to create point product")
	}

	line.ID = lineM.ID

	return nil
}

// FindByPoints retrieves product lines for a set of points keyed by point ID.
func (repo *pointProductRepository) FindByPoints(ctx context.Context, pointIDs []int64) (map[int64][]*entity.PointProduct, error) {
	if len(pointIDs) == 0 {
		return map[int64][]*entity.PointProduct{}, nil
	}

	var lineModels []*model.DeliveryPointProductModel

	if err := repo.db.WithContext(ctx).
		Where("delivery_point_id IN ?", pointIDs).
		Order("id ASC").
		Find(&lineModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find point products")
	}

	lines := make(map[int64][]*entity.PointProduct, len(pointIDs))
	for _, lineM := range lineModels {
		lines[lineM.DeliveryPointID] = append(lines[lineM.DeliveryPointID], toPointProductDomain(lineM))
	}

	return lines, nil
}

// --- Mapper Functions ---

// toPointProductDomain converts a GORM DeliveryPointProductModel to a domain PointProduct entity.
func toPointProductDomain(data *model.DeliveryPointProductModel) *entity.PointProduct {
	if data == nil {
		return nil
	}

	return &entity.PointProduct{
		ID:        data.ID,
		PointID:   data.DeliveryPointID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
	}
}

// fromPointProductDomain converts a domain PointProduct entity to a GORM DeliveryPointProductModel.
func fromPointProductDomain(data *entity.PointProduct) *model.DeliveryPointProductModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryPointProductModel{
		ID:              data.ID,
		DeliveryPointID: data.PointID,
		ProductID:       data.ProductID,
		Quantity:        data.Quantity,
	}
}
