package impl

import (
	"context"
	"time"

	"go.uber.org/fx"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/errors"
	"courier/internal/usecase"
)

type courierService struct {
	deliveryRepo repository.DeliveryRepository
	deliveries   usecase.DeliveryUsecase
}

// CourierServiceParams holds dependencies for CourierService, injected by Fx.
type CourierServiceParams struct {
	fx.In

	DeliveryRepo repository.DeliveryRepository
	Deliveries   usecase.DeliveryUsecase
}

// NewCourierService creates a new courier-facing service instance
func NewCourierService(params CourierServiceParams) usecase.CourierUsecase {
	return &courierService{
		deliveryRepo: params.DeliveryRepo,
		deliveries:   params.Deliveries,
	}
}

// ListCourierDeliveries returns compact summaries of the courier's own
// deliveries matching the filters.
func (s *courierService) ListCourierDeliveries(ctx context.Context, courierID int64, filters usecase.CourierDeliveryFilters) ([]*usecase.CourierDeliveryView, error) {
	repoFilters := repository.DeliveryFilters{CourierID: &courierID}

	var err error
	if repoFilters.Date, err = parseDateFilter(filters.Date); err != nil {
		return nil, err
	}
	if repoFilters.DateFrom, err = parseDateFilter(filters.DateFrom); err != nil {
		return nil, err
	}
	if repoFilters.DateTo, err = parseDateFilter(filters.DateTo); err != nil {
		return nil, err
	}

	if filters.Status != nil && *filters.Status != "" {
		status := entity.DeliveryStatus(*filters.Status)
		if !status.IsValid() {
			return nil, domainerrors.NewFieldError("status", "invalid status")
		}
		repoFilters.Status = &status
	}

	rows, err := s.deliveryRepo.FindByFilters(ctx, repoFilters)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list courier deliveries")
	}

	detailed, err := s.deliveries.PresentDeliveries(ctx, rows)
	if err != nil {
		return nil, err
	}

	summaries := make([]*usecase.CourierDeliveryView, 0, len(detailed))
	for _, view := range detailed {
		summaries = append(summaries, summarize(view))
	}

	return summaries, nil
}

// GetCourierDelivery returns one of the courier's own deliveries in full.
func (s *courierService) GetCourierDelivery(ctx context.Context, id, courierID int64) (*usecase.DeliveryView, error) {
	delivery, err := s.deliveries.GetDelivery(ctx, id)
	if err != nil {
		return nil, err
	}

	if delivery.Courier == nil || delivery.Courier.ID != courierID {
		return nil, domainerrors.ErrForbidden.WrapMessage("delivery belongs to another courier")
	}

	return delivery, nil
}

// summarize reduces a hydrated delivery to the courier's compact view.
func summarize(delivery *usecase.DeliveryView) *usecase.CourierDeliveryView {
	productsCount := 0
	for _, point := range delivery.Points {
		for _, line := range point.Products {
			productsCount += line.Quantity
		}
	}

	vehicle := usecase.CourierVehicleView{Brand: "unassigned"}
	if delivery.Vehicle != nil {
		vehicle = usecase.CourierVehicleView{
			Brand:        delivery.Vehicle.Brand,
			LicensePlate: delivery.Vehicle.LicensePlate,
		}
	}

	return &usecase.CourierDeliveryView{
		ID:             delivery.ID,
		DeliveryNumber: delivery.DeliveryNumber,
		Date:           delivery.Date,
		TimeStart:      delivery.TimeStart,
		TimeEnd:        delivery.TimeEnd,
		Status:         delivery.Status,
		Vehicle:        vehicle,
		PointsCount:    len(delivery.Points),
		ProductsCount:  productsCount,
		TotalWeight:    delivery.TotalWeight,
	}
}

// parseDateFilter validates an optional YYYY-MM-DD filter value.
func parseDateFilter(value *string) (*string, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	parsed, err := time.Parse(entity.DateLayout, *value)
	if err != nil {
		return nil, domainerrors.NewFieldError("date", "invalid date format")
	}

	normalized := parsed.Format(entity.DateLayout)

	return &normalized, nil
}
