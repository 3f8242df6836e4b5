package impl

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/fx"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/domain/service"
	"courier/internal/errors"
	"courier/internal/usecase"
)

const (
	// routeSpeedKmh is the assumed travel speed for feasibility checks.
	routeSpeedKmh = 60.0
	// stopServiceMinutes is the handling time budgeted per route point.
	stopServiceMinutes = 30
	// editWindowDays is how many days before the delivery date changes close.
	editWindowDays = 3
	// generateWindowEnd caps every generated delivery window.
	generateWindowEnd = "18:00"
)

type deliveryService struct {
	txManager    repository.TransactionManager
	deliveryRepo repository.DeliveryRepository
	pointRepo    repository.DeliveryPointRepository
	lineRepo     repository.PointProductRepository
	userRepo     repository.UserRepository
	vehicleRepo  repository.VehicleRepository
	productRepo  repository.ProductRepository
	distance     service.DistanceCalculator
	clock        service.Clock
}

// DeliveryServiceParams holds dependencies for DeliveryService, injected by Fx.
type DeliveryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	DeliveryRepo repository.DeliveryRepository
	PointRepo    repository.DeliveryPointRepository
	LineRepo     repository.PointProductRepository
	UserRepo     repository.UserRepository
	VehicleRepo  repository.VehicleRepository
	ProductRepo  repository.ProductRepository
	Distance     service.DistanceCalculator
	Clock        service.Clock
}

// NewDeliveryService creates a new delivery scheduling service instance
func NewDeliveryService(params DeliveryServiceParams) usecase.DeliveryUsecase {
	return &deliveryService{
		txManager:    params.TxManager,
		deliveryRepo: params.DeliveryRepo,
		pointRepo:    params.PointRepo,
		lineRepo:     params.LineRepo,
		userRepo:     params.UserRepo,
		vehicleRepo:  params.VehicleRepo,
		productRepo:  params.ProductRepo,
		distance:     params.Distance,
		clock:        params.Clock,
	}
}

// today returns the clock's current date pinned to UTC midnight so it
// compares cleanly against parsed wire dates.
func (s *deliveryService) today() time.Time {
	now := s.clock.Today()

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// normalizedDelivery is a validated delivery payload ready for persistence.
type normalizedDelivery struct {
	courierID int64
	vehicleID int64
	createdBy int64
	window    entity.DeliveryWindow
	points    []normalizedPoint
}

type normalizedPoint struct {
	sequence int
	location entity.Coordinates
	products []usecase.ProductLineRequest
}

// productCache memoizes product lookups within a single request so capacity
// aggregation and hydration do not refetch the same product.
type productCache map[int64]*entity.Product

// ListDeliveries returns hydrated deliveries matching the filters.
func (s *deliveryService) ListDeliveries(ctx context.Context, filters usecase.DeliveryFilters) ([]*usecase.DeliveryView, error) {
	repoFilters := repository.DeliveryFilters{CourierID: filters.CourierID}

	// An unparseable date filter is ignored rather than rejected.
	if filters.Date != nil {
		if _, err := time.Parse(entity.DateLayout, *filters.Date); err == nil {
			repoFilters.Date = filters.Date
		}
	}

	if filters.Status != nil && *filters.Status != "" {
		status := entity.DeliveryStatus(*filters.Status)
		if !status.IsValid() {
			return nil, domainerrors.NewFieldError("status", "invalid status")
		}
		repoFilters.Status = &status
	}

	deliveries, err := s.deliveryRepo.FindByFilters(ctx, repoFilters)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list deliveries")
	}

	return s.hydrate(ctx, deliveries)
}

// GetDelivery returns a single hydrated delivery by ID.
func (s *deliveryService) GetDelivery(ctx context.Context, id int64) (*usecase.DeliveryView, error) {
	delivery, err := s.deliveryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDeliveryNotFound) {
			return nil, domainerrors.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery")
	}

	views, err := s.hydrate(ctx, []*entity.Delivery{delivery})
	if err != nil {
		return nil, err
	}

	return views[0], nil
}

// CreateDelivery validates the payload and persists the delivery with its
// points and product lines.
func (s *deliveryService) CreateDelivery(ctx context.Context, req *usecase.DeliveryRequest, createdBy int64) (*usecase.DeliveryView, error) {
	data, err := s.validatePayload(req, true)
	if err != nil {
		return nil, err
	}
	data.createdBy = createdBy

	return s.persistDelivery(ctx, data, nil)
}

// UpdateDelivery replaces an editable delivery and its route wholesale.
func (s *deliveryService) UpdateDelivery(ctx context.Context, id int64, req *usecase.DeliveryRequest) (*usecase.DeliveryView, error) {
	existing, err := s.deliveryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDeliveryNotFound) {
			return nil, domainerrors.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery")
	}

	if err := s.assertEditable(existing.Window.Date); err != nil {
		return nil, err
	}

	data, err := s.validatePayload(req, true)
	if err != nil {
		return nil, err
	}
	data.createdBy = existing.CreatedBy

	return s.persistDelivery(ctx, data, &existing.ID)
}

// DeleteDelivery removes an editable delivery with its route.
func (s *deliveryService) DeleteDelivery(ctx context.Context, id int64) error {
	delivery, err := s.deliveryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDeliveryNotFound) {
			return domainerrors.ErrDeliveryNotFound
		}

		return errors.Wrap(err, "failed to find delivery")
	}

	if err := s.assertEditable(delivery.Window.Date); err != nil {
		return err
	}

	return s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if err := txRepoFactory.NewDeliveryPointRepository().DeleteByDelivery(ctx, delivery.ID); err != nil {
			return errors.Wrap(err, "failed to delete delivery points")
		}
		if err := txRepoFactory.NewDeliveryRepository().Delete(ctx, delivery.ID); err != nil {
			return errors.Wrap(err, "failed to delete delivery")
		}

		return nil
	})
}

// GenerateDeliveries bulk-creates deliveries from route data. Couriers and
// vehicles rotate round-robin over the route index; a route that fails
// validation is reported as a warning without aborting the rest.
func (s *deliveryService) GenerateDeliveries(ctx context.Context, req *usecase.GenerateRequest, createdBy int64) (*usecase.GenerateResult, error) {
	if len(req.DeliveryData) == 0 {
		return nil, domainerrors.NewFieldError("delivery_data", "generation data is required")
	}

	courierRole := entity.RoleCourier
	couriers, err := s.userRepo.FindAll(ctx, &courierRole)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list couriers")
	}
	vehicles, err := s.vehicleRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vehicles")
	}

	result := &usecase.GenerateResult{
		ByDate: make(map[string]*usecase.GenerateDateResult, len(req.DeliveryData)),
	}

	for dateString, routes := range req.DeliveryData {
		date, err := time.Parse(entity.DateLayout, dateString)
		if err != nil {
			result.ByDate[dateString] = &usecase.GenerateDateResult{
				Deliveries: []*usecase.DeliveryView{},
				Warnings:   []string{"invalid date: " + dateString},
			}

			continue
		}
		dateKey := date.Format(entity.DateLayout)

		if len(routes) == 0 {
			result.ByDate[dateKey] = &usecase.GenerateDateResult{
				Deliveries: []*usecase.DeliveryView{},
				Warnings:   []string{"no routes to generate"},
			}

			continue
		}

		dateResult, created, err := s.generateForDate(ctx, dateKey, routes, couriers, vehicles, createdBy)
		if err != nil {
			return nil, err
		}

		result.ByDate[dateKey] = dateResult
		result.TotalGenerated += created
	}

	return result, nil
}

func (s *deliveryService) generateForDate(
	ctx context.Context,
	date string,
	routes []usecase.GenerateRoute,
	couriers []*entity.User,
	vehicles []*entity.Vehicle,
	createdBy int64,
) (*usecase.GenerateDateResult, int, error) {
	var warnings []string
	created := []*usecase.DeliveryView{}

	if len(couriers) == 0 {
		warnings = append(warnings, "no available couriers")
	}
	if len(vehicles) == 0 {
		warnings = append(warnings, "no available vehicles")
	}

	for index, route := range routes {
		if len(couriers) == 0 || len(vehicles) == 0 {
			break
		}

		if len(route.Route) == 0 {
			warnings = append(warnings, fmt.Sprintf("route #%d skipped: no points", index+1))

			continue
		}
		if len(route.Products) == 0 {
			warnings = append(warnings, fmt.Sprintf("route #%d skipped: no products", index+1))

			continue
		}

		courier := couriers[index%len(couriers)]
		vehicle := vehicles[index%len(vehicles)]

		points := make([]usecase.PointRequest, 0, len(route.Route))
		for seq, stop := range route.Route {
			lat, lon := stop.Latitude, stop.Longitude
			points = append(points, usecase.PointRequest{
				Sequence:  seq + 1,
				Latitude:  &lat,
				Longitude: &lon,
				Products:  route.Products,
			})
		}

		start, _ := time.Parse(entity.TimeLayout, "09:00")
		request := &usecase.DeliveryRequest{
			CourierID: courier.ID,
			VehicleID: vehicle.ID,
			Date:      date,
			TimeStart: start.Add(time.Duration(index) * time.Hour).Format(entity.TimeLayout),
			TimeEnd:   generateWindowEnd,
			Points:    points,
		}

		data, err := s.validatePayload(request, false)
		if err == nil {
			data.createdBy = createdBy
			var view *usecase.DeliveryView
			view, err = s.persistDelivery(ctx, data, nil)
			if err == nil {
				created = append(created, view)

				continue
			}
		}

		if vErr, ok := errors.AsType[*domainerrors.ValidationError](err); ok {
			warnings = append(warnings, fmt.Sprintf("route #%d: %s", index+1, vErr.Error()))

			continue
		}

		return nil, 0, err
	}

	return &usecase.GenerateDateResult{
		GeneratedCount: len(created),
		Deliveries:     created,
		Warnings:       warnings,
	}, len(created), nil
}

// persistDelivery runs the reference checks and gate validations, then writes
// the delivery with its points and product lines atomically.
func (s *deliveryService) persistDelivery(ctx context.Context, data *normalizedDelivery, deliveryID *int64) (*usecase.DeliveryView, error) {
	cache := productCache{}

	courier, err := s.userRepo.FindByID(ctx, data.courierID)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find courier")
	}
	if courier == nil || courier.Role != entity.RoleCourier {
		return nil, domainerrors.NewFieldError("courier_id", "courier not found or has the wrong role")
	}

	vehicle, err := s.vehicleRepo.FindByID(ctx, data.vehicleID)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return nil, domainerrors.NewFieldError("vehicle_id", "vehicle not found")
		}

		return nil, errors.Wrap(err, "failed to find vehicle")
	}

	if err := s.validateVehicleCapacity(ctx, cache, data, vehicle, deliveryID); err != nil {
		return nil, err
	}
	if len(data.points) >= 2 {
		if err := s.validateRouteTime(data); err != nil {
			return nil, err
		}
	}

	var persistedID int64
	err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		deliveries := txRepoFactory.NewDeliveryRepository()
		points := txRepoFactory.NewDeliveryPointRepository()
		lines := txRepoFactory.NewPointProductRepository()

		delivery := &entity.Delivery{
			CourierID: data.courierID,
			VehicleID: data.vehicleID,
			CreatedBy: data.createdBy,
			Window:    data.window,
			Status:    entity.StatusPlanned,
		}

		if deliveryID == nil {
			if err := deliveries.Create(ctx, delivery); err != nil {
				return errors.Wrap(err, "failed to create delivery")
			}
		} else {
			delivery.ID = *deliveryID
			if err := deliveries.Update(ctx, delivery); err != nil {
				return errors.Wrap(err, "failed to update delivery")
			}
			if err := points.DeleteByDelivery(ctx, delivery.ID); err != nil {
				return errors.Wrap(err, "failed to replace delivery points")
			}
		}
		persistedID = delivery.ID

		for _, p := range data.points {
			point := &entity.DeliveryPoint{
				DeliveryID: delivery.ID,
				Sequence:   p.sequence,
				Location:   p.location,
			}
			if err := points.Create(ctx, point); err != nil {
				return errors.Wrap(err, "failed to create delivery point")
			}

			for _, line := range p.products {
				if err := lines.Create(ctx, &entity.PointProduct{
					PointID:   point.ID,
					ProductID: line.ProductID,
					Quantity:  line.Quantity,
				}); err != nil {
					return errors.Wrap(err, "failed to create point product")
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetDelivery(ctx, persistedID)
}

// validatePayload normalizes and validates a delivery request. Field errors
// on the header are collected; point and product errors abort immediately.
func (s *deliveryService) validatePayload(req *usecase.DeliveryRequest, requireProducts bool) (*normalizedDelivery, error) {
	fields := map[string]string{}

	date, dateErr := time.Parse(entity.DateLayout, req.Date)
	switch {
	case req.Date == "" || dateErr != nil:
		fields["delivery_date"] = "invalid delivery date"
	case date.Before(s.today()):
		fields["delivery_date"] = "delivery date cannot be in the past"
	}

	timeStart, err := parseWindowTime(req.TimeStart, "time_start")
	if err != nil {
		return nil, err
	}
	timeEnd, err := parseWindowTime(req.TimeEnd, "time_end")
	if err != nil {
		return nil, err
	}

	if req.CourierID <= 0 {
		fields["courier_id"] = "courier ID is required"
	}
	if req.VehicleID <= 0 {
		fields["vehicle_id"] = "vehicle ID is required"
	}
	if req.TimeStart == "" {
		fields["time_start"] = "start time is required"
	}
	if req.TimeEnd == "" {
		fields["time_end"] = "end time is required"
	}
	if timeStart != "" && timeEnd != "" && timeStart >= timeEnd {
		fields["time_start"] = "start time must be before end time"
	}
	if len(req.Points) == 0 {
		fields["points"] = "route points are required"
	}

	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields)
	}

	points := make([]normalizedPoint, 0, len(req.Points))
	for index, point := range req.Points {
		if point.Latitude == nil || point.Longitude == nil {
			return nil, domainerrors.NewFieldError("points", "every point must contain coordinates")
		}

		if requireProducts && len(point.Products) == 0 {
			return nil, domainerrors.NewFieldError("products", "products are required for every point")
		}

		for _, line := range point.Products {
			if line.ProductID <= 0 || line.Quantity <= 0 {
				return nil, domainerrors.NewFieldError("products", "invalid product data")
			}
		}

		sequence := point.Sequence
		if sequence == 0 {
			sequence = index + 1
		}

		points = append(points, normalizedPoint{
			sequence: sequence,
			location: entity.Coordinates{Latitude: *point.Latitude, Longitude: *point.Longitude},
			products: point.Products,
		})
	}

	return &normalizedDelivery{
		courierID: req.CourierID,
		vehicleID: req.VehicleID,
		window: entity.DeliveryWindow{
			Date:      date.Format(entity.DateLayout),
			TimeStart: timeStart,
			TimeEnd:   timeEnd,
		},
		points: points,
	}, nil
}

// validateVehicleCapacity checks the requested load plus the load of
// overlapping active deliveries against the vehicle limits. On update the
// delivery's own previous load is excluded.
func (s *deliveryService) validateVehicleCapacity(ctx context.Context, cache productCache, data *normalizedDelivery, vehicle *entity.Vehicle, currentDeliveryID *int64) error {
	requestedWeight, requestedVolume, err := s.requestedTotals(ctx, cache, data.points)
	if err != nil {
		return err
	}

	overlapping, err := s.deliveryRepo.FindByVehicleOverlapping(
		ctx, data.vehicleID, data.window.Date, data.window.TimeStart, data.window.TimeEnd,
	)
	if err != nil {
		return errors.Wrap(err, "failed to find overlapping deliveries")
	}

	if currentDeliveryID != nil {
		filtered := overlapping[:0]
		for _, delivery := range overlapping {
			if delivery.ID != *currentDeliveryID {
				filtered = append(filtered, delivery)
			}
		}
		overlapping = filtered
	}

	existingWeight, existingVolume, err := s.existingTotals(ctx, cache, overlapping)
	if err != nil {
		return err
	}

	if requestedWeight+existingWeight > vehicle.Capacity.MaxWeight {
		return domainerrors.NewFieldError("weight", fmt.Sprintf(
			"vehicle capacity exceeded: required %.2f kg, available %.2f kg",
			requestedWeight+existingWeight, vehicle.Capacity.MaxWeight,
		))
	}
	if requestedVolume+existingVolume > vehicle.Capacity.MaxVolume {
		return domainerrors.NewFieldError("volume", fmt.Sprintf(
			"vehicle volume exceeded: required %.3f m³, available %.3f m³",
			requestedVolume+existingVolume, vehicle.Capacity.MaxVolume,
		))
	}

	return nil
}

// requestedTotals sums weight and volume over the payload's product lines.
func (s *deliveryService) requestedTotals(ctx context.Context, cache productCache, points []normalizedPoint) (weight, volume float64, err error) {
	for _, point := range points {
		for _, line := range point.products {
			product, err := s.requireProduct(ctx, cache, line.ProductID)
			if err != nil {
				return 0, 0, err
			}
			quantity := float64(line.Quantity)
			weight += product.Weight * quantity
			volume += product.Dimensions.Volume() * quantity
		}
	}

	return weight, volume, nil
}

// existingTotals sums weight and volume over the product lines of the given
// deliveries.
func (s *deliveryService) existingTotals(ctx context.Context, cache productCache, deliveries []*entity.Delivery) (weight, volume float64, err error) {
	if len(deliveries) == 0 {
		return 0, 0, nil
	}

	ids := make([]int64, 0, len(deliveries))
	for _, delivery := range deliveries {
		ids = append(ids, delivery.ID)
	}

	pointsByDelivery, err := s.pointRepo.FindByDeliveries(ctx, ids)
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to load points of overlapping deliveries")
	}

	pointIDs := []int64{}
	for _, points := range pointsByDelivery {
		for _, point := range points {
			pointIDs = append(pointIDs, point.ID)
		}
	}

	linesByPoint, err := s.lineRepo.FindByPoints(ctx, pointIDs)
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to load product lines of overlapping deliveries")
	}

	for _, lines := range linesByPoint {
		for _, line := range lines {
			product, err := s.requireProduct(ctx, cache, line.ProductID)
			if err != nil {
				return 0, 0, err
			}
			quantity := float64(line.Quantity)
			weight += product.Weight * quantity
			volume += product.Dimensions.Volume() * quantity
		}
	}

	return weight, volume, nil
}

// validateRouteTime checks that the window fits a coarse route estimate:
// straight-line travel between the first and last stop plus fixed handling
// time per stop.
func (s *deliveryService) validateRouteTime(data *normalizedDelivery) error {
	first := data.points[0].location
	last := data.points[len(data.points)-1].location

	distance := s.distance.Distance(first, last)
	travelMinutes := distance / routeSpeedKmh * 60
	serviceMinutes := float64(len(data.points) * stopServiceMinutes)
	requiredMinutes := int(math.Ceil(travelMinutes + serviceMinutes))

	availableMinutes := data.window.AvailableMinutes()
	if requiredMinutes > availableMinutes {
		return domainerrors.NewFieldError("time", fmt.Sprintf(
			"not enough time for the route: required %d min, available %d min",
			requiredMinutes, availableMinutes,
		))
	}

	return nil
}

// assertEditable enforces the modification policy: past deliveries are
// frozen, future ones close for changes three days ahead.
func (s *deliveryService) assertEditable(dateString string) error {
	date, err := time.Parse(entity.DateLayout, dateString)
	if err != nil {
		return errors.Wrap(err, "failed to parse delivery date")
	}

	today := s.today()
	if !date.After(today) {
		return domainerrors.NewFieldError("delivery_date", "cannot modify past deliveries")
	}
	if !date.After(today.AddDate(0, 0, editWindowDays)) {
		return domainerrors.NewFieldError("delivery_date", fmt.Sprintf(
			"changes are allowed no later than %d days before the delivery", editWindowDays,
		))
	}

	return nil
}

// PresentDeliveries hydrates already loaded deliveries into full views.
func (s *deliveryService) PresentDeliveries(ctx context.Context, deliveries []*entity.Delivery) ([]*usecase.DeliveryView, error) {
	return s.hydrate(ctx, deliveries)
}

// hydrate assembles full API views for the given deliveries: route points
// with product details, courier and vehicle summaries, load totals and the
// edit flag.
func (s *deliveryService) hydrate(ctx context.Context, deliveries []*entity.Delivery) ([]*usecase.DeliveryView, error) {
	if len(deliveries) == 0 {
		return []*usecase.DeliveryView{}, nil
	}

	cache := productCache{}

	deliveryIDs := make([]int64, 0, len(deliveries))
	userIDs := make([]int64, 0, 2*len(deliveries))
	vehicleIDs := make([]int64, 0, len(deliveries))
	for _, delivery := range deliveries {
		deliveryIDs = append(deliveryIDs, delivery.ID)
		userIDs = append(userIDs, delivery.CourierID, delivery.CreatedBy)
		vehicleIDs = append(vehicleIDs, delivery.VehicleID)
	}

	pointsByDelivery, err := s.pointRepo.FindByDeliveries(ctx, deliveryIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load delivery points")
	}

	pointIDs := []int64{}
	for _, points := range pointsByDelivery {
		for _, point := range points {
			pointIDs = append(pointIDs, point.ID)
		}
	}

	linesByPoint, err := s.lineRepo.FindByPoints(ctx, pointIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load point products")
	}

	users, err := s.userRepo.FindManyByIDs(ctx, userIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load delivery users")
	}
	vehicles, err := s.vehicleRepo.FindManyByIDs(ctx, vehicleIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load delivery vehicles")
	}

	editThreshold := s.today().AddDate(0, 0, editWindowDays)
	views := make([]*usecase.DeliveryView, 0, len(deliveries))
	for _, delivery := range deliveries {
		var totalWeight, totalVolume float64
		pointViews := make([]usecase.PointView, 0, len(pointsByDelivery[delivery.ID]))

		for _, point := range pointsByDelivery[delivery.ID] {
			lineViews := make([]usecase.ProductLineView, 0, len(linesByPoint[point.ID]))
			for _, line := range linesByPoint[point.ID] {
				product, err := s.requireProduct(ctx, cache, line.ProductID)
				if err != nil {
					return nil, err
				}

				quantity := float64(line.Quantity)
				totalWeight += product.Weight * quantity
				totalVolume += product.Dimensions.Volume() * quantity

				lineViews = append(lineViews, usecase.ProductLineView{
					ID:       line.ID,
					Product:  *toProductView(product),
					Quantity: line.Quantity,
				})
			}

			pointViews = append(pointViews, usecase.PointView{
				ID:        point.ID,
				Sequence:  point.Sequence,
				Latitude:  point.Location.Latitude,
				Longitude: point.Location.Longitude,
				Products:  lineViews,
			})
		}

		canEdit := false
		if date, err := delivery.Window.DateValue(); err == nil {
			canEdit = date.After(editThreshold)
		}

		views = append(views, &usecase.DeliveryView{
			ID:             delivery.ID,
			DeliveryNumber: fmt.Sprintf("DEL-%s-%03d", delivery.Window.Date[:4], delivery.ID),
			Courier:        toUserSummary(users[delivery.CourierID]),
			Vehicle:        toVehicleView(vehicles[delivery.VehicleID]),
			CreatedBy:      toUserSummary(users[delivery.CreatedBy]),
			Date:           delivery.Window.Date,
			TimeStart:      delivery.Window.TimeStart,
			TimeEnd:        delivery.Window.TimeEnd,
			Status:         delivery.Status.String(),
			CreatedAt:      delivery.CreatedAt,
			UpdatedAt:      delivery.UpdatedAt,
			Points:         pointViews,
			TotalWeight:    math.Round(totalWeight*100) / 100,
			TotalVolume:    math.Round(totalVolume*1000) / 1000,
			CanEdit:        canEdit,
		})
	}

	return views, nil
}

// requireProduct resolves a product through the per-request cache.
func (s *deliveryService) requireProduct(ctx context.Context, cache productCache, id int64) (*entity.Product, error) {
	if product, ok := cache[id]; ok {
		return product, nil
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.NewFieldError("products", fmt.Sprintf("product not found: %d", id))
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	cache[id] = product

	return product, nil
}

// parseWindowTime normalizes a window bound to HH:MM, tolerating a seconds
// component on input. An empty value is reported by the caller.
func parseWindowTime(value, field string) (string, error) {
	if value == "" {
		return "", nil
	}

	parsed, err := time.Parse(entity.TimeLayout, value)
	if err != nil {
		parsed, err = time.Parse(entity.TimeLayoutSeconds, value)
	}
	if err != nil {
		return "", domainerrors.NewFieldError(field, "invalid time format")
	}

	return parsed.Format(entity.TimeLayout), nil
}
