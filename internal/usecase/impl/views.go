// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"math"

	"courier/internal/domain/entity"
	"courier/internal/usecase"
)

// toUserView maps a user entity to its full API representation.
func toUserView(user *entity.User) *usecase.UserView {
	if user == nil {
		return nil
	}

	return &usecase.UserView{
		ID:        user.ID,
		Login:     user.Login,
		Name:      user.Name,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
	}
}

// toUserSummary maps a user entity to the reduced block embedded in hydrated
// deliveries. The registration timestamp is not exposed there.
func toUserSummary(user *entity.User) *usecase.UserView {
	if user == nil {
		return nil
	}

	return &usecase.UserView{
		ID:    user.ID,
		Login: user.Login,
		Name:  user.Name,
		Role:  user.Role.String(),
	}
}

// toVehicleView maps a vehicle entity to its API representation.
func toVehicleView(vehicle *entity.Vehicle) *usecase.VehicleView {
	if vehicle == nil {
		return nil
	}

	return &usecase.VehicleView{
		ID:           vehicle.ID,
		Brand:        vehicle.Brand,
		LicensePlate: vehicle.LicensePlate,
		MaxWeight:    vehicle.Capacity.MaxWeight,
		MaxVolume:    vehicle.Capacity.MaxVolume,
	}
}

// toProductView maps a product entity to its API representation. The derived
// volume is rounded to four decimal places.
func toProductView(product *entity.Product) *usecase.ProductView {
	if product == nil {
		return nil
	}

	return &usecase.ProductView{
		ID:     product.ID,
		Name:   product.Name,
		Weight: product.Weight,
		Length: product.Dimensions.Length,
		Width:  product.Dimensions.Width,
		Height: product.Dimensions.Height,
		Volume: math.Round(product.Dimensions.Volume()*10000) / 10000,
	}
}
