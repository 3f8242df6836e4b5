// Package usecase defines the application's use case interfaces and their
// request/response shapes.
package usecase

import "time"

// UserView is the API representation of a user. The password hash never
// leaves the domain layer.
type UserView struct {
	ID        int64     `json:"id"`
	Login     string    `json:"login"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// VehicleView is the API representation of a vehicle.
type VehicleView struct {
	ID           int64   `json:"id"`
	Brand        string  `json:"brand"`
	LicensePlate string  `json:"license_plate"`
	MaxWeight    float64 `json:"max_weight"`
	MaxVolume    float64 `json:"max_volume"`
}

// ProductView is the API representation of a product. Volume is derived from
// the dimensions and rounded to four decimal places.
type ProductView struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Volume float64 `json:"volume"`
}

// ProductLineView is one product line at a route point.
type ProductLineView struct {
	ID       int64       `json:"id"`
	Product  ProductView `json:"product"`
	Quantity int         `json:"quantity"`
}

// PointView is the API representation of a route point.
type PointView struct {
	ID        int64             `json:"id"`
	Sequence  int               `json:"sequence"`
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
	Products  []ProductLineView `json:"products"`
}

// DeliveryView is the fully hydrated API representation of a delivery.
type DeliveryView struct {
	ID             int64        `json:"id"`
	DeliveryNumber string       `json:"delivery_number"`
	Courier        *UserView    `json:"courier"`
	Vehicle        *VehicleView `json:"vehicle"`
	CreatedBy      *UserView    `json:"created_by"`
	Date           string       `json:"delivery_date"`
	TimeStart      string       `json:"time_start"`
	TimeEnd        string       `json:"time_end"`
	Status         string       `json:"status"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
	Points         []PointView  `json:"delivery_points"`
	TotalWeight    float64      `json:"total_weight"`
	TotalVolume    float64      `json:"total_volume"`
	CanEdit        bool         `json:"can_edit"`
}

// CourierVehicleView is the reduced vehicle block of a courier summary.
type CourierVehicleView struct {
	Brand        string `json:"brand"`
	LicensePlate string `json:"license_plate"`
}

// CourierDeliveryView is the compact delivery representation returned to
// couriers: route size and load instead of the full point list.
type CourierDeliveryView struct {
	ID             int64              `json:"id"`
	DeliveryNumber string             `json:"delivery_number"`
	Date           string             `json:"delivery_date"`
	TimeStart      string             `json:"time_start"`
	TimeEnd        string             `json:"time_end"`
	Status         string             `json:"status"`
	Vehicle        CourierVehicleView `json:"vehicle"`
	PointsCount    int                `json:"points_count"`
	ProductsCount  int                `json:"products_count"`
	TotalWeight    float64            `json:"total_weight"`
}
