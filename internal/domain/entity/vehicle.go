package entity

// Capacity is the carrying limit of a vehicle.
type Capacity struct {
	MaxWeight float64 // Maximum load weight in kilograms.
	MaxVolume float64 // Maximum load volume in cubic meters.
}

// Vehicle is a delivery vehicle with a fixed carrying capacity.
type Vehicle struct {
	ID           int64
	Brand        string
	LicensePlate string // Unique registration plate.
	Capacity     Capacity
}
