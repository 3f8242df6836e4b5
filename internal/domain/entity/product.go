package entity

// Dimensions holds the package dimensions of a product in centimeters.
type Dimensions struct {
	Length float64
	Width  float64
	Height float64
}

// Volume returns the product volume in cubic meters.
func (d Dimensions) Volume() float64 {
	return d.Length * d.Width * d.Height / 1_000_000
}

// Product is a deliverable good. Delivery points reference products by ID
// and never embed them.
type Product struct {
	ID         int64
	Name       string
	Weight     float64 // Unit weight in kilograms.
	Dimensions Dimensions
}
