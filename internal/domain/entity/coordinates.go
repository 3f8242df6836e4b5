package entity

// Coordinates is an immutable geographic point in degrees.
// Values are taken as-is: out-of-range latitudes or longitudes are not
// rejected here, matching the permissive behavior of the delivery planner.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
