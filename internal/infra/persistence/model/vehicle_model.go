package model

// VehicleModel is the GORM-specific struct for the 'vehicles' table.
type VehicleModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Brand        string  `gorm:"size:255;not null"`
	LicensePlate string  `gorm:"size:32;not null;uniqueIndex"`
	MaxWeight    float64 `gorm:"type:decimal(10,2);not null"`
	MaxVolume    float64 `gorm:"type:decimal(10,3);not null"`
}

// TableName explicitly sets the table name for GORM.
func (VehicleModel) TableName() string {
	return "vehicles"
}
