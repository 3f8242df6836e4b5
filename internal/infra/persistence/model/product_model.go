package model

// ProductModel is the GORM-specific struct for the 'products' table.
// Dimensions are stored in centimeters, weight in kilograms.
type ProductModel struct {
	ID     int64   `gorm:"primaryKey;autoIncrement"`
	Name   string  `gorm:"size:255;not null"`
	Weight float64 `gorm:"type:decimal(10,3);not null"`
	Length float64 `gorm:"type:decimal(10,2);not null"`
	Width  float64 `gorm:"type:decimal(10,2);not null"`
	Height float64 `gorm:"type:decimal(10,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
