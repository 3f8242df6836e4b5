package model

import "time"

// DeliveryModel is the GORM-specific struct for the 'deliveries' table.
// Date and window bounds are kept as SQL date/time column text so overlap
// queries can compare them lexicographically.
type DeliveryModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	CourierID int64  `gorm:"not null;index"`
	VehicleID int64  `gorm:"not null;index"`
	CreatedBy int64  `gorm:"not null"`
	Date      string `gorm:"type:date;not null;index"`
	TimeStart string `gorm:"type:time;not null"`
	TimeEnd   string `gorm:"type:time;not null"`
	Status    string `gorm:"size:32;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryModel) TableName() string {
	return "deliveries"
}

// DeliveryPointModel is the GORM-specific struct for the 'delivery_points'
// table. Sequence is unique within a delivery.
type DeliveryPointModel struct {
	ID         int64   `gorm:"primaryKey;autoIncrement"`
	DeliveryID int64   `gorm:"not null;uniqueIndex:idx_delivery_sequence,priority:1"`
	Sequence   int     `gorm:"not null;uniqueIndex:idx_delivery_sequence,priority:2"`
	Latitude   float64 `gorm:"type:decimal(10,7);not null"`
	Longitude  float64 `gorm:"type:decimal(10,7);not null"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryPointModel) TableName() string {
	return "delivery_points"
}

// DeliveryPointProductModel is the GORM-specific struct for the
// 'delivery_point_products' table.
type DeliveryPointProductModel struct {
	ID              int64 `gorm:"primaryKey;autoIncrement"`
	DeliveryPointID int64 `gorm:"not null;index"`
	ProductID       int64 `gorm:"not null;index"`
	Quantity        int   `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryPointProductModel) TableName() string {
	return "delivery_point_products"
}
