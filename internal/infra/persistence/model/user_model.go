// Package model holds the GORM-specific table structs of the persistence layer.
package model

import "time"

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Login        string `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null"`
	Name         string `gorm:"size:255;not null"`
	Role         string `gorm:"size:32;not null;index"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
