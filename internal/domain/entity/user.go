package entity

import "time"

// User is a system account: administrators, delivery managers and couriers
// share the same identity record and are distinguished by Role.
type User struct {
	ID           int64     // Numeric identifier, assigned by the database.
	Login        string    // Unique login used for authentication.
	PasswordHash string    // Bcrypt hash of the user's password. Never exposed in views.
	Name         string    // Display name.
	Role         Role      // Access role: admin, manager or courier.
	CreatedAt    time.Time // Timestamp of account creation.
}
