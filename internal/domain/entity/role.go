// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin indicates an administrator who manages users, vehicles and products.
	RoleAdmin Role = "admin"
	// RoleManager indicates a dispatcher who plans and schedules deliveries.
	RoleManager Role = "manager"
	// RoleCourier indicates a courier who executes assigned deliveries.
	RoleCourier Role = "courier"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleCourier:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
