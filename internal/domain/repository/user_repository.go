// Package repository defines the persistence contracts of the domain layer.
package repository

import (
	"context"

	"courier/internal/domain/entity"
	"courier/internal/errors"
)

// Sentinel errors returned by repositories. Use cases translate them into
// transport-facing application errors.
var (
	// ErrUserNotFound indicates the user does not exist
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateLogin indicates the login is already taken
	ErrDuplicateLogin = errors.New("login already exists")
)

// UserRepository defines the persistence operations for users
type UserRepository interface {
	// Create persists a new user and fills the generated ID
	Create(ctx context.Context, user *entity.User) error

	// Update persists changes to an existing user
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user by ID
	Delete(ctx context.Context, id int64) error

	// FindByID returns a user by ID, ErrUserNotFound if absent
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByLogin returns a user by login, ErrUserNotFound if absent
	FindByLogin(ctx context.Context, login string) (*entity.User, error)

	// FindAll returns all users, optionally filtered by role
	FindAll(ctx context.Context, role *entity.Role) ([]*entity.User, error)

	// FindManyByIDs returns users keyed by ID; missing IDs are simply absent
	FindManyByIDs(ctx context.Context, ids []int64) (map[int64]*entity.User, error)
}
