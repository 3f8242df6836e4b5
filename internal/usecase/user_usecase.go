package usecase

import "context"

// CreateUserRequest carries the payload for creating a user. All fields are
// required.
type CreateUserRequest struct {
	Login    string `json:"login"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateUserRequest carries a partial user update. Nil fields keep their
// current value.
type UpdateUserRequest struct {
	Login    *string `json:"login"`
	Name     *string `json:"name"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// UserUsecase defines the user management use cases
type UserUsecase interface {
	// ListUsers returns all users, optionally filtered by role
	ListUsers(ctx context.Context, role *string) ([]*UserView, error)

	// GetUser returns a single user by ID
	GetUser(ctx context.Context, id int64) (*UserView, error)

	// CreateUser registers a new user with a hashed password
	CreateUser(ctx context.Context, req *CreateUserRequest) (*UserView, error)

	// UpdateUser applies a partial update to an existing user
	UpdateUser(ctx context.Context, id int64, req *UpdateUserRequest) (*UserView, error)

	// DeleteUser removes a user unless it participates in active deliveries
	DeleteUser(ctx context.Context, id int64) error
}
