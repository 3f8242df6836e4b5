package usecase

import "context"

// LoginRequest carries the credentials of a login attempt.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// LoginResult is the successful outcome of a login: a signed access token
// plus the authenticated user.
type LoginResult struct {
	Token string    `json:"token"`
	User  *UserView `json:"user"`
}

// AuthUsecase defines the authentication use cases
type AuthUsecase interface {
	// Login verifies the credentials and issues an access token
	Login(ctx context.Context, req *LoginRequest) (*LoginResult, error)
}
