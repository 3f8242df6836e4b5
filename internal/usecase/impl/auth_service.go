package impl

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/domain/service"
	"courier/internal/usecase"
)

type authService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	tokens   service.TokenService
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Tokens   service.TokenService
}

// NewAuthService creates a new authentication service instance
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		tokens:   params.Tokens,
	}
}

// Login verifies the credentials and issues an access token.
func (s *authService) Login(ctx context.Context, req *usecase.LoginRequest) (*usecase.LoginResult, error) {
	fields := map[string]string{}
	login := strings.TrimSpace(req.Login)
	if login == "" {
		fields["login"] = "login is required"
	}
	if req.Password == "" {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields)
	}

	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by login")
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.LoginResult{
		Token: token,
		User:  toUserView(user),
	}, nil
}
