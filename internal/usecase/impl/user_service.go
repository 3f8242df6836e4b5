package impl

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/domain/service"
	"courier/internal/usecase"
)

type userService struct {
	userRepo     repository.UserRepository
	deliveryRepo repository.DeliveryRepository
	hasher       service.PasswordHasher
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	DeliveryRepo repository.DeliveryRepository
	Hasher       service.PasswordHasher
}

// NewUserService creates a new user management service instance
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		deliveryRepo: params.DeliveryRepo,
		hasher:       params.Hasher,
	}
}

// ListUsers returns all users, optionally filtered by role.
func (s *userService) ListUsers(ctx context.Context, role *string) ([]*usecase.UserView, error) {
	var roleFilter *entity.Role
	if role != nil {
		parsed := entity.Role(*role)
		if !parsed.IsValid() {
			return nil, domainerrors.NewFieldError("role", "unknown role")
		}
		roleFilter = &parsed
	}

	users, err := s.userRepo.FindAll(ctx, roleFilter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	views := make([]*usecase.UserView, 0, len(users))
	for _, user := range users {
		views = append(views, toUserView(user))
	}

	return views, nil
}

// GetUser returns a single user by ID.
func (s *userService) GetUser(ctx context.Context, id int64) (*usecase.UserView, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserView(user), nil
}

// CreateUser registers a new user with a hashed password.
func (s *userService) CreateUser(ctx context.Context, req *usecase.CreateUserRequest) (*usecase.UserView, error) {
	fields := map[string]string{}
	login := strings.TrimSpace(req.Login)
	name := strings.TrimSpace(req.Name)
	role := entity.Role(req.Role)

	if login == "" {
		fields["login"] = "login is required"
	}
	if name == "" {
		fields["name"] = "name is required"
	}
	if req.Password == "" {
		fields["password"] = "password is required"
	}
	if !role.IsValid() {
		fields["role"] = "invalid role"
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("hash password")
	}

	user := &entity.User{
		Login:        login,
		PasswordHash: hash,
		Name:         name,
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateLogin) {
			return nil, domainerrors.NewFieldError("login", "login already in use")
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	return toUserView(user), nil
}

// UpdateUser applies a partial update to an existing user.
func (s *userService) UpdateUser(ctx context.Context, id int64, req *usecase.UpdateUserRequest) (*usecase.UserView, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	fields := map[string]string{}
	changed := false

	if req.Login != nil {
		login := strings.TrimSpace(*req.Login)
		if login == "" {
			fields["login"] = "login cannot be empty"
		} else if login != user.Login {
			if _, err := s.userRepo.FindByLogin(ctx, login); err == nil {
				fields["login"] = "login already in use"
			} else if !errors.Is(err, repository.ErrUserNotFound) {
				return nil, errors.Wrap(err, "failed to check login uniqueness")
			} else {
				user.Login = login
				changed = true
			}
		}
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			fields["name"] = "name cannot be empty"
		} else {
			user.Name = name
			changed = true
		}
	}

	if req.Role != nil {
		role := entity.Role(*req.Role)
		if !role.IsValid() {
			fields["role"] = "invalid role"
		} else {
			user.Role = role
			changed = true
		}
	}

	if req.Password != nil {
		if *req.Password == "" {
			fields["password"] = "password cannot be empty"
		} else {
			hash, err := s.hasher.Hash(*req.Password)
			if err != nil {
				return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("hash password")
			}
			user.PasswordHash = hash
			changed = true
		}
	}

	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields)
	}

	if !changed {
		return toUserView(user), nil
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateLogin) {
			return nil, domainerrors.NewFieldError("login", "login already in use")
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	return toUserView(user), nil
}

// DeleteUser removes a user unless it participates in active deliveries.
func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user")
	}

	active, err := s.deliveryRepo.FindByCourier(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to check user deliveries")
	}
	if len(active) > 0 {
		return domainerrors.NewFieldError("id", "user participates in active deliveries and cannot be deleted")
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}
