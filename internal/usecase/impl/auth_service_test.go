package impl

import (
	"context"
	"testing"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	mockRepo "courier/internal/mocks/repository"
	mockSvc "courier/internal/mocks/service"
	"courier/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (usecase.AuthUsecase, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher, *mockSvc.MockTokenService) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		Tokens:   tokens,
	})

	return service, userRepo, hasher, tokens
}

func TestAuthService_Login_RequiresCredentials(t *testing.T) {
	service, _, _, _ := newAuthService(t)

	_, err := service.Login(context.Background(), &usecase.LoginRequest{Login: "   "})

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.True(t, vErr.Has("login"))
	assert.True(t, vErr.Has("password"))
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	service, userRepo, _, _ := newAuthService(t)

	ctx := context.Background()
	userRepo.EXPECT().FindByLogin(ctx, "ghost").
		Return(nil, repository.ErrUserNotFound)

	_, err := service.Login(ctx, &usecase.LoginRequest{Login: "ghost", Password: "secret"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	service, userRepo, hasher, _ := newAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: 1, Login: "admin", PasswordHash: "$2a$10$hash", Role: entity.RoleAdmin}

	userRepo.EXPECT().FindByLogin(ctx, "admin").Return(user, nil)
	hasher.EXPECT().Verify("wrong", "$2a$10$hash").Return(false)

	_, err := service.Login(ctx, &usecase.LoginRequest{Login: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_Success(t *testing.T) {
	service, userRepo, hasher, tokens := newAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: 1, Login: "admin", Name: "Admin", PasswordHash: "$2a$10$hash", Role: entity.RoleAdmin}

	// Login is trimmed before the lookup.
	userRepo.EXPECT().FindByLogin(ctx, "admin").Return(user, nil)
	hasher.EXPECT().Verify("secret", "$2a$10$hash").Return(true)
	tokens.EXPECT().Issue(user).Return("signed-token", nil)

	result, err := service.Login(ctx, &usecase.LoginRequest{Login: "  admin  ", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, "signed-token", result.Token)
	require.NotNil(t, result.User)
	assert.Equal(t, int64(1), result.User.ID)
	assert.Equal(t, "admin", result.User.Login)
	assert.Equal(t, "admin", result.User.Role)
}
