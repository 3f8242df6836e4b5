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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (usecase.UserUsecase, *mockRepo.MockUserRepository, *mockRepo.MockDeliveryRepository, *mockSvc.MockPasswordHasher) {
	userRepo := mockRepo.NewMockUserRepository(t)
	deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		DeliveryRepo: deliveryRepo,
		Hasher:       hasher,
	})

	return service, userRepo, deliveryRepo, hasher
}

func TestUserService_ListUsers_RejectsUnknownRole(t *testing.T) {
	service, _, _, _ := newUserService(t)

	role := "janitor"
	_, err := service.ListUsers(context.Background(), &role)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.True(t, vErr.Has("role"))
}

func TestUserService_ListUsers_FiltersByRole(t *testing.T) {
	service, userRepo, _, _ := newUserService(t)

	ctx := context.Background()
	role := "courier"

	userRepo.EXPECT().FindAll(ctx, mock.AnythingOfType("*entity.Role")).
		Return([]*entity.User{{ID: 7, Login: "courier1", Role: entity.RoleCourier}}, nil)

	views, err := service.ListUsers(ctx, &role)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "courier", views[0].Role)
}

func TestUserService_CreateUser_ValidatesPayload(t *testing.T) {
	service, _, _, _ := newUserService(t)

	_, err := service.CreateUser(context.Background(), &usecase.CreateUserRequest{Role: "pilot"})

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	for _, field := range []string{"login", "name", "password", "role"} {
		assert.True(t, vErr.Has(field), "expected error for field %s", field)
	}
}

func TestUserService_CreateUser_Success(t *testing.T) {
	service, userRepo, _, hasher := newUserService(t)

	ctx := context.Background()
	hasher.EXPECT().Hash("secret").Return("$2a$10$hash", nil)
	userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "$2a$10$hash", user.PasswordHash)
			user.ID = 8
		}).
		Return(nil)

	view, err := service.CreateUser(ctx, &usecase.CreateUserRequest{
		Login:    " newcourier ",
		Name:     "New Courier",
		Password: "secret",
		Role:     "courier",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(8), view.ID)
	assert.Equal(t, "newcourier", view.Login)
	assert.Equal(t, "courier", view.Role)
}

func TestUserService_CreateUser_DuplicateLogin(t *testing.T) {
	service, userRepo, _, hasher := newUserService(t)

	ctx := context.Background()
	hasher.EXPECT().Hash("secret").Return("$2a$10$hash", nil)
	userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateLogin)

	_, err := service.CreateUser(ctx, &usecase.CreateUserRequest{
		Login:    "admin",
		Name:     "Admin",
		Password: "secret",
		Role:     "admin",
	})

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, map[string]string{"login": "login already in use"}, vErr.Fields())
}

func TestUserService_UpdateUser_PartialUpdate(t *testing.T) {
	service, userRepo, _, _ := newUserService(t)

	ctx := context.Background()
	existing := &entity.User{ID: 8, Login: "courier1", Name: "Old Name", Role: entity.RoleCourier}

	userRepo.EXPECT().FindByID(ctx, int64(8)).Return(existing, nil)
	userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	name := "New Name"
	view, err := service.UpdateUser(ctx, 8, &usecase.UpdateUserRequest{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "New Name", view.Name)
	assert.Equal(t, "courier1", view.Login)
}

func TestUserService_UpdateUser_LoginTaken(t *testing.T) {
	service, userRepo, _, _ := newUserService(t)

	ctx := context.Background()
	userRepo.EXPECT().FindByID(ctx, int64(8)).
		Return(&entity.User{ID: 8, Login: "courier1", Role: entity.RoleCourier}, nil)
	userRepo.EXPECT().FindByLogin(ctx, "admin").
		Return(&entity.User{ID: 1, Login: "admin"}, nil)

	login := "admin"
	_, err := service.UpdateUser(ctx, 8, &usecase.UpdateUserRequest{Login: &login})

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, map[string]string{"login": "login already in use"}, vErr.Fields())
}

func TestUserService_DeleteUser_BlockedByActiveDeliveries(t *testing.T) {
	service, userRepo, deliveryRepo, _ := newUserService(t)

	ctx := context.Background()
	userRepo.EXPECT().FindByID(ctx, int64(7)).
		Return(&entity.User{ID: 7, Role: entity.RoleCourier}, nil)
	deliveryRepo.EXPECT().FindByCourier(ctx, int64(7)).
		Return([]*entity.Delivery{{ID: 4, CourierID: 7}}, nil)

	err := service.DeleteUser(ctx, 7)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, map[string]string{"id": "user participates in active deliveries and cannot be deleted"}, vErr.Fields())
}

func TestUserService_DeleteUser_Success(t *testing.T) {
	service, userRepo, deliveryRepo, _ := newUserService(t)

	ctx := context.Background()
	userRepo.EXPECT().FindByID(ctx, int64(7)).
		Return(&entity.User{ID: 7, Role: entity.RoleCourier}, nil)
	deliveryRepo.EXPECT().FindByCourier(ctx, int64(7)).Return(nil, nil)
	userRepo.EXPECT().Delete(ctx, int64(7)).Return(nil)

	require.NoError(t, service.DeleteUser(ctx, 7))
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	service, userRepo, _, _ := newUserService(t)

	ctx := context.Background()
	userRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrUserNotFound)

	_, err := service.GetUser(ctx, 404)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
