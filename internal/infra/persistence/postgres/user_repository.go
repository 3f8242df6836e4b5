// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"courier/internal/domain/entity"
	"courier/internal/domain/repository"
	"courier/internal/infra/persistence/model"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create persists a new user and fills the generated ID.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLogin
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt

	return nil
}

// Update persists changes to an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"login":         user.Login,
			"password_hash": user.PasswordHash,
			"name":          user.Name,
			"role":          user.Role.String(),
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateLogin
		}

		return errors.Wrap(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes a user by ID.
func (repo *userRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// FindByID retrieves a user by its unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByLogin retrieves a user by its unique login.
func (repo *userRepository) FindByLogin(ctx context.Context, login string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("login = ?", login).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by login")
	}

	return toUserDomain(&userM), nil
}

// FindAll retrieves all users, optionally restricted to one role.
func (repo *userRepository) FindAll(ctx context.Context, role *entity.Role) ([]*entity.User, error) {
	var userModels []*model.UserModel

	query := repo.db.WithContext(ctx).Order("id ASC")
	if role != nil {
		query = query.Where("role = ?", role.String())
	}

	if err := query.Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// FindManyByIDs retrieves users keyed by ID. Missing IDs are simply absent.
func (repo *userRepository) FindManyByIDs(ctx context.Context, ids []int64) (map[int64]*entity.User, error) {
	if len(ids) == 0 {
		return map[int64]*entity.User{}, nil
	}

	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users by IDs")
	}

	users := make(map[int64]*entity.User, len(userModels))
	for _, userM := range userModels {
		users[userM.ID] = toUserDomain(userM)
	}

	return users, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Login:        data.Login,
		PasswordHash: data.PasswordHash,
		Name:         data.Name,
		Role:         entity.Role(data.Role),
		CreatedAt:    data.CreatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Login:        data.Login,
		PasswordHash: data.PasswordHash,
		Name:         data.Name,
		Role:         data.Role.String(),
		CreatedAt:    data.CreatedAt,
	}
}
