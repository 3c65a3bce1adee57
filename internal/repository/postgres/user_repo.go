package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/workforce-api/internal/domain/entity"
	apperrors "github.com/yourusername/workforce-api/internal/pkg/errors"
)

// UserRepo реализует repository.UserRepository
type UserRepo struct {
	db *gorm.DB
}

// NewUserRepo создает новый репозиторий пользователей
func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create создает нового пользователя
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Wrap(apperrors.ErrDuplicateEmail, user.Email)
		}
		return apperrors.Internal(err)
	}
	return nil
}

// GetByID возвращает пользователя по ID
func (r *UserRepo) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrapf(apperrors.ErrNotFound, "user %d", id)
		}
		return nil, apperrors.Internal(err)
	}
	return &user, nil
}

// GetByEmail возвращает пользователя по email
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "user by email")
		}
		return nil, apperrors.Internal(err)
	}
	return &user, nil
}

// List возвращает страницу пользователей
func (r *UserRepo) List(ctx context.Context, offset, limit int) ([]entity.User, error) {
	var users []entity.User
	err := r.db.WithContext(ctx).Order("id").Offset(offset).Limit(limit).Find(&users).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return users, nil
}

// Update сохраняет изменения пользователя
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// Delete удаляет пользователя по ID
func (r *UserRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.User{}, id)
	if result.Error != nil {
		return apperrors.Internal(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.Wrapf(apperrors.ErrNotFound, "user %d", id)
	}
	return nil
}
