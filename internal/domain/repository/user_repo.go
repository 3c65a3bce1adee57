package repository

import (
	"context"

	"github.com/yourusername/workforce-api/internal/domain/entity"
)

// UserRepository интерфейс для работы с пользователями
type UserRepository interface {
	// Create создает нового пользователя
	Create(ctx context.Context, user *entity.User) error

	// GetByID возвращает пользователя по ID
	GetByID(ctx context.Context, id uint) (*entity.User, error)

	// GetByEmail возвращает пользователя по email
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// List возвращает страницу пользователей
	List(ctx context.Context, offset, limit int) ([]entity.User, error)

	// Update сохраняет изменения пользователя
	Update(ctx context.Context, user *entity.User) error

	// Delete удаляет пользователя по ID
	Delete(ctx context.Context, id uint) error
}
