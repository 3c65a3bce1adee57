package repository

import (
	"context"

	"github.com/yourusername/workforce-api/internal/domain/entity"
)

// WorkerRepository интерфейс для работы с членством в компаниях
type WorkerRepository interface {
	// Create создает запись о членстве. При нарушении уникальности
	// (user_id, company_id) возвращает ErrAlreadyMember.
	Create(ctx context.Context, worker *entity.Worker) error

	// GetByUserAndCompany возвращает запись о членстве пользователя в компании
	GetByUserAndCompany(ctx context.Context, userID, companyID uint) (*entity.Worker, error)

	// GetOwner возвращает владельца компании
	GetOwner(ctx context.Context, companyID uint) (*entity.Worker, error)

	// ListByCompany возвращает всех сотрудников компании
	ListByCompany(ctx context.Context, companyID uint) ([]entity.Worker, error)

	// ListOwnedCompanyIDs возвращает ID компаний, которыми владеет пользователь
	ListOwnedCompanyIDs(ctx context.Context, userID uint) ([]uint, error)

	// UpdateRole изменяет роль сотрудника
	UpdateRole(ctx context.Context, userID, companyID uint, role entity.Role) error

	// Delete удаляет запись о членстве
	Delete(ctx context.Context, userID, companyID uint) error
}
