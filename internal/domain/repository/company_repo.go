package repository

import (
	"context"

	"github.com/yourusername/workforce-api/internal/domain/entity"
)

// CompanyRepository интерфейс для работы с компаниями
type CompanyRepository interface {
	// CreateWithOwner создает компанию и запись Worker с ролью owner
	// для создателя в одной транзакции.
	CreateWithOwner(ctx context.Context, company *entity.Company, ownerUserID uint) error

	// GetByID возвращает компанию по ID
	GetByID(ctx context.Context, id uint) (*entity.Company, error)

	// ListPublic возвращает страницу компаний без флага hidden
	ListPublic(ctx context.Context, offset, limit int) ([]entity.Company, error)

	// ListByUserID возвращает все компании, где у пользователя есть запись Worker
	ListByUserID(ctx context.Context, userID uint) ([]entity.Company, error)

	// Update сохраняет изменения компании
	Update(ctx context.Context, company *entity.Company) error

	// DeleteWithWorkers удаляет всех сотрудников компании, а затем саму
	// компанию, в одной транзакции. Порядок фиксирован: сначала workers.
	DeleteWithWorkers(ctx context.Context, companyID uint) error
}
