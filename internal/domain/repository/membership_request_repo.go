package repository

import (
	"context"

	"github.com/yourusername/workforce-api/internal/domain/entity"
)

// MembershipRequestRepository интерфейс для работы с предложениями о членстве
type MembershipRequestRepository interface {
	// Create создает новое предложение в состоянии pending. Дубликат
	// pending-предложения для той же пары и направления возвращает
	// ErrAlreadyExists (частичный уникальный индекс).
	Create(ctx context.Context, request *entity.MembershipRequest) error

	// GetByID возвращает предложение по ID
	GetByID(ctx context.Context, id uint) (*entity.MembershipRequest, error)

	// GetPending возвращает pending-предложение для пары пользователь/компания
	// в заданном направлении, либо ErrNotFound.
	GetPending(ctx context.Context, userID, companyID uint, direction entity.RequestDirection) (*entity.MembershipRequest, error)

	// ListByUser возвращает предложения пользователя в заданном направлении
	ListByUser(ctx context.Context, userID uint, direction entity.RequestDirection) ([]entity.MembershipRequest, error)

	// ListPendingByCompanies возвращает pending-предложения заданного
	// направления по списку компаний.
	ListPendingByCompanies(ctx context.Context, companyIDs []uint, direction entity.RequestDirection) ([]entity.MembershipRequest, error)

	// Accept переводит предложение из pending в accepted и создает
	// запись Worker с ролью member в одной транзакции. Если предложение
	// уже не pending — ErrNotFound; если членство уже существует — ErrAlreadyMember.
	Accept(ctx context.Context, requestID uint) error

	// Reject переводит предложение из pending в rejected.
	// Если предложение уже не pending — ErrNotFound.
	Reject(ctx context.Context, requestID uint) error
}
