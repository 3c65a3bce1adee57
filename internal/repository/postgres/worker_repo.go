package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/workforce-api/internal/domain/entity"
	apperrors "github.com/yourusername/workforce-api/internal/pkg/errors"
)

// WorkerRepo реализует repository.WorkerRepository
type WorkerRepo struct {
	db *gorm.DB
}

// NewWorkerRepo создает новый репозиторий членства
func NewWorkerRepo(db *gorm.DB) *WorkerRepo {
	return &WorkerRepo{db: db}
}

// Create создает запись о членстве
func (r *WorkerRepo) Create(ctx context.Context, worker *entity.Worker) error {
	err := r.db.WithContext(ctx).Create(worker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Wrapf(apperrors.ErrAlreadyMember, "user %d in company %d", worker.UserID, worker.CompanyID)
		}
		return apperrors.Internal(err)
	}
	return nil
}

// GetByUserAndCompany возвращает запись о членстве пользователя в компании
func (r *WorkerRepo) GetByUserAndCompany(ctx context.Context, userID, companyID uint) (*entity.Worker, error) {
	var worker entity.Worker
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND company_id = ?", userID, companyID).
		First(&worker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrapf(apperrors.ErrNotFound, "worker for user %d in company %d", userID, companyID)
		}
		return nil, apperrors.Internal(err)
	}
	return &worker, nil
}

// GetOwner возвращает владельца компании
func (r *WorkerRepo) GetOwner(ctx context.Context, companyID uint) (*entity.Worker, error) {
	var worker entity.Worker
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND role = ?", companyID, entity.RoleOwner).
		First(&worker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrapf(apperrors.ErrNotFound, "owner of company %d", companyID)
		}
		return nil, apperrors.Internal(err)
	}
	return &worker, nil
}

// ListByCompany возвращает всех сотрудников компании
func (r *WorkerRepo) ListByCompany(ctx context.Context, companyID uint) ([]entity.Worker, error) {
	var workers []entity.Worker
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("id").
		Find(&workers).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return workers, nil
}

// ListOwnedCompanyIDs возвращает ID компаний, которыми владеет пользователь
func (r *WorkerRepo) ListOwnedCompanyIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&entity.Worker{}).
		Where("user_id = ? AND role = ?", userID, entity.RoleOwner).
		Pluck("company_id", &ids).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return ids, nil
}

// UpdateRole изменяет роль сотрудника
func (r *WorkerRepo) UpdateRole(ctx context.Context, userID, companyID uint, role entity.Role) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Worker{}).
		Where("user_id = ? AND company_id = ?", userID, companyID).
		Update("role", role)
	if result.Error != nil {
		return apperrors.Internal(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.Wrapf(apperrors.ErrNotFound, "worker for user %d in company %d", userID, companyID)
	}
	return nil
}

// Delete удаляет запись о членстве
func (r *WorkerRepo) Delete(ctx context.Context, userID, companyID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND company_id = ?", userID, companyID).
		Delete(&entity.Worker{})
	if result.Error != nil {
		return apperrors.Internal(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.Wrapf(apperrors.ErrNotFound, "worker for user %d in company %d", userID, companyID)
	}
	return nil
}
