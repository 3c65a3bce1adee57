package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/workforce-api/internal/domain/entity"
	apperrors "github.com/yourusername/workforce-api/internal/pkg/errors"
)

// MembershipRequestRepo реализует repository.MembershipRequestRepository
type MembershipRequestRepo struct {
	db *gorm.DB
}

// NewMembershipRequestRepo создает новый репозиторий предложений о членстве
func NewMembershipRequestRepo(db *gorm.DB) *MembershipRequestRepo {
	return &MembershipRequestRepo{db: db}
}

// Create создает новое предложение в состоянии pending
func (r *MembershipRequestRepo) Create(ctx context.Context, request *entity.MembershipRequest) error {
	request.Status = entity.StatusPending
	err := r.db.WithContext(ctx).Create(request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Wrap(apperrors.ErrAlreadyExists, "pending proposal for this pair already exists")
		}
		return apperrors.Internal(err)
	}
	return nil
}

// GetByID возвращает предложение по ID
func (r *MembershipRequestRepo) GetByID(ctx context.Context, id uint) (*entity.MembershipRequest, error) {
	var request entity.MembershipRequest
	err := r.db.WithContext(ctx).First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrapf(apperrors.ErrNotFound, "membership request %d", id)
		}
		return nil, apperrors.Internal(err)
	}
	return &request, nil
}

// GetPending возвращает pending-предложение для пары пользователь/компания
func (r *MembershipRequestRepo) GetPending(ctx context.Context, userID, companyID uint, direction entity.RequestDirection) (*entity.MembershipRequest, error) {
	var request entity.MembershipRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND company_id = ? AND direction = ? AND status = ?",
			userID, companyID, direction, entity.StatusPending).
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "pending proposal")
		}
		return nil, apperrors.Internal(err)
	}
	return &request, nil
}

// ListByUser возвращает предложения пользователя в заданном направлении
func (r *MembershipRequestRepo) ListByUser(ctx context.Context, userID uint, direction entity.RequestDirection) ([]entity.MembershipRequest, error) {
	var requests []entity.MembershipRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND direction = ?", userID, direction).
		Order("id").
		Find(&requests).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return requests, nil
}

// ListPendingByCompanies возвращает pending-предложения по списку компаний
func (r *MembershipRequestRepo) ListPendingByCompanies(ctx context.Context, companyIDs []uint, direction entity.RequestDirection) ([]entity.MembershipRequest, error) {
	if len(companyIDs) == 0 {
		return nil, nil
	}
	var requests []entity.MembershipRequest
	err := r.db.WithContext(ctx).
		Where("company_id IN ? AND direction = ? AND status = ?",
			companyIDs, direction, entity.StatusPending).
		Order("id").
		Find(&requests).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return requests, nil
}

// Accept переводит предложение из pending в accepted и создает запись
// Worker с ролью member. Смена статуса выполняется условным UPDATE:
// повторный accept не проходит фильтр по status и дает ErrNotFound,
// дубликат Worker при этом не появляется.
func (r *MembershipRequestRepo) Accept(ctx context.Context, requestID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var request entity.MembershipRequest
		if err := tx.First(&request, requestID).Error; err != nil {
			return err
		}

		result := tx.Model(&entity.MembershipRequest{}).
			Where("id = ? AND status = ?", requestID, entity.StatusPending).
			Update("status", entity.StatusAccepted)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		worker := entity.Worker{
			UserID:    request.UserID,
			CompanyID: request.CompanyID,
			Role:      entity.RoleMember,
		}
		return tx.Create(&worker).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Wrapf(apperrors.ErrNotFound, "pending membership request %d", requestID)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Wrap(apperrors.ErrAlreadyMember, "worker already exists")
		}
		return apperrors.Internal(err)
	}
	return nil
}

// Reject переводит предложение из pending в rejected
func (r *MembershipRequestRepo) Reject(ctx context.Context, requestID uint) error {
	result := r.db.WithContext(ctx).
		Model(&entity.MembershipRequest{}).
		Where("id = ? AND status = ?", requestID, entity.StatusPending).
		Update("status", entity.StatusRejected)
	if result.Error != nil {
		return apperrors.Internal(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.Wrapf(apperrors.ErrNotFound, "pending membership request %d", requestID)
	}
	return nil
}
