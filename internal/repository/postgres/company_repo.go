package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/workforce-api/internal/domain/entity"
	apperrors "github.com/yourusername/workforce-api/internal/pkg/errors"
)

// CompanyRepo реализует repository.CompanyRepository
type CompanyRepo struct {
	db *gorm.DB
}

// NewCompanyRepo создает новый репозиторий компаний
func NewCompanyRepo(db *gorm.DB) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// CreateWithOwner создает компанию и запись Worker с ролью owner для
// создателя. Обе записи фиксируются в одной транзакции: компания без
// владельца существовать не должна.
func (r *CompanyRepo) CreateWithOwner(ctx context.Context, company *entity.Company, ownerUserID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(company).Error; err != nil {
			return err
		}
		worker := entity.Worker{
			UserID:    ownerUserID,
			CompanyID: company.ID,
			Role:      entity.RoleOwner,
		}
		return tx.Create(&worker).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Wrap(apperrors.ErrAlreadyMember, "owner worker already exists")
		}
		return apperrors.Internal(err)
	}
	return nil
}

// GetByID возвращает компанию по ID
func (r *CompanyRepo) GetByID(ctx context.Context, id uint) (*entity.Company, error) {
	var company entity.Company
	err := r.db.WithContext(ctx).First(&company, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrapf(apperrors.ErrNotFound, "company %d", id)
		}
		return nil, apperrors.Internal(err)
	}
	return &company, nil
}

// ListPublic возвращает страницу компаний без флага hidden
func (r *CompanyRepo) ListPublic(ctx context.Context, offset, limit int) ([]entity.Company, error) {
	var companies []entity.Company
	err := r.db.WithContext(ctx).
		Where("hidden = ?", false).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&companies).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return companies, nil
}

// ListByUserID возвращает все компании, где у пользователя есть запись Worker
func (r *CompanyRepo) ListByUserID(ctx context.Context, userID uint) ([]entity.Company, error) {
	var companies []entity.Company
	err := r.db.WithContext(ctx).
		Joins("JOIN workers ON workers.company_id = companies.id").
		Where("workers.user_id = ?", userID).
		Order("companies.id").
		Find(&companies).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return companies, nil
}

// Update сохраняет изменения компании
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	if err := r.db.WithContext(ctx).Save(company).Error; err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// DeleteWithWorkers удаляет всех сотрудников компании, а затем саму
// компанию, в одной транзакции. Порядок workers -> company гарантирует
// отсутствие осиротевших записей о членстве.
func (r *CompanyRepo) DeleteWithWorkers(ctx context.Context, companyID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("company_id = ?", companyID).Delete(&entity.Worker{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&entity.Company{}, companyID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Wrapf(apperrors.ErrNotFound, "company %d", companyID)
		}
		return apperrors.Internal(err)
	}
	return nil
}
