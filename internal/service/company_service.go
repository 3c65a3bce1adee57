package service

import (
	"context"
	"errors"
	"log"

	"github.com/yourusername/workforce-api/internal/domain/entity"
	"github.com/yourusername/workforce-api/internal/domain/repository"
	apperrors "github.com/yourusername/workforce-api/internal/pkg/errors"
)

// CreateCompanyInput содержит данные для создания компании
type CreateCompanyInput struct {
	Title       string
	Description string
}

// UpdateCompanyInput содержит частичное обновление компании.
// nil означает "поле не менять".
type UpdateCompanyInput struct {
	Title       *string
	Description *string
}

// CompanyService предоставляет операции над компаниями и членством.
// Все проверки прав выполняются явным запросом записи Worker,
// а не обходом загруженного графа объектов.
type CompanyService struct {
	companyRepo repository.CompanyRepository
	workerRepo  repository.WorkerRepository
}

// NewCompanyService создает новый сервис компаний
func NewCompanyService(companyRepo repository.CompanyRepository, workerRepo repository.WorkerRepository) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		workerRepo:  workerRepo,
	}
}

// requireOwner проверяет, что компания существует и вызывающий — ее владелец
func (s *CompanyService) requireOwner(ctx context.Context, companyID, callerID uint) error {
	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		return err
	}

	worker, err := s.workerRepo.GetByUserAndCompany(ctx, callerID, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.Wrap(apperrors.ErrForbidden, "you are not the owner of this company")
		}
		return err
	}
	if !worker.IsOwner() {
		return apperrors.Wrap(apperrors.ErrForbidden, "you are not the owner of this company")
	}
	return nil
}

// Create создает компанию; создатель становится владельцем. Компания и
// запись о владении фиксируются атомарно.
func (s *CompanyService) Create(ctx context.Context, creatorID uint, input CreateCompanyInput) (*entity.Company, error) {
	company := &entity.Company{
		Title:       input.Title,
		Description: input.Description,
	}
	if err := s.companyRepo.CreateWithOwner(ctx, company, creatorID); err != nil {
		return nil, err
	}
	log.Printf("[CompanyService] Компания %d создана пользователем %d", company.ID, creatorID)
	return company, nil
}

// GetByID возвращает компанию по ID
func (s *CompanyService) GetByID(ctx context.Context, companyID uint) (*entity.Company, error) {
	return s.companyRepo.GetByID(ctx, companyID)
}

// ListPublic возвращает страницу видимых компаний
func (s *CompanyService) ListPublic(ctx context.Context, offset, limit int) ([]entity.Company, error) {
	return s.companyRepo.ListPublic(ctx, offset, limit)
}

// ListMine возвращает компании, в которых состоит пользователь
func (s *CompanyService) ListMine(ctx context.Context, userID uint) ([]entity.Company, error) {
	return s.companyRepo.ListByUserID(ctx, userID)
}

// GetOwner возвращает запись о владельце компании
func (s *CompanyService) GetOwner(ctx context.Context, companyID uint) (*entity.Worker, error) {
	return s.workerRepo.GetOwner(ctx, companyID)
}

// GetWorker возвращает запись о членстве пользователя в компании
func (s *CompanyService) GetWorker(ctx context.Context, userID, companyID uint) (*entity.Worker, error) {
	return s.workerRepo.GetByUserAndCompany(ctx, userID, companyID)
}

// ListWorkers возвращает всех сотрудников компании
func (s *CompanyService) ListWorkers(ctx context.Context, companyID uint) ([]entity.Worker, error) {
	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		return nil, err
	}
	return s.workerRepo.ListByCompany(ctx, companyID)
}

// SetVisibility скрывает или показывает компанию. Только для владельца.
func (s *CompanyService) SetVisibility(ctx context.Context, companyID, callerID uint, hidden bool) (*entity.Company, error) {
	if err := s.requireOwner(ctx, companyID, callerID); err != nil {
		return nil, err
	}

	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	company.Hidden = hidden
	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// UpdateInfo применяет частичное обновление данных компании и возвращает
// сохраненную запись. Только для владельца.
func (s *CompanyService) UpdateInfo(ctx context.Context, companyID, callerID uint, input UpdateCompanyInput) (*entity.Company, error) {
	if input.Title == nil && input.Description == nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidOperation, "there is not enough data to update")
	}

	if err := s.requireOwner(ctx, companyID, callerID); err != nil {
		return nil, err
	}

	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if input.Title != nil {
		company.Title = *input.Title
	}
	if input.Description != nil {
		company.Description = *input.Description
	}
	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// SetWorkerRole изменяет роль сотрудника. Только для владельца.
// Назначать роль owner и менять собственную роль нельзя: в компании
// всегда ровно один владелец.
func (s *CompanyService) SetWorkerRole(ctx context.Context, companyID, callerID, targetUserID uint, role entity.Role) (*entity.Worker, error) {
	if !role.Valid() || role == entity.RoleOwner {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidOperation, "role %q cannot be assigned", role)
	}
	if targetUserID == callerID {
		return nil, apperrors.Wrap(apperrors.ErrInvalidOperation, "you cannot change your own role")
	}

	if err := s.requireOwner(ctx, companyID, callerID); err != nil {
		return nil, err
	}

	if _, err := s.workerRepo.GetByUserAndCompany(ctx, targetUserID, companyID); err != nil {
		return nil, err
	}
	if err := s.workerRepo.UpdateRole(ctx, targetUserID, companyID, role); err != nil {
		return nil, err
	}
	return s.workerRepo.GetByUserAndCompany(ctx, targetUserID, companyID)
}

// Delete удаляет компанию вместе со всеми записями о членстве.
// Только для владельца.
func (s *CompanyService) Delete(ctx context.Context, companyID, callerID uint) error {
	if err := s.requireOwner(ctx, companyID, callerID); err != nil {
		return err
	}
	if err := s.companyRepo.DeleteWithWorkers(ctx, companyID); err != nil {
		return err
	}
	log.Printf("[CompanyService] Компания %d удалена пользователем %d", companyID, callerID)
	return nil
}

// RemoveWorker исключает сотрудника из компании. Только для владельца;
// владелец не может исключить самого себя.
func (s *CompanyService) RemoveWorker(ctx context.Context, companyID, callerID, targetUserID uint) error {
	if targetUserID == callerID {
		return apperrors.Wrap(apperrors.ErrInvalidOperation, "you cannot delete yourself")
	}

	if err := s.requireOwner(ctx, companyID, callerID); err != nil {
		return err
	}

	if _, err := s.workerRepo.GetByUserAndCompany(ctx, targetUserID, companyID); err != nil {
		return err
	}
	return s.workerRepo.Delete(ctx, targetUserID, companyID)
}
