package service

import (
	"context"
	"errors"
	"log"

	"github.com/yourusername/workforce-api/internal/domain/entity"
	"github.com/yourusername/workforce-api/internal/domain/repository"
	apperrors "github.com/yourusername/workforce-api/internal/pkg/errors"
)

// WorkflowService реализует машину состояний предложений о членстве:
// приглашения от компаний и заявки от пользователей разделяют состояния
// pending -> accepted | rejected.
type WorkflowService struct {
	requestRepo repository.MembershipRequestRepository
	workerRepo  repository.WorkerRepository
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
}

// NewWorkflowService создает новый сервис предложений о членстве
func NewWorkflowService(
	requestRepo repository.MembershipRequestRepository,
	workerRepo repository.WorkerRepository,
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
) *WorkflowService {
	return &WorkflowService{
		requestRepo: requestRepo,
		workerRepo:  workerRepo,
		companyRepo: companyRepo,
		userRepo:    userRepo,
	}
}

// CreateInvite создает приглашение пользователя в компанию.
// Вызывающий должен быть владельцем компании, приглашать самого себя
// нельзя, действующий сотрудник и уже приглашенный пользователь
// отклоняются.
func (s *WorkflowService) CreateInvite(ctx context.Context, companyID, callerID, targetUserID uint) (*entity.MembershipRequest, error) {
	if targetUserID == callerID {
		return nil, apperrors.Wrap(apperrors.ErrInvalidOperation, "you cannot invite yourself")
	}

	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		return nil, err
	}

	caller, err := s.workerRepo.GetByUserAndCompany(ctx, callerID, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Wrap(apperrors.ErrForbidden, "you are not the owner of this company")
		}
		return nil, err
	}
	if !caller.IsOwner() {
		return nil, apperrors.Wrap(apperrors.ErrForbidden, "you are not the owner of this company")
	}

	if _, err := s.userRepo.GetByID(ctx, targetUserID); err != nil {
		return nil, err
	}

	if _, err := s.workerRepo.GetByUserAndCompany(ctx, targetUserID, companyID); err == nil {
		return nil, apperrors.Wrap(apperrors.ErrAlreadyMember, "the user is already an employee of the company")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if _, err := s.requestRepo.GetPending(ctx, targetUserID, companyID, entity.DirectionCompany); err == nil {
		return nil, apperrors.Wrap(apperrors.ErrAlreadyExists, "the user is already invited")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	invite := &entity.MembershipRequest{
		UserID:    targetUserID,
		CompanyID: companyID,
		Direction: entity.DirectionCompany,
	}
	if err := s.requestRepo.Create(ctx, invite); err != nil {
		return nil, err
	}
	log.Printf("[WorkflowService] Приглашение %d: компания %d -> пользователь %d", invite.ID, companyID, targetUserID)
	return invite, nil
}

// CreateJoinRequest создает заявку пользователя на вступление в компанию.
// Действующий сотрудник и повторная pending-заявка отклоняются.
func (s *WorkflowService) CreateJoinRequest(ctx context.Context, companyID, userID uint) (*entity.MembershipRequest, error) {
	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		return nil, err
	}

	if _, err := s.workerRepo.GetByUserAndCompany(ctx, userID, companyID); err == nil {
		return nil, apperrors.Wrap(apperrors.ErrAlreadyMember, "you are already an employee of this company")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if _, err := s.requestRepo.GetPending(ctx, userID, companyID, entity.DirectionUser); err == nil {
		return nil, apperrors.Wrap(apperrors.ErrAlreadyExists, "the request has already been sent")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	request := &entity.MembershipRequest{
		UserID:    userID,
		CompanyID: companyID,
		Direction: entity.DirectionUser,
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	log.Printf("[WorkflowService] Заявка %d: пользователь %d -> компания %d", request.ID, userID, companyID)
	return request, nil
}

// authorizeResolution проверяет, что actor вправе разрешить предложение:
// приглашение принимает приглашенный пользователь, заявку — владелец
// компании.
func (s *WorkflowService) authorizeResolution(ctx context.Context, request *entity.MembershipRequest, actorID uint) error {
	switch request.Direction {
	case entity.DirectionCompany:
		if request.UserID != actorID {
			return apperrors.Wrap(apperrors.ErrForbidden, "only the invited user can resolve this invite")
		}
	case entity.DirectionUser:
		owner, err := s.workerRepo.GetOwner(ctx, request.CompanyID)
		if err != nil {
			return err
		}
		if owner.UserID != actorID {
			return apperrors.Wrap(apperrors.ErrForbidden, "only the company owner can resolve this request")
		}
	default:
		return apperrors.Wrapf(apperrors.ErrInvalidOperation, "unknown direction %q", request.Direction)
	}
	return nil
}

// Accept переводит предложение из pending в accepted и создает членство
// с ролью member. Повторный accept получает ErrNotFound: предложение
// уже не pending.
func (s *WorkflowService) Accept(ctx context.Context, requestID, actorID uint) error {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if !request.IsPending() {
		return apperrors.Wrapf(apperrors.ErrNotFound, "pending membership request %d", requestID)
	}
	if err := s.authorizeResolution(ctx, request, actorID); err != nil {
		return err
	}
	if err := s.requestRepo.Accept(ctx, requestID); err != nil {
		return err
	}
	log.Printf("[WorkflowService] Предложение %d принято пользователем %d", requestID, actorID)
	return nil
}

// Reject переводит предложение из pending в rejected. Членство не
// создается, дальнейшие переходы невозможны.
func (s *WorkflowService) Reject(ctx context.Context, requestID, actorID uint) error {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if !request.IsPending() {
		return apperrors.Wrapf(apperrors.ErrNotFound, "pending membership request %d", requestID)
	}
	if err := s.authorizeResolution(ctx, request, actorID); err != nil {
		return err
	}
	return s.requestRepo.Reject(ctx, requestID)
}

// ListInvitesForUser возвращает приглашения, адресованные пользователю
func (s *WorkflowService) ListInvitesForUser(ctx context.Context, userID uint) ([]entity.MembershipRequest, error) {
	return s.requestRepo.ListByUser(ctx, userID, entity.DirectionCompany)
}

// ListJoinRequestsForOwner возвращает pending-заявки на вступление во
// все компании, которыми владеет пользователь.
func (s *WorkflowService) ListJoinRequestsForOwner(ctx context.Context, ownerID uint) ([]entity.MembershipRequest, error) {
	companyIDs, err := s.workerRepo.ListOwnedCompanyIDs(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.requestRepo.ListPendingByCompanies(ctx, companyIDs, entity.DirectionUser)
}
