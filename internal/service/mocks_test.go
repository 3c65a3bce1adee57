package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/yourusername/workforce-api/internal/domain/entity"
	apperrors "github.com/yourusername/workforce-api/internal/pkg/errors"
)

// fakeStore — общее in-memory хранилище для фейковых репозиториев.
// Повторяет семантику postgres-слоя: уникальные индексы, условные
// вставки, пересчет GPA.
type fakeStore struct {
	mu sync.Mutex

	users          map[uint]*entity.User
	companies      map[uint]*entity.Company
	workers        map[uint]*entity.Worker
	requests       map[uint]*entity.MembershipRequest
	quizzes        map[uint]*entity.Quiz
	generalResults map[uint]*entity.GeneralResult
	quizResults    map[uint]*entity.QuizResult
	answerHistory  map[string]uint

	nextID uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:          make(map[uint]*entity.User),
		companies:      make(map[uint]*entity.Company),
		workers:        make(map[uint]*entity.Worker),
		requests:       make(map[uint]*entity.MembershipRequest),
		quizzes:        make(map[uint]*entity.Quiz),
		generalResults: make(map[uint]*entity.GeneralResult),
		quizResults:    make(map[uint]*entity.QuizResult),
		answerHistory:  make(map[string]uint),
	}
}

func (s *fakeStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) findWorker(userID, companyID uint) *entity.Worker {
	for _, worker := range s.workers {
		if worker.UserID == userID && worker.CompanyID == companyID {
			return worker
		}
	}
	return nil
}

func (s *fakeStore) createWorker(userID, companyID uint, role entity.Role) error {
	if s.findWorker(userID, companyID) != nil {
		return apperrors.Wrapf(apperrors.ErrAlreadyMember, "user %d in company %d", userID, companyID)
	}
	worker := &entity.Worker{ID: s.id(), UserID: userID, CompanyID: companyID, Role: role}
	s.workers[worker.ID] = worker
	return nil
}

// --- UserRepository ---

type fakeUserRepo struct{ s *fakeStore }

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == user.Email {
			return apperrors.Wrap(apperrors.ErrDuplicateEmail, user.Email)
		}
	}
	user.ID = r.s.id()
	copied := *user
	r.s.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user, ok := r.s.users[id]
	if !ok {
		return nil, apperrors.Wrapf(apperrors.ErrNotFound, "user %d", id)
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, user := range r.s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.Wrap(apperrors.ErrNotFound, "user by email")
}

func (r *fakeUserRepo) List(_ context.Context, offset, limit int) ([]entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var users []entity.User
	for _, user := range r.s.users {
		users = append(users, *user)
	}
	return users, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.ID]; !ok {
		return apperrors.Wrapf(apperrors.ErrNotFound, "user %d", user.ID)
	}
	copied := *user
	r.s.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return apperrors.Wrapf(apperrors.ErrNotFound, "user %d", id)
	}
	delete(r.s.users, id)
	return nil
}

// --- CompanyRepository ---

type fakeCompanyRepo struct{ s *fakeStore }

func (r *fakeCompanyRepo) CreateWithOwner(_ context.Context, company *entity.Company, ownerUserID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	company.ID = r.s.id()
	copied := *company
	r.s.companies[company.ID] = &copied
	return r.s.createWorker(ownerUserID, company.ID, entity.RoleOwner)
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id uint) (*entity.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	company, ok := r.s.companies[id]
	if !ok {
		return nil, apperrors.Wrapf(apperrors.ErrNotFound, "company %d", id)
	}
	copied := *company
	return &copied, nil
}

func (r *fakeCompanyRepo) ListPublic(_ context.Context, offset, limit int) ([]entity.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var companies []entity.Company
	for _, company := range r.s.companies {
		if !company.Hidden {
			companies = append(companies, *company)
		}
	}
	return companies, nil
}

func (r *fakeCompanyRepo) ListByUserID(_ context.Context, userID uint) ([]entity.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var companies []entity.Company
	for _, worker := range r.s.workers {
		if worker.UserID == userID {
			if company, ok := r.s.companies[worker.CompanyID]; ok {
				companies = append(companies, *company)
			}
		}
	}
	return companies, nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, company *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[company.ID]; !ok {
		return apperrors.Wrapf(apperrors.ErrNotFound, "company %d", company.ID)
	}
	copied := *company
	r.s.companies[company.ID] = &copied
	return nil
}

func (r *fakeCompanyRepo) DeleteWithWorkers(_ context.Context, companyID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[companyID]; !ok {
		return apperrors.Wrapf(apperrors.ErrNotFound, "company %d", companyID)
	}
	for id, worker := range r.s.workers {
		if worker.CompanyID == companyID {
			delete(r.s.workers, id)
		}
	}
	delete(r.s.companies, companyID)
	return nil
}

// --- WorkerRepository ---

type fakeWorkerRepo struct{ s *fakeStore }

func (r *fakeWorkerRepo) Create(_ context.Context, worker *entity.Worker) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.createWorker(worker.UserID, worker.CompanyID, worker.Role)
}

func (r *fakeWorkerRepo) GetByUserAndCompany(_ context.Context, userID, companyID uint) (*entity.Worker, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	worker := r.s.findWorker(userID, companyID)
	if worker == nil {
		return nil, apperrors.Wrapf(apperrors.ErrNotFound, "worker for user %d in company %d", userID, companyID)
	}
	copied := *worker
	return &copied, nil
}

func (r *fakeWorkerRepo) GetOwner(_ context.Context, companyID uint) (*entity.Worker, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, worker := range r.s.workers {
		if worker.CompanyID == companyID && worker.Role == entity.RoleOwner {
			copied := *worker
			return &copied, nil
		}
	}
	return nil, apperrors.Wrapf(apperrors.ErrNotFound, "owner of company %d", companyID)
}

func (r *fakeWorkerRepo) ListByCompany(_ context.Context, companyID uint) ([]entity.Worker, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var workers []entity.Worker
	for _, worker := range r.s.workers {
		if worker.CompanyID == companyID {
			workers = append(workers, *worker)
		}
	}
	return workers, nil
}

func (r *fakeWorkerRepo) ListOwnedCompanyIDs(_ context.Context, userID uint) ([]uint, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var ids []uint
	for _, worker := range r.s.workers {
		if worker.UserID == userID && worker.Role == entity.RoleOwner {
			ids = append(ids, worker.CompanyID)
		}
	}
	return ids, nil
}

func (r *fakeWorkerRepo) UpdateRole(_ context.Context, userID, companyID uint, role entity.Role) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	worker := r.s.findWorker(userID, companyID)
	if worker == nil {
		return apperrors.Wrapf(apperrors.ErrNotFound, "worker for user %d in company %d", userID, companyID)
	}
	worker.Role = role
	return nil
}

func (r *fakeWorkerRepo) Delete(_ context.Context, userID, companyID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	worker := r.s.findWorker(userID, companyID)
	if worker == nil {
		return apperrors.Wrapf(apperrors.ErrNotFound, "worker for user %d in company %d", userID, companyID)
	}
	delete(r.s.workers, worker.ID)
	return nil
}

// --- MembershipRequestRepository ---

type fakeRequestRepo struct{ s *fakeStore }

func (r *fakeRequestRepo) Create(_ context.Context, request *entity.MembershipRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.requests {
		if existing.UserID == request.UserID && existing.CompanyID == request.CompanyID &&
			existing.Direction == request.Direction && existing.Status == entity.StatusPending {
			return apperrors.Wrap(apperrors.ErrAlreadyExists, "pending proposal for this pair already exists")
		}
	}
	request.ID = r.s.id()
	request.Status = entity.StatusPending
	copied := *request
	r.s.requests[request.ID] = &copied
	return nil
}

func (r *fakeRequestRepo) GetByID(_ context.Context, id uint) (*entity.MembershipRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	request, ok := r.s.requests[id]
	if !ok {
		return nil, apperrors.Wrapf(apperrors.ErrNotFound, "membership request %d", id)
	}
	copied := *request
	return &copied, nil
}

func (r *fakeRequestRepo) GetPending(_ context.Context, userID, companyID uint, direction entity.RequestDirection) (*entity.MembershipRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, request := range r.s.requests {
		if request.UserID == userID && request.CompanyID == companyID &&
			request.Direction == direction && request.Status == entity.StatusPending {
			copied := *request
			return &copied, nil
		}
	}
	return nil, apperrors.Wrap(apperrors.ErrNotFound, "pending proposal")
}

func (r *fakeRequestRepo) ListByUser(_ context.Context, userID uint, direction entity.RequestDirection) ([]entity.MembershipRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var requests []entity.MembershipRequest
	for _, request := range r.s.requests {
		if request.UserID == userID && request.Direction == direction {
			requests = append(requests, *request)
		}
	}
	return requests, nil
}

func (r *fakeRequestRepo) ListPendingByCompanies(_ context.Context, companyIDs []uint, direction entity.RequestDirection) ([]entity.MembershipRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var requests []entity.MembershipRequest
	for _, request := range r.s.requests {
		if request.Direction != direction || request.Status != entity.StatusPending {
			continue
		}
		for _, companyID := range companyIDs {
			if request.CompanyID == companyID {
				requests = append(requests, *request)
				break
			}
		}
	}
	return requests, nil
}

func (r *fakeRequestRepo) Accept(_ context.Context, requestID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	request, ok := r.s.requests[requestID]
	if !ok || request.Status != entity.StatusPending {
		return apperrors.Wrapf(apperrors.ErrNotFound, "pending membership request %d", requestID)
	}
	request.Status = entity.StatusAccepted
	return r.s.createWorker(request.UserID, request.CompanyID, entity.RoleMember)
}

func (r *fakeRequestRepo) Reject(_ context.Context, requestID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	request, ok := r.s.requests[requestID]
	if !ok || request.Status != entity.StatusPending {
		return apperrors.Wrapf(apperrors.ErrNotFound, "pending membership request %d", requestID)
	}
	request.Status = entity.StatusRejected
	return nil
}

// --- QuizRepository ---

type fakeQuizRepo struct{ s *fakeStore }

func (r *fakeQuizRepo) CreateWithQuestions(_ context.Context, quiz *entity.Quiz) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	quiz.ID = r.s.id()
	for i := range quiz.Questions {
		quiz.Questions[i].ID = r.s.id()
		quiz.Questions[i].QuizID = quiz.ID
		for j := range quiz.Questions[i].Answers {
			quiz.Questions[i].Answers[j].ID = r.s.id()
			quiz.Questions[i].Answers[j].QuestionID = quiz.Questions[i].ID
		}
	}
	copied := *quiz
	r.s.quizzes[quiz.ID] = &copied
	return nil
}

func (r *fakeQuizRepo) GetByID(_ context.Context, id uint) (*entity.Quiz, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	quiz, ok := r.s.quizzes[id]
	if !ok {
		return nil, apperrors.Wrapf(apperrors.ErrNotFound, "quiz %d", id)
	}
	copied := *quiz
	return &copied, nil
}

func (r *fakeQuizRepo) ListByCompany(_ context.Context, companyID uint) ([]entity.Quiz, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var quizzes []entity.Quiz
	for _, quiz := range r.s.quizzes {
		if quiz.CompanyID == companyID {
			quizzes = append(quizzes, *quiz)
		}
	}
	return quizzes, nil
}

func (r *fakeQuizRepo) GetCorrectAnswers(_ context.Context, quizID uint) (map[uint]uint, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	quiz, ok := r.s.quizzes[quizID]
	if !ok {
		return nil, apperrors.Wrapf(apperrors.ErrNotFound, "quiz %d", quizID)
	}
	correct := make(map[uint]uint)
	for _, question := range quiz.Questions {
		for _, answer := range question.Answers {
			if answer.IsCorrect {
				correct[question.ID] = answer.ID
			}
		}
	}
	return correct, nil
}

// --- ResultRepository ---

type fakeResultRepo struct{ s *fakeStore }

func (r *fakeResultRepo) GetByUserAndCompany(_ context.Context, userID, companyID uint) (*entity.GeneralResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, general := range r.s.generalResults {
		if general.UserID == userID && general.CompanyID == companyID {
			copied := *general
			return &copied, nil
		}
	}
	return nil, apperrors.Wrapf(apperrors.ErrNotFound, "general result for user %d in company %d", userID, companyID)
}

func (r *fakeResultRepo) RecordAttempt(_ context.Context, userID, companyID, quizID uint, correctAnswers int) (*entity.GeneralResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var general *entity.GeneralResult
	for _, existing := range r.s.generalResults {
		if existing.UserID == userID && existing.CompanyID == companyID {
			general = existing
			break
		}
	}
	if general == nil {
		general = &entity.GeneralResult{ID: r.s.id(), UserID: userID, CompanyID: companyID}
		r.s.generalResults[general.ID] = general
	}

	quizResult := &entity.QuizResult{
		ID:              r.s.id(),
		GeneralResultID: general.ID,
		QuizID:          quizID,
		CorrectAnswers:  correctAnswers,
	}
	r.s.quizResults[quizResult.ID] = quizResult

	sumCorrect, sumQuestions := 0, 0
	for _, result := range r.s.quizResults {
		if result.GeneralResultID != general.ID {
			continue
		}
		sumCorrect += result.CorrectAnswers
		if quiz, ok := r.s.quizzes[result.QuizID]; ok {
			sumQuestions += quiz.NumberOfQuestions
		}
	}
	if sumQuestions == 0 {
		return nil, apperrors.Internal(fmt.Errorf("gpa recompute: zero questions in history"))
	}
	general.GPA = float64(sumCorrect) / float64(sumQuestions)

	copied := *general
	return &copied, nil
}

// --- AnswerHistoryRepository ---

type fakeAnswerHistory struct{ s *fakeStore }

func (r *fakeAnswerHistory) Set(_ context.Context, userID, questionID, answerID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.answerHistory[fmt.Sprintf("%d_%d", userID, questionID)] = answerID
	return nil
}

func (r *fakeAnswerHistory) Get(_ context.Context, userID, questionID uint) (uint, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	answerID, ok := r.s.answerHistory[fmt.Sprintf("%d_%d", userID, questionID)]
	if !ok {
		return 0, apperrors.Wrap(apperrors.ErrNotFound, "answer history entry")
	}
	return answerID, nil
}
