package service

import (
	"context"
	"errors"

	"github.com/yourusername/workforce-api/internal/domain/entity"
	"github.com/yourusername/workforce-api/internal/domain/repository"
	apperrors "github.com/yourusername/workforce-api/internal/pkg/errors"
)

// Минимальные требования к определению викторины
const (
	minQuestionsPerQuiz   = 2
	minAnswersPerQuestion = 2
)

// AnswerInput описывает вариант ответа при создании викторины
type AnswerInput struct {
	Text      string
	IsCorrect bool
}

// QuestionInput описывает вопрос при создании викторины
type QuestionInput struct {
	Text    string
	Answers []AnswerInput
}

// CreateQuizInput содержит определение новой викторины
type CreateQuizInput struct {
	Title             string
	Description       string
	PassingFrequency  int
	NumberOfQuestions int
	Questions         []QuestionInput
}

// QuizService предоставляет операции над викторинами компаний
type QuizService struct {
	quizRepo    repository.QuizRepository
	workerRepo  repository.WorkerRepository
	companyRepo repository.CompanyRepository
}

// NewQuizService создает новый сервис викторин
func NewQuizService(
	quizRepo repository.QuizRepository,
	workerRepo repository.WorkerRepository,
	companyRepo repository.CompanyRepository,
) *QuizService {
	return &QuizService{
		quizRepo:    quizRepo,
		workerRepo:  workerRepo,
		companyRepo: companyRepo,
	}
}

// validateDefinition проверяет определение викторины. Пустая или слишком
// короткая викторина отклоняется здесь, а не при подсчете очков: деление
// на ноль при вычислении GPA становится невозможным.
func validateDefinition(input CreateQuizInput) error {
	if len(input.Questions) < minQuestionsPerQuiz {
		return apperrors.Wrapf(apperrors.ErrInvalidQuizDefinition, "not enough questions: %d", len(input.Questions))
	}
	if input.NumberOfQuestions != len(input.Questions) {
		return apperrors.Wrapf(apperrors.ErrInvalidQuizDefinition,
			"declared number of questions %d does not match actual %d", input.NumberOfQuestions, len(input.Questions))
	}
	for i, question := range input.Questions {
		if len(question.Answers) < minAnswersPerQuestion {
			return apperrors.Wrapf(apperrors.ErrInvalidQuizDefinition, "question %d: not enough answers", i+1)
		}
		correct := 0
		for _, answer := range question.Answers {
			if answer.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			return apperrors.Wrapf(apperrors.ErrInvalidQuizDefinition,
				"question %d: exactly one correct answer required, got %d", i+1, correct)
		}
	}
	return nil
}

// Create создает викторину компании. Вызывающий должен быть владельцем
// или администратором компании.
func (s *QuizService) Create(ctx context.Context, companyID, callerID uint, input CreateQuizInput) (*entity.Quiz, error) {
	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		return nil, err
	}

	caller, err := s.workerRepo.GetByUserAndCompany(ctx, callerID, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Wrap(apperrors.ErrForbidden, "only company owner or admin can create quizzes")
		}
		return nil, err
	}
	if !caller.CanManageQuizzes() {
		return nil, apperrors.Wrap(apperrors.ErrForbidden, "only company owner or admin can create quizzes")
	}

	if err := validateDefinition(input); err != nil {
		return nil, err
	}

	quiz := &entity.Quiz{
		CompanyID:         companyID,
		Title:             input.Title,
		Description:       input.Description,
		PassingFrequency:  input.PassingFrequency,
		NumberOfQuestions: input.NumberOfQuestions,
	}
	for _, questionInput := range input.Questions {
		question := entity.Question{Text: questionInput.Text}
		for _, answerInput := range questionInput.Answers {
			question.Answers = append(question.Answers, entity.Answer{
				Text:      answerInput.Text,
				IsCorrect: answerInput.IsCorrect,
			})
		}
		quiz.Questions = append(quiz.Questions, question)
	}

	if err := s.quizRepo.CreateWithQuestions(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

// GetByID возвращает викторину с вопросами и вариантами ответов
func (s *QuizService) GetByID(ctx context.Context, quizID uint) (*entity.Quiz, error) {
	return s.quizRepo.GetByID(ctx, quizID)
}

// ListByCompany возвращает викторины компании
func (s *QuizService) ListByCompany(ctx context.Context, companyID uint) ([]entity.Quiz, error) {
	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		return nil, err
	}
	return s.quizRepo.ListByCompany(ctx, companyID)
}
