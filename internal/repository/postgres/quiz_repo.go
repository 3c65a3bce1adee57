package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/workforce-api/internal/domain/entity"
	apperrors "github.com/yourusername/workforce-api/internal/pkg/errors"
)

// QuizRepo реализует repository.QuizRepository
type QuizRepo struct {
	db *gorm.DB
}

// NewQuizRepo создает новый репозиторий викторин
func NewQuizRepo(db *gorm.DB) *QuizRepo {
	return &QuizRepo{db: db}
}

// CreateWithQuestions создает викторину вместе с вопросами и вариантами
// ответов. GORM каскадно сохраняет вложенные срезы в одной транзакции.
func (r *QuizRepo) CreateWithQuestions(ctx context.Context, quiz *entity.Quiz) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(quiz).Error
	})
	if err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// GetByID возвращает викторину с вопросами и вариантами ответов
func (r *QuizRepo) GetByID(ctx context.Context, id uint) (*entity.Quiz, error) {
	var quiz entity.Quiz
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("questions.id") }).
		Preload("Questions.Answers", func(db *gorm.DB) *gorm.DB { return db.Order("answers.id") }).
		First(&quiz, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrapf(apperrors.ErrNotFound, "quiz %d", id)
		}
		return nil, apperrors.Internal(err)
	}
	return &quiz, nil
}

// ListByCompany возвращает викторины компании без вопросов
func (r *QuizRepo) ListByCompany(ctx context.Context, companyID uint) ([]entity.Quiz, error) {
	var quizzes []entity.Quiz
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("id").
		Find(&quizzes).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return quizzes, nil
}

// GetCorrectAnswers возвращает отображение question_id -> id правильного
// варианта для всех вопросов викторины.
func (r *QuizRepo) GetCorrectAnswers(ctx context.Context, quizID uint) (map[uint]uint, error) {
	var rows []struct {
		QuestionID uint
		AnswerID   uint
	}
	err := r.db.WithContext(ctx).
		Model(&entity.Answer{}).
		Select("answers.question_id AS question_id, answers.id AS answer_id").
		Joins("JOIN questions ON questions.id = answers.question_id").
		Where("questions.quiz_id = ? AND answers.is_correct = ?", quizID, true).
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	correct := make(map[uint]uint, len(rows))
	for _, row := range rows {
		correct[row.QuestionID] = row.AnswerID
	}
	return correct, nil
}
