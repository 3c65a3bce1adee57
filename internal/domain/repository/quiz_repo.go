package repository

import (
	"context"

	"github.com/yourusername/workforce-api/internal/domain/entity"
)

// QuizRepository интерфейс для работы с викторинами
type QuizRepository interface {
	// CreateWithQuestions создает викторину вместе с вопросами и
	// вариантами ответов в одной транзакции.
	CreateWithQuestions(ctx context.Context, quiz *entity.Quiz) error

	// GetByID возвращает викторину с вопросами и вариантами ответов
	GetByID(ctx context.Context, id uint) (*entity.Quiz, error)

	// ListByCompany возвращает викторины компании (без вопросов)
	ListByCompany(ctx context.Context, companyID uint) ([]entity.Quiz, error)

	// GetCorrectAnswers возвращает отображение question_id -> id
	// правильного варианта для викторины.
	GetCorrectAnswers(ctx context.Context, quizID uint) (map[uint]uint, error)
}
