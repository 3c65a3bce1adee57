package repository

import (
	"context"

	"github.com/yourusername/workforce-api/internal/domain/entity"
)

// ResultRepository интерфейс для работы с результатами прохождения викторин
type ResultRepository interface {
	// GetByUserAndCompany возвращает накопительный результат пользователя
	// в компании, либо ErrNotFound.
	GetByUserAndCompany(ctx context.Context, userID, companyID uint) (*entity.GeneralResult, error)

	// RecordAttempt фиксирует попытку в одной транзакции: получает или
	// создает GeneralResult условной вставкой по уникальному индексу
	// (user_id, company_id), добавляет QuizResult и пересчитывает GPA
	// по всей истории попыток. Возвращает обновленный GeneralResult.
	RecordAttempt(ctx context.Context, userID, companyID, quizID uint, correctAnswers int) (*entity.GeneralResult, error)
}

// AnswerHistoryRepository интерфейс эфемерного журнала ответов.
// Последняя запись по ключу побеждает; для подсчета очков журнал
// не используется.
type AnswerHistoryRepository interface {
	// Set записывает выбранный вариант ответа пользователя на вопрос
	Set(ctx context.Context, userID, questionID, answerID uint) error

	// Get возвращает последний записанный вариант ответа
	Get(ctx context.Context, userID, questionID uint) (uint, error)
}
