package service

import (
	"context"
	"log"

	"github.com/yourusername/workforce-api/internal/domain/entity"
	"github.com/yourusername/workforce-api/internal/domain/repository"
	apperrors "github.com/yourusername/workforce-api/internal/pkg/errors"
)

// SubmittedAnswer описывает один ответ пользователя на вопрос викторины
type SubmittedAnswer struct {
	QuestionID uint
	AnswerID   uint
}

// AttemptResult содержит итог одной попытки и накопительный GPA
type AttemptResult struct {
	QuizID            uint    `json:"quiz_id"`
	NumberOfQuestions int     `json:"number_of_questions"`
	CorrectAnswers    int     `json:"correct_answers"`
	GPA               float64 `json:"gpa"`
}

// ResultService подсчитывает очки за попытки прохождения викторин и
// ведет накопительный результат по паре пользователь/компания.
type ResultService struct {
	resultRepo    repository.ResultRepository
	quizRepo      repository.QuizRepository
	answerHistory repository.AnswerHistoryRepository
}

// NewResultService создает новый сервис результатов
func NewResultService(
	resultRepo repository.ResultRepository,
	quizRepo repository.QuizRepository,
	answerHistory repository.AnswerHistoryRepository,
) *ResultService {
	return &ResultService{
		resultRepo:    resultRepo,
		quizRepo:      quizRepo,
		answerHistory: answerHistory,
	}
}

// scoreAttempt подсчитывает число правильных ответов. Каждый вопрос
// засчитывается не более одного раза: совпавшая запись удаляется из
// набора правильных ответов. Лишние ответы и ответы на чужие вопросы
// не засчитываются. Результат не зависит от порядка ответов.
func scoreAttempt(answers []SubmittedAnswer, correct map[uint]uint) int {
	remaining := make(map[uint]uint, len(correct))
	for questionID, answerID := range correct {
		remaining[questionID] = answerID
	}

	score := 0
	for _, answer := range answers {
		if correctID, ok := remaining[answer.QuestionID]; ok && correctID == answer.AnswerID {
			score++
			delete(remaining, answer.QuestionID)
		}
	}
	return score
}

// RecordAttempt подсчитывает очки за попытку и фиксирует ее: журнал
// ответов пишется в эфемерное хранилище, QuizResult и пересчитанный GPA
// сохраняются одной транзакцией. Журнал пишется до транзакции: его сбой
// не оставляет частичных записей в базе.
func (s *ResultService) RecordAttempt(ctx context.Context, userID, companyID, quizID uint, answers []SubmittedAnswer) (*AttemptResult, error) {
	quiz, err := s.quizRepo.GetByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if quiz.CompanyID != companyID {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidOperation, "quiz %d does not belong to company %d", quizID, companyID)
	}

	correct, err := s.quizRepo.GetCorrectAnswers(ctx, quizID)
	if err != nil {
		return nil, err
	}
	score := scoreAttempt(answers, correct)

	for _, answer := range answers {
		if err := s.answerHistory.Set(ctx, userID, answer.QuestionID, answer.AnswerID); err != nil {
			return nil, err
		}
	}

	general, err := s.resultRepo.RecordAttempt(ctx, userID, companyID, quizID, score)
	if err != nil {
		return nil, err
	}

	log.Printf("[ResultService] Пользователь %d прошел викторину %d: %d/%d, GPA=%.4f",
		userID, quizID, score, quiz.NumberOfQuestions, general.GPA)

	return &AttemptResult{
		QuizID:            quizID,
		NumberOfQuestions: quiz.NumberOfQuestions,
		CorrectAnswers:    score,
		GPA:               general.GPA,
	}, nil
}

// GetGeneralResult возвращает накопительный результат пользователя в компании
func (s *ResultService) GetGeneralResult(ctx context.Context, userID, companyID uint) (*entity.GeneralResult, error) {
	return s.resultRepo.GetByUserAndCompany(ctx, userID, companyID)
}
