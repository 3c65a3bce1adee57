package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yourusername/workforce-api/internal/domain/entity"
	apperrors "github.com/yourusername/workforce-api/internal/pkg/errors"
)

// ResultRepo реализует repository.ResultRepository
type ResultRepo struct {
	db *gorm.DB
}

// NewResultRepo создает новый репозиторий результатов
func NewResultRepo(db *gorm.DB) *ResultRepo {
	return &ResultRepo{db: db}
}

// GetByUserAndCompany возвращает накопительный результат пользователя в компании
func (r *ResultRepo) GetByUserAndCompany(ctx context.Context, userID, companyID uint) (*entity.GeneralResult, error) {
	var result entity.GeneralResult
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND company_id = ?", userID, companyID).
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrapf(apperrors.ErrNotFound, "general result for user %d in company %d", userID, companyID)
		}
		return nil, apperrors.Internal(err)
	}
	return &result, nil
}

// RecordAttempt фиксирует попытку прохождения викторины в одной транзакции.
// GeneralResult получается условной вставкой по уникальному индексу
// (user_id, company_id): две одновременные первые попытки не создадут
// двух записей. GPA пересчитывается по всей истории попыток одним
// SUM-запросом с JOIN на quizzes.
func (r *ResultRepo) RecordAttempt(ctx context.Context, userID, companyID, quizID uint, correctAnswers int) (*entity.GeneralResult, error) {
	var general entity.GeneralResult

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		insert := entity.GeneralResult{UserID: userID, CompanyID: companyID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&insert).Error; err != nil {
			return err
		}

		// Независимо от того, кто выиграл вставку, перечитываем строку
		// под транзакцией.
		err := tx.Where("user_id = ? AND company_id = ?", userID, companyID).
			First(&general).Error
		if err != nil {
			return err
		}

		quizResult := entity.QuizResult{
			GeneralResultID: general.ID,
			QuizID:          quizID,
			CorrectAnswers:  correctAnswers,
		}
		if err := tx.Create(&quizResult).Error; err != nil {
			return err
		}

		var sums struct {
			SumCorrect   int64
			SumQuestions int64
		}
		err = tx.Model(&entity.QuizResult{}).
			Select("COALESCE(SUM(quiz_results.correct_answers), 0) AS sum_correct, COALESCE(SUM(quizzes.number_of_questions), 0) AS sum_questions").
			Joins("JOIN quizzes ON quizzes.id = quiz_results.quiz_id").
			Where("quiz_results.general_result_id = ?", general.ID).
			Scan(&sums).Error
		if err != nil {
			return err
		}
		if sums.SumQuestions == 0 {
			// Викторины с нулем вопросов отклоняются при создании,
			// сюда попасть нельзя.
			return errors.New("gpa recompute: zero questions in history")
		}

		general.GPA = float64(sums.SumCorrect) / float64(sums.SumQuestions)
		return tx.Model(&entity.GeneralResult{}).
			Where("id = ?", general.ID).
			Update("gpa", general.GPA).Error
	})
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &general, nil
}
