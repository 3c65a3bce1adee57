package entity

import (
	"time"
)

// GeneralResult представляет накопительный результат пользователя
// в рамках одной компании. Пара (user_id, company_id) уникальна;
// GPA пересчитывается по всей истории попыток.
type GeneralResult struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	UserID      uint         `gorm:"not null;uniqueIndex:idx_general_results_user_company,priority:1" json:"user_id"`
	CompanyID   uint         `gorm:"not null;uniqueIndex:idx_general_results_user_company,priority:2" json:"company_id"`
	GPA         float64      `gorm:"not null;default:0" json:"gpa"`
	QuizResults []QuizResult `gorm:"foreignKey:GeneralResultID" json:"quiz_results,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (GeneralResult) TableName() string {
	return "general_results"
}

// QuizResult представляет результат одной попытки прохождения викторины
type QuizResult struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	GeneralResultID uint      `gorm:"not null;index" json:"general_result_id"`
	QuizID          uint      `gorm:"not null;index" json:"quiz_id"`
	CorrectAnswers  int       `gorm:"not null" json:"correct_answers"`
	CreatedAt       time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (QuizResult) TableName() string {
	return "quiz_results"
}
