package entity

import (
	"time"
)

// Quiz представляет викторину компании
type Quiz struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	CompanyID         uint       `gorm:"not null;index" json:"company_id"`
	Title             string     `gorm:"size:100;not null" json:"title"`
	Description       string     `gorm:"size:500" json:"description"`
	PassingFrequency  int        `gorm:"not null" json:"passing_frequency"`
	NumberOfQuestions int        `gorm:"not null" json:"number_of_questions"`
	Questions         []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Quiz) TableName() string {
	return "quizzes"
}
