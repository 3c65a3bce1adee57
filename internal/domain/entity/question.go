package entity

import (
	"time"
)

// Question представляет вопрос викторины
type Question struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	QuizID    uint      `gorm:"not null;index" json:"quiz_id"`
	Text      string    `gorm:"size:500;not null" json:"text"`
	Answers   []Answer  `gorm:"foreignKey:QuestionID" json:"answers,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// Answer представляет вариант ответа на вопрос
type Answer struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	QuestionID uint   `gorm:"not null;index" json:"question_id"`
	Text       string `gorm:"size:500;not null" json:"text"`
	IsCorrect  bool   `gorm:"not null;default:false" json:"-"` // Скрыто от клиента
}

// TableName определяет имя таблицы для GORM
func (Answer) TableName() string {
	return "answers"
}
