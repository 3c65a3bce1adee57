package entity

import (
	"time"
)

// RequestDirection определяет, кто инициировал предложение о членстве:
// компания (приглашение) или пользователь (заявка на вступление).
type RequestDirection string

const (
	DirectionCompany RequestDirection = "company"
	DirectionUser    RequestDirection = "user"
)

// RequestStatus определяет состояние предложения о членстве
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusAccepted RequestStatus = "accepted"
	StatusRejected RequestStatus = "rejected"
)

// MembershipRequest представляет предложение о членстве в компании.
// Приглашение от компании и заявка от пользователя разделяют одну
// машину состояний pending -> accepted | rejected; после выхода из
// pending запись не изменяется.
type MembershipRequest struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    uint             `gorm:"not null;index" json:"user_id"`
	CompanyID uint             `gorm:"not null;index" json:"company_id"`
	Direction RequestDirection `gorm:"type:varchar(20);not null" json:"direction"`
	Status    RequestStatus    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (MembershipRequest) TableName() string {
	return "membership_requests"
}

// IsPending проверяет, ожидает ли предложение решения
func (r *MembershipRequest) IsPending() bool {
	return r.Status == StatusPending
}
