package entity

import (
	"time"
)

// Role определяет роль сотрудника в компании.
// Закрытое перечисление вместо пары булевых флагов: состояние
// is_owner=true и is_admin=true одновременно непредставимо.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Valid проверяет, что роль входит в перечисление
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}

// Worker представляет активное членство пользователя в компании.
// Пара (user_id, company_id) уникальна.
type Worker struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_workers_user_company,priority:1" json:"user_id"`
	CompanyID uint      `gorm:"not null;uniqueIndex:idx_workers_user_company,priority:2;index" json:"company_id"`
	Role      Role      `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Worker) TableName() string {
	return "workers"
}

// IsOwner проверяет, является ли сотрудник владельцем компании
func (w *Worker) IsOwner() bool {
	return w.Role == RoleOwner
}

// CanManageQuizzes проверяет, может ли сотрудник создавать викторины
func (w *Worker) CanManageQuizzes() bool {
	return w.Role == RoleOwner || w.Role == RoleAdmin
}
