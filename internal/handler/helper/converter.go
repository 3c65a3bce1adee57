package helper

import (
	"github.com/yourusername/workforce-api/internal/domain/entity"
)

// InviteNotification представляет приглашение в списке уведомлений пользователя
type InviteNotification struct {
	ID      uint                 `json:"id"`
	Status  entity.RequestStatus `json:"status"`
	Company CompanyRef           `json:"company"`
}

// RequestNotification представляет заявку на вступление в списке
// уведомлений владельца компании
type RequestNotification struct {
	ID        uint                 `json:"id"`
	Status    entity.RequestStatus `json:"status"`
	FromUser  UserRef              `json:"from_user"`
	ToCompany CompanyRef           `json:"to_company"`
}

// CompanyRef — краткая ссылка на компанию в уведомлении
type CompanyRef struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// UserRef — краткая ссылка на пользователя в уведомлении
type UserRef struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// ConvertInviteNotification собирает уведомление о приглашении
func ConvertInviteNotification(invite entity.MembershipRequest, company *entity.Company) InviteNotification {
	notification := InviteNotification{
		ID:     invite.ID,
		Status: invite.Status,
	}
	if company != nil {
		notification.Company = CompanyRef{ID: company.ID, Title: company.Title}
	} else {
		notification.Company = CompanyRef{ID: invite.CompanyID}
	}
	return notification
}

// ConvertRequestNotification собирает уведомление о заявке на вступление
func ConvertRequestNotification(request entity.MembershipRequest, user *entity.User, company *entity.Company) RequestNotification {
	notification := RequestNotification{
		ID:     request.ID,
		Status: request.Status,
	}
	if user != nil {
		notification.FromUser = UserRef{ID: user.ID, Email: user.Email}
	} else {
		notification.FromUser = UserRef{ID: request.UserID}
	}
	if company != nil {
		notification.ToCompany = CompanyRef{ID: company.ID, Title: company.Title}
	} else {
		notification.ToCompany = CompanyRef{ID: request.CompanyID}
	}
	return notification
}
