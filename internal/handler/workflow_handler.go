package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/workforce-api/internal/handler/helper"
	"github.com/yourusername/workforce-api/internal/service"
)

// WorkflowHandler обрабатывает приглашения и заявки на вступление
type WorkflowHandler struct {
	workflowService *service.WorkflowService
	companyService  *service.CompanyService
	userService     *service.UserService
}

// NewWorkflowHandler создает новый обработчик предложений о членстве
func NewWorkflowHandler(
	workflowService *service.WorkflowService,
	companyService *service.CompanyService,
	userService *service.UserService,
) *WorkflowHandler {
	return &WorkflowHandler{
		workflowService: workflowService,
		companyService:  companyService,
		userService:     userService,
	}
}

type createInviteRequest struct {
	CompanyID uint `json:"company_id" binding:"required"`
	UserID    uint `json:"user_id" binding:"required"`
}

// CreateInvite обрабатывает создание приглашения пользователя в компанию
func (h *WorkflowHandler) CreateInvite(c *gin.Context) {
	var req createInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invite, err := h.workflowService.CreateInvite(c.Request.Context(), req.CompanyID, currentUser(c).ID, req.UserID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invite)
}

type joinRequest struct {
	CompanyID uint `json:"company_id" binding:"required"`
}

// ApplyToJoin обрабатывает заявку текущего пользователя на вступление
func (h *WorkflowHandler) ApplyToJoin(c *gin.Context) {
	var req joinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.workflowService.CreateJoinRequest(c.Request.Context(), req.CompanyID, currentUser(c).ID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

// Accept обрабатывает принятие приглашения или заявки
func (h *WorkflowHandler) Accept(c *gin.Context) {
	requestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.workflowService.Accept(c.Request.Context(), requestID, currentUser(c).ID); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "proposal successfully accepted"})
}

// Reject обрабатывает отклонение приглашения или заявки
func (h *WorkflowHandler) Reject(c *gin.Context) {
	requestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.workflowService.Reject(c.Request.Context(), requestID, currentUser(c).ID); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "proposal successfully rejected"})
}

// ListInvites возвращает приглашения текущего пользователя с краткими
// сведениями о компаниях
func (h *WorkflowHandler) ListInvites(c *gin.Context) {
	ctx := c.Request.Context()

	invites, err := h.workflowService.ListInvitesForUser(ctx, currentUser(c).ID)
	if err != nil {
		handleError(c, err)
		return
	}

	notifications := make([]helper.InviteNotification, 0, len(invites))
	for _, invite := range invites {
		company, err := h.companyService.GetByID(ctx, invite.CompanyID)
		if err != nil {
			// Компания могла быть удалена после приглашения, уведомление
			// остается без названия.
			log.Printf("[WorkflowHandler] Компания %d для приглашения %d не найдена", invite.CompanyID, invite.ID)
			company = nil
		}
		notifications = append(notifications, helper.ConvertInviteNotification(invite, company))
	}
	c.JSON(http.StatusOK, notifications)
}

// ListJoinRequests возвращает pending-заявки на вступление в компании
// текущего пользователя-владельца
func (h *WorkflowHandler) ListJoinRequests(c *gin.Context) {
	ctx := c.Request.Context()

	requests, err := h.workflowService.ListJoinRequestsForOwner(ctx, currentUser(c).ID)
	if err != nil {
		handleError(c, err)
		return
	}

	notifications := make([]helper.RequestNotification, 0, len(requests))
	for _, request := range requests {
		user, err := h.userService.GetByID(ctx, request.UserID)
		if err != nil {
			user = nil
		}
		company, err := h.companyService.GetByID(ctx, request.CompanyID)
		if err != nil {
			company = nil
		}
		notifications = append(notifications, helper.ConvertRequestNotification(request, user, company))
	}
	c.JSON(http.StatusOK, notifications)
}
