package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/workforce-api/internal/domain/entity"
	"github.com/yourusername/workforce-api/internal/handler/helper"
	"github.com/yourusername/workforce-api/internal/service"
)

// CompanyHandler обрабатывает запросы, связанные с компаниями
type CompanyHandler struct {
	companyService *service.CompanyService
}

// NewCompanyHandler создает новый обработчик компаний
func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

type createCompanyRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// Create обрабатывает создание компании
func (h *CompanyHandler) Create(c *gin.Context) {
	var req createCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.companyService.Create(c.Request.Context(), currentUser(c).ID, service.CreateCompanyInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

// ListPublic обрабатывает запрос на страницу видимых компаний
func (h *CompanyHandler) ListPublic(c *gin.Context) {
	page := helper.ParsePagination(c)

	companies, err := h.companyService.ListPublic(c.Request.Context(), page.Offset(), page.PageSize)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":      page.Page,
		"page_size": page.PageSize,
		"companies": companies,
	})
}

// ListMine обрабатывает запрос на компании текущего пользователя
func (h *CompanyHandler) ListMine(c *gin.Context) {
	companies, err := h.companyService.ListMine(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// Get обрабатывает запрос на компанию по ID
func (h *CompanyHandler) Get(c *gin.Context) {
	companyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	company, err := h.companyService.GetByID(c.Request.Context(), companyID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// ListWorkers обрабатывает запрос на сотрудников компании
func (h *CompanyHandler) ListWorkers(c *gin.Context) {
	companyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	workers, err := h.companyService.ListWorkers(c.Request.Context(), companyID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, workers)
}

type changeStatusRequest struct {
	Hidden *bool `json:"hidden" binding:"required"`
}

// ChangeStatus обрабатывает смену видимости компании
func (h *CompanyHandler) ChangeStatus(c *gin.Context) {
	companyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.companyService.SetVisibility(c.Request.Context(), companyID, currentUser(c).ID, *req.Hidden)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

type updateCompanyRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// UpdateInfo обрабатывает частичное обновление данных компании
func (h *CompanyHandler) UpdateInfo(c *gin.Context) {
	companyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.companyService.UpdateInfo(c.Request.Context(), companyID, currentUser(c).ID, service.UpdateCompanyInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

type setRoleRequest struct {
	UserID uint        `json:"user_id" binding:"required"`
	Role   entity.Role `json:"role" binding:"required"`
}

// SetWorkerRole обрабатывает смену роли сотрудника
func (h *CompanyHandler) SetWorkerRole(c *gin.Context) {
	companyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req setRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	worker, err := h.companyService.SetWorkerRole(c.Request.Context(), companyID, currentUser(c).ID, req.UserID, req.Role)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, worker)
}

// Delete обрабатывает удаление компании
func (h *CompanyHandler) Delete(c *gin.Context) {
	companyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.companyService.Delete(c.Request.Context(), companyID, currentUser(c).ID); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success delete company"})
}

// RemoveWorker обрабатывает исключение сотрудника из компании
func (h *CompanyHandler) RemoveWorker(c *gin.Context) {
	companyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	err := h.companyService.RemoveWorker(c.Request.Context(), companyID, currentUser(c).ID, userID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success delete worker"})
}
