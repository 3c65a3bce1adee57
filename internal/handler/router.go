package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/workforce-api/internal/service"
)

// NewRouter собирает маршруты приложения
func NewRouter(
	authService *service.AuthService,
	authHandler *AuthHandler,
	userHandler *UserHandler,
	companyHandler *CompanyHandler,
	workflowHandler *WorkflowHandler,
	quizHandler *QuizHandler,
) *gin.Engine {
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "Working"})
	})

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	api := router.Group("/", AuthMiddleware(authService))

	users := api.Group("/users")
	{
		users.GET("", userHandler.List)
		users.GET("/:id", userHandler.Get)
		users.PATCH("/me", userHandler.UpdateProfile)
		users.PATCH("/me/password", userHandler.UpdatePassword)
		users.DELETE("/:id", userHandler.Delete)
	}

	companies := api.Group("/companies")
	{
		companies.GET("", companyHandler.ListPublic)
		companies.GET("/my", companyHandler.ListMine)
		companies.POST("", companyHandler.Create)
		companies.GET("/:id", companyHandler.Get)
		companies.GET("/:id/workers", companyHandler.ListWorkers)
		companies.PATCH("/:id/status", companyHandler.ChangeStatus)
		companies.PATCH("/:id/info", companyHandler.UpdateInfo)
		companies.PATCH("/:id/workers/role", companyHandler.SetWorkerRole)
		companies.DELETE("/:id", companyHandler.Delete)
		companies.DELETE("/:id/workers/:user_id", companyHandler.RemoveWorker)
		companies.GET("/:id/quizzes", quizHandler.ListByCompany)
		companies.GET("/:id/result", quizHandler.GetGeneralResult)
	}

	workflow := api.Group("/workflow")
	{
		workflow.POST("/invites", workflowHandler.CreateInvite)
		workflow.POST("/requests", workflowHandler.ApplyToJoin)
		workflow.PATCH("/proposals/:id/accept", workflowHandler.Accept)
		workflow.PATCH("/proposals/:id/reject", workflowHandler.Reject)
		workflow.GET("/notifications/invites", workflowHandler.ListInvites)
		workflow.GET("/notifications/requests", workflowHandler.ListJoinRequests)
		workflow.POST("/test", quizHandler.PassQuiz)
	}

	quizzes := api.Group("/quizzes")
	{
		quizzes.POST("", quizHandler.Create)
		quizzes.GET("/:id", quizHandler.Get)
	}

	return router
}
