package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/workforce-api/internal/service"
)

// QuizHandler обрабатывает запросы, связанные с викторинами и
// результатами их прохождения
type QuizHandler struct {
	quizService   *service.QuizService
	resultService *service.ResultService
}

// NewQuizHandler создает новый обработчик викторин
func NewQuizHandler(quizService *service.QuizService, resultService *service.ResultService) *QuizHandler {
	return &QuizHandler{
		quizService:   quizService,
		resultService: resultService,
	}
}

type answerDefinition struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"is_correct"`
}

type questionDefinition struct {
	Text    string             `json:"text" binding:"required"`
	Answers []answerDefinition `json:"answers" binding:"required"`
}

type createQuizRequest struct {
	CompanyID         uint                 `json:"company_id" binding:"required"`
	Title             string               `json:"title" binding:"required"`
	Description       string               `json:"description"`
	PassingFrequency  int                  `json:"passing_frequency" binding:"required,gt=0"`
	NumberOfQuestions int                  `json:"number_of_questions" binding:"required,gt=0"`
	Questions         []questionDefinition `json:"questions" binding:"required"`
}

// Create обрабатывает создание викторины
func (h *QuizHandler) Create(c *gin.Context) {
	var req createQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := service.CreateQuizInput{
		Title:             req.Title,
		Description:       req.Description,
		PassingFrequency:  req.PassingFrequency,
		NumberOfQuestions: req.NumberOfQuestions,
	}
	for _, question := range req.Questions {
		questionInput := service.QuestionInput{Text: question.Text}
		for _, answer := range question.Answers {
			questionInput.Answers = append(questionInput.Answers, service.AnswerInput{
				Text:      answer.Text,
				IsCorrect: answer.IsCorrect,
			})
		}
		input.Questions = append(input.Questions, questionInput)
	}

	quiz, err := h.quizService.Create(c.Request.Context(), req.CompanyID, currentUser(c).ID, input)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, quiz)
}

// Get обрабатывает запрос на викторину по ID
func (h *QuizHandler) Get(c *gin.Context) {
	quizID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	quiz, err := h.quizService.GetByID(c.Request.Context(), quizID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// ListByCompany обрабатывает запрос на викторины компании
func (h *QuizHandler) ListByCompany(c *gin.Context) {
	companyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	quizzes, err := h.quizService.ListByCompany(c.Request.Context(), companyID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

type submittedAnswer struct {
	QuestionID uint `json:"question_id" binding:"required"`
	AnswerID   uint `json:"answer_id" binding:"required"`
}

type passQuizRequest struct {
	CompanyID uint              `json:"company_id" binding:"required"`
	QuizID    uint              `json:"quiz_id" binding:"required"`
	Answers   []submittedAnswer `json:"answers" binding:"required"`
}

// PassQuiz обрабатывает отправку ответов на викторину
func (h *QuizHandler) PassQuiz(c *gin.Context) {
	var req passQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answers := make([]service.SubmittedAnswer, 0, len(req.Answers))
	for _, answer := range req.Answers {
		answers = append(answers, service.SubmittedAnswer{
			QuestionID: answer.QuestionID,
			AnswerID:   answer.AnswerID,
		})
	}

	result, err := h.resultService.RecordAttempt(c.Request.Context(), currentUser(c).ID, req.CompanyID, req.QuizID, answers)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GetGeneralResult возвращает накопительный результат текущего
// пользователя в компании
func (h *QuizHandler) GetGeneralResult(c *gin.Context) {
	companyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.resultService.GetGeneralResult(c.Request.Context(), currentUser(c).ID, companyID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
