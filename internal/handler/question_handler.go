package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/SalmanuRidwan/Trivia-API/internal/handler/dto"
	"github.com/SalmanuRidwan/Trivia-API/internal/handler/helper"
	"github.com/SalmanuRidwan/Trivia-API/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService QuestionService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// GetQuestions возвращает страницу вопросов (по 10), общее количество и категории
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	number, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		helper.AbortWithError(c, http.StatusBadRequest)
		return
	}
	page, err := service.NewPage(number)
	if err != nil {
		helper.AbortWithError(c, http.StatusBadRequest)
		return
	}

	result, err := h.questionService.ListQuestions(c.Request.Context(), page)
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionPageResponse(result))
}

// DeleteQuestion удаляет вопрос по id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint) // Получаем из контекста

	if err := h.questionService.DeleteQuestion(c.Request.Context(), questionID); err != nil {
		respondError(c, err, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, dto.DeletedResponse{Success: true, Deleted: questionID})
}

// PostQuestions ищет вопросы (если передан searchTerm) или создает новый вопрос.
// Любая ошибка разбора тела, валидации или сохранения возвращается как 405.
func (h *QuestionHandler) PostQuestions(c *gin.Context) {
	var search dto.SearchQuestionsRequest
	if err := c.ShouldBindBodyWith(&search, binding.JSON); err != nil {
		log.Printf("[QuestionHandler] Некорректное тело запроса: %v", err)
		helper.AbortWithError(c, http.StatusMethodNotAllowed)
		return
	}

	if search.SearchTerm != nil {
		h.searchQuestions(c, *search.SearchTerm)
		return
	}
	h.createQuestion(c)
}

func (h *QuestionHandler) searchQuestions(c *gin.Context, term string) {
	questions, err := h.questionService.SearchQuestions(c.Request.Context(), term)
	if err != nil {
		respondError(c, err, http.StatusMethodNotAllowed)
		return
	}

	c.JSON(http.StatusOK, dto.NewSearchResponse(questions))
}

func (h *QuestionHandler) createQuestion(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		log.Printf("[QuestionHandler] Невалидный вопрос: %v", err)
		helper.AbortWithError(c, http.StatusMethodNotAllowed)
		return
	}

	question := req.ToEntity()
	if err := h.questionService.CreateQuestion(c.Request.Context(), question); err != nil {
		respondError(c, err, http.StatusMethodNotAllowed)
		return
	}

	c.JSON(http.StatusOK, dto.CreatedResponse{Success: true, Created: question.ID})
}
