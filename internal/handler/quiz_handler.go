package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SalmanuRidwan/Trivia-API/internal/handler/dto"
	"github.com/SalmanuRidwan/Trivia-API/internal/handler/helper"
)

// QuizHandler обрабатывает запросы викторины
type QuizHandler struct {
	quizService QuizService
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(quizService QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// PlayQuiz возвращает случайный вопрос, которого нет среди previous_questions.
// Если вопросы закончились, возвращается question: null с success: true.
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req dto.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[QuizHandler] Некорректное тело запроса: %v", err)
		helper.AbortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	question, err := h.quizService.NextQuestion(c.Request.Context(), req.PreviousQuestions, req.CategoryID())
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuizResponse(question, req.PreviousQuestions))
}
