package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SalmanuRidwan/Trivia-API/internal/handler/dto"
	"github.com/SalmanuRidwan/Trivia-API/internal/handler/helper"
)

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	categoryService CategoryService
	questionService QuestionService
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(categoryService CategoryService, questionService QuestionService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		questionService: questionService,
	}
}

// GetCategories возвращает все категории в виде {id: type}.
// Параметр page допускается, но не используется.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.CategoriesResponse{
		Success:    true,
		Categories: helper.CategoryMap(categories),
	})
}

// GetCategoryQuestions возвращает все вопросы категории; пустая категория - 404
func (h *CategoryHandler) GetCategoryQuestions(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint) // Получаем из контекста

	result, err := h.questionService.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.NewCategoryQuestionsResponse(result))
}
