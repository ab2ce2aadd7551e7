package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SalmanuRidwan/Trivia-API/internal/handler/helper"
	"github.com/SalmanuRidwan/Trivia-API/internal/middleware"
)

// RouterDeps - зависимости для построения маршрутов API
type RouterDeps struct {
	Categories *CategoryHandler
	Questions  *QuestionHandler
	Quizzes    *QuizHandler
	Health     *HealthHandler

	Auth *middleware.AuthMiddleware
	// RateLimiter может быть nil, если Redis отключен
	RateLimiter *middleware.RateLimiter
	RateLimit   middleware.RateLimitConfig

	// Middlewares применяются ко всем запросам (например, CORS)
	Middlewares []gin.HandlerFunc
}

// NewRouter создает роутер Gin со всеми маршрутами API
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("[Router] panic (request_id=%s): %v", c.GetString(middleware.RequestIDKey), recovered)
		helper.AbortWithError(c, http.StatusInternalServerError)
	}))
	router.Use(deps.Middlewares...)

	router.NoRoute(func(c *gin.Context) {
		helper.AbortWithError(c, http.StatusNotFound)
	})
	router.NoMethod(func(c *gin.Context) {
		helper.AbortWithError(c, http.StatusMethodNotAllowed)
	})

	limit := func() gin.HandlerFunc {
		if deps.RateLimiter == nil {
			return func(c *gin.Context) { c.Next() }
		}
		return deps.RateLimiter.Limit(deps.RateLimit)
	}
	requireAdmin := deps.Auth.RequireAdmin()

	router.GET("/health", deps.Health.Health)

	// Категории
	categories := router.Group("/categories")
	{
		categories.GET("", deps.Categories.GetCategories)
		categories.GET("/:id/questions",
			middleware.ExtractUintParam("id", "categoryID"),
			deps.Categories.GetCategoryQuestions)
	}

	// Вопросы
	questions := router.Group("/questions")
	{
		questions.GET("", deps.Questions.GetQuestions)
		questions.POST("", limit(), deps.Questions.PostQuestions)
		questions.GET("/export", requireAdmin, deps.Questions.ExportQuestions)
		questions.DELETE("/:id",
			requireAdmin,
			middleware.ExtractUintParam("id", "questionID"),
			deps.Questions.DeleteQuestion)
	}

	// Викторина
	router.POST("/quizzes", limit(), deps.Quizzes.PlayQuiz)

	return router
}
