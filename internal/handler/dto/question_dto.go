package dto

import (
	"github.com/SalmanuRidwan/Trivia-API/internal/domain/entity"
	"github.com/SalmanuRidwan/Trivia-API/internal/handler/helper"
	"github.com/SalmanuRidwan/Trivia-API/internal/service"
)

// QuestionResponse представляет вопрос в формате для ответа клиенту
type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// QuestionPageResponse - ответ GET /questions
type QuestionPageResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int64              `json:"total_questions"`
	Categories      map[string]string  `json:"categories"`
	CurrentCategory *string            `json:"current_category"`
}

// QuestionListResponse - ответ поиска и списка вопросов категории
type QuestionListResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory *string            `json:"current_category"`
}

// CategoriesResponse - ответ GET /categories
type CategoriesResponse struct {
	Success    bool              `json:"success"`
	Categories map[string]string `json:"categories"`
}

// CreatedResponse - ответ на создание вопроса
type CreatedResponse struct {
	Success bool `json:"success"`
	Created uint `json:"created"`
}

// DeletedResponse - ответ на удаление вопроса
type DeletedResponse struct {
	Success bool `json:"success"`
	Deleted uint `json:"deleted"`
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(q *entity.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// NewListQuestionResponse создает слайс DTO; пустой список сериализуется как [], а не null
func NewListQuestionResponse(questions []entity.Question) []QuestionResponse {
	list := make([]QuestionResponse, len(questions))
	for i := range questions {
		list[i] = NewQuestionResponse(&questions[i])
	}
	return list
}

// NewQuestionPageResponse создает ответ для страницы вопросов
func NewQuestionPageResponse(page *service.QuestionPage) QuestionPageResponse {
	return QuestionPageResponse{
		Success:        true,
		Questions:      NewListQuestionResponse(page.Questions),
		TotalQuestions: page.Total,
		Categories:     helper.CategoryMap(page.Categories),
	}
}

// NewSearchResponse создает ответ на поиск
func NewSearchResponse(questions []entity.Question) QuestionListResponse {
	return QuestionListResponse{
		Success:        true,
		Questions:      NewListQuestionResponse(questions),
		TotalQuestions: len(questions),
	}
}

// NewCategoryQuestionsResponse создает ответ со списком вопросов категории
func NewCategoryQuestionsResponse(result *service.CategoryQuestions) QuestionListResponse {
	resp := QuestionListResponse{
		Success:        true,
		Questions:      NewListQuestionResponse(result.Questions),
		TotalQuestions: len(result.Questions),
	}
	if result.Category != nil {
		categoryType := result.Category.Type
		resp.CurrentCategory = &categoryType
	}
	return resp
}
