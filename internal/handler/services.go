package handler

import (
	"context"

	"github.com/SalmanuRidwan/Trivia-API/internal/domain/entity"
	"github.com/SalmanuRidwan/Trivia-API/internal/service"
)

// CategoryService - методы сервиса категорий, нужные обработчикам
type CategoryService interface {
	ListCategories(ctx context.Context) ([]entity.Category, error)
}

// QuestionService - методы сервиса вопросов, нужные обработчикам
type QuestionService interface {
	ListQuestions(ctx context.Context, page service.Page) (*service.QuestionPage, error)
	SearchQuestions(ctx context.Context, term string) ([]entity.Question, error)
	CreateQuestion(ctx context.Context, question *entity.Question) error
	DeleteQuestion(ctx context.Context, id uint) error
	ListByCategory(ctx context.Context, categoryID uint) (*service.CategoryQuestions, error)
	ExportQuestions(ctx context.Context) ([]service.ExportRow, error)
}

// QuizService - методы сервиса викторины, нужные обработчикам
type QuizService interface {
	NextQuestion(ctx context.Context, previous []uint, categoryID uint) (*entity.Question, error)
}
