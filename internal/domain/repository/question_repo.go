package repository

import (
	"context"

	"github.com/SalmanuRidwan/Trivia-API/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами.
// Все выборки упорядочены по id.
type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) error
	// Delete возвращает apperrors.ErrNotFound, если вопрос с таким id отсутствует
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, limit, offset int) ([]entity.Question, error)
	ListAll(ctx context.Context) ([]entity.Question, error)
	Count(ctx context.Context) (int64, error)
	// Search ищет вопросы, текст которых содержит term без учёта регистра
	Search(ctx context.Context, term string) ([]entity.Question, error)
	GetByCategory(ctx context.Context, categoryID uint) ([]entity.Question, error)
	// ListCandidates возвращает вопросы категории (0 - любой), кроме excludeIDs
	ListCandidates(ctx context.Context, categoryID uint, excludeIDs []uint) ([]entity.Question, error)
}
