package repository

import (
	"context"

	"github.com/SalmanuRidwan/Trivia-API/internal/domain/entity"
)

// CategoryRepository определяет методы чтения категорий
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
	GetByID(ctx context.Context, id uint) (*entity.Category, error)
}
