package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/SalmanuRidwan/Trivia-API/internal/domain/entity"
	"github.com/SalmanuRidwan/Trivia-API/internal/domain/repository"
	apperrors "github.com/SalmanuRidwan/Trivia-API/internal/pkg/errors"
)

const categoriesCacheKey = "categories:all"

// CategoryService предоставляет методы для работы с категориями
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	cacheRepo    repository.CacheRepository // nil, если Redis отключен
	cacheTTL     time.Duration
}

// NewCategoryService создает новый сервис категорий
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
		cacheTTL:     cacheTTL,
	}
}

// ListCategories возвращает все категории, упорядоченные по id.
// Категории только читаются, поэтому кеш не инвалидируется, а просто истекает по TTL.
// Ошибки Redis не прерывают запрос: данные берутся из БД.
func (s *CategoryService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	if s.cacheRepo != nil {
		var cached []entity.Category
		err := s.cacheRepo.GetJSON(ctx, categoriesCacheKey, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			log.Printf("[CategoryService] Ошибка чтения кеша категорий: %v", err)
		}
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	if s.cacheRepo != nil && s.cacheTTL > 0 {
		if err := s.cacheRepo.SetJSON(ctx, categoriesCacheKey, categories, s.cacheTTL); err != nil {
			log.Printf("[CategoryService] Ошибка записи кеша категорий: %v", err)
		}
	}

	return categories, nil
}

// GetCategory возвращает категорию по ID
func (s *CategoryService) GetCategory(ctx context.Context, id uint) (*entity.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}
