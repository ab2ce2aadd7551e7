package postgres

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/SalmanuRidwan/Trivia-API/internal/domain/entity"
	apperrors "github.com/SalmanuRidwan/Trivia-API/internal/pkg/errors"
)

// likeEscaper экранирует спецсимволы LIKE, чтобы поисковая строка совпадала буквально
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос, id назначает БД
func (r *QuestionRepo) Create(ctx context.Context, question *entity.Question) error {
	if err := r.db.WithContext(ctx).Create(question).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Delete удаляет вопрос одним запросом.
// Ноль затронутых строк означает, что вопроса нет (или его уже удалил параллельный запрос).
func (r *QuestionRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Question{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("question %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// List возвращает страницу вопросов
func (r *QuestionRepo) List(ctx context.Context, limit, offset int) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.WithContext(ctx).Order("id").Limit(limit).Offset(offset).Find(&questions).Error
	if err != nil {
		return nil, translateError(err)
	}
	return questions, nil
}

// ListAll возвращает все вопросы (используется для экспорта)
func (r *QuestionRepo) ListAll(ctx context.Context) ([]entity.Question, error) {
	var questions []entity.Question
	if err := r.db.WithContext(ctx).Order("id").Find(&questions).Error; err != nil {
		return nil, translateError(err)
	}
	return questions, nil
}

// Count возвращает общее количество вопросов
func (r *QuestionRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Question{}).Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

// Search выполняет регистронезависимый поиск подстроки в тексте вопроса
func (r *QuestionRepo) Search(ctx context.Context, term string) ([]entity.Question, error) {
	var questions []entity.Question
	pattern := "%" + likeEscaper.Replace(term) + "%"
	err := r.db.WithContext(ctx).
		Where("question ILIKE ?", pattern).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, translateError(err)
	}
	return questions, nil
}

// GetByCategory возвращает все вопросы категории
func (r *QuestionRepo) GetByCategory(ctx context.Context, categoryID uint) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.WithContext(ctx).Where("category = ?", categoryID).Order("id").Find(&questions).Error
	if err != nil {
		return nil, translateError(err)
	}
	return questions, nil
}

// ListCandidates возвращает кандидатов для следующего вопроса викторины
func (r *QuestionRepo) ListCandidates(ctx context.Context, categoryID uint, excludeIDs []uint) ([]entity.Question, error) {
	var questions []entity.Question
	query := r.db.WithContext(ctx)

	if categoryID != 0 {
		query = query.Where("category = ?", categoryID)
	}
	// Исключаем уже показанные вопросы
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	if err := query.Order("id").Find(&questions).Error; err != nil {
		return nil, translateError(err)
	}
	return questions, nil
}
