package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/SalmanuRidwan/Trivia-API/internal/domain/entity"
	"github.com/SalmanuRidwan/Trivia-API/internal/domain/repository"
	apperrors "github.com/SalmanuRidwan/Trivia-API/internal/pkg/errors"
)

// QuestionPage - страница списка вопросов вместе с категориями
type QuestionPage struct {
	Questions  []entity.Question
	Total      int64
	Categories []entity.Category
}

// CategoryQuestions - вопросы одной категории.
// Category равен nil, если вопросы ссылаются на несуществующую категорию.
type CategoryQuestions struct {
	Questions []entity.Question
	Category  *entity.Category
}

// ExportRow - строка выгрузки вопросов
type ExportRow struct {
	Question     entity.Question
	CategoryType string
}

// QuestionService предоставляет методы для работы с вопросами.
//
// Пустая выборка адресуемой коллекции (страница N, вопросы категории K) считается
// отсутствием ресурса и возвращает ErrNotFound. Пустой результат запроса (поиск)
// является корректным успешным ответом.
type QuestionService struct {
	questionRepo    repository.QuestionRepository
	categoryService *CategoryService
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(questionRepo repository.QuestionRepository, categoryService *CategoryService) *QuestionService {
	return &QuestionService{
		questionRepo:    questionRepo,
		categoryService: categoryService,
	}
}

// ListQuestions возвращает страницу вопросов, общее количество и все категории
func (s *QuestionService) ListQuestions(ctx context.Context, page Page) (*QuestionPage, error) {
	questions, err := s.questionRepo.List(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("page %d is empty: %w", page.Number, apperrors.ErrNotFound)
	}

	total, err := s.questionRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}

	categories, err := s.categoryService.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Questions:  questions,
		Total:      total,
		Categories: categories,
	}, nil
}

// SearchQuestions ищет вопросы по подстроке без учёта регистра, без пагинации
func (s *QuestionService) SearchQuestions(ctx context.Context, term string) ([]entity.Question, error) {
	questions, err := s.questionRepo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	if questions == nil {
		questions = []entity.Question{}
	}
	return questions, nil
}

// CreateQuestion валидирует и сохраняет новый вопрос; ID заполняется после вставки
func (s *QuestionService) CreateQuestion(ctx context.Context, question *entity.Question) error {
	if err := question.Validate(); err != nil {
		return err
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

// DeleteQuestion удаляет вопрос; ErrNotFound, если его нет
func (s *QuestionService) DeleteQuestion(ctx context.Context, id uint) error {
	if err := s.questionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	return nil
}

// ListByCategory возвращает все вопросы категории
func (s *QuestionService) ListByCategory(ctx context.Context, categoryID uint) (*CategoryQuestions, error) {
	questions, err := s.questionRepo.GetByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions of category %d: %w", categoryID, err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("category %d has no questions: %w", categoryID, apperrors.ErrNotFound)
	}

	category, err := s.categoryService.GetCategory(ctx, categoryID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to get category %d: %w", categoryID, err)
	}

	return &CategoryQuestions{
		Questions: questions,
		Category:  category,
	}, nil
}

// ExportQuestions возвращает все вопросы с названиями категорий
func (s *QuestionService) ExportQuestions(ctx context.Context) ([]ExportRow, error) {
	questions, err := s.questionRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions for export: %w", err)
	}

	categories, err := s.categoryService.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	types := make(map[uint]string, len(categories))
	for _, c := range categories {
		types[c.ID] = c.Type
	}

	rows := make([]ExportRow, len(questions))
	for i, q := range questions {
		rows[i] = ExportRow{Question: q, CategoryType: types[q.Category]}
	}
	return rows, nil
}
