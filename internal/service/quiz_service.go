package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/SalmanuRidwan/Trivia-API/internal/domain/entity"
	"github.com/SalmanuRidwan/Trivia-API/internal/domain/repository"
)

// QuizService выбирает случайный вопрос для викторины
type QuizService struct {
	questionRepo repository.QuestionRepository
	// intN возвращает равномерное случайное число из [0, n)
	intN func(n int) int
}

// NewQuizService создает новый сервис викторины
func NewQuizService(questionRepo repository.QuestionRepository) *QuizService {
	return &QuizService{
		questionRepo: questionRepo,
		intN:         rand.IntN,
	}
}

// NextQuestion возвращает случайный вопрос категории categoryID (0 - любая),
// которого нет среди previous. Если кандидатов не осталось, возвращает nil без ошибки.
func (s *QuizService) NextQuestion(ctx context.Context, previous []uint, categoryID uint) (*entity.Question, error) {
	questions, err := s.questionRepo.ListCandidates(ctx, categoryID, previous)
	if err != nil {
		return nil, fmt.Errorf("failed to list quiz candidates: %w", err)
	}

	candidates := filterCandidates(questions, previous, categoryID)
	if len(candidates) == 0 {
		return nil, nil
	}

	picked := candidates[s.intN(len(candidates))]
	return &picked, nil
}

// filterCandidates оставляет вопросы нужной категории, не встречавшиеся в previous
func filterCandidates(questions []entity.Question, previous []uint, categoryID uint) []entity.Question {
	seen := make(map[uint]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	candidates := make([]entity.Question, 0, len(questions))
	for _, q := range questions {
		if _, ok := seen[q.ID]; ok {
			continue
		}
		if !q.InCategory(categoryID) {
			continue
		}
		candidates = append(candidates, q)
	}
	return candidates
}
