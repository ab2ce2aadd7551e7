package dto

import (
	"github.com/SalmanuRidwan/Trivia-API/internal/domain/entity"
)

// QuizCategory - категория викторины; id 0 означает любую категорию
type QuizCategory struct {
	ID   FlexibleID `json:"id"`
	Type string     `json:"type"`
}

// QuizRequest - тело POST /quizzes
type QuizRequest struct {
	PreviousQuestions []uint        `json:"previous_questions" binding:"max=10000"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// CategoryID возвращает id категории или 0, если категория не задана
func (r *QuizRequest) CategoryID() uint {
	if r.QuizCategory == nil {
		return 0
	}
	return uint(r.QuizCategory.ID)
}

// QuizResponse - ответ POST /quizzes; Question равен nil, если вопросы закончились
type QuizResponse struct {
	Success           bool              `json:"success"`
	Question          *QuestionResponse `json:"question"`
	PreviousQuestions []uint            `json:"previous_questions"`
}

// NewQuizResponse создает ответ викторины
func NewQuizResponse(question *entity.Question, previous []uint) QuizResponse {
	if previous == nil {
		previous = []uint{}
	}
	resp := QuizResponse{
		Success:           true,
		PreviousQuestions: previous,
	}
	if question != nil {
		q := NewQuestionResponse(question)
		resp.Question = &q
	}
	return resp
}
