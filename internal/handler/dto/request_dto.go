package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/SalmanuRidwan/Trivia-API/internal/domain/entity"
)

// FlexibleID - идентификатор, который принимается как JSON-число или как строка с числом.
// Фронтенд передаёт значения select'ов строками ("1"), а "все категории" числом 0.
type FlexibleID uint

// UnmarshalJSON реализует json.Unmarshaler
func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}

	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid id %s: must be a non-negative integer", data)
	}
	*id = FlexibleID(v)
	return nil
}

// SearchQuestionsRequest - тело POST /questions в режиме поиска.
// Наличие ключа searchTerm (даже пустого) означает поиск.
type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

// CreateQuestionRequest - тело POST /questions в режиме создания
type CreateQuestionRequest struct {
	Question   string     `json:"question" binding:"required,max=1000"`
	Answer     string     `json:"answer" binding:"required,max=1000"`
	Category   FlexibleID `json:"category" binding:"required,min=1"`
	Difficulty int        `json:"difficulty" binding:"required,min=1,max=5"`
}

// ToEntity преобразует запрос в сущность вопроса
func (r *CreateQuestionRequest) ToEntity() *entity.Question {
	return &entity.Question{
		Question:   strings.TrimSpace(r.Question),
		Answer:     strings.TrimSpace(r.Answer),
		Category:   uint(r.Category),
		Difficulty: r.Difficulty,
	}
}
