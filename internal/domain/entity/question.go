package entity

import (
	"fmt"
	"strings"
	"unicode/utf8"

	apperrors "github.com/SalmanuRidwan/Trivia-API/internal/pkg/errors"
)

const (
	// MinDifficulty и MaxDifficulty задают допустимый диапазон сложности вопроса
	MinDifficulty = 1
	MaxDifficulty = 5

	// MaxTextLength ограничивает длину текста вопроса и ответа
	MaxTextLength = 1000
)

// Question представляет вопрос викторины
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	Category   uint   `gorm:"not null;index" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// Validate проверяет поля вопроса перед вставкой.
// Существование категории не проверяется: висячая ссылка допустима.
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("%w: question text is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(q.Answer) == "" {
		return fmt.Errorf("%w: answer is required", apperrors.ErrValidation)
	}
	// Длина считается в символах, как и в binding:"max" запроса
	if utf8.RuneCountInString(q.Question) > MaxTextLength || utf8.RuneCountInString(q.Answer) > MaxTextLength {
		return fmt.Errorf("%w: text is longer than %d characters", apperrors.ErrValidation, MaxTextLength)
	}
	if q.Category == 0 {
		return fmt.Errorf("%w: category is required", apperrors.ErrValidation)
	}
	if q.Difficulty < MinDifficulty || q.Difficulty > MaxDifficulty {
		return fmt.Errorf("%w: difficulty must be between %d and %d", apperrors.ErrValidation, MinDifficulty, MaxDifficulty)
	}
	return nil
}

// InCategory сообщает, относится ли вопрос к категории.
// Нулевой categoryID означает "любая категория".
func (q *Question) InCategory(categoryID uint) bool {
	return categoryID == 0 || q.Category == categoryID
}
