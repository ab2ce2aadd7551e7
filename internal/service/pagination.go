package service

import (
	"fmt"

	apperrors "github.com/SalmanuRidwan/Trivia-API/internal/pkg/errors"
)

// QuestionsPerPage - фиксированный размер страницы списка вопросов
const QuestionsPerPage = 10

// Page описывает запрошенную страницу (нумерация с 1)
type Page struct {
	Number int
	Size   int
}

// NewPage создает страницу фиксированного размера.
// Номер страницы меньше 1 отклоняется, а не нормализуется.
func NewPage(number int) (Page, error) {
	if number < 1 {
		return Page{}, fmt.Errorf("%w: page must be >= 1, got %d", apperrors.ErrValidation, number)
	}
	return Page{Number: number, Size: QuestionsPerPage}, nil
}

// Offset возвращает смещение первого элемента страницы
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Limit возвращает максимальное количество элементов на странице
func (p Page) Limit() int {
	return p.Size
}
