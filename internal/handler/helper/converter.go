package helper

import (
	"github.com/SalmanuRidwan/Trivia-API/internal/domain/entity"
)

// CategoryMap проецирует категории в отображение "id (строкой)" -> название.
// Порядок ключей в JSON не гарантируется.
func CategoryMap(categories []entity.Category) map[string]string {
	projected := make(map[string]string, len(categories))
	for i := range categories {
		projected[categories[i].Key()] = categories[i].Type
	}
	return projected
}
