package entity

import "strconv"

// Category представляет категорию вопросов (только чтение со стороны API)
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"type:text;not null" json:"type"`
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}

// Key возвращает идентификатор категории в виде строкового ключа JSON-объекта
func (c *Category) Key() string {
	return strconv.FormatUint(uint64(c.ID), 10)
}
