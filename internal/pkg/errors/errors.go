package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены,
	// а также когда пустая выборка означает отсутствие адресуемой коллекции.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized используется для ошибок авторизации (нет токена, неверный токен).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden используется, когда у клиента недостаточно прав для действия.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation используется для ошибок валидации входных данных
	// (в том числе нарушений CHECK-ограничений на стороне БД).
	ErrValidation = errors.New("validation failed")

	// ErrConflict используется для конфликтов состояния записи.
	ErrConflict = errors.New("resource state conflict")
)
