package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных
	// и нарушений ограничений NOT NULL / CHECK на стороне базы.
	ErrValidation = errors.New("validation failed")

	// ErrConflict используется для нарушений уникальности (например, повторный email пользователя).
	ErrConflict = errors.New("resource state conflict")
)
