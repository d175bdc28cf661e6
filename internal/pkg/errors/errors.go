package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrConfiguration используется, когда таблица уровней (или другая статическая
	// конфигурация) пуста или нарушает инварианты сортировки/монотонности.
	// Проверяется один раз при старте приложения, а не на каждом вызове.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrConflict используется для конфликтов состояния
	// (например, повторная выдача уже полученного бейджа).
	ErrConflict = errors.New("resource state conflict")
)
