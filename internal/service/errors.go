package service

import "fmt"

// здесь коды ошибок бизнес-логики: хранилище в памяти,
// все ошибки локальные и окончательные, ретраев нет

const CodeNotFound = "NOT_FOUND"
const CodeWrongType = "WRONG_TYPE"
const CodeInvalidType = "INVALID_TYPE"
const CodeValidation = "VALIDATION_ERROR"

type BusinessError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

func (b *BusinessError) Error() string {
	if b.Err != nil {
		return fmt.Sprintf("[%s] %s: %s", b.Code, b.Message, b.Err.Error())
	}
	return fmt.Sprintf("[%s] %s", b.Code, b.Message)
}

func (b *BusinessError) Unwrap() error {
	return b.Err
}

func NewNotFound(resource, id string) *BusinessError {
	return &BusinessError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %s не найден(а)", resource, id),
		Details: map[string]any{
			"resource": resource,
			"id":       id,
		},
	}
}

// NewWrongType - операция не поддерживается видом задачи
func NewWrongType(id string, expected, actual string) *BusinessError {
	return &BusinessError{
		Code:    CodeWrongType,
		Message: fmt.Sprintf("задача %s имеет тип %s, операция требует %s", id, actual, expected),
		Details: map[string]any{
			"id":       id,
			"expected": expected,
			"actual":   actual,
		},
	}
}

// NewInvalidType - создание задачи с неизвестным видом
func NewInvalidType(received string) *BusinessError {
	return &BusinessError{
		Code:    CodeInvalidType,
		Message: fmt.Sprintf("неизвестный тип задачи '%s'", received),
		Details: map[string]any{
			"received": received,
		},
	}
}

func NewValidationError(field, reason string) *BusinessError {
	return &BusinessError{
		Code:    CodeValidation,
		Message: fmt.Sprintf("Неверное значение поля '%s': %s", field, reason),
		Details: map[string]any{
			"field":  field,
			"reason": reason,
		},
	}
}
