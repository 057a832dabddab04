package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
	// Err - исходная ошибка хранилища, наружу не отдается
	Err error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	CodeNotFound           = "NOT_FOUND"
	CodeEmptyPool          = "EMPTY_POOL"
	CodePersistenceFailure = "PERSISTENCE_FAILURE"
	CodeBadRequest         = "BAD_REQUEST"
	CodeMinistryExists     = "MINISTRY_EXISTS"
)

var (
	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrEmptyPool - нет активных членов для составления ростера.
	// Это бизнес-результат, а не сбой: хендлер отдает его как обычный ответ
	ErrEmptyPool = &DomainError{
		Code:    CodeEmptyPool,
		Message: "no active members available",
	}

	// ErrPersistence - ошибка хранилища во время генерации, батч откатан
	ErrPersistence = &DomainError{
		Code:    CodePersistenceFailure,
		Message: "failed to persist rosters",
	}

	// ErrBadRequest - некорректные входные данные
	ErrBadRequest = &DomainError{
		Code:    CodeBadRequest,
		Message: "bad request",
	}

	// ErrMinistryExists - министерство с таким именем уже есть
	ErrMinistryExists = &DomainError{
		Code:    CodeMinistryExists,
		Message: "ministry name already exists",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewBadRequestError создает ошибку BAD_REQUEST с описанием проблемы
func NewBadRequestError(message string) *DomainError {
	return &DomainError{
		Code:    CodeBadRequest,
		Message: message,
	}
}

// NewPersistenceError оборачивает ошибку хранилища
func NewPersistenceError(op string, err error) *DomainError {
	return &DomainError{
		Code:    CodePersistenceFailure,
		Message: "failed to " + op,
		Err:     err,
	}
}
