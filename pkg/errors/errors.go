package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// Общие
	ErrNotFound     = fmt.Errorf("запись не найдена")
	ErrBadRequest   = fmt.Errorf("неверный запрос")
	ErrConflict     = fmt.Errorf("запись уже существует")
	ErrInvalidInput = fmt.Errorf("некорректные входные данные")

	// Отчеты
	ErrEmptyReport = fmt.Errorf("%w: нет оборудования для отчета", ErrInvalidInput)
)

// Кастомные типы ошибок
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// HttpError несет код ответа и сообщение для клиента; Err уходит только в лог.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, ctx map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: ctx}
}

// HTTPStatus сопоставляет доменную ошибку с HTTP-кодом.
func HTTPStatus(err error) int {
	var httpErr *HttpError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
