package apperror

import (
	"errors"
	"net/http"
)

var (
	ErrBadRequest   = errors.New("bad request")
	ErrInvalidInput = errors.New("invalid input")
)

// AppError carries the HTTP status a handler should answer with.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Invalid wraps ErrInvalidInput with a user facing message.
func Invalid(message string) *AppError {
	return New(http.StatusBadRequest, message, ErrInvalidInput)
}

// MapErrorToStatus maps common errors to HTTP status codes
func MapErrorToStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrInvalidInput) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
