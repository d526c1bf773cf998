package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the user is authenticated but not allowed to act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRateNotFound is returned by strict conversions when neither a direct nor an
// inverse quote exists for a currency pair.
var ErrRateNotFound = errors.New("no exchange rate for currency pair")

// AppError carries an HTTP status code alongside a client-safe message.
// It unwraps to the underlying cause so errors.Is keeps working against the sentinels above.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

// Error returns Message. A real cause is appended; the sentinels only classify
// the error and never show up in the text.
func (e *AppError) Error() string {
	if e.Err == nil || isSentinel(e.Err) || e.Err.Error() == e.Message {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func isSentinel(err error) bool {
	switch err {
	case ErrNotFound, ErrValidation, ErrDuplicate, ErrForbidden, ErrUnauthorized, ErrRateNotFound:
		return true
	}
	return false
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError with an explicit status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func NewValidationError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

// NewBadRequestError is an alias of NewValidationError used for malformed payloads.
func NewBadRequestError(message string) *AppError {
	return NewValidationError(message)
}

func NewConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrDuplicate)
}

func NewForbiddenError(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

func NewUnauthorizedError(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func NewInternalServerError(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, message, nil)
}

// NewBadGatewayError reports a failure talking to an upstream provider (e.g. Google).
func NewBadGatewayError(message string) *AppError {
	return NewAppError(http.StatusBadGateway, message, nil)
}

// StatusCode maps an error to the HTTP status a handler should respond with.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrRateNotFound):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
