package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies a class of application error. Codes are stable
// across releases; clients may switch on them.
type ErrorCode int

const (
	ErrBadRequest ErrorCode = iota + 1000
	ErrNotFound
	ErrRequestTooLarge
	ErrTooManyRequests
	ErrTimeout
	ErrInternal
)

// AppError carries a stable code and a user-facing message around a
// wrapped cause.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error code onto the status the HTTP layer
// answers with.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case ErrBadRequest:
		return http.StatusBadRequest
	case ErrNotFound:
		return http.StatusNotFound
	case ErrRequestTooLarge:
		return http.StatusRequestEntityTooLarge
	case ErrTooManyRequests:
		return http.StatusTooManyRequests
	case ErrTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{Code: ErrBadRequest, Message: message, Err: err}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{Code: ErrNotFound, Message: fmt.Sprintf("%s not found", resource), Err: err}
}

func RequestTooLarge(message string, err error) *AppError {
	return &AppError{Code: ErrRequestTooLarge, Message: message, Err: err}
}

func TooManyRequests(err error) *AppError {
	return &AppError{Code: ErrTooManyRequests, Message: "too many requests", Err: err}
}

func Timeout(err error) *AppError {
	return &AppError{Code: ErrTimeout, Message: "request timed out", Err: err}
}

func Internal(err error) *AppError {
	return &AppError{Code: ErrInternal, Message: "internal server error", Err: err}
}

// AsAppError returns the *AppError in err's chain, if any.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
