package xerr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrNotFound         = errors.New("not found")
	ErrNotEligible      = errors.New("not eligible")
)

// CodeError 携带错误分类和可以返回给客户端的提示信息
type CodeError struct {
	kind  error
	msg   string
	cause error
}

func (e *CodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.kind, e.msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.msg)
}

// Is reports whether target is the error's kind.
func (e *CodeError) Is(target error) bool {
	return target == e.kind
}

func (e *CodeError) Unwrap() error {
	return e.cause
}

// Message is the text safe to show to API clients.
func (e *CodeError) Message() string {
	return e.msg
}

func New(kind error, msg string) *CodeError {
	return &CodeError{kind: kind, msg: msg}
}

func InvalidInput(format string, args ...any) error {
	return New(ErrInvalidInput, fmt.Sprintf(format, args...))
}

func NotFound(format string, args ...any) error {
	return New(ErrNotFound, fmt.Sprintf(format, args...))
}

func NotEligible(msg string) error {
	return New(ErrNotEligible, msg)
}

// StoreUnavailable wraps a persistence failure. msg is what the client sees,
// cause stays in the logs.
func StoreUnavailable(msg string, cause error) error {
	return &CodeError{kind: ErrStoreUnavailable, msg: msg, cause: cause}
}

// HTTPStatus maps an error to the status code the API answers with.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNotEligible):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage never leaks store diagnostics.
func PublicMessage(err error) string {
	var ce *CodeError
	if errors.As(err, &ce) {
		return ce.Message()
	}
	return "Internal server error"
}
