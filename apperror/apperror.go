package apperror

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Services wrap these in an AppError at the point of
// detection; controllers map them to HTTP status codes exactly once.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrInvalidUpstreamData = errors.New("invalid upstream data")
)

type AppError struct {
	Err     error  // sentinel kind
	Message string // human-readable, safe to expose
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func InvalidInput(message string) *AppError {
	return &AppError{Err: ErrInvalidInput, Message: message}
}

func Unauthenticated(message string) *AppError {
	return &AppError{Err: ErrUnauthenticated, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{Err: ErrForbidden, Message: message}
}

func NotFound(resource string) *AppError {
	return &AppError{Err: ErrNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

func Conflict(message string) *AppError {
	return &AppError{Err: ErrConflict, Message: message}
}

func UpstreamUnavailable(message string) *AppError {
	return &AppError{Err: ErrUpstreamUnavailable, Message: message}
}

func InvalidUpstreamData(message string) *AppError {
	return &AppError{Err: ErrInvalidUpstreamData, Message: message}
}
