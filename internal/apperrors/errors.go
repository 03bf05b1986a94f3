package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller is not authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal indicates an unexpected failure that should not leak details to clients.
var ErrInternal = errors.New("internal error")

// ErrInvalidTransfer indicates a rollover transfer against a completed goal or without surplus.
// It is a user-visible rejection and is never retried.
var ErrInvalidTransfer = errors.New("invalid transfer")

// ErrPartialWrite indicates that some, but not all, writes of a command batch were applied.
var ErrPartialWrite = errors.New("partial write inconsistency")

// ErrAIGeneration indicates that the text-generation collaborator failed.
var ErrAIGeneration = errors.New("ai generation failure")

// ErrDataUnavailable indicates that ledger data has not been loaded yet.
var ErrDataUnavailable = errors.New("data unavailable")

// ErrUnavailable indicates that the service is shutting down and no longer accepts ledger writes.
var ErrUnavailable = errors.New("service unavailable")

// AppError carries an HTTP status alongside a wrapped cause.
type AppError struct {
	Status  int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{Status: status, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
