package service

import (
	"errors"
	"fmt"
)

// Service errors - sentinel errors returned by TaskService.
// Callers check them with errors.Is; the API layer maps each one to an HTTP
// status code.
var (
	// ErrInvalidInput indicates the request violates a task invariant.
	// The returned error also wraps the *domain.ValidationError describing the field.
	// API layer should map this to HTTP 400 Bad Request.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTaskNotFound indicates that no task exists with the requested id.
	// API layer should map this to HTTP 404 Not Found.
	ErrTaskNotFound = errors.New("task not found")

	// ErrStoreUnavailable indicates that the backing store failed or is unreachable.
	// API layer should map this to HTTP 500 Internal Server Error.
	ErrStoreUnavailable = errors.New("task store unavailable")
)

// TaskServiceError is a custom error type for task service errors.
// It carries both the service sentinel (Kind) and the underlying cause, and
// unwraps to both.
type TaskServiceError struct {
	Operation string
	Message   string
	Kind      error
	Err       error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the sentinel and the wrapped cause to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewTaskServiceError creates a new TaskServiceError.
func NewTaskServiceError(operation, message string, kind, err error) *TaskServiceError {
	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Kind:      kind,
		Err:       err,
	}
}
