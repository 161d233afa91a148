package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/phrazzld/kube-tasks-api/internal/api/shared"
	"github.com/phrazzld/kube-tasks-api/internal/domain"
	"github.com/phrazzld/kube-tasks-api/internal/service"
	"github.com/phrazzld/kube-tasks-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors. A malformed id cannot name an existing task.
	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrNotFound),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, shared.ErrInvalidJSON),
		errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErr *domain.ValidationError

	switch {
	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrNotFound),
		errors.Is(err, domain.ErrInvalidID):
		return "Task not found"

	case errors.Is(err, shared.ErrInvalidJSON):
		return "Invalid request format"

	// Validation messages are written for clients
	case errors.As(err, &validationErr):
		return validationErr.Error()

	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid task data"

	case errors.Is(err, service.ErrStoreUnavailable):
		return "Failed to access task storage"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the status code and safe message for err and logs
// the redacted details.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

// requestValidationError converts a request validation failure into a
// domain.ValidationError with the same wording the domain layer uses.
func requestValidationError(err error) error {
	fe, ok := shared.FirstFieldError(err)
	if !ok {
		return domain.NewValidationError("request", "is invalid", domain.ErrValidation)
	}

	switch fe.Tag {
	case "required":
		return domain.NewValidationError(fe.Field, "is required", domain.ErrValidation)
	case "oneof":
		return domain.NewValidationError(fe.Field,
			"must be one of "+strings.ReplaceAll(fe.Param, " ", ", "), domain.ErrValidation)
	default:
		return domain.NewValidationError(fe.Field, "is invalid", domain.ErrValidation)
	}
}
