package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/kube-tasks-api/internal/domain"
)

// taskIDParam is the chi route parameter holding a task id.
const taskIDParam = "id"

// parseTaskID reads the task id from the route. An empty or non-UUID value
// is a validation error wrapping domain.ErrInvalidID, which the error mapper
// reports as a missing task.
func parseTaskID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, taskIDParam)
	if raw == "" {
		return uuid.Nil, domain.NewValidationError(taskIDParam, "is required", domain.ErrInvalidID)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(taskIDParam, "is not a valid task id", domain.ErrInvalidID)
	}
	return id, nil
}
