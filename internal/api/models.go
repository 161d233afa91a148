package api

import (
	"time"

	"github.com/phrazzld/kube-tasks-api/internal/domain"
)

// CreateTaskRequest defines the payload for creating a task.
// Fields not listed here, such as id or createdAt, are ignored.
// Status defaults to pending only when absent; a present empty string is
// rejected like any other unknown status.
type CreateTaskRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description"`
	Status      *string `json:"status"      validate:"omitempty,oneof=pending in-progress completed"`
}

// toInput converts the request into domain input. Trimming and defaulting
// happen in the domain layer.
func (req CreateTaskRequest) toInput() domain.CreateTaskInput {
	input := domain.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		input.Status = domain.TaskStatus(*req.Status)
	}
	return input
}

// UpdateTaskRequest defines the payload for a partial task update.
// Absent and null fields are left unchanged. Field values are validated by
// the service after the task is found, so an unknown id is always 404.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// toPatch converts the request into a domain patch.
func (req UpdateTaskRequest) toPatch() domain.TaskPatch {
	patch := domain.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		patch.Status = &status
	}
	return patch
}

// TaskResponse is the JSON representation of a task.
type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// taskToResponse converts a domain.Task to a TaskResponse
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		CreatedAt:   task.CreatedAt.UTC(),
	}
}

// tasksToResponse converts tasks, preserving order. The result is never nil.
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}
