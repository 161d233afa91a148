package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents where a task is in its workflow.
type TaskStatus string

// Possible task status values
const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// TaskStatuses lists every valid status in workflow order.
var TaskStatuses = []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}

// Task-specific validation errors
var (
	ErrEmptyTaskTitle    = fmt.Errorf("%w: task title cannot be empty", ErrValidation)
	ErrInvalidTaskStatus = fmt.Errorf("%w: invalid task status", ErrValidation)
)

// statusMessage is the client-facing explanation for a rejected status.
var statusMessage = "must be one of " + joinStatuses(", ")

func joinStatuses(sep string) string {
	names := make([]string, len(TaskStatuses))
	for i, status := range TaskStatuses {
		names[i] = string(status)
	}
	return strings.Join(names, sep)
}

// IsValid reports whether s is one of the enumerated statuses.
func (s TaskStatus) IsValid() bool {
	return slices.Contains(TaskStatuses, s)
}

// Task is a unit of work tracked by the service.
// ID and CreatedAt are assigned by the store and never change afterwards.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Validate checks the field invariants that must hold for every stored task.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return NewValidationError("title", "is required", ErrEmptyTaskTitle)
	}

	if !t.Status.IsValid() {
		return NewValidationError("status", statusMessage, ErrInvalidTaskStatus)
	}

	return nil
}

// CreateTaskInput carries the client-supplied fields for a new task.
// An empty Status means the client did not supply one.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      TaskStatus
}

// Normalize trims text fields, applies defaults and validates the result.
// The returned input is ready to be persisted.
func (in CreateTaskInput) Normalize() (CreateTaskInput, error) {
	out := CreateTaskInput{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Status:      in.Status,
	}

	if out.Title == "" {
		return CreateTaskInput{}, NewValidationError("title", "is required", ErrEmptyTaskTitle)
	}

	if out.Status == "" {
		out.Status = TaskStatusPending
	}
	if !out.Status.IsValid() {
		return CreateTaskInput{}, NewValidationError("status", statusMessage, ErrInvalidTaskStatus)
	}

	return out, nil
}

// TaskPatch is a partial update. A nil field is absent and left unchanged.
// ID and CreatedAt cannot be patched.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *TaskStatus
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil
}

// Normalize trims present text fields and validates present values.
func (p TaskPatch) Normalize() (TaskPatch, error) {
	var out TaskPatch

	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return TaskPatch{}, NewValidationError("title", "cannot be empty", ErrEmptyTaskTitle)
		}
		out.Title = &title
	}

	if p.Description != nil {
		description := strings.TrimSpace(*p.Description)
		out.Description = &description
	}

	if p.Status != nil {
		if !p.Status.IsValid() {
			return TaskPatch{}, NewValidationError("status", statusMessage, ErrInvalidTaskStatus)
		}
		status := *p.Status
		out.Status = &status
	}

	return out, nil
}

// ApplyTo copies the present fields onto t.
func (p TaskPatch) ApplyTo(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
}
