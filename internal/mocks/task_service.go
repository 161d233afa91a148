package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/kube-tasks-api/internal/domain"
	"github.com/phrazzld/kube-tasks-api/internal/service"
)

// MockTaskService implements service.TaskService for testing
type MockTaskService struct {
	// Custom behavior functions
	ListTasksFn   func(ctx context.Context) ([]*domain.Task, error)
	GetTaskFn     func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	CreateTaskFn  func(ctx context.Context, input domain.CreateTaskInput) (*domain.Task, error)
	UpdateTaskFn  func(ctx context.Context, id uuid.UUID, patch domain.TaskPatch) (*domain.Task, error)
	DeleteTaskFn  func(ctx context.Context, id uuid.UUID) error
	SeedIfEmptyFn func(ctx context.Context) (int, error)

	// Default return values
	Task         *domain.Task
	Tasks        []*domain.Task
	DefaultError error
}

// Ensure MockTaskService implements service.TaskService
var _ service.TaskService = (*MockTaskService)(nil)

// ListTasks implements the TaskService.ListTasks method
func (m *MockTaskService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx)
	}
	return m.Tasks, m.DefaultError
}

// GetTask implements the TaskService.GetTask method
func (m *MockTaskService) GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, id)
	}
	return m.Task, m.DefaultError
}

// CreateTask implements the TaskService.CreateTask method
func (m *MockTaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, input)
	}
	return m.Task, m.DefaultError
}

// UpdateTask implements the TaskService.UpdateTask method
func (m *MockTaskService) UpdateTask(
	ctx context.Context,
	id uuid.UUID,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, id, patch)
	}
	return m.Task, m.DefaultError
}

// DeleteTask implements the TaskService.DeleteTask method
func (m *MockTaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, id)
	}
	return m.DefaultError
}

// SeedIfEmpty implements the TaskService.SeedIfEmpty method
func (m *MockTaskService) SeedIfEmpty(ctx context.Context) (int, error) {
	if m.SeedIfEmptyFn != nil {
		return m.SeedIfEmptyFn(ctx)
	}
	return 0, m.DefaultError
}
