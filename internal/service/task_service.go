package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/kube-tasks-api/internal/domain"
	"github.com/phrazzld/kube-tasks-api/internal/platform/logger"
	"github.com/phrazzld/kube-tasks-api/internal/redact"
	"github.com/phrazzld/kube-tasks-api/internal/store"
)

// TaskService provides task-related operations
type TaskService interface {
	// ListTasks returns every task, newest first. The slice is never nil.
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// GetTask retrieves a task by its ID
	GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// CreateTask validates and defaults input, then persists a new task
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (*domain.Task, error)

	// UpdateTask applies the present fields of patch to an existing task
	UpdateTask(ctx context.Context, id uuid.UUID, patch domain.TaskPatch) (*domain.Task, error)

	// DeleteTask permanently removes a task
	DeleteTask(ctx context.Context, id uuid.UUID) error

	// SeedIfEmpty inserts the demo task set when no tasks exist and
	// returns the number of tasks inserted
	SeedIfEmpty(ctx context.Context) (int, error)
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	tasks  store.TaskStore
	state  store.ConnectionStateReader
	logger *slog.Logger
}

// NewTaskService creates a new TaskService.
// state is only consulted to annotate store failures in logs; a nil state
// reports the store as connected.
// It returns an error if taskStore is nil.
func NewTaskService(
	taskStore store.TaskStore,
	state store.ConnectionStateReader,
	logger *slog.Logger,
) (TaskService, error) {
	if taskStore == nil {
		return nil, domain.NewValidationError("taskStore", "cannot be nil", domain.ErrValidation)
	}

	if state == nil {
		state = store.StaticConnectionState(store.StateConnected)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		tasks:  taskStore,
		state:  state,
		logger: logger.With(slog.String("component", "task_service")),
	}, nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, s.storeFailure(log, "list_tasks", "failed to list tasks", err)
	}

	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}

// GetTask implements TaskService.GetTask
func (s *taskServiceImpl) GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	return s.lookup(ctx, "get_task", id)
}

// lookup fetches a task for operation, mapping store errors to service errors.
func (s *taskServiceImpl) lookup(ctx context.Context, operation string, id uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found", slog.String("task_id", id.String()))
			return nil, NewTaskServiceError(operation, "task not found", ErrTaskNotFound, err)
		}
		return nil, s.storeFailure(log, operation, "failed to retrieve task", err,
			slog.String("task_id", id.String()))
	}

	return task, nil
}

// CreateTask implements TaskService.CreateTask
// Nothing is persisted when validation fails.
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	input domain.CreateTaskInput,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	normalized, err := input.Normalize()
	if err != nil {
		log.Debug("rejected task input", slog.String("error", err.Error()))
		return nil, NewTaskServiceError("create_task", "invalid task", ErrInvalidInput, err)
	}

	task, err := s.tasks.Create(ctx, normalized)
	if err != nil {
		if errors.Is(err, store.ErrInvalidEntity) {
			return nil, NewTaskServiceError("create_task", "task rejected by store", ErrInvalidInput, err)
		}
		return nil, s.storeFailure(log, "create_task", "failed to save task", err)
	}

	return task, nil
}

// UpdateTask implements TaskService.UpdateTask
// Only the fields present in patch change. An empty patch returns the
// current task without writing.
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id uuid.UUID,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.lookup(ctx, "update_task", id)
	if err != nil {
		return nil, err
	}

	normalized, err := patch.Normalize()
	if err != nil {
		log.Debug("rejected task patch",
			slog.String("task_id", id.String()),
			slog.String("error", err.Error()))
		return nil, NewTaskServiceError("update_task", "invalid patch", ErrInvalidInput, err)
	}

	if normalized.IsEmpty() {
		return task, nil
	}

	normalized.ApplyTo(task)
	if err := task.Validate(); err != nil {
		return nil, NewTaskServiceError("update_task", "invalid task after patch", ErrInvalidInput, err)
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		switch {
		case store.IsNotFoundError(err):
			// Deleted between lookup and write
			return nil, NewTaskServiceError("update_task", "task not found", ErrTaskNotFound, err)
		case errors.Is(err, store.ErrInvalidEntity):
			return nil, NewTaskServiceError("update_task", "task rejected by store", ErrInvalidInput, err)
		}
		return nil, s.storeFailure(log, "update_task", "failed to save task", err,
			slog.String("task_id", id.String()))
	}

	return task, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.tasks.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found for delete", slog.String("task_id", id.String()))
			return NewTaskServiceError("delete_task", "task not found", ErrTaskNotFound, err)
		}
		return s.storeFailure(log, "delete_task", "failed to delete task", err,
			slog.String("task_id", id.String()))
	}

	return nil
}

// storeFailure logs an unexpected store error together with the current
// connection state and wraps it as ErrStoreUnavailable.
func (s *taskServiceImpl) storeFailure(
	log *slog.Logger,
	operation, message string,
	err error,
	attrs ...any,
) error {
	attrs = append(attrs,
		slog.String("error", redact.Error(err)),
		slog.String("database_state", s.state.ConnectionState().String()),
		slog.Bool("database_unreachable", store.IsUnavailableError(err)))
	log.Error(message, attrs...)

	return NewTaskServiceError(operation, message, ErrStoreUnavailable, err)
}
