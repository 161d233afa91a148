package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/kube-tasks-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
// Implementations assign ID and CreatedAt; callers never supply them.
type TaskStore interface {
	// List returns every task ordered by CreatedAt descending.
	// Returns an empty, non-nil slice when the store holds no tasks.
	List(ctx context.Context) ([]*domain.Task, error)

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Create persists a new task from already normalized input and returns
	// the stored row including the assigned ID and CreatedAt.
	Create(ctx context.Context, input domain.CreateTaskInput) (*domain.Task, error)

	// Update writes Title, Description and Status of task to the row with
	// task.ID. ID and CreatedAt are never written; CreatedAt is refreshed
	// from the stored row.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of stored tasks.
	Count(ctx context.Context) (int, error)

	// SeedIfEmpty inserts inputs only when the store holds zero tasks and
	// returns the number of inserted rows. Implementations must guarantee
	// that concurrent callers never insert the set twice.
	SeedIfEmpty(ctx context.Context, inputs []domain.CreateTaskInput) (int, error)

	// WithTx returns a TaskStore that runs every statement on tx.
	WithTx(tx *sql.Tx) TaskStore
}
