package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/kube-tasks-api/internal/domain"
	"github.com/phrazzld/kube-tasks-api/internal/store"
)

// MemoryTaskStore is an in-memory store.TaskStore. It assigns IDs and
// strictly increasing CreatedAt values the way the database does.
// Setting Err makes every method fail with it.
type MemoryTaskStore struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]domain.Task
	clock time.Time

	Err error
}

// Ensure MemoryTaskStore implements store.TaskStore
var _ store.TaskStore = (*MemoryTaskStore)(nil)

// NewMemoryTaskStore returns an empty store.
func NewMemoryTaskStore() *MemoryTaskStore {
	return &MemoryTaskStore{
		tasks: make(map[uuid.UUID]domain.Task),
		clock: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

// List implements store.TaskStore.
func (s *MemoryTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	out := make([]*domain.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		task := task
		out = append(out, &task)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() > out[j].ID.String()
	})
	return out, nil
}

// GetByID implements store.TaskStore.
func (s *MemoryTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	task, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return &task, nil
}

// Create implements store.TaskStore.
func (s *MemoryTaskStore) Create(ctx context.Context, input domain.CreateTaskInput) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	return s.insert(input)
}

func (s *MemoryTaskStore) insert(input domain.CreateTaskInput) (*domain.Task, error) {
	s.clock = s.clock.Add(time.Millisecond)
	task := domain.Task{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		CreatedAt:   s.clock,
	}
	if err := task.Validate(); err != nil {
		return nil, store.ErrInvalidEntity
	}

	s.tasks[task.ID] = task
	return &task, nil
}

// Update implements store.TaskStore.
func (s *MemoryTaskStore) Update(ctx context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}

	stored, ok := s.tasks[task.ID]
	if !ok {
		return store.ErrTaskNotFound
	}

	stored.Title = task.Title
	stored.Description = task.Description
	stored.Status = task.Status
	s.tasks[task.ID] = stored
	task.CreatedAt = stored.CreatedAt
	return nil
}

// Delete implements store.TaskStore.
func (s *MemoryTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}

	if _, ok := s.tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}

// Count implements store.TaskStore.
func (s *MemoryTaskStore) Count(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return 0, s.Err
	}
	return len(s.tasks), nil
}

// SeedIfEmpty implements store.TaskStore. The store lock makes the check and
// inserts atomic.
func (s *MemoryTaskStore) SeedIfEmpty(ctx context.Context, inputs []domain.CreateTaskInput) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return 0, s.Err
	}
	if len(s.tasks) > 0 {
		return 0, nil
	}

	for i, input := range inputs {
		if _, err := s.insert(input); err != nil {
			return i, err
		}
	}
	return len(inputs), nil
}

// WithTx implements store.TaskStore. Transactions are not modeled.
func (s *MemoryTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return s
}
