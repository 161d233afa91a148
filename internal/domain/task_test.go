package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func strPtr(s string) *string { return &s }

func statusPtr(s TaskStatus) *TaskStatus { return &s }

func TestTaskStatusIsValid(t *testing.T) {
	t.Parallel()

	for _, status := range TaskStatuses {
		if !status.IsValid() {
			t.Errorf("Expected %q to be valid", status)
		}
	}

	for _, status := range []TaskStatus{"", "done", "PENDING", "in_progress"} {
		if status.IsValid() {
			t.Errorf("Expected %q to be invalid", status)
		}
	}

	if want := "must be one of pending, in-progress, completed"; statusMessage != want {
		t.Errorf("statusMessage = %q, want %q", statusMessage, want)
	}
}

func TestCreateTaskInputNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     CreateTaskInput
		want      CreateTaskInput
		wantErr   error
		wantField string
	}{
		{
			name:  "applies defaults",
			input: CreateTaskInput{Title: "Write tests"},
			want:  CreateTaskInput{Title: "Write tests", Description: "", Status: TaskStatusPending},
		},
		{
			name:  "trims text fields",
			input: CreateTaskInput{Title: "  Deploy  ", Description: "\tto minikube \n", Status: TaskStatusInProgress},
			want:  CreateTaskInput{Title: "Deploy", Description: "to minikube", Status: TaskStatusInProgress},
		},
		{
			name:      "rejects empty title",
			input:     CreateTaskInput{Title: ""},
			wantErr:   ErrEmptyTaskTitle,
			wantField: "title",
		},
		{
			name:      "rejects whitespace title",
			input:     CreateTaskInput{Title: "   \t"},
			wantErr:   ErrEmptyTaskTitle,
			wantField: "title",
		},
		{
			name:      "rejects unknown status",
			input:     CreateTaskInput{Title: "Valid", Status: "done"},
			wantErr:   ErrInvalidTaskStatus,
			wantField: "status",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.input.Normalize()

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
				}
				if !errors.Is(err, ErrValidation) {
					t.Errorf("Expected error to wrap ErrValidation, got %v", err)
				}
				var vErr *ValidationError
				if !errors.As(err, &vErr) || vErr.Field != tt.wantField {
					t.Errorf("Expected ValidationError on field %q, got %v", tt.wantField, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestTaskPatchNormalize(t *testing.T) {
	t.Parallel()

	t.Run("empty patch", func(t *testing.T) {
		patch, err := TaskPatch{}.Normalize()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if !patch.IsEmpty() {
			t.Error("Expected normalized empty patch to stay empty")
		}
	})

	t.Run("trims present fields", func(t *testing.T) {
		patch, err := TaskPatch{Title: strPtr(" New title "), Description: strPtr("  ")}.Normalize()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if *patch.Title != "New title" {
			t.Errorf("Expected trimmed title, got %q", *patch.Title)
		}
		if *patch.Description != "" {
			t.Errorf("Expected blank description to trim to empty, got %q", *patch.Description)
		}
		if patch.Status != nil {
			t.Error("Expected absent status to stay absent")
		}
	})

	t.Run("rejects blank title", func(t *testing.T) {
		_, err := TaskPatch{Title: strPtr("   ")}.Normalize()
		if !errors.Is(err, ErrEmptyTaskTitle) {
			t.Errorf("Expected ErrEmptyTaskTitle, got %v", err)
		}
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := TaskPatch{Status: statusPtr("archived")}.Normalize()
		if !errors.Is(err, ErrInvalidTaskStatus) {
			t.Errorf("Expected ErrInvalidTaskStatus, got %v", err)
		}
	})
}

func TestTaskPatchApplyTo(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	created := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)
	task := Task{
		ID:          id,
		Title:       "Write tests",
		Description: "",
		Status:      TaskStatusPending,
		CreatedAt:   created,
	}

	TaskPatch{Status: statusPtr(TaskStatusCompleted)}.ApplyTo(&task)

	if task.Status != TaskStatusCompleted {
		t.Errorf("Expected status %s, got %s", TaskStatusCompleted, task.Status)
	}
	if task.Title != "Write tests" || task.Description != "" {
		t.Errorf("Expected other fields unchanged, got %+v", task)
	}
	if task.ID != id || !task.CreatedAt.Equal(created) {
		t.Errorf("Expected identity fields unchanged, got %+v", task)
	}
}

func TestTaskValidate(t *testing.T) {
	t.Parallel()

	valid := Task{ID: uuid.New(), Title: "x", Status: TaskStatusPending}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid task, got %v", err)
	}

	noTitle := valid
	noTitle.Title = " "
	if err := noTitle.Validate(); !errors.Is(err, ErrEmptyTaskTitle) {
		t.Errorf("Expected ErrEmptyTaskTitle, got %v", err)
	}

	badStatus := valid
	badStatus.Status = "blocked"
	if err := badStatus.Validate(); !errors.Is(err, ErrInvalidTaskStatus) {
		t.Errorf("Expected ErrInvalidTaskStatus, got %v", err)
	}
}
