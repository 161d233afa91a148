package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "ErrNotFound",
			err:      ErrNotFound,
			expected: true,
		},
		{
			name:     "ErrTaskNotFound",
			err:      ErrTaskNotFound,
			expected: true,
		},
		{
			name:     "wrapped ErrTaskNotFound",
			err:      fmt.Errorf("failed to find task: %w", ErrTaskNotFound),
			expected: true,
		},
		{
			name:     "StoreError wrapping ErrTaskNotFound",
			err:      NewStoreError("task", "get", "lookup failed", ErrTaskNotFound),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFoundError(tt.err); got != tt.expected {
				t.Errorf("IsNotFoundError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsUnavailableError(t *testing.T) {
	assert.True(t, IsUnavailableError(ErrUnavailable))
	assert.True(t, IsUnavailableError(NewStoreError("task", "list", "query failed",
		fmt.Errorf("%w: connection refused", ErrUnavailable))))
	assert.False(t, IsUnavailableError(ErrTaskNotFound))
	assert.False(t, IsUnavailableError(nil))
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection refused")

	t.Run("with wrapped error", func(t *testing.T) {
		err := NewStoreError("task", "create", "insert failed", cause)
		assert.Equal(t, "create operation on task failed: insert failed: connection refused", err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("without wrapped error", func(t *testing.T) {
		err := NewStoreError("task", "delete", "no rows", nil)
		assert.Equal(t, "delete operation on task failed: no rows", err.Error())
		assert.Nil(t, err.Unwrap())
	})
}

func TestConnectionStateString(t *testing.T) {
	assert.Equal(t, "disconnected", StateDisconnected.String())
	assert.Equal(t, "connected", StateConnected.String())
	assert.Equal(t, "connecting", StateConnecting.String())
	assert.Equal(t, "disconnecting", StateDisconnecting.String())
	assert.Equal(t, "unknown", ConnectionState(42).String())

	var reader ConnectionStateReader = StaticConnectionState(StateConnecting)
	assert.Equal(t, StateConnecting, reader.ConnectionState())
}
