package service

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/kube-tasks-api/internal/domain"
	"github.com/phrazzld/kube-tasks-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedTasks(t *testing.T) {
	require.Len(t, SeedTasks, 5)

	for _, seed := range SeedTasks {
		normalized, err := seed.Normalize()
		require.NoError(t, err, "seed %q must be valid", seed.Title)
		assert.Equal(t, seed, normalized, "seed %q must already be normalized", seed.Title)
	}

	assert.Equal(t, "Setup Kubernetes", SeedTasks[0].Title)
	assert.Equal(t, domain.TaskStatusInProgress, SeedTasks[2].Status)
	assert.Equal(t, "Setup CI/CD", SeedTasks[4].Title)
}

func TestTaskService_SeedIfEmpty(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		svc, mockStore, buf := newTestService(t, store.StateConnected)
		mockStore.On("SeedIfEmpty", ctx, SeedTasks).Return(len(SeedTasks), nil)

		inserted, err := svc.SeedIfEmpty(ctx)

		require.NoError(t, err)
		assert.Equal(t, 5, inserted)
		entry := buf.FindEntry("sample tasks added")
		require.NotNil(t, entry)
		assert.EqualValues(t, 5, entry["count"])
	})

	t.Run("populated store", func(t *testing.T) {
		svc, mockStore, _ := newTestService(t, store.StateConnected)
		mockStore.On("SeedIfEmpty", ctx, SeedTasks).Return(0, nil)

		inserted, err := svc.SeedIfEmpty(ctx)

		require.NoError(t, err)
		assert.Zero(t, inserted)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, mockStore, _ := newTestService(t, store.StateConnected)
		mockStore.On("SeedIfEmpty", ctx, SeedTasks).Return(0, errors.New("lock timeout"))

		_, err := svc.SeedIfEmpty(ctx)

		assert.ErrorIs(t, err, ErrStoreUnavailable)
	})
}
