package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/kube-tasks-api/internal/domain"
	"github.com/phrazzld/kube-tasks-api/internal/platform/logger"
)

// SeedTasks is the demo task set inserted into an empty store.
var SeedTasks = []domain.CreateTaskInput{
	{
		Title:       "Setup Kubernetes",
		Description: "Install Minikube and kubectl",
		Status:      domain.TaskStatusCompleted,
	},
	{
		Title:       "Create Web App",
		Description: "Develop a simple web application",
		Status:      domain.TaskStatusCompleted,
	},
	{
		Title:       "Containerize App",
		Description: "Create Dockerfile and build image",
		Status:      domain.TaskStatusInProgress,
	},
	{
		Title:       "Deploy to Kubernetes",
		Description: "Create K8s manifests and deploy",
		Status:      domain.TaskStatusPending,
	},
	{
		Title:       "Setup CI/CD",
		Description: "Configure GitHub Actions",
		Status:      domain.TaskStatusPending,
	},
}

// SeedIfEmpty implements TaskService.SeedIfEmpty
// The store guarantees the emptiness check and the inserts are atomic with
// respect to other seeders.
func (s *taskServiceImpl) SeedIfEmpty(ctx context.Context) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	inserted, err := s.tasks.SeedIfEmpty(ctx, SeedTasks)
	if err != nil {
		return 0, s.storeFailure(log, "seed_tasks", "failed to seed tasks", err)
	}

	if inserted > 0 {
		log.Info("sample tasks added", slog.Int("count", inserted))
	} else {
		log.Debug("task store already populated, skipping seed")
	}
	return inserted, nil
}
