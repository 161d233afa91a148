package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/kube-tasks-api/internal/config"
	"github.com/phrazzld/kube-tasks-api/internal/health"
	"github.com/phrazzld/kube-tasks-api/internal/platform/postgres"
	"github.com/phrazzld/kube-tasks-api/internal/redact"
	"github.com/phrazzld/kube-tasks-api/internal/service"
)

// application holds all dependencies for the running server.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	connector   *postgres.Connector
	taskService service.TaskService
	reporter    *health.Reporter
}

// newApplication wires the database connector, the task service and the
// health reporter. No network I/O happens here; see startDatabase.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	connector, err := postgres.NewConnector(cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connector: %w", err)
	}

	taskStore := postgres.NewPostgresTaskStore(connector.DB(), logger)

	taskService, err := service.NewTaskService(taskStore, connector, logger)
	if err != nil {
		_ = connector.Close()
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	app := &application{
		config:      cfg,
		logger:      logger,
		connector:   connector,
		taskService: taskService,
		reporter:    health.NewReporter(connector, nil, cfg.Deployment, logger),
	}

	registerConnectHooks(app)

	logger.Info("application initialized")
	return app, nil
}

// Run connects to the database, then serves HTTP until ctx is canceled.
func (app *application) Run(ctx context.Context) error {
	monitorCtx, stopMonitor := context.WithCancel(ctx)
	defer stopMonitor()

	app.startDatabase(monitorCtx)

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.connector != nil {
		if err := app.connector.Close(); err != nil {
			app.logger.Error("error closing database connection",
				slog.String("error", redact.Error(err)))
		}
	}

	app.logger.Info("application shutdown completed")
}
