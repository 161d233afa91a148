package main

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/kube-tasks-api/internal/platform/postgres"
	"github.com/phrazzld/kube-tasks-api/internal/service"
)

// registerConnectHooks installs the one-time startup work that needs a live
// database: schema migrations first, then the demo seed when enabled.
func registerConnectHooks(app *application) {
	app.connector.OnConnect(postgres.MigrateHook(app.logger))

	if app.config.Database.Seed {
		app.connector.OnConnect(seedHook(app.taskService))
	}
}

// seedHook inserts the demo tasks through the service when the store is empty.
func seedHook(svc service.TaskService) postgres.ConnectHook {
	return func(ctx context.Context, _ *sql.DB) error {
		_, err := svc.SeedIfEmpty(ctx)
		return err
	}
}

// startDatabase makes the first connection attempt synchronously so that
// migrations and seeding finish before the listener opens, then hands the
// connection over to the background monitor. A failed attempt is logged and
// left to the monitor.
func (app *application) startDatabase(ctx context.Context) {
	if err := app.connector.Connect(ctx); err != nil {
		app.logger.Warn("starting without database; readiness will report it",
			slog.String("database_state", app.connector.ConnectionState().String()))
	}

	go app.connector.Monitor(ctx)
}
