package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/phrazzld/kube-tasks-api/internal/config"
	"github.com/phrazzld/kube-tasks-api/internal/platform/logger"
	"github.com/phrazzld/kube-tasks-api/internal/platform/postgres"
	"github.com/spf13/cobra"
)

// newRootCommand builds the tasks-api command tree. Running the root command
// without a subcommand starts the server.
func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tasks-api",
		Short:         "Task tracking API with Kubernetes health probes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	rootCmd.AddCommand(newServeCommand(), newMigrateCommand())
	return rootCmd
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server. The database connection, migrations and the
demo seed run before the listener starts; an unreachable database is logged
and the server starts anyway.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate [" + strings.Join(postgres.MigrationCommands, "|") + "]",
		Short: "Run database migrations",
		Long:  "Run a migration command against the configured database. Defaults to up.",
		Args:  validateMigrationArgs,
		RunE:  runMigrate,
	}
}

// validateMigrationArgs accepts at most one argument naming a known migration command.
func validateMigrationArgs(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("accepts at most 1 arg, received %d", len(args))
	}
	if len(args) == 1 && !slices.Contains(postgres.MigrationCommands, args[0]) {
		return fmt.Errorf("unknown migration command %q, expected one of: %s",
			args[0], strings.Join(postgres.MigrationCommands, ", "))
	}
	return nil
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("environment", cfg.Deployment.Environment))

	return cfg, log, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := initializeApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	command := "up"
	if len(args) == 1 {
		command = args[0]
	}

	cfg, log, err := initializeApp()
	if err != nil {
		return err
	}

	connector, err := postgres.NewConnector(cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := connector.Close(); closeErr != nil {
			log.Error("failed to close database connection", slog.String("error", closeErr.Error()))
		}
	}()

	ctx := cmd.Context()
	if err := connector.Connect(ctx); err != nil {
		return err
	}

	log.Info("executing migrations", slog.String("command", command))
	return postgres.RunMigrations(ctx, connector.DB(), log, command)
}
