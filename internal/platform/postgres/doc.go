// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package.
//
// It contains three pieces:
//   - Connector owns the connection pool (pgx stdlib driver), the process-wide
//     connection state and the background health monitor.
//   - PostgresTaskStore implements store.TaskStore.
//   - The embedded goose migrations that create the schema.
package postgres
