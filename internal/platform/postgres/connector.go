package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/phrazzld/kube-tasks-api/internal/config"
	"github.com/phrazzld/kube-tasks-api/internal/redact"
	"github.com/phrazzld/kube-tasks-api/internal/store"
)

// ErrConnectorClosed is returned by Connect after Close has been called.
var ErrConnectorClosed = errors.New("database connector closed")

// ConnectHook runs once per process after the first successful connection.
// Hooks run in registration order; if one fails the remaining hooks are
// skipped, the connector stays in the connecting state and the monitor
// retries the whole sequence on its next tick.
type ConnectHook func(ctx context.Context, db *sql.DB) error

// Connector owns the database pool and the process-wide connection state.
// It is the only writer of that state; readers use ConnectionState, which
// never blocks.
type Connector struct {
	db     *sql.DB
	cfg    config.DatabaseConfig
	logger *slog.Logger

	state  atomic.Int32
	closed atomic.Bool

	hooksMu  sync.Mutex
	hooks    []ConnectHook
	hooksRan bool
}

// Ensure Connector implements store.ConnectionStateReader
var _ store.ConnectionStateReader = (*Connector)(nil)

// NewConnector parses the configured URL and opens a pool with the pgx driver.
// No connection is attempted until Connect is called, so a missing database
// never prevents the process from starting.
func NewConnector(cfg config.DatabaseConfig, logger *slog.Logger) (*Connector, error) {
	pgxConfig, err := pgx.ParseConfig(cfg.URL)
	if err != nil {
		// The parse error may echo the URL, so only its redacted form is kept
		return nil, fmt.Errorf("invalid database URL: %s", redact.String(err.Error()))
	}
	pgxConfig.ConnectTimeout = cfg.ConnectTimeout

	db := stdlib.OpenDB(*pgxConfig)
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(5 * time.Minute)

	return newConnector(db, cfg, logger), nil
}

func newConnector(db *sql.DB, cfg config.DatabaseConfig, logger *slog.Logger) *Connector {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Connector{
		db:     db,
		cfg:    cfg,
		logger: logger.With(slog.String("component", "db_connector")),
	}
	c.state.Store(int32(store.StateDisconnected))
	return c
}

// DB returns the underlying pool for use by stores.
func (c *Connector) DB() *sql.DB {
	return c.db
}

// ConnectionState implements store.ConnectionStateReader.
func (c *Connector) ConnectionState() store.ConnectionState {
	return store.ConnectionState(c.state.Load())
}

// OnConnect registers a hook to run after the first successful connection.
// Hooks must be registered before Connect or Monitor are called.
func (c *Connector) OnConnect(hook ConnectHook) {
	c.hooksMu.Lock()
	defer c.hooksMu.Unlock()
	c.hooks = append(c.hooks, hook)
}

// Connect pings the database and runs any hooks that have not yet
// succeeded. The state becomes connected only once both are done; a hook
// failure leaves it connecting so readiness keeps reporting a warning.
func (c *Connector) Connect(ctx context.Context) error {
	if c.closed.Load() {
		return ErrConnectorClosed
	}

	c.setState(store.StateConnecting)

	if err := c.ping(ctx); err != nil {
		c.setState(store.StateDisconnected)
		c.logger.Warn("database connection failed, continuing without database",
			slog.String("error", redact.Error(err)))
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := c.runHooks(ctx); err != nil {
		return err
	}

	c.setState(store.StateConnected)
	c.logger.Info("database connection established")
	return nil
}

// Monitor checks the connection every HealthCheckInterval until ctx is done.
// A failed ping while connected marks the state disconnected; in any other
// state each tick calls Connect, which also retries failed hooks.
func (c *Connector) Monitor(ctx context.Context) {
	ticker := time.NewTicker(c.cfg.HealthCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.check(ctx)
		}
	}
}

// check runs one monitor iteration.
func (c *Connector) check(ctx context.Context) {
	if c.closed.Load() {
		return
	}

	if c.ConnectionState() == store.StateConnected {
		if err := c.ping(ctx); err != nil {
			c.setState(store.StateDisconnected)
			c.logger.Warn("database connection lost", slog.String("error", redact.Error(err)))
		}
		return
	}

	if err := c.Connect(ctx); err != nil {
		c.logger.Debug("database reconnect attempt failed", slog.String("error", redact.Error(err)))
	}
}

// Close marks the connector disconnecting, closes the pool and ends disconnected.
// Calling Close more than once is a no-op.
func (c *Connector) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	c.setState(store.StateDisconnecting)
	err := c.db.Close()
	c.setState(store.StateDisconnected)

	if err != nil {
		return fmt.Errorf("failed to close database pool: %w", err)
	}
	c.logger.Info("database connection closed")
	return nil
}

func (c *Connector) ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, c.cfg.ConnectTimeout)
	defer cancel()
	return c.db.PingContext(pingCtx)
}

func (c *Connector) runHooks(ctx context.Context) error {
	c.hooksMu.Lock()
	defer c.hooksMu.Unlock()

	if c.hooksRan {
		return nil
	}

	for i, hook := range c.hooks {
		if err := hook(ctx, c.db); err != nil {
			c.logger.Error("on-connect hook failed",
				slog.Int("hook", i),
				slog.String("error", redact.Error(err)))
			return fmt.Errorf("on-connect hook %d failed: %w", i, err)
		}
	}

	c.hooksRan = true
	return nil
}

func (c *Connector) setState(next store.ConnectionState) {
	prev := store.ConnectionState(c.state.Swap(int32(next)))
	if prev != next {
		c.logger.Debug("database connection state changed",
			slog.String("from", prev.String()),
			slog.String("to", next.String()))
	}
}
