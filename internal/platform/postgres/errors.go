package postgres

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/kube-tasks-api/internal/store"
)

// SQLSTATE codes with a specific meaning for the task store.
const (
	checkViolationCode            = "23514"
	notNullViolationCode          = "23502"
	invalidTextRepresentationCode = "22P02"
	adminShutdownCode             = "57P01"
	crashShutdownCode             = "57P02"
	cannotConnectNowCode          = "57P03"
	tooManyConnectionsCode        = "53300"

	// connectionExceptionClass covers every 08xxx code.
	connectionExceptionClass = "08"
)

// MapError translates driver errors into store sentinels, keeping the
// original error in the chain. Errors without a specific mapping are
// returned unchanged.
//
//	sql.ErrNoRows                     -> store.ErrNotFound
//	23514, 23502, 22P02               -> store.ErrInvalidEntity
//	08xxx, 57P01-57P03, 53300, closed -> store.ErrUnavailable
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", store.ErrNotFound, err)
	}

	if isConnectionFailure(err) {
		return fmt.Errorf("%w: %w", store.ErrUnavailable, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case checkViolationCode:
		return fmt.Errorf("%w: check constraint %s violated: %w",
			store.ErrInvalidEntity, pgErr.ConstraintName, err)
	case notNullViolationCode:
		return fmt.Errorf("%w: column %s must not be null: %w",
			store.ErrInvalidEntity, pgErr.ColumnName, err)
	case invalidTextRepresentationCode:
		return fmt.Errorf("%w: malformed value: %w", store.ErrInvalidEntity, err)
	}

	return err
}

// isConnectionFailure reports whether err means the server could not be
// reached or dropped the session, as opposed to rejecting the statement.
func isConnectionFailure(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case adminShutdownCode, crashShutdownCode, cannotConnectNowCode, tooManyConnectionsCode:
		return true
	}
	return strings.HasPrefix(pgErr.Code, connectionExceptionClass)
}

// IsCheckConstraintViolation reports whether err is a CHECK constraint violation.
func IsCheckConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == checkViolationCode
}

// CheckRowsAffected returns notFound (store.ErrNotFound when nil) if the
// statement touched no rows.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return errors.New("nil result provided to CheckRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected > 0 {
		return nil
	}
	if notFound == nil {
		return store.ErrNotFound
	}
	return notFound
}
