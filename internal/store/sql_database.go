// Package store implements persistence for the CLI (vaults and invitations
// in SQLite or memory) and for the relay (envelope mailboxes in PostgreSQL
// or memory).
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-steward-keeper/internal/logger"
	"github.com/Masterminds/squirrel"
)

// DB wraps a *sql.DB with the dialect-specific pieces every storage needs.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	builder            squirrel.StatementBuilderType
	migrator           func(*sql.DB) error
	logger             *logger.Logger
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Migrate applies the embedded schema for the connected dialect.
func (db *DB) Migrate() error {
	if db.migrator == nil {
		return errors.New("no migrator configured")
	}
	return db.migrator(db.DB)
}

// withTx runs fn in a transaction. An error from fn rolls it back and is
// returned unchanged.
func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.FromContext(ctx).Err(rbErr).Str("func", "DB.withTx").Msg("rollback failed")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// isUniqueViolation reports whether err is a primary key or unique
// constraint failure for this dialect.
func (db *DB) isUniqueViolation(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.IsUniqueViolation(err)
}
