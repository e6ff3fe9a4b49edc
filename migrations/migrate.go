// Package migrations embeds the goose schema migrations for the client
// SQLite database and the relay PostgreSQL database.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed client/*.sql relay/*.sql
var embedMigrations embed.FS

// goose keeps its base FS and dialect in package state.
var gooseMu sync.Mutex

// MigrateSQLite applies the client schema.
func MigrateSQLite(db *sql.DB) error {
	return migrate(db, "sqlite3", "client")
}

// MigratePostgres applies the relay schema.
func MigratePostgres(db *sql.DB) error {
	return migrate(db, "pgx", "relay")
}

func migrate(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
