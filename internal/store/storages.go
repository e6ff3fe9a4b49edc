package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-steward-keeper/internal/config"
	"github.com/MKhiriev/go-steward-keeper/internal/logger"
)

// RelayStorages groups the relay's repositories.
type RelayStorages struct {
	Mailbox MailboxStorage

	db *DB
}

// NewRelayStorages connects to PostgreSQL and migrates it. An empty DSN
// keeps mailboxes in memory, which is enough for local development.
func NewRelayStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*RelayStorages, error) {
	if cfg.DB.DSN == "" {
		log.Warn().Str("func", "NewRelayStorages").Msg("no DSN configured, mailboxes are kept in memory")
		return &RelayStorages{Mailbox: NewMemoryMailboxStorage()}, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &RelayStorages{
		Mailbox: NewMailboxStorage(db),
		db:      db,
	}, nil
}

// Close releases the database connection, if any.
func (s *RelayStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
