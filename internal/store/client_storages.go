package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-steward-keeper/internal/config"
	"github.com/MKhiriev/go-steward-keeper/internal/logger"
)

// MemoryDSN selects the in-memory client storages.
const MemoryDSN = ":memory:"

// ClientStorages groups the CLI's repositories.
type ClientStorages struct {
	Vaults      VaultStorage
	Invitations InvitationStorage

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. For [MemoryDSN] it returns in-memory storages.
//  2. Otherwise it opens the SQLite file at cfg.DB.DSN, creating it if it
//     does not exist, and runs pending migrations.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("func", "NewClientStorages").Msg("creating new storages...")

	if cfg.DB.DSN == MemoryDSN {
		return &ClientStorages{
			Vaults:      NewMemoryVaultStorage(),
			Invitations: NewMemoryInvitationStorage(),
		}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Vaults:      NewVaultStorage(db),
		Invitations: NewInvitationStorage(db),
		db:          db,
	}, nil
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
