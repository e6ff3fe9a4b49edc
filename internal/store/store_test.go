package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-steward-keeper/internal/config"
	"github.com/MKhiriev/go-steward-keeper/internal/logger"
	"github.com/MKhiriev/go-steward-keeper/models"
)

const (
	ownerKey   = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	stewardKey = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

func newMockDB(t *testing.T, placeholder squirrel.PlaceholderFormat, classifier ErrorClassificator) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:                 conn,
		errorClassificator: classifier,
		builder:            squirrel.StatementBuilder.PlaceholderFormat(placeholder),
		logger:             logger.Nop(),
	}, mock
}

func newSQLiteStorages(t *testing.T) *ClientStorages {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "nested", "client.db")

	s, err := NewClientStorages(context.Background(), config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func sampleVault(id string) models.Vault {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	instructions := "call me first"
	version := 1
	return models.Vault{
		ID:           id,
		Name:         "seed",
		OwnerPubkey:  ownerKey,
		Content:      []byte{1, 2, 3},
		Instructions: &instructions,
		CreatedAt:    now,
		UpdatedAt:    now,
		BackupConfig: &models.BackupConfig{
			VaultID:     id,
			Threshold:   1,
			TotalShards: 1,
			Stewards: []models.Steward{
				{ID: "s1", Pubkey: stewardKey, Status: models.StewardAwaitingKey},
			},
			Relays:      []string{"wss://relay.example"},
			ContentHash: "abc",
			LastUpdated: now,
		},
		Shards: []models.Shard{
			{
				Share:               "AQ==",
				Threshold:           1,
				ShardIndex:          0,
				TotalShards:         1,
				PrimeMod:            "Bw==",
				CreatorPubkey:       ownerKey,
				CreatedAt:           now.Unix(),
				DistributionVersion: &version,
			},
		},
	}
}
