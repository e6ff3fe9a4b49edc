package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-steward-keeper/models"
)

var vaultColumns = []string{
	"id",
	"name",
	"owner_pubkey",
	"content",
	"instructions",
	"created_at",
	"updated_at",
	"backup_config",
	"shards",
	"recovery_requests",
}

var invitationColumns = []string{
	"code",
	"vault_id",
	"inviter_pubkey",
	"invitee_name",
	"relays",
	"created_at",
	"status",
	"redeemed_by",
	"resolved_at",
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func encodeJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return string(data), nil
}

// vaultValues returns the column values of v in vaultColumns order.
func vaultValues(v models.Vault) ([]any, error) {
	var backupConfig sql.NullString
	if v.BackupConfig != nil {
		encoded, err := encodeJSON(v.BackupConfig)
		if err != nil {
			return nil, err
		}
		backupConfig = sql.NullString{String: encoded, Valid: true}
	}

	shards := v.Shards
	if shards == nil {
		shards = []models.Shard{}
	}
	encodedShards, err := encodeJSON(shards)
	if err != nil {
		return nil, err
	}

	requests := v.RecoveryRequests
	if requests == nil {
		requests = []models.RecoveryRequest{}
	}
	encodedRequests, err := encodeJSON(requests)
	if err != nil {
		return nil, err
	}

	var instructions sql.NullString
	if v.Instructions != nil {
		instructions = sql.NullString{String: *v.Instructions, Valid: true}
	}

	return []any{
		v.ID,
		v.Name,
		v.OwnerPubkey,
		v.Content,
		instructions,
		v.CreatedAt.UTC(),
		v.UpdatedAt.UTC(),
		backupConfig,
		encodedShards,
		encodedRequests,
	}, nil
}

func scanVault(row rowScanner) (models.Vault, error) {
	var (
		v               models.Vault
		instructions    sql.NullString
		backupConfig    sql.NullString
		encodedShards   string
		encodedRequests string
	)

	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.OwnerPubkey,
		&v.Content,
		&instructions,
		&v.CreatedAt,
		&v.UpdatedAt,
		&backupConfig,
		&encodedShards,
		&encodedRequests,
	)
	if err != nil {
		return models.Vault{}, err
	}

	if instructions.Valid {
		v.Instructions = &instructions.String
	}
	if backupConfig.Valid {
		v.BackupConfig = new(models.BackupConfig)
		if err := json.Unmarshal([]byte(backupConfig.String), v.BackupConfig); err != nil {
			return models.Vault{}, fmt.Errorf("%w: backup_config: %w", ErrEncodingColumn, err)
		}
	}
	if err := json.Unmarshal([]byte(encodedShards), &v.Shards); err != nil {
		return models.Vault{}, fmt.Errorf("%w: shards: %w", ErrEncodingColumn, err)
	}
	if err := json.Unmarshal([]byte(encodedRequests), &v.RecoveryRequests); err != nil {
		return models.Vault{}, fmt.Errorf("%w: recovery_requests: %w", ErrEncodingColumn, err)
	}
	if len(v.Shards) == 0 {
		v.Shards = nil
	}
	if len(v.RecoveryRequests) == 0 {
		v.RecoveryRequests = nil
	}

	return v, nil
}

func invitationValues(inv models.Invitation) ([]any, error) {
	relays := inv.Relays
	if relays == nil {
		relays = []string{}
	}
	encodedRelays, err := encodeJSON(relays)
	if err != nil {
		return nil, err
	}

	var redeemedBy sql.NullString
	if inv.RedeemedBy != nil {
		redeemedBy = sql.NullString{String: *inv.RedeemedBy, Valid: true}
	}
	var resolvedAt sql.NullTime
	if inv.ResolvedAt != nil {
		resolvedAt = sql.NullTime{Time: inv.ResolvedAt.UTC(), Valid: true}
	}

	return []any{
		inv.Code,
		inv.VaultID,
		inv.InviterPubkey,
		inv.InviteeName,
		encodedRelays,
		inv.CreatedAt.UTC(),
		string(inv.Status),
		redeemedBy,
		resolvedAt,
	}, nil
}

func scanInvitation(row rowScanner) (models.Invitation, error) {
	var (
		inv           models.Invitation
		encodedRelays string
		status        string
		redeemedBy    sql.NullString
		resolvedAt    sql.NullTime
	)

	err := row.Scan(
		&inv.Code,
		&inv.VaultID,
		&inv.InviterPubkey,
		&inv.InviteeName,
		&encodedRelays,
		&inv.CreatedAt,
		&status,
		&redeemedBy,
		&resolvedAt,
	)
	if err != nil {
		return models.Invitation{}, err
	}

	inv.Status = models.InvitationStatus(status)
	if err := json.Unmarshal([]byte(encodedRelays), &inv.Relays); err != nil {
		return models.Invitation{}, fmt.Errorf("%w: relays: %w", ErrEncodingColumn, err)
	}
	if redeemedBy.Valid {
		inv.RedeemedBy = &redeemedBy.String
	}
	if resolvedAt.Valid {
		t := resolvedAt.Time
		inv.ResolvedAt = &t
	}

	return inv, nil
}

// setMap pairs columns with values for squirrel's UPDATE ... SET.
func setMap(columns []string, values []any) map[string]any {
	m := make(map[string]any, len(columns))
	for i, c := range columns {
		m[c] = values[i]
	}
	return m
}
