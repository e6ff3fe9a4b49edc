package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-steward-keeper/internal/logger"
	"github.com/MKhiriev/go-steward-keeper/models"
)

type vaultStorage struct {
	db    *DB
	locks *keyedMutex
}

// NewVaultStorage returns a SQL-backed [VaultStorage].
func NewVaultStorage(db *DB) VaultStorage {
	return &vaultStorage{
		db:    db,
		locks: newKeyedMutex(),
	}
}

func (s *vaultStorage) CreateVault(ctx context.Context, vault models.Vault) error {
	log := logger.FromContext(ctx)

	values, err := vaultValues(vault)
	if err != nil {
		return err
	}

	query, args, err := s.db.builder.
		Insert("vaults").
		Columns(vaultColumns...).
		Values(values...).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		if s.db.isUniqueViolation(err) {
			return ErrVaultAlreadyExists
		}
		log.Err(err).
			Str("func", "vaultStorage.CreateVault").
			Str("vault_id", vault.ID).
			Msg("failed to insert vault")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *vaultStorage) GetVault(ctx context.Context, id string) (models.Vault, error) {
	return s.getVault(ctx, s.db, id)
}

func (s *vaultStorage) getVault(ctx context.Context, q querier, id string) (models.Vault, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.db.builder.
		Select(vaultColumns...).
		From("vaults").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Vault{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	vault, err := scanVault(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Vault{}, ErrVaultNotFound
		}
		log.Err(err).
			Str("func", "vaultStorage.getVault").
			Str("vault_id", id).
			Msg("failed to scan vault row")
		return models.Vault{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return vault, nil
}

func (s *vaultStorage) ListVaults(ctx context.Context) ([]models.Vault, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.db.builder.
		Select(vaultColumns...).
		From("vaults").
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "vaultStorage.ListVaults").Msg("failed to query vaults")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var vaults []models.Vault
	for rows.Next() {
		vault, err := scanVault(rows)
		if err != nil {
			log.Err(err).Str("func", "vaultStorage.ListVaults").Msg("failed to scan vault row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		vaults = append(vaults, vault)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "vaultStorage.ListVaults").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return vaults, nil
}

// UpdateVault loads the vault, applies fn and writes the result back in one
// transaction while holding the vault's lock. fn must not call back into the
// storage.
func (s *vaultStorage) UpdateVault(ctx context.Context, id string, fn VaultMutator) (models.Vault, error) {
	log := logger.FromContext(ctx)

	unlock := s.locks.Lock(id)
	defer unlock()

	var updated models.Vault
	err := s.db.withTx(ctx, func(tx *sql.Tx) error {
		vault, err := s.getVault(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := fn(&vault); err != nil {
			return err
		}
		vault.ID = id

		values, err := vaultValues(vault)
		if err != nil {
			return err
		}

		// the primary key is never rewritten
		query, args, err := s.db.builder.
			Update("vaults").
			SetMap(setMap(vaultColumns[1:], values[1:])).
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "vaultStorage.UpdateVault").
				Str("vault_id", id).
				Msg("failed to update vault")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		updated = vault
		return nil
	})
	if err != nil {
		return models.Vault{}, err
	}

	return updated, nil
}

func (s *vaultStorage) DeleteVault(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	unlock := s.locks.Lock(id)
	defer unlock()

	query, args, err := s.db.builder.
		Delete("vaults").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "vaultStorage.DeleteVault").
			Str("vault_id", id).
			Msg("failed to delete vault")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrVaultNotFound
	}

	return nil
}
