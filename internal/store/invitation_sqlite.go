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

type invitationStorage struct {
	db    *DB
	locks *keyedMutex
}

// NewInvitationStorage returns a SQL-backed [InvitationStorage].
func NewInvitationStorage(db *DB) InvitationStorage {
	return &invitationStorage{
		db:    db,
		locks: newKeyedMutex(),
	}
}

func (s *invitationStorage) CreateInvitation(ctx context.Context, inv models.Invitation) error {
	log := logger.FromContext(ctx)

	values, err := invitationValues(inv)
	if err != nil {
		return err
	}

	query, args, err := s.db.builder.
		Insert("invitations").
		Columns(invitationColumns...).
		Values(values...).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		if s.db.isUniqueViolation(err) {
			return ErrInvitationAlreadyExists
		}
		log.Err(err).
			Str("func", "invitationStorage.CreateInvitation").
			Str("vault_id", inv.VaultID).
			Msg("failed to insert invitation")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *invitationStorage) GetInvitation(ctx context.Context, code string) (models.Invitation, error) {
	return s.getInvitation(ctx, s.db, code)
}

func (s *invitationStorage) getInvitation(ctx context.Context, q querier, code string) (models.Invitation, error) {
	query, args, err := s.db.builder.
		Select(invitationColumns...).
		From("invitations").
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return models.Invitation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	inv, err := scanInvitation(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Invitation{}, ErrInvitationNotFound
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "invitationStorage.getInvitation").
			Msg("failed to scan invitation row")
		return models.Invitation{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return inv, nil
}

func (s *invitationStorage) ListInvitations(ctx context.Context, vaultID string) ([]models.Invitation, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.db.builder.
		Select(invitationColumns...).
		From("invitations").
		Where(squirrel.Eq{"vault_id": vaultID}).
		OrderBy("created_at", "code").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "invitationStorage.ListInvitations").
			Str("vault_id", vaultID).
			Msg("failed to query invitations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var invitations []models.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		invitations = append(invitations, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return invitations, nil
}

// UpdateInvitation applies fn to the stored invitation under the code's
// lock inside one transaction.
func (s *invitationStorage) UpdateInvitation(ctx context.Context, code string, fn InvitationMutator) (models.Invitation, error) {
	unlock := s.locks.Lock(code)
	defer unlock()

	var updated models.Invitation
	err := s.db.withTx(ctx, func(tx *sql.Tx) error {
		inv, err := s.getInvitation(ctx, tx, code)
		if err != nil {
			return err
		}

		if err := fn(&inv); err != nil {
			return err
		}
		inv.Code = code

		values, err := invitationValues(inv)
		if err != nil {
			return err
		}

		query, args, err := s.db.builder.
			Update("invitations").
			SetMap(setMap(invitationColumns[1:], values[1:])).
			Where(squirrel.Eq{"code": code}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "invitationStorage.UpdateInvitation").
				Msg("failed to update invitation")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		updated = inv
		return nil
	})
	if err != nil {
		return models.Invitation{}, err
	}

	return updated, nil
}

func (s *invitationStorage) DeleteVaultInvitations(ctx context.Context, vaultID string) error {
	query, args, err := s.db.builder.
		Delete("invitations").
		Where(squirrel.Eq{"vault_id": vaultID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "invitationStorage.DeleteVaultInvitations").
			Str("vault_id", vaultID).
			Msg("failed to delete invitations")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
