package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-steward-keeper/internal/logger"
	"github.com/MKhiriev/go-steward-keeper/models"
)

var envelopeColumns = []string{"id", "from_pubkey", "to_pubkey", "payload", "created_at"}

type mailboxStorage struct {
	db *DB
}

// NewMailboxStorage returns a PostgreSQL-backed [MailboxStorage].
func NewMailboxStorage(db *DB) MailboxStorage {
	return &mailboxStorage{db: db}
}

func (m *mailboxStorage) PutEnvelope(ctx context.Context, env models.MailboxEnvelope) error {
	log := logger.FromContext(ctx)

	query, args, err := m.db.builder.
		Insert("envelopes").
		Columns(envelopeColumns...).
		Values(env.ID, env.FromPubkey, env.ToPubkey, string(env.Payload), env.CreatedAt.UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := m.db.ExecContext(ctx, query, args...); err != nil {
		if m.db.isUniqueViolation(err) {
			return ErrEnvelopeAlreadyExists
		}
		log.Err(err).
			Str("func", "mailboxStorage.PutEnvelope").
			Str("envelope_id", env.ID).
			Bool("retryable", m.db.errorClassificator.Classify(err) == Retryable).
			Msg("failed to insert envelope")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (m *mailboxStorage) FetchEnvelopes(ctx context.Context, pubkey string, limit int) ([]models.MailboxEnvelope, error) {
	log := logger.FromContext(ctx)

	query, args, err := m.db.builder.
		Select(envelopeColumns...).
		From("envelopes").
		Where(squirrel.Eq{"to_pubkey": pubkey}).
		OrderBy("created_at", "id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "mailboxStorage.FetchEnvelopes").Msg("failed to query envelopes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	envelopes := make([]models.MailboxEnvelope, 0)
	for rows.Next() {
		var (
			env     models.MailboxEnvelope
			payload []byte
		)
		if err := rows.Scan(&env.ID, &env.FromPubkey, &env.ToPubkey, &payload, &env.CreatedAt); err != nil {
			log.Err(err).Str("func", "mailboxStorage.FetchEnvelopes").Msg("failed to scan envelope row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		env.Payload = json.RawMessage(payload)
		envelopes = append(envelopes, env)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return envelopes, nil
}

func (m *mailboxStorage) AckEnvelopes(ctx context.Context, pubkey string, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := m.db.builder.
		Delete("envelopes").
		Where(squirrel.Eq{"to_pubkey": pubkey}).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := m.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "mailboxStorage.AckEnvelopes").Msg("failed to delete envelopes")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}
