package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells a caller whether a failed statement is worth
// repeating.
type ErrorClassification int

const (
	// NonRetryable covers constraint violations, bad SQL, bad data and every
	// error the classifier does not recognise.
	NonRetryable ErrorClassification = iota
	// Retryable covers lost connections, serialization failures and
	// deadlock victims.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] over pgconn errors.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError and classifies its SQLSTATE.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// IsUniqueViolation reports SQLSTATE 23505. The mailbox turns it into
// [ErrEnvelopeAlreadyExists].
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// ClassifyPgError treats class 08 (connection exception), class 40
// (transaction rollback) and a server that is starting or shutting down as
// retryable.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code

	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		code == pgerrcode.CannotConnectNow,
		code == pgerrcode.AdminShutdown:
		return Retryable
	default:
		return NonRetryable
	}
}
