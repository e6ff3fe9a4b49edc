package store

import (
	"context"

	"github.com/MKhiriev/go-steward-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// MailboxStorage is the relay's store-and-forward queue. Envelopes stay in
// the recipient's mailbox until acknowledged.
type MailboxStorage interface {
	// PutEnvelope stores env. A repeated ID returns [ErrEnvelopeAlreadyExists].
	PutEnvelope(ctx context.Context, env models.MailboxEnvelope) error

	// FetchEnvelopes returns up to limit envelopes addressed to pubkey,
	// oldest first.
	FetchEnvelopes(ctx context.Context, pubkey string, limit int) ([]models.MailboxEnvelope, error)

	// AckEnvelopes deletes the listed envelopes from pubkey's mailbox and
	// returns how many were removed. IDs addressed to someone else are ignored.
	AckEnvelopes(ctx context.Context, pubkey string, ids []string) (int64, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
