package service

import (
	"context"

	"github.com/MKhiriev/go-steward-keeper/models"
)

//go:generate mockgen -source=relay_interfaces.go -destination=../mock/servicemock/relay_service_mock.go -package=servicemock

// AuthService verifies the bearer tokens devices present to the relay.
type AuthService interface {
	// ParseToken validates tokenString and returns the token whose subject
	// is the device public key.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// MailboxService is the relay's store-and-forward queue.
type MailboxService interface {
	// PostEnvelope stores an envelope from the authenticated sender and
	// returns its ID.
	PostEnvelope(ctx context.Context, from string, req models.SendEnvelopeRequest) (string, error)
	FetchEnvelopes(ctx context.Context, pubkey string, limit int) ([]models.MailboxEnvelope, error)
	AckEnvelopes(ctx context.Context, pubkey string, ids []string) (int64, error)
}

// AppInfoService reports build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
