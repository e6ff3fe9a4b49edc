package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-steward-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/servicemock/service_mock.go -package=servicemock

// VaultService manages the vaults owned by this device. Content is sealed
// at rest and only opened on explicit request.
type VaultService interface {
	CreateVault(ctx context.Context, name, content string, instructions *string) (models.Vault, error)
	UpdateContent(ctx context.Context, vaultID, content string) (models.Vault, error)
	OpenContent(ctx context.Context, vaultID string) (string, error)
	GetVault(ctx context.Context, vaultID string) (models.Vault, error)
	ListVaults(ctx context.Context) ([]models.Vault, error)
	// DeleteVault removes the vault and every invitation minted for it.
	DeleteVault(ctx context.Context, vaultID string) error
}

// BackupService owns a vault's backup configuration and drives the steward
// state machine.
type BackupService interface {
	// CreateConfig replaces the vault's configuration. Stewards with a
	// pubkey start in awaitingKey, placeholders without one in invited.
	// Stewards dropped from a previous configuration are notified.
	CreateConfig(ctx context.Context, vaultID string, threshold, totalShares int, stewards []models.Steward, relays []string, contentHash string) (models.BackupConfig, error)
	GetConfig(ctx context.Context, vaultID string) (models.BackupConfig, error)
	IsReadyToDistribute(cfg models.BackupConfig) bool

	// GenerateAndDistribute splits secret and sends one shard per steward.
	// Successful deliveries stand even when others fail; in that case the
	// returned error wraps [ErrPartialDistribution].
	GenerateAndDistribute(ctx context.Context, vaultID string, secret []byte) (models.BackupConfig, error)
	// DistributeVaultContent opens the vault's sealed content and
	// distributes it.
	DistributeVaultContent(ctx context.Context, vaultID string) (models.BackupConfig, error)

	// ApplyStewardConfirmation moves the steward to holdingKey when
	// ackVersion is the current distribution version. Stale
	// acknowledgments are logged and ignored.
	ApplyStewardConfirmation(ctx context.Context, vaultID, pubkey string, ackVersion int, envelopeID string) error
	ApplyStewardError(ctx context.Context, vaultID, pubkey, reason string) error
	ApplyRsvp(ctx context.Context, vaultID, code, pubkey string, name *string) error
	ApplyDenial(ctx context.Context, vaultID, code string) error
	// AttachInvitation binds code to the first unbound placeholder named
	// inviteeName, or appends a new invited placeholder.
	AttachInvitation(ctx context.Context, vaultID, code, inviteeName string) error
	RemoveSteward(ctx context.Context, vaultID, pubkey string) error
}

// RsvpOutcome is the result of processing an invitation RSVP.
type RsvpOutcome string

const (
	RsvpRedeemed      RsvpOutcome = "redeemed"
	RsvpInvalid       RsvpOutcome = "invalid"
	RsvpAlreadyMember RsvpOutcome = "already_member"
)

// InvitationLink is the parsed form of an invitation link.
type InvitationLink struct {
	Code        string
	OwnerPubkey string
	Relays      []string
}

// InvitationService mints invitation codes and processes redemption on the
// owner's side, and accepts or declines invitations on the invitee's side.
type InvitationService interface {
	GenerateInvitation(ctx context.Context, vaultID, inviteeName, ownerPubkey string, relays []string) (models.Invitation, string, error)
	ListInvitations(ctx context.Context, vaultID string) ([]models.Invitation, error)

	// HandleRsvp redeems code for responderPubkey exactly once. Unknown
	// or already used codes answer the responder with invitation_invalid.
	HandleRsvp(ctx context.Context, code, responderPubkey string, responderName *string) (RsvpOutcome, error)
	HandleDenial(ctx context.Context, code string) error
	HandleConfigChangeRemoval(ctx context.Context, vaultID, removedPubkey string, relays []string) error

	AcceptInvitation(ctx context.Context, link string) (InvitationLink, error)
	DeclineInvitation(ctx context.Context, link string) (InvitationLink, error)
}

// RecoveryService coordinates threshold recovery. The initiator side
// collects responses, the steward side answers incoming requests.
type RecoveryService interface {
	InitiateRecovery(ctx context.Context, vaultID string, stewardPubkeys []string, threshold int, expiration time.Duration) (models.RecoveryRequest, error)
	RespondToRecoveryRequest(ctx context.Context, requestID, responderPubkey string, approved bool, shard *models.Shard) (models.RecoveryRequest, error)
	CancelRecovery(ctx context.Context, requestID string) (models.RecoveryRequest, error)
	// PerformRecovery reconstructs the secret once enough approvals have
	// arrived. The request is left untouched on failure.
	PerformRecovery(ctx context.Context, requestID string) ([]byte, error)

	// HandleRecoveryRequest stores a request from another device on the
	// local custody record.
	HandleRecoveryRequest(ctx context.Context, from string, msg models.RecoveryRequestMessage) error
	// SubmitResponse answers an incoming request, attaching the held shard
	// only when approved.
	SubmitResponse(ctx context.Context, requestID string, approved bool) (models.RecoveryRequest, error)

	GetRecoveryRequest(ctx context.Context, requestID string) (models.RecoveryRequest, error)
	ListRecoveryRequests(ctx context.Context, vaultID string) ([]models.RecoveryRequest, error)
}

// CustodyService keeps the shards this device holds for other owners.
type CustodyService interface {
	ReceiveShard(ctx context.Context, env models.Envelope, shard models.Shard) error
	HandleRemoval(ctx context.Context, from, vaultID string) error
	ListHeldShards(ctx context.Context) ([]models.Shard, error)
}

// Dispatcher routes inbound envelopes to the service owning their type.
type Dispatcher interface {
	Dispatch(ctx context.Context, env models.Envelope) error
}

// BackupServiceWrapper decorates a BackupService, e.g. with validation.
type BackupServiceWrapper interface {
	Wrap(BackupService) BackupService
}
