// Package service implements the custody protocol: vault management, backup
// configuration with shard distribution, invitation redemption, threshold
// recovery, the steward-side shard custody and the inbound dispatcher that
// routes envelopes to them.
//
// Every mutation of a vault record goes through
// [store.VaultStorage.UpdateVault], which serializes writers per vault.
// Mutators only compute the new state and the envelopes to send; envelopes
// are sent after the write commits.
package service

import (
	"math/big"
	"time"

	"github.com/MKhiriev/go-steward-keeper/internal/config"
	"github.com/MKhiriev/go-steward-keeper/internal/crypto"
	"github.com/MKhiriev/go-steward-keeper/internal/gateway"
	"github.com/MKhiriev/go-steward-keeper/internal/sharing"
	"github.com/MKhiriev/go-steward-keeper/internal/store"
	"github.com/MKhiriev/go-steward-keeper/internal/utils"
	"github.com/MKhiriev/go-steward-keeper/internal/validators"
)

// IDGenerator mints identifiers for vaults, stewards and recovery requests.
type IDGenerator interface {
	Generate() string
}

// core carries the dependencies shared by every service of one device.
type core struct {
	self        string
	displayName string

	vaults      store.VaultStorage
	invitations store.InvitationStorage
	sealer      crypto.ContentSealer
	sender      *sender
	validator   validators.Validator

	ids         IDGenerator
	now         func() time.Time
	modulus     *big.Int
	recoveryTTL time.Duration
	relays      []string
}

// Option customizes [NewServices].
type Option func(*core)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *core) { c.now = now }
}

// WithModulus sets the prime field used for new splits.
func WithModulus(p *big.Int) Option {
	return func(c *core) { c.modulus = p }
}

// WithIDGenerator replaces the UUIDv7 generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(c *core) { c.ids = g }
}

type Services struct {
	VaultService      VaultService
	BackupService     BackupService
	InvitationService InvitationService
	RecoveryService   RecoveryService
	CustodyService    CustodyService
	Dispatcher        Dispatcher
}

func NewServices(app config.ClientApp, storages *store.ClientStorages, gw gateway.Gateway, sealer crypto.ContentSealer, opts ...Option) *Services {
	c := &core{
		self:        app.Pubkey,
		displayName: app.DisplayName,
		vaults:      storages.Vaults,
		invitations: storages.Invitations,
		sealer:      sealer,
		sender:      newSender(gw, app.FanOutLimit),
		validator:   validators.NewProtocolValidator(),
		ids:         utils.NewUUIDGenerator(),
		now:         time.Now,
		modulus:     sharing.DefaultModulus(),
		recoveryTTL: app.RecoveryExpiration,
		relays:      app.Relays,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.recoveryTTL <= 0 {
		c.recoveryTTL = config.DefaultRecoveryExpiration
	}

	vaultSvc := NewVaultService(c)
	invitationSvc := NewInvitationService(c)
	backupSvc := NewBackupValidationService(c).Wrap(NewBackupService(c, invitationSvc))
	invitationSvc.backup = backupSvc
	recoverySvc := NewRecoveryService(c)
	custodySvc := NewCustodyService(c)

	return &Services{
		VaultService:      vaultSvc,
		BackupService:     backupSvc,
		InvitationService: invitationSvc,
		RecoveryService:   recoverySvc,
		CustodyService:    custodySvc,
		Dispatcher:        NewDispatcher(c.self, backupSvc, invitationSvc, recoverySvc, custodySvc),
	}
}

func (c *core) nowUTC() time.Time {
	return c.now().UTC()
}

// relaysOr returns relays, or the device defaults when relays is empty.
func (c *core) relaysOr(relays []string) []string {
	if len(relays) > 0 {
		return relays
	}
	return c.relays
}
