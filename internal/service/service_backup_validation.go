package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-steward-keeper/internal/validators"
	"github.com/MKhiriev/go-steward-keeper/models"
)

// BackupValidationService checks caller input before it reaches the backup
// service.
type BackupValidationService struct {
	inner     BackupService
	validator validators.Validator
}

func NewBackupValidationService(c *core) BackupServiceWrapper {
	return &BackupValidationService{
		validator: c.validator,
	}
}

func (v *BackupValidationService) CreateConfig(ctx context.Context, vaultID string, threshold, totalShares int, stewards []models.Steward, relays []string, contentHash string) (models.BackupConfig, error) {
	candidate := models.BackupConfig{
		VaultID:     vaultID,
		Threshold:   threshold,
		TotalShards: totalShares,
		Stewards:    withDefaultStatus(stewards),
	}
	if err := v.validator.Validate(ctx, candidate); err != nil {
		return models.BackupConfig{}, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	return v.inner.CreateConfig(ctx, vaultID, threshold, totalShares, stewards, relays, contentHash)
}

func (v *BackupValidationService) GetConfig(ctx context.Context, vaultID string) (models.BackupConfig, error) {
	return v.inner.GetConfig(ctx, vaultID)
}

func (v *BackupValidationService) IsReadyToDistribute(cfg models.BackupConfig) bool {
	return v.inner.IsReadyToDistribute(cfg)
}

func (v *BackupValidationService) GenerateAndDistribute(ctx context.Context, vaultID string, secret []byte) (models.BackupConfig, error) {
	if len(secret) == 0 {
		return models.BackupConfig{}, ErrNoVaultContent
	}
	return v.inner.GenerateAndDistribute(ctx, vaultID, secret)
}

func (v *BackupValidationService) DistributeVaultContent(ctx context.Context, vaultID string) (models.BackupConfig, error) {
	return v.inner.DistributeVaultContent(ctx, vaultID)
}

func (v *BackupValidationService) ApplyStewardConfirmation(ctx context.Context, vaultID, pubkey string, ackVersion int, envelopeID string) error {
	if ackVersion < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, validators.ErrInvalidDistributionVer)
	}
	return v.inner.ApplyStewardConfirmation(ctx, vaultID, pubkey, ackVersion, envelopeID)
}

func (v *BackupValidationService) ApplyStewardError(ctx context.Context, vaultID, pubkey, reason string) error {
	return v.inner.ApplyStewardError(ctx, vaultID, pubkey, reason)
}

func (v *BackupValidationService) ApplyRsvp(ctx context.Context, vaultID, code, pubkey string, name *string) error {
	if !validators.IsValidPubkey(pubkey) {
		return fmt.Errorf("%w: %w", ErrInvalidInvitation, validators.ErrInvalidPubkey)
	}
	return v.inner.ApplyRsvp(ctx, vaultID, code, pubkey, name)
}

func (v *BackupValidationService) ApplyDenial(ctx context.Context, vaultID, code string) error {
	return v.inner.ApplyDenial(ctx, vaultID, code)
}

func (v *BackupValidationService) AttachInvitation(ctx context.Context, vaultID, code, inviteeName string) error {
	if !validators.IsValidInvitationCode(code) {
		return fmt.Errorf("%w: %w", ErrInvalidInvitation, validators.ErrInvalidInvitationCode)
	}
	if strings.TrimSpace(inviteeName) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidInvitation, validators.ErrEmptyInviteeName)
	}
	return v.inner.AttachInvitation(ctx, vaultID, code, inviteeName)
}

func (v *BackupValidationService) RemoveSteward(ctx context.Context, vaultID, pubkey string) error {
	return v.inner.RemoveSteward(ctx, vaultID, pubkey)
}

func (v *BackupValidationService) Wrap(wrapped BackupService) BackupService {
	v.inner = wrapped
	return v
}
