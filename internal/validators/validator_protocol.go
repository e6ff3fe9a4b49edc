package validators

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-steward-keeper/models"
)

// InvitationCodeLength is the length of an encoded invitation code.
const InvitationCodeLength = 43

var knownStewardStatuses = map[models.StewardStatus]struct{}{
	models.StewardInvited:     {},
	models.StewardAwaitingKey: {},
	models.StewardHoldingKey:  {},
	models.StewardDenied:      {},
	models.StewardError:       {},
	models.StewardRemoved:     {},
}

// ProtocolValidator validates protocol entities: shards, backup configs,
// invitations and recovery responses.
type ProtocolValidator struct {
}

func NewProtocolValidator() Validator {
	return &ProtocolValidator{}
}

func (v *ProtocolValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Shard:
		return ValidateShard(value)
	case *models.Shard:
		return ValidateShard(*value)

	case models.BackupConfig:
		return v.validateBackupConfig(ctx, value, fields...)
	case *models.BackupConfig:
		return v.validateBackupConfig(ctx, *value, fields...)

	case models.Invitation:
		return v.validateInvitation(ctx, value, fields...)
	case *models.Invitation:
		return v.validateInvitation(ctx, *value, fields...)

	case models.RecoveryResponse:
		return v.validateRecoveryResponse(ctx, value)
	case *models.RecoveryResponse:
		return v.validateRecoveryResponse(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

// IsValidInvitationCode reports whether code decodes to 32 bytes of raw
// URL-safe base64.
func IsValidInvitationCode(code string) bool {
	if len(code) != InvitationCodeLength {
		return false
	}
	raw, err := base64.RawURLEncoding.DecodeString(code)

	return err == nil && len(raw) == 32
}

func (v *ProtocolValidator) validateBackupConfig(_ context.Context, cfg models.BackupConfig, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldVaultID, FieldThreshold, FieldTotalShards, FieldStewards}
	}

	for _, f := range fields {
		switch f {
		case FieldVaultID:
			if cfg.VaultID == "" {
				return fieldError(FieldVaultID, ErrEmptyVaultID)
			}
		case FieldThreshold:
			if cfg.Threshold < 1 || cfg.Threshold > cfg.TotalShards {
				return fieldError(FieldThreshold, ErrInvalidThreshold)
			}
		case FieldTotalShards:
			if cfg.TotalShards < 1 {
				return fieldError(FieldTotalShards, ErrInvalidTotalShards)
			}
			if cfg.TotalShards != len(cfg.Stewards) {
				return fieldError(FieldTotalShards, ErrStewardCountMismatch)
			}
		case FieldStewards:
			seen := make(map[string]struct{}, len(cfg.Stewards))
			for i, s := range cfg.Stewards {
				if _, ok := knownStewardStatuses[s.Status]; !ok {
					return fieldError(fmt.Sprintf("%s[%d].%s", FieldStewards, i, FieldStatus), ErrInvalidStewardStatus)
				}
				if s.Pubkey == "" {
					continue
				}
				if !IsValidPubkey(s.Pubkey) {
					return fieldError(fmt.Sprintf("%s[%d].pubkey", FieldStewards, i), ErrInvalidPubkey)
				}
				if _, dup := seen[s.Pubkey]; dup {
					return fieldError(fmt.Sprintf("%s[%d].pubkey", FieldStewards, i), ErrDuplicateSteward)
				}
				seen[s.Pubkey] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ProtocolValidator) validateInvitation(_ context.Context, inv models.Invitation, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCode, FieldVaultID, FieldInviterPubkey, FieldInviteeName}
	}

	for _, f := range fields {
		switch f {
		case FieldCode:
			if !IsValidInvitationCode(inv.Code) {
				return fieldError(FieldCode, ErrInvalidInvitationCode)
			}
		case FieldVaultID:
			if inv.VaultID == "" {
				return fieldError(FieldVaultID, ErrEmptyVaultID)
			}
		case FieldInviterPubkey:
			if !IsValidPubkey(inv.InviterPubkey) {
				return fieldError(FieldInviterPubkey, ErrInvalidPubkey)
			}
		case FieldInviteeName:
			if inv.InviteeName == "" {
				return fieldError(FieldInviteeName, ErrEmptyInviteeName)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ProtocolValidator) validateRecoveryResponse(_ context.Context, resp models.RecoveryResponse) error {
	switch resp.Status {
	case models.ResponseApproved:
		if resp.Shard == nil {
			return fieldError(FieldShare, ErrMissingShard)
		}
		return ValidateShard(*resp.Shard)
	case models.ResponseDenied, models.ResponsePending:
		if resp.Shard != nil {
			return fieldError(FieldShare, ErrUnexpectedShard)
		}
		return nil
	default:
		return fieldError(FieldStatus, ErrInvalidResponseStatus)
	}
}
