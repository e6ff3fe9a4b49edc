package validators

import (
	"encoding/hex"

	"github.com/MKhiriev/go-steward-keeper/models"
)

const (
	FieldShare               = "share"
	FieldPrimeMod            = "prime_mod"
	FieldThreshold           = "threshold"
	FieldTotalShards         = "total_shards"
	FieldShardIndex          = "shard_index"
	FieldCreatorPubkey       = "creator_pubkey"
	FieldRecipientPubkey     = "recipient_pubkey"
	FieldDistributionVersion = "distribution_version"
	FieldVaultID             = "vault_id"
	FieldStewards            = "stewards"
	FieldCode                = "code"
	FieldInviterPubkey       = "inviter_pubkey"
	FieldInviteeName         = "invitee_name"
	FieldStatus              = "status"
)

// PubkeyLength is the length of a hex encoded public key.
const PubkeyLength = 64

// IsValidPubkey reports whether s is exactly 64 hex characters.
func IsValidPubkey(s string) bool {
	if len(s) != PubkeyLength {
		return false
	}
	_, err := hex.DecodeString(s)

	return err == nil
}

// ValidateShard checks the shard invariants and returns a [*FieldError] for
// the first violated field, or nil.
func ValidateShard(shard models.Shard) error {
	switch {
	case shard.Share == "":
		return fieldError(FieldShare, ErrEmptyShare)
	case shard.PrimeMod == "":
		return fieldError(FieldPrimeMod, ErrEmptyModulus)
	case shard.Threshold < 1:
		return fieldError(FieldThreshold, ErrInvalidThreshold)
	case shard.TotalShards < 1:
		return fieldError(FieldTotalShards, ErrInvalidTotalShards)
	case shard.Threshold > shard.TotalShards:
		return fieldError(FieldThreshold, ErrInvalidThreshold)
	case shard.ShardIndex < 0 || shard.ShardIndex >= shard.TotalShards:
		return fieldError(FieldShardIndex, ErrInvalidShardIndex)
	case shard.CreatorPubkey == "":
		return fieldError(FieldCreatorPubkey, ErrEmptyCreatorPubkey)
	case shard.RecipientPubkey != nil && !IsValidPubkey(*shard.RecipientPubkey):
		return fieldError(FieldRecipientPubkey, ErrInvalidPubkey)
	case shard.DistributionVersion != nil && *shard.DistributionVersion < 0:
		return fieldError(FieldDistributionVersion, ErrInvalidDistributionVer)
	case shard.VaultID != nil && *shard.VaultID == "":
		return fieldError(FieldVaultID, ErrEmptyVaultID)
	}

	return nil
}
