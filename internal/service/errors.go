package service

import "errors"

var (
	// configuration errors
	ErrInvalidConfiguration = errors.New("invalid backup configuration")
	ErrNoBackupConfig       = errors.New("vault has no backup configuration")
	ErrNotReadyToDistribute = errors.New("backup configuration is not ready to distribute")

	// vault errors
	ErrVaultNotFound   = errors.New("vault not found")
	ErrNotVaultOwner   = errors.New("vault is not owned by this device")
	ErrEmptyVaultName  = errors.New("vault name is required")
	ErrContentTooLong  = errors.New("vault content is too long")
	ErrNoVaultContent  = errors.New("vault has no content")
	ErrContentMismatch = errors.New("recovered content does not match vault hash")

	// validation errors
	ErrInvalidShard         = errors.New("invalid shard")
	ErrShardMismatch        = errors.New("shard does not belong to this vault")
	ErrInvalidInvitation    = errors.New("invalid invitation")
	ErrInvalidLink          = errors.New("invalid invitation link")
	ErrInvalidPayload       = errors.New("invalid envelope payload")
	ErrSenderMismatch       = errors.New("envelope sender does not match payload")
	ErrNoShardHeld          = errors.New("no shard held for vault")
	ErrCodeGenerationFailed = errors.New("could not mint a unique invitation code")

	// protocol errors
	ErrStewardNotFound      = errors.New("steward not found")
	ErrAlreadySteward       = errors.New("pubkey is already a steward of this vault")
	ErrInvitationNotFound   = errors.New("invitation not found")
	ErrInvitationNotPending = errors.New("invitation is not pending")
	ErrStaleDistribution    = errors.New("distribution superseded")

	// recovery errors
	ErrRecoveryNotFound    = errors.New("recovery request not found")
	ErrRecoveryNotPending  = errors.New("recovery request is not pending")
	ErrUnknownResponder    = errors.New("responder is not a steward of this recovery request")
	ErrOwnRecoveryRequest  = errors.New("recovery request was initiated by this device")
	ErrIncomingRecoveryReq = errors.New("recovery request was initiated by another device")

	// transport errors
	ErrPartialDistribution = errors.New("shards were not delivered to every steward")
	ErrDistributionFailed  = errors.New("no shard could be delivered")

	// relay errors
	ErrTokenIsExpired  = errors.New("token is expired")
	ErrTokenIsInvalid  = errors.New("token is invalid")
	ErrInvalidEnvelope = errors.New("invalid envelope")
	ErrEmptyAckList    = errors.New("no envelope ids to acknowledge")
)
