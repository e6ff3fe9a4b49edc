package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyShare             = errors.New("share is required")
	ErrEmptyModulus           = errors.New("prime modulus is required")
	ErrInvalidThreshold       = errors.New("threshold must be between 1 and total shards")
	ErrInvalidTotalShards     = errors.New("total shards must be positive")
	ErrInvalidShardIndex      = errors.New("shard index out of range")
	ErrEmptyCreatorPubkey     = errors.New("creator pubkey is required")
	ErrInvalidPubkey          = errors.New("pubkey must be 64 hex characters")
	ErrEmptyVaultID           = errors.New("vault id is required")
	ErrInvalidInvitationCode  = errors.New("invitation code must be 43 url-safe base64 characters")
	ErrEmptyInviteeName       = errors.New("invitee name is required")
	ErrStewardCountMismatch   = errors.New("total shards must equal the number of stewards")
	ErrDuplicateSteward       = errors.New("steward pubkey is listed twice")
	ErrInvalidStewardStatus   = errors.New("invalid steward status")
	ErrInvalidResponseStatus  = errors.New("invalid recovery response status")
	ErrMissingShard           = errors.New("approved response must carry a shard")
	ErrUnexpectedShard        = errors.New("only approved responses carry a shard")
	ErrInvalidDistributionVer = errors.New("distribution version must not be negative")
)

// FieldError identifies the first field that failed validation.
// errors.Is matches the wrapped sentinel.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldError(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}
