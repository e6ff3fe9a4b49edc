package models

import (
	"errors"
	"time"
)

// InvitationStatus is the lifecycle state of an invitation code.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationRedeemed InvitationStatus = "redeemed"
	InvitationDenied   InvitationStatus = "denied"
)

// ErrInvitationNotPending is returned when a code that was already redeemed or
// denied is resolved again.
var ErrInvitationNotPending = errors.New("invitation is not pending")

// Invitation is a single-use code issued by a vault owner to a prospective
// steward. The code is a 43 character URL-safe base64 string.
type Invitation struct {
	Code          string           `json:"code"`
	VaultID       string           `json:"vault_id"`
	InviterPubkey string           `json:"inviter_pubkey"`
	InviteeName   string           `json:"invitee_name"`
	Relays        []string         `json:"relays"`
	CreatedAt     time.Time        `json:"created_at"`
	Status        InvitationStatus `json:"status"`
	// RedeemedBy is the pubkey that redeemed the code.
	RedeemedBy *string    `json:"redeemed_by,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

// Redeem moves a pending invitation to redeemed.
func (i *Invitation) Redeem(by string, at time.Time) error {
	if i.Status != InvitationPending {
		return ErrInvitationNotPending
	}

	i.Status = InvitationRedeemed
	i.RedeemedBy = &by
	i.ResolvedAt = &at
	return nil
}

// Deny moves a pending invitation to denied.
func (i *Invitation) Deny(at time.Time) error {
	if i.Status != InvitationPending {
		return ErrInvitationNotPending
	}

	i.Status = InvitationDenied
	i.ResolvedAt = &at
	return nil
}
