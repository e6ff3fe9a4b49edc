// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"time"
)

// StewardStatus is the lifecycle state of a steward within a backup config.
type StewardStatus string

const (
	StewardInvited     StewardStatus = "invited"
	StewardAwaitingKey StewardStatus = "awaitingKey"
	StewardHoldingKey  StewardStatus = "holdingKey"
	StewardDenied      StewardStatus = "denied"
	StewardError       StewardStatus = "error"
	StewardRemoved     StewardStatus = "removed"
)

// StewardEvent is an input to the steward state machine.
type StewardEvent string

const (
	EventRsvpReceived     StewardEvent = "rsvp_received"
	EventDenyReceived     StewardEvent = "deny_received"
	EventConfirmReceived  StewardEvent = "confirm_received"
	EventDeliveryFailed   StewardEvent = "delivery_failed"
	EventShardDistributed StewardEvent = "shard_distributed"
	EventRemoved          StewardEvent = "removed"
)

// ErrInvalidStewardTransition is returned when an event is not allowed in the
// steward's current state.
var ErrInvalidStewardTransition = errors.New("invalid steward state transition")

var stewardTransitions = map[StewardStatus]map[StewardEvent]StewardStatus{
	StewardInvited: {
		EventRsvpReceived: StewardAwaitingKey,
		EventDenyReceived: StewardDenied,
		EventRemoved:      StewardRemoved,
	},
	StewardAwaitingKey: {
		EventConfirmReceived:  StewardHoldingKey,
		EventDeliveryFailed:   StewardError,
		EventShardDistributed: StewardAwaitingKey,
		EventRemoved:          StewardRemoved,
	},
	StewardHoldingKey: {
		EventConfirmReceived:  StewardHoldingKey,
		EventDeliveryFailed:   StewardError,
		EventShardDistributed: StewardAwaitingKey,
		EventRemoved:          StewardRemoved,
	},
	StewardError: {
		EventShardDistributed: StewardAwaitingKey,
		EventDeliveryFailed:   StewardError,
		EventRemoved:          StewardRemoved,
	},
}

// Next returns the state reached from s on event e.
// Terminal states (denied, removed) accept no events.
func (s StewardStatus) Next(e StewardEvent) (StewardStatus, error) {
	next, ok := stewardTransitions[s][e]
	if !ok {
		return s, fmt.Errorf("%w: %s on %s", ErrInvalidStewardTransition, e, s)
	}

	return next, nil
}

// IsTerminal reports whether no further transitions are possible.
func (s StewardStatus) IsTerminal() bool {
	return s == StewardDenied || s == StewardRemoved
}

// Steward is a trusted party that holds one shard of a vault.
type Steward struct {
	// ID is a local identifier (UUID v7).
	ID string `json:"id"`
	// Pubkey is empty while the steward is a placeholder for an
	// unanswered invitation.
	Pubkey     string        `json:"pubkey,omitempty"`
	Name       *string       `json:"name,omitempty"`
	InviteCode *string       `json:"invite_code,omitempty"`
	Status     StewardStatus `json:"status"`
	LastSeen   *time.Time    `json:"last_seen,omitempty"`
	// KeyShare is an optional locally kept copy of the steward's share value.
	KeyShare *string `json:"key_share,omitempty"`
	// SourceEnvelopeID is the id of the shard envelope last sent to the steward.
	SourceEnvelopeID *string `json:"source_envelope_id,omitempty"`

	AckAt                  *time.Time `json:"ack_at,omitempty"`
	AckEnvelopeID          *string    `json:"ack_envelope_id,omitempty"`
	AckDistributionVersion *int       `json:"ack_distribution_version,omitempty"`
	ErrorReason            *string    `json:"error_reason,omitempty"`
}

// Apply moves the steward to the state reached on e.
func (s *Steward) Apply(e StewardEvent) error {
	next, err := s.Status.Next(e)
	if err != nil {
		return err
	}

	s.Status = next
	return nil
}

// DisplayName returns the steward name or a shortened pubkey.
func (s Steward) DisplayName() string {
	if s.Name != nil && *s.Name != "" {
		return *s.Name
	}
	if len(s.Pubkey) > 8 {
		return s.Pubkey[:8]
	}

	return s.Pubkey
}
