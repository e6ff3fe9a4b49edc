// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// MessageType discriminates protocol payloads carried inside envelopes.
type MessageType string

const (
	MessageShardData         MessageType = "shard_data"
	MessageShardConfirmation MessageType = "shard_confirmation"
	MessageShardError        MessageType = "shard_error"
	MessageInvitationRSVP    MessageType = "invitation_rsvp"
	MessageInvitationDenial  MessageType = "invitation_denial"
	MessageInvitationInvalid MessageType = "invitation_invalid"
	MessageStewardRemoved    MessageType = "steward_removed"
	MessageRecoveryRequest   MessageType = "recovery_request"
	MessageRecoveryResponse  MessageType = "recovery_response"
)

// Envelope is a decrypted, sender-authenticated unit delivered by the
// messaging gateway. Ordering between envelopes is not guaranteed.
type Envelope struct {
	ID         string          `json:"id"`
	FromPubkey string          `json:"from_pubkey"`
	ToPubkey   string          `json:"to_pubkey"`
	Payload    json.RawMessage `json:"payload"`
	CreatedAt  time.Time       `json:"created_at"`
}

// MessageHeader is decoded first to route a payload by its type.
type MessageHeader struct {
	Type MessageType `json:"type"`
}

// ShardMessage carries a shard from the owner to a steward. The shard fields
// are inlined next to the type discriminator.
type ShardMessage struct {
	Type MessageType `json:"type"`
	Shard
}

// ShardConfirmation is sent by a steward once a shard is stored.
type ShardConfirmation struct {
	Type                MessageType `json:"type"`
	VaultID             string      `json:"vault_id"`
	DistributionVersion int         `json:"distribution_version"`
	ShardIndex          int         `json:"shard_index"`
}

// ShardErrorMessage is sent by a steward that could not accept a shard.
type ShardErrorMessage struct {
	Type    MessageType `json:"type"`
	VaultID string      `json:"vault_id"`
	Reason  string      `json:"reason"`
}

// InvitationRSVP accepts an invitation.
type InvitationRSVP struct {
	Type            MessageType `json:"type"`
	Code            string      `json:"code"`
	ResponderPubkey string      `json:"responder_pubkey"`
	ResponderName   *string     `json:"responder_name,omitempty"`
}

// InvitationDenial declines an invitation.
type InvitationDenial struct {
	Type MessageType `json:"type"`
	Code string      `json:"code"`
}

// InvitationInvalid tells an invitee that the code it used is unknown or
// already resolved.
type InvitationInvalid struct {
	Type   MessageType `json:"type"`
	Code   string      `json:"code"`
	Reason string      `json:"reason"`
}

// StewardRemovedMessage tells a steward it no longer belongs to a vault's backup.
type StewardRemovedMessage struct {
	Type    MessageType `json:"type"`
	VaultID string      `json:"vault_id"`
}

// RecoveryRequestMessage asks a steward to release its shard.
// Timestamps are unix seconds.
type RecoveryRequestMessage struct {
	Type              MessageType `json:"type"`
	RecoveryRequestID string      `json:"recovery_request_id"`
	VaultID           string      `json:"vault_id"`
	InitiatorPubkey   string      `json:"initiator_pubkey"`
	RequestedAt       int64       `json:"requested_at"`
	ExpiresAt         int64       `json:"expires_at"`
	Threshold         int         `json:"threshold"`
}

// RecoveryResponseMessage answers a recovery request. ShardData is present
// only when Approved is true.
type RecoveryResponseMessage struct {
	Type              MessageType `json:"type"`
	RecoveryRequestID string      `json:"recovery_request_id"`
	VaultID           string      `json:"vault_id"`
	ResponderPubkey   string      `json:"responder_pubkey"`
	Approved          bool        `json:"approved"`
	RespondedAt       int64       `json:"responded_at"`
	ShardData         *Shard      `json:"shard_data,omitempty"`
}
