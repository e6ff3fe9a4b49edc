// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"time"
)

// RecoveryStatus is the status of a recovery request.
//
// Only pending and cancelled are stored. Completed and expired are derived
// from the responses and the clock by [RecoveryRequest.StatusAt].
type RecoveryStatus string

const (
	RecoveryPending   RecoveryStatus = "pending"
	RecoveryCompleted RecoveryStatus = "completed"
	RecoveryCancelled RecoveryStatus = "cancelled"
	RecoveryExpired   RecoveryStatus = "expired"
)

// ResponseStatus is a single steward's answer to a recovery request.
type ResponseStatus string

const (
	ResponsePending  ResponseStatus = "pending"
	ResponseApproved ResponseStatus = "approved"
	ResponseDenied   ResponseStatus = "denied"
)

var (
	// ErrRecoveryCancelled is returned when a cancelled request is modified.
	ErrRecoveryCancelled = errors.New("recovery request is cancelled")
	// ErrApprovalWithoutShard is returned when an approval carries no shard.
	ErrApprovalWithoutShard = errors.New("approved response must carry a shard")
)

// RecoveryResponse is the latest answer of one steward.
type RecoveryResponse struct {
	Status      ResponseStatus `json:"status"`
	Shard       *Shard         `json:"shard,omitempty"`
	RespondedAt *time.Time     `json:"responded_at,omitempty"`
}

// RecoveryRequest gathers shards from stewards until the threshold is met.
type RecoveryRequest struct {
	ID              string    `json:"id"`
	VaultID         string    `json:"vault_id"`
	InitiatorPubkey string    `json:"initiator_pubkey"`
	RequestedAt     time.Time `json:"requested_at"`
	ExpiresAt       time.Time `json:"expires_at"`
	Threshold       int       `json:"threshold"`
	// Responses is keyed by steward pubkey.
	Responses map[string]RecoveryResponse `json:"responses"`
	Status    RecoveryStatus              `json:"status"`
	// Incoming marks a request received from another device, as opposed to
	// one initiated here.
	Incoming    bool       `json:"incoming,omitempty"`
	RecoveredAt *time.Time `json:"recovered_at,omitempty"`
}

// NewRecoveryRequest builds a pending request with every steward pre-seeded
// as pending.
func NewRecoveryRequest(id, vaultID, initiator string, stewards []string, threshold int, now time.Time, ttl time.Duration) RecoveryRequest {
	responses := make(map[string]RecoveryResponse, len(stewards))
	for _, pk := range stewards {
		responses[pk] = RecoveryResponse{Status: ResponsePending}
	}

	return RecoveryRequest{
		ID:              id,
		VaultID:         vaultID,
		InitiatorPubkey: initiator,
		RequestedAt:     now,
		ExpiresAt:       now.Add(ttl),
		Threshold:       threshold,
		Responses:       responses,
		Status:          RecoveryPending,
	}
}

// Upsert records the latest answer of responder. Responses arriving after
// completion or expiry are still recorded; a cancelled request rejects them.
// A denial never keeps a shard.
func (r *RecoveryRequest) Upsert(responder string, approved bool, shard *Shard, at time.Time) error {
	if r.Status == RecoveryCancelled {
		return ErrRecoveryCancelled
	}
	if approved && shard == nil {
		return ErrApprovalWithoutShard
	}

	if r.Responses == nil {
		r.Responses = make(map[string]RecoveryResponse)
	}

	resp := RecoveryResponse{Status: ResponseDenied, RespondedAt: &at}
	if approved {
		s := *shard
		resp.Status = ResponseApproved
		resp.Shard = &s
	}
	r.Responses[responder] = resp

	return nil
}

// ApprovedCount returns the number of approved responses carrying a shard.
func (r *RecoveryRequest) ApprovedCount() int {
	n := 0
	for _, resp := range r.Responses {
		if resp.Status == ResponseApproved && resp.Shard != nil {
			n++
		}
	}

	return n
}

// ApprovedShards returns the shards of approved responses.
func (r *RecoveryRequest) ApprovedShards() []Shard {
	shards := make([]Shard, 0, len(r.Responses))
	for _, resp := range r.Responses {
		if resp.Status == ResponseApproved && resp.Shard != nil {
			shards = append(shards, *resp.Shard)
		}
	}

	return shards
}

// StatusAt derives the effective status at now.
func (r *RecoveryRequest) StatusAt(now time.Time) RecoveryStatus {
	switch {
	case r.Status == RecoveryCancelled:
		return RecoveryCancelled
	case r.ApprovedCount() >= r.Threshold:
		return RecoveryCompleted
	case now.After(r.ExpiresAt):
		return RecoveryExpired
	default:
		return RecoveryPending
	}
}
