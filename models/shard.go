// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Peer is an entry of the steward roster shipped with every shard so a
// steward knows who else to contact during recovery.
type Peer struct {
	Name   string `json:"name,omitempty"`
	Pubkey string `json:"pubkey"`
}

// Shard is the serializable form of one share plus the metadata a steward
// needs to take part in recovery. Timestamps are unix seconds.
//
// Optional fields are pointers or slices tagged omitempty so the canonical
// JSON encoding leaves them out when absent.
type Shard struct {
	// Share is the base64 encoding of the share value.
	Share string `json:"share"`
	// Threshold is M.
	Threshold int `json:"threshold"`
	// ShardIndex is zero-based; the evaluation point is ShardIndex+1.
	ShardIndex int `json:"shard_index"`
	// TotalShards is N.
	TotalShards int `json:"total_shards"`
	// PrimeMod is the base64 encoding of the field modulus.
	PrimeMod      string `json:"prime_mod"`
	CreatorPubkey string `json:"creator_pubkey"`
	CreatedAt     int64  `json:"created_at"`

	VaultID             *string  `json:"vault_id,omitempty"`
	VaultName           *string  `json:"vault_name,omitempty"`
	Peers               []Peer   `json:"peers,omitempty"`
	OwnerName           *string  `json:"owner_name,omitempty"`
	Instructions        *string  `json:"instructions,omitempty"`
	RecipientPubkey     *string  `json:"recipient_pubkey,omitempty"`
	IsReceived          *bool    `json:"is_received,omitempty"`
	ReceivedAt          *int64   `json:"received_at,omitempty"`
	SourceEnvelopeID    *string  `json:"source_envelope_id,omitempty"`
	Relays              []string `json:"relays,omitempty"`
	DistributionVersion *int     `json:"distribution_version,omitempty"`
}

// Normalize drops empty optional lists. omitempty leaves them out of the
// JSON form, so only nil lists survive a round trip unchanged.
func (s *Shard) Normalize() {
	if len(s.Peers) == 0 {
		s.Peers = nil
	}
	if len(s.Relays) == 0 {
		s.Relays = nil
	}
}

// Version returns the distribution version or 0 when absent.
func (s Shard) Version() int {
	if s.DistributionVersion == nil {
		return 0
	}

	return *s.DistributionVersion
}

// Vault returns the vault id or an empty string when absent.
func (s Shard) Vault() string {
	if s.VaultID == nil {
		return ""
	}

	return *s.VaultID
}
