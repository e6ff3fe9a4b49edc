// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// BackupConfig describes how a vault secret is split among stewards.
//
// Invariants: 1 <= Threshold <= TotalShards and TotalShards == len(Stewards)
// once the config is finalized. DistributionVersion only grows.
type BackupConfig struct {
	VaultID string `json:"vault_id"`
	// Threshold is M, the number of shards needed to reconstruct.
	Threshold int `json:"threshold"`
	// TotalShards is N, the number of shards produced.
	TotalShards int       `json:"total_shards"`
	Stewards    []Steward `json:"stewards"`
	Relays      []string  `json:"relays"`
	// ContentHash is the hex SHA-256 of the plaintext last distributed.
	ContentHash         string    `json:"content_hash"`
	DistributionVersion int       `json:"distribution_version"`
	LastUpdated         time.Time `json:"last_updated"`
	// ContentChanged is set when the vault content was edited after the
	// last distribution; the shards held by stewards still carry the old
	// content until the owner distributes again.
	ContentChanged bool `json:"content_changed,omitempty"`
}

// IsReadyToDistribute reports whether no steward is still invited and at
// least one steward awaits a key.
func (c *BackupConfig) IsReadyToDistribute() bool {
	if c == nil {
		return false
	}

	awaiting := 0
	for _, s := range c.Stewards {
		switch s.Status {
		case StewardInvited:
			return false
		case StewardAwaitingKey:
			awaiting++
		}
	}

	return awaiting > 0
}

// StewardByPubkey returns the index of the steward with pubkey, or -1.
func (c *BackupConfig) StewardByPubkey(pubkey string) int {
	if pubkey == "" {
		return -1
	}
	for i, s := range c.Stewards {
		if s.Pubkey == pubkey {
			return i
		}
	}

	return -1
}

// StewardByInviteCode returns the index of the steward created for code, or -1.
func (c *BackupConfig) StewardByInviteCode(code string) int {
	for i, s := range c.Stewards {
		if s.InviteCode != nil && *s.InviteCode == code {
			return i
		}
	}

	return -1
}

// PruneTerminal drops denied and removed stewards and keeps TotalShards equal
// to the number of remaining stewards. Threshold is left untouched and is
// checked again before the next distribution.
func (c *BackupConfig) PruneTerminal() {
	kept := c.Stewards[:0]
	for _, s := range c.Stewards {
		if !s.Status.IsTerminal() {
			kept = append(kept, s)
		}
	}
	c.Stewards = kept
	c.TotalShards = len(c.Stewards)
}

// CountByStatus returns how many stewards are in status.
func (c BackupConfig) CountByStatus(status StewardStatus) int {
	n := 0
	for _, s := range c.Stewards {
		if s.Status == status {
			n++
		}
	}

	return n
}
