// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MaxVaultContentLength is the maximum number of characters a vault may hold.
const MaxVaultContentLength = 4000

// Vault is the aggregate root persisted on a device.
//
// On the owner's device a vault carries the sealed content and the backup
// configuration. On a steward's device the same type is used as a local
// record of someone else's vault: Content is empty and Shards holds the
// shard received from the owner.
//
// Deleting a vault deletes every owned sub-entity (config, shards,
// recovery requests) because they are stored inside the aggregate.
type Vault struct {
	// ID is the globally unique vault identifier (UUID v7).
	ID string `json:"id"`
	// Name is a human-readable label.
	Name string `json:"name"`
	// OwnerPubkey is the 64-char hex public key of the vault owner.
	OwnerPubkey string `json:"owner_pubkey"`
	// Content is the sealed vault content. Empty on steward devices.
	Content []byte `json:"content,omitempty"`
	// Instructions are optional recovery instructions shipped with shards.
	Instructions *string `json:"instructions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// BackupConfig is nil until the owner configures a backup.
	BackupConfig *BackupConfig `json:"backup_config,omitempty"`
	// Shards holds the shards known to this device for the vault.
	Shards []Shard `json:"shards,omitempty"`
	// RecoveryRequests holds the requests initiated or received for the vault.
	RecoveryRequests []RecoveryRequest `json:"recovery_requests,omitempty"`
}

// HeldShard returns the most recent shard stored for the vault, if any.
func (v *Vault) HeldShard() (Shard, bool) {
	if len(v.Shards) == 0 {
		return Shard{}, false
	}

	best := v.Shards[0]
	for _, s := range v.Shards[1:] {
		if s.Version() > best.Version() {
			best = s
		}
	}

	return best, true
}

// FindRecoveryRequest returns a pointer into RecoveryRequests for id, or nil.
func (v *Vault) FindRecoveryRequest(id string) *RecoveryRequest {
	for i := range v.RecoveryRequests {
		if v.RecoveryRequests[i].ID == id {
			return &v.RecoveryRequests[i]
		}
	}

	return nil
}
