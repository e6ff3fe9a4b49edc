// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the human-readable messages the steward CLI prints for
// protocol failures.
//
// Message strings are kept in one place so that every command reports the
// same outcome with the same wording.
package app

import (
	"errors"

	"github.com/MKhiriev/go-steward-keeper/internal/crypto"
	"github.com/MKhiriev/go-steward-keeper/internal/service"
	"github.com/MKhiriev/go-steward-keeper/internal/sharing"
)

const (
	MsgVaultNotFound        = "no such vault on this device"
	MsgNotVaultOwner        = "this device does not own the vault"
	MsgInvalidConfiguration = "the backup configuration is invalid: check the threshold and the steward list"
	MsgNoBackupConfig       = "configure a backup for the vault first"
	MsgNotReady             = "some stewards have not accepted their invitation yet"
	MsgInvalidLink          = "the invitation link is malformed"
	MsgInvitationNotFound   = "no such invitation"
	MsgInvitationResolved   = "the invitation was already used or declined"
	MsgRecoveryNotFound     = "no such recovery request"
	MsgRecoveryNotPending   = "the recovery request is no longer pending"
	MsgIncomingRequest      = "the recovery request belongs to another device"
	MsgOwnRequest           = "you initiated this recovery request"
	MsgNoShardHeld          = "this device holds no shard for the vault"
	MsgInsufficientShares   = "not enough stewards have approved yet"
	MsgReconstruction       = "the approved shards do not reconstruct the vault"
	MsgPartialDistribution  = "some stewards could not be reached; run distribute again later"
	MsgDistributionFailed   = "no steward could be reached"
	MsgWrongPassphrase      = "the vault passphrase is wrong or the content is corrupted"
	MsgUnexpected           = "unexpected error"
)

var messages = []struct {
	err error
	msg string
}{
	{service.ErrVaultNotFound, MsgVaultNotFound},
	{service.ErrNotVaultOwner, MsgNotVaultOwner},
	{service.ErrInvalidConfiguration, MsgInvalidConfiguration},
	{service.ErrNoBackupConfig, MsgNoBackupConfig},
	{service.ErrNotReadyToDistribute, MsgNotReady},
	{service.ErrInvalidLink, MsgInvalidLink},
	{service.ErrInvitationNotFound, MsgInvitationNotFound},
	{service.ErrInvitationNotPending, MsgInvitationResolved},
	{service.ErrRecoveryNotFound, MsgRecoveryNotFound},
	{service.ErrRecoveryNotPending, MsgRecoveryNotPending},
	{service.ErrIncomingRecoveryReq, MsgIncomingRequest},
	{service.ErrOwnRecoveryRequest, MsgOwnRequest},
	{service.ErrNoShardHeld, MsgNoShardHeld},
	{sharing.ErrInsufficientShares, MsgInsufficientShares},
	{sharing.ErrReconstruction, MsgReconstruction},
	{service.ErrPartialDistribution, MsgPartialDistribution},
	{service.ErrDistributionFailed, MsgDistributionFailed},
	{crypto.ErrOpenFailed, MsgWrongPassphrase},
}

// Message returns the user-facing description of err, or [MsgUnexpected]
// when err matches none of the known failures.
func Message(err error) string {
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}

	return MsgUnexpected
}
